package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exact", 5, "exact"},
		{"truncated", "a longer purpose string", 10, "a longer …"},
		{"zero width", "anything", 0, ""},
		{"width one", "ab", 1, "…"},
		{"wide runes", "患者データ共有", 6, "患者…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if w := VisualWidth(got); w > tt.max {
				t.Errorf("result width %d exceeds max %d", w, tt.max)
			}
		})
	}
}

func TestPadRightVisual(t *testing.T) {
	if got := PadRightVisual("ab", 5); got != "ab   " {
		t.Errorf("PadRightVisual = %q", got)
	}
	if got := PadRightVisual("abcdef", 4); VisualWidth(got) != 4 {
		t.Errorf("overlong input not truncated to width: %q", got)
	}
}

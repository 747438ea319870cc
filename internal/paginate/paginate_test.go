package paginate

import (
	"reflect"
	"testing"
)

func TestWindow_Small(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"single page", 1, 1, []int{1}},
		{"three pages", 2, 3, []int{1, 2, 3}},
		{"exactly five", 4, 5, []int{1, 2, 3, 4, 5}},
		{"zero total", 1, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(tt.current, tt.total)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Window(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
			}
		})
	}
}

func TestWindow_Large(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"pinned to start", 1, 10, []int{1, 2, 3, 4, 5}},
		{"edge of start pin", 3, 10, []int{1, 2, 3, 4, 5}},
		{"centered", 4, 10, []int{2, 3, 4, 5, 6}},
		{"centered mid", 50, 100, []int{48, 49, 50, 51, 52}},
		{"edge of end pin", 8, 10, []int{6, 7, 8, 9, 10}},
		{"pinned to end", 10, 10, []int{6, 7, 8, 9, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(tt.current, tt.total)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Window(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
			}
		})
	}
}

// Exhaustive property check: for every (current, total) pair the window has
// length min(5, total), is contiguous, contains current, and stays in range.
func TestWindow_Properties(t *testing.T) {
	for total := 1; total <= 100; total++ {
		for current := 1; current <= total; current++ {
			got := Window(current, total)

			wantLen := total
			if wantLen > MaxButtons {
				wantLen = MaxButtons
			}
			if len(got) != wantLen {
				t.Fatalf("Window(%d, %d): len = %d, want %d", current, total, len(got), wantLen)
			}

			contains := false
			for i, p := range got {
				if p < 1 || p > total {
					t.Fatalf("Window(%d, %d): page %d out of range", current, total, p)
				}
				if i > 0 && p != got[i-1]+1 {
					t.Fatalf("Window(%d, %d): not contiguous: %v", current, total, got)
				}
				if p == current {
					contains = true
				}
			}
			if !contains {
				t.Fatalf("Window(%d, %d): window %v does not contain current", current, total, got)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		page, total int
		ok          bool
	}{
		{1, 10, true},
		{10, 10, true},
		{0, 10, false},
		{11, 10, false},
		{1, 0, false},
		{-3, 5, false},
	}
	for _, tt := range tests {
		if _, ok := Clamp(tt.page, tt.total); ok != tt.ok {
			t.Errorf("Clamp(%d, %d) ok = %v, want %v", tt.page, tt.total, ok, tt.ok)
		}
	}
}

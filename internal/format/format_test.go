package format

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestTimeAgo(t *testing.T) {
	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"under an hour", now.Add(-59 * time.Minute), "59m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-2 * 24 * time.Hour), "2d ago"},
		{"six days", now.Add(-6 * 24 * time.Hour), "6d ago"},
		{"beyond a week", now.Add(-8 * 24 * time.Hour), "Mar 7, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeAgo(tt.ts.Format(time.RFC3339), now)
			if got != tt.want {
				t.Errorf("TimeAgo = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeAgo_Invalid(t *testing.T) {
	for _, in := range []string{"", "not-a-time", "2026-13-45T99:00:00Z"} {
		if got := TimeAgo(in, now); got != "" {
			t.Errorf("TimeAgo(%q) = %q, want empty string", in, got)
		}
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		currency string
		want     string
	}{
		{"base units scaled", 2_000_000_000_000_000_000, "ETH", "2.0000 ETH"},
		{"base units fractional", 1_500_000_000_000_000_000, "ETH", "1.5000 ETH"},
		{"display units passthrough", 5, "ETH", "5 ETH"},
		{"zero", 0, "ETH", "0 ETH"},
		{"fractional passthrough", 0.5, "ETH", "0.5 ETH"},
		{"at threshold stays unscaled", 1e15, "ETH", "1000000000000000 ETH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amount(tt.value, tt.currency)
			if got != tt.want {
				t.Errorf("Amount(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestShortenAddr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0x742d35Cc6634C0532925a3b844Bc9e7595f8b2Ce", "0x742d…b2Ce"},
		{"0xABCD", "0xABCD"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ShortenAddr(tt.in); got != tt.want {
			t.Errorf("ShortenAddr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	if got := Date("2026-03-10T08:30:00Z"); got != "Mar 10, 2026" {
		t.Errorf("Date = %q", got)
	}
	if got := Date("2026-03-10"); got != "Mar 10, 2026" {
		t.Errorf("Date(date-only) = %q", got)
	}
	if got := Date("bogus"); got != "" {
		t.Errorf("Date(bogus) = %q, want empty", got)
	}
}

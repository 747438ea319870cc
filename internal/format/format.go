// Package format provides the pure formatting helpers shared by all views:
// relative times, ledger amounts, address truncation, and calendar dates.
// Everything here is a function of its inputs only.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// baseUnitThreshold decides whether an amount is in base units (wei-style)
// and needs scaling down by 1e18. Preserved from the original wire contract;
// a legitimate display-unit amount above it would be mis-scaled.
const baseUnitThreshold = 1e15

// TimeAgo renders a timestamp relative to now: "Just now", "5m ago",
// "3h ago", "2d ago", or a short calendar date beyond a week.
// Unparseable timestamps yield an empty string, never an error.
func TimeAgo(timestamp string, now time.Time) string {
	ts, err := parseTimestamp(timestamp)
	if err != nil {
		return ""
	}
	d := now.Sub(ts)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return ts.Format("Jan 2, 2006")
	}
}

// Amount renders a transaction amount with its currency. Values above
// baseUnitThreshold are treated as base units and divided by 1e18 with
// 4-decimal rounding; smaller values pass through unscaled.
func Amount(value float64, currency string) string {
	if value > baseUnitThreshold {
		return fmt.Sprintf("%.4f %s", value/1e18, currency)
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + currency
}

// ShortenAddr truncates a hex address or hash to "0x1234…abcd" form.
// Inputs too short to truncate are returned unchanged.
func ShortenAddr(addr string) string {
	if len(addr) <= 13 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

// Date renders a timestamp as a short calendar date, or "" if unparseable.
func Date(timestamp string) string {
	ts, err := parseTimestamp(timestamp)
	if err != nil {
		return ""
	}
	return ts.Format("Jan 2, 2006")
}

// DateTime renders a timestamp with date and clock time, or "" if unparseable.
func DateTime(timestamp string) string {
	ts, err := parseTimestamp(timestamp)
	if err != nil {
		return ""
	}
	return ts.Format("Jan 2, 2006 15:04")
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	// Date-only values appear on medical records.
	return time.Parse("2006-01-02", s)
}

package ui

import (
	"strings"
	"testing"

	"consentdash/internal/api"
)

func TestActiveConsentSummary(t *testing.T) {
	tests := []struct {
		name  string
		stats *api.PlatformStats
		want  string
	}{
		{"nil snapshot", nil, "No data"},
		{"zero consents", &api.PlatformStats{TotalConsents: 0, ActiveConsents: 0}, "No data"},
		{"half active", &api.PlatformStats{TotalConsents: 10, ActiveConsents: 5}, "50.0% active (5 of 10)"},
		{"all active", &api.PlatformStats{TotalConsents: 3, ActiveConsents: 3}, "100.0% active (3 of 3)"},
		{"one third", &api.PlatformStats{TotalConsents: 3, ActiveConsents: 1}, "33.3% active (1 of 3)"},
	}
	for _, tt := range tests {
		if got := ActiveConsentSummary(tt.stats); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAvgRecordsPerPatient(t *testing.T) {
	tests := []struct {
		name  string
		stats *api.PlatformStats
		want  string
	}{
		{"nil snapshot", nil, "0"},
		{"zero patients", &api.PlatformStats{TotalPatients: 0, TotalRecords: 12}, "0"},
		{"even split", &api.PlatformStats{TotalPatients: 4, TotalRecords: 8}, "2.0"},
		{"fractional", &api.PlatformStats{TotalPatients: 3, TotalRecords: 10}, "3.3"},
	}
	for _, tt := range tests {
		if got := AvgRecordsPerPatient(tt.stats); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStatsView_StaleSnapshotDropped(t *testing.T) {
	v := NewStatsView(Deps{})
	_ = v.Refresh() // seq 1
	_ = v.Refresh() // seq 2

	v.Update(StatsLoadedMsg{Seq: 1, Stats: &api.PlatformStats{TotalPatients: 99}})
	if v.Stats != nil {
		t.Error("stale snapshot should be dropped")
	}
	v.Update(StatsLoadedMsg{Seq: 2, Stats: &api.PlatformStats{TotalPatients: 7}})
	if v.Stats == nil || v.Stats.TotalPatients != 7 {
		t.Errorf("current snapshot should be applied, got %+v", v.Stats)
	}
}

func TestStatsView_RendersCountsAndDerived(t *testing.T) {
	v := NewStatsView(Deps{})
	_ = v.Refresh()
	v.Update(StatsLoadedMsg{Seq: 1, Stats: &api.PlatformStats{
		TotalPatients:     4,
		TotalRecords:      8,
		TotalConsents:     10,
		ActiveConsents:    5,
		PendingConsents:   2,
		TotalTransactions: 31,
	}})

	out := v.View()
	for _, want := range []string{"4", "31", "50.0% active (5 of 10)", "2.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats view missing %q:\n%s", want, out)
		}
	}
}

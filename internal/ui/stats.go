package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"consentdash/internal/api"
)

// StatsView renders the aggregate platform snapshot with a few derived
// metrics computed client-side.
type StatsView struct {
	deps Deps

	Stats *api.PlatformStats

	loading bool
	err     error
	reqSeq  int
}

var _ View = (*StatsView)(nil)

// NewStatsView creates the stats dashboard view.
func NewStatsView(deps Deps) *StatsView {
	return &StatsView{deps: deps}
}

// Init implements View.
func (v *StatsView) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh fetches a fresh snapshot.
func (v *StatsView) Refresh() tea.Cmd {
	v.reqSeq++
	v.loading = true
	v.err = nil
	return fetchStatsCmd(v.deps, v.reqSeq)
}

// Update implements View.
func (v *StatsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case StatsLoadedMsg:
		if msg.Seq != v.reqSeq {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.Stats = msg.Stats
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return v, v.Refresh()
		case "d":
			v.err = nil
		}
	}
	return v, nil
}

// ActiveConsentSummary describes consent activity, guarding divide-by-zero:
// with no consents there is nothing to summarize.
func ActiveConsentSummary(s *api.PlatformStats) string {
	if s == nil || s.TotalConsents == 0 {
		return "No data"
	}
	pct := float64(s.ActiveConsents) / float64(s.TotalConsents) * 100
	return fmt.Sprintf("%.1f%% active (%d of %d)", pct, s.ActiveConsents, s.TotalConsents)
}

// AvgRecordsPerPatient renders the average record count, guarding
// divide-by-zero: an empty platform averages to "0", never NaN.
func AvgRecordsPerPatient(s *api.PlatformStats) string {
	if s == nil || s.TotalPatients == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(s.TotalRecords)/float64(s.TotalPatients))
}

// View implements View.
func (v *StatsView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Platform Stats") + "\n")
	b.WriteString(Styles.Hint.Render("r: refresh") + "\n\n")

	if v.err != nil {
		b.WriteString(Styles.Error.Render("Error: "+v.err.Error()) + "\n")
		b.WriteString(Styles.Hint.Render("r: retry  d: dismiss") + "\n")
		return b.String()
	}
	if v.loading {
		b.WriteString(Styles.Muted.Render("Loading…") + "\n")
		return b.String()
	}
	if v.Stats == nil {
		b.WriteString(Styles.Empty.Render("(no snapshot)") + "\n")
		return b.String()
	}

	s := v.Stats
	writeStat(&b, "Patients", s.TotalPatients)
	writeStat(&b, "Medical Records", s.TotalRecords)
	writeStat(&b, "Consents", s.TotalConsents)
	writeStat(&b, "Active Consents", s.ActiveConsents)
	writeStat(&b, "Pending Consents", s.PendingConsents)
	writeStat(&b, "Transactions", s.TotalTransactions)

	b.WriteString("\n" + Styles.Section.Render("Derived") + "\n")
	b.WriteString("  " + Styles.Muted.Render("Consent activity:") + " " +
		Styles.Normal.Render(ActiveConsentSummary(s)) + "\n")
	b.WriteString("  " + Styles.Muted.Render("Avg records per patient:") + " " +
		Styles.Normal.Render(AvgRecordsPerPatient(s)) + "\n")
	return b.String()
}

func writeStat(b *strings.Builder, label string, n int) {
	b.WriteString(fmt.Sprintf("  %s %s\n",
		Styles.Muted.Render(fmt.Sprintf("%-18s", label+":")),
		Styles.Normal.Render(fmt.Sprintf("%d", n))))
}

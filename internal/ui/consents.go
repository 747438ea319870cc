package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"consentdash/internal/api"
	"consentdash/internal/format"
	"consentdash/internal/ui/textutil"
)

// statusFilters is the cycle order for the consent status filter ("" = all).
var statusFilters = []string{"", "pending", "active", "revoked", "expired"}

// allowedTransitions is the authoritative client-side transition table.
// Everything not listed is terminal from the UI's perspective.
var allowedTransitions = map[format.ConsentStatus][]format.ConsentStatus{
	format.ConsentPending: {format.ConsentActive, format.ConsentRevoked},
	format.ConsentActive:  {format.ConsentRevoked},
}

// TransitionAllowed reports whether the client may propose from→to.
func TransitionAllowed(from, to string) bool {
	targets := allowedTransitions[format.ClassifyConsentStatus(from)]
	want := format.ClassifyConsentStatus(to)
	for _, t := range targets {
		if t == want {
			return true
		}
	}
	return false
}

// ConsentsView lists consent records and proposes lifecycle transitions.
// Proposals go through the app's confirm modal; this view never mutates.
type ConsentsView struct {
	deps Deps

	Consents  []api.Consent
	Selected  int
	FilterIdx int // index into statusFilters

	loading bool
	err     error
	spinner spinner.Model
	reqSeq  int
	width   int
}

var _ View = (*ConsentsView)(nil)

// NewConsentsView creates the consent list view.
func NewConsentsView(deps Deps) *ConsentsView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &ConsentsView{deps: deps, spinner: s, width: 80}
}

// Filter returns the active status filter ("" = all).
func (v *ConsentsView) Filter() string {
	return statusFilters[v.FilterIdx]
}

// Init implements View.
func (v *ConsentsView) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh dispatches a fresh fetch for the current filter.
func (v *ConsentsView) Refresh() tea.Cmd {
	v.reqSeq++
	v.loading = true
	v.err = nil
	return tea.Batch(v.spinner.Tick, fetchConsentsCmd(v.deps, v.reqSeq, v.Filter()))
}

// SelectedConsent returns the consent under the cursor, or nil.
func (v *ConsentsView) SelectedConsent() *api.Consent {
	if v.Selected >= 0 && v.Selected < len(v.Consents) {
		return &v.Consents[v.Selected]
	}
	return nil
}

// Update implements View.
func (v *ConsentsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case ConsentsLoadedMsg:
		// Discard responses whose tag no longer matches current state.
		if msg.Seq != v.reqSeq || msg.Filter != v.Filter() {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.Consents = msg.Consents
		if v.Selected >= len(v.Consents) {
			v.Selected = 0
		}
		return v, nil
	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *ConsentsView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if v.Selected < len(v.Consents)-1 {
			v.Selected++
		}
	case "k", "up":
		if v.Selected > 0 {
			v.Selected--
		}
	case "g":
		v.Selected = 0
	case "G":
		if len(v.Consents) > 0 {
			v.Selected = len(v.Consents) - 1
		}
	case "f":
		v.FilterIdx = (v.FilterIdx + 1) % len(statusFilters)
		v.Selected = 0
		return v, v.Refresh()
	case "r":
		return v, v.Refresh()
	case "d":
		v.err = nil
	case "c":
		return v, func() tea.Msg { return ShowCreateConsentMsg{} }
	case "a":
		return v, v.propose("active")
	case "x":
		return v, v.propose("revoked")
	}
	return v, nil
}

// propose emits a transition request for the selected consent if the
// transition table allows it. Disallowed proposals are silent no-ops.
func (v *ConsentsView) propose(newStatus string) tea.Cmd {
	c := v.SelectedConsent()
	if c == nil || !TransitionAllowed(c.Status, newStatus) {
		return nil
	}
	id := c.ID
	return func() tea.Msg {
		return RequestStatusChangeMsg{ConsentID: id, NewStatus: newStatus}
	}
}

// View implements View.
func (v *ConsentsView) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Consents (%d)", len(v.Consents))
	if f := v.Filter(); f != "" {
		title += "  " + Styles.Section.Render("["+f+"]")
	}
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n")
	b.WriteString(Styles.Hint.Render("f: filter  c: new  a: activate  x: revoke  r: refresh") + "\n\n")

	if v.err != nil {
		b.WriteString(Styles.Error.Render("Error: "+v.err.Error()) + "\n")
		b.WriteString(Styles.Hint.Render("r: retry  d: dismiss") + "\n")
		return b.String()
	}
	if !v.loading && len(v.Consents) == 0 {
		if v.Filter() != "" {
			b.WriteString(Styles.Empty.Render("(no "+v.Filter()+" consents)") + "\n")
		} else {
			b.WriteString(Styles.Empty.Render("(no consents yet)") + "\n")
		}
		return b.String()
	}

	now := v.deps.now()
	for i, c := range v.Consents {
		bullet := "  "
		if i == v.Selected {
			bullet = "▸ "
		}
		status := format.ClassifyConsentStatus(c.Status)
		badge := BadgeStyle(status.Color()).Render("[" + string(status) + "]")

		purposeStyle := Styles.Normal
		if i == v.Selected {
			purposeStyle = Styles.Selected
		}
		purpose := textutil.PadRightVisual(textutil.Truncate(c.Purpose, 36), 36)
		line := fmt.Sprintf("%s  %s  %s",
			purposeStyle.Render(purpose),
			Styles.Muted.Render(string(format.ClassifyPurpose(c.Purpose))),
			Styles.Normal.Render(c.PatientID),
		)
		if c.PatientWalletAddress != "" {
			line += "  " + Styles.Muted.Render(format.ShortenAddr(c.PatientWalletAddress))
		}
		if ago := format.TimeAgo(c.CreatedAt, now); ago != "" {
			line += "  " + Styles.Muted.Render(ago)
		}
		b.WriteString(bullet + badge + " " + line + "\n")
	}
	return b.String()
}

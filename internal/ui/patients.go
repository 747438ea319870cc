package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"consentdash/internal/api"
	"consentdash/internal/format"
	"consentdash/internal/paginate"
	"consentdash/internal/ui/textutil"
)

// patientsPageSize is the fixed roster page size.
const patientsPageSize = 10

// PatientsView is the paginated, debounced-search patient roster.
type PatientsView struct {
	deps Deps

	Patients []api.Patient
	Pg       api.Pagination
	Selected int
	Page     int
	Term     string // committed search term (what the current page was fetched with)

	input       textinput.Model
	searching   bool // search input focused
	debounceSeq int
	reqSeq      int
	loading     bool
	err         error
	spinner     spinner.Model
}

var _ View = (*PatientsView)(nil)

// NewPatientsView creates the roster view.
func NewPatientsView(deps Deps) *PatientsView {
	ti := textinput.New()
	ti.Placeholder = "name, email, or patient id"
	ti.Width = 40
	ti.Prompt = "/ "

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &PatientsView{deps: deps, input: ti, spinner: s, Page: 1}
}

// InputActive reports whether the search input has focus. The app routes
// keys straight here while typing so keybinds don't swallow letters.
func (v *PatientsView) InputActive() bool {
	return v.searching
}

// Init implements View.
func (v *PatientsView) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh dispatches a fetch for the current page and term.
func (v *PatientsView) Refresh() tea.Cmd {
	v.reqSeq++
	v.loading = true
	v.err = nil
	return tea.Batch(v.spinner.Tick, fetchPatientsCmd(v.deps, v.reqSeq, v.Page, patientsPageSize, v.Term))
}

// gotoPage clamps and fetches the requested page. Out-of-range requests are
// no-ops.
func (v *PatientsView) gotoPage(page int) tea.Cmd {
	p, ok := paginate.Clamp(page, v.Pg.TotalPages)
	if !ok || p == v.Page {
		return nil
	}
	v.Page = p
	v.Selected = 0
	return v.Refresh()
}

// SelectedPatient returns the patient under the cursor, or nil.
func (v *PatientsView) SelectedPatient() *api.Patient {
	if v.Selected >= 0 && v.Selected < len(v.Patients) {
		return &v.Patients[v.Selected]
	}
	return nil
}

// Update implements View.
func (v *PatientsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case SearchDebounceMsg:
		// Only the timer armed by the last keystroke fires a fetch.
		if msg.Seq != v.debounceSeq {
			return v, nil
		}
		return v, v.commitSearch()
	case PatientsLoadedMsg:
		if msg.Seq != v.reqSeq {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.Patients = msg.Page.Patients
		v.Pg = msg.Page.Pagination
		if v.Selected >= len(v.Patients) {
			v.Selected = 0
		}
		return v, nil
	case tea.KeyMsg:
		if v.searching {
			return v.handleSearchKey(msg)
		}
		return v.handleKey(msg)
	}
	return v, nil
}

// commitSearch applies the typed term if it changed: pagination resets to
// page 1 and a fetch is dispatched.
func (v *PatientsView) commitSearch() tea.Cmd {
	term := strings.TrimSpace(v.input.Value())
	if term == v.Term {
		return nil
	}
	v.Term = term
	v.Page = 1
	v.Selected = 0
	return v.Refresh()
}

func (v *PatientsView) handleSearchKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.searching = false
		v.input.Blur()
		return v, nil
	case "enter":
		// Enter commits immediately, skipping the rest of the window.
		v.searching = false
		v.input.Blur()
		v.debounceSeq++ // invalidate any armed timer
		return v, v.commitSearch()
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.debounceSeq++
	return v, tea.Batch(cmd, debounceCmd(v.debounceSeq))
}

func (v *PatientsView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "/":
		v.searching = true
		return v, v.input.Focus()
	case "j", "down":
		if v.Selected < len(v.Patients)-1 {
			v.Selected++
		}
	case "k", "up":
		if v.Selected > 0 {
			v.Selected--
		}
	case "h", "left":
		return v, v.gotoPage(v.Page - 1)
	case "l", "right":
		return v, v.gotoPage(v.Page + 1)
	case "r":
		return v, v.Refresh()
	case "d":
		v.err = nil
	case "enter":
		if p := v.SelectedPatient(); p != nil {
			id := p.ID
			return v, func() tea.Msg { return SelectPatientMsg{PatientID: id} }
		}
	}
	return v, nil
}

// View implements View.
func (v *PatientsView) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Patients (%d)", v.Pg.Total)
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n")

	if v.searching || v.input.Value() != "" {
		b.WriteString(v.input.View() + "\n")
	} else {
		b.WriteString(Styles.Hint.Render("/: search  h/l: page  enter: open  r: refresh") + "\n")
	}
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString(Styles.Error.Render("Error: "+v.err.Error()) + "\n")
		b.WriteString(Styles.Hint.Render("r: retry  d: dismiss") + "\n")
		return b.String()
	}
	if !v.loading && len(v.Patients) == 0 {
		if v.Term != "" {
			b.WriteString(Styles.Empty.Render("(no patients match \""+v.Term+"\")") + "\n")
		} else {
			b.WriteString(Styles.Empty.Render("(no patients)") + "\n")
		}
		return b.String()
	}

	for i, p := range v.Patients {
		bullet := "  "
		nameStyle := Styles.Normal
		if i == v.Selected {
			bullet = "▸ "
			nameStyle = Styles.Selected
		}
		name := textutil.PadRightVisual(textutil.Truncate(p.Name, 28), 28)
		line := bullet + nameStyle.Render(name) +
			"  " + Styles.Muted.Render(p.PatientID)
		if p.Email != "" {
			line += "  " + Styles.Muted.Render(p.Email)
		}
		if p.WalletAddress != "" {
			line += "  " + Styles.Muted.Render(format.ShortenAddr(p.WalletAddress))
		}
		b.WriteString(line + "\n")
	}

	if footer := v.paginationFooter(); footer != "" {
		b.WriteString("\n" + footer + "\n")
	}
	return b.String()
}

// paginationFooter renders the page-number window, e.g. " 1 [2] 3 4 5 ".
func (v *PatientsView) paginationFooter() string {
	if v.Pg.TotalPages <= 1 {
		return ""
	}
	parts := make([]string, 0, paginate.MaxButtons+1)
	for _, p := range paginate.Window(v.Page, v.Pg.TotalPages) {
		label := strconv.Itoa(p)
		if p == v.Page {
			parts = append(parts, Styles.PageCur.Render("["+label+"]"))
		} else {
			parts = append(parts, Styles.Muted.Render(label))
		}
	}
	parts = append(parts, Styles.Hint.Render(fmt.Sprintf("page %d/%d", v.Page, v.Pg.TotalPages)))
	return strings.Join(parts, " ")
}

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"consentdash/internal/format"
)

// AppModel is the root model: four top-level screens plus the patient
// detail drill-down, a modal overlay stack, and the keybind system.
// Views never call each other; navigation and wallet context live here.
type AppModel struct {
	Mode AppMode

	Consents     *ConsentsView
	Patients     *PatientsView
	Transactions *TransactionsView
	Stats        *StatsView

	DetailStack ViewStack    // patient detail drill-down
	Overlays    OverlayStack // modals (create, confirm, error)
	KeyHandler  *KeyHandler

	deps   Deps
	width  int
	height int
}

// NewAppModel creates the root application model with its dependencies.
func NewAppModel(deps Deps) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC r", func() tea.Msg { return RefreshMsg{} }, "Refresh view")
	reg.BindWithDescForMode("SPC n", func() tea.Msg { return ShowCreateConsentMsg{} }, "New consent", []AppMode{ModeConsents})
	reg.BindWithDesc("SPC g c", switchCmd(ModeConsents), "Consents")
	reg.BindWithDesc("SPC g p", switchCmd(ModePatients), "Patients")
	reg.BindWithDesc("SPC g t", switchCmd(ModeTransactions), "Transactions")
	reg.BindWithDesc("SPC g s", switchCmd(ModeStats), "Stats")

	return &AppModel{
		Mode:         ModeConsents,
		Consents:     NewConsentsView(deps),
		Patients:     NewPatientsView(deps),
		Transactions: NewTransactionsView(deps),
		Stats:        NewStatsView(deps),
		KeyHandler:   NewKeyHandler(reg),
		deps:         deps,
	}
}

func switchCmd(mode AppMode) tea.Cmd {
	return func() tea.Msg { return SwitchModeMsg{Mode: mode} }
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.broadcast(msg)

	case SwitchModeMsg:
		return a, a.switchMode(msg.Mode)

	case RefreshMsg:
		return a, a.refreshCurrent()

	case ShowCreateConsentMsg:
		modal := NewCreateConsentModal(a.deps.WalletConnected())
		a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
		return a, modal.Init()

	case RequestStatusChangeMsg:
		a.Overlays.Push(Overlay{View: NewConfirmStatusModal(msg.ConsentID, msg.NewStatus), Dismiss: "esc"})
		return a, nil

	case ConfirmStatusChangeMsg:
		// The confirm modal locked itself before emitting this.
		return a, updateConsentCmd(a.deps, msg.ConsentID, msg.NewStatus)

	case ConsentUpdatedMsg:
		if msg.Err != nil {
			a.Overlays.ReplaceTop(NewErrorModal("Status update failed", msg.Err))
			return a, nil
		}
		a.Overlays.Pop()
		return a, a.Consents.Refresh()

	case SubmitConsentMsg:
		return a, createConsentCmd(a.deps, msg.PatientID, msg.Purpose)

	case ConsentCreatedMsg:
		if msg.Err != nil {
			// Unlock the form underneath and show a blocking error on top.
			if top, ok := a.Overlays.Peek(); ok {
				if form, ok := top.View.(*CreateConsentModal); ok {
					form.Fail()
				}
			}
			a.Overlays.Push(Overlay{View: NewErrorModal("Consent creation failed", msg.Err), Dismiss: "esc"})
			return a, nil
		}
		a.Overlays.Pop() // the form resets by going away
		return a, a.Consents.Refresh()

	case SelectPatientMsg:
		detail := NewPatientDetailView(a.deps, msg.PatientID)
		a.DetailStack.Push(detail)
		a.Mode = ModePatientDetail
		return a, detail.Init()

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Data and tick messages go to every view; each drops what isn't its
	// own (by message type and request tag). Late responses for a view the
	// user has navigated away from still land correctly.
	return a, a.broadcast(msg)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Open modal captures all input.
	if top, ok := a.Overlays.Peek(); ok {
		v, cmd := top.View.Update(msg)
		a.Overlays.ReplaceTop(v)
		return a, cmd
	}

	// While the search box is focused, keys go straight to the roster so
	// the keybind system doesn't swallow letters.
	if a.Mode == ModePatients && a.Patients.InputActive() {
		return a, a.updateCurrent(msg)
	}

	if a.KeyHandler != nil {
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
	}

	switch msg.String() {
	case "1":
		return a, a.switchMode(ModeConsents)
	case "2":
		return a, a.switchMode(ModePatients)
	case "3":
		return a, a.switchMode(ModeTransactions)
	case "4":
		return a, a.switchMode(ModeStats)
	case "esc":
		if a.Mode == ModePatientDetail {
			a.DetailStack.Pop()
			a.Mode = ModePatients
			return a, nil
		}
	}

	return a, a.updateCurrent(msg)
}

// switchMode changes the top-level screen, leaving the detail stack behind.
func (a *appModelAdapter) switchMode(mode AppMode) tea.Cmd {
	if mode == a.Mode || mode == ModePatientDetail {
		return nil
	}
	for a.DetailStack.Len() > 0 {
		a.DetailStack.Pop()
	}
	a.Mode = mode
	return nil
}

func (a *appModelAdapter) refreshCurrent() tea.Cmd {
	switch v := a.currentView().(type) {
	case *ConsentsView:
		return v.Refresh()
	case *PatientsView:
		return v.Refresh()
	case *PatientDetailView:
		return v.Refresh()
	case *TransactionsView:
		return v.Refresh()
	case *StatsView:
		return v.Refresh()
	}
	return nil
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode {
	case ModeConsents:
		return a.Consents
	case ModePatients:
		return a.Patients
	case ModePatientDetail:
		if top := a.DetailStack.Peek(); top != nil {
			return top
		}
		return a.Patients
	case ModeTransactions:
		return a.Transactions
	case ModeStats:
		return a.Stats
	}
	return a.Consents
}

func (a *appModelAdapter) updateCurrent(msg tea.Msg) tea.Cmd {
	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return cmd
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeConsents:
		if cv, ok := v.(*ConsentsView); ok {
			a.Consents = cv
		}
	case ModePatients:
		if pv, ok := v.(*PatientsView); ok {
			a.Patients = pv
		}
	case ModePatientDetail:
		// Detail views mutate in place on the stack.
	case ModeTransactions:
		if tv, ok := v.(*TransactionsView); ok {
			a.Transactions = tv
		}
	case ModeStats:
		if sv, ok := v.(*StatsView); ok {
			a.Stats = sv
		}
	}
}

// broadcast delivers a message to every live view and the top overlay.
func (a *appModelAdapter) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	collect := func(v View) View {
		nv, cmd := v.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return nv
	}

	if v, ok := collect(a.Consents).(*ConsentsView); ok {
		a.Consents = v
	}
	if v, ok := collect(a.Patients).(*PatientsView); ok {
		a.Patients = v
	}
	if v, ok := collect(a.Transactions).(*TransactionsView); ok {
		a.Transactions = v
	}
	if v, ok := collect(a.Stats).(*StatsView); ok {
		a.Stats = v
	}
	if top := a.DetailStack.Peek(); top != nil {
		collect(top)
	}
	if top, ok := a.Overlays.Peek(); ok {
		a.Overlays.ReplaceTop(collect(top.View))
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.header() + "\n\n")

	if top, ok := a.Overlays.Peek(); ok {
		b.WriteString(top.View.View())
	} else {
		b.WriteString(a.currentView().View())
	}

	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Mode))
	}
	return b.String()
}

// header renders the screen tabs and the wallet identity.
func (a *appModelAdapter) header() string {
	tabs := []struct {
		key   string
		label string
		mode  AppMode
	}{
		{"1", "Consents", ModeConsents},
		{"2", "Patients", ModePatients},
		{"3", "Transactions", ModeTransactions},
		{"4", "Stats", ModeStats},
	}
	parts := make([]string, 0, len(tabs)+1)
	for _, t := range tabs {
		label := t.key + ":" + t.label
		active := a.Mode == t.mode || (t.mode == ModePatients && a.Mode == ModePatientDetail)
		if active {
			parts = append(parts, Styles.Selected.Render(label))
		} else {
			parts = append(parts, Styles.Muted.Render(label))
		}
	}
	if addr := a.deps.WalletAddress(); addr != "" {
		parts = append(parts, Styles.Muted.Render("⬡ "+format.ShortenAddr(addr)))
	} else {
		parts = append(parts, Styles.Muted.Render("no wallet"))
	}
	return strings.Join(parts, "  ")
}

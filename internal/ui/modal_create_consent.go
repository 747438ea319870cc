package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CreateConsentModal collects a patient id and purpose, validates locally,
// and hands off to the sign-and-submit flow. Validation failures block
// submission before any signing or network call.
type CreateConsentModal struct {
	patientID textinput.Model
	purpose   textinput.Model
	focusIdx  int
	Busy      bool // signing/submitting in flight
	errText   string

	walletConnected bool
}

var _ View = (*CreateConsentModal)(nil)

// NewCreateConsentModal creates the consent form.
func NewCreateConsentModal(walletConnected bool) *CreateConsentModal {
	pid := textinput.New()
	pid.Placeholder = "patient id (e.g. P-001)"
	pid.Width = 40
	pid.Focus()

	purpose := textinput.New()
	purpose.Placeholder = "purpose (e.g. Research Study Participation)"
	purpose.Width = 40

	return &CreateConsentModal{
		patientID:       pid,
		purpose:         purpose,
		walletConnected: walletConnected,
	}
}

// Init implements View.
func (m *CreateConsentModal) Init() tea.Cmd {
	return textinput.Blink
}

// validate checks the submission preconditions. A violated precondition
// short-circuits with no network call.
func (m *CreateConsentModal) validate() string {
	if !m.walletConnected {
		return "no wallet connected"
	}
	if strings.TrimSpace(m.patientID.Value()) == "" {
		return "patient id is required"
	}
	if strings.TrimSpace(m.purpose.Value()) == "" {
		return "purpose is required"
	}
	return ""
}

// Update implements View.
func (m *CreateConsentModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "tab", "shift+tab":
			m.cycleFocus()
			return m, nil
		case "enter":
			if reason := m.validate(); reason != "" {
				m.errText = reason
				return m, nil
			}
			m.errText = ""
			m.Busy = true
			pid := strings.TrimSpace(m.patientID.Value())
			purpose := strings.TrimSpace(m.purpose.Value())
			return m, func() tea.Msg {
				return SubmitConsentMsg{PatientID: pid, Purpose: purpose}
			}
		}
	}

	var cmd tea.Cmd
	if m.focusIdx == 0 {
		m.patientID, cmd = m.patientID.Update(msg)
	} else {
		m.purpose, cmd = m.purpose.Update(msg)
	}
	return m, cmd
}

func (m *CreateConsentModal) cycleFocus() {
	m.focusIdx = (m.focusIdx + 1) % 2
	if m.focusIdx == 0 {
		m.patientID.Focus()
		m.purpose.Blur()
	} else {
		m.patientID.Blur()
		m.purpose.Focus()
	}
}

// Fail unlocks the form after a failed sign or submit so the user can
// retry or cancel. The app shows the blocking error separately.
func (m *CreateConsentModal) Fail() {
	m.Busy = false
}

// View implements View.
func (m *CreateConsentModal) View() string {
	content := Styles.Title.Render("New consent") + "\n\n"
	content += m.patientID.View() + "\n"
	content += m.purpose.View() + "\n\n"
	if !m.walletConnected {
		content += Styles.Error.Render("no wallet connected — read-only mode") + "\n"
	} else if m.errText != "" {
		content += Styles.Error.Render(m.errText) + "\n"
	}
	if m.Busy {
		content += Styles.Hint.Render("signing…")
	} else {
		content += Styles.Hint.Render("Enter: sign & submit  Tab: next field  Esc: cancel")
	}
	return Styles.Box.Render(content)
}

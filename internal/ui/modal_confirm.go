package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmStatusModal gates a proposed consent status transition. Enter or y
// commits; Esc cancels with no side effect. While the commit is in flight
// the modal is locked: confirm and cancel are both ignored until the result
// arrives, so the mutation can't be double-fired.
type ConfirmStatusModal struct {
	ConsentID string
	NewStatus string
	Busy      bool
}

var _ View = (*ConfirmStatusModal)(nil)

// NewConfirmStatusModal creates a confirmation modal for a transition.
func NewConfirmStatusModal(consentID, newStatus string) *ConfirmStatusModal {
	return &ConfirmStatusModal{ConsentID: consentID, NewStatus: newStatus}
}

// Init implements View.
func (m *ConfirmStatusModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmStatusModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			m.Busy = true
			id, status := m.ConsentID, m.NewStatus
			return m, func() tea.Msg {
				return ConfirmStatusChangeMsg{ConsentID: id, NewStatus: status}
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmStatusModal) View() string {
	title := "Change consent status?"
	if m.NewStatus == "revoked" {
		title = "Revoke consent?"
	}
	content := Styles.TitleWarning.Render(title) + "\n\n"
	content += Styles.Label.Render(fmt.Sprintf("Consent %s → %s", m.ConsentID, m.NewStatus))
	content += "\n\n"
	if m.Busy {
		content += Styles.Hint.Render("updating…")
	} else {
		content += Styles.Hint.Render("y/Enter: confirm  Esc: cancel")
	}
	return Styles.BoxDanger.Render(content)
}

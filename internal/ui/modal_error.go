package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"consentdash/internal/api"
)

// ErrorModal is a blocking acknowledgment for failed mutations. Status
// updates and consent creation touch the chain, so their failures must be
// noticed and explicitly dismissed rather than flashed past.
type ErrorModal struct {
	Title string
	Err   error
}

var _ View = (*ErrorModal)(nil)

// NewErrorModal creates a blocking error modal.
func NewErrorModal(title string, err error) *ErrorModal {
	return &ErrorModal{Title: title, Err: err}
}

// Init implements View.
func (m *ErrorModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ErrorModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "enter":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *ErrorModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(describe(m.Err))
	content += "\n\n" + Styles.Hint.Render("Enter/Esc: dismiss")
	return Styles.BoxDanger.Render(content)
}

// describe keeps wallet rejections distinct from backend failures in the
// user-facing text.
func describe(err error) string {
	if err == nil {
		return "unknown error"
	}
	var se *api.SigningError
	if errors.As(err, &se) {
		return "Wallet signing failed: " + se.Err.Error() + "\nNo data was sent to the backend."
	}
	var ve *api.ValidationError
	if errors.As(err, &ve) {
		return "Invalid input: " + ve.Error()
	}
	return err.Error()
}

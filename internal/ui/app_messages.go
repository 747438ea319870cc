package ui

import (
	"consentdash/internal/api"
)

// ConsentsLoadedMsg carries a consent list fetch result (or its error).
// Seq and Filter echo the dispatching request so stale responses are dropped.
type ConsentsLoadedMsg struct {
	Seq      int
	Filter   string
	Consents []api.Consent
	Err      error
}

// RequestStatusChangeMsg proposes a consent status transition. Nothing is
// sent to the backend until the confirm modal commits it.
type RequestStatusChangeMsg struct {
	ConsentID string
	NewStatus string
}

// ConfirmStatusChangeMsg is sent when the user confirms a proposed
// transition in the confirm modal.
type ConfirmStatusChangeMsg struct {
	ConsentID string
	NewStatus string
}

// ConsentUpdatedMsg carries the result of a committed status transition.
type ConsentUpdatedMsg struct {
	ConsentID string
	NewStatus string
	Err       error
}

// ShowCreateConsentMsg opens the create-consent modal.
type ShowCreateConsentMsg struct{}

// SubmitConsentMsg is sent when the create-consent form passes local
// validation and should be signed and submitted.
type SubmitConsentMsg struct {
	PatientID string
	Purpose   string
}

// ConsentCreatedMsg carries the result of the sign-and-submit flow.
type ConsentCreatedMsg struct {
	Consent *api.Consent
	Err     error
}

// PatientsLoadedMsg carries a roster page fetch result.
type PatientsLoadedMsg struct {
	Seq  int
	Page *api.PatientPage
	Err  error
}

// SearchDebounceMsg fires when the search quiescence window elapses.
// Seq identifies the keystroke that armed the timer; only the latest fires.
type SearchDebounceMsg struct {
	Seq int
}

// SelectPatientMsg is sent when the user opens a patient from the roster.
type SelectPatientMsg struct {
	PatientID string
}

// PatientDetailLoadedMsg carries a patient + records fetch result.
// NotFound is set when the patient fetch failed or returned nothing; in that
// case Records is always nil.
type PatientDetailLoadedMsg struct {
	Seq       int
	PatientID string
	Patient   *api.Patient
	Records   []api.MedicalRecord
	NotFound  bool
	Err       error
}

// TransactionsLoadedMsg carries a transaction list fetch result.
// Wallet echoes the address filter the request was dispatched with.
type TransactionsLoadedMsg struct {
	Seq          int
	Wallet       string
	Transactions []api.Transaction
	Err          error
}

// StatsLoadedMsg carries the aggregate snapshot fetch result.
type StatsLoadedMsg struct {
	Seq   int
	Stats *api.PlatformStats
	Err   error
}

// ClipboardCopiedMsg reports a copy-to-clipboard attempt. Failures are not
// surfaced distinctly; the message exists so copies show brief feedback.
type ClipboardCopiedMsg struct {
	Err error
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// RefreshMsg triggers a refetch of the current view.
type RefreshMsg struct{}

// SwitchModeMsg switches the app to a top-level screen.
type SwitchModeMsg struct {
	Mode AppMode
}

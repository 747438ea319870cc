package ui

// AppMode represents the top-level screen the dashboard is showing.
type AppMode int

const (
	ModeConsents AppMode = iota
	ModePatients
	ModePatientDetail
	ModeTransactions
	ModeStats
)

func (m AppMode) String() string {
	switch m {
	case ModeConsents:
		return "Consents"
	case ModePatients:
		return "Patients"
	case ModePatientDetail:
		return "PatientDetail"
	case ModeTransactions:
		return "Transactions"
	case ModeStats:
		return "Stats"
	default:
		return "Unknown"
	}
}

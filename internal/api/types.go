// Package api is the HTTP client for the consent ledger backend. Entities
// here are immutable snapshots: the UI never merges partial updates, any
// mutation triggers a full re-fetch of the owning list.
package api

// Consent is a patient's consent record as stored by the backend.
// Status transitions are client-initiated only for pending→active,
// pending→revoked, and active→revoked; every other state is terminal.
type Consent struct {
	ID                   string `json:"id"`
	PatientID            string `json:"patientId"`
	Purpose              string `json:"purpose"`
	Status               string `json:"status"`
	PatientWalletAddress string `json:"patientWalletAddress"`
	Signature            string `json:"signature"`
	Message              string `json:"message"`
	CreatedAt            string `json:"createdAt"`
	UpdatedAt            string `json:"updatedAt,omitempty"`
	ExpiresAt            string `json:"expiresAt,omitempty"`
	BlockchainTxHash     string `json:"blockchainTxHash,omitempty"`
	Creator              string `json:"creator,omitempty"`
}

// CreateConsentRequest is the payload for creating a consent. The message
// is the canonical consent string the wallet signed.
type CreateConsentRequest struct {
	PatientID            string `json:"patientId"`
	Purpose              string `json:"purpose"`
	PatientWalletAddress string `json:"patientWalletAddress"`
	Signature            string `json:"signature"`
	Message              string `json:"message"`
}

// Patient is a roster entry.
type Patient struct {
	ID            string `json:"id"`
	PatientID     string `json:"patientId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	WalletAddress string `json:"walletAddress,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// Pagination describes a page of results as reported by the backend.
type Pagination struct {
	Limit      int `json:"limit"`
	Page       int `json:"page"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PatientPage is one page of the patient roster.
type PatientPage struct {
	Patients   []Patient  `json:"patients"`
	Pagination Pagination `json:"pagination"`
}

// MedicalRecord belongs to exactly one patient. Optional fields
// (BlockchainHash, Status) may be empty; views suppress their rows.
type MedicalRecord struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Type           string `json:"type"`
	Status         string `json:"status,omitempty"`
	Date           string `json:"date"`
	Doctor         string `json:"doctor"`
	Hospital       string `json:"hospital"`
	Description    string `json:"description"`
	BlockchainHash string `json:"blockchainHash,omitempty"`
}

// Transaction is a ledger transaction.
type Transaction struct {
	ID               string  `json:"id,omitempty"`
	BlockchainTxHash string  `json:"blockchainTxHash,omitempty"`
	Type             string  `json:"type"`
	Status           string  `json:"status"`
	From             string  `json:"from"`
	To               string  `json:"to"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	GasUsed          int64   `json:"gasUsed"`
	BlockNumber      int64   `json:"blockNumber"`
	Timestamp        string  `json:"timestamp"`
	Description      string  `json:"description"`
	ContractAddress  string  `json:"contractAddress,omitempty"`
}

// Hash returns the transaction's identity: the chain hash when present,
// falling back to the backend id.
func (t Transaction) Hash() string {
	if t.BlockchainTxHash != "" {
		return t.BlockchainTxHash
	}
	return t.ID
}

// PlatformStats is a point-in-time snapshot of aggregate counts.
// No history is retained client-side.
type PlatformStats struct {
	TotalPatients     int `json:"totalPatients"`
	TotalRecords      int `json:"totalRecords"`
	TotalConsents     int `json:"totalConsents"`
	ActiveConsents    int `json:"activeConsents"`
	PendingConsents   int `json:"pendingConsents"`
	TotalTransactions int `json:"totalTransactions"`
}

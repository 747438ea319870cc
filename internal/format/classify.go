package format

import "strings"

// Classifiers below map free-form backend strings onto closed enums.
// Matching is case-insensitive and every enum has a defined fallback, so an
// unrecognized value renders as "unknown"/"other" rather than raw text.

// ConsentStatus is the lifecycle state of a consent record.
type ConsentStatus string

const (
	ConsentPending ConsentStatus = "pending"
	ConsentActive  ConsentStatus = "active"
	ConsentRevoked ConsentStatus = "revoked"
	ConsentExpired ConsentStatus = "expired"
	ConsentUnknown ConsentStatus = "unknown"
)

// ClassifyConsentStatus maps a raw status string onto a ConsentStatus.
func ClassifyConsentStatus(s string) ConsentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return ConsentPending
	case "active":
		return ConsentActive
	case "revoked":
		return ConsentRevoked
	case "expired":
		return ConsentExpired
	default:
		return ConsentUnknown
	}
}

// Color returns the badge color for the status (256-color palette index).
func (s ConsentStatus) Color() string {
	switch s {
	case ConsentActive:
		return "86"
	case ConsentPending:
		return "208"
	case ConsentRevoked:
		return "196"
	case ConsentExpired:
		return "243"
	default:
		return "241"
	}
}

// PurposeCategory buckets a free-text consent purpose by substring match.
type PurposeCategory string

const (
	PurposeResearch    PurposeCategory = "research"
	PurposeDataSharing PurposeCategory = "data-sharing"
	PurposeAnalytics   PurposeCategory = "analytics"
	PurposeInsurance   PurposeCategory = "insurance"
	PurposeOther       PurposeCategory = "other"
)

// ClassifyPurpose buckets a consent purpose into a category.
func ClassifyPurpose(purpose string) PurposeCategory {
	p := strings.ToLower(purpose)
	switch {
	case strings.Contains(p, "research"):
		return PurposeResearch
	case strings.Contains(p, "shar"):
		return PurposeDataSharing
	case strings.Contains(p, "analy"):
		return PurposeAnalytics
	case strings.Contains(p, "insur"):
		return PurposeInsurance
	default:
		return PurposeOther
	}
}

// RecordStatus is the verification state of a medical record.
type RecordStatus string

const (
	RecordVerified      RecordStatus = "verified"
	RecordPending       RecordStatus = "pending"
	RecordRejected      RecordStatus = "rejected"
	RecordStatusUnknown RecordStatus = "unknown"
)

// ClassifyRecordStatus maps a raw record status onto a RecordStatus.
func ClassifyRecordStatus(s string) RecordStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verified":
		return RecordVerified
	case "pending":
		return RecordPending
	case "rejected":
		return RecordRejected
	default:
		return RecordStatusUnknown
	}
}

// Color returns the badge color for the record status.
func (s RecordStatus) Color() string {
	switch s {
	case RecordVerified:
		return "86"
	case RecordPending:
		return "208"
	case RecordRejected:
		return "196"
	default:
		return "241"
	}
}

// RecordType is the kind of a medical record.
type RecordType string

const (
	RecordDiagnostic   RecordType = "diagnostic"
	RecordLabResults   RecordType = "lab results"
	RecordPrescription RecordType = "prescription"
	RecordSurgery      RecordType = "surgery"
	RecordOther        RecordType = "other"
)

// ClassifyRecordType maps a raw record type onto a RecordType.
func ClassifyRecordType(s string) RecordType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "diagnostic":
		return RecordDiagnostic
	case "lab results", "lab_results", "lab":
		return RecordLabResults
	case "prescription":
		return RecordPrescription
	case "surgery":
		return RecordSurgery
	default:
		return RecordOther
	}
}

// TxType is the kind of a ledger transaction.
type TxType string

const (
	TxConsentCreated      TxType = "consent_created"
	TxRecordUploaded      TxType = "record_uploaded"
	TxAccessGranted       TxType = "access_granted"
	TxTransfer            TxType = "transfer"
	TxContractInteraction TxType = "contract_interaction"
	TxDeployment          TxType = "deployment"
	TxUnknown             TxType = "unknown"
)

// ClassifyTxType maps a raw transaction type onto a TxType.
func ClassifyTxType(s string) TxType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "consent_created":
		return TxConsentCreated
	case "record_uploaded":
		return TxRecordUploaded
	case "access_granted":
		return TxAccessGranted
	case "transfer":
		return TxTransfer
	case "contract_interaction":
		return TxContractInteraction
	case "deployment":
		return TxDeployment
	default:
		return TxUnknown
	}
}

// Label returns a human-readable label for the transaction type.
func (t TxType) Label() string {
	switch t {
	case TxConsentCreated:
		return "Consent Created"
	case TxRecordUploaded:
		return "Record Uploaded"
	case TxAccessGranted:
		return "Access Granted"
	case TxTransfer:
		return "Transfer"
	case TxContractInteraction:
		return "Contract Call"
	case TxDeployment:
		return "Deployment"
	default:
		return "Unknown"
	}
}

// TxStatus is the confirmation state of a ledger transaction.
// "success" and "error" wire values collapse into confirmed/failed.
type TxStatus string

const (
	TxConfirmed     TxStatus = "confirmed"
	TxPending       TxStatus = "pending"
	TxFailed        TxStatus = "failed"
	TxStatusUnknown TxStatus = "unknown"
)

// ClassifyTxStatus maps a raw transaction status onto a TxStatus.
func ClassifyTxStatus(s string) TxStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "confirmed", "success":
		return TxConfirmed
	case "pending":
		return TxPending
	case "failed", "error":
		return TxFailed
	default:
		return TxStatusUnknown
	}
}

// Color returns the badge color for the transaction status.
func (s TxStatus) Color() string {
	switch s {
	case TxConfirmed:
		return "86"
	case TxPending:
		return "208"
	case TxFailed:
		return "196"
	default:
		return "241"
	}
}

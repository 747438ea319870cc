package ui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"consentdash/internal/api"
	"consentdash/internal/wallet"
)

// searchDebounce is the quiescence window for roster search input.
// Keystrokes closer together than this share one fetch.
const searchDebounce = 300 * time.Millisecond

// fetchTimeout bounds every backend call dispatched from the UI.
const fetchTimeout = 30 * time.Second

// fetchConsentsCmd loads the consent list for the given status filter.
// seq and filter ride along so the view can drop stale responses.
func fetchConsentsCmd(deps Deps, seq int, filter string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		consents, err := deps.Client.GetConsents(ctx, "", filter)
		return ConsentsLoadedMsg{Seq: seq, Filter: filter, Consents: consents, Err: err}
	}
}

// createConsentCmd runs the sign-then-submit flow. Signing happens first;
// if the wallet rejects, no backend call is made and the flow aborts with a
// SigningError. The payload is all-or-nothing.
func createConsentCmd(deps Deps, patientID, purpose string) tea.Cmd {
	return func() tea.Msg {
		if deps.Signer == nil {
			return ConsentCreatedMsg{Err: &api.ValidationError{Field: "wallet", Reason: "no wallet connected"}}
		}
		// Signing can wait on external approval, so it gets no deadline.
		msg := wallet.ConsentMessage(purpose, patientID)
		sig, err := deps.Signer.SignMessage(context.Background(), msg)
		if err != nil {
			return ConsentCreatedMsg{Err: &api.SigningError{Err: err}}
		}

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		created, err := deps.Client.CreateConsent(ctx, api.CreateConsentRequest{
			PatientID:            patientID,
			Purpose:              purpose,
			PatientWalletAddress: deps.Signer.Address(),
			Signature:            sig,
			Message:              msg,
		})
		return ConsentCreatedMsg{Consent: created, Err: err}
	}
}

// updateConsentCmd commits a confirmed status transition.
func updateConsentCmd(deps Deps, consentID, newStatus string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		_, err := deps.Client.UpdateConsentStatus(ctx, consentID, newStatus)
		return ConsentUpdatedMsg{ConsentID: consentID, NewStatus: newStatus, Err: err}
	}
}

// fetchPatientsCmd loads one roster page for the given search term.
func fetchPatientsCmd(deps Deps, seq, page, pageSize int, term string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		pp, err := deps.Client.GetPatients(ctx, page, pageSize, term)
		return PatientsLoadedMsg{Seq: seq, Page: pp, Err: err}
	}
}

// debounceCmd arms the single-shot search timer. Each keystroke re-arms with
// a new seq; only the message matching the latest seq triggers a fetch.
func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return SearchDebounceMsg{Seq: seq}
	})
}

// fetchPatientDetailCmd loads a patient and then their records. If the
// patient fetch fails or comes back empty the records are never requested.
func fetchPatientDetailCmd(deps Deps, seq int, patientID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		patient, err := deps.Client.GetPatient(ctx, patientID)
		if err != nil || patient == nil || patient.ID == "" {
			notFound := err == nil // fetch succeeded but came back empty
			var fe *api.FetchError
			if errors.As(err, &fe) && fe.StatusCode == 404 {
				notFound = true
			}
			return PatientDetailLoadedMsg{Seq: seq, PatientID: patientID, NotFound: notFound, Err: err}
		}

		records, err := deps.Client.GetPatientRecords(ctx, patientID)
		if err != nil {
			return PatientDetailLoadedMsg{Seq: seq, PatientID: patientID, Patient: patient, Err: err}
		}
		return PatientDetailLoadedMsg{Seq: seq, PatientID: patientID, Patient: patient, Records: records}
	}
}

// fetchTransactionsCmd loads ledger transactions, optionally wallet-scoped.
func fetchTransactionsCmd(deps Deps, seq int, walletAddress string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		txs, err := deps.Client.GetTransactions(ctx, walletAddress, api.DefaultTransactionLimit)
		return TransactionsLoadedMsg{Seq: seq, Wallet: walletAddress, Transactions: txs, Err: err}
	}
}

// fetchStatsCmd loads the aggregate snapshot.
func fetchStatsCmd(deps Deps, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		stats, err := deps.Client.GetStats(ctx)
		return StatsLoadedMsg{Seq: seq, Stats: stats, Err: err}
	}
}

// copyToClipboardCmd copies text to the system clipboard. Fire-and-forget:
// the error rides along only for the brief feedback line.
func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardCopiedMsg{Err: clipboard.WriteAll(text)}
	}
}

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"consentdash/internal/api"
	"consentdash/internal/format"
)

// TransactionsView lists ledger transactions, optionally scoped to the
// connected wallet.
type TransactionsView struct {
	deps Deps

	Transactions []api.Transaction
	Selected     int
	MineOnly     bool

	loading  bool
	err      error
	reqSeq   int
	feedback string // transient clipboard feedback
}

var _ View = (*TransactionsView)(nil)

// NewTransactionsView creates the transaction history view.
func NewTransactionsView(deps Deps) *TransactionsView {
	return &TransactionsView{deps: deps}
}

// walletFilter returns the address to scope the fetch to, or "".
func (v *TransactionsView) walletFilter() string {
	if !v.MineOnly {
		return ""
	}
	return v.deps.WalletAddress()
}

// Init implements View.
func (v *TransactionsView) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh dispatches a fetch for the current wallet filter.
func (v *TransactionsView) Refresh() tea.Cmd {
	v.reqSeq++
	v.loading = true
	v.err = nil
	return fetchTransactionsCmd(v.deps, v.reqSeq, v.walletFilter())
}

// SelectedTransaction returns the transaction under the cursor, or nil.
func (v *TransactionsView) SelectedTransaction() *api.Transaction {
	if v.Selected >= 0 && v.Selected < len(v.Transactions) {
		return &v.Transactions[v.Selected]
	}
	return nil
}

// Update implements View.
func (v *TransactionsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case TransactionsLoadedMsg:
		if msg.Seq != v.reqSeq || msg.Wallet != v.walletFilter() {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.Transactions = msg.Transactions
		if v.Selected >= len(v.Transactions) {
			v.Selected = 0
		}
		return v, nil
	case ClipboardCopiedMsg:
		if msg.Err == nil {
			v.feedback = "copied"
		}
		return v, nil
	case tea.KeyMsg:
		v.feedback = ""
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *TransactionsView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if v.Selected < len(v.Transactions)-1 {
			v.Selected++
		}
	case "k", "up":
		if v.Selected > 0 {
			v.Selected--
		}
	case "w":
		// Toggling only makes sense with a connected wallet.
		if !v.deps.WalletConnected() {
			return v, nil
		}
		v.MineOnly = !v.MineOnly
		v.Selected = 0
		return v, v.Refresh()
	case "y":
		if tx := v.SelectedTransaction(); tx != nil && tx.Hash() != "" {
			return v, copyToClipboardCmd(tx.Hash())
		}
	case "r":
		return v, v.Refresh()
	case "d":
		v.err = nil
	}
	return v, nil
}

// View implements View.
func (v *TransactionsView) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Transactions (%d)", len(v.Transactions))
	if v.MineOnly {
		title += "  " + Styles.Section.Render("[mine]")
	}
	b.WriteString(Styles.Title.Render(title) + "\n")

	hint := "y: copy hash  r: refresh"
	if v.deps.WalletConnected() {
		hint = "w: toggle mine/all  " + hint
	}
	if v.feedback != "" {
		hint += "  ✓ " + v.feedback
	}
	b.WriteString(Styles.Hint.Render(hint) + "\n\n")

	if v.err != nil {
		b.WriteString(Styles.Error.Render("Error: "+v.err.Error()) + "\n")
		b.WriteString(Styles.Hint.Render("r: retry  d: dismiss") + "\n")
		return b.String()
	}
	if v.loading {
		b.WriteString(Styles.Muted.Render("Loading…") + "\n")
		return b.String()
	}
	if len(v.Transactions) == 0 {
		if v.MineOnly {
			b.WriteString(Styles.Empty.Render("(no transactions for this wallet)") + "\n")
		} else {
			b.WriteString(Styles.Empty.Render("(no transactions)") + "\n")
		}
		return b.String()
	}

	now := v.deps.now()
	for i, tx := range v.Transactions {
		bullet := "  "
		typeStyle := Styles.Normal
		if i == v.Selected {
			bullet = "▸ "
			typeStyle = Styles.Selected
		}
		status := format.ClassifyTxStatus(tx.Status)
		line := bullet +
			BadgeStyle(status.Color()).Render("["+string(status)+"]") + " " +
			typeStyle.Render(format.ClassifyTxType(tx.Type).Label())
		if tx.From != "" || tx.To != "" {
			line += "  " + Styles.Muted.Render(format.ShortenAddr(tx.From)+" → "+format.ShortenAddr(tx.To))
		}
		if tx.Amount != 0 {
			line += "  " + Styles.Normal.Render(format.Amount(tx.Amount, tx.Currency))
		}
		if ago := format.TimeAgo(tx.Timestamp, now); ago != "" {
			line += "  " + Styles.Muted.Render(ago)
		}
		b.WriteString(line + "\n")

		if i == v.Selected {
			detail := "    " + Styles.Muted.Render(format.ShortenAddr(tx.Hash()))
			if tx.BlockNumber > 0 {
				detail += Styles.Muted.Render(fmt.Sprintf("  block %d", tx.BlockNumber))
			}
			if tx.GasUsed > 0 {
				detail += Styles.Muted.Render(fmt.Sprintf("  gas %d", tx.GasUsed))
			}
			b.WriteString(detail + "\n")
		}
	}
	return b.String()
}

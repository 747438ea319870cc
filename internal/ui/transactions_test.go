package ui

import (
	"strings"
	"testing"

	"consentdash/internal/api"
)

func TestTransactionsView_ToggleMineRequiresWallet(t *testing.T) {
	v := NewTransactionsView(Deps{}) // no signer

	_, cmd := v.Update(keyMsg("w"))
	if cmd != nil || v.MineOnly {
		t.Error("toggling the wallet filter without a wallet should be a no-op")
	}
}

func TestTransactionsView_ToggleMineRefetches(t *testing.T) {
	v := NewTransactionsView(Deps{Signer: stubSigner{addr: "0xabc"}})

	_, cmd := v.Update(keyMsg("w"))
	if cmd == nil || !v.MineOnly {
		t.Fatalf("toggle should refetch scoped to the wallet, MineOnly=%v", v.MineOnly)
	}
	if v.walletFilter() != "0xabc" {
		t.Errorf("walletFilter = %q, want 0xabc", v.walletFilter())
	}

	_, cmd = v.Update(keyMsg("w"))
	if cmd == nil || v.MineOnly {
		t.Error("second toggle should refetch unscoped")
	}
}

func TestTransactionsView_StaleOrMismatchedResponseDropped(t *testing.T) {
	v := NewTransactionsView(Deps{Signer: stubSigner{addr: "0xabc"}})
	_ = v.Refresh()        // seq 1, all
	v.Update(keyMsg("w"))  // seq 2, mine

	// Late answer to the unscoped fetch: right era is gone, both tags mismatch.
	v.Update(TransactionsLoadedMsg{Seq: 1, Wallet: "", Transactions: []api.Transaction{{ID: "stale"}}})
	if len(v.Transactions) != 0 {
		t.Error("stale unscoped response should be dropped")
	}

	// Correct seq but wrong wallet tag is still dropped.
	v.Update(TransactionsLoadedMsg{Seq: 2, Wallet: "", Transactions: []api.Transaction{{ID: "wrong"}}})
	if len(v.Transactions) != 0 {
		t.Error("response with mismatched wallet tag should be dropped")
	}

	v.Update(TransactionsLoadedMsg{Seq: 2, Wallet: "0xabc", Transactions: []api.Transaction{{ID: "mine"}}})
	if len(v.Transactions) != 1 || v.Transactions[0].ID != "mine" {
		t.Errorf("matching response should be applied, got %+v", v.Transactions)
	}
}

func TestTransactionsView_CopyHash(t *testing.T) {
	v := NewTransactionsView(Deps{})
	v.Transactions = []api.Transaction{
		{ID: "tx-1", BlockchainTxHash: "0xdeadbeef"},
	}
	v.Selected = 0

	_, cmd := v.Update(keyMsg("y"))
	if cmd == nil {
		t.Fatal("y on a row with a hash should dispatch a copy")
	}

	v.Update(ClipboardCopiedMsg{})
	if !strings.Contains(v.View(), "copied") {
		t.Error("successful copy should show transient feedback")
	}
	v.Update(keyMsg("j"))
	if strings.Contains(v.View(), "copied") {
		t.Error("feedback should clear on the next keypress")
	}
}

func TestTransactionsView_CopyWithoutHashIsNoOp(t *testing.T) {
	v := NewTransactionsView(Deps{})
	if _, cmd := v.Update(keyMsg("y")); cmd != nil {
		t.Error("y with no selection should be a no-op")
	}

	v.Transactions = []api.Transaction{{ID: ""}}
	v.Selected = 0
	if _, cmd := v.Update(keyMsg("y")); cmd != nil {
		t.Error("y on a row with no hash or id should be a no-op")
	}
}

func TestTransactionHashFallback(t *testing.T) {
	tx := api.Transaction{ID: "tx-1"}
	if tx.Hash() != "tx-1" {
		t.Errorf("Hash should fall back to id, got %q", tx.Hash())
	}
	tx.BlockchainTxHash = "0xbeef"
	if tx.Hash() != "0xbeef" {
		t.Errorf("Hash should prefer the chain hash, got %q", tx.Hash())
	}
}

package ui

import (
	"errors"
	"strings"
	"testing"

	"consentdash/internal/api"
)

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"pending", "active", true},
		{"pending", "revoked", true},
		{"active", "revoked", true},
		{"active", "active", false},
		{"active", "pending", false},
		{"revoked", "active", false},
		{"expired", "active", false},
		{"expired", "revoked", false},
		{"PENDING", "Active", true}, // classification is case-insensitive
		{"garbage", "active", false},
	}
	for _, tt := range tests {
		if got := TransitionAllowed(tt.from, tt.to); got != tt.want {
			t.Errorf("TransitionAllowed(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestConsentsView_ProposeEmitsRequest(t *testing.T) {
	v := NewConsentsView(Deps{})
	v.Consents = []api.Consent{
		{ID: "c1", Status: "pending", Purpose: "Research study"},
	}
	v.Selected = 0

	_, cmd := v.Update(keyMsg("a"))
	if cmd == nil {
		t.Fatal("expected a command from activate on pending consent")
	}
	msg, ok := cmd().(RequestStatusChangeMsg)
	if !ok {
		t.Fatalf("expected RequestStatusChangeMsg, got %T", cmd())
	}
	if msg.ConsentID != "c1" || msg.NewStatus != "active" {
		t.Errorf("unexpected request: %+v", msg)
	}
}

func TestConsentsView_DisallowedProposalIsNoOp(t *testing.T) {
	v := NewConsentsView(Deps{})
	v.Consents = []api.Consent{
		{ID: "c1", Status: "revoked", Purpose: "Research study"},
	}
	v.Selected = 0

	if _, cmd := v.Update(keyMsg("a")); cmd != nil {
		t.Error("activate on revoked consent should be a silent no-op")
	}
	if _, cmd := v.Update(keyMsg("x")); cmd != nil {
		t.Error("revoke on revoked consent should be a silent no-op")
	}
}

func TestConsentsView_ProposeWithEmptyListIsNoOp(t *testing.T) {
	v := NewConsentsView(Deps{})
	if _, cmd := v.Update(keyMsg("a")); cmd != nil {
		t.Error("activate with no consents should be a no-op")
	}
}

func TestConsentsView_StaleResponseDropped(t *testing.T) {
	v := NewConsentsView(Deps{})
	_ = v.Refresh() // seq 1
	_ = v.Refresh() // seq 2

	v.Update(ConsentsLoadedMsg{Seq: 1, Filter: "", Consents: []api.Consent{{ID: "stale"}}})
	if len(v.Consents) != 0 {
		t.Error("stale response (old seq) should be dropped")
	}
	if !v.loading {
		t.Error("dropping a stale response must not clear the loading state")
	}

	v.Update(ConsentsLoadedMsg{Seq: 2, Filter: "", Consents: []api.Consent{{ID: "fresh"}}})
	if len(v.Consents) != 1 || v.Consents[0].ID != "fresh" {
		t.Errorf("current response should be applied, got %+v", v.Consents)
	}
	if v.loading {
		t.Error("applying the current response should clear loading")
	}
}

func TestConsentsView_MismatchedFilterDropped(t *testing.T) {
	v := NewConsentsView(Deps{})
	_ = v.Refresh() // seq 1, filter ""
	v.FilterIdx = 1 // now "pending", without a new dispatch

	v.Update(ConsentsLoadedMsg{Seq: 1, Filter: "", Consents: []api.Consent{{ID: "c1"}}})
	if len(v.Consents) != 0 {
		t.Error("response for a different filter should be dropped")
	}
}

func TestConsentsView_FilterCycle(t *testing.T) {
	v := NewConsentsView(Deps{})
	want := []string{"pending", "active", "revoked", "expired", ""}
	for _, w := range want {
		_, cmd := v.Update(keyMsg("f"))
		if cmd == nil {
			t.Fatal("filter change should dispatch a refetch")
		}
		if got := v.Filter(); got != w {
			t.Errorf("filter = %q, want %q", got, w)
		}
	}
}

func TestConsentsView_FilterResetsSelection(t *testing.T) {
	v := NewConsentsView(Deps{})
	v.Consents = []api.Consent{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	v.Selected = 2

	v.Update(keyMsg("f"))
	if v.Selected != 0 {
		t.Errorf("selection should reset on filter change, got %d", v.Selected)
	}
}

func TestConsentsView_ErrorStateAndDismiss(t *testing.T) {
	v := NewConsentsView(Deps{})
	_ = v.Refresh()
	v.Update(ConsentsLoadedMsg{Seq: 1, Filter: "", Err: errors.New("fetch failed")})

	if !strings.Contains(v.View(), "fetch failed") {
		t.Error("error should be rendered inline")
	}

	v.Update(keyMsg("d"))
	if strings.Contains(v.View(), "fetch failed") {
		t.Error("d should dismiss the inline error")
	}
}

func TestConsentsView_CursorClamp(t *testing.T) {
	v := NewConsentsView(Deps{})
	v.Consents = []api.Consent{{ID: "a"}, {ID: "b"}}
	v.Selected = 0

	v.Update(keyMsg("k"))
	if v.Selected != 0 {
		t.Error("k at top should stay at top")
	}
	v.Update(keyMsg("j"))
	v.Update(keyMsg("j"))
	if v.Selected != 1 {
		t.Errorf("j at bottom should stay at bottom, got %d", v.Selected)
	}
	v.Update(keyMsg("G"))
	if v.Selected != 1 {
		t.Errorf("G should jump to last, got %d", v.Selected)
	}
	v.Update(keyMsg("g"))
	if v.Selected != 0 {
		t.Errorf("g should jump to first, got %d", v.Selected)
	}
}

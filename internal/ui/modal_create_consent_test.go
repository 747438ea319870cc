package ui

import (
	"strings"
	"testing"
)

func TestCreateConsentModal_ValidationBlocksSubmit(t *testing.T) {
	m := NewCreateConsentModal(true)

	// Empty patient id.
	_, cmd := m.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("empty form should not submit")
	}
	if !strings.Contains(m.View(), "patient id is required") {
		t.Error("expected patient id validation message")
	}

	// Fill patient id, leave purpose empty.
	for _, r := range "P-001" {
		m.Update(keyMsg(string(r)))
	}
	_, cmd = m.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("form without a purpose should not submit")
	}
	if !strings.Contains(m.View(), "purpose is required") {
		t.Error("expected purpose validation message")
	}
}

func TestCreateConsentModal_NoWalletBlocksSubmit(t *testing.T) {
	m := NewCreateConsentModal(false)
	for _, r := range "P-001" {
		m.Update(keyMsg(string(r)))
	}
	m.Update(keyMsg("tab"))
	for _, r := range "Research" {
		m.Update(keyMsg(string(r)))
	}

	if _, cmd := m.Update(keyMsg("enter")); cmd != nil {
		t.Error("submit without a wallet should be blocked")
	}
}

func TestCreateConsentModal_SubmitLocksAndEmits(t *testing.T) {
	m := NewCreateConsentModal(true)
	for _, r := range "P-001" {
		m.Update(keyMsg(string(r)))
	}
	m.Update(keyMsg("tab"))
	for _, r := range "Research" {
		m.Update(keyMsg(string(r)))
	}

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("valid form should submit")
	}
	msg, ok := cmd().(SubmitConsentMsg)
	if !ok || msg.PatientID != "P-001" || msg.Purpose != "Research" {
		t.Errorf("unexpected submission: %#v", cmd())
	}
	if !m.Busy {
		t.Error("submit should lock the form")
	}

	// Locked form ignores input until Fail or dismissal.
	if _, cmd := m.Update(keyMsg("enter")); cmd != nil {
		t.Error("locked form should ignore a second submit")
	}
	m.Fail()
	if m.Busy {
		t.Error("Fail should unlock the form")
	}
}

func TestConfirmStatusModal_BusyIgnoresInput(t *testing.T) {
	m := NewConfirmStatusModal("c1", "revoked")

	_, cmd := m.Update(keyMsg("y"))
	if cmd == nil || !m.Busy {
		t.Fatal("y should lock and emit the commit")
	}
	if _, ok := cmd().(ConfirmStatusChangeMsg); !ok {
		t.Fatalf("expected ConfirmStatusChangeMsg, got %T", cmd())
	}

	if _, cmd := m.Update(keyMsg("esc")); cmd != nil {
		t.Error("busy modal should ignore esc")
	}
	if _, cmd := m.Update(keyMsg("enter")); cmd != nil {
		t.Error("busy modal should ignore enter")
	}
}

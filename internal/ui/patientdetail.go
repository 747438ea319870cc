package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"consentdash/internal/api"
	"consentdash/internal/format"
	"consentdash/internal/ui/textutil"
)

// PatientDetailView shows one patient and their medical records.
// A failed or empty patient fetch renders a not-found state; records are
// never shown without their owner.
type PatientDetailView struct {
	deps Deps

	PatientID string
	Patient   *api.Patient
	Records   []api.MedicalRecord

	loading  bool
	notFound bool
	err      error
	reqSeq   int
}

var _ View = (*PatientDetailView)(nil)

// NewPatientDetailView creates a detail view for the given patient id.
func NewPatientDetailView(deps Deps, patientID string) *PatientDetailView {
	return &PatientDetailView{deps: deps, PatientID: patientID}
}

// Init implements View.
func (v *PatientDetailView) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh reloads the patient and their records.
func (v *PatientDetailView) Refresh() tea.Cmd {
	v.reqSeq++
	v.loading = true
	v.notFound = false
	v.err = nil
	return fetchPatientDetailCmd(v.deps, v.reqSeq, v.PatientID)
}

// Update implements View.
func (v *PatientDetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case PatientDetailLoadedMsg:
		if msg.Seq != v.reqSeq || msg.PatientID != v.PatientID {
			return v, nil
		}
		v.loading = false
		v.notFound = msg.NotFound
		v.err = msg.Err
		v.Patient = msg.Patient
		v.Records = msg.Records
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return v, v.Refresh()
		case "esc":
			return v, nil // app pops the view stack
		}
	}
	return v, nil
}

// View implements View.
func (v *PatientDetailView) View() string {
	var b strings.Builder
	b.WriteString("← " + Styles.Title.Render("Patient Detail") + "\n\n")

	switch {
	case v.loading:
		b.WriteString(Styles.Muted.Render("Loading…") + "\n")
		return b.String()
	case v.notFound:
		b.WriteString(Styles.Error.Render("Patient not found") + "\n")
		b.WriteString(Styles.Hint.Render("esc: back") + "\n")
		return b.String()
	case v.err != nil:
		b.WriteString(Styles.Error.Render("Error: "+v.err.Error()) + "\n")
		b.WriteString(Styles.Hint.Render("r: retry  esc: back") + "\n")
		return b.String()
	case v.Patient == nil:
		b.WriteString(Styles.Empty.Render("(nothing loaded)") + "\n")
		return b.String()
	}

	p := v.Patient
	b.WriteString(Styles.Selected.Render(p.Name) + "  " + Styles.Muted.Render(p.PatientID) + "\n")
	writeField(&b, "Email", p.Email)
	writeField(&b, "Phone", p.Phone)
	writeField(&b, "Born", format.Date(p.DateOfBirth))
	writeField(&b, "Gender", p.Gender)
	writeField(&b, "Address", p.Address)
	if p.WalletAddress != "" {
		writeField(&b, "Wallet", format.ShortenAddr(p.WalletAddress))
	}

	b.WriteString("\n" + Styles.Section.Render(fmt.Sprintf("Medical Records (%d)", len(v.Records))) + "\n")
	if len(v.Records) == 0 {
		b.WriteString("  " + Styles.Empty.Render("(no records)") + "\n")
		return b.String()
	}
	for _, r := range v.Records {
		b.WriteString(v.renderRecord(r))
	}
	return b.String()
}

// renderRecord renders one medical record block. Absent optional fields
// suppress their row entirely rather than rendering a placeholder.
func (v *PatientDetailView) renderRecord(r api.MedicalRecord) string {
	var b strings.Builder
	header := "  " + Styles.Normal.Render(r.Title) +
		"  " + Styles.Muted.Render(string(format.ClassifyRecordType(r.Type)))
	if r.Status != "" {
		status := format.ClassifyRecordStatus(r.Status)
		header += "  " + BadgeStyle(status.Color()).Render("["+string(status)+"]")
	}
	if d := format.Date(r.Date); d != "" {
		header += "  " + Styles.Muted.Render(d)
	}
	b.WriteString(header + "\n")

	if r.Doctor != "" || r.Hospital != "" {
		b.WriteString("    " + Styles.Muted.Render(strings.TrimSpace(r.Doctor+"  "+r.Hospital)) + "\n")
	}
	if r.Description != "" {
		b.WriteString("    " + Styles.Muted.Render(textutil.Truncate(r.Description, 70)) + "\n")
	}
	if r.BlockchainHash != "" {
		b.WriteString("    " + Styles.Muted.Render("⛓ "+format.ShortenAddr(r.BlockchainHash)) + "\n")
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString("  " + Styles.Muted.Render(label+":") + " " + Styles.Normal.Render(value) + "\n")
}

package render

import (
	"fmt"

	"github.com/safetyworks/depot-report/pkg/models/domain"
)

// Page geometry in PostScript points (A4 portrait). The bottom buffer is
// deliberately generous so a wrapped line is never drawn into the margin.
const (
	PageWidth  = 595.28
	PageHeight = 841.89

	MarginLeft = 40.0
	MarginTop  = 50.0

	marginRight  = 40.0
	bottomBuffer = 70.0

	// maxCursorY is the overflow threshold: content written past this
	// point moves to a fresh page first.
	maxCursorY = PageHeight - bottomBuffer

	lineHeight = 14.0

	titleSize      = 16.0
	sectionSize    = 13.0
	subSectionSize = 11.0
	bodySize       = 10.0

	valueIndent = 12.0
	usableWidth = PageWidth - MarginLeft - marginRight

	// placeholder stands in for every absent optional value so rendered
	// reports have uniform structure regardless of which fields were
	// filled in.
	placeholder = "N/A"
)

type Style string

const (
	StyleRegular Style = ""
	StyleBold    Style = "B"
)

// TextOp is a single positioned text run. X, Y address the baseline origin
// from the page's top-left corner.
type TextOp struct {
	X     float64
	Y     float64
	Style Style
	Size  float64
	Text  string
}

// Page is one finalized page of the rendered document.
type Page struct {
	Number int
	Ops    []TextOp
}

// Renderer lays a validated report out as a sequence of fixed-size pages.
// It never mutates the report and keeps no state across Render calls.
type Renderer struct {
	measurer Measurer
}

func NewRenderer(measurer Measurer) *Renderer {
	if measurer == nil {
		measurer = NewMeasurer()
	}
	return &Renderer{measurer: measurer}
}

// Render walks the report in its fixed section order and emits draw
// instructions, breaking pages live as the cursor approaches the bottom
// threshold. The report must already have passed validation.
func (r *Renderer) Render(report domain.Report) []Page {
	d := &document{
		measurer: r.measurer,
		current:  Page{Number: 1},
		cursorY:  MarginTop,
	}

	d.addTitle("ANNUAL DEPOT SAFETY COMPLIANCE REPORT")
	d.addField("Depot Location:", report.DepotLocation, true)
	d.addField("Reporting Period:", report.ReportingPeriod, true)
	d.addField("Prepared By:", report.PreparedBy, true)
	d.addField("Date:", report.Date.Format("2006-01-02"), true)

	d.addSectionTitle("1. EXECUTIVE SUMMARY")
	d.addField("Overview:", report.ExecutiveSummary.Overview, true)
	d.addField("Key Achievements:", report.ExecutiveSummary.KeyAchievements, true)
	d.addField("Major Challenges:", report.ExecutiveSummary.MajorChallenges, true)

	d.addSectionTitle("2. SAFETY POLICY STATEMENT")
	d.addBodyText(report.PolicyStatement)

	d.addSectionTitle("3. HEALTH & SAFETY PERFORMANCE")
	d.addSubSectionTitle("3.1 Incident Summary")
	incidents := report.HealthAndSafetyPerformance.IncidentSummary
	d.addField("LTIFR:", incidents.LTIFR, false)
	d.addField("TRIFR:", incidents.TRIFR, false)
	d.addField("Fatalities:", incidents.Fatalities, false)
	d.addField("Lost Time Injuries:", incidents.LostTimeInjuries, false)
	d.addField("Near Misses:", incidents.NearMisses, false)
	d.addSubSectionTitle("3.2 Year-on-Year Comparison")
	d.addBodyText(report.HealthAndSafetyPerformance.YearOnYearComparison)

	d.addSectionTitle("4. HAZARD IDENTIFICATION & RISK ASSESSMENT")
	d.addField("Process Description:", report.HazardIdentification.ProcessDescription, true)
	d.addField("Top Hazards:", report.HazardIdentification.TopHazards, true)
	d.addField("Control Measures:", report.HazardIdentification.ControlMeasures, true)

	d.addSectionTitle("5. TRAINING & COMPETENCY")
	d.addField("Inductions Completed:", report.TrainingAndCompetency.InductionsCompleted, true)
	d.addField("Refresher Training:", report.TrainingAndCompetency.RefresherTraining, true)
	d.addField("Outstanding Training:", report.TrainingAndCompetency.OutstandingTraining, true)

	d.addSectionTitle("6. INCIDENT INVESTIGATION & CORRECTIVE ACTIONS")
	d.addField("Incidents Investigated:", report.IncidentInvestigation.IncidentsInvestigated, true)
	d.addField("Root Cause Summary:", report.IncidentInvestigation.RootCauseSummary, true)
	d.addField("Corrective Actions Status:", report.IncidentInvestigation.CorrectiveActionsStatus, true)

	d.addSectionTitle("7. EMERGENCY PREPAREDNESS")
	d.addField("Drills Conducted:", report.EmergencyPreparedness.DrillsConducted, true)
	d.addField("Equipment Inspections:", report.EmergencyPreparedness.EquipmentInspections, true)
	d.addField("Improvement Actions:", report.EmergencyPreparedness.ImprovementActions, true)

	d.addSectionTitle("8. CONTRACTOR & VISITOR MANAGEMENT")
	d.addField("Contractors Inducted:", report.ContractorManagement.ContractorsInducted, true)
	d.addField("Compliance Checks:", report.ContractorManagement.ComplianceChecks, true)
	d.addField("Issues Identified:", report.ContractorManagement.IssuesIdentified, true)

	d.addSectionTitle("9. EQUIPMENT & MAINTENANCE SAFETY")
	d.addField("Maintenance Compliance:", report.EquipmentSafety.MaintenanceCompliance, true)
	d.addField("Defects Reported:", report.EquipmentSafety.DefectsReported, true)
	d.addField("Critical Equipment Status:", report.EquipmentSafety.CriticalEquipmentStatus, true)

	d.addSectionTitle("10. OCCUPATIONAL HEALTH & HYGIENE")
	d.addField("Medicals Completed:", report.OccupationalHealth.MedicalsCompleted, true)
	d.addField("Hygiene Monitoring:", report.OccupationalHealth.HygieneMonitoring, true)
	d.addField("Wellness Initiatives:", report.OccupationalHealth.WellnessInitiatives, true)

	d.addSectionTitle("11. AUDIT & INSPECTION FINDINGS")
	d.addField("Audits Conducted:", report.AuditFindings.AuditsConducted, true)
	d.addField("Major Findings:", report.AuditFindings.MajorFindings, true)
	d.addField("Close-Out Progress:", report.AuditFindings.CloseOutProgress, true)

	d.addSectionTitle("12. CONTINUOUS IMPROVEMENT PLAN")
	d.addField("Objectives for Next Year:", report.ImprovementPlan.ObjectivesNextYear, true)
	d.addField("Resource Requirements:", report.ImprovementPlan.ResourceRequirements, true)
	d.addField("Management Commitment:", report.ImprovementPlan.ManagementCommitment, true)

	// The appendix is the one block that is omitted entirely when absent.
	if report.Appendix != "" {
		d.addSectionTitle("APPENDIX")
		d.addBodyText(report.Appendix)
	}

	return d.finalize()
}

// document is the per-render accumulator: the finalized pages, the page
// being filled, and the vertical cursor on it.
type document struct {
	measurer Measurer
	pages    []Page
	current  Page
	cursorY  float64
}

// ensureRoom starts a new page when the next line would land past the
// overflow threshold. Content already emitted is never revisited.
func (d *document) ensureRoom() {
	if d.cursorY > maxCursorY {
		d.pages = append(d.pages, d.current)
		d.current = Page{Number: d.current.Number + 1}
		d.cursorY = MarginTop
	}
}

func (d *document) emit(x float64, style Style, size float64, text string) {
	d.current.Ops = append(d.current.Ops, TextOp{
		X:     x,
		Y:     d.cursorY,
		Style: style,
		Size:  size,
		Text:  text,
	})
}

func (d *document) addTitle(text string) {
	d.ensureRoom()
	d.emit(MarginLeft, StyleBold, titleSize, text)
	d.cursorY += 2 * lineHeight
}

func (d *document) addSectionTitle(text string) {
	d.ensureRoom()
	d.emit(MarginLeft, StyleBold, sectionSize, text)
	d.cursorY += 1.5 * lineHeight
}

func (d *document) addSubSectionTitle(text string) {
	d.ensureRoom()
	d.emit(MarginLeft, StyleBold, subSectionSize, text)
	d.cursorY += lineHeight
}

// addField draws the label at the left margin and the wrapped value lines
// indented beneath it. The overflow check runs before every wrapped line,
// so a long value splits across the page boundary mid-field and continues
// at the next page's top margin.
func (d *document) addField(label, value string, boldLabel bool) {
	if value == "" {
		value = placeholder
	}

	labelStyle := StyleRegular
	if boldLabel {
		labelStyle = StyleBold
	}

	d.ensureRoom()
	d.emit(MarginLeft, labelStyle, bodySize, label)
	d.cursorY += lineHeight

	for _, line := range d.measurer.WrapText(value, bodySize, usableWidth-valueIndent) {
		d.ensureRoom()
		d.emit(MarginLeft+valueIndent, StyleRegular, bodySize, line)
		d.cursorY += lineHeight
	}
}

// addBodyText draws free text at the left margin with the same per-line
// page-break discipline as addField.
func (d *document) addBodyText(text string) {
	if text == "" {
		text = placeholder
	}
	for _, line := range d.measurer.WrapText(text, bodySize, usableWidth) {
		d.ensureRoom()
		d.emit(MarginLeft, StyleRegular, bodySize, line)
		d.cursorY += lineHeight
	}
}

func (d *document) finalize() []Page {
	d.pages = append(d.pages, d.current)
	return d.pages
}

// Describe returns a one-line summary of a rendered document, used by the
// CLI after an export.
func Describe(pages []Page) string {
	ops := 0
	for _, p := range pages {
		ops += len(p.Ops)
	}
	return fmt.Sprintf("%d pages, %d text runs", len(pages), ops)
}

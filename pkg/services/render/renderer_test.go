package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetyworks/depot-report/pkg/models/domain"
)

// lineMeasurer treats every newline-separated line of the input as one
// wrapped line, giving tests exact control over wrapped line counts.
type lineMeasurer struct{}

func (lineMeasurer) WrapText(text string, size float64, width float64) []string {
	return strings.Split(text, "\n")
}

func sampleReport() domain.Report {
	return domain.Report{
		ID:              "r-1",
		DepotLocation:   "Pinetown",
		ReportingPeriod: "2024",
		PreparedBy:      "J. Smith",
		Date:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ExecutiveSummary: domain.ExecutiveSummary{
			Overview: "Safety performance improved across the depot this year.",
		},
		PolicyStatement: "We are committed to a zero-harm workplace for all staff.",
		HealthAndSafetyPerformance: domain.HealthAndSafetyPerformance{
			IncidentSummary: domain.IncidentSummary{
				LTIFR:            "0.8",
				TRIFR:            "2.1",
				Fatalities:       "0",
				LostTimeInjuries: "1",
				NearMisses:       "14",
			},
		},
		HazardIdentification: domain.HazardIdentification{
			ProcessDescription: "Quarterly HIRA reviews.",
			TopHazards:         "Vehicle movement, working at height.",
			ControlMeasures:    "Segregated walkways and harness inspections.",
		},
		TrainingAndCompetency: domain.TrainingAndCompetency{
			InductionsCompleted: "42",
			RefresherTraining:   "38",
		},
		IncidentInvestigation: domain.IncidentInvestigation{
			IncidentsInvestigated:   "6",
			RootCauseSummary:        "Rushed loading procedures.",
			CorrectiveActionsStatus: "Seven of nine actions closed.",
		},
		EmergencyPreparedness: domain.EmergencyPreparedness{
			DrillsConducted:      "4",
			EquipmentInspections: "12",
		},
		ContractorManagement: domain.ContractorManagement{
			ContractorsInducted: "17",
			ComplianceChecks:    "Monthly contractor file audits.",
		},
		EquipmentSafety: domain.EquipmentSafety{
			MaintenanceCompliance:   "96%",
			DefectsReported:         "23",
			CriticalEquipmentStatus: "All lifting equipment certified.",
		},
		OccupationalHealth: domain.OccupationalHealth{
			MedicalsCompleted: "40",
			HygieneMonitoring: "Noise and dust surveys completed.",
		},
		AuditFindings: domain.AuditFindings{
			AuditsConducted:  "3",
			MajorFindings:    "Two findings on permit-to-work records.",
			CloseOutProgress: "Closed within thirty days.",
		},
		ImprovementPlan: domain.ImprovementPlan{
			ObjectivesNextYear:   "Reduce LTIFR below 0.5.",
			ManagementCommitment: "Budget approved for safety officer.",
		},
	}
}

func allOps(pages []Page) []TextOp {
	var ops []TextOp
	for _, p := range pages {
		ops = append(ops, p.Ops...)
	}
	return ops
}

func opTexts(pages []Page) []string {
	var texts []string
	for _, op := range allOps(pages) {
		texts = append(texts, op.Text)
	}
	return texts
}

func TestRender_SectionOrderAndHeader(t *testing.T) {
	r := NewRenderer(lineMeasurer{})
	pages := r.Render(sampleReport())

	require.NotEmpty(t, pages)
	texts := opTexts(pages)

	wantOrder := []string{
		"ANNUAL DEPOT SAFETY COMPLIANCE REPORT",
		"Depot Location:",
		"Pinetown",
		"Reporting Period:",
		"Prepared By:",
		"Date:",
		"1. EXECUTIVE SUMMARY",
		"2. SAFETY POLICY STATEMENT",
		"3. HEALTH & SAFETY PERFORMANCE",
		"3.1 Incident Summary",
		"3.2 Year-on-Year Comparison",
		"4. HAZARD IDENTIFICATION & RISK ASSESSMENT",
		"5. TRAINING & COMPETENCY",
		"6. INCIDENT INVESTIGATION & CORRECTIVE ACTIONS",
		"7. EMERGENCY PREPAREDNESS",
		"8. CONTRACTOR & VISITOR MANAGEMENT",
		"9. EQUIPMENT & MAINTENANCE SAFETY",
		"10. OCCUPATIONAL HEALTH & HYGIENE",
		"11. AUDIT & INSPECTION FINDINGS",
		"12. CONTINUOUS IMPROVEMENT PLAN",
	}

	idx := -1
	for _, want := range wantOrder {
		found := -1
		for i, text := range texts {
			if i > idx && text == want {
				found = i
				break
			}
		}
		require.GreaterOrEqual(t, found, 0, "expected %q after position %d", want, idx)
		idx = found
	}
}

func TestRender_AbsentOptionalRendersPlaceholder(t *testing.T) {
	report := sampleReport()
	report.HealthAndSafetyPerformance.YearOnYearComparison = ""
	report.ExecutiveSummary.KeyAchievements = ""

	pages := NewRenderer(lineMeasurer{}).Render(report)
	texts := opTexts(pages)

	// "3.2 Year-on-Year Comparison" is followed by the literal placeholder.
	for i, text := range texts {
		if text == "3.2 Year-on-Year Comparison" {
			require.Less(t, i+1, len(texts))
			assert.Equal(t, "N/A", texts[i+1])
		}
		if text == "Key Achievements:" {
			require.Less(t, i+1, len(texts))
			assert.Equal(t, "N/A", texts[i+1])
		}
	}
	assert.Contains(t, texts, "N/A")
}

func TestRender_AppendixOnlyWhenPresent(t *testing.T) {
	report := sampleReport()
	pages := NewRenderer(lineMeasurer{}).Render(report)
	assert.NotContains(t, opTexts(pages), "APPENDIX")

	report.Appendix = "Supporting photographs are filed at the depot office."
	pages = NewRenderer(lineMeasurer{}).Render(report)
	assert.Contains(t, opTexts(pages), "APPENDIX")
}

func TestRender_Idempotent(t *testing.T) {
	report := sampleReport()
	r := NewRenderer(lineMeasurer{})

	first := r.Render(report)
	second := r.Render(report)

	assert.Equal(t, first, second)
}

func TestRender_LongFieldSplitsAcrossPages(t *testing.T) {
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = fmt.Sprintf("overview-line-%03d", i)
	}

	report := sampleReport()
	report.ExecutiveSummary.Overview = strings.Join(lines, "\n")

	pages := NewRenderer(lineMeasurer{}).Render(report)
	require.Greater(t, len(pages), 1, "200 wrapped lines must overflow one page")

	// Every wrapped line appears exactly once, in order, with none lost at
	// the page boundaries.
	var got []string
	for _, op := range allOps(pages) {
		if strings.HasPrefix(op.Text, "overview-line-") {
			got = append(got, op.Text)
		}
	}
	assert.Equal(t, lines, got)

	// Continuation pages restart at the top margin.
	for _, page := range pages[1:] {
		require.NotEmpty(t, page.Ops)
		assert.Equal(t, MarginTop, page.Ops[0].Y)
	}
}

func TestRender_NoLineDrawnPastThreshold(t *testing.T) {
	lines := make([]string, 300)
	for i := range lines {
		lines[i] = fmt.Sprintf("body-%03d", i)
	}
	report := sampleReport()
	report.PolicyStatement = strings.Join(lines, "\n")

	pages := NewRenderer(lineMeasurer{}).Render(report)
	for _, op := range allOps(pages) {
		assert.LessOrEqual(t, op.Y, maxCursorY)
	}
}

func TestRender_PageNumbersAreSequential(t *testing.T) {
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = "x"
	}
	report := sampleReport()
	report.Appendix = strings.Join(lines, "\n")

	pages := NewRenderer(lineMeasurer{}).Render(report)
	for i, page := range pages {
		assert.Equal(t, i+1, page.Number)
	}
}

package domain

import "time"

// Report is one validated annual safety-compliance submission for a depot.
// The twelve sections are fixed in shape and order; the renderer and the
// validation rule set both depend on that order.
type Report struct {
	ID              string
	DepotLocation   string
	ReportingPeriod string
	PreparedBy      string
	Date            time.Time

	ExecutiveSummary           ExecutiveSummary
	PolicyStatement            string
	HealthAndSafetyPerformance HealthAndSafetyPerformance
	HazardIdentification       HazardIdentification
	TrainingAndCompetency      TrainingAndCompetency
	IncidentInvestigation      IncidentInvestigation
	EmergencyPreparedness      EmergencyPreparedness
	ContractorManagement       ContractorManagement
	EquipmentSafety            EquipmentSafety
	OccupationalHealth         OccupationalHealth
	AuditFindings              AuditFindings
	ImprovementPlan            ImprovementPlan

	// Appendix is an optional trailing free-text block.
	Appendix string
}

type ExecutiveSummary struct {
	Overview        string
	KeyAchievements string
	MajorChallenges string
}

// IncidentSummary carries the five headline incident figures for the
// reporting period. All five are required.
type IncidentSummary struct {
	LTIFR            string
	TRIFR            string
	Fatalities       string
	LostTimeInjuries string
	NearMisses       string
}

type HealthAndSafetyPerformance struct {
	IncidentSummary      IncidentSummary
	YearOnYearComparison string
}

type HazardIdentification struct {
	ProcessDescription string
	TopHazards         string
	ControlMeasures    string
}

type TrainingAndCompetency struct {
	InductionsCompleted string
	RefresherTraining   string
	OutstandingTraining string
}

type IncidentInvestigation struct {
	IncidentsInvestigated   string
	RootCauseSummary        string
	CorrectiveActionsStatus string
}

type EmergencyPreparedness struct {
	DrillsConducted      string
	EquipmentInspections string
	ImprovementActions   string
}

type ContractorManagement struct {
	ContractorsInducted string
	ComplianceChecks    string
	IssuesIdentified    string
}

type EquipmentSafety struct {
	MaintenanceCompliance   string
	DefectsReported         string
	CriticalEquipmentStatus string
}

type OccupationalHealth struct {
	MedicalsCompleted   string
	HygieneMonitoring   string
	WellnessInitiatives string
}

type AuditFindings struct {
	AuditsConducted  string
	MajorFindings    string
	CloseOutProgress string
}

type ImprovementPlan struct {
	ObjectivesNextYear   string
	ResourceRequirements string
	ManagementCommitment string
}

// FieldViolation is a single validation failure, addressed by the dotted
// path of the offending field so the form can surface it next to the input.
type FieldViolation struct {
	Path    string
	Message string
}

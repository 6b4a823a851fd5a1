package api

// Report is the wire shape of a report as collected from the form. Dates
// travel as "YYYY-MM-DD" strings; parsing happens during validation.
type Report struct {
	ID              string `json:"id,omitempty"`
	DepotLocation   string `json:"depotLocation"`
	ReportingPeriod string `json:"reportingPeriod"`
	PreparedBy      string `json:"preparedBy"`
	Date            string `json:"date"`

	ExecutiveSummary           ExecutiveSummary           `json:"executiveSummary"`
	PolicyStatement            string                     `json:"policyStatement"`
	HealthAndSafetyPerformance HealthAndSafetyPerformance `json:"healthAndSafetyPerformance"`
	HazardIdentification       HazardIdentification       `json:"hazardIdentification"`
	TrainingAndCompetency      TrainingAndCompetency      `json:"trainingAndCompetency"`
	IncidentInvestigation      IncidentInvestigation      `json:"incidentInvestigation"`
	EmergencyPreparedness      EmergencyPreparedness      `json:"emergencyPreparedness"`
	ContractorManagement       ContractorManagement       `json:"contractorManagement"`
	EquipmentSafety            EquipmentSafety            `json:"equipmentSafety"`
	OccupationalHealth         OccupationalHealth         `json:"occupationalHealth"`
	AuditFindings              AuditFindings              `json:"auditFindings"`
	ImprovementPlan            ImprovementPlan            `json:"improvementPlan"`

	Appendix string `json:"appendix,omitempty"`
}

type ExecutiveSummary struct {
	Overview        string `json:"overview"`
	KeyAchievements string `json:"keyAchievements,omitempty"`
	MajorChallenges string `json:"majorChallenges,omitempty"`
}

type IncidentSummary struct {
	LTIFR            string `json:"ltifr"`
	TRIFR            string `json:"trifr"`
	Fatalities       string `json:"fatalities"`
	LostTimeInjuries string `json:"lostTimeInjuries"`
	NearMisses       string `json:"nearMisses"`
}

type HealthAndSafetyPerformance struct {
	IncidentSummary      IncidentSummary `json:"incidentSummary"`
	YearOnYearComparison string          `json:"yearOnYearComparison,omitempty"`
}

type HazardIdentification struct {
	ProcessDescription string `json:"processDescription"`
	TopHazards         string `json:"topHazards"`
	ControlMeasures    string `json:"controlMeasures"`
}

type TrainingAndCompetency struct {
	InductionsCompleted string `json:"inductionsCompleted"`
	RefresherTraining   string `json:"refresherTraining"`
	OutstandingTraining string `json:"outstandingTraining,omitempty"`
}

type IncidentInvestigation struct {
	IncidentsInvestigated   string `json:"incidentsInvestigated"`
	RootCauseSummary        string `json:"rootCauseSummary"`
	CorrectiveActionsStatus string `json:"correctiveActionsStatus"`
}

type EmergencyPreparedness struct {
	DrillsConducted      string `json:"drillsConducted"`
	EquipmentInspections string `json:"equipmentInspections"`
	ImprovementActions   string `json:"improvementActions,omitempty"`
}

type ContractorManagement struct {
	ContractorsInducted string `json:"contractorsInducted"`
	ComplianceChecks    string `json:"complianceChecks"`
	IssuesIdentified    string `json:"issuesIdentified,omitempty"`
}

type EquipmentSafety struct {
	MaintenanceCompliance   string `json:"maintenanceCompliance"`
	DefectsReported         string `json:"defectsReported"`
	CriticalEquipmentStatus string `json:"criticalEquipmentStatus"`
}

type OccupationalHealth struct {
	MedicalsCompleted   string `json:"medicalsCompleted"`
	HygieneMonitoring   string `json:"hygieneMonitoring"`
	WellnessInitiatives string `json:"wellnessInitiatives,omitempty"`
}

type AuditFindings struct {
	AuditsConducted  string `json:"auditsConducted"`
	MajorFindings    string `json:"majorFindings"`
	CloseOutProgress string `json:"closeOutProgress"`
}

type ImprovementPlan struct {
	ObjectivesNextYear   string `json:"objectivesNextYear"`
	ResourceRequirements string `json:"resourceRequirements,omitempty"`
	ManagementCommitment string `json:"managementCommitment"`
}

type FieldViolation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ValidationFailure struct {
	Violations []FieldViolation `json:"violations"`
}

type ReportCreated struct {
	ID string `json:"id"`
}

type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

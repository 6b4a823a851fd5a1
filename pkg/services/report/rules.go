package report

import "github.com/safetyworks/depot-report/pkg/models/api"

// fieldRule binds one leaf of the report schema to its constraint. Paths
// are the dotted form the client form uses to attach violations to inputs.
type fieldRule struct {
	path      string
	label     string
	required  bool
	minLength int
	get       func(r *api.Report) string
}

// rules is the canonical, ordered constraint set for the fixed report
// shape. Optional leaves are listed too (minLength 0) so the rule table is
// the single description of the schema.
var rules = []fieldRule{
	{path: "depotLocation", label: "Depot Location", required: true, minLength: 2,
		get: func(r *api.Report) string { return r.DepotLocation }},
	{path: "reportingPeriod", label: "Reporting Period", required: true, minLength: 2,
		get: func(r *api.Report) string { return r.ReportingPeriod }},
	{path: "preparedBy", label: "Prepared By", required: true, minLength: 2,
		get: func(r *api.Report) string { return r.PreparedBy }},

	// 1. Executive Summary
	{path: "executiveSummary.overview", label: "Overview", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.ExecutiveSummary.Overview }},
	{path: "executiveSummary.keyAchievements", label: "Key Achievements",
		get: func(r *api.Report) string { return r.ExecutiveSummary.KeyAchievements }},
	{path: "executiveSummary.majorChallenges", label: "Major Challenges",
		get: func(r *api.Report) string { return r.ExecutiveSummary.MajorChallenges }},

	// 2. Safety Policy Statement
	{path: "policyStatement", label: "Policy Statement", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.PolicyStatement }},

	// 3. Health & Safety Performance
	{path: "healthAndSafetyPerformance.incidentSummary.ltifr", label: "LTIFR", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.HealthAndSafetyPerformance.IncidentSummary.LTIFR }},
	{path: "healthAndSafetyPerformance.incidentSummary.trifr", label: "TRIFR", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.HealthAndSafetyPerformance.IncidentSummary.TRIFR }},
	{path: "healthAndSafetyPerformance.incidentSummary.fatalities", label: "Fatalities", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.HealthAndSafetyPerformance.IncidentSummary.Fatalities }},
	{path: "healthAndSafetyPerformance.incidentSummary.lostTimeInjuries", label: "Lost Time Injuries", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.HealthAndSafetyPerformance.IncidentSummary.LostTimeInjuries }},
	{path: "healthAndSafetyPerformance.incidentSummary.nearMisses", label: "Near Misses", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.HealthAndSafetyPerformance.IncidentSummary.NearMisses }},
	{path: "healthAndSafetyPerformance.yearOnYearComparison", label: "Year-on-Year Comparison",
		get: func(r *api.Report) string { return r.HealthAndSafetyPerformance.YearOnYearComparison }},

	// 4. Hazard Identification & Risk Assessment
	{path: "hazardIdentification.processDescription", label: "Process Description", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.HazardIdentification.ProcessDescription }},
	{path: "hazardIdentification.topHazards", label: "Top Hazards", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.HazardIdentification.TopHazards }},
	{path: "hazardIdentification.controlMeasures", label: "Control Measures", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.HazardIdentification.ControlMeasures }},

	// 5. Training & Competency
	{path: "trainingAndCompetency.inductionsCompleted", label: "Inductions Completed", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.TrainingAndCompetency.InductionsCompleted }},
	{path: "trainingAndCompetency.refresherTraining", label: "Refresher Training", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.TrainingAndCompetency.RefresherTraining }},
	{path: "trainingAndCompetency.outstandingTraining", label: "Outstanding Training",
		get: func(r *api.Report) string { return r.TrainingAndCompetency.OutstandingTraining }},

	// 6. Incident Investigation & Corrective Actions
	{path: "incidentInvestigation.incidentsInvestigated", label: "Incidents Investigated", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.IncidentInvestigation.IncidentsInvestigated }},
	{path: "incidentInvestigation.rootCauseSummary", label: "Root Cause Summary", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.IncidentInvestigation.RootCauseSummary }},
	{path: "incidentInvestigation.correctiveActionsStatus", label: "Corrective Actions Status", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.IncidentInvestigation.CorrectiveActionsStatus }},

	// 7. Emergency Preparedness
	{path: "emergencyPreparedness.drillsConducted", label: "Drills Conducted", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.EmergencyPreparedness.DrillsConducted }},
	{path: "emergencyPreparedness.equipmentInspections", label: "Equipment Inspections", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.EmergencyPreparedness.EquipmentInspections }},
	{path: "emergencyPreparedness.improvementActions", label: "Improvement Actions",
		get: func(r *api.Report) string { return r.EmergencyPreparedness.ImprovementActions }},

	// 8. Contractor & Visitor Management
	{path: "contractorManagement.contractorsInducted", label: "Contractors Inducted", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.ContractorManagement.ContractorsInducted }},
	{path: "contractorManagement.complianceChecks", label: "Compliance Checks", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.ContractorManagement.ComplianceChecks }},
	{path: "contractorManagement.issuesIdentified", label: "Issues Identified",
		get: func(r *api.Report) string { return r.ContractorManagement.IssuesIdentified }},

	// 9. Equipment & Maintenance Safety
	{path: "equipmentSafety.maintenanceCompliance", label: "Maintenance Compliance", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.EquipmentSafety.MaintenanceCompliance }},
	{path: "equipmentSafety.defectsReported", label: "Defects Reported", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.EquipmentSafety.DefectsReported }},
	{path: "equipmentSafety.criticalEquipmentStatus", label: "Critical Equipment Status", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.EquipmentSafety.CriticalEquipmentStatus }},

	// 10. Occupational Health & Hygiene
	{path: "occupationalHealth.medicalsCompleted", label: "Medicals Completed", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.OccupationalHealth.MedicalsCompleted }},
	{path: "occupationalHealth.hygieneMonitoring", label: "Hygiene Monitoring", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.OccupationalHealth.HygieneMonitoring }},
	{path: "occupationalHealth.wellnessInitiatives", label: "Wellness Initiatives",
		get: func(r *api.Report) string { return r.OccupationalHealth.WellnessInitiatives }},

	// 11. Audit & Inspection Findings
	{path: "auditFindings.auditsConducted", label: "Audits Conducted", required: true, minLength: 1,
		get: func(r *api.Report) string { return r.AuditFindings.AuditsConducted }},
	{path: "auditFindings.majorFindings", label: "Major Findings", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.AuditFindings.MajorFindings }},
	{path: "auditFindings.closeOutProgress", label: "Close-Out Progress", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.AuditFindings.CloseOutProgress }},

	// 12. Continuous Improvement Plan
	{path: "improvementPlan.objectivesNextYear", label: "Objectives for Next Year", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.ImprovementPlan.ObjectivesNextYear }},
	{path: "improvementPlan.resourceRequirements", label: "Resource Requirements",
		get: func(r *api.Report) string { return r.ImprovementPlan.ResourceRequirements }},
	{path: "improvementPlan.managementCommitment", label: "Management Commitment", required: true, minLength: 10,
		get: func(r *api.Report) string { return r.ImprovementPlan.ManagementCommitment }},

	{path: "appendix", label: "Appendix",
		get: func(r *api.Report) string { return r.Appendix }},
}

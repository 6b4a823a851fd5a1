package adapters

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/safetyworks/depot-report/pkg/models/api"
	"github.com/safetyworks/depot-report/pkg/models/domain"
	"github.com/safetyworks/depot-report/pkg/models/store"
)

const dateLayout = "2006-01-02"

// MapApiReportToDomain converts a wire report into the domain shape. The
// date string must already have been checked by the validator; a parse
// failure here is a programming error and is returned as such.
func MapApiReportToDomain(r api.Report) (domain.Report, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return domain.Report{}, fmt.Errorf("parse report date: %w", err)
	}

	return domain.Report{
		ID:              r.ID,
		DepotLocation:   r.DepotLocation,
		ReportingPeriod: r.ReportingPeriod,
		PreparedBy:      r.PreparedBy,
		Date:            date,
		ExecutiveSummary: domain.ExecutiveSummary{
			Overview:        r.ExecutiveSummary.Overview,
			KeyAchievements: r.ExecutiveSummary.KeyAchievements,
			MajorChallenges: r.ExecutiveSummary.MajorChallenges,
		},
		PolicyStatement: r.PolicyStatement,
		HealthAndSafetyPerformance: domain.HealthAndSafetyPerformance{
			IncidentSummary: domain.IncidentSummary{
				LTIFR:            r.HealthAndSafetyPerformance.IncidentSummary.LTIFR,
				TRIFR:            r.HealthAndSafetyPerformance.IncidentSummary.TRIFR,
				Fatalities:       r.HealthAndSafetyPerformance.IncidentSummary.Fatalities,
				LostTimeInjuries: r.HealthAndSafetyPerformance.IncidentSummary.LostTimeInjuries,
				NearMisses:       r.HealthAndSafetyPerformance.IncidentSummary.NearMisses,
			},
			YearOnYearComparison: r.HealthAndSafetyPerformance.YearOnYearComparison,
		},
		HazardIdentification: domain.HazardIdentification{
			ProcessDescription: r.HazardIdentification.ProcessDescription,
			TopHazards:         r.HazardIdentification.TopHazards,
			ControlMeasures:    r.HazardIdentification.ControlMeasures,
		},
		TrainingAndCompetency: domain.TrainingAndCompetency{
			InductionsCompleted: r.TrainingAndCompetency.InductionsCompleted,
			RefresherTraining:   r.TrainingAndCompetency.RefresherTraining,
			OutstandingTraining: r.TrainingAndCompetency.OutstandingTraining,
		},
		IncidentInvestigation: domain.IncidentInvestigation{
			IncidentsInvestigated:   r.IncidentInvestigation.IncidentsInvestigated,
			RootCauseSummary:        r.IncidentInvestigation.RootCauseSummary,
			CorrectiveActionsStatus: r.IncidentInvestigation.CorrectiveActionsStatus,
		},
		EmergencyPreparedness: domain.EmergencyPreparedness{
			DrillsConducted:      r.EmergencyPreparedness.DrillsConducted,
			EquipmentInspections: r.EmergencyPreparedness.EquipmentInspections,
			ImprovementActions:   r.EmergencyPreparedness.ImprovementActions,
		},
		ContractorManagement: domain.ContractorManagement{
			ContractorsInducted: r.ContractorManagement.ContractorsInducted,
			ComplianceChecks:    r.ContractorManagement.ComplianceChecks,
			IssuesIdentified:    r.ContractorManagement.IssuesIdentified,
		},
		EquipmentSafety: domain.EquipmentSafety{
			MaintenanceCompliance:   r.EquipmentSafety.MaintenanceCompliance,
			DefectsReported:         r.EquipmentSafety.DefectsReported,
			CriticalEquipmentStatus: r.EquipmentSafety.CriticalEquipmentStatus,
		},
		OccupationalHealth: domain.OccupationalHealth{
			MedicalsCompleted:   r.OccupationalHealth.MedicalsCompleted,
			HygieneMonitoring:   r.OccupationalHealth.HygieneMonitoring,
			WellnessInitiatives: r.OccupationalHealth.WellnessInitiatives,
		},
		AuditFindings: domain.AuditFindings{
			AuditsConducted:  r.AuditFindings.AuditsConducted,
			MajorFindings:    r.AuditFindings.MajorFindings,
			CloseOutProgress: r.AuditFindings.CloseOutProgress,
		},
		ImprovementPlan: domain.ImprovementPlan{
			ObjectivesNextYear:   r.ImprovementPlan.ObjectivesNextYear,
			ResourceRequirements: r.ImprovementPlan.ResourceRequirements,
			ManagementCommitment: r.ImprovementPlan.ManagementCommitment,
		},
		Appendix: r.Appendix,
	}, nil
}

func MapDomainReportToApi(r domain.Report) api.Report {
	return api.Report{
		ID:              r.ID,
		DepotLocation:   r.DepotLocation,
		ReportingPeriod: r.ReportingPeriod,
		PreparedBy:      r.PreparedBy,
		Date:            r.Date.Format(dateLayout),
		ExecutiveSummary: api.ExecutiveSummary{
			Overview:        r.ExecutiveSummary.Overview,
			KeyAchievements: r.ExecutiveSummary.KeyAchievements,
			MajorChallenges: r.ExecutiveSummary.MajorChallenges,
		},
		PolicyStatement: r.PolicyStatement,
		HealthAndSafetyPerformance: api.HealthAndSafetyPerformance{
			IncidentSummary: api.IncidentSummary{
				LTIFR:            r.HealthAndSafetyPerformance.IncidentSummary.LTIFR,
				TRIFR:            r.HealthAndSafetyPerformance.IncidentSummary.TRIFR,
				Fatalities:       r.HealthAndSafetyPerformance.IncidentSummary.Fatalities,
				LostTimeInjuries: r.HealthAndSafetyPerformance.IncidentSummary.LostTimeInjuries,
				NearMisses:       r.HealthAndSafetyPerformance.IncidentSummary.NearMisses,
			},
			YearOnYearComparison: r.HealthAndSafetyPerformance.YearOnYearComparison,
		},
		HazardIdentification: api.HazardIdentification{
			ProcessDescription: r.HazardIdentification.ProcessDescription,
			TopHazards:         r.HazardIdentification.TopHazards,
			ControlMeasures:    r.HazardIdentification.ControlMeasures,
		},
		TrainingAndCompetency: api.TrainingAndCompetency{
			InductionsCompleted: r.TrainingAndCompetency.InductionsCompleted,
			RefresherTraining:   r.TrainingAndCompetency.RefresherTraining,
			OutstandingTraining: r.TrainingAndCompetency.OutstandingTraining,
		},
		IncidentInvestigation: api.IncidentInvestigation{
			IncidentsInvestigated:   r.IncidentInvestigation.IncidentsInvestigated,
			RootCauseSummary:        r.IncidentInvestigation.RootCauseSummary,
			CorrectiveActionsStatus: r.IncidentInvestigation.CorrectiveActionsStatus,
		},
		EmergencyPreparedness: api.EmergencyPreparedness{
			DrillsConducted:      r.EmergencyPreparedness.DrillsConducted,
			EquipmentInspections: r.EmergencyPreparedness.EquipmentInspections,
			ImprovementActions:   r.EmergencyPreparedness.ImprovementActions,
		},
		ContractorManagement: api.ContractorManagement{
			ContractorsInducted: r.ContractorManagement.ContractorsInducted,
			ComplianceChecks:    r.ContractorManagement.ComplianceChecks,
			IssuesIdentified:    r.ContractorManagement.IssuesIdentified,
		},
		EquipmentSafety: api.EquipmentSafety{
			MaintenanceCompliance:   r.EquipmentSafety.MaintenanceCompliance,
			DefectsReported:         r.EquipmentSafety.DefectsReported,
			CriticalEquipmentStatus: r.EquipmentSafety.CriticalEquipmentStatus,
		},
		OccupationalHealth: api.OccupationalHealth{
			MedicalsCompleted:   r.OccupationalHealth.MedicalsCompleted,
			HygieneMonitoring:   r.OccupationalHealth.HygieneMonitoring,
			WellnessInitiatives: r.OccupationalHealth.WellnessInitiatives,
		},
		AuditFindings: api.AuditFindings{
			AuditsConducted:  r.AuditFindings.AuditsConducted,
			MajorFindings:    r.AuditFindings.MajorFindings,
			CloseOutProgress: r.AuditFindings.CloseOutProgress,
		},
		ImprovementPlan: api.ImprovementPlan{
			ObjectivesNextYear:   r.ImprovementPlan.ObjectivesNextYear,
			ResourceRequirements: r.ImprovementPlan.ResourceRequirements,
			ManagementCommitment: r.ImprovementPlan.ManagementCommitment,
		},
		Appendix: r.Appendix,
	}
}

func MapViolationsDomainToApi(violations []domain.FieldViolation) []api.FieldViolation {
	out := make([]api.FieldViolation, 0, len(violations))
	for _, v := range violations {
		out = append(out, api.FieldViolation{Path: v.Path, Message: v.Message})
	}
	return out
}

// MapDomainReportToRecord serializes a report into its persisted record.
// The payload is the wire shape including the id, so a record round-trips
// through the storage boundary without a second schema.
func MapDomainReportToRecord(r domain.Report) (store.ReportRecord, error) {
	payload, err := json.Marshal(MapDomainReportToApi(r))
	if err != nil {
		return store.ReportRecord{}, fmt.Errorf("marshal report payload: %w", err)
	}
	return store.ReportRecord{ID: r.ID, Payload: payload}, nil
}

func MapRecordToDomainReport(rec store.ReportRecord) (domain.Report, error) {
	var wire api.Report
	if err := json.Unmarshal(rec.Payload, &wire); err != nil {
		return domain.Report{}, fmt.Errorf("unmarshal report payload: %w", err)
	}
	wire.ID = rec.ID
	report, err := MapApiReportToDomain(wire)
	if err != nil {
		return domain.Report{}, err
	}
	return report, nil
}

package report

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/safetyworks/depot-report/pkg/adapters"
	"github.com/safetyworks/depot-report/pkg/models/api"
	"github.com/safetyworks/depot-report/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// Validate checks a candidate report against every rule in the schema and
// returns either the domain report or the full list of violations. It never
// stops at the first failure; the form needs all of them at once.
//
// Minimum lengths are checked against the raw character count, whitespace
// included. Trimming here would accept values the original rules reject.
func Validate(candidate api.Report) (domain.Report, []domain.FieldViolation) {
	var violations []domain.FieldViolation

	for _, rule := range rules {
		value := rule.get(&candidate)
		if value == "" {
			if rule.required {
				violations = append(violations, domain.FieldViolation{
					Path:    rule.path,
					Message: fmt.Sprintf("%s is required", rule.label),
				})
			}
			continue
		}
		if n := utf8.RuneCountInString(value); n < rule.minLength {
			violations = append(violations, domain.FieldViolation{
				Path:    rule.path,
				Message: fmt.Sprintf("%s must be at least %d characters", rule.label, rule.minLength),
			})
		}
	}

	if candidate.Date == "" {
		violations = append(violations, domain.FieldViolation{
			Path:    "date",
			Message: "Date is required",
		})
	} else if _, err := time.Parse(dateLayout, candidate.Date); err != nil {
		violations = append(violations, domain.FieldViolation{
			Path:    "date",
			Message: fmt.Sprintf("Date must be a valid %s date", dateLayout),
		})
	}

	if len(violations) > 0 {
		return domain.Report{}, violations
	}

	report, err := adapters.MapApiReportToDomain(candidate)
	if err != nil {
		// Date already parsed above; reaching this means the mapping and
		// the rule set disagree about the schema.
		return domain.Report{}, []domain.FieldViolation{{
			Path:    "date",
			Message: err.Error(),
		}}
	}
	return report, nil
}

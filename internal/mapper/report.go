package mapper

import (
	"github.com/maxaizer/jobboard/internal/normalize"
	"github.com/samber/lo"
)

type FieldOutcome struct {
	Field string
	Cause normalize.Cause
}

// Report describes how each enum-like field of one record was normalized.
type Report struct {
	RecordID         string
	Outcomes         []FieldOutcome
	DroppedLanguages int
	MissingFields    []string
}

func (r *Report) add(field string, cause normalize.Cause) {
	r.Outcomes = append(r.Outcomes, FieldOutcome{Field: field, Cause: cause})
}

// Defaulted returns the outcomes whose value is a fallback.
func (r Report) Defaulted() []FieldOutcome {
	return lo.Filter(r.Outcomes, func(outcome FieldOutcome, _ int) bool {
		return outcome.Cause != normalize.Recognized
	})
}

func (r Report) CauseOf(field string) (normalize.Cause, bool) {
	outcome, found := lo.Find(r.Outcomes, func(outcome FieldOutcome) bool {
		return outcome.Field == field
	})
	return outcome.Cause, found
}

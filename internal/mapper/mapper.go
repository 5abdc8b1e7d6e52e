// Package mapper turns raw store records into canonical jobs.
package mapper

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/jobboard/internal/clients/airtable"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/normalize"
	"github.com/maxaizer/jobboard/internal/sanitize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInactive              = errors.New("job is not active")
	ErrUnknownPolicy         = errors.New("unknown mapping policy")
)

// Policy decides how strictly each retrieval path treats a record.
type Policy string

const (
	// Unified validates required fields and sanitizes descriptions on both
	// paths. Single lookups reject inactive jobs.
	Unified Policy = "unified"
	// Legacy casts listing records without validation and sanitizes only
	// listing descriptions. Single lookups validate and return inactive jobs.
	Legacy Policy = "legacy"
)

func ParsePolicy(s string) (Policy, error) {
	switch policy := Policy(strings.ToLower(strings.TrimSpace(s))); policy {
	case "":
		return Unified, nil
	case Unified, Legacy:
		return policy, nil
	default:
		return "", errors.Wrapf(ErrUnknownPolicy, "%q", s)
	}
}

type Path int

const (
	Single Path = iota
	Listing
)

func (p Path) String() string {
	if p == Listing {
		return "listing"
	}
	return "single"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("field")
	})
	return v
}

// Mapper is stateless; the zero value uses the unified policy.
type Mapper struct {
	Policy Policy
}

func New(policy Policy) *Mapper {
	return &Mapper{Policy: policy}
}

func (m Mapper) legacy() bool {
	return m.Policy == Legacy
}

// Map builds a Job from one record. On error the returned Job is the zero
// value; the report is still filled for the fields that were inspected.
func (m Mapper) Map(record airtable.Record, path Path) (models.Job, Report, error) {
	fields := record.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	report := Report{RecordID: record.ID}

	if path == Single || !m.legacy() {
		if missing := missingRequired(fields); len(missing) > 0 {
			report.MissingFields = missing
			return models.Job{}, report, fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
		}
	}

	job := models.Job{
		ID:                   record.ID,
		Title:                normalize.String(fields[FieldTitle]),
		Company:              normalize.String(fields[FieldCompany]),
		Type:                 models.EmploymentType(normalize.String(fields[FieldType])),
		Salary:               mapSalary(fields, &report),
		Description:          normalize.String(fields[FieldDescription]),
		ApplyURL:             normalize.String(fields[FieldApplyURL]),
		PostedDate:           normalize.String(fields[FieldPostedDate]),
		Status:               models.Status(normalize.String(fields[FieldStatus])),
		Featured:             normalize.Featured(fields[FieldFeatured]),
		TimezoneRequirements: normalize.OptionalString(fields[FieldTimezoneRequirements]),
		WorkplaceCity:        normalize.OptionalString(fields[FieldWorkplaceCity]),
		WorkplaceCountry:     normalize.OptionalString(fields[FieldWorkplaceCountry]),
	}

	careerLevel := normalize.CareerLevelsOutcome(fields[FieldCareerLevel])
	job.CareerLevel = careerLevel.Value
	report.add(FieldCareerLevel, careerLevel.Cause)

	visa := normalize.VisaSponsorshipOutcome(fields[FieldVisaSponsorship])
	job.VisaSponsorship = visa.Value
	report.add(FieldVisaSponsorship, visa.Cause)

	workplace := normalize.WorkplaceTypeOutcome(fields[FieldWorkplaceType])
	job.WorkplaceType = workplace.Value
	report.add(FieldWorkplaceType, workplace.Cause)

	region := normalize.RemoteRegionOutcome(fields[FieldRemoteRegion])
	job.RemoteRegion = region.Value
	report.add(FieldRemoteRegion, region.Cause)

	job.Languages = normalize.Languages(fields[FieldLanguages])
	report.DroppedLanguages = countStrings(fields[FieldLanguages]) - len(job.Languages)

	if path == Listing || !m.legacy() {
		job.Description = sanitize.Sanitize(job.Description)
	}

	if path == Single && !m.legacy() && !job.IsActive() {
		return models.Job{}, report, errors.Wrapf(ErrInactive, "status %q", job.Status)
	}

	return job, report, nil
}

func missingRequired(fields map[string]any) []string {
	projection := requiredFields{
		Title:       normalize.String(fields[FieldTitle]),
		Company:     normalize.String(fields[FieldCompany]),
		Type:        normalize.String(fields[FieldType]),
		Description: normalize.String(fields[FieldDescription]),
		ApplyURL:    normalize.String(fields[FieldApplyURL]),
		PostedDate:  normalize.String(fields[FieldPostedDate]),
		Status:      normalize.String(fields[FieldStatus]),
	}

	err := validate.Struct(projection)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	return lo.Map(validationErrors, func(fieldErr validator.FieldError, _ int) string {
		return fieldErr.Field()
	})
}

// mapSalary returns nil when neither bound holds a positive number.
func mapSalary(fields map[string]any, report *Report) *models.Salary {
	minBound := normalize.PositiveNumber(fields[FieldSalaryMin])
	maxBound := normalize.PositiveNumber(fields[FieldSalaryMax])
	if minBound == nil && maxBound == nil {
		return nil
	}

	currency := normalize.CurrencyOutcome(fields[FieldSalaryCurrency])
	report.add(FieldSalaryCurrency, currency.Cause)
	unit := normalize.SalaryUnitOutcome(fields[FieldSalaryUnit])
	report.add(FieldSalaryUnit, unit.Cause)

	return &models.Salary{
		Min:      minBound,
		Max:      maxBound,
		Currency: currency.Value,
		Unit:     unit.Value,
	}
}

func countStrings(v any) int {
	switch items := v.(type) {
	case []string:
		return len(items)
	case []any:
		return lo.CountBy(items, func(item any) bool {
			_, ok := item.(string)
			return ok
		})
	default:
		return 0
	}
}

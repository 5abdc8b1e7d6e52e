package normalize

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/maxaizer/jobboard/internal/domain/models"
)

// String is the permissive cast used for required text fields.
func String(v any) string {
	s, _ := v.(string)
	return s
}

func OptionalString(v any) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}

// Featured is true only for a boolean true; checkbox fields are omitted when unticked.
func Featured(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// PositiveNumber treats zero, negatives and non-numeric values as absent.
func PositiveNumber(v any) *float64 {
	var number float64
	switch value := v.(type) {
	case float64:
		number = value
	case float32:
		number = float64(value)
	case int:
		number = float64(value)
	case int64:
		number = float64(value)
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return nil
		}
		number = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}
		number = parsed
	default:
		return nil
	}

	if number <= 0 {
		return nil
	}
	return &number
}

func VisaSponsorship(v any) models.VisaSponsorship {
	return VisaSponsorshipOutcome(v).Value
}

func VisaSponsorshipOutcome(v any) Result[models.VisaSponsorship] {
	if s, ok := v.(string); ok {
		switch visa := models.VisaSponsorship(s); visa {
		case models.VisaYes, models.VisaNo, models.VisaNotSpecified:
			return recognized(visa)
		}
	}
	return defaulted(models.VisaNotSpecified, v)
}

func Currency(v any) models.Currency {
	return CurrencyOutcome(v).Value
}

func CurrencyOutcome(v any) Result[models.Currency] {
	if s, ok := v.(string); ok {
		switch currency := models.Currency(strings.ToUpper(s)); currency {
		case models.USD, models.EUR, models.GBP:
			return recognized(currency)
		}
	}
	return defaulted(models.USD, v)
}

func SalaryUnit(v any) models.SalaryUnit {
	return SalaryUnitOutcome(v).Value
}

func SalaryUnitOutcome(v any) Result[models.SalaryUnit] {
	if s, ok := v.(string); ok {
		switch unit := models.SalaryUnit(strings.ToLower(s)); unit {
		case models.Hour, models.Day, models.Week, models.Month, models.Year, models.Project:
			return recognized(unit)
		}
	}
	return defaulted(models.Year, v)
}

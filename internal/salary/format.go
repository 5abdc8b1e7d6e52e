package salary

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/maxaizer/jobboard/internal/domain/models"
)

const NotSpecified = "Not specified"

var currencySymbols = map[models.Currency]string{
	models.USD: "$",
	models.EUR: "€",
	models.GBP: "£",
}

var unitSuffixes = map[models.SalaryUnit]string{
	models.Hour:    "/hour",
	models.Day:     "/day",
	models.Week:    "/week",
	models.Month:   "/month",
	models.Year:    "/year",
	models.Project: "/project",
}

// Format renders a salary for display, e.g. "$50k-80k/year" or "£5,000/month".
func Format(s *models.Salary) string {
	if !s.IsSpecified() {
		return NotSpecified
	}

	var minValue, maxValue float64
	if s.Min != nil {
		minValue = *s.Min
	}
	if s.Max != nil {
		maxValue = *s.Max
	}

	var amount string
	switch {
	case minValue != 0 && maxValue != 0 && minValue == maxValue:
		amount = formatAmount(minValue)
	case minValue != 0 && maxValue != 0:
		amount = formatAmount(minValue) + "-" + formatAmount(maxValue)
	case minValue != 0:
		amount = formatAmount(minValue)
	default:
		amount = formatAmount(maxValue)
	}

	return currencySymbol(s.Currency) + amount + unitSuffixes[s.Unit]
}

func currencySymbol(currency models.Currency) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return string(currency) + " "
}

// formatAmount abbreviates five digit amounts and up to thousands ("80k").
func formatAmount(value float64) string {
	if value >= 10000 {
		return fmt.Sprintf("%.0fk", math.Round(value/1000))
	}
	return humanize.Commaf(math.Round(value*1000) / 1000)
}

package salary

import (
	"cmp"
	"slices"

	"github.com/maxaizer/jobboard/internal/domain/models"
)

// Unspecified is the annualized value of a missing salary. It sorts below
// every real salary.
const Unspecified = -1

// RateProvider supplies the conversion factors used to compare salaries.
type RateProvider interface {
	// RateFor returns how many USD one unit of currency is worth.
	RateFor(currency models.Currency) float64
	// MultiplierFor returns how many units make up a year.
	MultiplierFor(unit models.SalaryUnit) float64
}

// StaticRates is a fixed table. Unknown currencies and units count as 1.
type StaticRates struct {
	Rates       map[models.Currency]float64
	Multipliers map[models.SalaryUnit]float64
}

var DefaultRates = StaticRates{
	Rates: map[models.Currency]float64{
		models.USD: 1,
		models.EUR: 1.1,
		models.GBP: 1.27,
	},
	Multipliers: map[models.SalaryUnit]float64{
		models.Hour:    2080, // 40 hours * 52 weeks
		models.Day:     260,  // 5 days * 52 weeks
		models.Week:    52,
		models.Month:   12,
		models.Year:    1,
		models.Project: 1, // a project counts as one year
	},
}

func (r StaticRates) RateFor(currency models.Currency) float64 {
	if rate, ok := r.Rates[currency]; ok {
		return rate
	}
	return 1
}

func (r StaticRates) MultiplierFor(unit models.SalaryUnit) float64 {
	if multiplier, ok := r.Multipliers[unit]; ok {
		return multiplier
	}
	return 1
}

type Annualizer struct {
	rates RateProvider
}

func NewAnnualizer(rates RateProvider) *Annualizer {
	if rates == nil {
		rates = DefaultRates
	}
	return &Annualizer{rates: rates}
}

// Annualize converts a salary into an approximate yearly USD amount for
// ordering only. The result is not a real conversion: rates are whatever the
// provider says and hourly or daily pay assumes full-time work all year.
func (a *Annualizer) Annualize(s *models.Salary) float64 {
	if !s.IsSpecified() {
		return Unspecified
	}
	return s.Upper() * a.rates.RateFor(s.Currency) * a.rates.MultiplierFor(s.Unit)
}

// SortByAnnualized orders jobs from best to worst paying, keeping the
// relative order of equal values. Jobs without salary go last.
func (a *Annualizer) SortByAnnualized(jobs []models.Job) {
	slices.SortStableFunc(jobs, func(x, y models.Job) int {
		return cmp.Compare(a.Annualize(y.Salary), a.Annualize(x.Salary))
	})
}

var defaultAnnualizer = NewAnnualizer(DefaultRates)

// Annualize uses DefaultRates.
func Annualize(s *models.Salary) float64 {
	return defaultAnnualizer.Annualize(s)
}

func SortByAnnualized(jobs []models.Job) {
	defaultAnnualizer.SortByAnnualized(jobs)
}

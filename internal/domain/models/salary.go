package models

type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

type SalaryUnit string

const (
	Hour    SalaryUnit = "hour"
	Day     SalaryUnit = "day"
	Week    SalaryUnit = "week"
	Month   SalaryUnit = "month"
	Year    SalaryUnit = "year"
	Project SalaryUnit = "project"
)

// Salary bounds are optional. Min <= Max is expected but not enforced;
// inverted bounds are formatted and annualized as given.
type Salary struct {
	Min      *float64   `json:"min"`
	Max      *float64   `json:"max"`
	Currency Currency   `json:"currency"`
	Unit     SalaryUnit `json:"unit"`
}

// IsSpecified reports whether at least one bound carries a non-zero value.
func (s *Salary) IsSpecified() bool {
	if s == nil {
		return false
	}
	return bound(s.Min) != 0 || bound(s.Max) != 0
}

// Upper returns max, falling back to min, falling back to zero.
func (s *Salary) Upper() float64 {
	if s == nil {
		return 0
	}
	if v := bound(s.Max); v != 0 {
		return v
	}
	return bound(s.Min)
}

func (s *Salary) Clone() *Salary {
	if s == nil {
		return nil
	}
	c := *s
	c.Min = clonePtr(s.Min)
	c.Max = clonePtr(s.Max)
	return &c
}

func bound(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

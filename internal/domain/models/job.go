package models

import "slices"

type EmploymentType string

const (
	FullTime  EmploymentType = "Full-time"
	PartTime  EmploymentType = "Part-time"
	Contract  EmploymentType = "Contract"
	Freelance EmploymentType = "Freelance"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type CareerLevel string

const (
	Internship     CareerLevel = "Internship"
	EntryLevel     CareerLevel = "EntryLevel"
	Associate      CareerLevel = "Associate"
	Junior         CareerLevel = "Junior"
	MidLevel       CareerLevel = "MidLevel"
	Senior         CareerLevel = "Senior"
	Staff          CareerLevel = "Staff"
	Principal      CareerLevel = "Principal"
	Lead           CareerLevel = "Lead"
	Manager        CareerLevel = "Manager"
	SeniorManager  CareerLevel = "SeniorManager"
	Director       CareerLevel = "Director"
	SeniorDirector CareerLevel = "SeniorDirector"
	VP             CareerLevel = "VP"
	SVP            CareerLevel = "SVP"
	EVP            CareerLevel = "EVP"
	CLevel         CareerLevel = "CLevel"
	Founder        CareerLevel = "Founder"
	NotSpecified   CareerLevel = "NotSpecified"
)

type VisaSponsorship string

const (
	VisaYes          VisaSponsorship = "Yes"
	VisaNo           VisaSponsorship = "No"
	VisaNotSpecified VisaSponsorship = "Not specified"
)

type WorkplaceType string

const (
	OnSite                WorkplaceType = "On-site"
	Hybrid                WorkplaceType = "Hybrid"
	Remote                WorkplaceType = "Remote"
	WorkplaceNotSpecified WorkplaceType = "Not specified"
)

// RemoteRegion restricts where a remote hire may live. Only meaningful
// together with WorkplaceType Remote.
type RemoteRegion string

const (
	Worldwide       RemoteRegion = "Worldwide"
	AmericasOnly    RemoteRegion = "Americas Only"
	EuropeOnly      RemoteRegion = "Europe Only"
	AsiaPacificOnly RemoteRegion = "Asia-Pacific Only"
	USOnly          RemoteRegion = "US Only"
	EUOnly          RemoteRegion = "EU Only"
	UKEUOnly        RemoteRegion = "UK/EU Only"
	USCanadaOnly    RemoteRegion = "US/Canada Only"
)

var RemoteRegions = []RemoteRegion{
	Worldwide, AmericasOnly, EuropeOnly, AsiaPacificOnly, USOnly, EUOnly, UKEUOnly, USCanadaOnly,
}

// Job is the canonical posting produced from one store record.
type Job struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"`
	Company              string          `json:"company"`
	Type                 EmploymentType  `json:"type"`
	Salary               *Salary         `json:"salary"`
	Description          string          `json:"description"`
	ApplyURL             string          `json:"apply_url"`
	PostedDate           string          `json:"posted_date"`
	Status               Status          `json:"status"`
	CareerLevel          []CareerLevel   `json:"career_level"`
	VisaSponsorship      VisaSponsorship `json:"visa_sponsorship"`
	Featured             bool            `json:"featured"`
	WorkplaceType        WorkplaceType   `json:"workplace_type"`
	RemoteRegion         *RemoteRegion   `json:"remote_region"`
	TimezoneRequirements *string         `json:"timezone_requirements"`
	WorkplaceCity        *string         `json:"workplace_city"`
	WorkplaceCountry     *string         `json:"workplace_country"`
	Languages            []LanguageCode  `json:"languages"`
}

func (j Job) IsActive() bool {
	return j.Status == StatusActive
}

// Clone copies the job together with the values behind its pointer and
// slice fields.
func (j Job) Clone() Job {
	j.Salary = j.Salary.Clone()
	j.CareerLevel = slices.Clone(j.CareerLevel)
	j.Languages = slices.Clone(j.Languages)
	j.RemoteRegion = clonePtr(j.RemoteRegion)
	j.TimezoneRequirements = clonePtr(j.TimezoneRequirements)
	j.WorkplaceCity = clonePtr(j.WorkplaceCity)
	j.WorkplaceCountry = clonePtr(j.WorkplaceCountry)
	return j
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

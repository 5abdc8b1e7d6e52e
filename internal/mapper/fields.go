package mapper

// Store column names.
const (
	FieldTitle                = "title"
	FieldCompany              = "company"
	FieldType                 = "type"
	FieldSalaryMin            = "salary_min"
	FieldSalaryMax            = "salary_max"
	FieldSalaryCurrency       = "salary_currency"
	FieldSalaryUnit           = "salary_unit"
	FieldDescription          = "description"
	FieldApplyURL             = "apply_url"
	FieldPostedDate           = "posted_date"
	FieldStatus               = "status"
	FieldCareerLevel          = "career_level"
	FieldVisaSponsorship      = "visa_sponsorship"
	FieldFeatured             = "featured"
	FieldWorkplaceType        = "workplace_type"
	FieldRemoteRegion         = "remote_region"
	FieldTimezoneRequirements = "timezone_requirements"
	FieldWorkplaceCity        = "workplace_city"
	FieldWorkplaceCountry     = "workplace_country"
	FieldLanguages            = "languages"
)

// requiredFields is the projection checked before a record becomes a Job.
// Non-string values cast to "" and count as missing.
type requiredFields struct {
	Title       string `field:"title" validate:"required"`
	Company     string `field:"company" validate:"required"`
	Type        string `field:"type" validate:"required"`
	Description string `field:"description" validate:"required"`
	ApplyURL    string `field:"apply_url" validate:"required"`
	PostedDate  string `field:"posted_date" validate:"required"`
	Status      string `field:"status" validate:"required"`
}

package types

// JobPosting represents one job record from the catalog. Any field may be
// absent: string fields are empty when unknown and numeric/date fields are
// nil pointers, so every scorer defines a neutral policy for missing data.
type JobPosting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	RemoteType  string `json:"remote_type"` // remote, hybrid, onsite
	Description string `json:"description"`
	PostedDate  string `json:"posted_date,omitempty"` // YYYY-MM-DD or RFC3339

	SalaryMin *int `json:"salary_min,omitempty"`
	SalaryMax *int `json:"salary_max,omitempty"`

	CompetitivenessLevel string `json:"competitiveness_level,omitempty"`
	SeniorityLevel       string `json:"seniority_level,omitempty"`
	ExperienceYearsMin   *int   `json:"experience_years_min,omitempty"`
	ExperienceYearsMax   *int   `json:"experience_years_max,omitempty"`

	RequiredSkills  []string `json:"required_skills,omitempty"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`

	Industry    string `json:"industry,omitempty"`
	CompanySize string `json:"company_size,omitempty"`
}

// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// UserMatchProfile is the aggregated candidate profile used as scoring input.
// All slice fields are always non-nil; an empty slice means "no data", so
// scorers only ever branch on emptiness.
type UserMatchProfile struct {
	UserID    string `json:"user_id"`
	PersonaID string `json:"persona_id,omitempty"`

	// Experience
	YearsExperience int      `json:"years_experience"`
	CurrentTitle    string   `json:"current_title"`
	Skills          []string `json:"skills"`
	Certifications  []string `json:"certifications"`

	// Preferences
	SeniorityLevels    []string `json:"seniority_levels"`
	PrimaryTitle       string   `json:"primary_title"`
	RelatedTitles      []string `json:"related_titles"`
	MinSalary          int      `json:"min_salary"`
	MaxSalary          int      `json:"max_salary"`
	RemotePreference   string   `json:"remote_preference"` // remote, hybrid, onsite, any
	PreferredLocations []string `json:"preferred_locations"`
	IncludeKeywords    []string `json:"include_keywords"`
	AvoidKeywords      []string `json:"avoid_keywords"`
	ExcludeCompanies   []string `json:"exclude_companies"`
	ExcludeTitles      []string `json:"exclude_titles"`

	// Persona overrides
	RequiredSkills   []string `json:"required_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills"`
	Industries       []string `json:"industries"`
	CompanySizes     []string `json:"company_sizes"`
	MissionValues    []string `json:"mission_values"`
	GrowthFocus      []string `json:"growth_focus"`

	// Resume-derived
	ResumeSkills   []string `json:"resume_skills"`
	ResumeKeywords []string `json:"resume_keywords"`
}

// NewEmptyProfile returns a profile with every slice field initialized so
// downstream scorers never see a nil list.
func NewEmptyProfile(userID string) *UserMatchProfile {
	return &UserMatchProfile{
		UserID:             userID,
		Skills:             []string{},
		Certifications:     []string{},
		SeniorityLevels:    []string{},
		RelatedTitles:      []string{},
		PreferredLocations: []string{},
		IncludeKeywords:    []string{},
		AvoidKeywords:      []string{},
		ExcludeCompanies:   []string{},
		ExcludeTitles:      []string{},
		RequiredSkills:     []string{},
		NiceToHaveSkills:   []string{},
		Industries:         []string{},
		CompanySizes:       []string{},
		MissionValues:      []string{},
		GrowthFocus:        []string{},
		ResumeSkills:       []string{},
		ResumeKeywords:     []string{},
	}
}

// EnsureDefaults replaces any nil slice field with an empty slice. Profiles
// decoded from JSON or partially populated by hand pass through this before
// scoring.
func (p *UserMatchProfile) EnsureDefaults() {
	fields := []*[]string{
		&p.Skills, &p.Certifications, &p.SeniorityLevels, &p.RelatedTitles,
		&p.PreferredLocations, &p.IncludeKeywords, &p.AvoidKeywords,
		&p.ExcludeCompanies, &p.ExcludeTitles, &p.RequiredSkills,
		&p.NiceToHaveSkills, &p.Industries, &p.CompanySizes,
		&p.MissionValues, &p.GrowthFocus, &p.ResumeSkills, &p.ResumeKeywords,
	}
	for _, f := range fields {
		if *f == nil {
			*f = []string{}
		}
	}
}

package types

// Category caps. They always sum to 100.
const (
	HardRequirementsCap    = 40
	PreferenceAlignmentCap = 35
	BonusCap               = 25
)

// MatchQuality is the four-tier label derived from the total score.
type MatchQuality string

// Match quality tiers.
const (
	QualityExcellent MatchQuality = "excellent"
	QualityGood      MatchQuality = "good"
	QualityFair      MatchQuality = "fair"
	QualityPoor      MatchQuality = "poor"
)

// FactorResult is the atomic unit of explainability: one factor's bounded
// score plus the human-readable reasons behind it.
type FactorResult struct {
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Reasons  []string `json:"reasons"`
}

// ScoreBreakdown is the fixed record of the ten named factor results,
// grouped into three categories.
type ScoreBreakdown struct {
	// Hard Requirements (cap 40)
	RequiredSkills FactorResult `json:"required_skills"` // max 25
	Experience     FactorResult `json:"experience"`      // max 10
	Location       FactorResult `json:"location"`        // max 5

	// Preference Alignment (cap 35)
	TitleRelevance    FactorResult `json:"title_relevance"`    // max 15
	SalaryFit         FactorResult `json:"salary_fit"`         // max 10
	Industry          FactorResult `json:"industry"`           // max 5
	CompanyAttributes FactorResult `json:"company_attributes"` // max 5

	// Bonus (cap 25)
	NiceToHaveSkills FactorResult `json:"nice_to_have_skills"` // max 10
	KeywordDensity   FactorResult `json:"keyword_density"`     // max 5
	Recency          FactorResult `json:"recency"`             // max 5
	Competition      FactorResult `json:"competition"`         // max 5
}

// HardRequirementsScore sums the hard-requirement factor scores.
func (b *ScoreBreakdown) HardRequirementsScore() int {
	return b.RequiredSkills.Score + b.Experience.Score + b.Location.Score
}

// PreferenceAlignmentScore sums the preference-alignment factor scores.
func (b *ScoreBreakdown) PreferenceAlignmentScore() int {
	return b.TitleRelevance.Score + b.SalaryFit.Score + b.Industry.Score + b.CompanyAttributes.Score
}

// BonusScore sums the bonus factor scores.
func (b *ScoreBreakdown) BonusScore() int {
	return b.NiceToHaveSkills.Score + b.KeywordDensity.Score + b.Recency.Score + b.Competition.Score
}

// MatchResult is the full outcome of scoring one job against one profile.
// It is created fresh per scoring call and never mutated afterward.
type MatchResult struct {
	JobID          string         `json:"job_id"`
	TotalScore     int            `json:"total_score"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	MatchQuality   MatchQuality   `json:"match_quality"`
	TopReasons     []string       `json:"top_reasons"`
	Warnings       []string       `json:"warnings"`
	SkillGaps      []string       `json:"skill_gaps"`
}

// WeightConfig carries advisory per-factor weight overrides. The default
// scoring path records these for debugging but never multiplies them into
// the computation; the fixed per-factor max scores govern the algorithm.
type WeightConfig struct {
	RequiredSkills    float64 `json:"required_skills,omitempty"`
	Experience        float64 `json:"experience,omitempty"`
	Location          float64 `json:"location,omitempty"`
	TitleRelevance    float64 `json:"title_relevance,omitempty"`
	SalaryFit         float64 `json:"salary_fit,omitempty"`
	Industry          float64 `json:"industry,omitempty"`
	CompanyAttributes float64 `json:"company_attributes,omitempty"`
	NiceToHaveSkills  float64 `json:"nice_to_have_skills,omitempty"`
	KeywordDensity    float64 `json:"keyword_density,omitempty"`
	Recency           float64 `json:"recency,omitempty"`
	Competition       float64 `json:"competition,omitempty"`
}

// ScoringOptions tunes a scoring call. The zero value is valid.
type ScoringOptions struct {
	Weights          *WeightConfig `json:"weights,omitempty"` // advisory only
	MinScore         int           `json:"min_score,omitempty"`
	IncludeSkillGaps bool          `json:"include_skill_gaps,omitempty"`
	IncludeDebugInfo bool          `json:"include_debug_info,omitempty"`
}

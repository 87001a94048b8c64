package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-matcher/internal/types"
)

func fixedClock() time.Time {
	return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
}

func strongProfile() *types.UserMatchProfile {
	p := types.NewEmptyProfile("user-1")
	p.PrimaryTitle = "Senior Backend Engineer"
	p.Skills = []string{"go", "postgresql", "kubernetes", "redis"}
	p.YearsExperience = 6
	p.MinSalary = 140000
	p.RemotePreference = "remote"
	p.Industries = []string{"fintech"}
	p.IncludeKeywords = []string{"distributed", "payments"}
	return p
}

func strongJob() *types.JobPosting {
	return &types.JobPosting{
		ID:                   "job-1",
		Title:                "Senior Backend Engineer",
		Company:              "Acme Payments",
		RemoteType:           "remote",
		Description:          "Distributed payments platform in Go with PostgreSQL and Redis.",
		PostedDate:           "2026-06-14",
		RequiredSkills:       []string{"Go", "PostgreSQL"},
		PreferredSkills:      []string{"Kubernetes", "Redis"},
		SalaryMin:            intPtr(150000),
		SalaryMax:            intPtr(190000),
		Industry:             "Fintech",
		ExperienceYearsMin:   intPtr(5),
		ExperienceYearsMax:   intPtr(9),
		CompetitivenessLevel: "low",
	}
}

func TestScoreJob_IsDeterministic(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedClock)
	profile := strongProfile()
	job := strongJob()

	first := engine.ScoreJob(job, profile, nil)
	second := engine.ScoreJob(job, profile, nil)

	assert.Equal(t, first, second)
}

func TestScoreJob_TotalAndCategoryBounds(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedClock)

	profiles := []*types.UserMatchProfile{
		strongProfile(),
		types.NewEmptyProfile("user-2"),
	}
	jobs := []*types.JobPosting{
		strongJob(),
		{ID: "job-empty"},
	}
	for _, profile := range profiles {
		for _, job := range jobs {
			result := engine.ScoreJob(job, profile, nil)
			b := result.ScoreBreakdown

			assert.GreaterOrEqual(t, result.TotalScore, 0)
			assert.LessOrEqual(t, result.TotalScore, 100)
			assert.LessOrEqual(t, b.HardRequirementsScore(), types.HardRequirementsCap)
			assert.LessOrEqual(t, b.PreferenceAlignmentScore(), types.PreferenceAlignmentCap)
			assert.LessOrEqual(t, b.BonusScore(), types.BonusCap)
		}
	}
}

func TestScoreJob_StrongAlignmentScoresExcellent(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedClock)

	result := engine.ScoreJob(strongJob(), strongProfile(), nil)

	assert.Equal(t, types.QualityExcellent, result.MatchQuality)
	assert.Equal(t, 15, result.ScoreBreakdown.TitleRelevance.Score)
	assert.Equal(t, 25, result.ScoreBreakdown.RequiredSkills.Score)
	assert.Empty(t, result.Warnings)
}

func TestScoreJob_AliasCoverageCountsAsRequired(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedClock)
	profile := types.NewEmptyProfile("user-1")
	profile.Skills = []string{"python", "amazon web services"}
	job := &types.JobPosting{
		ID:             "job-2",
		Title:          "Data Engineer",
		RequiredSkills: []string{"Python", "AWS"},
	}

	result := engine.ScoreJob(job, profile, nil)

	assert.Equal(t, 25, result.ScoreBreakdown.RequiredSkills.Score)
}

func TestScoreJob_SalaryBelowMinimumPenalized(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedClock)
	profile := types.NewEmptyProfile("user-1")
	profile.MinSalary = 100000
	job := &types.JobPosting{ID: "job-3", Title: "Engineer", SalaryMax: intPtr(90000)}

	result := engine.ScoreJob(job, profile, nil)

	assert.Equal(t, 5, result.ScoreBreakdown.SalaryFit.Score)
	assert.NotEmpty(t, result.Warnings)
}

func TestScoreJob_AvoidKeywordZeroesKeywordFactor(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedClock)
	profile := strongProfile()
	profile.AvoidKeywords = []string{"on-call"}
	job := strongJob()
	job.Description += " Weekly on-call rotation."

	result := engine.ScoreJob(job, profile, nil)

	assert.Equal(t, 0, result.ScoreBreakdown.KeywordDensity.Score)
	assert.Contains(t, result.ScoreBreakdown.KeywordDensity.Reasons[0], "Warning:")
}

func TestScoreJob_TopReasonsExcludeWarningsAndCapAtFour(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedClock)
	profile := strongProfile()
	profile.MinSalary = 300000 // force a salary warning

	result := engine.ScoreJob(strongJob(), profile, nil)

	assert.LessOrEqual(t, len(result.TopReasons), 4)
	for _, reason := range result.TopReasons {
		assert.NotContains(t, reason, "Warning:")
	}
	assert.NotEmpty(t, result.Warnings)
}

func TestScoreJob_SkillGapsOnlyWhenRequested(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedClock)
	profile := types.NewEmptyProfile("user-1")
	profile.Skills = []string{"go"}
	job := &types.JobPosting{
		ID:             "job-4",
		Title:          "Engineer",
		RequiredSkills: []string{"Go", "Rust", "Kafka"},
	}

	without := engine.ScoreJob(job, profile, nil)
	assert.Empty(t, without.SkillGaps)

	with := engine.ScoreJob(job, profile, &types.ScoringOptions{IncludeSkillGaps: true})
	assert.ElementsMatch(t, []string{"Rust", "Kafka"}, with.SkillGaps)
}

func TestScoreJob_EmptyInputsNeverPanic(t *testing.T) {
	engine := NewEngine(nil).WithClock(fixedClock)

	result := engine.ScoreJob(&types.JobPosting{}, types.NewEmptyProfile(""), nil)

	assert.Equal(t, types.QualityPoor, result.MatchQuality)
	assert.NotNil(t, result.TopReasons)
	assert.NotNil(t, result.Warnings)
	assert.NotNil(t, result.SkillGaps)
}

func TestClassifyQuality_Thresholds(t *testing.T) {
	assert.Equal(t, types.QualityExcellent, classifyQuality(80))
	assert.Equal(t, types.QualityGood, classifyQuality(79))
	assert.Equal(t, types.QualityGood, classifyQuality(60))
	assert.Equal(t, types.QualityFair, classifyQuality(59))
	assert.Equal(t, types.QualityFair, classifyQuality(40))
	assert.Equal(t, types.QualityPoor, classifyQuality(39))
}

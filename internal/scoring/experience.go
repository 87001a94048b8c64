package scoring

import (
	"github.com/jonathan/job-matcher/internal/seniority"
	"github.com/jonathan/job-matcher/internal/types"
)

// ScoreExperience delegates to the seniority matcher. When the job states no
// structured seniority level, one is extracted from its title so "Senior
// Backend Engineer" still carries a requirement.
func ScoreExperience(profile *types.UserMatchProfile, job *types.JobPosting) types.FactorResult {
	jobLevel := job.SeniorityLevel
	if jobLevel == "" {
		if extracted, ok := seniority.ExtractLevel(job.Title); ok {
			jobLevel = string(extracted)
		}
	}
	return seniority.Match(
		profile.YearsExperience,
		profile.SeniorityLevels,
		jobLevel,
		job.ExperienceYearsMin,
		job.ExperienceYearsMax,
	)
}

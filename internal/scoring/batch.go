package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// ScoreJobBatch filters out excluded jobs, scores the remainder, drops
// results under the minimum score, and sorts descending by total score.
// Ties keep the original job order.
func (e *Engine) ScoreJobBatch(jobs []types.JobPosting, profile *types.UserMatchProfile, opts *types.ScoringOptions) []types.MatchResult {
	if opts == nil {
		opts = &types.ScoringOptions{}
	}

	results := make([]types.MatchResult, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		if excluded(job, profile) {
			continue
		}
		result := e.ScoreJob(job, profile, opts)
		if result.TotalScore < opts.MinScore {
			continue
		}
		results = append(results, *result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})
	return results
}

// excluded reports whether the job's company or title hits one of the
// profile's exclusion lists (case-insensitive substring).
func excluded(job *types.JobPosting, profile *types.UserMatchProfile) bool {
	companyLower := strings.ToLower(job.Company)
	for _, exclude := range profile.ExcludeCompanies {
		excludeLower := strings.ToLower(strings.TrimSpace(exclude))
		if excludeLower != "" && strings.Contains(companyLower, excludeLower) {
			return true
		}
	}
	titleLower := strings.ToLower(job.Title)
	for _, exclude := range profile.ExcludeTitles {
		excludeLower := strings.ToLower(strings.TrimSpace(exclude))
		if excludeLower != "" && strings.Contains(titleLower, excludeLower) {
			return true
		}
	}
	return false
}

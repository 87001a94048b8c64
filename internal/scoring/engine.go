// Package scoring implements the deterministic, explainable job match
// scoring engine: ten factor scorers, the per-job aggregation that produces
// a 0-100 score with reasons, and the batch filter/sort pipeline.
package scoring

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// warningPrefix marks reason strings that should surface as warnings.
const warningPrefix = "Warning:"

// maxTopReasons caps the number of reasons surfaced on a MatchResult.
const maxTopReasons = 4

// Quality tier thresholds.
const (
	excellentThreshold = 80
	goodThreshold      = 60
	fairThreshold      = 40
)

// Engine scores job postings against an aggregated candidate profile. It
// holds only immutable configuration, so one Engine is safe for concurrent
// use and scoring is a pure function of its inputs.
type Engine struct {
	skills *skills.Matcher
	// now is injectable for deterministic recency scoring in tests.
	now func() time.Time
}

// NewEngine builds an Engine over the given skill matcher. A nil matcher
// falls back to the default alias table.
func NewEngine(matcher *skills.Matcher) *Engine {
	if matcher == nil {
		matcher = skills.NewDefaultMatcher()
	}
	return &Engine{skills: matcher, now: time.Now}
}

// WithClock returns a copy of the engine that uses the supplied clock for
// recency scoring.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	clone := *e
	clone.now = now
	return &clone
}

// ScoreJob scores one job against one profile. It never fails: every
// missing input resolves to a documented neutral score.
func (e *Engine) ScoreJob(job *types.JobPosting, profile *types.UserMatchProfile, opts *types.ScoringOptions) *types.MatchResult {
	if opts == nil {
		opts = &types.ScoringOptions{}
	}

	pool := e.skillPool(profile)
	counts := e.skills.CountMatches(pool, job.RequiredSkills, job.PreferredSkills, job.Description)

	breakdown := types.ScoreBreakdown{
		RequiredSkills:    ScoreRequiredSkills(counts, len(job.RequiredSkills)),
		Experience:        ScoreExperience(profile, job),
		Location:          ScoreLocation(profile.RemotePreference, profile.PreferredLocations, job.RemoteType, job.Location),
		TitleRelevance:    ScoreTitle(profile.PrimaryTitle, profile.RelatedTitles, job.Title),
		SalaryFit:         ScoreSalary(profile.MinSalary, profile.MaxSalary, job.SalaryMin, job.SalaryMax),
		Industry:          ScoreIndustry(profile.Industries, job.Industry, job.Company, job.Description),
		CompanyAttributes: ScoreCompanyAttributes(profile.CompanySizes, profile.MissionValues, job.CompanySize, job.Description),
		NiceToHaveSkills:  ScoreNiceToHaveSkills(counts, len(job.PreferredSkills)),
		KeywordDensity:    ScoreKeywords(profile.IncludeKeywords, profile.AvoidKeywords, job.Title, job.Description),
		Recency:           ScoreRecency(job.PostedDate, e.now()),
		Competition:       ScoreCompetition(job.CompetitivenessLevel),
	}

	total := breakdown.HardRequirementsScore() +
		breakdown.PreferenceAlignmentScore() +
		breakdown.BonusScore()
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	result := &types.MatchResult{
		JobID:          job.ID,
		TotalScore:     total,
		ScoreBreakdown: breakdown,
		MatchQuality:   classifyQuality(total),
		TopReasons:     topReasons(&breakdown),
		Warnings:       collectWarnings(&breakdown),
		SkillGaps:      []string{},
	}
	if opts.IncludeSkillGaps {
		result.SkillGaps = append(result.SkillGaps, counts.RequiredMissing...)
	}
	return result
}

// skillPool merges the profile's skill lists into one deduplicated,
// canonicalized pool.
func (e *Engine) skillPool(profile *types.UserMatchProfile) []string {
	seen := make(map[string]bool)
	pool := make([]string, 0, len(profile.Skills)+len(profile.RequiredSkills)+len(profile.NiceToHaveSkills)+len(profile.ResumeSkills))
	for _, list := range [][]string{profile.Skills, profile.RequiredSkills, profile.NiceToHaveSkills, profile.ResumeSkills} {
		for _, skill := range list {
			canonical := e.skills.Canonicalize(skill)
			if canonical == "" || seen[canonical] {
				continue
			}
			seen[canonical] = true
			pool = append(pool, canonical)
		}
	}
	return pool
}

func classifyQuality(total int) types.MatchQuality {
	switch {
	case total >= excellentThreshold:
		return types.QualityExcellent
	case total >= goodThreshold:
		return types.QualityGood
	case total >= fairThreshold:
		return types.QualityFair
	default:
		return types.QualityPoor
	}
}

// weightedReason pairs a reason string with its selection weight.
type weightedReason struct {
	text   string
	weight int
}

// factorView is one factor's contribution to reason/warning synthesis.
type factorView struct {
	result *types.FactorResult
	// importance multiplies the factor score when ranking reasons.
	importance int
	// hard factors are the only warning sources.
	hard bool
}

// orderedFactors lists the factors in their fixed order, which also breaks
// ties during top-reason selection.
func orderedFactors(b *types.ScoreBreakdown) []factorView {
	return []factorView{
		{&b.RequiredSkills, 3, true},
		{&b.Experience, 2, true},
		{&b.Location, 1, true},
		{&b.TitleRelevance, 2, false},
		{&b.SalaryFit, 2, true},
		{&b.Industry, 1, false},
		{&b.CompanyAttributes, 1, false},
		{&b.NiceToHaveSkills, 1, false},
		{&b.KeywordDensity, 1, false},
		{&b.Recency, 1, false},
		{&b.Competition, 1, false},
	}
}

// topReasons weighs every non-warning reason by factor score times factor
// importance, keeps the best four, and preserves factor order on ties.
func topReasons(b *types.ScoreBreakdown) []string {
	candidates := []weightedReason{}
	for _, view := range orderedFactors(b) {
		for _, reason := range view.result.Reasons {
			if reason == "" || strings.HasPrefix(reason, warningPrefix) {
				continue
			}
			candidates = append(candidates, weightedReason{
				text:   reason,
				weight: view.result.Score * view.importance,
			})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})
	if len(candidates) > maxTopReasons {
		candidates = candidates[:maxTopReasons]
	}
	reasons := make([]string, 0, len(candidates))
	for _, c := range candidates {
		reasons = append(reasons, c.text)
	}
	return reasons
}

// collectWarnings gathers warning-marked reasons from the hard factors
// (required skills, experience, salary, location) only.
func collectWarnings(b *types.ScoreBreakdown) []string {
	warnings := []string{}
	for _, view := range orderedFactors(b) {
		if !view.hard {
			continue
		}
		for _, reason := range view.result.Reasons {
			if strings.HasPrefix(reason, warningPrefix) {
				warnings = append(warnings, reason)
			}
		}
	}
	return warnings
}

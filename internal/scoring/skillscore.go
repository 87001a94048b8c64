package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// Factor ceilings for the two skill factors.
const (
	MaxRequiredSkillsScore   = 25
	MaxNiceToHaveSkillsScore = 10
)

// pointsPerPreferredMatch is credited per nice-to-have skill match.
const pointsPerPreferredMatch = 2

// ScoreRequiredSkills rates coverage of the job's required skill list. When
// the job states no required list the score is inferred from how many of
// the candidate's skills surface in the description.
func ScoreRequiredSkills(counts skills.CoverageCounts, requiredCount int) types.FactorResult {
	if requiredCount == 0 {
		return inferredRequiredScore(len(counts.BonusMatches))
	}

	matched := len(counts.RequiredMatched)
	if matched == 0 {
		return types.FactorResult{
			Score:    0,
			MaxScore: MaxRequiredSkillsScore,
			Reasons:  []string{fmt.Sprintf("Warning: missing all %d required skills", requiredCount)},
		}
	}
	if matched >= requiredCount {
		return types.FactorResult{
			Score:    MaxRequiredSkillsScore,
			MaxScore: MaxRequiredSkillsScore,
			Reasons:  []string{fmt.Sprintf("You have all %d required skills (%s)", requiredCount, strings.Join(counts.RequiredMatched, ", "))},
		}
	}

	matchRate := float64(matched) / float64(requiredCount)
	score := int(math.Round(matchRate * MaxRequiredSkillsScore))
	reasons := []string{
		fmt.Sprintf("You have %d of %d required skills (%s)", matched, requiredCount, strings.Join(counts.RequiredMatched, ", ")),
		fmt.Sprintf("Warning: missing required skills: %s", strings.Join(counts.RequiredMissing, ", ")),
	}
	return types.FactorResult{Score: score, MaxScore: MaxRequiredSkillsScore, Reasons: reasons}
}

// inferredRequiredScore grades skill fit from description bonus matches when
// the posting lists no explicit requirements.
func inferredRequiredScore(bonusMatches int) types.FactorResult {
	var score int
	switch {
	case bonusMatches >= 5:
		score = 20
	case bonusMatches >= 3:
		score = 15
	case bonusMatches >= 1:
		score = 10
	default:
		score = 5
	}
	reason := "No required skills listed"
	if bonusMatches > 0 {
		reason = fmt.Sprintf("No required skills listed; %d of your skills appear in the description", bonusMatches)
	}
	return types.FactorResult{
		Score:    score,
		MaxScore: MaxRequiredSkillsScore,
		Reasons:  []string{reason},
	}
}

// ScoreNiceToHaveSkills credits preferred-skill matches, falling back to
// description bonus matches when the posting lists no preferred skills.
// Bonus matches already exclude anything credited as required or preferred,
// so a skill never earns points in two buckets.
func ScoreNiceToHaveSkills(counts skills.CoverageCounts, preferredCount int) types.FactorResult {
	if preferredCount == 0 {
		score := len(counts.BonusMatches) * pointsPerPreferredMatch
		if score > MaxNiceToHaveSkillsScore {
			score = MaxNiceToHaveSkillsScore
		}
		reasons := []string{}
		if len(counts.BonusMatches) > 0 {
			reasons = append(reasons, fmt.Sprintf("Bonus: %d of your skills appear in the description (%s)",
				len(counts.BonusMatches), strings.Join(counts.BonusMatches, ", ")))
		}
		return types.FactorResult{Score: score, MaxScore: MaxNiceToHaveSkillsScore, Reasons: reasons}
	}

	matched := len(counts.PreferredMatched)
	score := matched * pointsPerPreferredMatch
	if score > MaxNiceToHaveSkillsScore {
		score = MaxNiceToHaveSkillsScore
	}
	reasons := []string{}
	if matched > 0 {
		reasons = append(reasons, fmt.Sprintf("You have %d nice-to-have skills (%s)", matched, strings.Join(counts.PreferredMatched, ", ")))
	}
	return types.FactorResult{Score: score, MaxScore: MaxNiceToHaveSkillsScore, Reasons: reasons}
}

package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// MaxKeywordScore is the ceiling for the keyword density factor.
const MaxKeywordScore = 5

// ScoreKeywords rates include-keyword density in the job text. Any avoid
// keyword found in the description is a hard veto: the score is zero
// regardless of include matches.
func ScoreKeywords(includeKeywords, avoidKeywords []string, jobTitle, jobDescription string) types.FactorResult {
	haystack := strings.ToLower(jobTitle + " " + jobDescription)

	for _, avoid := range avoidKeywords {
		avoidLower := strings.ToLower(strings.TrimSpace(avoid))
		if avoidLower == "" {
			continue
		}
		if strings.Contains(haystack, avoidLower) {
			return types.FactorResult{
				Score:    0,
				MaxScore: MaxKeywordScore,
				Reasons:  []string{fmt.Sprintf("Warning: contains a keyword you avoid (%s)", avoid)},
			}
		}
	}

	if len(includeKeywords) == 0 {
		return types.FactorResult{
			Score:    3,
			MaxScore: MaxKeywordScore,
			Reasons:  []string{},
		}
	}

	matches := 0
	matchedKeywords := []string{}
	for _, keyword := range includeKeywords {
		keywordLower := strings.ToLower(strings.TrimSpace(keyword))
		if keywordLower == "" {
			continue
		}
		if strings.Contains(haystack, keywordLower) {
			matches++
			matchedKeywords = append(matchedKeywords, keyword)
		}
	}

	matchRate := float64(matches) / float64(len(includeKeywords))
	var score int
	switch {
	case matchRate >= 0.5:
		score = MaxKeywordScore
	case matchRate >= 0.25:
		score = 4
	case matches > 0:
		score = 3
	default:
		score = 2
	}

	reasons := []string{}
	if matches > 0 {
		reasons = append(reasons, fmt.Sprintf("Mentions %d of your keywords (%s)", matches, strings.Join(matchedKeywords, ", ")))
	}
	return types.FactorResult{Score: score, MaxScore: MaxKeywordScore, Reasons: reasons}
}

package scoring

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// MaxCompetitionScore is the ceiling for the competition factor.
const MaxCompetitionScore = 5

// ScoreCompetition rates the posting's stated competitiveness. Lower
// competition scores higher; unknown values are neutral.
func ScoreCompetition(competitivenessLevel string) types.FactorResult {
	level := strings.ToLower(strings.TrimSpace(competitivenessLevel))
	if level == "" {
		return types.FactorResult{
			Score:    3,
			MaxScore: MaxCompetitionScore,
			Reasons:  []string{},
		}
	}

	switch {
	case strings.Contains(level, "low"):
		return types.FactorResult{
			Score:    5,
			MaxScore: MaxCompetitionScore,
			Reasons:  []string{"Low competition for this role"},
		}
	case strings.Contains(level, "medium"), strings.Contains(level, "moderate"), strings.Contains(level, "balanced"):
		return types.FactorResult{
			Score:    4,
			MaxScore: MaxCompetitionScore,
			Reasons:  []string{"Moderate competition for this role"},
		}
	case strings.Contains(level, "high"):
		return types.FactorResult{
			Score:    2,
			MaxScore: MaxCompetitionScore,
			Reasons:  []string{"High competition for this role"},
		}
	default:
		return types.FactorResult{
			Score:    3,
			MaxScore: MaxCompetitionScore,
			Reasons:  []string{},
		}
	}
}

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIndustry_DirectMatch(t *testing.T) {
	result := ScoreIndustry([]string{"Fintech"}, "Fintech", "", "")

	assert.Equal(t, 5, result.Score)
	assert.Contains(t, result.Reasons[0], "Fintech")
}

func TestScoreIndustry_AliasMatchInDescription(t *testing.T) {
	result := ScoreIndustry([]string{"fintech"}, "", "", "We build payments infrastructure.")

	assert.Equal(t, 5, result.Score)
}

func TestScoreIndustry_FirstPreferenceWins(t *testing.T) {
	result := ScoreIndustry([]string{"healthcare", "technology"}, "SaaS", "", "biotech platform")

	assert.Equal(t, 5, result.Score)
	assert.Contains(t, result.Reasons[0], "healthcare")
}

func TestScoreIndustry_StatedMismatch(t *testing.T) {
	result := ScoreIndustry([]string{"gaming"}, "Insurance", "", "")

	assert.Equal(t, 2, result.Score)
}

func TestScoreIndustry_Neutrals(t *testing.T) {
	assert.Equal(t, 3, ScoreIndustry(nil, "Fintech", "", "").Score)
	assert.Equal(t, 3, ScoreIndustry([]string{"gaming"}, "", "", "").Score)
}

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTitle_ExactMatch(t *testing.T) {
	result := ScoreTitle("Senior Backend Engineer", nil, "Senior Backend Engineer")

	assert.Equal(t, 15, result.Score)
	assert.Equal(t, 15, result.MaxScore)
}

func TestScoreTitle_ContainedMatch(t *testing.T) {
	result := ScoreTitle("Backend Engineer", nil, "Senior Backend Engineer (Platform)")

	assert.Equal(t, 15, result.Score)
}

func TestScoreTitle_RelatedTitleMatch(t *testing.T) {
	result := ScoreTitle("Site Reliability Engineer", []string{"Platform Engineer"}, "Platform Engineer")

	assert.Equal(t, 13, result.Score)
}

func TestScoreTitle_StrongTokenOverlap(t *testing.T) {
	// "backend" and "engineer" overlap; "senior" does not: 2/3 >= 50%
	result := ScoreTitle("Senior Backend Engineer", nil, "Backend Engineer, Payments")

	assert.Equal(t, 10, result.Score)
}

func TestScoreTitle_WeakOverlap(t *testing.T) {
	// only "engineer" overlaps: 1/3 >= 30%
	result := ScoreTitle("Senior Backend Engineer", nil, "Hardware Engineer")

	assert.Equal(t, 8, result.Score)
}

func TestScoreTitle_NoOverlap(t *testing.T) {
	result := ScoreTitle("Backend Engineer", nil, "Account Executive")

	assert.Equal(t, 3, result.Score)
}

func TestScoreTitle_NoJobTitleIsNeutral(t *testing.T) {
	result := ScoreTitle("Backend Engineer", nil, "")

	assert.Equal(t, 5, result.Score)
}

func TestScoreTitle_NoPreferenceIsNeutral(t *testing.T) {
	result := ScoreTitle("", nil, "Backend Engineer")

	assert.Equal(t, 5, result.Score)
}

func TestTitleTokens_DropsStopwordsAndRomanNumerals(t *testing.T) {
	tokens := titleTokens("engineer ii of the platform")

	assert.Equal(t, []string{"engineer", "platform"}, tokens)
}

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreKeywords_AvoidKeywordIsHardVeto(t *testing.T) {
	result := ScoreKeywords(
		[]string{"kubernetes", "platform"},
		[]string{"on-call"},
		"Platform Engineer",
		"Join our Kubernetes platform team. 24/7 on-call rotation.")

	assert.Equal(t, 0, result.Score)
	assert.Contains(t, result.Reasons[0], "Warning:")
}

func TestScoreKeywords_MatchRateTiers(t *testing.T) {
	description := "We build data pipelines and streaming systems."

	// 2/2 matched
	assert.Equal(t, 5, ScoreKeywords([]string{"data", "streaming"}, nil, "", description).Score)
	// 1/4 matched = 25%
	assert.Equal(t, 4, ScoreKeywords([]string{"streaming", "ml", "golf", "sailing"}, nil, "", description).Score)
	// 1/5 matched = 20%
	assert.Equal(t, 3, ScoreKeywords([]string{"streaming", "ml", "golf", "sailing", "chess"}, nil, "", description).Score)
	// 0 matched
	assert.Equal(t, 2, ScoreKeywords([]string{"ml", "golf"}, nil, "", description).Score)
}

func TestScoreKeywords_NoIncludeListIsNeutral(t *testing.T) {
	result := ScoreKeywords(nil, nil, "Engineer", "anything")

	assert.Equal(t, 3, result.Score)
}

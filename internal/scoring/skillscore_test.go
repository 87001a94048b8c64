package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-matcher/internal/skills"
)

func TestScoreRequiredSkills_FullCoverage(t *testing.T) {
	m := skills.NewDefaultMatcher()
	counts := m.CountMatches([]string{"python", "amazon web services"}, []string{"Python", "AWS"}, nil, "")

	result := ScoreRequiredSkills(counts, 2)

	assert.Equal(t, 25, result.Score)
	assert.Equal(t, 25, result.MaxScore)
}

func TestScoreRequiredSkills_ZeroCoverage(t *testing.T) {
	m := skills.NewDefaultMatcher()
	counts := m.CountMatches([]string{"php"}, []string{"Go", "Rust", "Kafka"}, nil, "")

	result := ScoreRequiredSkills(counts, 3)

	assert.Equal(t, 0, result.Score)
	assert.Contains(t, result.Reasons[0], "missing all 3")
}

func TestScoreRequiredSkills_PartialCoverageRounds(t *testing.T) {
	m := skills.NewDefaultMatcher()
	counts := m.CountMatches([]string{"go"}, []string{"Go", "Rust", "Kafka"}, nil, "")

	result := ScoreRequiredSkills(counts, 3)

	// 1/3 of 25 rounds to 8
	assert.Equal(t, 8, result.Score)
}

func TestScoreRequiredSkills_PartialIsMonotonic(t *testing.T) {
	m := skills.NewDefaultMatcher()
	required := []string{"Go", "Rust", "Kafka", "Redis"}

	previous := -1
	pools := [][]string{
		{},
		{"go"},
		{"go", "rust"},
		{"go", "rust", "kafka"},
		{"go", "rust", "kafka", "redis"},
	}
	for _, pool := range pools {
		counts := m.CountMatches(pool, required, nil, "")
		score := ScoreRequiredSkills(counts, len(required)).Score
		assert.GreaterOrEqual(t, score, previous)
		previous = score
	}
	assert.Equal(t, 25, previous)
}

func TestScoreRequiredSkills_InferredFromDescription(t *testing.T) {
	m := skills.NewDefaultMatcher()
	description := "We use Python, Docker, Redis, Kafka and Terraform daily."
	counts := m.CountMatches([]string{"python", "docker", "redis", "kafka", "terraform"}, nil, nil, description)

	result := ScoreRequiredSkills(counts, 0)

	assert.Equal(t, 20, result.Score)
}

func TestScoreRequiredSkills_NoSignalAtAll(t *testing.T) {
	m := skills.NewDefaultMatcher()
	counts := m.CountMatches([]string{"cobol"}, nil, nil, "We ship modern software.")

	result := ScoreRequiredSkills(counts, 0)

	assert.Equal(t, 5, result.Score)
}

func TestScoreNiceToHaveSkills_TwoPointsPerMatchCapped(t *testing.T) {
	m := skills.NewDefaultMatcher()
	pool := []string{"go", "redis", "kafka", "docker", "terraform", "python"}
	preferred := []string{"Go", "Redis", "Kafka", "Docker", "Terraform", "Python"}
	counts := m.CountMatches(pool, nil, preferred, "")

	result := ScoreNiceToHaveSkills(counts, len(preferred))

	assert.Equal(t, 10, result.Score)
	assert.Equal(t, 10, result.MaxScore)
}

func TestScoreNiceToHaveSkills_FallbackToBonusMatches(t *testing.T) {
	m := skills.NewDefaultMatcher()
	counts := m.CountMatches([]string{"go", "redis"}, nil, nil, "Our stack is Go and Redis.")

	result := ScoreNiceToHaveSkills(counts, 0)

	assert.Equal(t, 4, result.Score)
}

func TestScoreNiceToHaveSkills_BonusNeverDoubleCredits(t *testing.T) {
	m := skills.NewDefaultMatcher()
	// redis is credited as preferred; the description mention must not add
	// a second credit through the bonus bucket.
	counts := m.CountMatches([]string{"redis"}, nil, []string{"Redis"}, "Redis experience a plus")

	result := ScoreNiceToHaveSkills(counts, 1)

	assert.Equal(t, 2, result.Score)
	assert.Empty(t, counts.BonusMatches)
}

package scoring

import (
	"strings"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

// MaxRecencyScore is the ceiling for the posting recency factor.
const MaxRecencyScore = 5

// postedDateLayouts are tried in order when parsing a posting date.
var postedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ScoreRecency rates how fresh the posting is. Unknown or unparseable dates
// are neutral.
func ScoreRecency(postedDate string, now time.Time) types.FactorResult {
	posted, ok := parsePostedDate(postedDate)
	if !ok {
		return types.FactorResult{
			Score:    3,
			MaxScore: MaxRecencyScore,
			Reasons:  []string{"Posting date unknown"},
		}
	}

	days := int(now.Sub(posted).Hours() / 24)
	var score int
	var reason string
	switch {
	case days <= 3:
		score, reason = 5, "Posted within the last 3 days"
	case days <= 7:
		score, reason = 4, "Posted within the last week"
	case days <= 14:
		score, reason = 3, "Posted within the last two weeks"
	case days <= 30:
		score, reason = 2, "Posted within the last month"
	default:
		score, reason = 1, "Posted more than a month ago"
	}
	return types.FactorResult{Score: score, MaxScore: MaxRecencyScore, Reasons: []string{reason}}
}

func parsePostedDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range postedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Package seniority extracts seniority levels and years-of-experience from
// job text and compares candidate experience against job requirements.
package seniority

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// MaxScore is the ceiling for the experience factor.
const MaxScore = 10

// neutralScore is assigned when neither side carries enough data to compare.
const neutralScore = 5

// ExtractLevel finds the seniority level implied by a title or free-text
// description. Returns the level and true on a match; the empty level and
// false when no pattern matches.
func ExtractLevel(text string) (Level, bool) {
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, pattern := range levelPatterns {
		for _, keyword := range pattern.keywords {
			if containsKeyword(lower, keyword) {
				return pattern.level, true
			}
		}
	}
	return "", false
}

// containsKeyword reports whether keyword occurs in text on word boundaries.
// Plain substring search would classify "director" as executive via "cto"
// and "pyramid" as mid via "mid".
func containsKeyword(text, keyword string) bool {
	for from := 0; ; {
		i := strings.Index(text[from:], keyword)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(keyword)
		startOK := start == 0 || !isWordChar(text[start-1])
		endOK := end == len(text) || !isWordChar(text[end])
		if startOK && endOK {
			return true
		}
		from = start + 1
	}
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// ExtractYears finds a years-of-experience figure in free text, trying each
// extraction pattern in priority order and returning the first hit. Ranges
// yield their minimum. Returns 0, false when nothing matches.
func ExtractYears(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	lower := strings.ToLower(text)
	for _, pattern := range yearsPatterns {
		match := pattern.re.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		years, err := strconv.Atoi(match[pattern.group])
		if err != nil {
			continue
		}
		return years, true
	}
	return 0, false
}

// LevelFromYears converts a years-of-experience figure to a level via the
// fixed year bands.
func LevelFromYears(years int) Level {
	for _, band := range yearBands {
		if years >= band.minYears {
			return band.level
		}
	}
	return LevelJunior
}

// ParseLevel normalizes a level string to a known Level. Accepts the level
// names themselves plus common title keywords.
func ParseLevel(s string) (Level, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if _, ok := levelRank[Level(normalized)]; ok {
		return Level(normalized), true
	}
	return ExtractLevel(normalized)
}

// Distance returns the absolute distance between two levels in the total
// order. Distance 1 means the levels are adjacent.
func Distance(a, b Level) int {
	d := levelRank[a] - levelRank[b]
	if d < 0 {
		d = -d
	}
	return d
}

// Match compares a candidate's experience with a job's seniority
// requirement and returns the experience factor result (0-10).
//
// Precedence:
//  1. Numeric year comparison when both sides state explicit years.
//  2. Explicit level-preference match against the job's level.
//  3. Level derived from the candidate's years, compared ordinally.
//  4. Neutral 5/10 when the match cannot be determined.
func Match(userYears int, userLevelPrefs []string, jobLevel string, jobYearsMin, jobYearsMax *int) types.FactorResult {
	// No job-side requirement at all is neutral, never a penalty.
	if jobLevel == "" && jobYearsMin == nil && jobYearsMax == nil {
		return types.FactorResult{
			Score:    neutralScore,
			MaxScore: MaxScore,
			Reasons:  []string{"No experience requirement specified"},
		}
	}

	if jobYearsMin != nil && userYears > 0 {
		return matchByYears(userYears, *jobYearsMin, jobYearsMax)
	}

	parsedJobLevel, jobLevelKnown := ParseLevel(jobLevel)
	if !jobLevelKnown && jobYearsMin != nil {
		parsedJobLevel = LevelFromYears(*jobYearsMin)
		jobLevelKnown = true
	}

	if jobLevelKnown && len(userLevelPrefs) > 0 {
		return matchByPreference(userLevelPrefs, parsedJobLevel)
	}

	if jobLevelKnown && userYears > 0 {
		return matchByDerivedLevel(userYears, parsedJobLevel)
	}

	return types.FactorResult{
		Score:    neutralScore,
		MaxScore: MaxScore,
		Reasons:  []string{"Experience match could not be determined"},
	}
}

// matchByYears handles the explicit-years comparison. Full credit when the
// candidate meets the minimum and is within 3 years of any stated maximum.
func matchByYears(userYears, jobMin int, jobMax *int) types.FactorResult {
	if userYears >= jobMin {
		if jobMax != nil && userYears > *jobMax+3 {
			return types.FactorResult{
				Score:    6,
				MaxScore: MaxScore,
				Reasons:  []string{fmt.Sprintf("Overqualified: %d years experience vs %d-%d required", userYears, jobMin, *jobMax)},
			}
		}
		return types.FactorResult{
			Score:    MaxScore,
			MaxScore: MaxScore,
			Reasons:  []string{fmt.Sprintf("Meets experience requirement (%d years, %d required)", userYears, jobMin)},
		}
	}

	// Graduated penalty: the further under the minimum, the lower the score.
	gap := jobMin - userYears
	var score int
	switch {
	case gap <= 1:
		score = 7
	case gap <= 2:
		score = 5
	case gap <= 3:
		score = 3
	default:
		score = 1
	}
	return types.FactorResult{
		Score:    score,
		MaxScore: MaxScore,
		Reasons:  []string{fmt.Sprintf("Warning: %d years below the required %d years of experience", gap, jobMin)},
	}
}

// matchByPreference compares the job's level against the candidate's
// explicit seniority preferences. Adjacent levels get a softened score
// instead of the full mismatch penalty.
func matchByPreference(prefs []string, jobLevel Level) types.FactorResult {
	best := -1
	for _, pref := range prefs {
		level, ok := ParseLevel(pref)
		if !ok {
			continue
		}
		d := Distance(level, jobLevel)
		if best == -1 || d < best {
			best = d
		}
	}

	switch {
	case best == 0:
		return types.FactorResult{
			Score:    MaxScore,
			MaxScore: MaxScore,
			Reasons:  []string{fmt.Sprintf("Seniority level matches your preference (%s)", jobLevel)},
		}
	case best == 1:
		return types.FactorResult{
			Score:    7,
			MaxScore: MaxScore,
			Reasons:  []string{fmt.Sprintf("Seniority level (%s) is adjacent to your preference", jobLevel)},
		}
	case best > 1:
		return types.FactorResult{
			Score:    3,
			MaxScore: MaxScore,
			Reasons:  []string{fmt.Sprintf("Warning: seniority level (%s) is far from your preference", jobLevel)},
		}
	default:
		return types.FactorResult{
			Score:    neutralScore,
			MaxScore: MaxScore,
			Reasons:  []string{"Experience match could not be determined"},
		}
	}
}

// matchByDerivedLevel derives the candidate's level from years and compares
// it ordinally with the job's level.
func matchByDerivedLevel(userYears int, jobLevel Level) types.FactorResult {
	userLevel := LevelFromYears(userYears)
	switch Distance(userLevel, jobLevel) {
	case 0:
		return types.FactorResult{
			Score:    MaxScore,
			MaxScore: MaxScore,
			Reasons:  []string{fmt.Sprintf("Your experience (%d years) matches the %s level", userYears, jobLevel)},
		}
	case 1:
		return types.FactorResult{
			Score:    7,
			MaxScore: MaxScore,
			Reasons:  []string{fmt.Sprintf("Your experience (%d years) is close to the %s level", userYears, jobLevel)},
		}
	default:
		return types.FactorResult{
			Score:    3,
			MaxScore: MaxScore,
			Reasons:  []string{fmt.Sprintf("Warning: your experience level (%s) differs from the job's %s level", userLevel, jobLevel)},
		}
	}
}

package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// MaxCompanyScore is the ceiling for the company attributes factor:
// up to 3 points for company-size fit plus up to 2 for mission values.
const MaxCompanyScore = 5

// ScoreCompanyAttributes combines a company-size sub-check (3 points) with a
// mission-values sub-check (2 points). Each sub-check is worth 1 neutral
// point when the corresponding preference is unset.
func ScoreCompanyAttributes(sizePrefs, missionValues []string, jobCompanySize, jobDescription string) types.FactorResult {
	score := 0
	reasons := []string{}

	// Company size: 3 points for a match, 1 neutral when no preference.
	switch {
	case len(sizePrefs) == 0:
		score++
	case jobCompanySize == "":
		score++
	default:
		sizeLower := strings.ToLower(jobCompanySize)
		matched := false
		for _, pref := range sizePrefs {
			prefLower := strings.ToLower(strings.TrimSpace(pref))
			if prefLower == "" {
				continue
			}
			if strings.Contains(sizeLower, prefLower) || strings.Contains(prefLower, sizeLower) {
				score += 3
				reasons = append(reasons, fmt.Sprintf("Company size (%s) matches your preference", jobCompanySize))
				matched = true
				break
			}
		}
		if !matched {
			reasons = append(reasons, fmt.Sprintf("Company size (%s) is not among your preferences", jobCompanySize))
		}
	}

	// Mission values: 2 points for two or more keyword hits in the
	// description, 1 point for a single hit, 1 neutral when no preference.
	if len(missionValues) == 0 {
		score++
	} else {
		descLower := strings.ToLower(jobDescription)
		hits := 0
		matchedValues := []string{}
		for _, value := range missionValues {
			valueLower := strings.ToLower(strings.TrimSpace(value))
			if valueLower == "" {
				continue
			}
			if strings.Contains(descLower, valueLower) {
				hits++
				matchedValues = append(matchedValues, value)
			}
		}
		switch {
		case hits >= 2:
			score += 2
			reasons = append(reasons, fmt.Sprintf("Mission aligns with your values (%s)", strings.Join(matchedValues, ", ")))
		case hits == 1:
			score++
			reasons = append(reasons, fmt.Sprintf("Mission mentions one of your values (%s)", matchedValues[0]))
		}
	}

	if score > MaxCompanyScore {
		score = MaxCompanyScore
	}
	return types.FactorResult{Score: score, MaxScore: MaxCompanyScore, Reasons: reasons}
}

package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// MaxLocationScore is the ceiling for the location factor.
const MaxLocationScore = 5

// ScoreLocation rates location fit by crossing the candidate's normalized
// remote preference (remote/hybrid/onsite/any) with the job's remote type.
// An onsite preference additionally checks the job's location string against
// the candidate's preferred locations.
func ScoreLocation(remotePreference string, preferredLocations []string, jobRemoteType, jobLocation string) types.FactorResult {
	pref := normalizeRemote(remotePreference)
	jobType := normalizeRemote(jobRemoteType)

	// A job with no stated remote type but "remote" in its location string
	// is treated as remote.
	if jobType == "" && strings.Contains(strings.ToLower(jobLocation), "remote") {
		jobType = "remote"
	}

	switch pref {
	case "remote":
		switch jobType {
		case "remote":
			return locationResult(5, "Fully remote, matching your preference")
		case "hybrid":
			return locationResult(3, "Hybrid role; you prefer fully remote")
		case "onsite":
			return locationResult(1, "Warning: onsite role; you prefer fully remote")
		default:
			return locationResult(3, "Work arrangement not specified")
		}

	case "hybrid":
		switch jobType {
		case "hybrid":
			return locationResult(5, "Hybrid role, matching your preference")
		case "remote":
			return locationResult(4, "Fully remote; compatible with your hybrid preference")
		case "onsite":
			return locationResult(3, "Onsite role; you prefer hybrid")
		default:
			return locationResult(3, "Work arrangement not specified")
		}

	case "onsite":
		if jobType == "remote" {
			return locationResult(3, "Fully remote; you prefer working onsite")
		}
		if len(preferredLocations) == 0 {
			return locationResult(3, "No preferred locations set")
		}
		if jobLocation == "" {
			return locationResult(3, "Job location not specified")
		}
		if matched, name := locationMatches(preferredLocations, jobLocation); matched {
			return locationResult(5, fmt.Sprintf("Located in a preferred area (%s)", name))
		}
		return locationResult(2, fmt.Sprintf("Warning: location (%s) is outside your preferred areas", jobLocation))

	default:
		// "any" or unset: every arrangement is acceptable.
		return locationResult(4, "Open to any work arrangement")
	}
}

func locationResult(score int, reason string) types.FactorResult {
	return types.FactorResult{Score: score, MaxScore: MaxLocationScore, Reasons: []string{reason}}
}

// normalizeRemote maps free-form remote/work-type strings to one of
// remote, hybrid, onsite, any, or empty for unknown.
func normalizeRemote(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch {
	case lower == "":
		return ""
	case strings.Contains(lower, "remote"):
		return "remote"
	case strings.Contains(lower, "hybrid"):
		return "hybrid"
	case strings.Contains(lower, "onsite"), strings.Contains(lower, "on-site"),
		strings.Contains(lower, "on site"), strings.Contains(lower, "office"), strings.Contains(lower, "in-person"):
		return "onsite"
	case strings.Contains(lower, "any"), strings.Contains(lower, "flexible"):
		return "any"
	default:
		return ""
	}
}

// locationMatches reports whether the job location matches any preferred
// location, by substring in either direction or by token-level match on
// parts longer than 2 characters ("Austin, TX" should match "Austin").
func locationMatches(preferred []string, jobLocation string) (bool, string) {
	jobLower := strings.ToLower(jobLocation)
	jobParts := splitLocation(jobLower)

	for _, loc := range preferred {
		locLower := strings.ToLower(strings.TrimSpace(loc))
		if locLower == "" {
			continue
		}
		if strings.Contains(jobLower, locLower) || strings.Contains(locLower, jobLower) {
			return true, loc
		}
		for _, prefPart := range splitLocation(locLower) {
			for _, jobPart := range jobParts {
				if len(prefPart) > 2 && len(jobPart) > 2 && prefPart == jobPart {
					return true, loc
				}
			}
		}
	}
	return false, ""
}

func splitLocation(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/' || r == ';'
	})
}

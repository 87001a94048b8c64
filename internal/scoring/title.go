package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// MaxTitleScore is the ceiling for the title relevance factor.
const MaxTitleScore = 15

// titleStopwords are excluded from title tokenization.
var titleStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "of": true,
	"in": true, "at": true, "for": true, "to": true, "with": true, "on": true,
}

var romanNumeralRe = regexp.MustCompile(`^[ivx]+$`)

// ScoreTitle rates how well the job title lines up with the candidate's
// primary and related title preferences.
func ScoreTitle(primaryTitle string, relatedTitles []string, jobTitle string) types.FactorResult {
	if jobTitle == "" {
		return types.FactorResult{
			Score:    5,
			MaxScore: MaxTitleScore,
			Reasons:  []string{"Job title not specified"},
		}
	}
	if primaryTitle == "" && len(relatedTitles) == 0 {
		return types.FactorResult{
			Score:    5,
			MaxScore: MaxTitleScore,
			Reasons:  []string{"No title preference set"},
		}
	}

	jobLower := strings.ToLower(jobTitle)
	primaryLower := strings.ToLower(strings.TrimSpace(primaryTitle))

	if primaryLower != "" && (strings.Contains(jobLower, primaryLower) || strings.Contains(primaryLower, jobLower)) {
		return types.FactorResult{
			Score:    MaxTitleScore,
			MaxScore: MaxTitleScore,
			Reasons:  []string{fmt.Sprintf("Title matches your target role (%s)", primaryTitle)},
		}
	}

	for _, related := range relatedTitles {
		relatedLower := strings.ToLower(strings.TrimSpace(related))
		if relatedLower == "" {
			continue
		}
		if strings.Contains(jobLower, relatedLower) || strings.Contains(relatedLower, jobLower) {
			return types.FactorResult{
				Score:    13,
				MaxScore: MaxTitleScore,
				Reasons:  []string{fmt.Sprintf("Title matches a related role (%s)", related)},
			}
		}
	}

	jobTokens := titleTokens(jobLower)
	primaryOverlap := tokenOverlapRatio(titleTokens(primaryLower), jobTokens)

	if primaryOverlap >= 0.5 {
		return types.FactorResult{
			Score:    10,
			MaxScore: MaxTitleScore,
			Reasons:  []string{"Title strongly overlaps your target role"},
		}
	}
	if primaryOverlap >= 0.3 {
		return types.FactorResult{
			Score:    8,
			MaxScore: MaxTitleScore,
			Reasons:  []string{"Title partially overlaps your target role"},
		}
	}

	bestRelated := 0.0
	for _, related := range relatedTitles {
		overlap := tokenOverlapRatio(titleTokens(strings.ToLower(related)), jobTokens)
		if overlap > bestRelated {
			bestRelated = overlap
		}
	}
	if bestRelated >= 0.3 {
		return types.FactorResult{
			Score:    8,
			MaxScore: MaxTitleScore,
			Reasons:  []string{"Title overlaps a related role"},
		}
	}

	if primaryOverlap > 0 {
		return types.FactorResult{
			Score:    6,
			MaxScore: MaxTitleScore,
			Reasons:  []string{"Title loosely overlaps your target role"},
		}
	}

	return types.FactorResult{
		Score:    3,
		MaxScore: MaxTitleScore,
		Reasons:  []string{"Title differs from your target roles"},
	}
}

// titleTokens splits a lowercased title into tokens, dropping stopwords and
// roman numerals ("Engineer II" and "Engineer" should tokenize identically).
func titleTokens(title string) []string {
	fields := strings.FieldsFunc(title, func(r rune) bool {
		return r == ' ' || r == ',' || r == '/' || r == '-' || r == '(' || r == ')'
	})
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if field == "" || titleStopwords[field] || romanNumeralRe.MatchString(field) {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// tokenOverlapRatio returns the fraction of reference tokens present in the
// candidate token list.
func tokenOverlapRatio(reference, candidate []string) float64 {
	if len(reference) == 0 {
		return 0
	}
	candidateSet := make(map[string]bool, len(candidate))
	for _, token := range candidate {
		candidateSet[token] = true
	}
	matched := 0
	for _, token := range reference {
		if candidateSet[token] {
			matched++
		}
	}
	return float64(matched) / float64(len(reference))
}

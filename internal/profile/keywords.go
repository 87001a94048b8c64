package profile

import (
	"sort"
	"strings"
)

const (
	// minKeywordLength filters out short filler words.
	minKeywordLength = 3
	// minKeywordFrequency is how often a word must appear to count.
	minKeywordFrequency = 2
	// maxKeywords caps the extracted list.
	maxKeywords = 50
)

// ExtractKeywords runs a frequency-threshold tokenizer over resume text:
// words of at least 3 characters appearing at least twice, top 50 by
// frequency. Ties are broken alphabetically so extraction is deterministic.
func ExtractKeywords(text string) []string {
	if text == "" {
		return []string{}
	}

	frequencies := make(map[string]int)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '#')
	})
	for _, word := range words {
		if len(word) < minKeywordLength {
			continue
		}
		frequencies[word]++
	}

	keywords := make([]string, 0, len(frequencies))
	for word, count := range frequencies {
		if count >= minKeywordFrequency {
			keywords = append(keywords, word)
		}
	}

	sort.Slice(keywords, func(i, j int) bool {
		if frequencies[keywords[i]] != frequencies[keywords[j]] {
			return frequencies[keywords[i]] > frequencies[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

// Package skills provides skill canonicalization and coverage matching
// between a candidate's skill pool and a job's requirements.
package skills

import "strings"

// Matcher resolves skill names through an alias table and answers coverage
// questions. The table is immutable after construction, so a single Matcher
// is safe for concurrent use.
type Matcher struct {
	// canonical name -> aliases, as provided at construction
	aliases map[string][]string
	// lowercased alias or canonical name -> canonical name
	lookup map[string]string
}

// NewMatcher builds a Matcher from an alias table. A nil or empty table is
// valid: canonicalization becomes a lowercase/trim pass-through and text
// matching degrades to literal substring checks.
func NewMatcher(aliases map[string][]string) *Matcher {
	lookup := make(map[string]string, len(aliases)*3)
	for canonical, variants := range aliases {
		key := strings.ToLower(strings.TrimSpace(canonical))
		lookup[key] = key
		for _, alias := range variants {
			lookup[strings.ToLower(strings.TrimSpace(alias))] = key
		}
	}
	return &Matcher{aliases: aliases, lookup: lookup}
}

// NewDefaultMatcher builds a Matcher over the built-in alias table.
func NewDefaultMatcher() *Matcher {
	return NewMatcher(DefaultAliases)
}

// Canonicalize lowercases and trims a skill name, then resolves it through
// the alias table. Unknown skills pass through unchanged (lowercased), which
// makes the operation idempotent.
func (m *Matcher) Canonicalize(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := m.lookup[normalized]; ok {
		return canonical
	}
	return normalized
}

// TextContains reports whether the skill, its canonical form, or any alias
// of that canonical form appears as a substring of the text.
func (m *Matcher) TextContains(skill, text string) bool {
	if skill == "" || text == "" {
		return false
	}
	textLower := strings.ToLower(text)

	normalized := strings.ToLower(strings.TrimSpace(skill))
	if strings.Contains(textLower, normalized) {
		return true
	}

	canonical := m.Canonicalize(skill)
	if canonical != normalized && strings.Contains(textLower, canonical) {
		return true
	}

	for _, alias := range m.aliases[canonical] {
		if strings.Contains(textLower, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

// CoverageCounts summarizes how a candidate's skills cover a job's stated
// requirements and description.
type CoverageCounts struct {
	RequiredMatched  []string
	RequiredMissing  []string
	PreferredMatched []string
	// BonusMatches are user skills found in the description text that were
	// not already credited as required or preferred matches.
	BonusMatches []string
}

// CountMatches computes coverage of the required and preferred skill lists
// by canonical-set membership, plus description-text bonus matches. Missing
// entries keep the job's original spelling so downstream skill-gap output
// stays readable.
func (m *Matcher) CountMatches(userSkills, required, preferred []string, description string) CoverageCounts {
	userSet := make(map[string]bool, len(userSkills))
	for _, skill := range userSkills {
		if canonical := m.Canonicalize(skill); canonical != "" {
			userSet[canonical] = true
		}
	}

	counts := CoverageCounts{
		RequiredMatched:  []string{},
		RequiredMissing:  []string{},
		PreferredMatched: []string{},
		BonusMatches:     []string{},
	}

	credited := make(map[string]bool)
	for _, skill := range required {
		canonical := m.Canonicalize(skill)
		if canonical == "" {
			continue
		}
		if userSet[canonical] {
			counts.RequiredMatched = append(counts.RequiredMatched, canonical)
			credited[canonical] = true
		} else {
			counts.RequiredMissing = append(counts.RequiredMissing, skill)
		}
	}

	for _, skill := range preferred {
		canonical := m.Canonicalize(skill)
		if canonical == "" || credited[canonical] {
			continue
		}
		if userSet[canonical] {
			counts.PreferredMatched = append(counts.PreferredMatched, canonical)
			credited[canonical] = true
		}
	}

	// Bonus matches: user skills present in the description that were not
	// already counted above, so a skill is never credited in two buckets.
	if description != "" {
		seen := make(map[string]bool)
		for _, skill := range userSkills {
			canonical := m.Canonicalize(skill)
			if canonical == "" || credited[canonical] || seen[canonical] {
				continue
			}
			if m.TextContains(skill, description) {
				counts.BonusMatches = append(counts.BonusMatches, canonical)
				seen[canonical] = true
			}
		}
	}

	return counts
}

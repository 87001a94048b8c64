package seniority

import "regexp"

// Level is one tier of the ordered six-tier seniority scale.
type Level string

// Seniority levels, lowest to highest.
const (
	LevelJunior    Level = "junior"
	LevelMid       Level = "mid"
	LevelSenior    Level = "senior"
	LevelLead      Level = "lead"
	LevelDirector  Level = "director"
	LevelExecutive Level = "executive"
)

// levelRank gives the total order used for comparisons.
var levelRank = map[Level]int{
	LevelJunior:    0,
	LevelMid:       1,
	LevelSenior:    2,
	LevelLead:      3,
	LevelDirector:  4,
	LevelExecutive: 5,
}

// levelPattern pairs a level with the keywords that imply it. Patterns are
// evaluated top-down and the first matching level wins, so the more senior
// tiers must come first: "senior director" is a director, not a senior.
type levelPattern struct {
	level    Level
	keywords []string
}

// Keywords are matched on word boundaries, so short acronyms like "cto" or
// "vp" cannot fire inside longer words ("director", "vpn").
var levelPatterns = []levelPattern{
	{LevelExecutive, []string{"chief", "cto", "ceo", "coo", "cfo", "vp", "vice president", "executive", "head of", "president"}},
	{LevelDirector, []string{"director"}},
	{LevelLead, []string{"lead", "principal", "staff"}},
	{LevelSenior, []string{"senior", "sr"}},
	{LevelMid, []string{"mid", "intermediate"}},
	{LevelJunior, []string{"junior", "jr", "entry", "graduate", "intern", "internship", "associate"}},
}

// yearsPattern pairs an extraction regex with the capture group holding the
// relevant year count. Evaluated in priority order, first match wins; later
// patterns are intentionally more permissive fallbacks.
type yearsPattern struct {
	re *regexp.Regexp
	// group is the submatch index whose value is the years figure. For
	// ranges this is the lower bound.
	group int
}

var yearsPatterns = []yearsPattern{
	// "5+ years"
	{regexp.MustCompile(`(\d+)\s*\+\s*(?:years?|yrs?)`), 1},
	// "3-5 years" (range takes the minimum)
	{regexp.MustCompile(`(\d+)\s*(?:-|–|to)\s*(\d+)\s*(?:years?|yrs?)`), 1},
	// "minimum 4 years", "at least 4 years"
	{regexp.MustCompile(`(?:minimum(?:\s+of)?|at least|min\.?)\s*(\d+)\s*(?:years?|yrs?)`), 1},
	// bare "7 years"
	{regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`), 1},
}

// yearBand maps a years-of-experience range to a level.
type yearBand struct {
	minYears int
	level    Level
}

// Bands are checked from the top down; the first band whose floor is met
// wins.
var yearBands = []yearBand{
	{18, LevelExecutive},
	{12, LevelDirector},
	{8, LevelLead},
	{5, LevelSenior},
	{2, LevelMid},
	{0, LevelJunior},
}

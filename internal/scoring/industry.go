package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// MaxIndustryScore is the ceiling for the industry factor.
const MaxIndustryScore = 5

// industryAliases maps a preference term to variants that imply the same
// industry in job text.
var industryAliases = map[string][]string{
	"fintech":    {"financial technology", "finance", "banking", "payments"},
	"healthcare": {"health", "medical", "biotech", "pharma", "life sciences"},
	"technology": {"tech", "software", "saas", "information technology"},
	"e-commerce": {"ecommerce", "retail", "marketplace"},
	"education":  {"edtech", "learning", "academic"},
	"gaming":     {"games", "game development", "entertainment"},
	"energy":     {"renewables", "clean energy", "utilities"},
	"government": {"public sector", "civic", "defense"},
	"media":      {"publishing", "advertising", "streaming"},
	"logistics":  {"supply chain", "transportation", "shipping"},
}

// ScoreIndustry rates industry alignment. Each preferred industry is
// matched, alias-aware, against the job's industry, company name, and
// description; the first match wins at full score.
func ScoreIndustry(preferredIndustries []string, jobIndustry, jobCompany, jobDescription string) types.FactorResult {
	if len(preferredIndustries) == 0 {
		return types.FactorResult{
			Score:    3,
			MaxScore: MaxIndustryScore,
			Reasons:  []string{"No industry preference set"},
		}
	}

	haystack := strings.ToLower(jobIndustry + " " + jobCompany + " " + jobDescription)
	for _, industry := range preferredIndustries {
		indLower := strings.ToLower(strings.TrimSpace(industry))
		if indLower == "" {
			continue
		}
		if strings.Contains(haystack, indLower) {
			return types.FactorResult{
				Score:    MaxIndustryScore,
				MaxScore: MaxIndustryScore,
				Reasons:  []string{fmt.Sprintf("Matches your preferred industry (%s)", industry)},
			}
		}
		for _, alias := range industryAliases[indLower] {
			if strings.Contains(haystack, alias) {
				return types.FactorResult{
					Score:    MaxIndustryScore,
					MaxScore: MaxIndustryScore,
					Reasons:  []string{fmt.Sprintf("Matches your preferred industry (%s)", industry)},
				}
			}
		}
	}

	if jobIndustry != "" {
		return types.FactorResult{
			Score:    2,
			MaxScore: MaxIndustryScore,
			Reasons:  []string{fmt.Sprintf("Industry (%s) is not among your preferences", jobIndustry)},
		}
	}
	return types.FactorResult{
		Score:    3,
		MaxScore: MaxIndustryScore,
		Reasons:  []string{"Industry not specified"},
	}
}

package scoring

import (
	"fmt"

	"github.com/jonathan/job-matcher/internal/types"
)

// MaxSalaryScore is the ceiling for the salary fit factor.
const MaxSalaryScore = 10

// ScoreSalary rates the job's stated salary against the candidate's minimum.
// The effective job salary is the maximum when present, otherwise the
// minimum. Missing data on either side is neutral. A salary above the
// candidate's own maximum still caps at full score; "exceeds" is not boosted
// beyond "perfect fit".
func ScoreSalary(userMin, userMax int, jobMin, jobMax *int) types.FactorResult {
	effective := 0
	switch {
	case jobMax != nil:
		effective = *jobMax
	case jobMin != nil:
		effective = *jobMin
	}

	if effective <= 0 || userMin <= 0 {
		return types.FactorResult{
			Score:    5,
			MaxScore: MaxSalaryScore,
			Reasons:  []string{"Salary information unavailable"},
		}
	}

	if effective >= userMin {
		reason := fmt.Sprintf("Salary meets your minimum ($%d vs $%d)", effective, userMin)
		if userMax > 0 && effective > userMax {
			reason = fmt.Sprintf("Salary exceeds your target range ($%d)", effective)
		}
		return types.FactorResult{
			Score:    MaxSalaryScore,
			MaxScore: MaxSalaryScore,
			Reasons:  []string{reason},
		}
	}

	// Tiered penalty by how far below the candidate's minimum the offer
	// sits, measured relative to the offer itself.
	pctBelow := float64(userMin-effective) / float64(effective)
	var score int
	switch {
	case pctBelow <= 0.10:
		score = 7
	case pctBelow <= 0.20:
		score = 5
	case pctBelow <= 0.30:
		score = 3
	default:
		score = 1
	}
	return types.FactorResult{
		Score:    score,
		MaxScore: MaxSalaryScore,
		Reasons:  []string{fmt.Sprintf("Warning: salary ($%d) is below your minimum ($%d)", effective, userMin)},
	}
}

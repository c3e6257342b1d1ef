package engine

import (
	"strings"

	"github.com/sells-group/advisor-cli/internal/model"
)

// baseScores seeds the risk score from the self-described appetite. Unknown
// labels fall back to the moderate seed.
var baseScores = map[model.RiskAppetite]int{
	model.AppetiteConservative: 2,
	model.AppetiteModerate:     5,
	model.AppetiteAggressive:   8,
}

// scoreRisk computes the 1-10 risk tolerance score from the profile. The
// score starts from the stated appetite and is nudged by age, income
// headroom, and savings buffer, then clamped to the scale.
func scoreRisk(p model.Profile) model.RiskScoreResult {
	appetite := model.RiskAppetite(strings.ToLower(strings.TrimSpace(p.RiskAppetite)))
	if appetite == "" {
		appetite = model.AppetiteModerate
	}

	score, ok := baseScores[appetite]
	if !ok {
		score = baseScores[model.AppetiteModerate]
	}

	ageFactor := ageFactor(p.Age)
	incomeFactor := incomeFactor(p.MonthlyIncome(), p.MonthlyExpenses)
	savingsFactor := savingsFactor(p.TotalSavings, p.MonthlyExpenses)

	score += ageFactor + incomeFactor + savingsFactor
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}

	return model.RiskScoreResult{
		Score:    score,
		Category: bandFor(score),
		Factors: model.ScoreFactors{
			SelfDescribedRisk: string(appetite),
			AgeFactor:         ageFactor,
			IncomeFactor:      incomeFactor,
			SavingsFactor:     savingsFactor,
		},
	}
}

// bandFor maps a 1-10 score onto the three risk bands.
func bandFor(score int) model.Category {
	switch {
	case score <= 3:
		return model.Conservative
	case score <= 6:
		return model.Moderate
	default:
		return model.Aggressive
	}
}

// ageFactor: younger investors can absorb more risk.
func ageFactor(age int) int {
	switch {
	case age < 30:
		return 2
	case age < 40:
		return 1
	case age < 50:
		return 0
	default:
		return -1
	}
}

// incomeFactor rewards income headroom above twice the monthly expenses,
// capped at 2. Zero expenses count as a neutral ratio of 1.
func incomeFactor(monthlyIncome, expenses float64) int {
	ratio := 1.0
	if expenses > 0 {
		ratio = monthlyIncome / expenses
	}
	f := int(ratio - 2)
	if f < 0 {
		f = 0
	}
	if f > 2 {
		f = 2
	}
	return f
}

// savingsFactor rewards a savings buffer measured in months of expenses.
func savingsFactor(savings, expenses float64) int {
	months := 0.0
	if expenses > 0 {
		months = savings / expenses
	}
	switch {
	case months > 12:
		return 2
	case months > 6:
		return 1
	default:
		return 0
	}
}

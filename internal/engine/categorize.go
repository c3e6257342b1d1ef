package engine

import (
	"strings"

	"github.com/sells-group/advisor-cli/internal/model"
)

// categorizeRisk assigns the final risk category from the numeric score and
// the portfolio picture. Portfolio red flags only ever pull the category down
// by one step, and never below Moderate: a Moderate base stays Moderate even
// with the flag recorded.
func categorizeRisk(score model.RiskScoreResult, portfolio model.PortfolioAnalysis) model.RiskCategory {
	base := bandFor(score.Score)
	final := base
	var adjustments []string

	if portfolio.DiversityScore < 4 && base != model.Conservative {
		adjustments = append(adjustments, "low portfolio diversity")
		if base == model.Aggressive {
			final = model.Moderate
		}
	}

	if strings.Contains(portfolio.RiskConcentration, "concentrated") && base == model.Aggressive {
		adjustments = append(adjustments, "high concentration risk")
		final = model.Moderate
	}

	return model.RiskCategory{
		Category:          final,
		BaseCategory:      base,
		AdjustmentFactors: adjustments,
	}
}

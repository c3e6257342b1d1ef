package engine

import (
	"strings"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Goal keywords that pin the horizon. Short-term wins over long-term when
// both match (a wedding next year beats a retirement mention).
var (
	shortTermKeywords = []string{"emergency", "travel", "wedding", "car", "1 year", "2 year", "short"}
	longTermKeywords  = []string{"retirement", "child education", "property", "house", "long", "10 year", "15 year"}
)

// classifyHorizon derives the investment time horizon from the stated goals
// and sizes the emergency fund and lumpsum posture. Goals that match neither
// keyword set default to the medium bucket regardless of age.
func classifyHorizon(p model.Profile, emergencyFundMonths float64) model.HorizonClassification {
	horizon := horizonFromGoals(p.FinancialGoals)

	fund := p.MonthlyExpenses * emergencyFundMonths
	return model.HorizonClassification{
		TimeHorizon:         horizon,
		EmergencyFundNeeded: fund,
		LumpsumAvailable:    p.TotalSavings > fund,
	}
}

func horizonFromGoals(goals string) model.Horizon {
	lower := strings.ToLower(goals)
	for _, kw := range shortTermKeywords {
		if strings.Contains(lower, kw) {
			return model.HorizonShort
		}
	}
	for _, kw := range longTermKeywords {
		if strings.Contains(lower, kw) {
			return model.HorizonLong
		}
	}
	return model.HorizonMedium
}

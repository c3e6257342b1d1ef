package engine

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/sells-group/advisor-cli/internal/model"
)

var amounts = message.NewPrinter(language.English)

// moneyUSD renders a dollar amount with grouping and cents, e.g. $1,200,000.00.
func moneyUSD(v float64) string {
	return amounts.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// moneyINR renders a whole rupee amount with western grouping, e.g. ₹105,000.
func moneyINR(v float64) string {
	return amounts.Sprintf("₹%v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// compileReport assembles the final report from every stage's output. It is
// purely presentational: all decisions were made upstream.
func compileReport(
	p model.Profile,
	score model.RiskScoreResult,
	category model.RiskCategory,
	portfolio model.PortfolioAnalysis,
	plan model.AllocationPlan,
	shelf map[string][]model.CatalogProduct,
	rec model.MatrixRecommendation,
) model.Report {
	explanation := fmt.Sprintf(
		"Your risk assessment indicates you are a %s investor. This is based on your risk score of %d/10",
		strings.ToLower(string(category.Category)), score.Score,
	)
	if len(category.AdjustmentFactors) > 0 {
		explanation += " and factors including " + strings.Join(category.AdjustmentFactors, ", ")
	} else {
		explanation += "."
	}

	summary := "Your current portfolio needs diversification"
	if portfolio.Status == model.AnalysisSuccess {
		summary = fmt.Sprintf("Your current portfolio shows %s allocation", portfolio.RiskConcentration)
	}

	report := model.Report{
		ProfileSummary: model.ProfileSummary{
			Age:                p.Age,
			AnnualIncome:       moneyUSD(p.AnnualIncome),
			MonthlyExpenses:    moneyUSD(p.MonthlyExpenses),
			TotalSavings:       moneyUSD(p.TotalSavings),
			StatedRiskAppetite: p.RiskAppetite,
			FinancialGoals:     p.FinancialGoals,
		},
		RiskAssessment: model.RiskAssessmentSection{
			RiskScore:           score.Score,
			RiskCategory:        category.Category,
			ContributingFactors: category.AdjustmentFactors,
			Explanation:         explanation,
		},
		PortfolioAnalysis: model.PortfolioSection{
			DiversityScore:    portfolio.DiversityScore,
			AssetCount:        portfolio.AssetCount,
			AssetAllocation:   portfolio.AssetAllocation,
			RiskConcentration: portfolio.RiskConcentration,
			Summary:           summary,
		},
		ComprehensiveRecommendations: rec,
		Recommendations: model.RecommendationsSection{
			SuggestedAllocation: plan.MainAllocation,
			EquityBreakdown:     plan.EquityBreakdown,
			SuggestedProducts:   shelf,
		},
		AgeSpecificAdvice: ageAdvice(p.Age),
		NextSteps:         nextSteps(rec),
	}

	return report
}

func ageAdvice(age int) string {
	switch {
	case age < 30:
		return "Given your young age, you have a longer time horizon which allows for more risk-taking and recovery from market downturns. Focus on growth."
	case age < 45:
		return "In your prime earning years, maintain a good balance between growth and stability while maximizing retirement contributions."
	case age < 60:
		return "As retirement approaches, gradually shift toward more conservative investments while still maintaining some growth components."
	default:
		return "In retirement or near-retirement phase, focus on capital preservation and income generation, with a smaller allocation to growth assets."
	}
}

// nextSteps builds the action list: five standing items, with personalized
// SIP, lumpsum, and strategy items spliced in at the front at fixed slots.
func nextSteps(rec model.MatrixRecommendation) []string {
	steps := []string{
		"Review your current investment portfolio compared to the suggested allocation",
		"Consider tax implications before making significant changes",
		"Consult with a financial advisor for personalized advice",
		"Set up automatic contributions to maximize long-term growth",
		"Review and adjust your portfolio 1-2 times per year",
	}

	if rec.SuggestedSIPAmount > 0 {
		steps = insertStep(steps, 0, fmt.Sprintf("Start a SIP of %s per month based on your income", moneyINR(rec.SuggestedSIPAmount)))
	}
	if rec.SuggestedLumpsumAmount > 0 {
		steps = insertStep(steps, 1, fmt.Sprintf("Consider investing %s as lumpsum while maintaining emergency fund", moneyINR(rec.SuggestedLumpsumAmount)))
	}
	if rec.PrimaryStrategy != "" {
		steps = insertStep(steps, 2, fmt.Sprintf("Focus on %s as your primary investment strategy", strings.ToLower(rec.PrimaryStrategy)))
	}

	return steps
}

func insertStep(steps []string, at int, step string) []string {
	steps = append(steps, "")
	copy(steps[at+1:], steps[at:])
	steps[at] = step
	return steps
}

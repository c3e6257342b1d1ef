package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/advisor-cli/internal/model"
)

// FormatReport renders the assessment report as human-readable markdown for
// terminal output. The JSON form is the canonical one; this is a view.
func FormatReport(report model.Report, phases []model.PhaseResult) string {
	var b strings.Builder

	b.WriteString("# Risk Assessment Report\n\n")

	// Profile.
	b.WriteString("## Profile\n")
	fmt.Fprintf(&b, "- Age: %d\n", report.ProfileSummary.Age)
	fmt.Fprintf(&b, "- Annual income: %s\n", report.ProfileSummary.AnnualIncome)
	fmt.Fprintf(&b, "- Monthly expenses: %s\n", report.ProfileSummary.MonthlyExpenses)
	fmt.Fprintf(&b, "- Total savings: %s\n", report.ProfileSummary.TotalSavings)
	fmt.Fprintf(&b, "- Stated risk appetite: %s\n", report.ProfileSummary.StatedRiskAppetite)
	fmt.Fprintf(&b, "- Financial goals: %s\n\n", report.ProfileSummary.FinancialGoals)

	// Risk assessment.
	b.WriteString("## Risk Assessment\n")
	fmt.Fprintf(&b, "- Score: %d/10\n", report.RiskAssessment.RiskScore)
	fmt.Fprintf(&b, "- Category: %s\n", report.RiskAssessment.RiskCategory)
	if len(report.RiskAssessment.ContributingFactors) > 0 {
		fmt.Fprintf(&b, "- Adjustments: %s\n", strings.Join(report.RiskAssessment.ContributingFactors, ", "))
	}
	fmt.Fprintf(&b, "\n%s\n\n", report.RiskAssessment.Explanation)

	// Portfolio.
	b.WriteString("## Portfolio\n")
	fmt.Fprintf(&b, "- Diversity score: %d/10\n", report.PortfolioAnalysis.DiversityScore)
	fmt.Fprintf(&b, "- Holdings: %d\n", report.PortfolioAnalysis.AssetCount)
	fmt.Fprintf(&b, "- Concentration: %s\n", report.PortfolioAnalysis.RiskConcentration)
	if len(report.PortfolioAnalysis.AssetAllocation) > 0 {
		b.WriteString("- Allocation:\n")
		for _, class := range sortedKeys(report.PortfolioAnalysis.AssetAllocation) {
			fmt.Fprintf(&b, "  - %s: %.2f%%\n", class, report.PortfolioAnalysis.AssetAllocation[class])
		}
	}
	fmt.Fprintf(&b, "\n%s\n\n", report.PortfolioAnalysis.Summary)

	// Suggested allocation.
	b.WriteString("## Suggested Allocation\n")
	for _, class := range sortedKeys(report.Recommendations.SuggestedAllocation) {
		fmt.Fprintf(&b, "- %s: %.1f%%\n", class, report.Recommendations.SuggestedAllocation[class])
	}
	b.WriteString("\nEquity breakdown:\n")
	for _, style := range sortedKeys(report.Recommendations.EquityBreakdown) {
		fmt.Fprintf(&b, "- %s: %.1f%%\n", style, report.Recommendations.EquityBreakdown[style])
	}
	b.WriteString("\n")

	// Strategy.
	rec := report.ComprehensiveRecommendations
	b.WriteString("## Strategy\n")
	fmt.Fprintf(&b, "- Primary: %s\n", rec.PrimaryStrategy)
	fmt.Fprintf(&b, "- Time horizon: %s\n", rec.TimeHorizon)
	fmt.Fprintf(&b, "- Emergency fund needed: %s\n", moneyINR(rec.EmergencyFundNeeded))
	fmt.Fprintf(&b, "- Suggested SIP: %s/month\n", moneyINR(rec.SuggestedSIPAmount))
	if rec.SuggestedLumpsumAmount > 0 {
		fmt.Fprintf(&b, "- Suggested lumpsum: %s\n", moneyINR(rec.SuggestedLumpsumAmount))
	}
	b.WriteString("\nProducts:\n")
	for _, prod := range rec.RecommendedProducts {
		fmt.Fprintf(&b, "- **%s** (%d%%): %s\n", prod.Name, prod.Allocation, prod.Description)
		for _, fund := range prod.Funds {
			fmt.Fprintf(&b, "  - %s (%s): %s\n", fund.Name, fund.HistoricalReturn, fund.Description)
		}
	}
	fmt.Fprintf(&b, "\n%s\n\n", rec.InvestmentRationale)

	// Advice and actions.
	b.WriteString("## Age-specific Advice\n")
	fmt.Fprintf(&b, "%s\n\n", report.AgeSpecificAdvice)

	b.WriteString("## Next Steps\n")
	for i, step := range report.NextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	if len(phases) > 0 {
		b.WriteString("\n## Phases\n")
		for _, p := range phases {
			fmt.Fprintf(&b, "- %s: %s (%dms)\n", p.Name, p.Status, p.Duration)
			if p.Error != "" {
				fmt.Fprintf(&b, "  Error: %s\n", p.Error)
			}
		}
	}

	return b.String()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := New(testEngineConfig(), nil)
	require.NoError(t, err)
	return eng
}

func TestEngineRun_FullAssessment(t *testing.T) {
	profile := model.Profile{
		Age:             35,
		AnnualIncome:    1200000,
		MonthlyExpenses: 25000,
		TotalSavings:    300000,
		RiskAppetite:    "aggressive",
		FinancialGoals:  "Retirement and wealth building",
	}
	investments := []model.Investment{
		{AssetType: "stocks", Amount: 100000},
		{AssetType: "bonds", Amount: 100000},
		{AssetType: "gold", Amount: 100000},
	}

	st := NewState(profile, investments)
	result, err := newTestEngine(t).Run(context.Background(), st)
	require.NoError(t, err)
	require.NotNil(t, result)

	// base 8, +1 age, +2 income, +1 savings, clamped to 10
	score, ok := st.RiskScore()
	require.True(t, ok)
	assert.Equal(t, 10, score.Score)

	category, ok := st.RiskCategory()
	require.True(t, ok)
	assert.Equal(t, model.Aggressive, category.Category)
	assert.Empty(t, category.AdjustmentFactors)

	horizon, ok := st.Horizon()
	require.True(t, ok)
	assert.Equal(t, model.HorizonLong, horizon.TimeHorizon)
	assert.True(t, horizon.LumpsumAvailable)

	rec, ok := st.Recommendation()
	require.True(t, ok)
	assert.Equal(t, "Equity MF + ELSS (Lumpsum + SIP)", rec.PrimaryStrategy)
	assert.Equal(t, 12500.0, rec.SuggestedSIPAmount)
	assert.Equal(t, 105000.0, rec.SuggestedLumpsumAmount)

	names := make([]string, 0, len(result.Phases))
	for _, phase := range result.Phases {
		assert.Equal(t, model.PhaseStatusComplete, phase.Status, "phase %s", phase.Name)
		names = append(names, phase.Name)
	}
	assert.ElementsMatch(t, []string{
		"1a_score", "1b_portfolio", "2_categorize",
		"3a_allocation", "3b_horizon", "4a_matrix", "4b_products", "5_report",
	}, names)
	assert.Equal(t, result.Report.RiskAssessment.RiskScore, score.Score)
	assert.NotEmpty(t, result.Report.NextSteps)
}

func TestEngineRun_ShortHorizonGoalWinsOverAge(t *testing.T) {
	profile := model.Profile{
		Age:             35,
		AnnualIncome:    900000,
		MonthlyExpenses: 30000,
		TotalSavings:    120000,
		RiskAppetite:    "moderate",
		FinancialGoals:  "Saving for a wedding in 2 years",
	}

	st := NewState(profile, nil)
	_, err := newTestEngine(t).Run(context.Background(), st)
	require.NoError(t, err)

	horizon, ok := st.Horizon()
	require.True(t, ok)
	assert.Equal(t, model.HorizonShort, horizon.TimeHorizon)
	assert.Equal(t, "<3 Years", string(horizon.TimeHorizon))
}

func TestEngineRun_NoInvestments(t *testing.T) {
	profile := model.Profile{
		Age:             50,
		AnnualIncome:    600000,
		MonthlyExpenses: 25000,
		TotalSavings:    100000,
		RiskAppetite:    "conservative",
		FinancialGoals:  "Steady growth",
	}

	st := NewState(profile, nil)
	result, err := newTestEngine(t).Run(context.Background(), st)
	require.NoError(t, err)

	portfolio, ok := st.Portfolio()
	require.True(t, ok)
	assert.Equal(t, model.AnalysisNoData, portfolio.Status)
	assert.Equal(t, 0, portfolio.DiversityScore)
	assert.Equal(t, "Your current portfolio needs diversification", result.Report.PortfolioAnalysis.Summary)
}

func TestEngineRun_SnapshotKeysAfterRun(t *testing.T) {
	profile := model.Profile{
		Age:             40,
		AnnualIncome:    800000,
		MonthlyExpenses: 30000,
		TotalSavings:    150000,
		RiskAppetite:    "moderate",
	}

	st := NewState(profile, []model.Investment{{AssetType: "Mutual Funds", Amount: 50000}})
	_, err := newTestEngine(t).Run(context.Background(), st)
	require.NoError(t, err)

	snap := st.Snapshot()
	for _, key := range []string{
		"user_profile",
		"investments",
		"risk_score",
		"portfolio_analysis",
		"risk_category",
		"suggested_allocation",
		"investment_recommendations",
		"comprehensive_recommendations",
		"risk_report",
	} {
		assert.Contains(t, snap, key)
	}
}

func TestEngineRun_IdempotentAcrossRuns(t *testing.T) {
	profile := model.Profile{
		Age:             28,
		AnnualIncome:    700000,
		MonthlyExpenses: 20000,
		TotalSavings:    250000,
		RiskAppetite:    "moderate",
		FinancialGoals:  "Buying property in 15 years",
	}
	investments := []model.Investment{{AssetType: "ETFs", Amount: 80000}}

	eng := newTestEngine(t)
	first, err := eng.Run(context.Background(), NewState(profile, investments))
	require.NoError(t, err)
	second, err := eng.Run(context.Background(), NewState(profile, investments))
	require.NoError(t, err)

	assert.Equal(t, first.Report, second.Report)
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		SIPRate:             0.125,
		SIPFloor:            5000,
		EmergencyFundMonths: 6,
		LumpsumDeployRatio:  0.7,
	}
}

func TestDecisionMatrix_CoversAllCells(t *testing.T) {
	categories := []model.Category{model.Conservative, model.Moderate, model.Aggressive}
	horizons := []model.Horizon{model.HorizonShort, model.HorizonMedium, model.HorizonLong}

	for _, cat := range categories {
		for _, hz := range horizons {
			for _, lumpsum := range []bool{true, false} {
				cell, ok := decisionMatrix[matrixKey{cat, hz, lumpsum}]
				require.True(t, ok, "missing cell %s / %s / lumpsum=%t", cat, hz, lumpsum)
				assert.NotEmpty(t, cell.primary)

				total := 0
				for _, p := range cell.products {
					total += p.allocation
				}
				assert.Equal(t, 100, total, "cell %s / %s / lumpsum=%t", cat, hz, lumpsum)
			}
		}
	}
}

func TestBuildRecommendation_AttachesFunds(t *testing.T) {
	profile := model.Profile{AnnualIncome: 1200000, MonthlyExpenses: 30000, TotalSavings: 500000}
	horizon := model.HorizonClassification{
		TimeHorizon:         model.HorizonShort,
		EmergencyFundNeeded: 180000,
		LumpsumAvailable:    true,
	}

	rec, err := buildRecommendation(profile, model.Conservative, horizon, defaultFundCatalog, testEngineConfig())
	require.NoError(t, err)

	assert.Equal(t, "FD (Lumpsum)", rec.PrimaryStrategy)
	require.NotEmpty(t, rec.RecommendedProducts)
	fd := rec.RecommendedProducts[0]
	assert.Equal(t, "Fixed Deposits", fd.Name)
	require.Len(t, fd.Funds, 3)
	assert.Equal(t, "HDFC Fixed Deposit", fd.Funds[0].Name)
	assert.Equal(t, "7.00%", fd.Funds[0].HistoricalReturn)
}

func TestBuildRecommendation_SIPFromIncome(t *testing.T) {
	profile := model.Profile{AnnualIncome: 960000, MonthlyExpenses: 30000, TotalSavings: 100000}
	horizon := model.HorizonClassification{TimeHorizon: model.HorizonMedium, EmergencyFundNeeded: 180000}

	rec, err := buildRecommendation(profile, model.Moderate, horizon, defaultFundCatalog, testEngineConfig())
	require.NoError(t, err)
	// 80,000/month * 0.125
	assert.Equal(t, 10000.0, rec.SuggestedSIPAmount)
	assert.Equal(t, 0.0, rec.SuggestedLumpsumAmount)
}

func TestBuildRecommendation_SIPFloorWithoutIncome(t *testing.T) {
	horizon := model.HorizonClassification{TimeHorizon: model.HorizonMedium}
	rec, err := buildRecommendation(model.Profile{}, model.Moderate, horizon, defaultFundCatalog, testEngineConfig())
	require.NoError(t, err)
	assert.Equal(t, 5000.0, rec.SuggestedSIPAmount)
}

func TestBuildRecommendation_LumpsumDeploysSurplus(t *testing.T) {
	// savings 300k, fund 150k: (300k-150k) * 0.7 = 105k
	profile := model.Profile{AnnualIncome: 1200000, MonthlyExpenses: 25000, TotalSavings: 300000}
	horizon := model.HorizonClassification{
		TimeHorizon:         model.HorizonLong,
		EmergencyFundNeeded: 150000,
		LumpsumAvailable:    true,
	}

	rec, err := buildRecommendation(profile, model.Aggressive, horizon, defaultFundCatalog, testEngineConfig())
	require.NoError(t, err)
	assert.Equal(t, 105000.0, rec.SuggestedLumpsumAmount)
	assert.Equal(t, "Equity MF + ELSS (Lumpsum + SIP)", rec.PrimaryStrategy)
}

func TestBuildRecommendation_MissingCellFails(t *testing.T) {
	horizon := model.HorizonClassification{TimeHorizon: model.Horizon("someday")}
	_, err := buildRecommendation(model.Profile{}, model.Moderate, horizon, defaultFundCatalog, testEngineConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no decision matrix cell")
}

func TestInvestmentRationale_Template(t *testing.T) {
	got := investmentRationale(model.Moderate, model.HorizonMedium, false)
	assert.Equal(t,
		"This moderate strategy balances growth potential with reasonable safety while your "+
			"medium time horizon allows for balanced growth with some stability. The "+
			"systematic investment through SIPs provides disciplined wealth creation and rupee cost averaging.",
		got)
}

func TestFundCatalog_LookupUnknownType(t *testing.T) {
	assert.Nil(t, defaultFundCatalog.Lookup(model.Conservative, "ELSS"))
	assert.Nil(t, defaultFundCatalog.Lookup(model.Category("Other"), fundFD))
}

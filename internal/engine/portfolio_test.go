package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/advisor-cli/internal/model"
)

func TestAnalyzePortfolio_NoData(t *testing.T) {
	res := analyzePortfolio(nil)
	assert.Equal(t, model.AnalysisNoData, res.Status)
	assert.Equal(t, 0, res.DiversityScore)
	assert.Equal(t, "unknown", res.RiskConcentration)
	assert.Empty(t, res.AssetAllocation)
}

func TestAnalyzePortfolio_SingleHoldingConcentrated(t *testing.T) {
	res := analyzePortfolio([]model.Investment{
		{AssetType: "Mutual Funds", Amount: 100000},
	})
	assert.Equal(t, model.AnalysisSuccess, res.Status)
	assert.Equal(t, 2, res.DiversityScore)
	assert.Equal(t, 1, res.AssetCount)
	assert.Equal(t, 1, res.UniqueAssetTypes)
	assert.Equal(t, "concentrated in Mutual Funds", res.RiskConcentration)
	assert.Equal(t, 100.0, res.AssetAllocation["Mutual Funds"])
}

func TestAnalyzePortfolio_Balanced(t *testing.T) {
	res := analyzePortfolio([]model.Investment{
		{AssetType: "Equities (Stocks)", Amount: 50000},
		{AssetType: "Fixed Income (Bonds)", Amount: 50000},
		{AssetType: "Gold & Precious Metals", Amount: 50000},
	})
	assert.Equal(t, "balanced", res.RiskConcentration)
	assert.Equal(t, 6, res.DiversityScore)
	assert.InDelta(t, 33.33, res.AssetAllocation["Equities (Stocks)"], 0.01)
}

func TestAnalyzePortfolio_DiversityCapsAtTen(t *testing.T) {
	res := analyzePortfolio([]model.Investment{
		{AssetType: "Equities (Stocks)", Amount: 1},
		{AssetType: "Fixed Income (Bonds)", Amount: 1},
		{AssetType: "Real Estate", Amount: 1},
		{AssetType: "Gold & Precious Metals", Amount: 1},
		{AssetType: "Cryptocurrencies", Amount: 1},
		{AssetType: "ETFs", Amount: 1},
	})
	assert.Equal(t, 10, res.DiversityScore)
}

func TestAnalyzePortfolio_SameTypeAggregated(t *testing.T) {
	res := analyzePortfolio([]model.Investment{
		{AssetType: "Equities (Stocks)", Amount: 30000},
		{AssetType: "stocks", Amount: 30000},
		{AssetType: "Fixed Income (Bonds)", Amount: 40000},
	})
	assert.Equal(t, 2, res.UniqueAssetTypes)
	assert.Equal(t, 3, res.AssetCount)
	assert.Equal(t, 60.0, res.AssetAllocation["Equities (Stocks)"])
	assert.Equal(t, "concentrated in Equities (Stocks)", res.RiskConcentration)
}

func TestAnalyzePortfolio_MalformedHoldingTolerated(t *testing.T) {
	// missing type and amount counts as one Unknown holding, zero value
	res := analyzePortfolio([]model.Investment{
		{},
		{AssetType: "ETFs", Amount: 80000},
	})
	assert.Equal(t, model.AnalysisSuccess, res.Status)
	assert.Equal(t, 2, res.AssetCount)
	assert.Equal(t, 2, res.UniqueAssetTypes)
	assert.Equal(t, 100.0, res.AssetAllocation["ETFs"])
	assert.Equal(t, 0.0, res.AssetAllocation["Unknown"])
}

func TestAnalyzePortfolio_ZeroTotalValue(t *testing.T) {
	res := analyzePortfolio([]model.Investment{
		{AssetType: "ETFs"},
		{AssetType: "Real Estate"},
	})
	assert.Equal(t, model.AnalysisSuccess, res.Status)
	assert.Empty(t, res.AssetAllocation)
	assert.Equal(t, "balanced", res.RiskConcentration)
}

func TestAnalyzePortfolio_WeightsByCurrentValue(t *testing.T) {
	mark := 150000.0
	res := analyzePortfolio([]model.Investment{
		{AssetType: "Equities (Stocks)", Amount: 50000, CurrentValue: &mark},
		{AssetType: "Fixed Income (Bonds)", Amount: 50000},
	})
	assert.Equal(t, 75.0, res.AssetAllocation["Equities (Stocks)"])
	assert.Equal(t, 25.0, res.AssetAllocation["Fixed Income (Bonds)"])
	assert.Equal(t, "concentrated in Equities (Stocks)", res.RiskConcentration)
}

func TestAnalyzePortfolio_NestedDetails(t *testing.T) {
	res := analyzePortfolio([]model.Investment{
		{Details: &model.AssetDetails{Name: "HDFC fixed deposit", Amount: 200000}},
		{AssetType: "Equities (Stocks)", Amount: 50000},
	})
	assert.Equal(t, 80.0, res.AssetAllocation["Fixed Income (Bonds)"])
	assert.Equal(t, "concentrated in Fixed Income (Bonds)", res.RiskConcentration)
}

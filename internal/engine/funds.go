package engine

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/advisor-cli/internal/model"
)

// FundCatalog maps risk category and fund type to concrete fund picks with
// historical returns. The built-in catalog ships with the binary; operators
// can swap it for a maintained one via engine.fund_catalog_path.
type FundCatalog map[model.Category]map[string][]model.Fund

// Fund type keys used by the decision matrix.
const (
	fundFD                 = "FD"
	fundShortTermDebt      = "Short-term Debt MF"
	fundConservativeHybrid = "Conservative Hybrid MF"
	fundArbitrage          = "Arbitrage / Low Duration Debt MF"
	fundBalancedAdvantage  = "Balanced Advantage MF"
	fundELSS               = "ELSS"
	fundIndexLargeCap      = "Index / Large Cap MF"
	fundFlexiCap           = "Multi-cap / Flexi-cap MF"
	fundEquity             = "Equity MF"
)

// Lookup returns the fund picks for a category and fund type, or nil when
// the catalog has no entry for the pair.
func (c FundCatalog) Lookup(category model.Category, fundType string) []model.Fund {
	byType, ok := c[category]
	if !ok {
		return nil
	}
	return byType[fundType]
}

// LoadFundCatalog reads a catalog override from a YAML file.
func LoadFundCatalog(path string) (FundCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "engine: read fund catalog")
	}

	var catalog FundCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, eris.Wrap(err, "engine: parse fund catalog")
	}
	return catalog, nil
}

// defaultFundCatalog holds the built-in picks with historical returns from
// market data.
var defaultFundCatalog = FundCatalog{
	model.Conservative: {
		fundFD: {
			{Name: "HDFC Fixed Deposit", HistoricalReturn: "7.00%", Description: "Secure fixed returns"},
			{Name: "SBI Fixed Deposit", HistoricalReturn: "7.00%", Description: "Government bank safety"},
			{Name: "ICICI Fixed Deposit", HistoricalReturn: "7.00%", Description: "Private bank reliability"},
		},
		fundShortTermDebt: {
			{Name: "HDFC Short Term Debt Fund", HistoricalReturn: "7.50%", Description: "Low duration risk, stable returns"},
			{Name: "ICICI Prudential Short Term Fund", HistoricalReturn: "8.23%", Description: "Better returns than FDs with moderate risk"},
		},
		fundConservativeHybrid: {
			{Name: "HDFC Hybrid Debt Fund", HistoricalReturn: "7.00%", Description: "Debt-heavy hybrid for safety"},
			{Name: "Aditya Birla Balanced Advantage Fund", HistoricalReturn: "8.00%", Description: "Dynamic allocation with conservative bias"},
		},
	},
	model.Moderate: {
		fundFD: {
			{Name: "HDFC Fixed Deposit", HistoricalReturn: "7.00%", Description: "Stable base component"},
			{Name: "SBI Fixed Deposit", HistoricalReturn: "7.00%", Description: "Government backing"},
			{Name: "ICICI Fixed Deposit", HistoricalReturn: "7.00%", Description: "Consistent performer"},
		},
		fundArbitrage: {
			{Name: "Nippon India Arbitrage Fund", HistoricalReturn: "6.50%", Description: "Equity taxation with debt-like risk"},
			{Name: "ICICI Prudential Arbitrage Fund", HistoricalReturn: "7.50%", Description: "Market neutral strategy"},
			{Name: "HDFC Low Duration Fund", HistoricalReturn: "7.00%", Description: "Minimal interest rate risk"},
		},
		fundBalancedAdvantage: {
			{Name: "HDFC Balanced Advantage Fund", HistoricalReturn: "8.50%", Description: "Dynamic asset allocation leader"},
			{Name: "ICICI Prudential Balanced Advantage Fund", HistoricalReturn: "9.00%", Description: "Tactical allocation expertise"},
		},
		fundELSS: {
			{Name: "Mirae Asset Tax Saver Fund", HistoricalReturn: "12.50%", Description: "Tax-saving equity with growth focus"},
			{Name: "Axis Long Term Equity Fund", HistoricalReturn: "13.00%", Description: "Consistent tax-saving performer"},
			{Name: "Aditya Birla Sun Life Tax Relief 96", HistoricalReturn: "13.50%", Description: "Long-term wealth creation with tax benefits"},
		},
		fundIndexLargeCap: {
			{Name: "Nippon India Large Cap Fund", HistoricalReturn: "10.00%", Description: "Large cap focused growth"},
			{Name: "HDFC Index Fund – Nifty 50 Plan", HistoricalReturn: "11.00%", Description: "Low-cost index tracking"},
			{Name: "SBI Bluechip Fund", HistoricalReturn: "12.00%", Description: "Quality large cap selection"},
		},
	},
	model.Aggressive: {
		fundFD: {
			{Name: "HDFC Fixed Deposit", HistoricalReturn: "7.00%", Description: "Emergency funds only"},
			{Name: "SBI Fixed Deposit", HistoricalReturn: "7.00%", Description: "Liquidity component"},
			{Name: "ICICI Fixed Deposit", HistoricalReturn: "7.00%", Description: "Short-term parking"},
		},
		fundFlexiCap: {
			{Name: "Parag Parikh Flexi Cap Fund", HistoricalReturn: "12.50%", Description: "Global exposure with flexi-cap approach"},
			{Name: "Kotak Standard Multicap Fund", HistoricalReturn: "13.67%", Description: "Multi-cap diversification"},
			{Name: "Mirae Asset Emerging Bluechip Fund", HistoricalReturn: "14.23%", Description: "Mid-cap focused growth"},
		},
		fundEquity: {
			{Name: "Mirae Asset Large Cap Fund", HistoricalReturn: "12.25%", Description: "Quality large cap growth"},
			{Name: "Canara Robeco Equity Diversified Fund", HistoricalReturn: "13.50%", Description: "Diversified equity strategy"},
			{Name: "Axis Bluechip Fund", HistoricalReturn: "14.65%", Description: "Premium equity selection"},
		},
		fundELSS: {
			{Name: "Mirae Asset Tax Saver Fund", HistoricalReturn: "12.50%", Description: "Growth-oriented tax saver"},
			{Name: "Axis Long Term Equity Fund", HistoricalReturn: "13.00%", Description: "Aggressive tax-saving approach"},
			{Name: "Aditya Birla Sun Life Tax Relief 96", HistoricalReturn: "13.50%", Description: "High-growth tax benefits"},
		},
	},
}

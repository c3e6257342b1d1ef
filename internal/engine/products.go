package engine

import "github.com/sells-group/advisor-cli/internal/model"

// Per-asset-class product shelf. Equities, fixed income, and alternatives
// vary by risk category; cash and tax-advantaged picks are the same for
// everyone.
var (
	equityShelf = map[model.Category][]model.CatalogProduct{
		model.Conservative: {
			{Name: "Large Cap Index Fund", Description: "Low-cost index fund tracking large established companies"},
			{Name: "Dividend ETFs", Description: "Focused on companies with stable dividend payouts"},
			{Name: "Blue-chip stocks", Description: "Established companies with stable performance"},
		},
		model.Moderate: {
			{Name: "Index Funds (mix of large and mid-cap)", Description: "Balanced exposure to various market segments"},
			{Name: "Growth ETFs", Description: "Focus on companies with above-average growth potential"},
			{Name: "Select International Funds", Description: "Exposure to developed international markets"},
		},
		model.Aggressive: {
			{Name: "Small-cap Growth Funds", Description: "Higher growth potential with higher volatility"},
			{Name: "Sector-specific ETFs", Description: "Targeted exposure to high-growth sectors"},
			{Name: "Emerging Market Funds", Description: "Exposure to developing economies with high growth potential"},
		},
	}

	fixedIncomeShelf = map[model.Category][]model.CatalogProduct{
		model.Conservative: {
			{Name: "Government Bonds", Description: "Highest safety with lower yields"},
			{Name: "AAA Corporate Bonds", Description: "High-quality corporate debt with slightly better yields"},
			{Name: "Short-term Bond Funds", Description: "Lower interest rate risk"},
		},
		model.Moderate: {
			{Name: "Intermediate-term Bond Funds", Description: "Balance of yield and interest rate risk"},
			{Name: "Investment-grade Corporate Bond Funds", Description: "Higher yields with moderate risk"},
			{Name: "Municipal Bond Funds (tax-advantaged)", Description: "Tax benefits for certain investors"},
		},
		model.Aggressive: {
			{Name: "High-yield Corporate Bonds", Description: "Higher yields with higher default risk"},
			{Name: "Emerging Market Bonds", Description: "Higher potential returns with currency and political risk"},
			{Name: "Convertible Bonds", Description: "Potential equity upside with some downside protection"},
		},
	}

	alternativesShelf = map[model.Category][]model.CatalogProduct{
		model.Conservative: {
			{Name: "REITs (Real Estate Investment Trusts)", Description: "Real estate exposure with regular income"},
			{Name: "Preferred Stock ETFs", Description: "Higher dividends than common stock with less price appreciation"},
		},
		model.Moderate: {
			{Name: "Gold ETFs", Description: "Hedge against inflation and market volatility"},
			{Name: "Real Estate Funds", Description: "Broader real estate exposure across property types"},
		},
		model.Aggressive: {
			{Name: "Commodity ETFs", Description: "Exposure to various commodities for inflation protection"},
			{Name: "Private Equity Funds", Description: "Investment in private companies with higher return potential"},
		},
	}

	cashShelf = []model.CatalogProduct{
		{Name: "High-yield Savings Account", Description: "Liquid savings with competitive interest rates"},
		{Name: "Money Market Funds", Description: "Short-term, high-quality investments"},
		{Name: "Short-term CDs", Description: "Fixed income for short time horizons with better rates than savings"},
	}

	taxAdvantagedShelf = []model.CatalogProduct{
		{Name: "401(k)/403(b)", Description: "Employer-sponsored retirement accounts with tax benefits"},
		{Name: "Traditional IRA", Description: "Tax-deferred growth for retirement"},
		{Name: "Roth IRA", Description: "Tax-free growth and withdrawals in retirement"},
	}
)

// recommendProducts builds the product shelf for the asset classes present in
// the allocation plan. Tax-advantaged options are always included.
func recommendProducts(category model.Category, allocation map[string]float64) map[string][]model.CatalogProduct {
	if _, ok := equityShelf[category]; !ok {
		category = model.Moderate
	}

	shelf := map[string][]model.CatalogProduct{}
	for class := range allocation {
		switch class {
		case model.ClassEquities:
			shelf[model.ClassEquities] = equityShelf[category]
		case model.ClassFixedIncome:
			shelf[model.ClassFixedIncome] = fixedIncomeShelf[category]
		case model.ClassAlternatives:
			shelf[model.ClassAlternatives] = alternativesShelf[category]
		case model.ClassCash:
			shelf["Cash & Equivalents"] = cashShelf
		}
	}
	shelf["Tax-advantaged Options"] = taxAdvantagedShelf
	return shelf
}

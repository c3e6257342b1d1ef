package engine

import "github.com/sells-group/advisor-cli/internal/model"

// matrixKey addresses one cell of the decision matrix. All three dimensions
// are closed enums; every combination has exactly one cell.
type matrixKey struct {
	category model.Category
	horizon  model.Horizon
	lumpsum  bool
}

// matrixProduct is one product row of a cell. fundType, when set, names the
// catalog bucket whose fund picks get attached at lookup time.
type matrixProduct struct {
	name        string
	allocation  int
	description string
	fundType    string
}

type matrixCell struct {
	primary  string
	products []matrixProduct
}

// decisionMatrix holds the full strategy table across risk category, time
// horizon, and lumpsum availability. Allocations within a cell sum to 100.
var decisionMatrix = map[matrixKey]matrixCell{
	// Conservative
	{model.Conservative, model.HorizonShort, true}: {
		primary: "FD (Lumpsum)",
		products: []matrixProduct{
			{name: "Fixed Deposits", allocation: 70, description: "Secure fixed returns for short-term goals", fundType: fundFD},
			{name: "Liquid Funds", allocation: 20, description: "Easy access with stable returns"},
			{name: "Ultra Short-term Funds", allocation: 10, description: "Slightly higher returns than savings"},
		},
	},
	{model.Conservative, model.HorizonShort, false}: {
		primary: "FD (SIP if possible)",
		products: []matrixProduct{
			{name: "Monthly FD SIP", allocation: 60, description: "Regular fixed deposit investments", fundType: fundFD},
			{name: "Liquid Fund SIP", allocation: 30, description: "Systematic liquid fund investments"},
			{name: "Savings Account", allocation: 10, description: "Emergency liquidity"},
		},
	},
	{model.Conservative, model.HorizonMedium, true}: {
		primary: "FD + Short-term Debt MF (Lumpsum + SIP)",
		products: []matrixProduct{
			{name: "Fixed Deposits", allocation: 40, description: "Stable foundation for medium-term goals", fundType: fundFD},
			{name: "Short-term Debt Mutual Funds", allocation: 35, description: "Better returns than FDs with moderate risk", fundType: fundShortTermDebt},
			{name: "Conservative Hybrid Funds", allocation: 20, description: "Balanced debt-equity exposure", fundType: fundConservativeHybrid},
			{name: "Liquid Funds", allocation: 5, description: "Emergency liquidity"},
		},
	},
	{model.Conservative, model.HorizonMedium, false}: {
		primary: "SIP in Short-term Debt / Conservative Hybrid MF",
		products: []matrixProduct{
			{name: "Short-term Debt Fund SIP", allocation: 50, description: "Systematic debt fund investments", fundType: fundShortTermDebt},
			{name: "Conservative Hybrid Fund SIP", allocation: 30, description: "Balanced approach with SIP", fundType: fundConservativeHybrid},
			{name: "Monthly FD", allocation: 20, description: "Fixed component for stability", fundType: fundFD},
		},
	},
	{model.Conservative, model.HorizonLong, true}: {
		primary: "FD + Conservative Hybrid MF (Lumpsum + SIP)",
		products: []matrixProduct{
			{name: "Conservative Hybrid Mutual Funds", allocation: 45, description: "Long-term balanced growth with capital protection", fundType: fundConservativeHybrid},
			{name: "ELSS (Tax Saving)", allocation: 25, description: "Tax benefits with equity exposure"},
			{name: "Fixed Deposits", allocation: 20, description: "Stable income component", fundType: fundFD},
			{name: "PPF/EPF", allocation: 10, description: "Long-term tax-free returns"},
		},
	},
	{model.Conservative, model.HorizonLong, false}: {
		primary: "SIP in Debt Hybrid / Conservative Hybrid MF",
		products: []matrixProduct{
			{name: "Conservative Hybrid Fund SIP", allocation: 50, description: "Systematic balanced investments", fundType: fundConservativeHybrid},
			{name: "ELSS SIP", allocation: 30, description: "Tax-saving equity exposure"},
			{name: "PPF", allocation: 20, description: "Long-term guaranteed returns"},
		},
	},

	// Moderate
	{model.Moderate, model.HorizonShort, true}: {
		primary: "FD + Arbitrage / Low Duration Debt MF (Lumpsum)",
		products: []matrixProduct{
			{name: "Fixed Deposits", allocation: 50, description: "Capital protection for short-term needs", fundType: fundFD},
			{name: "Arbitrage Funds", allocation: 30, description: "Equity taxation with debt-like returns", fundType: fundArbitrage},
			{name: "Low Duration Debt Funds", allocation: 15, description: "Enhanced returns with low interest rate risk"},
			{name: "Liquid Funds", allocation: 5, description: "Immediate liquidity"},
		},
	},
	{model.Moderate, model.HorizonShort, false}: {
		primary: "FD only, avoid equity SIP <3yrs",
		products: []matrixProduct{
			{name: "Monthly FD", allocation: 70, description: "Regular fixed deposits for capital safety", fundType: fundFD},
			{name: "Ultra Short-term Fund SIP", allocation: 25, description: "Slightly enhanced returns"},
			{name: "Liquid Fund", allocation: 5, description: "Emergency access"},
		},
	},
	{model.Moderate, model.HorizonMedium, true}: {
		primary: "Balanced Advantage MF + ELSS + FD (Lumpsum + SIP)",
		products: []matrixProduct{
			{name: "Balanced Advantage Funds", allocation: 40, description: "Dynamic asset allocation based on market conditions", fundType: fundBalancedAdvantage},
			{name: "ELSS Mutual Funds", allocation: 25, description: "Tax-saving equity funds for wealth creation", fundType: fundELSS},
			{name: "Fixed Deposits", allocation: 20, description: "Stability anchor", fundType: fundFD},
			{name: "Medium Duration Debt Funds", allocation: 15, description: "Enhanced debt returns"},
		},
	},
	{model.Moderate, model.HorizonMedium, false}: {
		primary: "SIP in Balanced Advantage, Hybrid MF + ELSS",
		products: []matrixProduct{
			{name: "Balanced Advantage Fund SIP", allocation: 45, description: "Systematic dynamic allocation", fundType: fundBalancedAdvantage},
			{name: "ELSS SIP", allocation: 30, description: "Tax-saving systematic investments", fundType: fundELSS},
			{name: "Hybrid Fund SIP", allocation: 25, description: "Balanced debt-equity exposure"},
		},
	},
	{model.Moderate, model.HorizonLong, true}: {
		primary: "Index / Large Cap MF + ELSS (Lumpsum + SIP)",
		products: []matrixProduct{
			{name: "Index Funds", allocation: 35, description: "Low-cost market returns", fundType: fundIndexLargeCap},
			{name: "Large Cap Mutual Funds", allocation: 30, description: "Stable large company exposure"},
			{name: "ELSS", allocation: 20, description: "Tax-saving equity growth", fundType: fundELSS},
			{name: "International Funds", allocation: 10, description: "Global diversification"},
			{name: "PPF/ELSS", allocation: 5, description: "Tax-efficient long-term savings"},
		},
	},
	{model.Moderate, model.HorizonLong, false}: {
		primary: "SIP in Index / Large Cap MF + ELSS",
		products: []matrixProduct{
			{name: "Index Fund SIP", allocation: 40, description: "Systematic market investment", fundType: fundIndexLargeCap},
			{name: "Large Cap Fund SIP", allocation: 30, description: "Disciplined equity accumulation"},
			{name: "ELSS SIP", allocation: 25, description: "Tax-saving systematic plan", fundType: fundELSS},
			{name: "PPF", allocation: 5, description: "Guaranteed long-term component"},
		},
	},

	// Aggressive
	{model.Aggressive, model.HorizonShort, true}: {
		primary: "FD (Emergency Lumpsum)",
		products: []matrixProduct{
			{name: "Fixed Deposits", allocation: 80, description: "Capital preservation for short-term aggressive goals", fundType: fundFD},
			{name: "Liquid Plus Funds", allocation: 15, description: "Enhanced liquidity returns"},
			{name: "Overnight Funds", allocation: 5, description: "Ultra-safe parking"},
		},
	},
	{model.Aggressive, model.HorizonShort, false}: {
		primary: "FD (SIP)",
		products: []matrixProduct{
			{name: "Monthly FD", allocation: 85, description: "Systematic fixed investments", fundType: fundFD},
			{name: "Liquid Fund SIP", allocation: 15, description: "Regular liquid fund accumulation"},
		},
	},
	{model.Aggressive, model.HorizonMedium, true}: {
		primary: "Multi-cap / Flexi-cap MF + ELSS (Lumpsum + SIP)",
		products: []matrixProduct{
			{name: "Flexi-cap Mutual Funds", allocation: 40, description: "Flexible market cap allocation for growth", fundType: fundFlexiCap},
			{name: "Multi-cap Mutual Funds", allocation: 30, description: "Diversified equity exposure"},
			{name: "ELSS", allocation: 20, description: "Tax-saving aggressive growth", fundType: fundELSS},
			{name: "Mid & Small Cap Funds", allocation: 10, description: "Higher growth potential"},
		},
	},
	{model.Aggressive, model.HorizonMedium, false}: {
		primary: "SIP in Flexi-cap / Multi-cap MF + ELSS",
		products: []matrixProduct{
			{name: "Flexi-cap Fund SIP", allocation: 45, description: "Systematic aggressive equity investing", fundType: fundFlexiCap},
			{name: "Multi-cap Fund SIP", allocation: 30, description: "Diversified systematic equity"},
			{name: "ELSS SIP", allocation: 25, description: "Tax-efficient aggressive SIP", fundType: fundELSS},
		},
	},
	{model.Aggressive, model.HorizonLong, true}: {
		primary: "Equity MF + ELSS (Lumpsum + SIP)",
		products: []matrixProduct{
			{name: "Large Cap Equity Funds", allocation: 30, description: "Stable foundation for long-term growth", fundType: fundEquity},
			{name: "Mid Cap Equity Funds", allocation: 25, description: "Higher growth potential"},
			{name: "Small Cap Equity Funds", allocation: 20, description: "Maximum growth exposure"},
			{name: "ELSS", allocation: 15, description: "Tax-saving equity component", fundType: fundELSS},
			{name: "International Equity Funds", allocation: 10, description: "Global growth opportunities"},
		},
	},
	{model.Aggressive, model.HorizonLong, false}: {
		primary: "SIP in Equity MF + ELSS",
		products: []matrixProduct{
			{name: "Large Cap Equity SIP", allocation: 35, description: "Systematic large cap accumulation", fundType: fundEquity},
			{name: "Mid Cap Equity SIP", allocation: 30, description: "Growth-focused systematic investing"},
			{name: "ELSS SIP", allocation: 20, description: "Tax-saving equity SIP", fundType: fundELSS},
			{name: "Small Cap SIP", allocation: 15, description: "High-growth systematic investment"},
		},
	},
}

// Rationale phrase tables, composed into a fixed sentence template.
var (
	categoryRationale = map[model.Category]string{
		model.Conservative: "focuses on capital preservation with minimal risk",
		model.Moderate:     "balances growth potential with reasonable safety",
		model.Aggressive:   "prioritizes maximum growth potential with higher risk tolerance",
	}

	horizonRationale = map[model.Horizon]string{
		model.HorizonShort:  "short time horizon requires capital protection and liquidity",
		model.HorizonMedium: "medium time horizon allows for balanced growth with some stability",
		model.HorizonLong:   "long time horizon enables equity-focused wealth creation",
	}

	lumpsumRationale = map[bool]string{
		true:  "lumpsum availability enables immediate market participation and SIP for rupee cost averaging",
		false: "systematic investment through SIPs provides disciplined wealth creation and rupee cost averaging",
	}
)

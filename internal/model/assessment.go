package model

// Category is a risk tolerance category.
type Category string

const (
	Conservative Category = "Conservative"
	Moderate     Category = "Moderate"
	Aggressive   Category = "Aggressive"
)

// Horizon is an investment time-horizon bucket.
type Horizon string

const (
	HorizonShort  Horizon = "<3 Years"
	HorizonMedium Horizon = "3-7 Years"
	HorizonLong   Horizon = "7+ Years"
)

// Asset classes of the main allocation plan.
const (
	ClassEquities     = "Equities"
	ClassFixedIncome  = "Fixed Income"
	ClassCash         = "Cash"
	ClassAlternatives = "Alternative Investments"
)

// Equity style buckets of the equity breakdown.
const (
	StyleLargeCap      = "Large-cap MF Equity"
	StyleMidCap        = "Mid-cap MF Equity"
	StyleSmallCap      = "Small-cap MF Equity"
	StyleInternational = "International MF Equity"
)

// ScoreFactors records what moved the risk score. The self-described
// appetite is reported even when it contradicts the numeric band; the scorer
// deliberately does not reconcile the two.
type ScoreFactors struct {
	SelfDescribedRisk string `json:"self_described_risk"`
	AgeFactor         int    `json:"age_factor"`
	IncomeFactor      int    `json:"income_factor"`
	SavingsFactor     int    `json:"savings_factor"`
}

// RiskScoreResult is the scorer output: a 1-10 score, the band it falls in,
// and the contributing factors.
type RiskScoreResult struct {
	Score    int          `json:"risk_score"`
	Category Category     `json:"risk_category"`
	Factors  ScoreFactors `json:"contributing_factors"`
}

// Portfolio analysis status values.
const (
	AnalysisSuccess = "success"
	AnalysisNoData  = "no_data"
)

// PortfolioAnalysis describes diversification and concentration of the
// recorded holdings.
type PortfolioAnalysis struct {
	Status            string             `json:"status"`
	DiversityScore    int                `json:"diversity_score"`
	AssetCount        int                `json:"asset_count"`
	UniqueAssetTypes  int                `json:"unique_asset_types"`
	AssetAllocation   map[string]float64 `json:"asset_allocation"`
	RiskConcentration string             `json:"risk_concentration"`
}

// RiskCategory is the final category after portfolio-based adjustments.
type RiskCategory struct {
	Category          Category `json:"category"`
	BaseCategory      Category `json:"base_category"`
	AdjustmentFactors []string `json:"adjustment_factors"`
}

// AllocationPlan is the age-adjusted target allocation across the four main
// asset classes, plus the style split of the equity bucket. The equity
// breakdown is rounded per bucket and need not sum exactly to the equity
// percentage.
type AllocationPlan struct {
	MainAllocation  map[string]float64 `json:"main_allocation"`
	EquityBreakdown map[string]float64 `json:"equity_breakdown"`
	AgeAdjusted     bool               `json:"age_adjusted"`
}

// HorizonClassification is the derived time horizon and liquidity posture.
type HorizonClassification struct {
	TimeHorizon         Horizon `json:"time_horizon"`
	EmergencyFundNeeded float64 `json:"emergency_fund_needed"`
	LumpsumAvailable    bool    `json:"lumpsum_available"`
}

// Fund is one named fund pick with its historical return.
type Fund struct {
	Name             string `json:"name" yaml:"name"`
	HistoricalReturn string `json:"return" yaml:"historical_return"`
	Description      string `json:"description" yaml:"description"`
}

// Product is one entry of a decision-matrix cell's product list. Allocation
// percentages across a cell's products sum to 100.
type Product struct {
	Name        string `json:"name"`
	Allocation  int    `json:"allocation"`
	Description string `json:"description"`
	Funds       []Fund `json:"funds,omitempty"`
}

// MatrixRecommendation is the decision-matrix output for one
// (category, horizon, liquidity) cell with computed contribution amounts.
type MatrixRecommendation struct {
	RiskCategory           Category  `json:"risk_category"`
	TimeHorizon            Horizon   `json:"time_horizon"`
	LumpsumAvailable       bool      `json:"lumpsum_available"`
	EmergencyFundNeeded    float64   `json:"emergency_fund_needed"`
	SuggestedSIPAmount     float64   `json:"suggested_sip_amount"`
	SuggestedLumpsumAmount float64   `json:"suggested_lumpsum_amount"`
	PrimaryStrategy        string    `json:"primary_strategy"`
	RecommendedProducts    []Product `json:"recommended_products"`
	InvestmentRationale    string    `json:"investment_rationale"`
}

// CatalogProduct is a generic product suggestion from the per-asset-class
// shelf (no percentage weighting, unlike matrix products).
type CatalogProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProfileSummary restates the profile with presentation-formatted amounts.
type ProfileSummary struct {
	Age                int    `json:"age"`
	AnnualIncome       string `json:"annual_income"`
	MonthlyExpenses    string `json:"monthly_expenses"`
	TotalSavings       string `json:"total_savings"`
	StatedRiskAppetite string `json:"stated_risk_appetite"`
	FinancialGoals     string `json:"financial_goals"`
}

// RiskAssessmentSection summarizes the scoring outcome for the report.
type RiskAssessmentSection struct {
	RiskScore           int      `json:"risk_score"`
	RiskCategory        Category `json:"risk_category"`
	ContributingFactors []string `json:"contributing_factors"`
	Explanation         string   `json:"explanation"`
}

// PortfolioSection summarizes the portfolio analysis for the report.
type PortfolioSection struct {
	DiversityScore    int                `json:"diversity_score"`
	AssetCount        int                `json:"asset_count"`
	AssetAllocation   map[string]float64 `json:"asset_allocation"`
	RiskConcentration string             `json:"risk_concentration"`
	Summary           string             `json:"summary"`
}

// RecommendationsSection groups the allocation plan with the product shelf.
type RecommendationsSection struct {
	SuggestedAllocation map[string]float64          `json:"suggested_allocation"`
	EquityBreakdown     map[string]float64          `json:"equity_breakdown"`
	SuggestedProducts   map[string][]CatalogProduct `json:"suggested_products"`
}

// Report is the final assembled risk report.
type Report struct {
	ProfileSummary               ProfileSummary         `json:"profile_summary"`
	RiskAssessment               RiskAssessmentSection  `json:"risk_assessment"`
	PortfolioAnalysis            PortfolioSection       `json:"portfolio_analysis"`
	ComprehensiveRecommendations MatrixRecommendation   `json:"comprehensive_recommendations"`
	Recommendations              RecommendationsSection `json:"recommendations"`
	AgeSpecificAdvice            string                 `json:"age_specific_advice"`
	NextSteps                    []string               `json:"next_steps"`
}

package model

import "fmt"

// RiskAppetite is the user's self-described risk tolerance.
type RiskAppetite string

const (
	AppetiteConservative RiskAppetite = "conservative"
	AppetiteModerate     RiskAppetite = "moderate"
	AppetiteAggressive   RiskAppetite = "aggressive"
)

// Profile holds the user's demographic and financial background, collected
// once by the dialogue flow and read-only to the engine.
type Profile struct {
	Age             int     `json:"age"`
	AnnualIncome    float64 `json:"annual_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	TotalSavings    float64 `json:"total_savings"`
	FinancialGoals  string  `json:"financial_goals"`
	RiskAppetite    string  `json:"risk_appetite"`
}

// MonthlyIncome derives the monthly income from the annual figure.
func (p Profile) MonthlyIncome() float64 {
	return p.AnnualIncome / 12
}

// ValidationResult reports completeness and sanity issues in a profile.
type ValidationResult struct {
	IsValid       bool     `json:"is_valid"`
	MissingFields []string `json:"missing_fields"`
	Issues        []string `json:"issues"`
}

// Validate checks a profile for completeness and basic sanity. The engine
// itself never rejects input (it defaults instead); callers at the API/CLI
// boundary use this to surface problems before running an assessment.
func (p Profile) Validate() ValidationResult {
	var missing, issues []string

	if p.Age == 0 {
		missing = append(missing, "age")
	}
	if p.AnnualIncome == 0 {
		missing = append(missing, "annual_income")
	}
	if p.MonthlyExpenses == 0 {
		missing = append(missing, "monthly_expenses")
	}
	if p.FinancialGoals == "" {
		missing = append(missing, "financial_goals")
	}
	if p.RiskAppetite == "" {
		missing = append(missing, "risk_appetite")
	}

	if p.Age != 0 && (p.Age < 18 || p.Age > 120) {
		issues = append(issues, "age must be between 18 and 120 years")
	}
	if p.AnnualIncome < 0 {
		issues = append(issues, "annual income cannot be negative")
	}
	if p.MonthlyExpenses < 0 {
		issues = append(issues, "monthly expenses cannot be negative")
	}
	if p.TotalSavings < 0 {
		issues = append(issues, "total savings cannot be negative")
	}
	if p.AnnualIncome > 0 && p.MonthlyExpenses > 0 && p.MonthlyExpenses*12 > p.AnnualIncome*1.5 {
		issues = append(issues, fmt.Sprintf("monthly expenses of %.0f seem unusually high compared to income", p.MonthlyExpenses))
	}

	return ValidationResult{
		IsValid:       len(missing) == 0 && len(issues) == 0,
		MissingFields: missing,
		Issues:        issues,
	}
}

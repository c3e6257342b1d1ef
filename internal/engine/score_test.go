package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/advisor-cli/internal/model"
)

func TestScoreRisk_ConservativeBase(t *testing.T) {
	// base 2, age 55 -> -1, no income or savings headroom
	res := scoreRisk(model.Profile{
		Age:             55,
		AnnualIncome:    480000,
		MonthlyExpenses: 35000,
		TotalSavings:    100000,
		RiskAppetite:    "conservative",
	})
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, model.Conservative, res.Category)
	assert.Equal(t, -1, res.Factors.AgeFactor)
	assert.Equal(t, 0, res.Factors.IncomeFactor)
	assert.Equal(t, 0, res.Factors.SavingsFactor)
}

func TestScoreRisk_StatedConservativeCanScoreAggressive(t *testing.T) {
	// base 2 + age 2 + income 2 + savings 2 = 8: the numeric band lands on
	// Aggressive while the stated appetite stays on record, unreconciled
	res := scoreRisk(model.Profile{
		Age:             25,
		AnnualIncome:    1200000,
		MonthlyExpenses: 25000,
		TotalSavings:    301000,
		RiskAppetite:    "conservative",
	})
	assert.Equal(t, 8, res.Score)
	assert.Equal(t, model.Aggressive, res.Category)
	assert.Equal(t, "conservative", res.Factors.SelfDescribedRisk)
}

func TestScoreRisk_ClampsAtTen(t *testing.T) {
	// base 8 + age 2 + income 2 + savings 2 = 14, clamped
	res := scoreRisk(model.Profile{
		Age:             25,
		AnnualIncome:    3000000,
		MonthlyExpenses: 40000,
		TotalSavings:    600000,
		RiskAppetite:    "aggressive",
	})
	assert.Equal(t, 10, res.Score)
	assert.Equal(t, model.Aggressive, res.Category)
}

func TestScoreRisk_UnknownAppetiteDefaultsModerate(t *testing.T) {
	res := scoreRisk(model.Profile{
		Age:             45,
		AnnualIncome:    600000,
		MonthlyExpenses: 40000,
		RiskAppetite:    "adventurous",
	})
	assert.Equal(t, 5, res.Score)
	assert.Equal(t, "adventurous", res.Factors.SelfDescribedRisk)
}

func TestScoreRisk_AppetiteCaseInsensitive(t *testing.T) {
	res := scoreRisk(model.Profile{
		Age:             45,
		AnnualIncome:    600000,
		MonthlyExpenses: 40000,
		RiskAppetite:    "  Aggressive ",
	})
	assert.Equal(t, 8, res.Score)
	assert.Equal(t, "aggressive", res.Factors.SelfDescribedRisk)
}

func TestScoreRisk_ZeroExpensesNeutralRatio(t *testing.T) {
	// expenses 0: income ratio counts as 1, savings buffer as 0
	res := scoreRisk(model.Profile{
		Age:          45,
		AnnualIncome: 1200000,
		TotalSavings: 900000,
		RiskAppetite: "moderate",
	})
	assert.Equal(t, 0, res.Factors.IncomeFactor)
	assert.Equal(t, 0, res.Factors.SavingsFactor)
	assert.Equal(t, 5, res.Score)
}

func TestAgeFactor_Bands(t *testing.T) {
	assert.Equal(t, 2, ageFactor(29))
	assert.Equal(t, 1, ageFactor(30))
	assert.Equal(t, 1, ageFactor(39))
	assert.Equal(t, 0, ageFactor(40))
	assert.Equal(t, 0, ageFactor(49))
	assert.Equal(t, -1, ageFactor(50))
}

func TestIncomeFactor_Boundaries(t *testing.T) {
	// ratio 2.5 truncates to 0; 3.2 to 1; 4.0 caps contribution at 2
	assert.Equal(t, 0, incomeFactor(75000, 30000))
	assert.Equal(t, 1, incomeFactor(96000, 30000))
	assert.Equal(t, 2, incomeFactor(120000, 30000))
	assert.Equal(t, 2, incomeFactor(600000, 30000))
}

func TestSavingsFactor_Boundaries(t *testing.T) {
	// exactly 6 and 12 months fall on the low side of their thresholds
	assert.Equal(t, 0, savingsFactor(180000, 30000))
	assert.Equal(t, 1, savingsFactor(180001, 30000))
	assert.Equal(t, 1, savingsFactor(360000, 30000))
	assert.Equal(t, 2, savingsFactor(360001, 30000))
}

func TestBandFor_Boundaries(t *testing.T) {
	assert.Equal(t, model.Conservative, bandFor(3))
	assert.Equal(t, model.Moderate, bandFor(4))
	assert.Equal(t, model.Moderate, bandFor(6))
	assert.Equal(t, model.Aggressive, bandFor(7))
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/advisor-cli/internal/model"
)

func TestRecommendAllocation_ModerateMidlife(t *testing.T) {
	plan := recommendAllocation(model.Moderate, 40)
	assert.Equal(t, 50.0, plan.MainAllocation[model.ClassEquities])
	assert.Equal(t, 35.0, plan.MainAllocation[model.ClassFixedIncome])
	assert.Equal(t, 10.0, plan.MainAllocation[model.ClassCash])
	assert.Equal(t, 5.0, plan.MainAllocation[model.ClassAlternatives])
	assert.False(t, plan.AgeAdjusted)
}

func TestRecommendAllocation_Over60ShiftsOutOfEquities(t *testing.T) {
	// aggressive base 70 equity: shift = min(15, 14) = 14
	plan := recommendAllocation(model.Aggressive, 65)
	assert.InDelta(t, 56.0, plan.MainAllocation[model.ClassEquities], 0.001)
	assert.InDelta(t, 29.8, plan.MainAllocation[model.ClassFixedIncome], 0.001)
	assert.InDelta(t, 9.2, plan.MainAllocation[model.ClassCash], 0.001)
	assert.True(t, plan.AgeAdjusted)
}

func TestRecommendAllocation_Under30ShiftsIntoEquities(t *testing.T) {
	// conservative base: FI 50, shift = min(10, 10) = 10
	plan := recommendAllocation(model.Conservative, 25)
	assert.Equal(t, 40.0, plan.MainAllocation[model.ClassEquities])
	assert.Equal(t, 40.0, plan.MainAllocation[model.ClassFixedIncome])
	assert.True(t, plan.AgeAdjusted)
}

func TestRecommendAllocation_EquityBreakdownRounded(t *testing.T) {
	// moderate age 25: FI shift min(10, 7) = 7, equities 57
	plan := recommendAllocation(model.Moderate, 25)
	assert.Equal(t, 57.0, plan.MainAllocation[model.ClassEquities])
	assert.Equal(t, 28.5, plan.EquityBreakdown[model.StyleLargeCap])
	assert.Equal(t, 14.3, plan.EquityBreakdown[model.StyleMidCap])
	assert.Equal(t, 5.7, plan.EquityBreakdown[model.StyleSmallCap])
	// 57*0.15 sits just below 8.55 in float64, so rounding lands on 8.5
	assert.Equal(t, 8.5, plan.EquityBreakdown[model.StyleInternational])
}

func TestRecommendAllocation_ConservativeNoSmallCap(t *testing.T) {
	plan := recommendAllocation(model.Conservative, 45)
	assert.Equal(t, 0.0, plan.EquityBreakdown[model.StyleSmallCap])
	assert.Equal(t, 21.0, plan.EquityBreakdown[model.StyleLargeCap])
}

func TestRecommendAllocation_UnknownCategoryFallsBackModerate(t *testing.T) {
	plan := recommendAllocation(model.Category("Daring"), 40)
	assert.Equal(t, 50.0, plan.MainAllocation[model.ClassEquities])
}

func TestRecommendAllocation_MainSumsTo100(t *testing.T) {
	for _, cat := range []model.Category{model.Conservative, model.Moderate, model.Aggressive} {
		for _, age := range []int{22, 45, 70} {
			plan := recommendAllocation(cat, age)
			total := 0.0
			for _, pct := range plan.MainAllocation {
				total += pct
			}
			assert.InDelta(t, 100.0, total, 0.001, "category %s age %d", cat, age)
		}
	}
}

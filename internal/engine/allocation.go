package engine

import (
	"math"

	"github.com/sells-group/advisor-cli/internal/model"
)

// baseAllocations are the target splits per risk category before any age
// adjustment. Values are percentages summing to 100.
var baseAllocations = map[model.Category]map[string]float64{
	model.Conservative: {
		model.ClassEquities:     30,
		model.ClassFixedIncome:  50,
		model.ClassCash:         15,
		model.ClassAlternatives: 5,
	},
	model.Moderate: {
		model.ClassEquities:     50,
		model.ClassFixedIncome:  35,
		model.ClassCash:         10,
		model.ClassAlternatives: 5,
	},
	model.Aggressive: {
		model.ClassEquities:     70,
		model.ClassFixedIncome:  20,
		model.ClassCash:         5,
		model.ClassAlternatives: 5,
	},
}

// equitySplits break the equity bucket into style buckets, as fractions of
// the equity percentage.
var equitySplits = map[model.Category]map[string]float64{
	model.Conservative: {
		model.StyleLargeCap:      0.7,
		model.StyleMidCap:        0.2,
		model.StyleSmallCap:      0.0,
		model.StyleInternational: 0.1,
	},
	model.Moderate: {
		model.StyleLargeCap:      0.5,
		model.StyleMidCap:        0.25,
		model.StyleSmallCap:      0.10,
		model.StyleInternational: 0.15,
	},
	model.Aggressive: {
		model.StyleLargeCap:      0.40,
		model.StyleMidCap:        0.25,
		model.StyleSmallCap:      0.15,
		model.StyleInternational: 0.20,
	},
}

// recommendAllocation produces the age-adjusted allocation plan for the given
// risk category. Past 60 the equity bucket sheds up to 15 points into fixed
// income and cash (70/30 split); under 30 the fixed-income bucket sheds up to
// 10 points into equities.
func recommendAllocation(category model.Category, age int) model.AllocationPlan {
	base, ok := baseAllocations[category]
	if !ok {
		category = model.Moderate
		base = baseAllocations[model.Moderate]
	}

	main := make(map[string]float64, len(base))
	for class, pct := range base {
		main[class] = pct
	}

	switch {
	case age > 60:
		shift := math.Min(15, main[model.ClassEquities]*0.2)
		main[model.ClassEquities] -= shift
		main[model.ClassFixedIncome] += shift * 0.7
		main[model.ClassCash] += shift * 0.3
	case age < 30:
		shift := math.Min(10, main[model.ClassFixedIncome]*0.2)
		main[model.ClassFixedIncome] -= shift
		main[model.ClassEquities] += shift
	}

	equity := main[model.ClassEquities]
	breakdown := make(map[string]float64, 4)
	for style, frac := range equitySplits[category] {
		breakdown[style] = math.Round(equity*frac*10) / 10
	}

	return model.AllocationPlan{
		MainAllocation:  main,
		EquityBreakdown: breakdown,
		AgeAdjusted:     age > 60 || age < 30,
	}
}

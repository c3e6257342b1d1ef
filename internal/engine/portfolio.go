package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sells-group/advisor-cli/internal/model"
)

// analyzePortfolio measures diversification and concentration of the recorded
// holdings. Malformed entries are tolerated: a holding that resolves to no
// type counts as "Unknown" with a zero amount rather than failing the run.
func analyzePortfolio(investments []model.Investment) model.PortfolioAnalysis {
	if len(investments) == 0 {
		return model.PortfolioAnalysis{
			Status:            model.AnalysisNoData,
			DiversityScore:    0,
			AssetAllocation:   map[string]float64{},
			RiskConcentration: "unknown",
		}
	}

	// Weights use the current value of each holding, falling back to the
	// invested amount when no mark is recorded.
	values := map[string]float64{}
	total := 0.0
	for _, inv := range investments {
		t := inv.ResolvedType()
		value := inv.ResolvedValue()
		values[t] += value
		total += value
	}

	allocation := map[string]float64{}
	if total > 0 {
		for t, v := range values {
			allocation[t] = math.Round(v/total*100*100) / 100
		}
	}

	unique := len(values)
	diversity := unique * 2
	if diversity > 10 {
		diversity = 10
	}

	// Over-concentration: more than half the portfolio in one asset type.
	var concentrated []string
	for t, pct := range allocation {
		if pct > 50 {
			concentrated = append(concentrated, t)
		}
	}
	sort.Strings(concentrated)

	concentration := "balanced"
	if len(concentrated) > 0 {
		concentration = fmt.Sprintf("concentrated in %s", strings.Join(concentrated, ", "))
	}

	return model.PortfolioAnalysis{
		Status:            model.AnalysisSuccess,
		DiversityScore:    diversity,
		AssetCount:        len(investments),
		UniqueAssetTypes:  unique,
		AssetAllocation:   allocation,
		RiskConcentration: concentration,
	}
}

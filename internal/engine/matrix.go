package engine

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

// buildRecommendation resolves the decision-matrix cell for the category,
// horizon, and liquidity posture and sizes the SIP and lumpsum amounts. A
// missing cell is a configuration error, not a default: all three dimensions
// are closed enums and the table must cover every combination.
func buildRecommendation(
	p model.Profile,
	category model.Category,
	horizon model.HorizonClassification,
	catalog FundCatalog,
	cfg config.EngineConfig,
) (model.MatrixRecommendation, error) {
	cell, ok := decisionMatrix[matrixKey{category, horizon.TimeHorizon, horizon.LumpsumAvailable}]
	if !ok {
		return model.MatrixRecommendation{}, eris.Errorf(
			"engine: no decision matrix cell for %s / %s / lumpsum=%t",
			category, horizon.TimeHorizon, horizon.LumpsumAvailable,
		)
	}

	products := make([]model.Product, 0, len(cell.products))
	for _, mp := range cell.products {
		prod := model.Product{
			Name:        mp.name,
			Allocation:  mp.allocation,
			Description: mp.description,
		}
		if mp.fundType != "" {
			prod.Funds = catalog.Lookup(category, mp.fundType)
		}
		products = append(products, prod)
	}

	sip := cfg.SIPFloor
	if income := p.MonthlyIncome(); income > 0 {
		sip = income * cfg.SIPRate
	}

	lumpsum := 0.0
	if horizon.LumpsumAvailable {
		deployable := p.TotalSavings - horizon.EmergencyFundNeeded
		if deployable < 0 {
			deployable = 0
		}
		lumpsum = deployable * cfg.LumpsumDeployRatio
	}

	return model.MatrixRecommendation{
		RiskCategory:           category,
		TimeHorizon:            horizon.TimeHorizon,
		LumpsumAvailable:       horizon.LumpsumAvailable,
		EmergencyFundNeeded:    horizon.EmergencyFundNeeded,
		SuggestedSIPAmount:     sip,
		SuggestedLumpsumAmount: lumpsum,
		PrimaryStrategy:        cell.primary,
		RecommendedProducts:    products,
		InvestmentRationale:    investmentRationale(category, horizon.TimeHorizon, horizon.LumpsumAvailable),
	}, nil
}

func investmentRationale(category model.Category, horizon model.Horizon, lumpsum bool) string {
	return fmt.Sprintf("This %s strategy %s while your %s. The %s.",
		strings.ToLower(string(category)),
		categoryRationale[category],
		horizonRationale[horizon],
		lumpsumRationale[lumpsum],
	)
}

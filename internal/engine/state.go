package engine

import (
	"sync"

	"github.com/sells-group/advisor-cli/internal/model"
)

// State is the shared assessment state: a bulletin board each stage reads
// from and writes to. The profile and holdings are set once before the
// engine runs and are read-only afterward; stage results are committed
// under the lock so the barrier in Run is the only ordering stages rely on.
type State struct {
	mu          sync.RWMutex
	profile     model.Profile
	investments []model.Investment

	riskScore      *model.RiskScoreResult
	portfolio      *model.PortfolioAnalysis
	riskCategory   *model.RiskCategory
	allocation     *model.AllocationPlan
	products       map[string][]model.CatalogProduct
	horizon        *model.HorizonClassification
	recommendation *model.MatrixRecommendation
	report         *model.Report
}

// NewState creates shared state seeded with the collected profile and the
// frozen investment list.
func NewState(profile model.Profile, investments []model.Investment) *State {
	return &State{profile: profile, investments: investments}
}

// Profile returns the collected user profile.
func (s *State) Profile() model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Investments returns the frozen holdings list.
func (s *State) Investments() []model.Investment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.investments
}

func (s *State) setRiskScore(r model.RiskScoreResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.riskScore = &r
}

// RiskScore returns the scorer result, or false if it has not run.
func (s *State) RiskScore() (model.RiskScoreResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.riskScore == nil {
		return model.RiskScoreResult{}, false
	}
	return *s.riskScore, true
}

func (s *State) setPortfolio(p model.PortfolioAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolio = &p
}

// Portfolio returns the portfolio analysis, or false if it has not run.
func (s *State) Portfolio() (model.PortfolioAnalysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.portfolio == nil {
		return model.PortfolioAnalysis{}, false
	}
	return *s.portfolio, true
}

func (s *State) setRiskCategory(c model.RiskCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.riskCategory = &c
}

// RiskCategory returns the final risk category, or false if it has not run.
func (s *State) RiskCategory() (model.RiskCategory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.riskCategory == nil {
		return model.RiskCategory{}, false
	}
	return *s.riskCategory, true
}

func (s *State) setAllocation(a model.AllocationPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allocation = &a
}

// Allocation returns the suggested allocation plan, or false if unset.
func (s *State) Allocation() (model.AllocationPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.allocation == nil {
		return model.AllocationPlan{}, false
	}
	return *s.allocation, true
}

func (s *State) setProducts(p map[string][]model.CatalogProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = p
}

// Products returns the per-asset-class product shelf, or nil if unset.
func (s *State) Products() map[string][]model.CatalogProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

func (s *State) setHorizon(h model.HorizonClassification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.horizon = &h
}

// Horizon returns the horizon classification, or false if it has not run.
func (s *State) Horizon() (model.HorizonClassification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.horizon == nil {
		return model.HorizonClassification{}, false
	}
	return *s.horizon, true
}

func (s *State) setRecommendation(r model.MatrixRecommendation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommendation = &r
}

// Recommendation returns the decision-matrix output, or false if unset.
func (s *State) Recommendation() (model.MatrixRecommendation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.recommendation == nil {
		return model.MatrixRecommendation{}, false
	}
	return *s.recommendation, true
}

func (s *State) setReport(r model.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = &r
}

// Report returns the compiled risk report, or false if it has not run.
func (s *State) Report() (model.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.report == nil {
		return model.Report{}, false
	}
	return *s.report, true
}

// Snapshot exposes the state under its fixed keys for external collaborators
// (transport layer, dialogue flow). Unset stages are omitted.
func (s *State) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := map[string]any{
		"user_profile": s.profile,
		"investments":  s.investments,
	}
	if s.riskScore != nil {
		snap["risk_score"] = *s.riskScore
	}
	if s.portfolio != nil {
		snap["portfolio_analysis"] = *s.portfolio
	}
	if s.riskCategory != nil {
		snap["risk_category"] = *s.riskCategory
	}
	if s.allocation != nil {
		snap["suggested_allocation"] = *s.allocation
	}
	if s.products != nil {
		snap["investment_recommendations"] = s.products
	}
	if s.recommendation != nil {
		snap["comprehensive_recommendations"] = *s.recommendation
	}
	if s.report != nil {
		snap["risk_report"] = *s.report
	}
	return snap
}

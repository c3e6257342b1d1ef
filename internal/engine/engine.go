package engine

import (
	"context"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/store"
)

// Engine runs the staged risk assessment: scoring and portfolio analysis in
// parallel, categorization at the barrier, then allocation and horizon,
// then the decision matrix and product shelf, and finally the report.
type Engine struct {
	cfg   config.EngineConfig
	store store.Store
	funds FundCatalog
}

// Result is the outcome of one assessment run.
type Result struct {
	RunID  string
	Report model.Report
	Phases []model.PhaseResult
}

// New creates an Engine. The store may be nil for one-shot runs that keep no
// history. When cfg names a fund catalog file it replaces the built-in one.
func New(cfg config.EngineConfig, st store.Store) (*Engine, error) {
	funds := defaultFundCatalog
	if cfg.FundCatalogPath != "" {
		loaded, err := LoadFundCatalog(cfg.FundCatalogPath)
		if err != nil {
			return nil, eris.Wrap(err, "engine: load fund catalog")
		}
		funds = loaded
	}
	return &Engine{cfg: cfg, store: st, funds: funds}, nil
}

// Run executes the full assessment over the given state.
func (e *Engine) Run(ctx context.Context, st *State) (*Result, error) {
	profile := st.Profile()
	log := zap.L().With(zap.Int("age", profile.Age), zap.String("risk_appetite", profile.RiskAppetite))
	log.Info("engine: starting assessment")

	result := &Result{}

	var runID string
	if e.store != nil {
		run, err := e.store.CreateRun(ctx, model.AssessmentInput{
			Profile:     profile,
			Investments: st.Investments(),
		})
		if err != nil {
			return nil, eris.Wrap(err, "engine: create run")
		}
		runID = run.ID
		result.RunID = run.ID
	}

	setStatus := func(status model.RunStatus) {
		if e.store == nil {
			return
		}
		if statusErr := e.store.UpdateRunStatus(ctx, runID, status); statusErr != nil {
			log.Warn("engine: failed to update status", zap.Error(statusErr))
		}
	}

	// Phase tracking helper with mutex for concurrent access.
	var phasesMu sync.Mutex
	trackPhase := func(name string, fn func() (*model.PhaseResult, error)) *model.PhaseResult {
		var phase *model.RunPhase
		if e.store != nil {
			var phaseErr error
			phase, phaseErr = e.store.CreatePhase(ctx, runID, name)
			if phaseErr != nil {
				log.Warn("engine: failed to create phase", zap.String("phase", name), zap.Error(phaseErr))
			}
		}

		start := time.Now()
		phaseResult, fnErr := fn()
		duration := time.Since(start).Milliseconds()

		if phaseResult == nil {
			phaseResult = &model.PhaseResult{Name: name}
		}
		phaseResult.Name = name
		phaseResult.Duration = duration

		if fnErr != nil {
			phaseResult.Status = model.PhaseStatusFailed
			phaseResult.Error = fnErr.Error()
			log.Error("engine: phase failed",
				zap.String("phase", name),
				zap.Int64("duration_ms", duration),
				zap.Error(fnErr),
			)
		} else {
			phaseResult.Status = model.PhaseStatusComplete
			log.Info("engine: phase complete",
				zap.String("phase", name),
				zap.Int64("duration_ms", duration),
			)
		}

		if phase != nil {
			_ = e.store.CompletePhase(ctx, phase.ID, phaseResult)
		}
		phasesMu.Lock()
		result.Phases = append(result.Phases, *phaseResult)
		phasesMu.Unlock()
		return phaseResult
	}

	// ===== Stage 1: Score + Portfolio (parallel) =====
	setStatus(model.RunStatusScoring)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		trackPhase("1a_score", func() (*model.PhaseResult, error) {
			score := scoreRisk(st.Profile())
			st.setRiskScore(score)
			return &model.PhaseResult{
				Metadata: map[string]any{
					"risk_score":    score.Score,
					"risk_category": string(score.Category),
				},
			}, nil
		})
		return nil
	})

	g.Go(func() error {
		trackPhase("1b_portfolio", func() (*model.PhaseResult, error) {
			analysis := analyzePortfolio(st.Investments())
			st.setPortfolio(analysis)
			return &model.PhaseResult{
				Metadata: map[string]any{
					"status":          analysis.Status,
					"diversity_score": analysis.DiversityScore,
					"asset_count":     analysis.AssetCount,
				},
			}, nil
		})
		return nil
	})

	// Both inputs of the categorizer must be committed before it reads them.
	_ = g.Wait()

	score, _ := st.RiskScore()
	portfolio, _ := st.Portfolio()

	// ===== Stage 2: Categorize =====
	setStatus(model.RunStatusCategorizing)

	var category model.RiskCategory
	trackPhase("2_categorize", func() (*model.PhaseResult, error) {
		category = categorizeRisk(score, portfolio)
		st.setRiskCategory(category)
		return &model.PhaseResult{
			Metadata: map[string]any{
				"category":      string(category.Category),
				"base_category": string(category.BaseCategory),
				"adjustments":   len(category.AdjustmentFactors),
			},
		}, nil
	})

	// ===== Stage 3: Allocation + Horizon (parallel) =====
	setStatus(model.RunStatusRecommending)

	g, _ = errgroup.WithContext(ctx)

	g.Go(func() error {
		trackPhase("3a_allocation", func() (*model.PhaseResult, error) {
			plan := recommendAllocation(category.Category, st.Profile().Age)
			st.setAllocation(plan)
			return &model.PhaseResult{
				Metadata: map[string]any{
					"age_adjusted": plan.AgeAdjusted,
				},
			}, nil
		})
		return nil
	})

	g.Go(func() error {
		trackPhase("3b_horizon", func() (*model.PhaseResult, error) {
			horizon := classifyHorizon(st.Profile(), e.cfg.EmergencyFundMonths)
			st.setHorizon(horizon)
			return &model.PhaseResult{
				Metadata: map[string]any{
					"time_horizon":      string(horizon.TimeHorizon),
					"lumpsum_available": horizon.LumpsumAvailable,
				},
			}, nil
		})
		return nil
	})

	_ = g.Wait()

	plan, _ := st.Allocation()
	horizon, _ := st.Horizon()

	// ===== Stage 4: Decision matrix + Product shelf (parallel) =====
	var matrixErr error

	g, _ = errgroup.WithContext(ctx)

	g.Go(func() error {
		trackPhase("4a_matrix", func() (*model.PhaseResult, error) {
			rec, err := buildRecommendation(st.Profile(), category.Category, horizon, e.funds, e.cfg)
			if err != nil {
				matrixErr = err
				return nil, err
			}
			st.setRecommendation(rec)
			return &model.PhaseResult{
				Metadata: map[string]any{
					"primary_strategy": rec.PrimaryStrategy,
					"products":         len(rec.RecommendedProducts),
				},
			}, nil
		})
		return nil
	})

	g.Go(func() error {
		trackPhase("4b_products", func() (*model.PhaseResult, error) {
			shelf := recommendProducts(category.Category, plan.MainAllocation)
			st.setProducts(shelf)
			return &model.PhaseResult{
				Metadata: map[string]any{
					"asset_classes": len(shelf),
				},
			}, nil
		})
		return nil
	})

	_ = g.Wait()

	// A matrix miss means the strategy table itself is broken. Nothing
	// downstream can substitute for it, so the run fails.
	if matrixErr != nil {
		setStatus(model.RunStatusFailed)
		e.saveResult(ctx, runID, st, result, matrixErr)
		return result, eris.Wrap(matrixErr, "engine: decision matrix")
	}

	rec, _ := st.Recommendation()

	// ===== Stage 5: Report =====
	setStatus(model.RunStatusReporting)

	trackPhase("5_report", func() (*model.PhaseResult, error) {
		report := compileReport(st.Profile(), score, category, portfolio, plan, st.Products(), rec)
		st.setReport(report)
		result.Report = report
		return &model.PhaseResult{}, nil
	})

	setStatus(model.RunStatusComplete)
	e.saveResult(ctx, runID, st, result, nil)

	log.Info("engine: assessment complete",
		zap.String("run_id", result.RunID),
		zap.Int("risk_score", score.Score),
		zap.String("risk_category", string(category.Category)),
		zap.String("time_horizon", string(horizon.TimeHorizon)),
	)

	return result, nil
}

func (e *Engine) saveResult(ctx context.Context, runID string, st *State, result *Result, runErr error) {
	if e.store == nil {
		return
	}

	runResult := &model.RunResult{Phases: result.Phases}
	if score, ok := st.RiskScore(); ok {
		runResult.RiskScore = score.Score
	}
	if category, ok := st.RiskCategory(); ok {
		runResult.RiskCategory = category.Category
	}
	if horizon, ok := st.Horizon(); ok {
		runResult.TimeHorizon = horizon.TimeHorizon
	}
	if report, ok := st.Report(); ok {
		runResult.Report = &report
	}
	if runErr != nil {
		runResult.Error = runErr.Error()
	}

	if saveErr := e.store.UpdateRunResult(ctx, runID, runResult); saveErr != nil {
		zap.L().Warn("engine: failed to save run result", zap.Error(saveErr))
	}
}

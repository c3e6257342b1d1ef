package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/robfig/cron/v3"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/advisor-cli/internal/engine"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/store"
)

var servePort int

// analyzeRequest is the HTTP input shape: a flat profile with inline
// investments.
type analyzeRequest struct {
	Age          int                 `json:"age"`
	Income       float64             `json:"income"`
	Expenses     float64             `json:"expenses"`
	Savings      float64             `json:"savings"`
	Goals        string              `json:"goals"`
	RiskAppetite string              `json:"risk_appetite"`
	Investments  []analyzeInvestment `json:"investments"`
}

type analyzeInvestment struct {
	Type            string   `json:"type"`
	Amount          float64  `json:"amount"`
	Name            string   `json:"name"`
	ExpectedReturns *float64 `json:"expected_returns,omitempty"`
	CurrentValue    *float64 `json:"current_value,omitempty"`
}

// analyzeResponse exposes the report sections the web client renders.
type analyzeResponse struct {
	RunID                        string                       `json:"run_id,omitempty"`
	RiskAssessment               model.RiskAssessmentSection  `json:"risk_assessment"`
	PortfolioAnalysis            model.PortfolioSection       `json:"portfolio_analysis"`
	ComprehensiveRecommendations model.MatrixRecommendation   `json:"comprehensive_recommendations"`
	Recommendations              model.RecommendationsSection `json:"recommendations"`
	NextSteps                    []string                     `json:"next_steps"`
	AgeSpecificAdvice            string                       `json:"age_specific_advice"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for risk assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		eng, err := engine.New(cfg.Engine, st)
		if err != nil {
			return err
		}

		// Scheduled retention purge.
		scheduler := cron.New()
		if cfg.Retention.Days > 0 {
			_, err = scheduler.AddFunc(cfg.Retention.Schedule, func() {
				cutoff := time.Now().AddDate(0, 0, -cfg.Retention.Days)
				n, purgeErr := st.DeleteRunsBefore(ctx, cutoff)
				if purgeErr != nil {
					zap.L().Error("retention purge failed", zap.Error(purgeErr))
					return
				}
				zap.L().Info("retention purge complete", zap.Int("deleted", n))
			})
			if err != nil {
				return eris.Wrap(err, "schedule retention purge")
			}
			scheduler.Start()
			defer scheduler.Stop()
		}

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
		}))
		r.Use(rateLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/analyze", func(w http.ResponseWriter, req *http.Request) {
			var body analyzeRequest
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}

			profile := model.Profile{
				Age:             body.Age,
				AnnualIncome:    body.Income,
				MonthlyExpenses: body.Expenses,
				TotalSavings:    body.Savings,
				FinancialGoals:  body.Goals,
				RiskAppetite:    body.RiskAppetite,
			}

			if v := profile.Validate(); !v.IsValid {
				msg := strings.Join(append(v.MissingFields, v.Issues...), "; ")
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": msg})
				return
			}

			investments := make([]model.Investment, 0, len(body.Investments))
			for _, inv := range body.Investments {
				investments = append(investments, model.Investment{
					AssetType:       inv.Type,
					Amount:          inv.Amount,
					Name:            inv.Name,
					ExpectedReturns: inv.ExpectedReturns,
					CurrentValue:    inv.CurrentValue,
				})
			}

			state := engine.NewState(profile, investments)
			result, runErr := eng.Run(req.Context(), state)
			if runErr != nil {
				zap.L().Error("assessment failed", zap.Error(runErr))
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "assessment failed"})
				return
			}

			report := result.Report
			writeJSON(w, http.StatusOK, analyzeResponse{
				RunID:                        result.RunID,
				RiskAssessment:               report.RiskAssessment,
				PortfolioAnalysis:            report.PortfolioAnalysis,
				ComprehensiveRecommendations: report.ComprehensiveRecommendations,
				Recommendations:              report.Recommendations,
				NextSteps:                    report.NextSteps,
				AgeSpecificAdvice:            report.AgeSpecificAdvice,
			})
		})

		r.Get("/runs", func(w http.ResponseWriter, req *http.Request) {
			filter := store.RunFilter{
				Status: model.RunStatus(req.URL.Query().Get("status")),
			}
			runs, listErr := st.ListRuns(req.Context(), filter)
			if listErr != nil {
				zap.L().Error("list runs failed", zap.Error(listErr))
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list runs failed"})
				return
			}
			writeJSON(w, http.StatusOK, runs)
		})

		r.Get("/runs/{id}", func(w http.ResponseWriter, req *http.Request) {
			run, getErr := st.GetRun(req.Context(), chi.URLParam(req, "id"))
			if getErr != nil {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "run not found"})
				return
			}
			writeJSON(w, http.StatusOK, run)
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// rateLimiter applies a shared token bucket across all requests.
func rateLimiter(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

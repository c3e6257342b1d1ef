package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	st, err := NewSQLite(filepath.Join(t.TempDir(), "advisor.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testInput() model.AssessmentInput {
	return model.AssessmentInput{
		Profile: model.Profile{
			Age:             35,
			AnnualIncome:    900000,
			MonthlyExpenses: 30000,
			TotalSavings:    200000,
			FinancialGoals:  "Retirement",
			RiskAppetite:    "moderate",
		},
		Investments: []model.Investment{{AssetType: "Mutual Funds", Amount: 50000}},
	}
}

func TestSQLiteCreateAndGetRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	created, err := st.CreateRun(ctx, testInput())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, model.RunStatusQueued, created.Status)

	got, err := st.GetRun(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 35, got.Input.Profile.Age)
	assert.Len(t, got.Input.Investments, 1)
	assert.Nil(t, got.Result)
}

func TestSQLiteGetRunNotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetRun(context.Background(), "no-such-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteUpdateRunStatus(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testInput())
	require.NoError(t, err)

	require.NoError(t, st.UpdateRunStatus(ctx, run.ID, model.RunStatusScoring))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusScoring, got.Status)
}

func TestSQLiteUpdateRunStatusNotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.UpdateRunStatus(context.Background(), "no-such-run", model.RunStatusComplete)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteUpdateRunResult(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testInput())
	require.NoError(t, err)

	result := &model.RunResult{
		RiskScore:    6,
		RiskCategory: model.Moderate,
		TimeHorizon:  model.HorizonMedium,
	}
	require.NoError(t, st.UpdateRunResult(ctx, run.ID, result))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Result)
	assert.Equal(t, 6, got.Result.RiskScore)
	assert.Equal(t, model.Moderate, got.Result.RiskCategory)
	// result and status are saved independently
	assert.Equal(t, model.RunStatusQueued, got.Status)
}

func TestSQLiteListRunsFilterByStatus(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	first, err := st.CreateRun(ctx, testInput())
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, testInput())
	require.NoError(t, err)

	require.NoError(t, st.UpdateRunStatus(ctx, first.ID, model.RunStatusComplete))

	complete, err := st.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, first.ID, complete[0].ID)

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteListRunsLimit(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := st.CreateRun(ctx, testInput())
		require.NoError(t, err)
	}

	runs, err := st.ListRuns(ctx, RunFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestSQLitePhaseLifecycle(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testInput())
	require.NoError(t, err)

	phase, err := st.CreatePhase(ctx, run.ID, "1a_score")
	require.NoError(t, err)
	assert.Equal(t, model.PhaseStatusRunning, phase.Status)

	err = st.CompletePhase(ctx, phase.ID, &model.PhaseResult{
		Name:     "1a_score",
		Status:   model.PhaseStatusComplete,
		Duration: 3,
	})
	require.NoError(t, err)
}

func TestSQLiteCompletePhaseNotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.CompletePhase(context.Background(), "no-such-phase", &model.PhaseResult{Status: model.PhaseStatusComplete})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteDeleteRunsBefore(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, testInput())
	require.NoError(t, err)
	_, err = st.CreatePhase(ctx, run.ID, "1a_score")
	require.NoError(t, err)

	// cutoff in the past removes nothing
	n, err := st.DeleteRunsBefore(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// cutoff in the future removes the run and its phases
	n, err = st.DeleteRunsBefore(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = st.GetRun(ctx, run.ID)
	require.Error(t, err)
}

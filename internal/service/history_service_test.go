package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite/chronoassist/internal/domain"
	"github.com/mwhite/chronoassist/internal/script"
	"github.com/mwhite/chronoassist/internal/testutil"
)

// stubRunner satisfies script.Runner with a canned result.
type stubRunner struct {
	result   script.Result
	err      error
	lastArgs []string
}

func (s *stubRunner) Run(_ context.Context, _ string, args ...string) (script.Result, error) {
	s.lastArgs = args
	return s.result, s.err
}

func newHistoryServiceForTest(env *testEnv, runner script.Runner) HistoryService {
	scraper := script.NewScraper(runner, "python3", "scrape.py", nil)
	return NewHistoryService(env.historical, env.settings, scraper)
}

func TestHistoryRefresh_ImportsScrapedEntries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	runner := &stubRunner{result: script.Result{Stdout: `[
		{"Date": "2026-03-02", "Project": "Apollo", "Activity": "Dev", "WorkItem": "API", "Comment": "sprint"},
		{"Date": "2026-03-03", "Project": "Apollo", "Activity": "QA", "WorkItem": "Suite", "Comment": "regression"}
	]`}}
	svc := newHistoryServiceForTest(env, runner)

	out, err := svc.Refresh(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, 2, out.Imported)
	assert.Len(t, out.Data, 2)
}

func TestHistoryRefresh_UsesConfiguredDayWindow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	runner := &stubRunner{result: script.Result{Stdout: `[]`}}
	svc := newHistoryServiceForTest(env, runner)

	require.NoError(t, env.settings.Save(ctx, "u1", domain.SettingsPatch{
		HistoricalDataDays: domain.IntPtr(90),
	}))

	_, err := svc.Refresh(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"scrape.py", "90"}, runner.lastArgs)
}

func TestHistoryRefresh_RepeatRunsStayDeduplicated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	runner := &stubRunner{result: script.Result{Stdout: `[
		{"Date": "2026-03-02", "Project": "Apollo", "Activity": "Dev", "WorkItem": "API", "Comment": "sprint"}
	]`}}
	svc := newHistoryServiceForTest(env, runner)

	first, err := svc.Refresh(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Imported)

	second, err := svc.Refresh(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported, "same content is not re-imported")
	assert.Len(t, second.Data, 1)
}

func TestHistoryRefresh_ScrapeFailureKeepsPriorData(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.historical.AddAll(ctx, "u1", []domain.TimeEntry{
		testutil.NewTestEntry("Apollo", "API"),
	})
	require.NoError(t, err)

	runner := &stubRunner{err: script.ErrTimeout, result: script.Result{TimedOut: true}}
	svc := newHistoryServiceForTest(env, runner)

	out, err := svc.Refresh(ctx, "u1")
	require.NoError(t, err, "script failure converts to a failed result")
	assert.False(t, out.Success)
	assert.Contains(t, out.Message, "Showing previously loaded data")
	require.Len(t, out.Data, 1, "prior data still served")
}

func TestHistoryRefresh_BlankScriptOutputIsFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.historical.AddAll(ctx, "u1", []domain.TimeEntry{
		testutil.NewTestEntry("Apollo", "API"),
	})
	require.NoError(t, err)

	runner := &stubRunner{result: script.Result{Stdout: "   \n"}}
	svc := newHistoryServiceForTest(env, runner)

	out, err := svc.Refresh(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, out.Success, "blank stdout is not a clean run")
	assert.Contains(t, out.Message, "Showing previously loaded data")
	require.Len(t, out.Data, 1)
}

func TestHistoryRefresh_ScrapeFailureWithNoPriorData(t *testing.T) {
	env := newTestEnv(t)
	runner := &stubRunner{err: script.ErrExit, result: script.Result{ExitCode: 1}}
	svc := newHistoryServiceForTest(env, runner)

	out, err := svc.Refresh(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Contains(t, out.Message, "No historical data available")
	assert.Empty(t, out.Data)
}

func TestHistoryLastRefreshedAt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := newHistoryServiceForTest(env, &stubRunner{result: script.Result{Stdout: `[
		{"Date": "2026-03-02", "Project": "Apollo", "Activity": "Dev", "WorkItem": "API", "Comment": "c"}
	]`}})

	ts, err := svc.LastRefreshedAt(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, ts, "never refreshed")

	_, err = svc.Refresh(ctx, "u1")
	require.NoError(t, err)

	ts, err = svc.LastRefreshedAt(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.False(t, ts.IsZero())
}

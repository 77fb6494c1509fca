package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mwhite/chronoassist/internal/domain"
	"github.com/mwhite/chronoassist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoricalRepo_ImportIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHistoricalRepo(db)
	ctx := context.Background()

	batch := []domain.TimeEntry{
		{ID: "s1", Date: "2024-07-15", Project: "A", Activity: "Dev", WorkItem: "X", Comment: "c"},
	}

	n, err := repo.AddAll(ctx, "u1", batch)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Re-importing the same scraped content inserts nothing, even with a
	// different client id and different hours.
	again := batch
	again[0].ID = "s2"
	again[0].Hours = 3.5
	n, err = repo.AddAll(ctx, "u1", again)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	all, err := repo.List(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestHistoricalRepo_DedupIsPerUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHistoricalRepo(db)
	ctx := context.Background()

	e := testutil.NewTestEntry("A", "X")
	_, err := repo.AddAll(ctx, "u1", []domain.TimeEntry{e})
	require.NoError(t, err)

	n, err := repo.AddAll(ctx, "u2", []domain.TimeEntry{e})
	require.NoError(t, err)
	assert.Equal(t, 1, n, "another user may hold the same content")
}

func TestHistoricalRepo_ListOrderedByDateThenInsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHistoricalRepo(db)
	ctx := context.Background()

	older := testutil.NewTestEntry("A", "older", testutil.WithDate("2024-07-10"))
	newerFirst := testutil.NewTestEntry("A", "newer-first", testutil.WithDate("2024-07-15"))
	newerSecond := testutil.NewTestEntry("A", "newer-second", testutil.WithDate("2024-07-15"))

	_, err := repo.AddAll(ctx, "u1", []domain.TimeEntry{older, newerFirst, newerSecond})
	require.NoError(t, err)

	got, err := repo.List(ctx, "u1", nil)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Descending date, ties broken by most recent insert first.
	assert.Equal(t, "newer-second", got[0].WorkItem)
	assert.Equal(t, "newer-first", got[1].WorkItem)
	assert.Equal(t, "older", got[2].WorkItem)
}

func TestHistoricalRepo_WindowBoundary(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHistoricalRepo(db)
	ctx := context.Background()

	today := testutil.NewTestEntry("A", "today")
	twoMonthsAgo := testutil.NewTestEntry("A", "old", testutil.WithDate(
		time.Now().UTC().AddDate(0, -2, 0).Format(domain.DateLayout)))

	_, err := repo.AddAll(ctx, "u1", []domain.TimeEntry{today, twoMonthsAgo})
	require.NoError(t, err)

	window := 1
	got, err := repo.List(ctx, "u1", &window)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "today", got[0].WorkItem)
}

func TestHistoricalRepo_NilWindowReturnsAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHistoricalRepo(db)
	ctx := context.Background()

	entries := []domain.TimeEntry{
		testutil.NewTestEntry("A", "recent"),
		testutil.NewTestEntry("A", "ancient", testutil.WithDate("2019-01-02")),
	}
	_, err := repo.AddAll(ctx, "u1", entries)
	require.NoError(t, err)

	got, err := repo.List(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTxHistoricalRepo_AddAllRollsBackAsAUnit(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	seed := NewSQLiteHistoricalRepo(db)
	_, err := seed.AddAll(ctx, "u1", []domain.TimeEntry{testutil.NewTestEntry("A", "X")})
	require.NoError(t, err)

	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: db, FailOn: 2, Err: boom}
	repo := &TxHistoricalRepo{SQLiteHistoricalRepo: seed, uow: uow}

	// First insert (1) succeeds, second insert (2) fails: the whole import
	// must roll back rather than commit half the batch.
	n, err := repo.AddAll(ctx, "u1", []domain.TimeEntry{
		testutil.NewTestEntry("B", "Y"),
		testutil.NewTestEntry("B", "Z"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 0, n)

	got, err := seed.List(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Len(t, got, 1, "only the seeded row survives")
}

func TestHistoricalRepo_LatestImportedAt(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHistoricalRepo(db)
	ctx := context.Background()

	ts, err := repo.LatestImportedAt(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, ts, "no imports yet")

	before := time.Now().UTC().Add(-time.Second)
	_, err = repo.AddAll(ctx, "u1", []domain.TimeEntry{testutil.NewTestEntry("A", "X")})
	require.NoError(t, err)

	ts, err = repo.LatestImportedAt(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.True(t, ts.After(before) || ts.Equal(before))
}

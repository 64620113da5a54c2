package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/tpep"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "tpep.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestPutGetRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	fresh, err := tpep.Evaluate(8128)
	require.NoError(t, err)
	require.NoError(t, st.PutResult(ctx, fresh))

	cached, ok, err := st.GetResult(ctx, 8128)
	require.NoError(t, err)
	require.True(t, ok)

	// A cached result must be indistinguishable from a fresh one,
	// derived ratios included.
	assert.Equal(t, fresh, cached)
	assert.Equal(t, fresh.Metrics(), cached.Metrics())
	assert.Equal(t, 0, fresh.MirrorGap().Cmp(cached.MirrorGap()))
	assert.Equal(t, fresh.Report(), cached.Report())
}

func TestGetResultMiss(t *testing.T) {
	st := openTestStore(t)

	_, ok, err := st.GetResult(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutResultUpsert(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	r, err := tpep.Evaluate(945)
	require.NoError(t, err)

	require.NoError(t, st.PutResult(ctx, r))
	require.NoError(t, st.PutResult(ctx, r), "second put must not conflict")

	cached, ok, err := st.GetResult(ctx, 945)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, r, cached)
}

func TestRecordAndListRuns(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	report, err := tpep.Scan(ctx, 1, 1000, tpep.DefaultScanConfig())
	require.NoError(t, err)

	id, err := st.RecordRun(ctx, report)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	runs, err := st.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, id, run.ID)
	assert.Equal(t, int64(1), run.Lo)
	assert.Equal(t, int64(1000), run.Hi)
	assert.Equal(t, int64(1000), run.Evaluated)
	assert.Equal(t, int64(3), run.Perfect)
	assert.Equal(t, int64(1), run.Forbidden, "945 is the only odd abundant below 1000")
}

func TestOpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tpep.db")

	st1, err := Open(path)
	require.NoError(t, err)

	r, err := tpep.Evaluate(28)
	require.NoError(t, err)
	require.NoError(t, st1.PutResult(context.Background(), r))
	require.NoError(t, st1.Close())

	st2, err := Open(path)
	require.NoError(t, err)
	defer st2.Close()

	cached, ok, err := st2.GetResult(context.Background(), 28)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, r, cached)
}

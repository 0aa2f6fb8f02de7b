package archive

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gehtsoft-usa/go_aerotable"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openTemp(t *testing.T, logger *zap.Logger) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "db", "sweeps.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestSaveLoadSweep(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	a := openTemp(t, zap.New(core))
	ctx := context.Background()

	rec := SweepRecord{
		Vehicle:   "Alpha",
		MachStart: 0,
		MachStop:  0.31,
		MachStep:  0.1,
		AOA:       2,
		Table: go_aerotable.Table{
			{0.0, 0.45, 0.25, 0.6, 17.2},
			{0.1, 0.44, 0.25, 0.6, 17.3},
			{0.2, 0.43, 0.251, 0.61, 17.5},
		},
	}
	id, err := a.SaveSweep(ctx, rec)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	loaded, err := a.LoadSweep(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, loaded.ID)
	assert.Equal(t, "Alpha", loaded.Vehicle)
	assert.Equal(t, 0.31, loaded.MachStop)
	assert.Equal(t, 2.0, loaded.AOA)
	assert.Equal(t, rec.Table, loaded.Table)
	assert.False(t, loaded.CreatedAt.IsZero())

	assert.Equal(t, 1, logs.FilterMessage("Sweep archived").Len())
}

func TestLoadSweepNotFound(t *testing.T) {
	a := openTemp(t, nil)
	_, err := a.LoadSweep(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSweeps(t *testing.T) {
	a := openTemp(t, nil)
	ctx := context.Background()

	records, err := a.ListSweeps(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	first, err := a.SaveSweep(ctx, SweepRecord{Vehicle: "Alpha", MachStop: 1, MachStep: 0.5, Table: go_aerotable.Table{{0, 1, 2, 3, 4}}})
	require.NoError(t, err)
	second, err := a.SaveSweep(ctx, SweepRecord{Vehicle: "Bravo", MachStop: 1, MachStep: 0.5})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	records, err = a.ListSweeps(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.ElementsMatch(t, []string{first, second}, []string{records[0].ID, records[1].ID})
	for _, r := range records {
		assert.Nil(t, r.Table)
	}
}

func TestArchiveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeps.db")
	ctx := context.Background()

	a, err := Open(path, nil)
	require.NoError(t, err)
	id, err := a.SaveSweep(ctx, SweepRecord{Vehicle: "Alpha", Table: go_aerotable.Table{{0.5, 0.4, 0.25, 0, 17}}})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := Open(path, nil)
	require.NoError(t, err)
	defer b.Close()
	assert.Equal(t, path, b.Path())

	rec, err := b.LoadSweep(ctx, id)
	require.NoError(t, err)
	assert.Len(t, rec.Table, 1)
}

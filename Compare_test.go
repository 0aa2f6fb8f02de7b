package go_aerotable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gehtsoft-usa/go_aerotable"
)

func TestCompareTables(t *testing.T) {
	table := go_aerotable.Table{
		{0.0, 0.50, 0.20, 0, 2.0},
		{0.5, 0.55, 0.21, 0, 2.5},
		{1.0, 0.60, 0.22, 0, 3.0},
	}
	reference := go_aerotable.Table{
		{1.0004, 0.62, 0.22, 0, 3.5},
		{0.5, 0.54, 0.21, 0, 2.5},
		{2.0, 0.70, 0.30, 0, 4.0},
	}

	diff := go_aerotable.CompareTables(table, reference, 0.001)
	assert.Equal(t, 2, diff.Matched)
	assert.Equal(t, []float64{2.0}, diff.Unmatched)
	assert.InDelta(t, 0.02, diff.MaxDelta.CD(), 1e-12)
	assert.Equal(t, 1.0004, diff.WorstMach.CD())
	assert.InDelta(t, 0.5, diff.MaxDelta.CNa(), 1e-12)
	assert.Equal(t, 0.0, diff.MaxDelta.CN())
}

func TestCompareTablesIdentical(t *testing.T) {
	table := go_aerotable.Table{{0.1, 0.5, 0.2, 0.1, 2}, {0.2, 0.5, 0.2, 0.1, 2}}
	diff := go_aerotable.CompareTables(table, table, 1e-9)
	assert.Equal(t, 2, diff.Matched)
	assert.Empty(t, diff.Unmatched)
	assert.Equal(t, go_aerotable.Row{}, diff.MaxDelta)
}

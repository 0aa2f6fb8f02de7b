package go_aerotable

import (
	"math"
	"sort"
)

//TableDiff describes how a computed table deviates from reference data
type TableDiff struct {
	//Matched is the number of reference rows that have a computed row at the same Mach
	Matched int
	//MaxDelta is the largest absolute deviation per column; the Mach column is unused
	MaxDelta Row
	//WorstMach is the Mach of the row with the largest deviation per column
	WorstMach Row
	//Unmatched lists the Mach numbers of the reference rows without a computed row
	Unmatched []float64
}

//CompareTables compares the table with the reference rows.
//
//A reference row matches the computed row whose Mach number is the closest
//one within machTolerance. The table must be sorted by Mach, as BuildTable
//returns it; the reference may be in any order.
func CompareTables(table, reference Table, machTolerance float64) TableDiff {
	var diff TableDiff
	for _, ref := range reference {
		row, ok := findRow(table, ref.Mach(), machTolerance)
		if !ok {
			diff.Unmatched = append(diff.Unmatched, ref.Mach())
			continue
		}
		diff.Matched++
		for i := ColumnCD; i < ColumnCount; i++ {
			d := math.Abs(row[i] - ref[i])
			if d > diff.MaxDelta[i] {
				diff.MaxDelta[i] = d
				diff.WorstMach[i] = ref.Mach()
			}
		}
	}
	return diff
}

func findRow(table Table, mach, tolerance float64) (Row, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].Mach() >= mach })

	best, bestDelta := -1, math.Inf(1)
	for _, j := range []int{i - 1, i} {
		if j < 0 || j >= len(table) {
			continue
		}
		if d := math.Abs(table[j].Mach() - mach); d <= tolerance && d < bestDelta {
			best, bestDelta = j, d
		}
	}
	if best < 0 {
		return Row{}, false
	}
	return table[best], true
}

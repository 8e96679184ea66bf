package lr

import "github.com/go-lrtools/lr0gen/lr/sparse"

// TableStats summarizes how densely occupied and how conflicted a
// ParsingTable's ACTION table is (spec §4.8, a reporting feature distinct
// from the ACTION/GOTO tables themselves, which stay dense per spec §3).
type TableStats struct {
	Cells        int     // n_states * n_terminals
	Occupied     int     // cells holding at least one action
	Conflicted   int     // cells holding two or more actions
	FillRatio    float64 // Occupied / Cells
	ConflictRate float64 // Conflicted / Occupied, 0 if Occupied == 0
}

// ComputeStats re-encodes t's ACTION table into a sparse.IntMatrix holding
// each occupied cell's action count — the same COO technique the teacher
// corpus uses for its parser tables, repurposed here for a statistics pass
// over a table that is dense by construction. Occupied is the matrix's
// ValueCount; Conflicted is counted by looking up every one of the
// n_states*n_terminals cells in the matrix.
func ComputeStats(t *ParsingTable) TableStats {
	rows := t.NStates()
	cols := len(t.Terminals)
	m := sparse.NewIntMatrix(rows, cols, sparse.DefaultNullValue)

	for state := 0; state < rows; state++ {
		for col, sym := range t.Terminals {
			cell := t.ActionAt(state, sym)
			if cell.IsEmpty() {
				continue
			}
			m.Set(state, col, int32(len(cell.Actions)))
		}
	}

	occupied := m.ValueCount()
	conflicted := 0
	for state := 0; state < rows; state++ {
		for col := range t.Terminals {
			v := m.Value(state, col)
			if v != m.NullValue() && v > 1 {
				conflicted++
			}
		}
	}

	stats := TableStats{
		Cells:      rows * cols,
		Occupied:   occupied,
		Conflicted: conflicted,
	}
	if stats.Cells > 0 {
		stats.FillRatio = float64(stats.Occupied) / float64(stats.Cells)
	}
	if stats.Occupied > 0 {
		stats.ConflictRate = float64(stats.Conflicted) / float64(stats.Occupied)
	}
	return stats
}

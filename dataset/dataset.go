// Package dataset holds the immutable numeric table the regression
// pipeline consumes. Columns are addressed by name, rows are
// observations, and NaN marks a missing value. Missing values are
// excluded pairwise: each model fit drops only the rows that are
// incomplete for the columns that fit actually uses.
package dataset

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/regsuite/regsuite/pkg/errors"
)

// Table is an immutable numeric table with named columns.
type Table struct {
	names []string
	index map[string]int
	cols  [][]float64
	rows  int
}

// New builds a table from column names and column data. All columns must
// have the same length; the slices are copied so later mutation of the
// caller's data cannot alias the table.
func New(names []string, cols [][]float64) (*Table, error) {
	if len(names) == 0 || len(cols) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "dataset.New")
	}
	if len(names) != len(cols) {
		return nil, errors.NewDimensionError("dataset.New", len(names), len(cols), 1)
	}

	rows := len(cols[0])
	index := make(map[string]int, len(names))
	copied := make([][]float64, len(cols))
	for i, col := range cols {
		if len(col) != rows {
			return nil, errors.NewDimensionError("dataset.New", rows, len(col), 0)
		}
		if _, dup := index[names[i]]; dup {
			return nil, errors.NewValueError("dataset.New", "duplicate column name "+names[i])
		}
		index[names[i]] = i
		copied[i] = append([]float64(nil), col...)
	}

	return &Table{
		names: append([]string(nil), names...),
		index: index,
		cols:  copied,
		rows:  rows,
	}, nil
}

// NumRows returns the number of observations.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of variables.
func (t *Table) NumCols() int { return len(t.names) }

// Names returns the column names in declaration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Has reports whether the table contains a column.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), t.cols[i]...), true
}

// CompleteRows returns the indices of rows that have no missing value in
// any of the named columns. Row order is preserved.
func (t *Table) CompleteRows(names []string) ([]int, error) {
	selected := make([][]float64, len(names))
	for i, name := range names {
		idx, ok := t.index[name]
		if !ok {
			return nil, errors.NewValueError("dataset.CompleteRows", "unknown column "+name)
		}
		selected[i] = t.cols[idx]
	}

	rows := make([]int, 0, t.rows)
	for r := 0; r < t.rows; r++ {
		complete := true
		for _, col := range selected {
			if math.IsNaN(col[r]) {
				complete = false
				break
			}
		}
		if complete {
			rows = append(rows, r)
		}
	}
	return rows, nil
}

// Gather extracts the named column restricted to the given row indices.
func (t *Table) Gather(name string, rows []int) ([]float64, error) {
	idx, ok := t.index[name]
	if !ok {
		return nil, errors.NewValueError("dataset.Gather", "unknown column "+name)
	}
	col := t.cols[idx]
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = col[r]
	}
	return out, nil
}

// Mean returns the mean of the named column over non-missing values.
func (t *Table) Mean(name string) (float64, error) {
	idx, ok := t.index[name]
	if !ok {
		return 0, errors.NewValueError("dataset.Mean", "unknown column "+name)
	}
	present := make([]float64, 0, t.rows)
	for _, v := range t.cols[idx] {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "dataset.Mean")
	}
	return stat.Mean(present, nil), nil
}

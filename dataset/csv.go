package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/regsuite/regsuite/pkg/errors"
)

// LoadCSV reads a numeric table from CSV data. The first record is the
// header giving column names; empty cells and the usual missing-value
// markers ("NA", "NaN", "null") become NaN. Any other non-numeric cell is
// an error, since the core pipeline expects a fully coerced table.
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "dataset.LoadCSV: reading header")
	}

	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	cols := make([][]float64, len(names))
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "dataset.LoadCSV: reading row %d", row)
		}
		if len(record) != len(names) {
			return nil, errors.NewDimensionError("dataset.LoadCSV", len(names), len(record), 1)
		}
		for i, cell := range record {
			v, err := parseCell(cell)
			if err != nil {
				return nil, errors.Wrapf(err, "dataset.LoadCSV: row %d, column %q", row, names[i])
			}
			cols[i] = append(cols[i], v)
		}
		row++
	}

	return New(names, cols)
}

// LoadCSVFile reads a numeric table from a CSV file on disk.
func LoadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset.LoadCSVFile")
	}
	defer f.Close()
	return LoadCSV(f)
}

func parseCell(cell string) (float64, error) {
	s := strings.TrimSpace(cell)
	switch strings.ToLower(s) {
	case "", "na", "nan", "null":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

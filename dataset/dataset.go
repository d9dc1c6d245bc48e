// Package dataset loads numeric columns from CSV files.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// LoadColumn reads the named numeric column of a CSV file (first record is the
// header) and returns every stride-th value of it. A stride smaller than 2
// returns the full column.
func LoadColumn(path, column string, stride int) (values []float64, err error) {

	var f *os.File
	if f, err = os.Open(path); err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)

	var header []string
	if header, err = r.Read(); err != nil {
		return nil, fmt.Errorf("%s: reading header: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	col, ok := index[column]
	if !ok {
		names := maps.Keys(index)
		slices.Sort(names)
		return nil, fmt.Errorf("%s: no column %q (columns: %v)", path, column, names)
	}

	if stride < 2 {
		stride = 1
	}

	values = []float64{}

	var record []string
	for row := 0; ; row++ {

		if record, err = r.Read(); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%s: row %d: %w", path, row, err)
		}

		if row%stride != 0 {
			continue
		}

		var v float64
		if v, err = strconv.ParseFloat(record[col], 64); err != nil {
			return nil, fmt.Errorf("%s: row %d, column %q: %w", path, row, column, err)
		}

		values = append(values, v)
	}

	return values, nil
}

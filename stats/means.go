// Package stats computes per-trial means and their aggregate statistics.
package stats

import (
	"runtime"
	"sync"
)

// Means returns the mean of each row.
func Means(rows [][]float64) (means []float64) {

	means = make([]float64, len(rows))

	for i, row := range rows {
		means[i] = mean(row)
	}

	return means
}

// MeansParallel computes the same row means with a bounded pool of workers,
// each reducing a contiguous batch of rows. Rows are independent and each
// worker writes a disjoint index range, so the result does not depend on
// scheduling order and is identical to Means. A non-positive worker count
// defaults to runtime.NumCPU().
func MeansParallel(rows [][]float64, workers int) (means []float64) {

	means = make([]float64, len(rows))

	if len(rows) == 0 {
		return means
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if workers > len(rows) {
		workers = len(rows)
	}

	var wg sync.WaitGroup
	wg.Add(workers)

	batch := len(rows) / workers
	for g := 0; g < workers; g++ {

		start := g * batch
		finish := (g + 1) * batch
		if g == workers-1 {
			finish = len(rows)
		}

		go func(start, finish int) {
			for i := start; i < finish; i++ {
				means[i] = mean(rows[i])
			}
			wg.Done()
		}(start, finish)
	}

	wg.Wait()

	return means
}

func mean(row []float64) (m float64) {

	for _, v := range row {
		m += v
	}

	return m / float64(len(row))
}

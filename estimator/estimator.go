// Package estimator recovers the secret multiplier of an additive-noise
// encryption scheme from the spread of repeated-encryption means.
//
// A single noise draw uniform over the integer range [lo, hi) has variance
// (span²-1)/12 with span = hi-lo, and averaging n independent draws divides
// the variance by n. The mean of one encrypted row of c = S·e + m therefore
// fluctuates around the message mean with standard deviation S·sigma, where
// sigma = sqrt((span²-1)/(12·n)), so the ratio of the measured standard
// deviation of the trial means to sigma exposes S.
package estimator

import (
	"fmt"
	"math"

	"github.com/tuneinsight/additive-noise-key-recovery/scheme"
	"github.com/tuneinsight/additive-noise-key-recovery/stats"
)

// Sigma returns the theoretical standard deviation of the average of n
// independent uniform integer draws over [lo, hi).
func Sigma(lo, hi int64, n int) float64 {
	span := float64(hi - lo)
	return math.Sqrt((span*span - 1) / (12 * float64(n)))
}

// RecoverSecret inverts the relation empiricalStd = secret·sigma.
func RecoverSecret(empiricalStd, sigma float64) float64 {
	return empiricalStd / sigma
}

// Params describes one key-recovery experiment.
type Params struct {
	Secret  float64 // multiplier the attack should recover
	Trials  int     // number of simulated encryptions of the message
	NoiseLo int64   // noise range lower bound (inclusive)
	NoiseHi int64   // noise range upper bound (exclusive)
	Workers int     // size of the row-mean worker pool, non-positive for NumCPU
	Seed    []byte  // PRNG seed, nil for a fresh key
}

func (p Params) validate(n int) error {
	switch {
	case n == 0:
		return fmt.Errorf("empty message vector")
	case p.Trials < 2:
		return fmt.Errorf("need at least 2 trials, have %d", p.Trials)
	case p.NoiseHi-p.NoiseLo < 2:
		return fmt.Errorf("noise range [%d, %d) needs a span of at least 2", p.NoiseLo, p.NoiseHi)
	}
	return nil
}

// Result stores the aggregate statistics of the trial means together with the
// true secret and the recovered estimate.
type Result struct {
	Rows   int
	Trials int

	Mean float64
	Std  float64
	Max  float64
	Min  float64

	Sigma    float64
	Secret   float64
	Estimate float64
}

var Header = []string{
	"ROWS",
	"TRIALS",
	"MEAN",
	"STD",
	"MAX",
	"MIN",
	"SIGMA",
	"SECRET",
	"ESTIMATE",
}

// Run simulates p.Trials encryptions of the message under the hypothesized
// scheme and recovers the secret from the aggregate statistics. It performs
// no I/O and is deterministic for a fixed seed.
func Run(message []float64, p Params) (res Result, err error) {

	if err = p.validate(len(message)); err != nil {
		return Result{}, err
	}

	var sampler *scheme.Sampler
	if sampler, err = scheme.NewSampler(p.NoiseLo, p.NoiseHi, p.Seed); err != nil {
		return Result{}, err
	}

	noise := scheme.NoiseMatrix(sampler, p.Trials, len(message))

	var encrypted [][]float64
	if encrypted, err = scheme.Encrypt(p.Secret, noise, message); err != nil {
		return Result{}, err
	}

	agg := stats.NewTrialStats()
	agg.Update(stats.MeansParallel(encrypted, p.Workers))

	if err = agg.Finalize(); err != nil {
		return Result{}, err
	}

	sigma := Sigma(p.NoiseLo, p.NoiseHi, len(message))

	return Result{
		Rows:     len(message),
		Trials:   agg.Trials,
		Mean:     agg.Mean,
		Std:      agg.Std,
		Max:      agg.Max,
		Min:      agg.Min,
		Sigma:    sigma,
		Secret:   p.Secret,
		Estimate: RecoverSecret(agg.Std, sigma),
	}, nil
}

// ToCSV produces a record matching Header.
func (r Result) ToCSV() []string {
	return []string{
		fmt.Sprintf("%d", r.Rows),
		fmt.Sprintf("%d", r.Trials),
		fmt.Sprintf("%.5f", r.Mean),
		fmt.Sprintf("%.5f", r.Std),
		fmt.Sprintf("%.5f", r.Max),
		fmt.Sprintf("%.5f", r.Min),
		fmt.Sprintf("%.5f", r.Sigma),
		fmt.Sprintf("%.5f", r.Secret),
		fmt.Sprintf("%.5f", r.Estimate),
	}
}

package stats

import (
	"fmt"

	mstats "github.com/montanaflynn/stats"
)

var Header = []string{
	"TRIALS",
	"MEAN",
	"STD",
	"MAX",
	"MIN",
}

// TrialStats is a struct storing aggregate statistics about the per-trial
// means of a repeated encryption experiment.
type TrialStats struct {
	Trials int
	Mean   float64
	Std    float64 // sample standard deviation (n-1 denominator)
	Max    float64
	Min    float64

	means []float64
}

func NewTrialStats() (t *TrialStats) {
	return &TrialStats{
		means: []float64{},
	}
}

// Update records a batch of trial means.
func (t *TrialStats) Update(means []float64) {
	t.means = append(t.means, means...)
	t.Trials = len(t.means)
}

// Finalize computes the aggregate statistics over the recorded means. At
// least two means are required since the standard deviation uses the n-1
// denominator.
func (t *TrialStats) Finalize() (err error) {

	if len(t.means) < 2 {
		return fmt.Errorf("need at least 2 trial means, have %d", len(t.means))
	}

	if t.Mean, err = mstats.Mean(t.means); err != nil {
		return err
	}

	if t.Std, err = mstats.StandardDeviationSample(t.means); err != nil {
		return err
	}

	if t.Max, err = mstats.Max(t.means); err != nil {
		return err
	}

	if t.Min, err = mstats.Min(t.means); err != nil {
		return err
	}

	return nil
}

// ToCSV produces a record matching Header.
func (t *TrialStats) ToCSV() []string {
	return []string{
		fmt.Sprintf("%d", t.Trials),
		fmt.Sprintf("%.5f", t.Mean),
		fmt.Sprintf("%.5f", t.Std),
		fmt.Sprintf("%.5f", t.Max),
		fmt.Sprintf("%.5f", t.Min),
	}
}

package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSigma(t *testing.T) {
	// span 20, n 100
	require.InDelta(t, math.Sqrt(399.0/1200.0), Sigma(-10, 10, 100), 1e-15)
}

func TestRecoverSecret(t *testing.T) {
	require.Equal(t, 5.0, RecoverSecret(1.0, 0.2))
}

// With a zero message and a unit secret the trial means are pure noise
// averages, so their sample standard deviation must approach sigma.
func TestSigmaMatchesNoiseOnlyTrials(t *testing.T) {

	message := make([]float64, 256)

	res, err := Run(message, Params{
		Secret:  1,
		Trials:  5000,
		NoiseLo: -10,
		NoiseHi: 10,
		Seed:    []byte("noise-only"),
	})
	require.NoError(t, err)
	require.InEpsilon(t, res.Sigma, res.Std, 0.05)
}

func TestEstimateConverges(t *testing.T) {

	message := make([]float64, 100)
	for i := range message {
		message[i] = 0.001 * float64(i)
	}

	res, err := Run(message, Params{
		Secret:  5,
		Trials:  5000,
		NoiseLo: -10,
		NoiseHi: 10,
		Seed:    []byte("converges"),
	})
	require.NoError(t, err)
	require.InDelta(t, 5, res.Estimate, 0.5)
}

func TestRunDeterministicForSeed(t *testing.T) {

	message := make([]float64, 64)
	for i := range message {
		message[i] = float64(i) * 0.25
	}

	p := Params{
		Secret:  3,
		Trials:  64,
		NoiseLo: -10,
		NoiseHi: 10,
		Workers: 4,
		Seed:    []byte("fixed"),
	}

	a, err := Run(message, p)
	require.NoError(t, err)
	b, err := Run(message, p)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestRunValidatesParams(t *testing.T) {

	message := []float64{1, 2}
	base := Params{Secret: 5, Trials: 10, NoiseLo: -10, NoiseHi: 10}

	_, err := Run(nil, base)
	require.Error(t, err)

	p := base
	p.Trials = 1
	_, err = Run(message, p)
	require.Error(t, err)

	p = base
	p.NoiseLo, p.NoiseHi = 3, 4
	_, err = Run(message, p)
	require.Error(t, err)
}

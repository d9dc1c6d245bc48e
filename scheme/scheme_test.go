package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSamplerBounds(t *testing.T) {

	s, err := NewSampler(-10, 10, []byte("bounds"))
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		v := s.Int64()
		require.GreaterOrEqual(t, v, int64(-10))
		require.Less(t, v, int64(10))
	}
}

func TestSamplerCoversRange(t *testing.T) {

	s, err := NewSampler(0, 5, []byte("covers"))
	require.NoError(t, err)

	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		seen[s.Int64()] = true
	}

	require.Len(t, seen, 5)
}

func TestSamplerDeterministicForSeed(t *testing.T) {

	seed := []byte("fixed")

	a, err := NewSampler(-10, 10, seed)
	require.NoError(t, err)
	b, err := NewSampler(-10, 10, seed)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Int64(), b.Int64())
	}
}

func TestSamplerInvalidBounds(t *testing.T) {
	_, err := NewSampler(10, 10, nil)
	require.Error(t, err)
}

func TestNoiseMatrixShape(t *testing.T) {

	s, err := NewSampler(-10, 10, []byte("shape"))
	require.NoError(t, err)

	e := NoiseMatrix(s, 7, 3)
	require.Len(t, e, 7)
	for _, row := range e {
		require.Len(t, row, 3)
	}
}

func TestEncrypt(t *testing.T) {

	noise := [][]int64{{1, -2}, {0, 3}}
	message := []float64{0.5, 1.5}

	c, err := Encrypt(5, noise, message)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5.5, -8.5}, {0.5, 16.5}}, c)

	// Inputs untouched
	require.Equal(t, [][]int64{{1, -2}, {0, 3}}, noise)
	require.Equal(t, []float64{0.5, 1.5}, message)
}

func TestEncryptLengthMismatch(t *testing.T) {
	_, err := Encrypt(5, [][]int64{{1}}, []float64{0.5, 1.5})
	require.Error(t, err)
}

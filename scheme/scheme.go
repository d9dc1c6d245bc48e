// Package scheme simulates an additive-noise encryption scheme c = S·e + m,
// with integer noise e uniform over a known range and a secret multiplier S.
package scheme

import (
	"fmt"
)

// NoiseMatrix draws a trials×n matrix of independent noise values.
func NoiseMatrix(s *Sampler, trials, n int) (e [][]int64) {

	e = make([][]int64, trials)

	for i := range e {
		row := make([]int64, n)
		for j := range row {
			row[j] = s.Int64()
		}
		e[i] = row
	}

	return e
}

// Encrypt computes one ciphertext row secret·noise[i] + message per noise row,
// broadcasting the message. The inputs are left untouched.
func Encrypt(secret float64, noise [][]int64, message []float64) (c [][]float64, err error) {

	c = make([][]float64, len(noise))

	for i, row := range noise {

		if len(row) != len(message) {
			return nil, fmt.Errorf("noise row %d has %d values, message has %d", i, len(row), len(message))
		}

		ci := make([]float64, len(message))
		for j, e := range row {
			ci[j] = secret*float64(e) + message[j]
		}

		c[i] = ci
	}

	return c, nil
}

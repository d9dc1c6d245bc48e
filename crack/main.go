package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/tuneinsight/additive-noise-key-recovery/dataset"
	"github.com/tuneinsight/additive-noise-key-recovery/estimator"
)

var (
	DataPath = "data/playground.csv" // Columnar input file
	Column   = "rwa"                 // Numeric column under attack
	Stride   = 500                   // Subsampling stride

	Secret  = 5.0        // Multiplier the attack recovers
	Trials  = 500        // Number of repeated encryptions
	NoiseLo = int64(-10) // Noise range lower bound (inclusive)
	NoiseHi = int64(10)  // Noise range upper bound (exclusive)

	Seed = []byte("crack") // Fixed for reproducible runs, nil for fresh randomness
)

func main() {

	message, err := dataset.LoadColumn(DataPath, Column, Stride)
	if err != nil {
		panic(err)
	}

	res, err := estimator.Run(message, estimator.Params{
		Secret:  Secret,
		Trials:  Trials,
		NoiseLo: NoiseLo,
		NoiseHi: NoiseHi,
		Seed:    Seed,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println("Number of rows: ", res.Rows)
	fmt.Printf("Mean: %v\n", res.Mean)
	fmt.Printf("Standard deviation: %v\n", res.Std)
	fmt.Printf("Max: %v\n", res.Max)
	fmt.Printf("Min: %v\n", res.Min)
	fmt.Printf("Real Secret Key: %v\n", res.Secret)
	fmt.Printf("Crack: %v\n", res.Estimate)

	f, err := os.Create(fmt.Sprintf("data/crack_%d_%d.csv", res.Rows, time.Now().Unix()))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	// CSV Header
	if err := w.Write(estimator.Header); err != nil {
		panic(err)
	}

	w.Flush()

	// k: number of recorded encryptions, the estimate converges to the
	// secret as k grows
	for k := 125; k <= 8000; k <<= 1 {

		fmt.Printf("k:%d\n", k)

		res, err := estimator.Run(message, estimator.Params{
			Secret:  Secret,
			Trials:  k,
			NoiseLo: NoiseLo,
			NoiseHi: NoiseHi,
			Seed:    Seed,
		})
		if err != nil {
			panic(err)
		}

		if err := w.Write(res.ToCSV()); err != nil {
			panic(err)
		}

		w.Flush()
	}
}

package scheme

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/tuneinsight/lattigo/v4/utils/sampling"
)

// Sampler draws uniform integers over the half-open range [lo, hi) from a
// blake2b XOF, so that a run is reproducible given a fixed seed.
type Sampler struct {
	lo   int64
	span uint64
	mask uint64
	prng sampling.PRNG
}

// NewSampler returns a sampler for the range [lo, hi). A nil seed keys the
// PRNG with a fresh random key; a fixed seed makes the draws deterministic.
func NewSampler(lo, hi int64, seed []byte) (s *Sampler, err error) {

	if hi <= lo {
		return nil, fmt.Errorf("invalid noise bounds [%d, %d)", lo, hi)
	}

	var prng sampling.PRNG
	if seed == nil {
		prng, err = sampling.NewPRNG()
	} else {
		prng, err = sampling.NewKeyedPRNG(seed)
	}

	if err != nil {
		return nil, err
	}

	span := uint64(hi - lo)

	return &Sampler{
		lo:   lo,
		span: span,
		mask: (1 << bits.Len64(span-1)) - 1,
		prng: prng,
	}, nil
}

// Int64 returns a fresh uniform draw in [lo, hi), rejection-sampling over the
// smallest power-of-two range covering the span.
func (s *Sampler) Int64() int64 {

	var buf [8]byte

	for {
		if _, err := s.prng.Read(buf[:]); err != nil {
			panic(err)
		}

		if v := binary.LittleEndian.Uint64(buf[:]) & s.mask; v < s.span {
			return s.lo + int64(v)
		}
	}
}

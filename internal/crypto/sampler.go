package crypto

import (
	"errors"
	"math"
	"math/bits"
)

// maxSampleAttempts bounds the rejection loop. Acceptance probability per
// draw is always above 1/2, so hitting this bound means the source is
// broken or mocked, not that we were unlucky.
const maxSampleAttempts = 100

var (
	ErrInvalidMax          = errors.New("sampler max must be a positive integer")
	ErrRandomnessExhausted = errors.New("rejection sampling exhausted its retry budget")
)

// Sampler draws unbiased integers from a Source using rejection sampling.
// A naive fill-and-modulo is biased whenever max does not evenly divide the
// byte range; the sampler discards draws above the largest exact multiple
// of max instead.
type Sampler struct {
	src Source
}

// NewSampler creates a Sampler over the given random source.
func NewSampler(src Source) *Sampler {
	return &Sampler{src: src}
}

// Int returns a uniformly distributed integer in [0, max).
// max == 1 short-circuits to 0 without consuming randomness.
func (s *Sampler) Int(max int) (int, error) {
	if max <= 0 {
		return 0, ErrInvalidMax
	}
	if max == 1 {
		return 0, nil
	}

	nbytes := bytesFor(max)
	limit := maxValidValue(max)

	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		raw, err := s.src.Fill(nbytes)
		if err != nil {
			return 0, err
		}
		v := beUint64(raw)
		if v <= limit {
			return int(v % uint64(max)), nil
		}
	}
	return 0, ErrRandomnessExhausted
}

// bytesFor returns ceil(ceil(log2(max)) / 8), the number of random bytes
// needed to cover [0, max).
func bytesFor(max int) int {
	bitsNeeded := bits.Len64(uint64(max - 1))
	if bitsNeeded == 0 {
		bitsNeeded = 1
	}
	return (bitsNeeded + 7) / 8
}

// maxValidValue is the acceptance boundary for rejection sampling:
// floor(256^bytesFor(max) / max) * max - 1. Draws above it fall in the
// partial remainder band and must be discarded to keep the modulo uniform.
func maxValidValue(max int) uint64 {
	m := uint64(max)
	nbytes := bytesFor(max)
	if nbytes == 8 {
		// 256^8 overflows uint64; compute the same boundary from 2^64-1.
		return math.MaxUint64 - (math.MaxUint64%m+1)%m
	}
	space := uint64(1) << (8 * nbytes)
	return space/m*m - 1
}

// beUint64 assembles bytes big-endian into an unsigned integer.
func beUint64(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

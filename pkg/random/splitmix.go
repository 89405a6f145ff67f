// Package random provides the replayable random stream used to resolve
// weapon fire.
//
// # Determinism
//
// The stream is a SplitMix64 generator. Given the same seed and the same
// number of skipped steps, every implementation draws the same value. No
// random state is ever persisted: resolvers reset the stream and skip to a
// position derived from the game state instead.
package random

import (
	"encoding/binary"
	"math"
)

const (
	increment = 0x9e3779b97f4a7c15
	mix1      = 0xbf58476d1ce4e5b9
	mix2      = 0x94d049bb133111eb
)

// SplitMix64 is a seeded random stream. It is not safe for concurrent use.
type SplitMix64 struct {
	seed  uint64
	state uint64
}

// New returns a stream positioned at seed.
func New(seed uint64) *SplitMix64 {
	return &SplitMix64{
		seed:  seed,
		state: seed,
	}
}

// FromKey seeds a stream with the first 8 bytes of key read as a big-endian
// integer. Shorter keys are zero padded on the right.
func FromKey(key []byte) *SplitMix64 {
	var b [8]byte
	copy(b[:], key)
	return New(binary.BigEndian.Uint64(b[:]))
}

// Seed returns the seed the stream was created with.
func (r *SplitMix64) Seed() uint64 {
	return r.seed
}

// Reset rewinds the stream to its seed.
func (r *SplitMix64) Reset() {
	r.state = r.seed
}

// Skip advances the stream by n steps, discarding the output.
func (r *SplitMix64) Skip(n uint32) {
	for i := uint32(0); i < n; i++ {
		r.Next()
	}
}

// Next returns the next raw 64-bit value.
func (r *SplitMix64) Next() uint64 {
	r.state += increment
	z := r.state
	z = (z ^ (z >> 30)) * mix1
	z = (z ^ (z >> 27)) * mix2
	return z ^ (z >> 31)
}

// NextDouble maps the next value into [0, 1] by dividing by the largest
// uint64. The top of the range is reachable only through float rounding of
// values within 2^10 of the maximum.
func (r *SplitMix64) NextDouble() float64 {
	return float64(r.Next()) / float64(math.MaxUint64)
}

// Range returns a value in [min, max). It returns min when the range is
// empty.
func (r *SplitMix64) Range(min, max int32) int32 {
	if max <= min {
		return min
	}
	span := uint64(int64(max) - int64(min))
	return int32(int64(r.Next()%span) + int64(min))
}

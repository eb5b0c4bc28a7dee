/*
Package xrand implements small deterministic pseudo-random bit
generators with byte-level state snapshot and restore.

The generators are not cryptographically secure. They exist to drive
randomized tests and benchmarks reproducibly and to supply priority
bits to randomized data structures.
*/
package xrand

import (
	"encoding"
	"encoding/binary"
	"fmt"
)

var (
	_ encoding.BinaryMarshaler   = (*SplitMix64)(nil)
	_ encoding.BinaryUnmarshaler = (*SplitMix64)(nil)
)

// SplitMix64 is a pseudo-random generator with 64 bits of state.
//
// It recovers quickly from poor seeds and is used to expand a single
// seed word into the larger states of the other generators.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 creates a generator seeded with seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Uint64 returns the next value in the stream.
func (s *SplitMix64) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15

	z := s.state
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb

	return z ^ z>>31
}

// MarshalBinary snapshots the generator state as 8 bytes.
func (s *SplitMix64) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, s.state)

	return buf, nil
}

// UnmarshalBinary restores a state snapshotted by MarshalBinary.
func (s *SplitMix64) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("xrand: invalid SplitMix64 state length %d", len(data))
	}

	s.state = binary.LittleEndian.Uint64(data)

	return nil
}

package xrand

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

var (
	_ encoding.BinaryMarshaler   = (*Xoshiro256)(nil)
	_ encoding.BinaryUnmarshaler = (*Xoshiro256)(nil)
)

// Xoshiro256 is the xoshiro256++ pseudo-random generator with 256 bits
// of state.
type Xoshiro256 struct {
	s [4]uint64
}

// NewXoshiro256 creates a generator with its state expanded from seed.
func NewXoshiro256(seed uint64) *Xoshiro256 {
	sm := NewSplitMix64(seed)

	x := &Xoshiro256{}
	for i := range x.s {
		x.s[i] = sm.Uint64()
	}

	return x
}

// Uint64 returns the next value in the stream.
func (x *Xoshiro256) Uint64() uint64 {
	result := bits.RotateLeft64(x.s[0]+x.s[3], 23) + x.s[0]

	t := x.s[1] << 17

	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]
	x.s[2] ^= t
	x.s[3] = bits.RotateLeft64(x.s[3], 45)

	return result
}

// Uint64n returns a value uniformly distributed in [0, n).
// It panics when n is zero.
func (x *Xoshiro256) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("xrand: invalid argument to Uint64n")
	}

	hi, _ := bits.Mul64(x.Uint64(), n)

	return hi
}

// Intn returns, as an int, a value uniformly distributed in [0, n).
// It panics when n is not positive.
func (x *Xoshiro256) Intn(n int) int {
	if n <= 0 {
		panic("xrand: invalid argument to Intn")
	}

	return int(x.Uint64n(uint64(n)))
}

// Float64 returns a value uniformly distributed in [0, 1).
func (x *Xoshiro256) Float64() float64 {
	return float64(x.Uint64()>>11) / (1 << 53)
}

// MarshalBinary snapshots the generator state as 32 bytes.
func (x *Xoshiro256) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 32)
	for i, s := range x.s {
		binary.LittleEndian.PutUint64(buf[8*i:], s)
	}

	return buf, nil
}

// UnmarshalBinary restores a state snapshotted by MarshalBinary.
func (x *Xoshiro256) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("xrand: invalid Xoshiro256 state length %d", len(data))
	}

	var s [4]uint64
	for i := range s {
		s[i] = binary.LittleEndian.Uint64(data[8*i:])
	}

	// The all-zero state is a fixed point of the transition function.
	if s[0]|s[1]|s[2]|s[3] == 0 {
		return errors.New("xrand: zero Xoshiro256 state")
	}

	x.s = s

	return nil
}

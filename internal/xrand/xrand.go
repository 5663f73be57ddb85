// Package xrand provides deterministic, SHAKE128-seeded uniform sampling.
// It exists so that the random-sampling tests in zn and extfield can be
// reproduced bit-for-bit from a seed, the way the kernel's signature code
// hashes a message into a uniform target modulo Q.
package xrand

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"
)

// Sampler draws uniform values from a SHAKE128 stream seeded once at
// construction. It is not safe for concurrent use.
type Sampler struct {
	xof io.Reader
}

// New seeds a Sampler from an arbitrary-length seed.
func New(seed []byte) *Sampler {
	h := sha3.NewShake128()
	h.Write(seed)
	return &Sampler{xof: h}
}

// Uint64 returns the next 8 bytes of the stream as a uint64.
func (s *Sampler) Uint64() uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(s.xof, buf[:]); err != nil {
		panic("xrand: shake128 stream exhausted: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Int63n returns a uniform value in [0, n) for n > 0, using rejection
// sampling against the largest multiple of n below 2^64 so the result is
// free of modulo bias.
func (s *Sampler) Int63n(n int64) int64 {
	if n <= 0 {
		panic("xrand: Int63n requires n > 0")
	}
	un := uint64(n)
	threshold := (^uint64(0) / un) * un
	for {
		v := s.Uint64()
		if v < threshold {
			return int64(v % un)
		}
	}
}

// Intn returns a uniform value in [0, n) for n > 0.
func (s *Sampler) Intn(n int) int { return int(s.Int63n(int64(n))) }

// Bytes fills buf with stream output.
func (s *Sampler) Bytes(buf []byte) {
	if _, err := io.ReadFull(s.xof, buf); err != nil {
		panic("xrand: shake128 stream exhausted: " + err.Error())
	}
}

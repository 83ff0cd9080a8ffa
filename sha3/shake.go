// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file defines the ShakeHash interface, and provides
// functions for creating SHAKE instances, as well as utility
// functions for hashing bytes to arbitrary-length output.
import (
	"fmt"
	"io"
)

// ShakeHash defines the interface to hash functions that
// support arbitrary-length output.
type ShakeHash interface {
	// Write absorbs more data into the hash's state. It panics if input is
	// written to it after output has been read from it.
	io.Writer

	// Read reads more output from the hash; reading affects the hash's
	// state. (ShakeHash.Read is thus very different from Hash.Sum)
	// It never returns an error.
	io.Reader

	// Pad pads an input with 0..1 padding and applies the permutation.
	// It is the basis of MAC modes built on the FIPS-202 primitives.
	Pad(dsbyte byte)

	// Clone returns a copy of the ShakeHash in its current state.
	Clone() ShakeHash

	// Reset resets the ShakeHash to its initial state.
	Reset()
}

func (d *digest) clone() *digest {
	dup := *d
	dup.buf = d.buf.Clone()
	if d.squeezing {
		dup.out = append([]byte(nil), d.out...)
	}
	return &dup
}

func (d *digest) Clone() ShakeHash {
	return d.clone()
}

// Read squeezes more output from the sponge; unlike Hash.Sum, it mutates
// the sponge's state, so output already read is never returned again.
func (d *digest) Read(p []byte) (int, error) {
	copy(p, d.squeeze(len(p)))
	return len(p), nil
}

// Pad pads with the given domain-separation byte instead of the one fixed
// at construction time, squeezing no output; it exists so MAC constructions
// built on ShakeHash can supply their own domain separation.
func (d *digest) Pad(dsbyte byte) {
	d.dsbyte = dsbyte
	d.pad()
}

func newXOF(rate int, dsbyte byte) *digest {
	return newDigest(rate, dsbyte, false, 0)
}

// NewShake128 creates a new SHAKE128 variable-output-length ShakeHash.
// Its generic security strength is 128 bits against all attacks if at
// least 32 bytes of its output are used.
func NewShake128() ShakeHash { return newXOF(168, shakePad) }

// NewShake256 creates a new SHAKE256 variable-output-length ShakeHash.
// Its generic security strength is 256 bits against all attacks if
// at least 64 bytes of its output are used.
func NewShake256() ShakeHash { return newXOF(136, shakePad) }

// NewRawShake128 creates a new RawSHAKE128 ShakeHash: SHAKE128 with the
// 0x07 domain-separation byte FIPS 202 reserves for internal, non-extendable
// use rather than the 0x1f byte SHAKE itself uses.
func NewRawShake128() ShakeHash { return newXOF(168, rawShakePad) }

// NewRawShake256 creates a new RawSHAKE256 ShakeHash.
func NewRawShake256() ShakeHash { return newXOF(136, rawShakePad) }

// NewShake returns a ShakeHash of the given generic security strength in
// bits. strength must be a positive multiple of 8 below 800 (so at most
// 792); the sponge's rate is 200 - 2*strength/8 bytes, which leaves a rate
// of at least 2 bytes.
func NewShake(strength int) (ShakeHash, error) {
	if strength <= 0 || strength > 796 || strength%8 != 0 {
		return nil, fmt.Errorf("%w: shake strength %d", ErrInvalidParameter, strength)
	}
	return newXOF(200-strength/4, shakePad), nil
}

// ShakeSum128 writes an arbitrary-length digest of data into hash.
func ShakeSum128(hash, data []byte) {
	h := NewShake128()
	h.Write(data)
	h.Read(hash)
}

// ShakeSum256 writes an arbitrary-length digest of data into hash.
func ShakeSum256(hash, data []byte) {
	h := NewShake256()
	h.Write(data)
	h.Read(hash)
}

// Shake128L hashes data to an output of the given bit length using SHAKE128,
// rounding up to a whole number of bytes.
func Shake128L(data []byte, bits int) []byte {
	out := make([]byte, (bits+7)/8)
	h := NewShake128()
	h.Write(data)
	h.Read(out)
	return out
}

// Shake256L hashes data to an output of the given bit length using SHAKE256.
func Shake256L(data []byte, bits int) []byte {
	out := make([]byte, (bits+7)/8)
	h := NewShake256()
	h.Write(data)
	h.Read(out)
	return out
}

// RawShake128L hashes data to an output of the given bit length using
// RawSHAKE128.
func RawShake128L(data []byte, bits int) []byte {
	out := make([]byte, (bits+7)/8)
	h := NewRawShake128()
	h.Write(data)
	h.Read(out)
	return out
}

// RawShake256L hashes data to an output of the given bit length using
// RawSHAKE256.
func RawShake256L(data []byte, bits int) []byte {
	out := make([]byte, (bits+7)/8)
	h := NewRawShake256()
	h.Write(data)
	h.Read(out)
	return out
}

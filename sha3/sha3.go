// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file builds the fixed-output SHA3-224/256/384/512 hash.Hash
// constructors and the generic Keccak entry point on top of the sponge
// engine in keccak_sponge.go; see doc.go for the package-level overview.
package sha3

import (
	"errors"
	"fmt"
	"hash"
)

// Domain-separation bytes appended by the multi-bitrate padding rule,
// per FIPS 202 section 6.1 and 6.2.
const (
	sha3Pad     byte = 0x06
	shakePad    byte = 0x1f
	rawShakePad byte = 0x07
)

// ErrInvalidParameter reports a Keccak/SHAKE parameter that falls outside
// what this package's sponge can represent.
var ErrInvalidParameter = errors.New("sha3: invalid parameter")

func newFixed(outputSize int, dsbyte byte) *digest {
	rate := keccakSpongeSize - 2*outputSize
	return newDigest(rate, dsbyte, true, outputSize)
}

// New224 creates a new SHA3-224 hash.Hash.
func New224() hash.Hash { return newFixed(28, sha3Pad) }

// New256 creates a new SHA3-256 hash.Hash.
func New256() hash.Hash { return newFixed(32, sha3Pad) }

// New384 creates a new SHA3-384 hash.Hash.
func New384() hash.Hash { return newFixed(48, sha3Pad) }

// New512 creates a new SHA3-512 hash.Hash.
func New512() hash.Hash { return newFixed(64, sha3Pad) }

// Keccak computes the generic Keccak hash of data: hashBits bits of output
// drawn from a sponge of capacity capBits bits, with domain-separation byte
// padByte mixed in before the multi-bitrate 10*1 padding. It rejects
// capacities that are not a positive, byte-aligned number of bits below
// 1600 (so at least one byte of rate remains), and output lengths that are
// not a positive, byte-aligned number of bits.
func Keccak(data []byte, hashBits, capBits int, padByte byte) ([]byte, error) {
	if capBits <= 0 || capBits%8 != 0 {
		return nil, fmt.Errorf("%w: keccak capacity %d bits", ErrInvalidParameter, capBits)
	}
	capBytes := capBits / 8
	rate := keccakSpongeSize - capBytes
	if rate <= 0 {
		return nil, fmt.Errorf("%w: keccak capacity %d bits leaves no usable rate", ErrInvalidParameter, capBits)
	}
	if hashBits <= 0 || hashBits%8 != 0 {
		return nil, fmt.Errorf("%w: keccak output length %d bits", ErrInvalidParameter, hashBits)
	}

	d := newDigest(rate, padByte, true, hashBits/8)
	d.Write(data)
	return d.Sum(nil), nil
}

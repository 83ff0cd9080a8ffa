// Package gocryptohash is a one-shot, algorithm-selecting front end over the
// streaming hash.Hash implementations in this module's md5, sha1, sha256,
// sha512, and sha3 subpackages. Reach for a subpackage's New() constructor
// directly when a streaming hash.Hash is needed; use these functions when
// only the final digest of an in-memory buffer matters.
package gocryptohash

import (
	"fmt"

	"github.com/weiz0823/gocryptohash/md5"
	"github.com/weiz0823/gocryptohash/sha1"
	"github.com/weiz0823/gocryptohash/sha256"
	"github.com/weiz0823/gocryptohash/sha3"
	"github.com/weiz0823/gocryptohash/sha512"
)

// ErrInvalidParameter is returned by the parametric functions in this
// package (SHA-512/t and the generic Keccak entry point) when called with
// an out-of-range argument.
var ErrInvalidParameter = sha512.ErrInvalidParameter

// MD5 returns the MD5 checksum of data.
func MD5(data []byte) []byte { return sum(md5.New(), data) }

// SHA1 returns the SHA-1 checksum of data.
func SHA1(data []byte) []byte { return sum(sha1.New(), data) }

// SHA224 returns the SHA-224 checksum of data.
func SHA224(data []byte) []byte { return sum(sha256.New224(), data) }

// SHA256 returns the SHA-256 checksum of data.
func SHA256(data []byte) []byte { return sum(sha256.New(), data) }

// SHA384 returns the SHA-384 checksum of data.
func SHA384(data []byte) []byte { return sum(sha512.New384(), data) }

// SHA512 returns the SHA-512 checksum of data.
func SHA512(data []byte) []byte { return sum(sha512.New(), data) }

// SHA512_224 returns the SHA-512/224 checksum of data.
func SHA512_224(data []byte) []byte { return sum(sha512.New512_224(), data) }

// SHA512_256 returns the SHA-512/256 checksum of data.
func SHA512_256(data []byte) []byte { return sum(sha512.New512_256(), data) }

// SHA512T returns the truncated SHA-512/t checksum of data, where t is the
// output width in bits (a positive multiple of 8, at most 512, and not 384).
func SHA512T(data []byte, t int) ([]byte, error) {
	h, err := sha512.New512T(t)
	if err != nil {
		return nil, err
	}
	return sum(h, data), nil
}

// SHA3_224 returns the SHA3-224 checksum of data.
func SHA3_224(data []byte) []byte { return sum(sha3.New224(), data) }

// SHA3_256 returns the SHA3-256 checksum of data.
func SHA3_256(data []byte) []byte { return sum(sha3.New256(), data) }

// SHA3_384 returns the SHA3-384 checksum of data.
func SHA3_384(data []byte) []byte { return sum(sha3.New384(), data) }

// SHA3_512 returns the SHA3-512 checksum of data.
func SHA3_512(data []byte) []byte { return sum(sha3.New512(), data) }

// Shake128 writes len(out) bytes of SHAKE128 output for data into out.
func Shake128(out, data []byte) { sha3.ShakeSum128(out, data) }

// Shake256 writes len(out) bytes of SHAKE256 output for data into out.
func Shake256(out, data []byte) { sha3.ShakeSum256(out, data) }

// Shake128L returns bits/8 (rounded up) bytes of SHAKE128 output for data.
func Shake128L(data []byte, bits int) []byte { return sha3.Shake128L(data, bits) }

// Shake256L returns bits/8 (rounded up) bytes of SHAKE256 output for data.
func Shake256L(data []byte, bits int) []byte { return sha3.Shake256L(data, bits) }

// RawShake128L returns bits/8 (rounded up) bytes of RawSHAKE128 output for data.
func RawShake128L(data []byte, bits int) []byte { return sha3.RawShake128L(data, bits) }

// RawShake256L returns bits/8 (rounded up) bytes of RawSHAKE256 output for data.
func RawShake256L(data []byte, bits int) []byte { return sha3.RawShake256L(data, bits) }

// Keccak computes the generic Keccak hash of data: hashBits bits of output
// from a sponge of capacity capBits, with domain-separation byte padByte.
func Keccak(data []byte, hashBits, capBits int, padByte byte) ([]byte, error) {
	out, err := sha3.Keccak(data, hashBits, capBits, padByte)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return out, nil
}

type writer interface {
	Write([]byte) (int, error)
	Sum([]byte) []byte
}

func sum(h writer, data []byte) []byte {
	h.Write(data)
	return h.Sum(nil)
}

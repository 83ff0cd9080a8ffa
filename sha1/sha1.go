// Package sha1 implements the SHA-1 hash algorithm as defined in FIPS 180-4.
//
// SHA-1 is cryptographically broken and must not be used for new security
// work; it is provided here for compatibility with legacy formats and
// protocols that still require it.
package sha1

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"github.com/weiz0823/gocryptohash/internal/blockbuf"
)

const (
	// Size is the length of a SHA-1 digest in bytes.
	Size = 20
	// BlockSize is the block size of SHA-1 in bytes.
	BlockSize = 64
)

const (
	h0 uint32 = 0x67452301
	h1 uint32 = 0xefcdab89
	h2 uint32 = 0x98badcfe
	h3 uint32 = 0x10325476
	h4 uint32 = 0xc3d2e1f0
)

const (
	k0 uint32 = 0x5a827999
	k1 uint32 = 0x6ed9eba1
	k2 uint32 = 0x8f1bbcdc
	k3 uint32 = 0xca62c1d6
)

type digest struct {
	h   [5]uint32
	buf *blockbuf.Buf
}

// New returns a new hash.Hash computing the SHA-1 checksum.
func New() hash.Hash {
	d := &digest{buf: blockbuf.New(BlockSize)}
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h = [5]uint32{h0, h1, h2, h3, h4}
	d.buf.Reset()
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.buf.Write(p, d.block)
	return n, nil
}

func (d *digest) Sum(in []byte) []byte {
	dup := *d
	dup.buf = d.buf.Clone()
	dup.buf.Pad(8, blockbuf.EncodeLengthBE64, dup.block)
	var sum [Size]byte
	for i, v := range dup.h {
		binary.BigEndian.PutUint32(sum[i*4:], v)
	}
	return append(in, sum[:]...)
}

func (d *digest) block(block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, dd, e := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]

	for i := 0; i < 80; i++ {
		var f uint32
		var k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & dd)
			k = k0
		case i < 40:
			f = b ^ c ^ dd
			k = k1
		case i < 60:
			f = (b & c) | (b & dd) | (c & dd)
			k = k2
		default:
			f = b ^ c ^ dd
			k = k3
		}
		temp := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		e = dd
		dd = c
		c = bits.RotateLeft32(b, 30)
		b = a
		a = temp
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
}

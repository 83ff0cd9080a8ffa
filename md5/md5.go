// Package md5 implements the MD5 hash algorithm as defined in RFC 1321.
//
// MD5 is cryptographically broken and must not be used for new security
// work; it is provided here for compatibility with legacy formats and
// protocols that still require it.
package md5

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"github.com/weiz0823/gocryptohash/internal/blockbuf"
)

const (
	// Size is the length of an MD5 digest in bytes.
	Size = 16
	// BlockSize is the block size of MD5 in bytes.
	BlockSize = 64
)

const (
	a0 uint32 = 0x67452301
	b0 uint32 = 0xefcdab89
	c0 uint32 = 0x98badcfe
	d0 uint32 = 0x10325476
)

var s = [64]uint32{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

var k = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee, 0xf57c0faf, 0x4787c62a,
	0xa8304613, 0xfd469501, 0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821, 0xf61e2562, 0xc040b340,
	0x265e5a51, 0xe9b6c7aa, 0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed, 0xa9e3e905, 0xfcefa3f8,
	0x676f02d9, 0x8d2a4c8a, 0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70, 0x289b7ec6, 0xeaa127fa,
	0xd4ef3085, 0x04881d05, 0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039, 0x655b59c3, 0x8f0ccc92,
	0xffeff47d, 0x85845dd1, 0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// digest represents the partial evaluation of an MD5 checksum.
type digest struct {
	a, b, c, d uint32
	buf        *blockbuf.Buf
}

// New returns a new hash.Hash computing the MD5 checksum.
func New() hash.Hash {
	d := &digest{buf: blockbuf.New(BlockSize)}
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.a, d.b, d.c, d.d = a0, b0, c0, d0
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
	dup.buf.Pad(8, blockbuf.EncodeLengthLE64, dup.block)
	var sum [Size]byte
	binary.LittleEndian.PutUint32(sum[0:], dup.a)
	binary.LittleEndian.PutUint32(sum[4:], dup.b)
	binary.LittleEndian.PutUint32(sum[8:], dup.c)
	binary.LittleEndian.PutUint32(sum[12:], dup.d)
	return append(in, sum[:]...)
}

// block runs one MD5 compression round over a 64-byte block.
func (d *digest) block(block []byte) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, d2 := d.a, d.b, d.c, d.d
	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & d2)
			g = i
		case i < 32:
			f = (d2 & b) | (^d2 & c)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ d2
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d2)
			g = (7 * i) % 16
		}
		f += a + k[i] + m[g]
		a, d2, c = d2, c, b
		b += bits.RotateLeft32(f, int(s[i]))
	}

	d.a += a
	d.b += b
	d.c += c
	d.d += d2
}

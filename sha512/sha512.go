// Package sha512 implements the SHA-384, SHA-512, SHA-512/224, SHA-512/256,
// and truncated SHA-512/t hash algorithms as defined in FIPS 180-4.
package sha512

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"math/bits"

	"github.com/weiz0823/gocryptohash/internal/blockbuf"
)

const (
	// Size is the length of a SHA-512 digest in bytes.
	Size = 64
	// Size384 is the length of a SHA-384 digest in bytes.
	Size384 = 48
	// Size512_224 is the length of a SHA-512/224 digest in bytes.
	Size512_224 = 28
	// Size512_256 is the length of a SHA-512/256 digest in bytes.
	Size512_256 = 32
	// BlockSize is the block size of every SHA-512 variant in bytes.
	BlockSize = 128
)

// ErrInvalidParameter reports an out-of-range or disallowed SHA-512/t width.
var ErrInvalidParameter = errors.New("sha512: invalid parameter")

var iv512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var iv384 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

var iv512_224 = [8]uint64{
	0x8c3d37c819544da2, 0x73e1996689dcd4d6, 0x1dfab7ae32ff9c82, 0x679dd514582f9fcf,
	0x0f6d2b697bd44da8, 0x77e36f7304c48942, 0x3f9d85a86a1d36c8, 0x1112e6ad91d692a1,
}

var iv512_256 = [8]uint64{
	0x22312194fc2bf72c, 0x9f555fa3c84c64c2, 0x2393b86b6f53b151, 0x963877195940eabd,
	0x96283ee2a88effe3, 0xbe5e1e2553863992, 0x2b0199fc2c85b8aa, 0x0eb72ddc81c52ca2,
}

// genericIV is the SHA-512/t generator IV: the SHA-512 IV with every word
// xored by 0xa5a5a5a5a5a5a5a5, per FIPS 180-4 section 5.3.6.
var genericIV = [8]uint64{
	0xcfac43c256196cad, 0x1ec20b20216f029e, 0x99cb56d75b315d8e, 0x00ea509ffab89354,
	0xf4abf7da08432774, 0x3ea0cd298e9bc9ba, 0xba267c0e5ee418ce, 0xfe4568bcb6db84dc,
}

var k = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

type digest struct {
	h       [8]uint64
	size    int // output size in bytes
	buf     *blockbuf.Buf
	iv      [8]uint64
}

func newDigest(iv [8]uint64, size int) *digest {
	d := &digest{iv: iv, size: size, buf: blockbuf.New(BlockSize)}
	d.Reset()
	return d
}

// New returns a new hash.Hash computing the SHA-512 checksum.
func New() hash.Hash { return newDigest(iv512, Size) }

// New384 returns a new hash.Hash computing the SHA-384 checksum.
func New384() hash.Hash { return newDigest(iv384, Size384) }

// New512_224 returns a new hash.Hash computing the SHA-512/224 checksum.
func New512_224() hash.Hash { return newDigest(iv512_224, Size512_224) }

// New512_256 returns a new hash.Hash computing the SHA-512/256 checksum.
func New512_256() hash.Hash { return newDigest(iv512_256, Size512_256) }

// New512T returns a new hash.Hash computing the truncated SHA-512/t
// checksum, where t is the output width in bits. t must be a positive
// multiple of 8, no greater than 512, and not equal to 384 (FIPS 180-4
// reserves SHA-512/384 to avoid collision with the untruncated SHA-384
// IV derivation).
func New512T(t int) (hash.Hash, error) {
	if t <= 0 || t > 512 || t%8 != 0 || t == 384 {
		return nil, fmt.Errorf("%w: sha512/%d", ErrInvalidParameter, t)
	}
	return newDigest(deriveIV(t), t/8), nil
}

// deriveIV computes the SHA-512/t initial value by hashing the ASCII
// string "SHA-512/<t>" under the generator IV, per FIPS 180-4 5.3.6.
func deriveIV(t int) [8]uint64 {
	d := newDigest(genericIV, Size)
	d.Write([]byte(fmt.Sprintf("SHA-512/%d", t)))
	full := d.Sum(nil)
	var iv [8]uint64
	for i := range iv {
		iv[i] = binary.BigEndian.Uint64(full[i*8:])
	}
	return iv
}

func (d *digest) Reset() {
	d.h = d.iv
	d.buf.Reset()
}

func (d *digest) Size() int      { return d.size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.buf.Write(p, d.block)
	return n, nil
}

func (d *digest) Sum(in []byte) []byte {
	dup := *d
	dup.buf = d.buf.Clone()
	dup.buf.Pad(16, blockbuf.EncodeLengthBE128, dup.block)
	var sum [Size]byte
	for i, v := range dup.h {
		binary.BigEndian.PutUint64(sum[i*8:], v)
	}
	return append(in, sum[:d.size]...)
}

func (d *digest) block(block []byte) {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint64(block[i*8:])
	}
	for i := 16; i < 80; i++ {
		s0 := bits.RotateLeft64(w[i-15], -1) ^ bits.RotateLeft64(w[i-15], -8) ^ (w[i-15] >> 7)
		s1 := bits.RotateLeft64(w[i-2], -19) ^ bits.RotateLeft64(w[i-2], -61) ^ (w[i-2] >> 6)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, dd, e, f, g, h := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7]

	for i := 0; i < 80; i++ {
		s1 := bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^ bits.RotateLeft64(e, -41)
		ch := (e & f) ^ (^e & g)
		t1 := h + s1 + ch + k[i] + w[i]
		s0 := bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^ bits.RotateLeft64(a, -39)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		h = g
		g = f
		f = e
		e = dd + t1
		dd = c
		c = b
		b = a
		a = t1 + t2
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
	d.h[5] += f
	d.h[6] += g
	d.h[7] += h
}

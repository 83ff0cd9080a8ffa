// Package blockbuf implements the block-buffering skeleton shared by every
// Merkle-Damgard engine in this module (MD5, SHA-1, SHA-2-32, SHA-2-64): it
// stages partial blocks, drives one compression call per full block, and
// tracks the total number of bytes absorbed so far as a two-word bit
// counter wide enough for the 128-bit SHA-2-64 length field.
//
// This generalizes the chunked-copy helper (read_from_arr) and the
// identical absorb loop duplicated across every *_HashUpdate function in
// the C sources this package was distilled from. The Keccak sponge in
// ../../sha3/keccak_sponge.go also uses a Buf as its input staging block.
package blockbuf

import (
	"encoding/binary"
	"math/bits"
)

// Buf is a fixed-capacity staging block plus a running bit-length counter.
// The zero value is not usable; construct with New.
type Buf struct {
	block  []byte
	used   int
	lenLo  uint64
	lenHi  uint64
}

// New returns a Buf backed by a block of the given size in bytes.
func New(blockSize int) *Buf {
	return &Buf{block: make([]byte, blockSize)}
}

// Size returns the configured block size in bytes.
func (b *Buf) Size() int { return len(b.block) }

// Used returns the number of valid bytes currently staged in the block.
func (b *Buf) Used() int { return b.used }

// Pending returns the staged bytes not yet compressed, aliasing the
// internal buffer; callers must not retain it past the next Write/Reset.
func (b *Buf) Pending() []byte { return b.block[:b.used] }

// BitLen returns the total number of bits absorbed so far, as a
// (high, low) pair forming a 128-bit counter.
func (b *Buf) BitLen() (hi, lo uint64) { return b.lenHi, b.lenLo }

// Reset clears the staged block and the bit counter.
func (b *Buf) Reset() {
	for i := range b.block {
		b.block[i] = 0
	}
	b.used = 0
	b.lenLo, b.lenHi = 0, 0
}

// Write absorbs p, invoking compress once per full block accumulated. Any
// trailing residue shorter than the block size is left staged for the next
// call. compress must not retain the slice it is given.
func (b *Buf) Write(p []byte, compress func(block []byte)) {
	b.addBits(uint64(len(p)))

	if b.used > 0 {
		n := copy(b.block[b.used:], p)
		b.used += n
		p = p[n:]
		if b.used == len(b.block) {
			compress(b.block)
			b.used = 0
		}
	}
	for len(p) >= len(b.block) {
		compress(p[:len(b.block)])
		p = p[len(b.block):]
	}
	if len(p) > 0 {
		b.used = copy(b.block, p)
	}
}

func (b *Buf) addBits(byteCount uint64) {
	// byteCount*8 cannot overflow uint64 for any slice realizable in a
	// single Go process (len() is bounded by a signed 64-bit int).
	lo, carry := bits.Add64(b.lenLo, byteCount<<3, 0)
	b.lenLo = lo
	b.lenHi += carry + (byteCount >> 61)
}

// Clone returns an independent copy of b, so a hash.Hash's Sum method can
// finalize a duplicate without disturbing the live, still-writable state.
func (b *Buf) Clone() *Buf {
	nb := &Buf{
		block: make([]byte, len(b.block)),
		used:  b.used,
		lenLo: b.lenLo,
		lenHi: b.lenHi,
	}
	copy(nb.block, b.block)
	return nb
}

// Pad applies the Merkle-Damgard padding shared by MD5, SHA-1, and both
// SHA-2 families: a single 0x80 byte, zero fill, and a length field of
// lengthFieldSize bytes written by encodeLength. When the 0x80 byte and
// the length field don't both fit in the block currently staged, the
// partially padded block is compressed first and padding continues into a
// fresh zero block, exactly as both families require at the "not enough
// room for the length field" boundary. compress runs once (common case) or
// twice (overflow case). Pad must be called at most once between Writes.
func (b *Buf) Pad(lengthFieldSize int, encodeLength func(hi, lo uint64, dst []byte), compress func(block []byte)) {
	blockSize := len(b.block)
	b.block[b.used] = 0x80
	for i := b.used + 1; i < blockSize; i++ {
		b.block[i] = 0
	}
	if blockSize-b.used-1 < lengthFieldSize {
		compress(b.block)
		for i := range b.block {
			b.block[i] = 0
		}
	}
	encodeLength(b.lenHi, b.lenLo, b.block[blockSize-lengthFieldSize:])
	compress(b.block)
	b.used = 0
}

// EncodeLengthLE64 writes the low 64 bits of the absorbed bit-length as an
// 8-byte little-endian field, MD5's length-encoding convention.
func EncodeLengthLE64(_, lo uint64, dst []byte) {
	binary.LittleEndian.PutUint64(dst, lo)
}

// EncodeLengthBE64 writes the low 64 bits of the absorbed bit-length as an
// 8-byte big-endian field, SHA-1 and SHA-2-32's length-encoding convention.
func EncodeLengthBE64(_, lo uint64, dst []byte) {
	binary.BigEndian.PutUint64(dst, lo)
}

// EncodeLengthBE128 writes the full 128-bit absorbed bit-length as a
// 16-byte big-endian field, SHA-2-64's length-encoding convention.
func EncodeLengthBE128(hi, lo uint64, dst []byte) {
	binary.BigEndian.PutUint64(dst[:8], hi)
	binary.BigEndian.PutUint64(dst[8:], lo)
}

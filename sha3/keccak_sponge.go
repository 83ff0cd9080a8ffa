package sha3

import (
	"encoding/binary"

	"github.com/weiz0823/gocryptohash/internal/blockbuf"
)

const (
	keccakSpongeSize = 200 // width of the Keccak-f[1600] state, in bytes
)

// digest is a Keccak sponge instance: a 1600-bit permutation state plus a
// rate-sized staging block reused from the Merkle-Damgard hash packages'
// internal/blockbuf.Buf. Absorbing a full rate of input is a "stage bytes,
// then run one permutation call" operation with the same shape as a
// Merkle-Damgard compression step, so that staging buffer drives absorbing;
// squeezing draws from a separate rate-sized output block (out).
type digest struct {
	a   [25]uint64
	buf *blockbuf.Buf

	rate   int
	dsbyte byte

	fixedOutput bool
	outputSize  int

	squeezing bool
	out       []byte // the most recently permuted rate-sized output block
	outPos    int    // how much of out has already been delivered
	produced  int    // total output bytes delivered, for fixedOutput truncation
}

func newDigest(rate int, dsbyte byte, fixedOutput bool, outputSize int) *digest {
	return &digest{
		buf:         blockbuf.New(rate),
		rate:        rate,
		dsbyte:      dsbyte,
		fixedOutput: fixedOutput,
		outputSize:  outputSize,
	}
}

// xorBytesFrom xors buf into the low words of dqw, little-endian, zero
// padding the final partial word when len(buf) isn't a multiple of 8.
func xorBytesFrom(dqw []uint64, buf []byte) {
	words := len(buf) / 8
	for i := 0; i < words; i++ {
		dqw[i] ^= binary.LittleEndian.Uint64(buf[i*8:])
	}
	if rem := len(buf) % 8; rem != 0 {
		var last [8]byte
		copy(last[:], buf[words*8:])
		dqw[words] ^= binary.LittleEndian.Uint64(last[:])
	}
}

// copyBytesInto copies the low len(buf) bytes of dqw into buf, little-endian,
// taking the leading bytes of the next word when len(buf) isn't a multiple
// of 8.
func copyBytesInto(buf []byte, dqw []uint64) {
	words := len(buf) / 8
	for i := 0; i < words; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:(i+1)*8], dqw[i])
	}
	if rem := len(buf) % 8; rem != 0 {
		var last [8]byte
		binary.LittleEndian.PutUint64(last[:], dqw[words])
		copy(buf[words*8:], last[:rem])
	}
}

// BlockSize returns the rate of the sponge underlying this hash function.
func (d *digest) BlockSize() int { return d.rate }

// Size returns the output size of the hash function in bytes; it is only
// meaningful for the fixed-output SHA3-224/256/384/512 constructors.
func (d *digest) Size() int { return d.outputSize }

// Reset clears the sponge state and staged buffer, and returns the digest
// to the absorbing direction.
func (d *digest) Reset() {
	for i := range d.a {
		d.a[i] = 0
	}
	d.buf.Reset()
	d.squeezing = false
	d.out = nil
	d.outPos = 0
	d.produced = 0
}

// absorbBlock xors one full rate-sized block into the permutation state and
// runs the permutation; it is the compression callback driving d.buf.
func (d *digest) absorbBlock(block []byte) {
	xorBytesFrom(d.a[:], block)
	keccakF(&d.a)
}

// xorByteAt xors a single byte into the state at byte offset pos, matching
// the little-endian lane layout xorBytesFrom/copyBytesInto use.
func (d *digest) xorByteAt(pos int, b byte) {
	d.a[pos/8] ^= uint64(b) << (uint(pos%8) * 8)
}

// Write absorbs p into the sponge, permuting once per full rate-sized block
// accumulated. It panics if called after output has already been squeezed,
// matching ShakeHash's documented contract.
func (d *digest) Write(p []byte) (int, error) {
	if d.squeezing {
		panic("sha3: Write after Read or Pad")
	}
	d.buf.Write(p, d.absorbBlock)
	return len(p), nil
}

// pad applies the multi-bitrate 10*1 padding rule: the bytes still pending
// in d.buf are xored into the state along with the domain-separation byte
// and the rate's terminal bit, the permutation runs once more, and the
// sponge switches to squeezing, caching the resulting output block.
func (d *digest) pad() {
	xorBytesFrom(d.a[:], d.buf.Pending())
	d.xorByteAt(d.buf.Used(), d.dsbyte)
	d.xorByteAt(d.rate-1, 0x80)
	keccakF(&d.a)

	d.squeezing = true
	d.out = make([]byte, d.rate)
	copyBytesInto(d.out, d.a[:])
	d.outPos = 0
}

// squeeze draws n bytes of output, padding first if still absorbing and
// permuting again each time the cached output block runs dry. A
// fixed-output digest never returns more than outputSize bytes in total
// across its lifetime.
func (d *digest) squeeze(n int) []byte {
	if !d.squeezing {
		d.pad()
	}
	if d.fixedOutput {
		if remaining := d.outputSize - d.produced; n > remaining {
			n = remaining
		}
	}
	if n < 0 {
		n = 0
	}

	out := make([]byte, n)
	got := 0
	for got < n {
		if d.outPos == len(d.out) {
			keccakF(&d.a)
			copyBytesInto(d.out, d.a[:])
			d.outPos = 0
		}
		c := copy(out[got:], d.out[d.outPos:])
		d.outPos += c
		got += c
	}
	d.produced += got
	return out
}

// Sum appends the digest's final output to in without disturbing a live
// instance's ability to keep absorbing further writes.
func (d *digest) Sum(in []byte) []byte {
	dup := *d
	dup.buf = d.buf.Clone()
	if d.squeezing {
		dup.out = append([]byte(nil), d.out...)
	}
	return append(in, dup.squeeze(dup.outputSize)...)
}

// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"encoding/hex"
	"hash"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// shortKeccakVectors carries the FIPS 202 / Keccak website's 8-bit test
// input (0xCC) and its known digests under each fixed SHA3 variant.
var shortKeccakVectors = map[string]string{
	"SHA3-224": "DF70ADC49B2E76EEE3A6931B93FA41841C3AF2CDF5B32A18B5478C39",
	"SHA3-256": "677035391CD3701293D385F037BA32796252BB7CE180B00B582DD9B20AAAD7F0",
	"SHA3-384": "5EE7F374973CD4BB3DC41E3081346798497FF6E36CB9352281DFE07D07FC530CA9AD8EF7AAD56EF5D41BE83D5E543807",
	"SHA3-512": "3939FCC8B57B63612542DA31A834E5DCC36E2EE0F652AC72E02624FA2E5ADEECC7DD6BB3580224B4D6138706FC6E80597B528051230B00621CC2B22999EAA205",
}

func fixedDigests() map[string]func() hash.Hash {
	return map[string]func() hash.Hash{
		"SHA3-224": New224,
		"SHA3-256": New256,
		"SHA3-384": New384,
		"SHA3-512": New512,
	}
}

func TestShortVectors(t *testing.T) {
	for name, newFn := range fixedDigests() {
		h := newFn()
		h.Write([]byte{0xCC})
		got := strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
		require.Equal(t, shortKeccakVectors[name], got, name)
	}
}

func sequentialBytes(size int) []byte {
	result := make([]byte, size)
	for i := range result {
		result[i] = byte(i)
	}
	return result
}

// TestUnalignedWrite checks that writing in an arbitrary small-chunk pattern
// produces the same digest as a single bulk write, for every fixed variant
// and both SHAKE functions.
func TestUnalignedWrite(t *testing.T) {
	buf := sequentialBytes(0x10000)
	offsets := [17]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 1}

	writeChunked := func(w interface{ Write([]byte) (int, error) }) {
		for i := 0; i < len(buf); {
			for _, j := range offsets {
				if i >= len(buf) {
					break
				}
				n := j
				if i+n > len(buf) {
					n = len(buf) - i
				}
				w.Write(buf[i : i+n])
				i += n
			}
		}
	}

	for name, newFn := range fixedDigests() {
		want := func() []byte { h := newFn(); h.Write(buf); return h.Sum(nil) }()
		h := newFn()
		writeChunked(h)
		require.Equal(t, want, h.Sum(nil), name)
	}

	for name, newFn := range map[string]func() ShakeHash{"SHAKE128": NewShake128, "SHAKE256": NewShake256} {
		want := make([]byte, 64)
		h := newFn()
		h.Write(buf)
		h.Read(want)

		h2 := newFn()
		writeChunked(h2)
		got := make([]byte, 64)
		h2.Read(got)
		require.Equal(t, want, got, name)
	}
}

func TestAppend(t *testing.T) {
	d := New224()
	buf := make([]byte, 2, 64)
	d.Write([]byte{0xcc})
	buf = d.Sum(buf)
	require.Equal(t, "0000"+strings.ToLower(shortKeccakVectors["SHA3-224"]), hex.EncodeToString(buf))
}

func TestResetClearsState(t *testing.T) {
	h := New256()
	h.Write([]byte("some input"))
	h.Reset()
	h.Write([]byte{0xcc})
	got := strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
	require.Equal(t, shortKeccakVectors["SHA3-256"], got)
}

func TestGenericKeccakMatchesFixedConstructor(t *testing.T) {
	// SHA3-256 is exactly Keccak with a 512-bit capacity, 256-bit output,
	// and the 0x06 domain-separation byte.
	data := []byte("the quick brown fox")
	got, err := Keccak(data, 256, 512, sha3Pad)
	require.NoError(t, err)

	h := New256()
	h.Write(data)
	require.Equal(t, h.Sum(nil), got)
}

func TestKeccakRejectsBadParameters(t *testing.T) {
	_, err := Keccak(nil, 256, 0, sha3Pad)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Keccak(nil, 256, 7, sha3Pad)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Keccak(nil, 7, 512, sha3Pad)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Keccak(nil, 256, 1600, sha3Pad)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func BenchmarkPermutationFunction(b *testing.B) {
	b.SetBytes(int64(200))
	var lanes [25]uint64
	for i := 0; i < b.N; i++ {
		keccakF(&lanes)
	}
}

func benchmarkBulkHash(b *testing.B, h hash.Hash) {
	b.StopTimer()
	h.Reset()
	size := 1 << 14
	data := sequentialBytes(size)
	b.SetBytes(int64(size))
	b.StartTimer()

	var digest []byte
	for i := 0; i < b.N; i++ {
		h.Write(data)
		digest = h.Sum(digest[:0])
	}
	b.StopTimer()
}

func BenchmarkBulkSha3_512(b *testing.B) { benchmarkBulkHash(b, New512()) }
func BenchmarkBulkSha3_384(b *testing.B) { benchmarkBulkHash(b, New384()) }
func BenchmarkBulkSha3_256(b *testing.B) { benchmarkBulkHash(b, New256()) }
func BenchmarkBulkSha3_224(b *testing.B) { benchmarkBulkHash(b, New224()) }

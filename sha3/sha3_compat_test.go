package sha3

import (
	"bytes"
	"math/rand"
	"testing"

	xsha3 "golang.org/x/crypto/sha3"
)

// TestCompatWithXCrypto cross-checks this package's output against
// golang.org/x/crypto/sha3 on randomized inputs, as an oracle independent of
// this package's own hand-written Keccak-f permutation. SHA3-256 and
// SHAKE128 get 256 randomized draws each, varying length from 0 to 4096
// bytes; SHA3-224/384/512 get a fixed list of lengths (135-137 straddle the
// 136-byte rate of SHA3-256 and SHAKE256, 168 is SHAKE128's rate, and 200
// is the full state width).
func TestCompatWithXCrypto(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lengths := []int{0, 1, 135, 136, 137, 168, 200, 1000, 4096}

	for _, n := range lengths {
		data := make([]byte, n)
		rng.Read(data)

		if got, want := sum(New224(), data), sum(xsha3.New224(), data); !bytes.Equal(got, want) {
			t.Errorf("SHA3-224 n=%d: got %x want %x", n, got, want)
		}
		if got, want := sum(New384(), data), sum(xsha3.New384(), data); !bytes.Equal(got, want) {
			t.Errorf("SHA3-384 n=%d: got %x want %x", n, got, want)
		}
		if got, want := sum(New512(), data), sum(xsha3.New512(), data); !bytes.Equal(got, want) {
			t.Errorf("SHA3-512 n=%d: got %x want %x", n, got, want)
		}
	}

	for i := 0; i < 256; i++ {
		n := rng.Intn(4097)
		data := make([]byte, n)
		rng.Read(data)

		if got, want := sum(New256(), data), sum(xsha3.New256(), data); !bytes.Equal(got, want) {
			t.Errorf("SHA3-256 n=%d: got %x want %x", n, got, want)
		}

		gotShake := make([]byte, 64)
		h := NewShake128()
		h.Write(data)
		h.Read(gotShake)

		wantShake := make([]byte, 64)
		xh := xsha3.NewShake128()
		xh.Write(data)
		xh.Read(wantShake)

		if !bytes.Equal(gotShake, wantShake) {
			t.Errorf("SHAKE128 n=%d: got %x want %x", n, gotShake, wantShake)
		}
	}
}

func sum(h interface {
	Write([]byte) (int, error)
	Sum([]byte) []byte
}, data []byte) []byte {
	h.Write(data)
	return h.Sum(nil)
}

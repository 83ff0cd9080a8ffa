package sha1

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func sum(data []byte) []byte {
	h := New()
	h.Write(data)
	return h.Sum(nil)
}

func TestVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
	}
	for _, c := range cases {
		got := hex.EncodeToString(sum([]byte(c.in)))
		require.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestMillionA(t *testing.T) {
	msg := bytes.Repeat([]byte{'a'}, 1000000)
	got := hex.EncodeToString(sum(msg))
	require.Equal(t, "34aa973cd4c4daa4f61eeb2bdbad27316534016f", got)
}

func TestChunkingInvariance(t *testing.T) {
	msg := bytes.Repeat([]byte("0123456789abcdef"), 20) // 320 bytes
	want := sum(msg)

	for _, stride := range []int{1, 7, BlockSize - 1, BlockSize, BlockSize + 1} {
		h := New()
		for i := 0; i < len(msg); {
			n := stride
			if i+n > len(msg) {
				n = len(msg) - i
			}
			h.Write(msg[i : i+n])
			i += n
		}
		require.Equal(t, want, h.Sum(nil), "stride %d", stride)
	}
}

func TestResetAndReuse(t *testing.T) {
	h := New()
	h.Write([]byte("abc"))
	first := h.Sum(nil)
	require.Equal(t, sum([]byte("abc")), first)

	h.Reset()
	h.Write([]byte("message digest"))
	second := h.Sum(nil)
	require.Equal(t, sum([]byte("message digest")), second)
}

func TestLengthBoundaries(t *testing.T) {
	for _, n := range []int{BlockSize - 9, BlockSize - 8, BlockSize, BlockSize + 1} {
		msg := bytes.Repeat([]byte{0x61}, n)
		h := New()
		h.Write(msg)
		got := h.Sum(nil)
		require.Len(t, got, Size)
		require.Equal(t, sum(msg), got, "n=%d", n)
	}
}

func TestSumDoesNotMutateState(t *testing.T) {
	h := New()
	h.Write([]byte("abc"))
	first := h.Sum(nil)
	second := h.Sum(nil)
	require.Equal(t, first, second)
	h.Write([]byte("def"))
	require.NotEqual(t, first, h.Sum(nil))
}

package md5

import (
	"bytes"
	"encoding/hex"
	"strings"
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
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
		{"abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"},
	}
	for _, c := range cases {
		got := hex.EncodeToString(sum([]byte(c.in)))
		require.Equal(t, c.want, got, "input %q", c.in)
	}
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
		// Cross-check against feeding the same message in one shot via sum().
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

func TestKnownAnswerUppercase(t *testing.T) {
	got := strings.ToUpper(hex.EncodeToString(sum([]byte("abc"))))
	require.Equal(t, "900150983CD24FB0D6963F7D28E17F72", got)
}

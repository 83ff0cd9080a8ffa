package blockbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteChunking(t *testing.T) {
	for _, blockSize := range []int{64, 128} {
		var got []byte
		buf := New(blockSize)
		compress := func(block []byte) {
			cp := make([]byte, len(block))
			copy(cp, block)
			got = append(got, cp...)
		}

		msg := make([]byte, blockSize*3+blockSize/2)
		for i := range msg {
			msg[i] = byte(i)
		}

		// Feed the message in uneven chunks straddling block boundaries.
		for i := 0; i < len(msg); {
			n := 1 + (i % 7)
			if i+n > len(msg) {
				n = len(msg) - i
			}
			buf.Write(msg[i:i+n], compress)
			i += n
		}

		require.Equal(t, msg[:blockSize*3], got)
		require.Equal(t, blockSize/2, buf.Used())
		require.Equal(t, msg[blockSize*3:], buf.Pending())

		hi, lo := buf.BitLen()
		require.Equal(t, uint64(0), hi)
		require.Equal(t, uint64(len(msg))*8, lo)
	}
}

func TestPadOverflowBoundary(t *testing.T) {
	// blockSize=64, lengthFieldSize=8: padding overflows to an extra block
	// once used >= 56 (no room left for 0x80 + 8-byte length in-block).
	for used := 54; used <= 58; used++ {
		var blocks [][]byte
		buf := New(64)
		record := func(block []byte) {
			blocks = append(blocks, append([]byte(nil), block...))
		}
		buf.Write(make([]byte, used), record)
		require.Equal(t, used, buf.Used())

		buf.Pad(8, EncodeLengthBE64, record)

		wantExtra := used >= 56
		gotExtra := len(blocks) == 2
		require.Equal(t, wantExtra, gotExtra, "used=%d", used)
	}
}

func TestReset(t *testing.T) {
	buf := New(64)
	buf.Write([]byte("hello"), func([]byte) { t.Fatal("unexpected compress") })
	buf.Reset()
	require.Equal(t, 0, buf.Used())
	hi, lo := buf.BitLen()
	require.Equal(t, uint64(0), hi)
	require.Equal(t, uint64(0), lo)
}

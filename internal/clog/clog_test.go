package clog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamHandlerFormatsLevelAndMessage(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetHandler(StreamHandler(&buf, TerminalFormat(false)))

	l.Info("hashing complete", "algorithm", "sha256", "bytes", 128)

	out := buf.String()
	require.Contains(t, out, "[info]")
	require.Contains(t, out, "hashing complete")
	require.Contains(t, out, "algorithm=sha256")
	require.Contains(t, out, "bytes=128")
}

func TestNewInheritsContext(t *testing.T) {
	var buf bytes.Buffer
	l := New("component", "hashsum")
	l.SetHandler(StreamHandler(&buf, TerminalFormat(false)))

	child := l.New("algorithm", "md5")
	child.Warn("legacy algorithm requested")

	out := buf.String()
	require.Contains(t, out, "component=hashsum")
	require.Contains(t, out, "algorithm=md5")
}

func TestLevelString(t *testing.T) {
	cases := map[Lvl]string{
		LvlCrit: "crit", LvlError: "eror", LvlWarn: "warn",
		LvlInfo: "info", LvlDebug: "dbug",
	}
	for lvl, want := range cases {
		require.Equal(t, want, lvl.String())
	}
}

func TestTerminalFormatNoTrailingContextWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetHandler(StreamHandler(&buf, TerminalFormat(false)))
	l.Debug("starting up")
	// With no ctx pairs, "caller=..." is the only "=" in the line.
	require.Equal(t, 1, strings.Count(buf.String(), "="))
}

func TestTerminalFormatIncludesCaller(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetHandler(StreamHandler(&buf, TerminalFormat(false)))
	l.Info("hashing complete")
	require.Contains(t, buf.String(), "caller=clog_test.go:")
}

// Package clog provides the leveled, structured logger used by the hashsum
// and shakesum command-line front ends. It mirrors the shape of go-ethereum's
// log15-derived logger: a Logger writes key/value Records through a
// composable Handler, caller information comes from github.com/go-stack/stack,
// and terminal output is colorized with github.com/fatih/color over an
// isatty-aware writer from github.com/mattn/go-colorable.
package clog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
)

// Lvl is a logging severity level, ordered from most to least severe.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
)

func (l Lvl) String() string {
	switch l {
	case LvlCrit:
		return "crit"
	case LvlError:
		return "eror"
	case LvlWarn:
		return "warn"
	case LvlInfo:
		return "info"
	case LvlDebug:
		return "dbug"
	default:
		return "????"
	}
}

var levelColor = map[Lvl]color.Attribute{
	LvlCrit:  color.FgMagenta,
	LvlError: color.FgRed,
	LvlWarn:  color.FgYellow,
	LvlInfo:  color.FgGreen,
	LvlDebug: color.FgCyan,
}

// Record is what a Logger asks its Handler to write.
type Record struct {
	Time time.Time
	Lvl  Lvl
	Msg  string
	Ctx  []interface{}
	Call stack.Call
}

// Handler writes a Record somewhere, in some format.
type Handler interface {
	Log(r *Record) error
}

type funcHandler func(r *Record) error

func (h funcHandler) Log(r *Record) error { return h(r) }

// SyncHandler serializes concurrent Log calls with a mutex, necessary for
// any Handler backed by a single io.Writer.
func SyncHandler(h Handler) Handler {
	var mu sync.Mutex
	return funcHandler(func(r *Record) error {
		mu.Lock()
		defer mu.Unlock()
		return h.Log(r)
	})
}

// Format renders a Record to bytes.
type Format interface {
	Format(r *Record) []byte
}

type formatFunc func(r *Record) []byte

func (f formatFunc) Format(r *Record) []byte { return f(r) }

// TerminalFormat renders a Record the way an interactive terminal session
// wants to read it: timestamped, followed by key=value context and the
// caller, and colorized by level when useColor is true.
func TerminalFormat(useColor bool) Format {
	return formatFunc(func(r *Record) []byte {
		level := r.Lvl.String()
		if useColor {
			level = color.New(levelColor[r.Lvl]).Sprint(level)
		}
		line := fmt.Sprintf("%s[%s] %s", r.Time.Format("15:04:05.000"), level, r.Msg)
		for i := 0; i+1 < len(r.Ctx); i += 2 {
			line += fmt.Sprintf(" %v=%v", r.Ctx[i], r.Ctx[i+1])
		}
		line += fmt.Sprintf(" caller=%v", r.Call)
		return append([]byte(line), '\n')
	})
}

// StreamHandler writes formatted Records to wr, synchronized for
// concurrent use.
func StreamHandler(wr io.Writer, fmtr Format) Handler {
	h := funcHandler(func(r *Record) error {
		_, err := wr.Write(fmtr.Format(r))
		return err
	})
	return SyncHandler(h)
}

// Logger writes key/value Records to its Handler at a given severity.
type Logger interface {
	New(ctx ...interface{}) Logger
	SetHandler(h Handler)

	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

type logger struct {
	ctx []interface{}
	h   *swapHandler
}

type swapHandler struct {
	mu sync.Mutex
	h  Handler
}

func (s *swapHandler) Log(r *Record) error {
	s.mu.Lock()
	h := s.h
	s.mu.Unlock()
	return h.Log(r)
}

func (s *swapHandler) Swap(h Handler) {
	s.mu.Lock()
	s.h = h
	s.mu.Unlock()
}

// New returns a new Logger with the given context, derived from the root
// logger.
func New(ctx ...interface{}) Logger {
	return root.New(ctx...)
}

// Root returns the package's default Logger.
func Root() Logger { return root }

var root = &logger{ctx: nil, h: &swapHandler{h: StreamHandler(colorableStderr(), TerminalFormat(color.NoColor == false))}}

func colorableStderr() io.Writer {
	return colorable.NewColorable(os.Stderr)
}

func (l *logger) New(ctx ...interface{}) Logger {
	child := &logger{ctx: append(append([]interface{}{}, l.ctx...), ctx...), h: new(swapHandler)}
	child.SetHandler(l.h)
	return child
}

func (l *logger) SetHandler(h Handler) { l.h.Swap(h) }

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}) {
	r := &Record{
		Time: time.Now(),
		Lvl:  lvl,
		Msg:  msg,
		Ctx:  append(append([]interface{}{}, l.ctx...), ctx...),
		Call: stack.Caller(2),
	}
	l.h.Log(r)
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(msg, LvlDebug, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(msg, LvlDebug, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(msg, LvlInfo, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(msg, LvlWarn, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(msg, LvlError, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(msg, LvlCrit, ctx)
	os.Exit(1)
}

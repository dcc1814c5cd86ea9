package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

type handler struct {
	W     io.Writer
	Level Level
	Color bool

	mu *sync.Mutex // shared between derived handlers

	name  []byte
	attrs []byte
	group []byte
}

var _ slog.Handler = (*handler)(nil)

func (h *handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.Level
}

var (
	_reset = "\x1b[0m"
	_bold  = "\x1b[1m"
	_dim   = "\x1b[2m"

	_boldDim          = "\x1b[2;1m"
	_brightBoldRed    = "\x1b[91;1m"
	_brightBoldYellow = "\x1b[93;1m"
	_brightBoldGreen  = "\x1b[92;1m"
)

// esc appends the escape sequence only if colors are enabled.
func (h *handler) esc(buf []byte, code string) []byte {
	if !h.Color {
		return buf
	}
	return append(buf, code...)
}

func (h *handler) Handle(_ context.Context, rec slog.Record) error {
	buf := *getBuf()
	defer putBuf(&buf)

	switch {
	case rec.Level >= slog.LevelError:
		buf = h.esc(buf, _brightBoldRed)
	case rec.Level >= slog.LevelWarn:
		buf = h.esc(buf, _brightBoldYellow)
	case rec.Level >= slog.LevelInfo:
		buf = h.esc(buf, _brightBoldGreen)
	default:
		buf = h.esc(buf, _boldDim)
	}
	buf = append(buf, rec.Level.String()...)
	buf = h.esc(buf, _reset)
	buf = append(buf, ' ')

	if len(h.name) > 0 {
		buf = append(buf, '[')
		buf = append(buf, h.name...)
		buf = append(buf, "] "...)
	}

	buf = h.esc(buf, _bold)
	buf = append(buf, strings.TrimRightFunc(rec.Message, unicode.IsSpace)...)
	buf = h.esc(buf, _reset)

	if len(h.attrs) > 0 {
		buf = append(buf, ' ')
		buf = append(buf, h.attrs...)
	}

	rec.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, h.group, a)
		return true
	})

	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.W.Write(buf)
	return err
}

func (h *handler) appendAttr(buf []byte, group []byte, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		group := group
		if len(group) > 0 && len(a.Key) > 0 {
			group = append(group, '.')
		}
		group = append(group, a.Key...)
		for _, a := range a.Value.Group() {
			buf = h.appendAttr(buf, group, a)
		}
		return buf
	}

	if len(buf) > 0 && buf[len(buf)-1] != ' ' {
		buf = append(buf, ' ')
	}

	buf = h.esc(buf, _dim)
	if len(group) > 0 {
		buf = append(buf, group...)
		buf = append(buf, '.')
	}
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	buf = h.esc(buf, _reset)

	switch a.Value.Kind() {
	case slog.KindString:
		buf = appendString(buf, a.Value.String())

	case slog.KindInt64:
		buf = strconv.AppendInt(buf, a.Value.Int64(), 10)

	case slog.KindUint64:
		buf = strconv.AppendUint(buf, a.Value.Uint64(), 10)

	case slog.KindFloat64:
		buf = strconv.AppendFloat(buf, a.Value.Float64(), 'f', -1, 64)

	case slog.KindBool:
		buf = strconv.AppendBool(buf, a.Value.Bool())

	case slog.KindDuration:
		buf = append(buf, a.Value.Duration().String()...)

	case slog.KindTime:
		buf = append(buf, a.Value.Time().String()...)

	default:
		buf = appendString(buf, fmt.Sprint(a.Value.Any()))
	}

	return buf
}

func appendString(buf []byte, s string) []byte {
	if needsQuote(s) {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}

func needsQuote(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if r == '"' || r == '=' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}

func (h *handler) clone() *handler {
	out := *h
	out.name = append([]byte(nil), h.name...)
	out.attrs = append([]byte(nil), h.attrs...)
	out.group = append([]byte(nil), h.group...)
	return &out
}

func (h *handler) withName(name string) *handler {
	out := h.clone()
	if len(out.name) > 0 {
		out.name = append(out.name, '.')
	}
	out.name = append(out.name, name...)
	return out
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := h.clone()
	for _, a := range attrs {
		out.attrs = out.appendAttr(out.attrs, h.group, a)
	}
	return out
}

func (h *handler) WithGroup(name string) slog.Handler {
	out := h.clone()
	if len(out.group) > 0 {
		out.group = append(out.group, '.')
	}
	out.group = append(out.group, name...)
	return out
}

var _bufPool = sync.Pool{
	New: func() interface{} {
		bs := make([]byte, 0, 1024)
		return &bs
	},
}

func getBuf() *[]byte {
	return _bufPool.Get().(*[]byte)
}

func putBuf(bs *[]byte) {
	*bs = (*bs)[:0]
	_bufPool.Put(bs)
}

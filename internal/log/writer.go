package log

import (
	"bytes"
	"context"
)

// Writer turns a stream of bytes, usually a subprocess's stderr, into log
// entries: one per line, at Level. A trailing carriage return is dropped
// from each line. Close logs whatever follows the last newline.
type Writer struct {
	Log   *Logger
	Level Level

	pending []byte // partial line from earlier writes
}

func (w *Writer) Write(bs []byte) (int, error) {
	w.pending = append(w.pending, bs...)

	rest := w.pending
	for {
		line, tail, ok := bytes.Cut(rest, []byte{'\n'})
		if !ok {
			break
		}
		w.emit(line)
		rest = tail
	}

	// Slide the partial line to the front so the buffer doesn't grow.
	w.pending = append(w.pending[:0], rest...)
	return len(bs), nil
}

// Close logs the final partial line, if any. A stream ending in a newline
// adds nothing.
func (w *Writer) Close() error {
	if len(w.pending) > 0 {
		w.emit(w.pending)
		w.pending = w.pending[:0]
	}
	return nil
}

func (w *Writer) emit(line []byte) {
	line = bytes.TrimSuffix(line, []byte{'\r'})
	w.Log.Log(context.Background(), w.Level, string(line))
}

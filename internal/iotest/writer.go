// Package iotest provides IO-related testing utilities.
package iotest

import (
	"bytes"
	"io"
)

// Logger receives lines from the Writer.
// It is satisfied by *testing.T and *testing.B.
type Logger interface {
	Logf(format string, args ...any)
}

// Writer builds an io.Writer that posts each line written to it as a
// separate message to the test log.
func Writer(t Logger) io.Writer {
	return &writer{t: t}
}

type writer struct{ t Logger }

func (w *writer) Write(b []byte) (int, error) {
	n := len(b)
	b = bytes.TrimSuffix(b, []byte("\n"))
	for _, line := range bytes.Split(b, []byte("\n")) {
		w.t.Logf("%s", line)
	}
	return n, nil
}

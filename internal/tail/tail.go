// Package tail follows a file that another process is still writing to.
package tail

import (
	"errors"
	"io"
	"io/fs"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	_defaultDelay      = 100 * time.Millisecond
	_defaultBufferSize = 32 * 1024
)

// Tee copies from R to W as data shows up in R. It stops when R is
// closed, when reading or writing fails, or when Stop is called.
//
// The wrapper process uses this to relay the logs of the process it runs
// inside tmux.
type Tee struct {
	W io.Writer // required
	R io.Reader // required

	// How long to wait after reaching the end of R before reading again.
	// Defaults to 100 milliseconds.
	Delay time.Duration

	// Size of the copy buffer. Defaults to 32kB.
	BufferSize int

	// Clock to wait with. Defaults to the system clock.
	Clock clock.Clock

	err  error
	quit chan struct{}
	done chan struct{}
}

// Start starts copying in the background and returns immediately.
func (t *Tee) Start() {
	if t.Delay <= 0 {
		t.Delay = _defaultDelay
	}
	if t.BufferSize <= 0 {
		t.BufferSize = _defaultBufferSize
	}
	if t.Clock == nil {
		t.Clock = clock.New()
	}

	t.quit = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(make([]byte, t.BufferSize))
}

// Stop stops copying and waits for the background goroutine to exit. It
// returns the error that ended copying, if any.
//
// Data written to R after the last read is not copied. Close the writer
// on the other end first if all of it is needed.
func (t *Tee) Stop() error {
	close(t.quit)
	return t.Wait()
}

// Wait blocks until copying ends, and returns the error that ended it,
// if any.
func (t *Tee) Wait() error {
	<-t.done
	return t.err
}

func (t *Tee) run(buf []byte) {
	defer close(t.done)

	ticker := t.Clock.Ticker(t.Delay)
	defer ticker.Stop()

	for {
		n, err := io.CopyBuffer(t.W, t.R, buf)
		switch {
		case err == nil && n > 0:
			// More may be ready already.
			continue

		case errors.Is(err, fs.ErrClosed):
			return

		case err != nil && !errors.Is(err, io.EOF):
			t.err = err
			return
		}

		select {
		case <-t.quit:
			return
		case <-ticker.C:
		}
	}
}

package tail

import (
	"bytes"
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"testing/iotest"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/maxatome/go-testdeep/td"
)

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu   sync.Mutex
	buff bytes.Buffer
}

func (b *syncBuffer) Write(data []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buff.Write(data)
}

// Take returns the buffered contents and empties the buffer.
func (b *syncBuffer) Take() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.buff.String()
	b.buff.Reset()
	return s
}

// takeEventually waits for the buffer to hold want, and empties it.
func (b *syncBuffer) takeEventually(t testing.TB, want string) {
	t.Helper()

	var got string
	for i := 0; i < 100 && got != want; i++ {
		got += b.Take()
		if got != want {
			time.Sleep(5 * time.Millisecond)
		}
	}
	td.Cmp(t, got, want)
}

func TestTee(t *testing.T) {
	t.Parallel()

	mockClock := clock.NewMock()

	var buff syncBuffer
	r, err := os.CreateTemp(t.TempDir(), "log")
	td.Require(t).CmpNoError(err)

	tee := Tee{W: &buff, R: r, Clock: mockClock}
	tee.Start()
	defer func() {
		td.CmpNoError(t, r.Close())
		td.CmpNoError(t, tee.Stop())
	}()

	w, err := os.OpenFile(r.Name(), os.O_WRONLY|os.O_APPEND, 0o644)
	td.Require(t).CmpNoError(err)
	defer func() { td.CmpNoError(t, w.Close()) }()

	t.Run("empty", func(t *testing.T) {
		td.CmpEmpty(t, buff.Take())
	})

	t.Run("write", func(t *testing.T) {
		_, err := io.WriteString(w, "INFO [tmux] hello\n")
		td.CmpNoError(t, err)
		mockClock.Add(_defaultDelay)
		buff.takeEventually(t, "INFO [tmux] hello\n")
	})

	t.Run("idle then write", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			mockClock.Add(_defaultDelay * 3)
			td.CmpEmpty(t, buff.Take())
		}

		_, err := io.WriteString(w, "DEBUG selected\n")
		td.CmpNoError(t, err)
		mockClock.Add(_defaultDelay)
		buff.takeEventually(t, "DEBUG selected\n")
	})
}

func TestTee_readError(t *testing.T) {
	t.Parallel()

	var buff syncBuffer
	tee := Tee{
		W: &buff,
		R: iotest.ErrReader(errors.New("great sadness")),
	}
	tee.Start()

	err := tee.Wait()
	td.CmpContains(t, err, "great sadness")
	td.CmpEmpty(t, buff.Take())
}

func TestTee_closed(t *testing.T) {
	t.Parallel()

	var buff syncBuffer
	r, err := os.CreateTemp(t.TempDir(), "log")
	td.Require(t).CmpNoError(err)

	tee := Tee{W: &buff, R: r}
	tee.Start()

	td.CmpNoError(t, r.Close())
	td.CmpNoError(t, tee.Wait(), "closing the source ends copying")
	td.CmpEmpty(t, buff.Take())
}

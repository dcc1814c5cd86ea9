package paniclog

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	t.Parallel()

	sadness := errors.New("great sadness")

	tests := []struct {
		desc string
		give any

		wantMsg string // contains check
		wantErr string // equals check
	}{
		{desc: "nil"},
		{
			desc:    "string",
			give:    "foo",
			wantMsg: "panic: foo\n",
			wantErr: "panic: foo",
		},
		{
			desc:    "error",
			give:    sadness,
			wantMsg: "panic: great sadness\n",
			wantErr: "panic: great sadness",
		},
		{
			desc:    "int",
			give:    42,
			wantMsg: "panic: 42\n",
			wantErr: "panic: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			got := Handle(tt.give, &buff)

			if len(tt.wantErr) == 0 {
				assert.NoError(t, got)
				assert.Empty(t, buff.String())
				return
			}

			require.Error(t, got)
			assert.Equal(t, tt.wantErr, got.Error())
			assert.Contains(t, buff.String(), tt.wantMsg)
			assert.Contains(t, buff.String(), "handle_test.go", "stack trace")
		})
	}

	t.Run("wraps errors", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, Handle(sadness, io.Discard), sadness)
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("panic", func(t *testing.T) {
		t.Parallel()

		var buff bytes.Buffer
		err := func() (err error) {
			defer Recover(&err, &buff)
			panic("great sadness")
		}()

		require.Error(t, err)
		assert.Equal(t, "panic: great sadness", err.Error())
		assert.Contains(t, buff.String(), "panic: great sadness\n")
	})

	t.Run("panic after error", func(t *testing.T) {
		t.Parallel()

		err := func() (err error) {
			defer Recover(&err, io.Discard)
			err = errors.New("first")
			panic("second")
		}()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "first")
		assert.Contains(t, err.Error(), "panic: second")
	})

	t.Run("no panic", func(t *testing.T) {
		t.Parallel()

		var buff bytes.Buffer
		err := func() (err error) {
			defer Recover(&err, &buff)
			return nil
		}()

		require.NoError(t, err)
		assert.Empty(t, buff.String())
	})

	t.Run("no panic with error", func(t *testing.T) {
		t.Parallel()

		err := func() (err error) {
			defer Recover(&err, io.Discard)
			return errors.New("great sadness")
		}()

		assert.EqualError(t, err, "great sadness")
	})
}

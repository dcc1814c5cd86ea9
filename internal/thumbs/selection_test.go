package thumbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// newTestController builds a controller over one match per text with
// hints assigned from alphabet.
func newTestController(t require.TestingT, alphabet string, opts Options, texts ...string) *Controller {
	ms, err := Assign(matchesOf(texts...), []rune(alphabet), opts)
	require.NoError(t, err)

	lines := make([]Line, len(texts))
	for i, text := range texts {
		lines[i] = Line{Row: i, Text: text}
	}
	return NewController(lines, ms, opts)
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "typed-resolved", TypedResolved.String())
	assert.Equal(t, "State(42)", State(42).String())

	assert.False(t, Navigating.Done())
	assert.True(t, Cancelled.Done())
}

func TestController_InitCursor(t *testing.T) {
	t.Parallel()

	t.Run("forward starts at end", func(t *testing.T) {
		t.Parallel()

		c := newTestController(t, "ab", Options{}, "x", "y", "z")
		_, ok := c.Cursor()
		assert.False(t, ok)
		assert.Equal(t, Idle, c.State())

		c.InitCursor()
		cur, ok := c.Cursor()
		assert.True(t, ok)
		assert.Equal(t, 2, cur)
		assert.Equal(t, Navigating, c.State())
	})

	t.Run("reverse starts at beginning", func(t *testing.T) {
		t.Parallel()

		c := newTestController(t, "ab", Options{Reverse: true}, "x", "y", "z")
		c.InitCursor()
		cur, _ := c.Cursor()
		assert.Equal(t, 0, cur)
	})

	t.Run("only once", func(t *testing.T) {
		t.Parallel()

		c := newTestController(t, "ab", Options{}, "x", "y", "z")
		c.InitCursor()
		c.Prev()
		c.InitCursor()
		cur, _ := c.Cursor()
		assert.Equal(t, 1, cur)
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()

		c := newTestController(t, "ab", Options{})
		c.InitCursor()
		_, ok := c.Cursor()
		assert.False(t, ok)

		c.Confirm()
		assert.Equal(t, Navigating, c.State())
		_, ok = c.Result()
		assert.False(t, ok)
	})

	t.Run("movement places cursor", func(t *testing.T) {
		t.Parallel()

		c := newTestController(t, "ab", Options{}, "x", "y", "z")
		c.Next()
		cur, ok := c.Cursor()
		require.True(t, ok)
		assert.Equal(t, 2, cur)
	})
}

func TestController_CursorBounds(t *testing.T) {
	t.Parallel()

	c := newTestController(t, "ab", Options{}, "x", "y", "z")
	c.InitCursor()

	for i := 0; i < 5; i++ {
		c.Next()
	}
	cur, _ := c.Cursor()
	assert.Equal(t, 2, cur)

	for i := 0; i < 5; i++ {
		c.Prev()
	}
	cur, _ = c.Cursor()
	assert.Equal(t, 0, cur)

	c.Next()
	cur, _ = c.Cursor()
	assert.Equal(t, 1, cur)
}

func TestController_CursorBounds_rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		texts := make([]string, n)
		for i := range texts {
			texts[i] = "m"
		}

		c := newTestController(t, "asdf", Options{Reverse: rapid.Bool().Draw(t, "reverse")}, texts...)
		c.InitCursor()

		moves := rapid.SliceOf(rapid.Bool()).Draw(t, "moves")
		for _, next := range moves {
			want, _ := c.Cursor()
			if next {
				c.Next()
				want = min(want+1, n-1)
			} else {
				c.Prev()
				want = max(want-1, 0)
			}

			got, ok := c.Cursor()
			require.True(t, ok)
			require.Equal(t, want, got)
		}
	})
}

func TestController_Type(t *testing.T) {
	t.Parallel()

	// Hints for "ab" over three matches: a, ba, bb.
	texts := []string{"first", "second", "third"}

	tests := []struct {
		desc  string
		typed string

		wantState State
		wantSel   Selection
		wantOK    bool
		wantTyped string
	}{
		{
			desc:      "single letter",
			typed:     "a",
			wantState: TypedResolved,
			wantSel:   Selection{Text: "first"},
			wantOK:    true,
			wantTyped: "a",
		},
		{
			desc:      "uppercase is alternate",
			typed:     "A",
			wantState: TypedResolved,
			wantSel:   Selection{Text: "first", Alternate: true},
			wantOK:    true,
			wantTyped: "a",
		},
		{
			desc:      "two letters",
			typed:     "bb",
			wantState: TypedResolved,
			wantSel:   Selection{Text: "third"},
			wantOK:    true,
			wantTyped: "bb",
		},
		{
			desc:      "last letter decides alternate",
			typed:     "Ba",
			wantState: TypedResolved,
			wantSel:   Selection{Text: "second"},
			wantOK:    true,
			wantTyped: "ba",
		},
		{
			desc:      "last letter uppercase",
			typed:     "bA",
			wantState: TypedResolved,
			wantSel:   Selection{Text: "second", Alternate: true},
			wantOK:    true,
			wantTyped: "ba",
		},
		{
			desc:      "partial",
			typed:     "b",
			wantState: Navigating,
			wantTyped: "b",
		},
		{
			desc:      "no such hint",
			typed:     "bc",
			wantState: Cancelled,
			wantTyped: "bc",
		},
		{
			desc:      "unknown letter",
			typed:     "z",
			wantState: Navigating,
			wantTyped: "z",
		},
		{
			desc:      "ignored once done",
			typed:     "azz",
			wantState: TypedResolved,
			wantSel:   Selection{Text: "first"},
			wantOK:    true,
			wantTyped: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			c := newTestController(t, "ab", Options{}, texts...)
			for _, r := range tt.typed {
				c.Handle(CharEvent{Rune: r})
			}

			assert.Equal(t, tt.wantState, c.State())
			assert.Equal(t, tt.wantTyped, c.Typed())

			sel, ok := c.Result()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSel, sel)
		})
	}
}

func TestController_pending(t *testing.T) {
	t.Parallel()

	// Hints: a, ba, bb.
	c := newTestController(t, "ab", Options{}, "first", "second", "third")
	assert.Empty(t, c.pending(), "nothing typed")

	c.Type('b')
	assert.Equal(t, map[int]bool{1: true, 2: true}, c.pending())

	c = newTestController(t, "ab", Options{}, "first", "second", "third")
	c.Type('z')
	assert.Empty(t, c.pending())
}

func TestController_TypeWithoutHints(t *testing.T) {
	t.Parallel()

	c := newTestController(t, "ab", Options{})
	c.Type('a')
	assert.Equal(t, Idle, c.State())
	assert.Empty(t, c.Typed())
}

func TestController_TypeSkipsDuplicates(t *testing.T) {
	t.Parallel()

	// With unique, the second "x" has no hint, so only "a" and "b" exist.
	c := newTestController(t, "abc", Options{Unique: true}, "x", "y", "x")
	assert.Equal(t, "", c.Matches()[2].Hint)

	c.Type('c')
	assert.Equal(t, Cancelled, c.State())
}

func TestController_Confirm(t *testing.T) {
	t.Parallel()

	c := newTestController(t, "ab", Options{}, "x", "y", "z")
	assert.Equal(t, Navigating, c.Handle(PrevEvent{}))
	assert.Equal(t, Navigating, c.Handle(PrevEvent{}))
	assert.Equal(t, Confirmed, c.Handle(ConfirmEvent{}))

	sel, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, Selection{Text: "y"}, sel)

	// Terminal states are final.
	assert.Equal(t, Confirmed, c.Handle(EscapeEvent{}))
	assert.Equal(t, Confirmed, c.Handle(NextEvent{}))
	assert.Equal(t, Confirmed, c.Handle(CharEvent{Rune: 'a'}))
	sel, _ = c.Result()
	assert.Equal(t, Selection{Text: "y"}, sel)
}

func TestController_ConfirmWithoutCursor(t *testing.T) {
	t.Parallel()

	c := newTestController(t, "ab", Options{}, "x")
	c.Confirm()
	assert.Equal(t, Idle, c.State())
}

func TestController_Cancel(t *testing.T) {
	t.Parallel()

	c := newTestController(t, "ab", Options{}, "x", "y")
	c.InitCursor()
	assert.Equal(t, Cancelled, c.Handle(EscapeEvent{}))

	_, ok := c.Result()
	assert.False(t, ok)
}

// unknownEvent is an event from outside the package's closed set.
type unknownEvent struct{ Event }

func TestController_UnknownEvent(t *testing.T) {
	t.Parallel()

	c := newTestController(t, "ab", Options{}, "x")
	assert.Panics(t, func() {
		c.Handle(unknownEvent{})
	})
}

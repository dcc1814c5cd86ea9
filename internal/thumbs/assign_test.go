package thumbs

import (
	"testing"

	"github.com/abhinav/tmux-thumbs/internal/hint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func matchesOf(texts ...string) []Match {
	ms := make([]Match, len(texts))
	for i, text := range texts {
		ms[i] = Match{Row: i, Text: text}
	}
	return ms
}

func hintsOf(ms []Match) []string {
	hints := make([]string, len(ms))
	for i, m := range ms {
		hints[i] = m.Hint
	}
	return hints
}

func TestAssign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc     string
		texts    []string
		alphabet string
		opts     Options
		want     []string
	}{
		{
			desc:     "empty",
			alphabet: "ab",
			want:     []string{},
		},
		{
			desc:     "forward",
			texts:    []string{"x", "y", "z"},
			alphabet: "ab",
			want:     []string{"a", "ba", "bb"},
		},
		{
			desc:     "reverse",
			texts:    []string{"x", "y", "z"},
			alphabet: "ab",
			opts:     Options{Reverse: true},
			want:     []string{"bb", "ba", "a"},
		},
		{
			desc:     "fits in alphabet",
			texts:    []string{"x", "y"},
			alphabet: "asdf",
			want:     []string{"a", "s"},
		},
		{
			desc:     "fits in alphabet/reverse",
			texts:    []string{"x", "y"},
			alphabet: "asdf",
			opts:     Options{Reverse: true},
			want:     []string{"s", "a"},
		},
		{
			desc:     "duplicates",
			texts:    []string{"x", "y", "x"},
			alphabet: "ab",
			want:     []string{"a", "ba", "bb"},
		},
		{
			desc:     "unique",
			texts:    []string{"x", "y", "x"},
			alphabet: "ab",
			opts:     Options{Unique: true},
			want:     []string{"a", "b", ""},
		},
		{
			desc:     "unique/reverse",
			texts:    []string{"x", "y", "x"},
			alphabet: "ab",
			opts:     Options{Unique: true, Reverse: true},
			want:     []string{"", "b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := Assign(matchesOf(tt.texts...), []rune(tt.alphabet), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hintsOf(got))
		})
	}
}

func TestAssign_doesNotModifyInput(t *testing.T) {
	t.Parallel()

	give := matchesOf("x", "y")
	give[1].Hint = "stale"

	got, err := Assign(give, []rune("ab"), Options{Unique: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"", "stale"}, hintsOf(give))
	assert.Equal(t, []string{"a", "b"}, hintsOf(got))
}

func TestAssign_stale(t *testing.T) {
	t.Parallel()

	give := matchesOf("x", "x")
	give[1].Hint = "stale"

	got, err := Assign(give, []rune("ab"), Options{Unique: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", ""}, hintsOf(got))
}

func TestAssign_emptyAlphabet(t *testing.T) {
	t.Parallel()

	_, err := Assign(matchesOf("x"), nil, Options{})
	assert.ErrorIs(t, err, hint.ErrEmptyAlphabet)
}

func TestAssign_rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		texts := rapid.SliceOfN(rapid.SampledFrom([]string{"foo", "bar", "baz", "qux"}), 0, 40).Draw(t, "texts")
		opts := Options{
			Reverse: rapid.Bool().Draw(t, "reverse"),
			Unique:  rapid.Bool().Draw(t, "unique"),
		}

		got, err := Assign(matchesOf(texts...), []rune("asdf"), opts)
		require.NoError(t, err)
		require.Len(t, got, len(texts))

		order := make([]int, len(got))
		for i := range order {
			order[i] = i
			if opts.Reverse {
				order[i] = len(got) - 1 - i
			}
		}

		// Without unique, everything gets a hint. With it, the first
		// occurrence of each text in assignment order does.
		firstSeen := make(map[string]bool)
		for _, idx := range order {
			m := got[idx]
			wantHint := !opts.Unique || !firstSeen[m.Text]
			firstSeen[m.Text] = true
			assert.Equal(t, wantHint, m.Hint != "", "match %d (%q)", idx, m.Text)
		}
	})
}

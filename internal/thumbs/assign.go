package thumbs

import "github.com/abhinav/tmux-thumbs/internal/hint"

// Assign labels matches with prefix-free hint codes built from alphabet.
// It returns a copy of matches with Match.Hint filled for every match that
// is eligible for a hint. The input is not modified.
//
// Matches are labeled in scan order, or from the last match backwards if
// opts.Reverse is set, so the first labeled matches get the shortest codes.
// With opts.Unique, only the first labeled occurrence of each distinct
// text gets a hint.
//
// The result depends only on the matches, the alphabet, and the options.
func Assign(matches []Match, alphabet []rune, opts Options) ([]Match, error) {
	order := Eligible(matches, opts)

	codes, err := hint.Codes(alphabet, len(order))
	if err != nil {
		return nil, err
	}

	out := make([]Match, len(matches))
	copy(out, matches)
	for i := range out {
		out[i].Hint = ""
	}
	for i, idx := range order {
		out[idx].Hint = codes[i]
	}
	return out, nil
}

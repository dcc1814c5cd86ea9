// Package hint generates prefix-free hint codes.
//
// Codes are built like numerals over an alphabet: as many items as
// possible get a single letter, and the fewest letters necessary are
// reserved as prefixes for longer codes. No code is a prefix of another,
// so as soon as typed input equals a code, that code is the only one it
// can refer to.
//
// Unlike a Huffman labeling, the assignment depends only on the number of
// items and the alphabet, and codes never get shorter as the item index
// grows. Users can learn that the first items are always "a", "s", "d"...
package hint

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlphabet is returned when asked to generate codes with an
	// alphabet that has no letters.
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")

	// ErrAlphabetTooSmall is returned when a single-letter alphabet is
	// asked to label more than one item. No two codes over one letter
	// can be prefix-free.
	ErrAlphabetTooSmall = errors.New("alphabet is too small")
)

// Label generates n unique prefix-free labels over an alphabet of base
// letters.
//
// labels[i] is the label for item i, specified as indexes into the
// alphabet. For example, given the alphabet {a b}, the label {1 0} means
// "ba". The mapping from indexes to letters is the caller's
// responsibility; see Codes.
//
// Labels are ordered by length: len(labels[i]) <= len(labels[i+1]).
// Labels of the same length appear in alphabet order.
func Label(base, n int) (labels [][]int, err error) {
	switch {
	case base < 1:
		return nil, ErrEmptyAlphabet
	case n <= 0:
		return [][]int{}, nil
	case base == 1 && n > 1:
		return nil, fmt.Errorf("%w: one letter cannot label %d items", ErrAlphabetTooSmall, n)
	}

	labels = make([][]int, 0, n)

	// frontier holds all candidate labels of the current length, in
	// alphabet order. Each candidate either becomes a label or is
	// reserved as the prefix for base labels one letter longer.
	frontier := make([][]int, base)
	for i := range frontier {
		frontier[i] = []int{i}
	}

	for {
		need := n - len(labels)
		if need <= len(frontier) {
			return append(labels, frontier[:need]...), nil
		}

		roots := Roots(base, len(frontier), need)
		leaves := len(frontier) - roots
		labels = append(labels, frontier[:leaves]...)

		next := make([][]int, 0, roots*base)
		for _, prefix := range frontier[leaves:] {
			for i := 0; i < base; i++ {
				label := make([]int, len(prefix)+1)
				copy(label, prefix)
				label[len(prefix)] = i
				next = append(next, label)
			}
		}
		frontier = next
	}
}

// Roots reports how many of the width candidates at one label length must
// be reserved as prefixes so that the remaining candidates plus the
// children of the reserved ones can cover need items.
//
// If even reserving every candidate is not enough, Roots returns width and
// the caller must repeat one level deeper.
//
// base must be at least 2.
func Roots(base, width, need int) int {
	if need <= width {
		return 0
	}

	// Reserving one candidate trades 1 label for base labels,
	// a net gain of base-1.
	gain := base - 1
	roots := (need - width + gain - 1) / gain
	if roots > width {
		roots = width
	}
	return roots
}

// Codes generates n prefix-free codes over the given alphabet.
// See Label for the ordering guarantees.
func Codes(alphabet []rune, n int) ([]string, error) {
	labels, err := Label(len(alphabet), n)
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(labels))
	for i, label := range labels {
		code := make([]rune, len(label))
		for j, idx := range label {
			code[j] = alphabet[idx]
		}
		codes[i] = string(code)
	}
	return codes, nil
}

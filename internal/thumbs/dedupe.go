package thumbs

// Eligible returns indexes of matches that should receive hints, in the
// order in which hints should be assigned.
//
// Matches are visited in scan order, or backwards with opts.Reverse. With
// opts.Unique, a match whose text was already visited is left out: it
// stays navigable and visible but gets no hint.
func Eligible(matches []Match, opts Options) []int {
	order := make([]int, 0, len(matches))

	var seen map[string]struct{}
	if opts.Unique {
		seen = make(map[string]struct{}, len(matches))
	}

	visit := func(i int) {
		if seen != nil {
			text := matches[i].Text
			if _, dup := seen[text]; dup {
				return
			}
			seen[text] = struct{}{}
		}
		order = append(order, i)
	}

	if opts.Reverse {
		for i := len(matches) - 1; i >= 0; i-- {
			visit(i)
		}
	} else {
		for i := range matches {
			visit(i)
		}
	}

	return order
}

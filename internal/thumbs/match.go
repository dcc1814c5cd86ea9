// Package thumbs implements the core of tmux-thumbs: finding interesting
// text in captured terminal output, labeling it with hints, and resolving
// the user's choice.
package thumbs

import (
	"fmt"
	"log/slog"

	"github.com/abhinav/tmux-thumbs/internal/log"
)

// Line is a single logical line of captured text.
type Line struct {
	// Row is the screen row this line is displayed on.
	Row int

	// Text of the line. This never contains newlines.
	Text string
}

// Match is a single entry found in the captured text.
type Match struct {
	// Row of the line this match was found on.
	Row int

	// Col is the offset of the match in its line,
	// counted in characters, not bytes.
	Col int

	// Text is the matched text.
	Text string

	// Pattern is the name of the detector that found this match.
	Pattern string

	// Hint is the code the user can type to select this match.
	// This is empty if the match does not have a hint.
	Hint string
}

func (m Match) String() string {
	return fmt.Sprintf("(%q) %q at %d:%d", m.Pattern, m.Text, m.Row, m.Col)
}

// LogValue implements slog.LogValuer.
func (m Match) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("row", m.Row),
		slog.Int("col", m.Col),
		slog.String("text", m.Text),
		log.OmitEmpty(slog.String, "pattern", m.Pattern),
		log.OmitEmpty(slog.String, "hint", m.Hint),
	)
}

// Position specifies where a hint is drawn relative to its match.
type Position int

const (
	// Left draws the hint over the start of the match.
	Left Position = iota

	// Right draws the hint over the end of the match.
	Right
)

func (p Position) String() string {
	switch p {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// ParsePosition parses the name of a Position.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("unrecognized hint position %q: must be left or right", s)
	}
}

// Options controls how hints are assigned and how the cursor behaves.
type Options struct {
	// Reverse assigns hints starting at the last match,
	// and starts the cursor at the first match.
	Reverse bool

	// Unique assigns a hint only to the first occurrence
	// of each distinct matched text.
	Unique bool

	// Position of hints relative to their matches.
	Position Position
}

// Selection is the final choice made by the user.
type Selection struct {
	// Text is the selected text.
	Text string

	// Alternate reports whether the alternate action was requested
	// by typing the hint in uppercase.
	Alternate bool
}

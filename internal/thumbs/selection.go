package thumbs

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Event is an input event for the Controller.
//
// The set of events is closed:
// EscapeEvent, ConfirmEvent, PrevEvent, NextEvent, and CharEvent.
type Event interface{ event() }

// EscapeEvent cancels the selection.
type EscapeEvent struct{}

// ConfirmEvent selects the match under the cursor.
type ConfirmEvent struct{}

// PrevEvent moves the cursor to the previous match.
type PrevEvent struct{}

// NextEvent moves the cursor to the next match.
type NextEvent struct{}

// CharEvent types a character of a hint.
// Case is preserved: uppercase requests the alternate action.
type CharEvent struct{ Rune rune }

func (EscapeEvent) event()  {}
func (ConfirmEvent) event() {}
func (PrevEvent) event()    {}
func (NextEvent) event()    {}
func (CharEvent) event()    {}

// State is the state of a Controller.
type State int

// Controller states.
//
//	Idle -> Navigating -> Confirmed
//	                   -> Cancelled
//	                   -> TypedResolved
const (
	Idle State = iota
	Navigating
	Confirmed
	Cancelled
	TypedResolved
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Navigating:
		return "navigating"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	case TypedResolved:
		return "typed-resolved"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Done reports whether this is a terminal state.
func (s State) Done() bool {
	return s >= Confirmed
}

// Controller tracks the user's progress towards a selection.
//
// It holds a fixed set of lines and matches, a cursor pointing at one of
// the matches, and the hint code typed so far. Controller is not safe for
// concurrent use.
type Controller struct {
	lines   map[int]string // row -> text
	matches []Match
	opts    Options

	codes   *patricia.Trie // hint -> index in matches
	longest int            // length of the longest hint, in characters

	state  State
	cursor int    // index in matches, or -1
	typed  string // lowercase input so far
	sel    Selection
}

// NewController builds a Controller over matches found in lines. Matches
// must have their hints assigned already; see Assign.
func NewController(lines []Line, matches []Match, opts Options) *Controller {
	byRow := make(map[int]string, len(lines))
	for _, l := range lines {
		byRow[l.Row] = l.Text
	}

	codes := patricia.NewTrie()
	var longest int
	for i, m := range matches {
		if len(m.Hint) == 0 {
			continue
		}
		codes.Insert(patricia.Prefix(m.Hint), i)
		if n := utf8.RuneCountInString(m.Hint); n > longest {
			longest = n
		}
	}

	return &Controller{
		lines:   byRow,
		matches: matches,
		opts:    opts,
		codes:   codes,
		longest: longest,
		cursor:  -1,
	}
}

// Matches returns the matches handled by this controller.
// The returned slice must not be modified.
func (c *Controller) Matches() []Match { return c.matches }

// State reports the current state of the controller.
func (c *Controller) State() State { return c.state }

// Cursor reports the index of the match under the cursor,
// or false if there's no cursor yet.
func (c *Controller) Cursor() (int, bool) {
	return c.cursor, c.cursor >= 0
}

// Typed returns the hint input typed so far, in lowercase.
func (c *Controller) Typed() string { return c.typed }

// Result returns the final selection. It returns false if the controller
// is not done or the user did not select anything.
func (c *Controller) Result() (Selection, bool) {
	switch c.state {
	case Confirmed, TypedResolved:
		return c.sel, true
	default:
		return Selection{}, false
	}
}

// Handle dispatches an event to the matching operation and reports the
// new state. Events received after the controller is done are ignored.
func (c *Controller) Handle(ev Event) State {
	switch ev := ev.(type) {
	case EscapeEvent:
		c.Cancel()
	case ConfirmEvent:
		c.Confirm()
	case PrevEvent:
		c.Prev()
	case NextEvent:
		c.Next()
	case CharEvent:
		c.Type(ev.Rune)
	default:
		panic(fmt.Sprintf("unknown event %#v", ev))
	}
	return c.state
}

// InitCursor places the cursor on the first match if hints are assigned
// in reverse, and on the last match otherwise. It does nothing if the
// cursor was already placed or there are no matches.
func (c *Controller) InitCursor() {
	if c.state.Done() {
		return
	}
	c.state = Navigating

	if c.cursor >= 0 || len(c.matches) == 0 {
		return
	}
	if c.opts.Reverse {
		c.cursor = 0
	} else {
		c.cursor = len(c.matches) - 1
	}
}

// Prev moves the cursor one match back, stopping at the first match.
func (c *Controller) Prev() {
	if c.state.Done() {
		return
	}
	if c.cursor < 0 {
		c.InitCursor()
		return
	}
	if c.cursor > 0 {
		c.cursor--
	}
}

// Next moves the cursor one match forward, stopping at the last match.
func (c *Controller) Next() {
	if c.state.Done() {
		return
	}
	if c.cursor < 0 {
		c.InitCursor()
		return
	}
	if c.cursor < len(c.matches)-1 {
		c.cursor++
	}
}

// Type adds a character to the hint input.
//
// Input is matched case-insensitively. If it matches a hint exactly, that
// match is selected, and the alternate action is requested if ch was not
// lowercase. If the input is as long as the longest hint without matching
// one, the selection is abandoned.
//
// Input is ignored if no match has a hint.
func (c *Controller) Type(ch rune) {
	if c.state.Done() || c.longest == 0 {
		return
	}
	c.state = Navigating

	lower := unicode.ToLower(ch)
	c.typed += string(lower)

	// Hints are prefix-free, so an exact match can't be the start of
	// another hint.
	if item := c.codes.Get(patricia.Prefix(c.typed)); item != nil {
		c.resolve(TypedResolved, item.(int), lower != ch)
		return
	}

	if utf8.RuneCountInString(c.typed) >= c.longest {
		c.state = Cancelled
	}
}

// pending reports which matches have hints that start with the typed
// input. It is empty if nothing has been typed.
func (c *Controller) pending() map[int]bool {
	if len(c.typed) == 0 {
		return nil
	}

	idx := make(map[int]bool)
	_ = c.codes.VisitSubtree(patricia.Prefix(c.typed), func(_ patricia.Prefix, item patricia.Item) error {
		idx[item.(int)] = true
		return nil
	})
	return idx
}

// Confirm selects the match under the cursor, if any.
func (c *Controller) Confirm() {
	if c.state.Done() {
		return
	}
	if c.cursor < 0 || c.cursor >= len(c.matches) {
		return
	}
	c.resolve(Confirmed, c.cursor, false)
}

// Cancel abandons the selection.
func (c *Controller) Cancel() {
	if c.state.Done() {
		return
	}
	c.state = Cancelled
}

func (c *Controller) resolve(state State, idx int, alternate bool) {
	c.state = state
	c.sel = Selection{
		Text:      c.matches[idx].Text,
		Alternate: alternate,
	}
}

package tmuxtest

import (
	"fmt"

	"github.com/abhinav/tmux-thumbs/internal/tmux"
	"github.com/golang/mock/gomock"
)

// TargetsPane matches tmux requests addressed to the given pane,
// ignoring their other fields. It understands DisplayMessageRequest and
// CapturePaneRequest. An empty pane matches requests for the current
// pane.
func TargetsPane(pane string) gomock.Matcher {
	return paneMatcher(pane)
}

type paneMatcher string

func (m paneMatcher) Matches(x any) bool {
	switch req := x.(type) {
	case tmux.DisplayMessageRequest:
		return req.Pane == string(m)
	case tmux.CapturePaneRequest:
		return req.Pane == string(m)
	default:
		return false
	}
}

func (m paneMatcher) String() string {
	if len(m) == 0 {
		return "request for the current pane"
	}
	return fmt.Sprintf("request for pane %q", string(m))
}

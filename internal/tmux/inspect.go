package tmux

import (
	"log/slog"

	"github.com/abhinav/tmux-thumbs/internal/tmux/tmuxfmt"
)

// PaneMode is the mode a pane is in.
type PaneMode string

const (
	// NormalMode is a pane showing the bottom of its history.
	NormalMode PaneMode = "normal-mode"

	// CopyMode is a pane in copy mode. It may be scrolled up.
	CopyMode PaneMode = "copy-mode"
)

// PaneInfo describes a tmux pane.
type PaneInfo struct {
	ID             string
	WindowID       string
	Width, Height  int
	Mode           PaneMode
	ScrollPosition int
	WindowZoomed   bool

	// Working directory of the pane's process, if tmux knows it.
	CurrentPath string
}

// VisibleLines reports the range of history lines visible in the pane,
// in the form expected by capture-pane's -S and -E flags.
func (i *PaneInfo) VisibleLines() (start, end int) {
	if i.Mode != CopyMode {
		return 0, i.Height - 1
	}
	return -i.ScrollPosition, i.Height - i.ScrollPosition - 1
}

// LogValue implements slog.LogValuer.
func (i *PaneInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", i.ID),
		slog.String("window", i.WindowID),
		slog.Int("width", i.Width),
		slog.Int("height", i.Height),
		slog.String("mode", string(i.Mode)),
		slog.Int("scroll", i.ScrollPosition),
		slog.Bool("zoomed", i.WindowZoomed),
		slog.String("path", i.CurrentPath),
	)
}

var (
	_paneMode = tmuxfmt.Ternary{
		Cond: tmuxfmt.Var("pane_in_mode"),
		Then: tmuxfmt.Var("pane_mode"),
		Else: tmuxfmt.String(NormalMode),
	}
	_paneScrollPosition = tmuxfmt.Ternary{
		Cond: tmuxfmt.Equals{
			LHS: tmuxfmt.Var("pane_mode"),
			RHS: tmuxfmt.String(CopyMode),
		},
		Then: tmuxfmt.Var("scroll_position"),
		Else: tmuxfmt.Int(0),
	}
)

// InspectPane reports information about the given pane, or the current
// pane if identifier is empty.
func InspectPane(driver Driver, identifier string) (*PaneInfo, error) {
	var (
		info PaneInfo
		fc   tmuxfmt.Capturer
	)
	fc.StringVar(&info.ID, tmuxfmt.Var("pane_id"))
	fc.StringVar(&info.WindowID, tmuxfmt.Var("window_id"))
	fc.IntVar(&info.Width, tmuxfmt.Var("pane_width"))
	fc.IntVar(&info.Height, tmuxfmt.Var("pane_height"))
	fc.StringVar((*string)(&info.Mode), _paneMode)
	fc.IntVar(&info.ScrollPosition, _paneScrollPosition)
	fc.BoolVar(&info.WindowZoomed, tmuxfmt.Var("window_zoomed_flag"))
	fc.StringVar(&info.CurrentPath, tmuxfmt.Var("pane_current_path"))

	msg, parse := fc.Prepare()
	out, err := driver.DisplayMessage(DisplayMessageRequest{
		Pane:    identifier,
		Message: msg,
	})
	if err == nil {
		err = parse(out)
	}
	return &info, err
}

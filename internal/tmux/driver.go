package tmux

import (
	"log/slog"
	"strings"

	"github.com/abhinav/tmux-thumbs/internal/log"
)

//go:generate mockgen -destination tmuxtest/mock_driver.go -package tmuxtest github.com/abhinav/tmux-thumbs/internal/tmux Driver

// Driver is a low-level API to access tmux. Each method runs one tmux
// command.
type Driver interface {
	// NewSession runs new-session and returns its output.
	NewSession(NewSessionRequest) ([]byte, error)

	// DisplayMessage runs display-message and returns its output.
	DisplayMessage(DisplayMessageRequest) ([]byte, error)

	// CapturePane runs capture-pane and returns the captured text.
	CapturePane(CapturePaneRequest) ([]byte, error)

	// SwapPane runs swap-pane.
	SwapPane(SwapPaneRequest) error

	// ResizeWindow runs resize-window.
	ResizeWindow(ResizeWindowRequest) error

	// WaitForSignal runs wait-for, blocking until someone calls
	// SendSignal with the same name.
	WaitForSignal(string) error

	// SendSignal runs wait-for -S, waking up everyone waiting for the
	// signal.
	SendSignal(string) error

	// ShowOptions runs show-options and returns its output.
	ShowOptions(ShowOptionsRequest) ([]byte, error)
}

// NewSessionRequest specifies the parameters for a new-session command.
type NewSessionRequest struct {
	// Name of the session, if any.
	Name string

	// Output format, if any. Without this, NewSession will not return any
	// output.
	Format string

	// Size of the new window.
	Width, Height int

	// Whether the new session should be detached from this client.
	Detached bool

	// Additional environment variables for the command, as KEY=VALUE.
	Env []string

	// Command to run in the new window. Required if Env is set.
	Command []string
}

// LogValue implements slog.LogValuer.
func (r NewSessionRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "name", r.Name),
		log.OmitEmpty(slog.String, "format", r.Format),
		log.OmitEmpty(slog.Int, "width", r.Width),
		log.OmitEmpty(slog.Int, "height", r.Height),
		slog.Bool("detached", r.Detached),
		log.OmitEmpty(slog.String, "env", strings.Join(r.Env, " ")),
		log.OmitEmpty(slog.String, "command", strings.Join(r.Command, " ")),
	)
}

// CapturePaneRequest specifies the parameters for a capture-pane command.
type CapturePaneRequest struct {
	// Pane to capture. Defaults to current.
	Pane string

	// Start and end lines of the capture. Line 0 is the top of the
	// visible pane and negative lines are in the history. Zero values
	// leave tmux's defaults: the top and bottom of the visible pane.
	StartLine, EndLine int
}

// LogValue implements slog.LogValuer.
func (r CapturePaneRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "pane", r.Pane),
		log.OmitEmpty(slog.Int, "start", r.StartLine),
		log.OmitEmpty(slog.Int, "end", r.EndLine),
	)
}

// DisplayMessageRequest specifies the parameters for a display-message
// command.
type DisplayMessageRequest struct {
	// Pane the message is evaluated against. Defaults to current.
	Pane string

	// Message to print. This may use tmux formats.
	Message string
}

// LogValue implements slog.LogValuer.
func (r DisplayMessageRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "pane", r.Pane),
		log.OmitEmpty(slog.String, "message", r.Message),
	)
}

// SwapPaneRequest specifies the parameters for a swap-pane command.
type SwapPaneRequest struct {
	// Source pane. Defaults to current.
	Source string

	// Destination pane to swap the source with.
	Destination string

	// Keep the destination window zoomed if it was.
	MaintainZoom bool
}

// LogValue implements slog.LogValuer.
func (r SwapPaneRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "source", r.Source),
		log.OmitEmpty(slog.String, "destination", r.Destination),
		log.OmitEmpty(slog.Bool, "maintainZoom", r.MaintainZoom),
	)
}

// ResizeWindowRequest specifies the parameters for a resize-window command.
type ResizeWindowRequest struct {
	Window        string
	Width, Height int
}

// LogValue implements slog.LogValuer.
func (r ResizeWindowRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "window", r.Window),
		log.OmitEmpty(slog.Int, "width", r.Width),
		log.OmitEmpty(slog.Int, "height", r.Height),
	)
}

// ShowOptionsRequest specifies the parameters for a show-options command.
type ShowOptionsRequest struct {
	Global bool // show global options
}

// LogValue implements slog.LogValuer.
func (r ShowOptionsRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.Bool("global", r.Global))
}

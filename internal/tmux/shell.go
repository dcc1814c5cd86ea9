package tmux

import (
	"errors"
	"io"
	"os/exec"
	"strconv"
	"sync"

	"github.com/abhinav/tmux-thumbs/internal/log"
)

const (
	_defaultTmux = "tmux"
	_defaultEnv  = "/usr/bin/env"
)

// runner decides how exec.Cmds are run. Tests swap it out.
type runner struct {
	Run    func(*exec.Cmd) error
	Output func(*exec.Cmd) ([]byte, error)
}

var _defaultRunner = runner{
	Run:    (*exec.Cmd).Run,
	Output: (*exec.Cmd).Output,
}

// ShellDriver is a Driver that runs the tmux executable.
type ShellDriver struct {
	// Path to the tmux executable. Defaults to "tmux".
	Path string

	// Path to the env command. Defaults to /usr/bin/env.
	Env string

	log  *log.Logger
	run  *runner
	once sync.Once
}

var _ Driver = (*ShellDriver)(nil)

func (s *ShellDriver) init() {
	s.once.Do(func() {
		if s.log == nil {
			s.log = log.Discard
		}
		if s.Path == "" {
			s.Path = _defaultTmux
		}
		if s.Env == "" {
			s.Env = _defaultEnv
		}
		if s.run == nil {
			s.run = &_defaultRunner
		}
	})
}

// SetLogger specifies the logger for the ShellDriver. Commands and their
// error output are logged to it. By default, nothing is logged.
func (s *ShellDriver) SetLogger(log *log.Logger) {
	s.log = log
}

// output runs tmux with args and returns its stdout. stderr goes to the
// error log.
func (s *ShellDriver) output(msg string, req any, args ...string) ([]byte, error) {
	s.init()

	cmd := exec.Command(s.Path, args...)
	stderr := s.errorWriter()
	defer stderr.Close()
	cmd.Stderr = stderr

	s.log.Debug(msg, "request", req)
	return s.run.Output(cmd)
}

// runCmd runs tmux with args, sending all its output to the error log.
func (s *ShellDriver) runCmd(msg string, req any, args ...string) error {
	s.init()

	cmd := exec.Command(s.Path, args...)
	out := s.errorWriter()
	defer out.Close()
	cmd.Stdout = out
	cmd.Stderr = out

	s.log.Debug(msg, "request", req)
	return s.run.Run(cmd)
}

func (s *ShellDriver) errorWriter() io.WriteCloser {
	return &log.Writer{Log: s.log, Level: log.Error}
}

// NewSession runs the tmux new-session command.
func (s *ShellDriver) NewSession(req NewSessionRequest) ([]byte, error) {
	s.init()

	args := []string{"new-session"}
	if n := req.Name; len(n) > 0 {
		args = append(args, "-s", n)
	}
	if f := req.Format; len(f) > 0 {
		args = append(args, "-P", "-F", f)
	}
	if w := req.Width; w > 0 {
		args = append(args, "-x", strconv.Itoa(w))
	}
	if h := req.Height; h > 0 {
		args = append(args, "-y", strconv.Itoa(h))
	}
	if req.Detached {
		args = append(args, "-d")
	}

	// new-session -e needs tmux 3.2. Go through env(1) instead:
	//
	//   /usr/bin/env K1=V1 K2=V2 cmd args...
	if len(req.Env) > 0 {
		if len(req.Command) == 0 {
			return nil, errors.New("env can be set only if command is set")
		}
		args = append(args, s.Env)
		args = append(args, req.Env...)
	}
	args = append(args, req.Command...)

	return s.output("new session", req, args...)
}

// CapturePane runs the capture-pane command and returns its output.
// Wrapped lines are joined.
func (s *ShellDriver) CapturePane(req CapturePaneRequest) ([]byte, error) {
	args := []string{"capture-pane", "-p", "-J"}
	if len(req.Pane) > 0 {
		args = append(args, "-t", req.Pane)
	}
	if n := req.StartLine; n != 0 {
		args = append(args, "-S", strconv.Itoa(n))
	}
	if n := req.EndLine; n != 0 {
		args = append(args, "-E", strconv.Itoa(n))
	}
	return s.output("capture pane", req, args...)
}

// DisplayMessage prints the given message with tmux and returns its output.
func (s *ShellDriver) DisplayMessage(req DisplayMessageRequest) ([]byte, error) {
	args := []string{"display-message", "-p"}
	if len(req.Pane) > 0 {
		args = append(args, "-t", req.Pane)
	}
	args = append(args, req.Message)
	return s.output("display message", req, args...)
}

// SwapPane runs the swap-pane command.
func (s *ShellDriver) SwapPane(req SwapPaneRequest) error {
	args := []string{"swap-pane", "-t", req.Destination}
	if src := req.Source; len(src) > 0 {
		args = append(args, "-s", src)
	}
	if req.MaintainZoom {
		args = append(args, "-Z")
	}
	return s.runCmd("swap pane", req, args...)
}

// ResizeWindow runs the resize-window command.
func (s *ShellDriver) ResizeWindow(req ResizeWindowRequest) error {
	args := []string{"resize-window"}
	if w := req.Window; len(w) > 0 {
		args = append(args, "-t", w)
	}
	if w := req.Width; w > 0 {
		args = append(args, "-x", strconv.Itoa(w))
	}
	if h := req.Height; h > 0 {
		args = append(args, "-y", strconv.Itoa(h))
	}
	return s.runCmd("resize window", req, args...)
}

// WaitForSignal runs the wait-for command.
func (s *ShellDriver) WaitForSignal(sig string) error {
	return s.runCmd("wait for", sig, "wait-for", sig)
}

// SendSignal runs the wait-for -S command.
func (s *ShellDriver) SendSignal(sig string) error {
	return s.runCmd("send signal", sig, "wait-for", "-S", sig)
}

// ShowOptions runs the show-options command.
func (s *ShellDriver) ShowOptions(req ShowOptionsRequest) ([]byte, error) {
	args := []string{"show-options"}
	if req.Global {
		args = append(args, "-g")
	}
	return s.output("show options", req, args...)
}

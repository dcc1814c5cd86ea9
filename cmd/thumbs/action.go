package main

import (
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/abhinav/tmux-thumbs/internal/log"
	shellwords "github.com/mattn/go-shellwords"
	"go.uber.org/multierr"
)

const (
	_placeholderArg = "{}"
	_paneIDEnvKey   = "THUMBS_PANE_ID"

	// tmux resolves the "current" pane of commands run without -t from
	// this.
	_tmuxPaneEnvKey = "TMUX_PANE"
)

type actionFactory struct {
	Log     *log.Logger
	Environ func() []string // == os.Environ
}

type newActionRequest struct {
	// Action is a multi-word shell command.
	Action string

	// Dir is the working directory for the command.
	// Defaults to this process's working directory.
	Dir string

	// PaneID identifies the pane the selection came from.
	PaneID string
}

// New builds a command handler from the provided request.
//
// The action should use "{}" as an argument to reference the selected
// text. If no "{}" is present, the selection will be sent to the command
// over stdin.
func (f *actionFactory) New(req newActionRequest) (action, error) {
	args, err := shellwords.Parse(req.Action)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, errors.New("empty action")
	}

	cmd := command{
		Name:    args[0],
		Dir:     req.Dir,
		Log:     f.Log,
		Environ: f.Environ,
	}
	if len(req.PaneID) > 0 {
		cmd.Env = []string{
			_paneIDEnvKey + "=" + req.PaneID,
			_tmuxPaneEnvKey + "=" + req.PaneID,
		}
	}

	args = args[1:]
	for i, arg := range args {
		if arg == _placeholderArg {
			return &argAction{
				command:    cmd,
				BeforeArgs: args[:i],
				AfterArgs:  args[i+1:],
			}, nil
		}
	}

	// No "{}" use stdin.
	return &stdinAction{
		command: cmd,
		Args:    args,
	}, nil
}

// action specifies how to handle the user's selection.
type action interface {
	Run(text string) error
}

// command holds what stdinAction and argAction have in common.
type command struct {
	Name string
	Dir  string
	Env  []string // in addition to Environ

	Log     *log.Logger
	Environ func() []string
}

func (c *command) run(args []string, stdin io.Reader) (err error) {
	logw := &log.Writer{Log: c.Log.WithName(c.Name)}
	defer multierr.AppendInvoke(&err, multierr.Close(logw))

	cmd := exec.Command(c.Name, args...)
	cmd.Stdin = stdin
	cmd.Dir = c.Dir
	cmd.Stdout = logw
	cmd.Stderr = logw
	cmd.Env = append(c.Environ(), c.Env...)
	return cmd.Run()
}

type stdinAction struct {
	command

	Args []string
}

func (h *stdinAction) Run(text string) error {
	return h.run(h.Args, strings.NewReader(text))
}

type argAction struct {
	command

	BeforeArgs, AfterArgs []string
}

func (h *argAction) Run(text string) error {
	args := make([]string, 0, len(h.BeforeArgs)+len(h.AfterArgs)+1)
	args = append(args, h.BeforeArgs...)
	args = append(args, text)
	args = append(args, h.AfterArgs...)
	return h.run(args, nil)
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/abhinav/tmux-thumbs/internal/log"
	"github.com/abhinav/tmux-thumbs/internal/tail"
	"github.com/abhinav/tmux-thumbs/internal/tmux"
	"github.com/abhinav/tmux-thumbs/internal/tmux/tmuxopt"
	"go.uber.org/multierr"
)

const (
	_parentPIDEnv = "TMUX_THUMBS_WRAPPED_BY"
	_signalPrefix = "TMUX_THUMBS_WRAPPER_"
)

// wrapper wraps another function to ensure that it runs in its own tmux
// session that it has full ownership of.
type wrapper struct {
	Wrapped interface{ Run(*config) error } // wrapped command
	Tmux    tmux.Driver
	Log     *log.Logger

	Executable func() (string, error) // os.Executable
	Getenv     func(string) string    // os.Getenv
	Getpid     func() int             // os.Getpid

	// To override tmux.InspectPane for tests.
	inspectPane func(tmux.Driver, string) (*tmux.PaneInfo, error)
}

// Run runs the wrapper with the provided configuration. If we're already
// wrapped in a tmux session, Run calls the wrapped command. Otherwise, it
// re-runs the binary in a new tmux session and waits for it to exit.
// Logs written by the wrapped command are reproduced to the wrapper's log.
//
// Configuration from tmux options and the config file is resolved here, so
// the wrapped command receives everything as flags.
func (w *wrapper) Run(cfg *config) (err error) {
	// TMUX_THUMBS_WRAPPED_BY holds the PID of the wrapper process. The
	// wrapped process blocks the wrapper with "tmux wait-for" on a signal
	// named after that PID.
	if parent := w.Getenv(_parentPIDEnv); len(parent) > 0 {
		defer func() {
			err = multierr.Append(err, w.Tmux.SendSignal(_signalPrefix+parent))
		}()
		return w.Wrapped.Run(cfg)
	}
	parent := strconv.Itoa(w.Getpid())

	exe, err := w.Executable()
	if err != nil {
		return fmt.Errorf("determine executable: %w", err)
	}

	// Pane IDs are unique across sessions, unlike indexes.
	inspectPane := tmux.InspectPane
	if w.inspectPane != nil {
		inspectPane = w.inspectPane
	}
	pane, err := inspectPane(w.Tmux, cfg.Pane)
	if err != nil {
		return fmt.Errorf("inspect pane %q: %w", cfg.Pane, err)
	}
	cfg.Pane = pane.ID

	if err := w.loadConfig(cfg); err != nil {
		return err
	}

	// Send the logs to a temporary file that we will copy from until we
	// exit.
	tmpLog, err := os.CreateTemp("", "tmux-thumbs")
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, tmpLog.Close(), os.Remove(tmpLog.Name()))
	}()
	cfg.LogFile = tmpLog.Name()

	req := tmux.NewSessionRequest{
		Width:    pane.Width,
		Height:   pane.Height,
		Detached: true,
		Env:      []string{fmt.Sprintf("%v=%v", _parentPIDEnv, parent)},
		Command:  append([]string{exe}, cfg.Flags()...),
	}
	if _, err := w.Tmux.NewSession(req); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	logw := &log.Writer{Log: w.Log}
	defer multierr.AppendInvoke(&err, multierr.Close(logw))

	tee := tail.Tee{W: logw, R: tmpLog}
	tee.Start()
	defer func() {
		if terr := tee.Stop(); terr != nil {
			err = multierr.Append(err, fmt.Errorf("stopped copying logs: %w", terr))
		}
	}()

	return w.Tmux.WaitForSignal(_signalPrefix + parent)
}

// loadConfig fills cfg from tmux options, then the config file.
func (w *wrapper) loadConfig(cfg *config) error {
	var tmuxCfg config
	loader := tmuxopt.Loader{Tmux: w.Tmux}
	tmuxCfg.RegisterOptions(&loader)
	if err := loader.Load(tmux.ShowOptionsRequest{Global: true}); err != nil {
		return fmt.Errorf("load options: %w", err)
	}
	cfg.FillFrom(&tmuxCfg)

	path, required := cfg.ConfigFile, true
	if len(path) == 0 {
		path, required = defaultConfigPath(w.Getenv), false
	}
	fileCfg, err := loadConfigFile(path, required)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.FillFrom(fileCfg)

	w.Log.Debug("loaded config", "file", path, "flags", cfg.Flags())
	return nil
}

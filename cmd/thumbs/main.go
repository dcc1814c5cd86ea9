package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/abhinav/tmux-thumbs/internal/log"
	"github.com/abhinav/tmux-thumbs/internal/paniclog"
	"github.com/abhinav/tmux-thumbs/internal/tmux"
	tcell "github.com/gdamore/tcell/v2"
	"go.uber.org/multierr"
)

var _version = "dev"

var _main = mainCmd{
	Stdout:     os.Stdout,
	Stderr:     os.Stderr,
	Executable: os.Executable,
	Getenv:     os.Getenv,
	Environ:    os.Environ,
	Getpid:     os.Getpid,
}

func main() {
	if err := run(&_main, os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *mainCmd, args []string) (err error) {
	var cfg config
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "thumbs version %v\n", _version)
		return nil
	}

	if args := flag.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected arguments %q", args)
	}

	return cmd.Run(&cfg)
}

type mainCmd struct {
	Stdout io.Writer
	Stderr io.Writer

	Executable func() (string, error) // == os.Executable
	Getenv     func(string) string    // == os.Getenv
	Environ    func() []string        // == os.Environ
	Getpid     func() int

	runTarget runTargetFunc
}

const _name = "thumbs"

const _usage = `usage: %v [options]

Highlights interesting text in a tmux pane, such as URLs, paths, hashes,
and IP addresses, and labels each with a hint. Type a hint, or move to a
match with the arrow keys and press Enter, to act on that text.

The following flags are available:

	-pane PANE
		target pane.
		This may be a pane index in the current window, or a unique
		pane identifier.
		Uses the current pane if unspecified.
	-alphabet NAME|CHARS
		characters used to generate hints. This is either the name of
		a preset or the characters themselves.
			-alphabet colemak-homerow
			-alphabet "asdfjkl;"
		Presets: numeric, abcd, and qwerty, azerty, qwertz, dvorak,
		colemak, each with -homerow, -left-hand, and -right-hand
		variants.
		Uses qwerty by default.
	-reverse
		assign hints starting at the bottom of the pane.
	-unique
		label each distinct text once, instead of every occurrence.
	-position left|right
		draw hints over the start or the end of matches.
		Uses left by default.
	-fg-color COLOR
	-bg-color COLOR
		colors of matched text. Default: green on black.
	-hint-fg-color COLOR
	-hint-bg-color COLOR
		colors of hints. Default: yellow on black.
	-select-fg-color COLOR
		color of the match under the cursor, and of typed hint
		characters. Default: blue.
		Colors are names like "red" or "#rrggbb" values.
	-regexp NAME:PATTERN
		regular expressions to search for.
		Name identifies the pattern. Add this option any number of
		times.
			-regexp 'jira:[A-Z]+-[0-9]+'
		Use built-in names to replace or remove built-in patterns.
			-regexp 'ipv6:'
		The first capture group, if any, is the selected text.
	-command COMMAND
	-upcase-command COMMAND
		commands that handle the selection.
		'command' always runs. 'upcase-command' runs after it if the
		hint was typed in uppercase.
		The first '{}' argument is replaced with the selected text. If
		there is no '{}', the selected text is sent over stdin.
			-command pbcopy -upcase-command 'open {}'
		Default: 'tmux set-buffer -- {}' and 'tmux paste-buffer'.
	-tmux PATH
		path to tmux executable.
		Searches $PATH for tmux by default.
	-config FILE
		TOML file with defaults for the options above.
		Uses $XDG_CONFIG_HOME/tmux-thumbs/config.toml by default.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-version
		display version information.

Options may also be set with tmux options named after the flags:
@thumbs-alphabet, @thumbs-reverse, @thumbs-command, and so on.
Set @thumbs-regexp-NAME to add a regular expression.
`

func (cmd *mainCmd) init() {
	if cmd.runTarget == nil {
		cmd.runTarget = runTarget
	}
}

func (cmd *mainCmd) Run(cfg *config) (err error) {
	cmd.init()

	useColor := false
	if file := cfg.LogFile; len(file) > 0 {
		f, ferr := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if ferr != nil {
			return fmt.Errorf("open log %q: %w", file, ferr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		cmd.Stderr = f
	} else if term := cmd.Getenv("TERM"); len(term) > 0 && term != "dumb" {
		useColor = true
	}

	defer paniclog.Recover(&err, cmd.Stderr)

	lvl := log.Info
	if cfg.Verbose {
		lvl = log.Debug
	}
	logger := log.New(cmd.Stderr, lvl)
	if useColor {
		logger = log.NewColor(cmd.Stderr, lvl)
	}

	tmuxDriver := tmux.ShellDriver{Path: cfg.TmuxPath}
	tmuxDriver.SetLogger(logger.WithName("tmux"))

	target := &wrapper{
		Wrapped: &app{
			Log:       logger,
			Tmux:      &tmuxDriver,
			NewScreen: tcell.NewScreen,
			NewAction: (&actionFactory{
				Log:     logger,
				Environ: cmd.Environ,
			}).New,
		},
		Tmux:       &tmuxDriver,
		Log:        logger,
		Executable: cmd.Executable,
		Getenv:     cmd.Getenv,
		Getpid:     cmd.Getpid,
	}

	return cmd.runTarget(target, cfg)
}

// runTargetFunc runs objects that conform to the wrapper/app signatures. This
// type is intentionally cumbersome because it's not meant to be used widely.
type runTargetFunc func(interface {
	Run(*config) error
}, *config) error

func runTarget(target interface{ Run(*config) error }, cfg *config) error {
	return target.Run(cfg)
}

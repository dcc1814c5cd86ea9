package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/abhinav/tmux-thumbs/internal/tmux/tmuxopt"
)

var _defaultConfig = config{
	Alphabet:      _defaultAlphabet,
	Position:      "left",
	FgColor:       "green",
	BgColor:       "black",
	HintFgColor:   "yellow",
	HintBgColor:   "black",
	SelectFgColor: "blue",
	Command:       "tmux set-buffer -- {}",
	UpcaseCommand: "tmux paste-buffer",
}

type config struct {
	Pane     string
	Alphabet alphabet
	Reverse  bool
	Unique   bool
	Position position

	FgColor       color
	BgColor       color
	HintFgColor   color
	HintBgColor   color
	SelectFgColor color

	Regexes regexes

	Command       string
	UpcaseCommand string

	TmuxPath   string
	ConfigFile string
	LogFile    string
	Verbose    bool
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.StringVar(&c.Pane, "pane", "", "")
	flag.Var(&c.Alphabet, "alphabet", "")
	flag.BoolVar(&c.Reverse, "reverse", false, "")
	flag.BoolVar(&c.Unique, "unique", false, "")
	flag.Var(&c.Position, "position", "")
	flag.Var(&c.FgColor, "fg-color", "")
	flag.Var(&c.BgColor, "bg-color", "")
	flag.Var(&c.HintFgColor, "hint-fg-color", "")
	flag.Var(&c.HintBgColor, "hint-bg-color", "")
	flag.Var(&c.SelectFgColor, "select-fg-color", "")
	flag.Var(&c.Regexes, "regexp", "")
	flag.StringVar(&c.Command, "command", "", "")
	flag.StringVar(&c.UpcaseCommand, "upcase-command", "", "")
	flag.StringVar(&c.TmuxPath, "tmux", "", "")
	flag.StringVar(&c.ConfigFile, "config", "", "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

const _optionPrefix = "@thumbs-"

func (c *config) RegisterOptions(load *tmuxopt.Loader) {
	load.Var(&c.Alphabet, _optionPrefix+"alphabet")
	load.BoolVar(&c.Reverse, _optionPrefix+"reverse")
	load.BoolVar(&c.Unique, _optionPrefix+"unique")
	load.Var(&c.Position, _optionPrefix+"position")
	load.Var(&c.FgColor, _optionPrefix+"fg-color")
	load.Var(&c.BgColor, _optionPrefix+"bg-color")
	load.Var(&c.HintFgColor, _optionPrefix+"hint-fg-color")
	load.Var(&c.HintBgColor, _optionPrefix+"hint-bg-color")
	load.Var(&c.SelectFgColor, _optionPrefix+"select-fg-color")
	load.MapVar(&c.Regexes, _optionPrefix+"regexp-")
	load.StringVar(&c.Command, _optionPrefix+"command")
	load.StringVar(&c.UpcaseCommand, _optionPrefix+"upcase-command")
}

// FillFrom updates this config object, filling empty values with values from
// the provided struct but not overwriting those that are already set.
//
// Regexes are merged: those in c win over those in o with the same name.
func (c *config) FillFrom(o *config) {
	if len(c.Pane) == 0 {
		c.Pane = o.Pane
	}
	if len(c.Alphabet) == 0 {
		c.Alphabet = o.Alphabet
	}
	c.Reverse = c.Reverse || o.Reverse
	c.Unique = c.Unique || o.Unique
	if len(c.Position) == 0 {
		c.Position = o.Position
	}
	fillColor(&c.FgColor, o.FgColor)
	fillColor(&c.BgColor, o.BgColor)
	fillColor(&c.HintFgColor, o.HintFgColor)
	fillColor(&c.HintBgColor, o.HintBgColor)
	fillColor(&c.SelectFgColor, o.SelectFgColor)

	if len(o.Regexes) > 0 {
		merged := append(regexes(nil), o.Regexes...)
		for _, r := range c.Regexes {
			_ = merged.Put(r.Name, r.Pattern) // names were validated by Set
		}
		c.Regexes = merged
	}

	if len(c.Command) == 0 {
		c.Command = o.Command
	}
	if len(c.UpcaseCommand) == 0 {
		c.UpcaseCommand = o.UpcaseCommand
	}
	if len(c.TmuxPath) == 0 {
		c.TmuxPath = o.TmuxPath
	}
	if len(c.ConfigFile) == 0 {
		c.ConfigFile = o.ConfigFile
	}
	if len(c.LogFile) == 0 {
		c.LogFile = o.LogFile
	}
	c.Verbose = c.Verbose || o.Verbose
}

func fillColor(dst *color, src color) {
	if len(*dst) == 0 {
		*dst = src
	}
}

// Flags rebuilds a list of arguments from which this configuration may be
// parsed.
func (c *config) Flags() []string {
	var args []string
	str := func(name, value string) {
		if len(value) > 0 {
			args = append(args, "-"+name, value)
		}
	}
	boolean := func(name string, value bool) {
		if value {
			args = append(args, "-"+name)
		}
	}

	str("pane", c.Pane)
	str("alphabet", c.Alphabet.String())
	boolean("reverse", c.Reverse)
	boolean("unique", c.Unique)
	str("position", c.Position.String())
	str("fg-color", c.FgColor.String())
	str("bg-color", c.BgColor.String())
	str("hint-fg-color", c.HintFgColor.String())
	str("hint-bg-color", c.HintBgColor.String())
	str("select-fg-color", c.SelectFgColor.String())
	for _, r := range c.Regexes {
		str("regexp", r.String())
	}
	str("command", c.Command)
	str("upcase-command", c.UpcaseCommand)
	str("tmux", c.TmuxPath)
	str("config", c.ConfigFile)
	str("log", c.LogFile)
	boolean("verbose", c.Verbose)
	return args
}

// fileConfig is the layout of the config file.
//
//	alphabet = "colemak"
//	position = "right"
//	command = "pbcopy"
//
//	[regexp]
//	jira = "[A-Z]+-[0-9]+"
//	sha = ""  # disable a built-in
type fileConfig struct {
	Alphabet      alphabet          `toml:"alphabet"`
	Reverse       bool              `toml:"reverse"`
	Unique        bool              `toml:"unique"`
	Position      position          `toml:"position"`
	FgColor       color             `toml:"fg-color"`
	BgColor       color             `toml:"bg-color"`
	HintFgColor   color             `toml:"hint-fg-color"`
	HintBgColor   color             `toml:"hint-bg-color"`
	SelectFgColor color             `toml:"select-fg-color"`
	Command       string            `toml:"command"`
	UpcaseCommand string            `toml:"upcase-command"`
	Regexp        map[string]string `toml:"regexp"`
}

// defaultConfigPath reports where the config file lives if -config isn't
// given: $XDG_CONFIG_HOME/tmux-thumbs/config.toml, with XDG_CONFIG_HOME
// defaulting to ~/.config.
func defaultConfigPath(getenv func(string) string) string {
	dir := getenv("XDG_CONFIG_HOME")
	if len(dir) == 0 {
		home := getenv("HOME")
		if len(home) == 0 {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "tmux-thumbs", "config.toml")
}

// loadConfigFile reads a config file. A missing file is an error only if
// required is set.
func loadConfigFile(path string, required bool) (*config, error) {
	var cfg config
	if len(path) == 0 {
		return &cfg, nil
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}

	var fc fileConfig
	md, err := toml.Decode(string(bs), &fc)
	if err != nil {
		return nil, fmt.Errorf("decode %v: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decode %v: unknown keys: %v", path, strings.Join(keys, ", "))
	}

	cfg = config{
		Alphabet:      fc.Alphabet,
		Reverse:       fc.Reverse,
		Unique:        fc.Unique,
		Position:      fc.Position,
		FgColor:       fc.FgColor,
		BgColor:       fc.BgColor,
		HintFgColor:   fc.HintFgColor,
		HintBgColor:   fc.HintBgColor,
		SelectFgColor: fc.SelectFgColor,
		Command:       fc.Command,
		UpcaseCommand: fc.UpcaseCommand,
	}
	if err := cfg.Regexes.putMap(fc.Regexp); err != nil {
		return nil, fmt.Errorf("decode %v: %w", path, err)
	}
	return &cfg, nil
}

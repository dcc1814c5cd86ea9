// Package tmuxopt loads tmux options into Go variables.
//
//	var l tmuxopt.Loader
//	l.StringVar(&cfg.Alphabet, "@thumbs-alphabet")
//	l.BoolVar(&cfg.Reverse, "@thumbs-reverse")
//	err := l.Load(tmux.ShowOptionsRequest{Global: true})
package tmuxopt

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"strings"
	"sync"

	"github.com/abhinav/tmux-thumbs/internal/tmux"
	"go.uber.org/multierr"
)

// Value is a receiver for a tmux option value.
type Value interface {
	Set(value string) error
}

var _ Value = flag.Value(nil) // flag.Values work too

// MapValue receives every option that shares a prefix. Put is called
// with the rest of the option name and its value.
type MapValue interface {
	Put(key, value string) error
}

// Loader loads tmux options into user-specified variables.
type Loader struct {
	Tmux tmux.Driver

	once   sync.Once
	values map[string]Value
	maps   map[string]MapValue // prefix -> value
}

func (l *Loader) init() {
	l.once.Do(func() {
		l.values = make(map[string]Value)
		l.maps = make(map[string]MapValue)
	})
}

// Var loads the given option into the provided Value.
func (l *Loader) Var(val Value, option string) {
	l.init()
	l.values[option] = val
}

// StringVar loads the given option as a string.
func (l *Loader) StringVar(dest *string, option string) {
	l.Var((*stringValue)(dest), option)
}

// BoolVar loads the given option as a boolean. tmux spells these "on" and
// "off", but the usual Go spellings are accepted too.
func (l *Loader) BoolVar(dest *bool, option string) {
	l.Var((*boolValue)(dest), option)
}

// MapVar loads all options starting with prefix into the given MapValue.
func (l *Loader) MapVar(val MapValue, prefix string) {
	l.init()
	l.maps[prefix] = val
}

// Load runs show-options with the provided request and fills every
// registered variable that has a value. Variables without a value in tmux
// are left alone.
func (l *Loader) Load(req tmux.ShowOptionsRequest) (err error) {
	l.init()
	if len(l.values) == 0 && len(l.maps) == 0 {
		return nil
	}

	out, err := l.Tmux.ShowOptions(req)
	if err != nil {
		return err
	}

	scan := bufio.NewScanner(bytes.NewReader(out))
	for scan.Scan() {
		name, value, ok := strings.Cut(scan.Text(), " ")
		if !ok {
			continue
		}
		value = unquote(value)

		if v, ok := l.values[name]; ok {
			if serr := v.Set(value); serr != nil {
				err = multierr.Append(err, fmt.Errorf("load option %q: %w", name, serr))
			}
			continue
		}

		for prefix, m := range l.maps {
			key, ok := strings.CutPrefix(name, prefix)
			if !ok || len(key) == 0 {
				continue
			}
			if perr := m.Put(key, value); perr != nil {
				err = multierr.Append(err, fmt.Errorf("load option %q: %w", name, perr))
			}
		}
	}

	return multierr.Append(err, scan.Err())
}

// unquote undoes the quoting show-options applies to values: surrounding
// single or double quotes are dropped and backslash escapes are resolved.
// Values that aren't quoted properly are returned with only escapes
// resolved.
func unquote(s string) string {
	if n := len(s); n >= 2 && (s[0] == '"' || s[0] == '\'') && s[n-1] == s[0] {
		s = s[1 : n-1]
	}
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			sb.WriteByte(c)
			continue
		}

		i++
		switch s[i] {
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

type stringValue string

func (v *stringValue) Set(s string) error {
	*(*string)(v) = s
	return nil
}

type boolValue bool

func (v *boolValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "on", "yes", "true", "1":
		*v = true
	case "off", "no", "false", "0":
		*v = false
	default:
		return fmt.Errorf("invalid boolean value %q", s)
	}
	return nil
}

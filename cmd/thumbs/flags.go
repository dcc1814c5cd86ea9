package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/abhinav/tmux-thumbs/internal/thumbs"
	"github.com/abhinav/tmux-thumbs/internal/tmux/tmuxopt"
	tcell "github.com/gdamore/tcell/v2"
)

// color is a tcell color name or a #rrggbb value.
type color string

var _ flag.Value = (*color)(nil)

func (c *color) String() string { return string(*c) }

func (c *color) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, err := parseColor(s); err != nil {
		return err
	}
	*c = color(s)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *color) UnmarshalText(b []byte) error { return c.Set(string(b)) }

// Color resolves the color. Unset colors are tcell.ColorDefault.
func (c color) Color() tcell.Color {
	tc, _ := parseColor(string(c))
	return tc
}

func parseColor(s string) (tcell.Color, error) {
	if len(s) == 0 || s == "default" {
		return tcell.ColorDefault, nil
	}
	if tc := tcell.GetColor(s); tc != tcell.ColorDefault {
		return tc, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}

// position is where hints are drawn: "left" or "right".
type position string

var _ flag.Value = (*position)(nil)

func (p *position) String() string { return string(*p) }

func (p *position) Set(s string) error {
	if _, err := thumbs.ParsePosition(s); err != nil {
		return err
	}
	*p = position(s)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *position) UnmarshalText(b []byte) error { return p.Set(string(b)) }

// Position returns the parsed position. Unset is thumbs.Left.
func (p position) Position() thumbs.Position {
	pos, _ := thumbs.ParsePosition(string(p))
	return pos
}

// regexSpec is a user-specified detector. An empty pattern removes the
// detector with that name.
type regexSpec struct {
	Name    string
	Pattern string
}

func (r regexSpec) String() string {
	return r.Name + ":" + r.Pattern
}

// regexes is an ordered list of user-specified detectors with unique
// names. Later definitions of a name replace earlier ones in place.
type regexes []regexSpec

var (
	_ flag.Value       = (*regexes)(nil)
	_ tmuxopt.MapValue = (*regexes)(nil)
)

func (rs *regexes) String() string {
	if rs == nil {
		return ""
	}
	items := make([]string, len(*rs))
	for i, r := range *rs {
		items[i] = r.String()
	}
	return strings.Join(items, " ")
}

// Set parses a NAME:PATTERN pair.
func (rs *regexes) Set(s string) error {
	name, pattern, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("regexp %q must be in the form NAME:PATTERN", s)
	}
	return rs.Put(name, pattern)
}

// Put adds or replaces the named pattern.
func (rs *regexes) Put(name, pattern string) error {
	if len(name) == 0 {
		return fmt.Errorf("regexp %q must have a name", pattern)
	}

	for i, r := range *rs {
		if r.Name == name {
			(*rs)[i].Pattern = pattern
			return nil
		}
	}
	*rs = append(*rs, regexSpec{Name: name, Pattern: pattern})
	return nil
}

// putMap adds the contents of a name-to-pattern map in name order, so
// that results don't depend on map iteration.
func (rs *regexes) putMap(m map[string]string) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := rs.Put(name, m[name]); err != nil {
			return err
		}
	}
	return nil
}

// Detectors compiles the user's regexes for use with thumbs.WithCustom.
func (rs regexes) Detectors() ([]thumbs.Detector, error) {
	ds := make([]thumbs.Detector, 0, len(rs))
	for _, r := range rs {
		if len(r.Pattern) == 0 {
			ds = append(ds, thumbs.Detector{Name: r.Name})
			continue
		}

		d, err := thumbs.CompileDetector(r.Name, r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile regexp %q: %w", r.Name, err)
		}
		ds = append(ds, d)
	}
	return ds, nil
}

// Package tmuxfmt builds tmux format strings (see FORMATS in tmux(1)) and
// parses the values tmux prints for them.
package tmuxfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is a tmux format expression.
type Expr interface {
	render(*strings.Builder, bool)
}

// String is a literal. It must not contain tabs.
type String string

// Int is an integer literal.
type Int int

// Var references a format variable: #{name}.
type Var string

// Ternary picks Then or Else based on Cond: #{?cond,then,else}.
type Ternary struct{ Cond, Then, Else Expr }

// Equals compares two expressions as strings: #{==:lhs,rhs}.
type Equals struct{ LHS, RHS Expr }

// Render renders e in the tmux format syntax.
func Render(e Expr) string {
	var sb strings.Builder
	e.render(&sb, false)
	return sb.String()
}

func (s String) render(sb *strings.Builder, nested bool) {
	if !nested {
		sb.WriteString(string(s))
		return
	}

	// Inside #{...}, these have special meaning and must be escaped with
	// '#'.
	for _, r := range string(s) {
		if strings.ContainsRune(",#}", r) {
			sb.WriteByte('#')
		}
		sb.WriteRune(r)
	}
}

func (i Int) render(sb *strings.Builder, _ bool) {
	sb.WriteString(strconv.Itoa(int(i)))
}

func (v Var) render(sb *strings.Builder, _ bool) {
	sb.WriteString("#{")
	sb.WriteString(string(v))
	sb.WriteString("}")
}

func (t Ternary) render(sb *strings.Builder, _ bool) {
	sb.WriteString("#{?")
	t.Cond.render(sb, true)
	sb.WriteString(",")
	t.Then.render(sb, true)
	sb.WriteString(",")
	t.Else.render(sb, true)
	sb.WriteString("}")
}

func (e Equals) render(sb *strings.Builder, _ bool) {
	sb.WriteString("#{==:")
	e.LHS.render(sb, true)
	sb.WriteString(",")
	e.RHS.render(sb, true)
	sb.WriteString("}")
}

// Value receives the printed value of an expression.
type Value interface {
	Set(string) error
}

// Capturer reads the values of several expressions with a single tmux
// call.
//
//	var c tmuxfmt.Capturer
//	c.StringVar(&id, tmuxfmt.Var("pane_id"))
//	c.IntVar(&width, tmuxfmt.Var("pane_width"))
//	msg, parse := c.Prepare()
//	out, err := driver.DisplayMessage(tmux.DisplayMessageRequest{Message: msg})
//	// ...
//	err = parse(out)
type Capturer struct {
	exprs  []Expr
	values []Value
}

// Var records that the output of e should be fed to v.
func (c *Capturer) Var(v Value, e Expr) {
	c.exprs = append(c.exprs, e)
	c.values = append(c.values, v)
}

// StringVar records that the output of e should be stored in ptr.
func (c *Capturer) StringVar(ptr *string, e Expr) {
	c.Var((*stringValue)(ptr), e)
}

// IntVar records that the output of e should be parsed as an integer.
func (c *Capturer) IntVar(ptr *int, e Expr) {
	c.Var((*intValue)(ptr), e)
}

// BoolVar records that the output of e should be parsed as a tmux
// boolean: empty and "0" are false, everything else is true.
func (c *Capturer) BoolVar(ptr *bool, e Expr) {
	c.Var((*boolValue)(ptr), e)
}

// Prepare renders the recorded expressions into a single tab-separated
// message. parse reads tmux's output for that message into the recorded
// values. Extra fields in the output are ignored.
func (c *Capturer) Prepare() (msg string, parse func([]byte) error) {
	rendered := make([]string, len(c.exprs))
	for i, e := range c.exprs {
		rendered[i] = Render(e)
	}
	values := c.values

	return strings.Join(rendered, "\t"), func(out []byte) error {
		fields := strings.Split(strings.TrimRight(string(out), "\n"), "\t")
		for i, field := range fields {
			if i >= len(values) {
				break
			}
			if err := values[i].Set(strings.TrimSpace(field)); err != nil {
				return fmt.Errorf("capture %q: %w", rendered[i], err)
			}
		}
		return nil
	}
}

type stringValue string

func (v *stringValue) Set(s string) error {
	*v = stringValue(s)
	return nil
}

type intValue int

func (v *intValue) Set(s string) error {
	i, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*v = intValue(i)
	return nil
}

type boolValue bool

func (v *boolValue) Set(s string) error {
	*v = boolValue(len(s) > 0 && s != "0")
	return nil
}

package thumbs

import (
	tcell "github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Palette holds the colors used to draw matches and hints.
type Palette struct {
	Foreground tcell.Color // matched text
	Background tcell.Color // matched text

	HintForeground tcell.Color
	HintBackground tcell.Color

	// SelectForeground is used for the match under the cursor and for
	// the typed portion of hints.
	SelectForeground tcell.Color
}

// Draw is a single instruction to draw text on the screen.
type Draw struct {
	// Row and Col are screen positions. Col is in display columns, so
	// wide characters before it on the same row count twice.
	Row, Col int

	Text string

	Foreground, Background tcell.Color
	Bold                   bool
}

// Style returns the tcell style for this instruction.
func (d Draw) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(d.Foreground).
		Background(d.Background).
		Bold(d.Bold)
}

// Frame builds draw instructions for the current state: every match, with
// the one under the cursor highlighted, and hints over their matches.
//
// Frame must be called again after every state change.
func (c *Controller) Frame(p Palette) []Draw {
	draws := make([]Draw, 0, 2*len(c.matches))
	pending := c.pending()
	for i, m := range c.matches {
		col := displayColumn(c.lines[m.Row], m.Col)

		fg := p.Foreground
		if i == c.cursor {
			fg = p.SelectForeground
		}
		draws = append(draws, Draw{
			Row:        m.Row,
			Col:        col,
			Text:       m.Text,
			Foreground: fg,
			Background: p.Background,
		})

		if len(m.Hint) == 0 {
			continue
		}

		if c.opts.Position == Right {
			if extra := runewidth.StringWidth(m.Text) - runewidth.StringWidth(m.Hint); extra > 0 {
				col += extra
			}
		}
		draws = append(draws, c.hintDraws(m.Row, col, m.Hint, pending[i], p)...)
	}
	return draws
}

// hintDraws draws a hint code. If the code extends the typed input, the
// typed portion is highlighted.
func (c *Controller) hintDraws(row, col int, code string, extendsTyped bool, p Palette) []Draw {
	hint := Draw{
		Row:        row,
		Col:        col,
		Text:       code,
		Foreground: p.HintForeground,
		Background: p.HintBackground,
		Bold:       true,
	}

	typed := c.typed
	if !extendsTyped {
		return []Draw{hint}
	}

	// Highlight the portion of the hint already typed.
	done := hint
	done.Text = typed
	done.Foreground = p.SelectForeground

	rest := hint
	rest.Col += runewidth.StringWidth(typed)
	rest.Text = code[len(typed):]
	if len(rest.Text) == 0 {
		return []Draw{done}
	}
	return []Draw{done, rest}
}

// displayColumn converts a character offset in line into a display
// column. Widths are taken per grapheme cluster, as ui.DrawText does, so
// that hints line up with what the terminal shows.
func displayColumn(line string, chars int) int {
	var width, n int
	g := uniseg.NewGraphemes(line)
	for n < chars && g.Next() {
		n += len(g.Runes())
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

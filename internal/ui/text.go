package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/views"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Pos is a position in the terminal UI.
type Pos struct{ X, Y int }

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// DrawText draws a string on the provided view at the specified position.
// Returns the position after the last drawn cell, making it possible to
// continue drawing where the text ended.
//
//	pos = DrawText("foo\nb", style, view, pos)
//	pos = DrawText("ar", style, view, pos)
//
// Newlines move to the start of the next row. Text that bleeds past the
// right edge of the view is clipped, not wrapped: callers position every
// row themselves. Rows below the view are ignored.
func DrawText(s string, style tcell.Style, view views.View, pos Pos) Pos {
	if len(s) == 0 {
		return pos
	}

	w, h := view.Size()
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		s := g.Str()
		if s == "\n" {
			pos.Y++
			pos.X = 0
			continue
		}

		if pos.Y >= h {
			return pos
		}

		width := runewidth.StringWidth(s)
		if pos.X < w && pos.X >= 0 {
			r := g.Runes()
			view.SetContent(pos.X, pos.Y, r[0], r[1:], style)
		}
		pos.X += width
	}

	return pos
}

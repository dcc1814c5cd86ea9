package thumbs

import (
	"strings"
	"unicode"

	"github.com/abhinav/tmux-thumbs/internal/ui"
	tcell "github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/views"
)

// Handler is notified when the user finishes with the widget.
type Handler interface {
	// HandleSelection reports the text the user picked.
	HandleSelection(Selection)

	// HandleCancel reports that the user left without picking anything.
	HandleCancel()
}

//go:generate mockgen -destination mock_handler_test.go -package thumbs github.com/abhinav/tmux-thumbs/internal/thumbs Handler

// WidgetConfig configures the thumbs widget.
type WidgetConfig struct {
	// Lines of captured text to display.
	Lines []Line

	// Controller over matches in Lines.
	Controller *Controller

	// Palette used to draw matches and hints.
	Palette Palette

	// Normal is the style for text outside matches.
	Normal tcell.Style

	// Handler is told about the outcome. Required.
	Handler Handler
}

// Widget displays captured text with hints over its matches, and feeds
// keyboard input to a Controller.
type Widget struct {
	lines   []Line
	ctrl    *Controller
	palette Palette
	normal  tcell.Style
	handler Handler

	reported bool
}

var _ ui.Widget = (*Widget)(nil)

// Build builds a new Widget. The cursor is placed on its starting match.
func (cfg *WidgetConfig) Build() *Widget {
	cfg.Controller.InitCursor()
	return &Widget{
		lines:   cfg.Lines,
		ctrl:    cfg.Controller,
		palette: cfg.Palette,
		normal:  cfg.Normal,
		handler: cfg.Handler,
	}
}

// Draw draws the captured text and the current frame onto the view.
func (w *Widget) Draw(view views.View) {
	for _, l := range w.lines {
		if len(strings.TrimRightFunc(l.Text, unicode.IsSpace)) == 0 {
			continue
		}
		ui.DrawText(l.Text, w.normal, view, ui.Pos{X: 0, Y: l.Row})
	}

	for _, d := range w.ctrl.Frame(w.palette) {
		ui.DrawText(d.Text, d.Style(), view, ui.Pos{X: d.Col, Y: d.Row})
	}
}

// HandleEvent feeds key presses to the controller. Events the controller
// has no use for are left to the caller.
func (w *Widget) HandleEvent(ev tcell.Event) (handled bool) {
	ek, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	cev, ok := KeyEvent(ek)
	if !ok {
		return false
	}

	state := w.ctrl.Handle(cev)
	if state.Done() && !w.reported {
		w.reported = true
		if sel, ok := w.ctrl.Result(); ok {
			w.handler.HandleSelection(sel)
		} else {
			w.handler.HandleCancel()
		}
	}
	return true
}

// KeyEvent translates a key press into a controller event. It returns
// false for keys that have no meaning to the controller.
func KeyEvent(ek *tcell.EventKey) (Event, bool) {
	switch ek.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return EscapeEvent{}, true
	case tcell.KeyEnter:
		return ConfirmEvent{}, true
	case tcell.KeyUp, tcell.KeyLeft:
		return PrevEvent{}, true
	case tcell.KeyDown, tcell.KeyRight:
		return NextEvent{}, true
	case tcell.KeyRune:
		r := ek.Rune()
		// EventKey may report 'A' without ModShift, or 'a' with it.
		if ek.Modifiers()&tcell.ModShift != 0 {
			r = unicode.ToUpper(r)
		}
		return CharEvent{Rune: r}, true
	default:
		return nil, false
	}
}

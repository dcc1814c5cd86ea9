package ui

import (
	"errors"
	"fmt"

	"github.com/abhinav/tmux-thumbs/internal/log"
	"github.com/abhinav/tmux-thumbs/internal/paniclog"
	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/views"
)

//go:generate mockgen -destination mock_widget_test.go -package ui github.com/abhinav/tmux-thumbs/internal/ui Widget

// Widget is the root of what App shows. App clears the view before each
// Draw. HandleEvent reports false for events the widget ignored, such as
// keys outside the hint alphabet.
type Widget interface {
	Draw(views.View)
	HandleEvent(tcell.Event) (handled bool)
}

// ErrInputClosed indicates that the screen stopped delivering events
// before the application was stopped.
var ErrInputClosed = errors.New("input source closed")

// App drives the main UI for the application.
//
// App runs entirely on the goroutine that calls Run: it draws the root
// widget, blocks until the next event, hands it to the root widget, and
// repeats until Stop is called.
type App struct {
	// Root is the main application widget.
	Root Widget

	// Screen upon which to draw. App does not initialize or finalize the
	// screen.
	Screen tcell.Screen

	// Logger to post messages to. Optional.
	Log *log.Logger

	stopped bool
}

// Run runs the application until Stop is called, or the screen fails to
// deliver events. Panics in the root widget are reported as errors.
func (app *App) Run() (err error) {
	if app.Log == nil {
		app.Log = log.Discard
	}
	defer app.handlePanic(&err)

	for !app.stopped {
		app.draw()

		ev := app.Screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return ErrInputClosed
		case *tcell.EventError:
			return fmt.Errorf("poll event: %w", ev)
		}

		app.handleEvent(ev)
	}

	return nil
}

// Stop informs the application that it's time to stop. Run returns after
// the event being handled, if any.
func (app *App) Stop() {
	app.stopped = true
}

func (app *App) draw() {
	app.Screen.Clear()
	app.Root.Draw(app.Screen)
	app.Screen.Show()
}

func (app *App) handleEvent(ev tcell.Event) {
	if app.Root.HandleEvent(ev) {
		return
	}

	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.Screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			app.Log.Debug("stopping on unhandled key", "key", ev.Name())
			app.Stop()
		}
	}
}

func (app *App) handlePanic(err *error) {
	pval := recover()
	if pval == nil {
		return
	}

	w := &log.Writer{Log: app.Log, Level: log.Error}
	defer w.Close()

	*err = paniclog.Handle(pval, w)
	app.Stop()
}

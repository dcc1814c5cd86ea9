package main

import (
	"fmt"

	"github.com/abhinav/tmux-thumbs/internal/log"
	"github.com/abhinav/tmux-thumbs/internal/thumbs"
	"github.com/abhinav/tmux-thumbs/internal/tmux"
	"github.com/abhinav/tmux-thumbs/internal/ui"
	tcell "github.com/gdamore/tcell/v2"
)

// app implements the main thumbs application logic. It assumes that it's
// running inside a tmux window that it has full control over. (wrapper
// takes care of ensuring that.)
type app struct {
	Log       *log.Logger
	Tmux      tmux.Driver
	NewAction func(newActionRequest) (action, error)

	NewScreen func() (tcell.Screen, error) // == tcell.NewScreen
}

// Run runs the application with the provided configuration.
func (app *app) Run(cfg *config) error {
	cfg.FillFrom(&_defaultConfig)

	custom, err := cfg.Regexes.Detectors()
	if err != nil {
		return err
	}
	scanner := thumbs.Scanner{
		Detectors: thumbs.WithCustom(thumbs.DefaultDetectors(), custom),
	}
	opts := thumbs.Options{
		Reverse:  cfg.Reverse,
		Unique:   cfg.Unique,
		Position: cfg.Position.Position(),
	}
	palette := thumbs.Palette{
		Foreground:       cfg.FgColor.Color(),
		Background:       cfg.BgColor.Color(),
		HintForeground:   cfg.HintFgColor.Color(),
		HintBackground:   cfg.HintBgColor.Color(),
		SelectForeground: cfg.SelectFgColor.Color(),
	}

	targetPane, err := tmux.InspectPane(app.Tmux, cfg.Pane)
	if err != nil {
		return fmt.Errorf("inspect pane %q: %w", cfg.Pane, err)
	}
	app.Log.Debug("inspected target", "pane", targetPane)

	// Size specification in new-session doesn't always take and causes
	// flickers when swapping panes around. Make sure that the window is
	// right-sized.
	myPane, err := tmux.InspectPane(app.Tmux, "")
	if err != nil {
		return fmt.Errorf("inspect own pane: %w", err)
	}

	if myPane.Width != targetPane.Width || myPane.Height != targetPane.Height {
		resizeReq := tmux.ResizeWindowRequest{
			Window: myPane.WindowID,
			Width:  targetPane.Width,
			Height: targetPane.Height,
		}
		if err := app.Tmux.ResizeWindow(resizeReq); err != nil {
			// Not the end of the world. Keep going.
			app.Log.Error("unable to resize window", "window", myPane.WindowID, "error", err)
		}
	}

	creq := tmux.CapturePaneRequest{Pane: targetPane.ID}
	if targetPane.Mode == tmux.CopyMode {
		// The default capture is the bottom of the pane, not what's
		// visible in copy mode.
		// TODO: An end line of 0 is dropped by CapturePane, so a pane
		// scrolled up by exactly height-1 lines captures too much.
		creq.StartLine, creq.EndLine = targetPane.VisibleLines()
	}
	bs, err := app.Tmux.CapturePane(creq)
	if err != nil {
		return fmt.Errorf("capture pane %q: %w", targetPane.ID, err)
	}

	screen, err := app.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	width, _ := screen.Size()
	lines, matches := scanner.ScanText(string(bs), width)
	matches, err = thumbs.Assign(matches, []rune(cfg.Alphabet), opts)
	if err != nil {
		return fmt.Errorf("assign hints: %w", err)
	}
	app.Log.Debug("found matches", "count", len(matches))

	sess := session{Log: app.Log}
	sess.Init(screen, (&thumbs.WidgetConfig{
		Lines:      lines,
		Controller: thumbs.NewController(lines, matches, opts),
		Palette:    palette,
		Normal: tcell.StyleDefault.
			Background(tcell.ColorBlack).
			Foreground(tcell.ColorWhite),
		Handler: &sess,
	}).Build())

	if err := app.Tmux.SwapPane(tmux.SwapPaneRequest{
		Source:       targetPane.ID,
		Destination:  myPane.ID,
		MaintainZoom: true,
	}); err != nil {
		return fmt.Errorf("swap in: %w", err)
	}
	swapBack := func() {
		if err := app.Tmux.SwapPane(tmux.SwapPaneRequest{
			Source:       myPane.ID,
			Destination:  targetPane.ID,
			MaintainZoom: true,
		}); err != nil {
			app.Log.Error("unable to swap panes back", "error", err)
		}
	}

	sel, ok, err := sess.Wait()
	swapBack()
	if err != nil || !ok {
		return err
	}

	app.Log.Debug("selected", "text", sel.Text, "alternate", sel.Alternate)
	return app.runActions(cfg, targetPane, sel)
}

func (app *app) runActions(cfg *config, pane *tmux.PaneInfo, sel thumbs.Selection) error {
	commands := []string{cfg.Command}
	if sel.Alternate && len(cfg.UpcaseCommand) > 0 {
		commands = append(commands, cfg.UpcaseCommand)
	}

	for _, cmd := range commands {
		action, err := app.NewAction(newActionRequest{
			Action: cmd,
			Dir:    pane.CurrentPath,
			PaneID: pane.ID,
		})
		if err != nil {
			return fmt.Errorf("load action %q: %w", cmd, err)
		}
		if err := action.Run(sel.Text); err != nil {
			return fmt.Errorf("run action %q: %w", cmd, err)
		}
	}
	return nil
}

// session runs the UI until the user is done with it.
type session struct {
	Log *log.Logger

	ui  *ui.App
	sel thumbs.Selection
	ok  bool
}

var _ thumbs.Handler = (*session)(nil)

func (s *session) Init(screen tcell.Screen, w *thumbs.Widget) {
	s.ui = &ui.App{
		Root:   w,
		Screen: screen,
		Log:    s.Log,
	}
}

// Wait runs the UI and reports the selection, if any.
func (s *session) Wait() (sel thumbs.Selection, ok bool, err error) {
	err = s.ui.Run()
	return s.sel, s.ok, err
}

func (s *session) HandleSelection(sel thumbs.Selection) {
	s.sel, s.ok = sel, true
	s.ui.Stop()
}

func (s *session) HandleCancel() {
	s.ui.Stop()
}

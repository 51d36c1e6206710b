// Package app runs widgets as a stack of centered layers on a terminal
package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/tuikit/geom"
	"github.com/lixenwraith/tuikit/logging"
	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/terminal/tui"
	"github.com/lixenwraith/tuikit/widget"
)

// App owns the terminal, the layer stack and the event loop
// Widget methods and callbacks only run on the loop goroutine
type App struct {
	term  terminal.Terminal
	theme tui.Theme
	bell  Bell
	log   *slog.Logger

	layers  []widget.Widget
	globals []globalCallback

	cells         []terminal.Cell
	width, height int
	quit          bool
}

type globalCallback struct {
	binding  widget.Binding
	callback widget.Callback
}

// Option configures an App
type Option func(*App)

// WithTheme sets the colors layers are drawn with
func WithTheme(t tui.Theme) Option {
	return func(a *App) { a.theme = t }
}

// WithBell sets the bell rung for unhandled keys
func WithBell(b Bell) Option {
	return func(a *App) { a.bell = b }
}

// WithLogger replaces the component logger
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// New creates an app drawing on term
func New(term terminal.Terminal, opts ...Option) *App {
	a := &App{
		term:  term,
		theme: tui.DefaultTheme,
		bell:  SilentBell{},
		log:   logging.ForComponent(logging.CompApp),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddLayer pushes w on top of the stack and offers it focus
func (a *App) AddLayer(w widget.Widget) {
	a.layers = append(a.layers, w)
	focused := w.TakeFocus()
	a.log.Debug("layer added", "depth", len(a.layers), "focused", focused)
}

// PopLayer removes the top layer, no-op on an empty stack
func (a *App) PopLayer() {
	if len(a.layers) == 0 {
		return
	}
	a.layers[len(a.layers)-1] = nil
	a.layers = a.layers[:len(a.layers)-1]
	a.log.Debug("layer popped", "depth", len(a.layers))
}

// Quit stops Run after the current event
func (a *App) Quit() {
	a.quit = true
}

// AddGlobalCallback runs cb for b when the top layer ignores the key
func (a *App) AddGlobalCallback(b widget.Binding, cb widget.Callback) {
	a.globals = append(a.globals, globalCallback{binding: b, callback: cb})
}

// Layers returns the number of layers on the stack
func (a *App) Layers() int {
	return len(a.layers)
}

// Top returns the focused layer, nil when the stack is empty
func (a *App) Top() widget.Widget {
	if len(a.layers) == 0 {
		return nil
	}
	return a.layers[len(a.layers)-1]
}

// Resize reallocates the frame buffer
func (a *App) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == a.width && height == a.height && a.cells != nil {
		return
	}
	a.width, a.height = width, height
	a.cells = make([]terminal.Cell, width*height)
	a.log.Debug("resized", "width", width, "height", height)
}

// Render lays out and draws every layer bottom to top, then flushes
// Each layer gets its minimum size for the screen, centered
func (a *App) Render() {
	screen := tui.NewRegion(a.cells, a.width, 0, 0, a.width, a.height)
	screen.Fill(a.theme.ScreenBg)

	bounds := geom.Vec2{X: a.width, Y: a.height}
	for i, layer := range a.layers {
		size := layer.MinSize(widget.AtMostSize(bounds)).Min(bounds)
		layer.Layout(size)

		p := widget.NewPrinter(tui.Center(screen, size.X, size.Y), a.theme)
		if i < len(a.layers)-1 {
			p = p.Background()
		}
		p.Clear()
		layer.Draw(p, true)
	}
	a.term.Flush(a.cells, a.width, a.height)
}

// HandleEvent dispatches one terminal event
// Keys go to the top layer, then to global callbacks, then ring the bell
func (a *App) HandleEvent(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventResize:
		a.Resize(ev.Width, ev.Height)
	case terminal.EventClosed:
		a.Quit()
	case terminal.EventError:
		a.log.Warn("terminal error", "error", ev.Err)
	case terminal.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleKey(ev terminal.Event) {
	if top := a.Top(); top != nil {
		res := top.HandleKey(ev)
		if res.IsConsumed() {
			if cb := res.Callback(); cb != nil {
				a.log.Debug("running callback", "key", ev.Key.String())
				cb(a)
			}
			return
		}
	}

	for _, g := range a.globals {
		if g.binding.Matches(ev) {
			a.log.Debug("running global callback", "key", g.binding.String())
			g.callback(a)
			return
		}
	}

	a.log.Debug("unhandled key", "key", ev.Key.String(), "rune", string(ev.Rune))
	a.bell.Ring()
}

// Run initializes the terminal and processes events until Quit, an empty
// stack after a pop, or ctx cancellation. The terminal is restored on return
func (a *App) Run(ctx context.Context) error {
	if err := a.term.Init(); err != nil {
		return fmt.Errorf("app run: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan terminal.Event, 16)

	// Input reader only forwards; PollEvent unblocks with EventClosed on Fini
	g.Go(func() error {
		for {
			ev := a.term.PollEvent()
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
			if ev.Type == terminal.EventClosed {
				return nil
			}
		}
	})

	g.Go(func() error {
		defer a.term.Fini()
		defer cancel()

		a.Resize(a.term.Size())
		a.Render()
		a.log.Info("event loop started", "layers", len(a.layers))

		for !a.quit && len(a.layers) > 0 {
			select {
			case <-ctx.Done():
				a.log.Info("event loop cancelled")
				return nil
			case ev := <-events:
				a.HandleEvent(ev)
				if !a.quit {
					a.Render()
				}
			}
		}
		a.log.Info("event loop stopped", "layers", len(a.layers))
		return nil
	})

	return g.Wait()
}

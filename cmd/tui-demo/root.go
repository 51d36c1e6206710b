package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/tuikit/app"
	"github.com/lixenwraith/tuikit/config"
	"github.com/lixenwraith/tuikit/logging"
	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/terminal/tui"
	"github.com/lixenwraith/tuikit/widget"
)

const intro = `A dialog wraps one content widget with a border, an optional title and a row of buttons.

Use the arrow keys to move between the text and the buttons, Enter to press a button.`

type options struct {
	configPath string
	debug      bool
	title      string
	line       string
	vi         bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "tui-demo",
		Short:         "Show a modal dialog in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.Flags(), opts)
		},
	}

	bindFlags(cmd.Flags(), &opts)
	return cmd
}

func bindFlags(f *pflag.FlagSet, opts *options) {
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default: user config dir)")
	f.BoolVar(&opts.debug, "debug", false, "write debug log to ./"+logging.FileName)
	f.StringVarP(&opts.title, "title", "t", "tuikit", "dialog title")
	f.StringVar(&opts.line, "line", "", "border style: single, double, rounded, heavy, none")
	f.BoolVar(&opts.vi, "vi", false, "add h/j/k/l to the focus keys")
}

func run(ctx context.Context, flags *pflag.FlagSet, opts options) error {
	cfg, err := loadConfig(flags, opts)
	if err != nil {
		return err
	}

	cfg.Log.Debug = opts.debug
	logging.Init(cfg.Log)
	defer logging.Shutdown()

	theme, err := cfg.ResolveTheme()
	if err != nil {
		return err
	}
	keys, err := cfg.Keymap()
	if err != nil {
		return err
	}
	if opts.vi {
		keys = keys.WithVi()
	}
	quit, err := cfg.QuitBindings()
	if err != nil {
		return err
	}

	term, err := terminal.New()
	if err != nil {
		return err
	}

	a := app.New(term, app.WithTheme(theme), app.WithBell(newBell(cfg.Bell)))
	for _, b := range quit {
		a.AddGlobalCallback(b, func(ui widget.Application) { ui.Quit() })
	}

	text := widget.NewTextView(intro).Keys(keys)
	a.AddLayer(widget.New(text).
		Title(opts.title).
		Keys(keys).
		Button("About", func(ui widget.Application) {
			ui.AddLayer(aboutDialog(keys))
		}).
		Button("Quit", func(ui widget.Application) { ui.Quit() }))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Run(ctx)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(flags *pflag.FlagSet, opts options) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if flags.Changed("line") {
		if _, ok := tui.LineByName(opts.line); !ok {
			return cfg, fmt.Errorf("%w: --line %q", config.ErrInvalidLine, opts.line)
		}
		cfg.Theme.Line = opts.line
	}
	return cfg, nil
}

func newBell(c config.BellConfig) app.Bell {
	if !c.Enabled {
		return app.SilentBell{}
	}
	bell, err := app.NewToneBell(c.FrequencyHz, time.Duration(c.DurationMs)*time.Millisecond)
	if err != nil {
		// Non-fatal, the demo runs without sound
		logging.ForComponent(logging.CompBell).Warn("bell disabled", "error", err)
		return app.SilentBell{}
	}
	return bell
}

func aboutDialog(keys widget.Keymap) widget.Widget {
	return widget.New(widget.NewTextView("tuikit dialog demo\nPress Enter to close.")).
		Title("About").
		Keys(keys).
		DismissButton("Close")
}

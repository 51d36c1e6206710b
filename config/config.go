// Package config loads user settings for theme, keys, bell and logging from TOML
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/tuikit/logging"
	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/terminal/tui"
	"github.com/lixenwraith/tuikit/widget"
)

// FileName is the config file looked up in the user config directory
const FileName = "config.toml"

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidKey   = errors.New("invalid key")
	ErrInvalidLine  = errors.New("invalid line style")
)

// ThemeConfig holds theme colors as #rrggbb strings
type ThemeConfig struct {
	Line              string `toml:"line"`
	Background        string `toml:"background"`
	Foreground        string `toml:"foreground"`
	Border            string `toml:"border"`
	Title             string `toml:"title"`
	Secondary         string `toml:"secondary"`
	Highlight         string `toml:"highlight"`
	HighlightText     string `toml:"highlight_text"`
	HighlightInactive string `toml:"highlight_inactive"`
	Screen            string `toml:"screen"`
}

// KeysConfig lists the key names bound to each focus move, plus quit
type KeysConfig struct {
	Up    []string `toml:"up"`
	Down  []string `toml:"down"`
	Left  []string `toml:"left"`
	Right []string `toml:"right"`
	Quit  []string `toml:"quit"`
}

// BellConfig controls the tone played on unhandled keys
type BellConfig struct {
	Enabled     bool    `toml:"enabled"`
	FrequencyHz float64 `toml:"frequency_hz"`
	DurationMs  int     `toml:"duration_ms"`
}

// Config is the top-level TOML structure
type Config struct {
	Theme ThemeConfig    `toml:"theme"`
	Keys  KeysConfig     `toml:"keys"`
	Bell  BellConfig     `toml:"bell"`
	Log   logging.Config `toml:"log"`
}

// Default returns the built-in settings
func Default() Config {
	t := tui.DefaultTheme
	return Config{
		Theme: ThemeConfig{
			Line:              "single",
			Background:        t.Bg.Hex(),
			Foreground:        t.Fg.Hex(),
			Border:            t.Border.Hex(),
			Title:             t.TitlePrimary.Hex(),
			Secondary:         t.Secondary.Hex(),
			Highlight:         t.Highlight.Hex(),
			HighlightText:     t.HighlightFg.Hex(),
			HighlightInactive: t.HighlightInactive.Hex(),
			Screen:            t.ScreenBg.Hex(),
		},
		Keys: KeysConfig{
			Up:    []string{"up"},
			Down:  []string{"down"},
			Left:  []string{"left"},
			Right: []string{"right"},
			Quit:  []string{"ctrl_c"},
		},
		Bell: BellConfig{
			Enabled:     true,
			FrequencyHz: 880,
			DurationMs:  40,
		},
		Log: logging.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultPath returns the config file path in the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tuikit", FileName), nil
}

// Load reads path over the defaults. A missing file yields the defaults
// Unknown keys are logged and skipped; invalid values are errors
func Load(path string) (Config, error) {
	cfg := Default()
	log := logging.ForComponent(logging.CompConfig)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Debug("config file not found, using defaults", "path", path)
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("decode %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warn("unknown config key", "path", path, "key", key.String())
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	log.Info("config loaded", "path", path)
	return cfg, nil
}

// Validate checks that theme and keys resolve
func (c Config) Validate() error {
	if _, err := c.ResolveTheme(); err != nil {
		return err
	}
	if _, err := c.Keymap(); err != nil {
		return err
	}
	_, err := c.QuitBindings()
	return err
}

// ResolveTheme converts the theme section to a tui.Theme
func (c Config) ResolveTheme() (tui.Theme, error) {
	var t tui.Theme

	line, ok := tui.LineByName(c.Theme.Line)
	if !ok {
		return t, fmt.Errorf("%w: theme.line %q", ErrInvalidLine, c.Theme.Line)
	}
	t.Line = line

	colors := []struct {
		key string
		val string
		dst *terminal.RGB
	}{
		{"background", c.Theme.Background, &t.Bg},
		{"foreground", c.Theme.Foreground, &t.Fg},
		{"border", c.Theme.Border, &t.Border},
		{"title", c.Theme.Title, &t.TitlePrimary},
		{"secondary", c.Theme.Secondary, &t.Secondary},
		{"highlight", c.Theme.Highlight, &t.Highlight},
		{"highlight_text", c.Theme.HighlightText, &t.HighlightFg},
		{"highlight_inactive", c.Theme.HighlightInactive, &t.HighlightInactive},
		{"screen", c.Theme.Screen, &t.ScreenBg},
	}
	for _, col := range colors {
		rgb, err := terminal.ParseRGB(col.val)
		if err != nil {
			return tui.Theme{}, fmt.Errorf("%w: theme.%s: %v", ErrInvalidColor, col.key, err)
		}
		*col.dst = rgb
	}
	return t, nil
}

// Keymap converts the keys section to a widget.Keymap
func (c Config) Keymap() (widget.Keymap, error) {
	var km widget.Keymap
	moves := []struct {
		key   string
		names []string
		dst   *[]widget.Binding
	}{
		{"up", c.Keys.Up, &km.Up},
		{"down", c.Keys.Down, &km.Down},
		{"left", c.Keys.Left, &km.Left},
		{"right", c.Keys.Right, &km.Right},
	}
	for _, m := range moves {
		bs, err := parseBindings(m.key, m.names)
		if err != nil {
			return widget.Keymap{}, err
		}
		*m.dst = bs
	}
	return km, nil
}

// QuitBindings returns the keys that stop the application from any layer
func (c Config) QuitBindings() ([]widget.Binding, error) {
	return parseBindings("quit", c.Keys.Quit)
}

func parseBindings(key string, names []string) ([]widget.Binding, error) {
	var bs []widget.Binding
	for _, name := range names {
		b, err := widget.ParseBinding(name)
		if err != nil {
			return nil, fmt.Errorf("%w: keys.%s: %v", ErrInvalidKey, key, err)
		}
		bs = append(bs, b)
	}
	return bs, nil
}

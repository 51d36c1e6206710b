package tui

import "github.com/lixenwraith/tuikit/terminal"

// Emphasis selects a semantic style from a Theme
type Emphasis uint8

const (
	EmphasisNormal            Emphasis = iota // plain content text
	EmphasisBorder                            // box lines and junctions
	EmphasisTitle                             // dialog titles
	EmphasisSecondary                         // hints, dimmed labels
	EmphasisHighlight                         // focused element in the focused layer
	EmphasisHighlightInactive                 // focused element in a background layer
)

// Theme defines semantic colors for widgets
type Theme struct {
	Line LineType

	Bg                terminal.RGB
	Fg                terminal.RGB
	Border            terminal.RGB
	TitlePrimary      terminal.RGB
	Secondary         terminal.RGB
	Highlight         terminal.RGB
	HighlightFg       terminal.RGB
	HighlightInactive terminal.RGB
	ScreenBg          terminal.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Line:              LineSingle,
	Bg:                terminal.RGB{R: 30, G: 30, B: 40},
	Fg:                terminal.RGB{R: 200, G: 200, B: 200},
	Border:            terminal.RGB{R: 100, G: 100, B: 120},
	TitlePrimary:      terminal.RGB{R: 255, G: 80, B: 80},
	Secondary:         terminal.RGB{R: 130, G: 130, B: 150},
	Highlight:         terminal.RGB{R: 60, G: 80, B: 120},
	HighlightFg:       terminal.RGB{R: 255, G: 255, B: 255},
	HighlightInactive: terminal.RGB{R: 50, G: 50, B: 60},
	ScreenBg:          terminal.RGB{R: 20, G: 20, B: 30},
}

// Style resolves an emphasis to concrete colors and attributes
func (t Theme) Style(e Emphasis) Style {
	switch e {
	case EmphasisBorder:
		return Style{Fg: t.Border, Bg: t.Bg}
	case EmphasisTitle:
		return Style{Fg: t.TitlePrimary, Bg: t.Bg, Attr: terminal.AttrBold}
	case EmphasisSecondary:
		return Style{Fg: t.Secondary, Bg: t.Bg}
	case EmphasisHighlight:
		return Style{Fg: t.HighlightFg, Bg: t.Highlight, Attr: terminal.AttrBold}
	case EmphasisHighlightInactive:
		return Style{Fg: t.Fg, Bg: t.HighlightInactive}
	default:
		return Style{Fg: t.Fg, Bg: t.Bg}
	}
}

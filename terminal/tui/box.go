package tui

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][8]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘', '├', '┤'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝', '╠', '╣'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯', '├', '┤'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛', '┣', '┫'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL   = 0 // top-left
	boxH    = 1 // horizontal
	boxTR   = 2 // top-right
	boxV    = 3 // vertical
	boxBL   = 4 // bottom-left
	boxBR   = 5 // bottom-right
	boxTeeR = 6 // vertical line with a branch to the right
	boxTeeL = 7 // vertical line with a branch to the left
)

var lineNames = map[string]LineType{
	"single":  LineSingle,
	"double":  LineDouble,
	"rounded": LineRounded,
	"heavy":   LineHeavy,
	"none":    LineNone,
}

// LineByName resolves a config name ("single", "double", ...) to a LineType
func LineByName(name string) (LineType, bool) {
	l, ok := lineNames[name]
	return l, ok
}

func (l LineType) chars() [8]rune {
	if l >= LineType(len(boxChars)) {
		l = LineSingle
	}
	return boxChars[l]
}

// Junctions returns the glyphs that open and close a label set into a horizontal edge
// e.g. ┤ label ├ for LineSingle
func (l LineType) Junctions() (open, close rune) {
	c := l.chars()
	return c[boxTeeL], c[boxTeeR]
}

// Box draws border around region edge
func (r Region) Box(line LineType, st Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	chars := line.chars()

	// Corners
	r.Set(0, 0, chars[boxTL], st)
	r.Set(r.W-1, 0, chars[boxTR], st)
	r.Set(0, r.H-1, chars[boxBL], st)
	r.Set(r.W-1, r.H-1, chars[boxBR], st)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		r.Set(x, 0, chars[boxH], st)
		r.Set(x, r.H-1, chars[boxH], st)
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		r.Set(0, y, chars[boxV], st)
		r.Set(r.W-1, y, chars[boxV], st)
	}
}

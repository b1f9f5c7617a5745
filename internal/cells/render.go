package cells

import (
	"strconv"
	"strings"
)

// String renders the grid back to ANSI. Colors are emitted as truecolor
// sequences regardless of how they were parsed; every row ends with a reset
// so lines stay self-contained when re-composed.
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		var pen Cell
		styled := false
		for _, c := range row {
			if c.Rune == 0 {
				continue // continuation of a wide rune
			}
			if c.Fg != pen.Fg || c.Bg != pen.Bg || c.Attr != pen.Attr {
				b.WriteString(sgr(c))
				pen = c
				styled = c.Fg.Set || c.Bg.Set || c.Attr != 0
			}
			b.WriteRune(c.Rune)
		}
		if styled {
			b.WriteString("\x1b[0m")
		}
	}
	return b.String()
}

// sgr builds one CSI sequence that resets the pen and applies the cell's
// full style.
func sgr(c Cell) string {
	params := []string{"0"}
	if c.Attr&Bold != 0 {
		params = append(params, "1")
	}
	if c.Attr&Faint != 0 {
		params = append(params, "2")
	}
	if c.Attr&Italic != 0 {
		params = append(params, "3")
	}
	if c.Attr&Underline != 0 {
		params = append(params, "4")
	}
	if c.Attr&Reverse != 0 {
		params = append(params, "7")
	}
	if c.Fg.Set {
		params = append(params, "38", "2",
			strconv.Itoa(int(c.Fg.R)), strconv.Itoa(int(c.Fg.G)), strconv.Itoa(int(c.Fg.B)))
	}
	if c.Bg.Set {
		params = append(params, "48", "2",
			strconv.Itoa(int(c.Bg.R)), strconv.Itoa(int(c.Bg.G)), strconv.Itoa(int(c.Bg.B)))
	}
	if len(params) == 1 {
		return "\x1b[0m"
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

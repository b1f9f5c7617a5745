package cells

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	esc = '\x1b'
	bel = '\x07'
)

// FromString parses styled terminal output into a grid. SGR sequences set
// cell colors and attributes; other escape sequences are dropped. Rows are
// padded with blanks to the widest line so the grid is rectangular.
func FromString(s string) *Grid {
	if s == "" {
		return New(0, 0)
	}

	var pen Cell
	lines := strings.Split(s, "\n")
	rows := make([][]Cell, 0, len(lines))
	maxWidth := 0

	for _, line := range lines {
		row := parseLine(line, &pen)
		if len(row) > maxWidth {
			maxWidth = len(row)
		}
		rows = append(rows, row)
	}

	for y, row := range rows {
		for len(row) < maxWidth {
			row = append(row, Blank())
		}
		rows[y] = row
	}

	return &Grid{rows: rows}
}

// parseLine scans one line of output. The pen carries SGR state across
// lines, matching how terminals treat unclosed sequences.
func parseLine(line string, pen *Cell) []Cell {
	var row []Cell
	runes := []rune(line)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == esc {
			i = skipEscape(runes, i, pen)
			continue
		}
		if r == '\r' {
			continue
		}

		switch runewidth.RuneWidth(r) {
		case 0:
			// Zero-width rune (combining mark): attach nothing, keep layout.
			continue
		case 2:
			row = append(row,
				Cell{Rune: r, Fg: pen.Fg, Bg: pen.Bg, Attr: pen.Attr},
				Cell{Fg: pen.Fg, Bg: pen.Bg, Attr: pen.Attr})
		default:
			row = append(row, Cell{Rune: r, Fg: pen.Fg, Bg: pen.Bg, Attr: pen.Attr})
		}
	}

	return row
}

// skipEscape consumes the escape sequence starting at runes[i] and returns
// the index of its final rune. SGR parameters update the pen.
func skipEscape(runes []rune, i int, pen *Cell) int {
	if i+1 >= len(runes) {
		return i
	}

	switch runes[i+1] {
	case '[':
		// CSI: parameters then a final byte in 0x40..0x7e.
		j := i + 2
		for j < len(runes) {
			r := runes[j]
			if r >= 0x40 && r <= 0x7e {
				if r == 'm' {
					applySGR(string(runes[i+2:j]), pen)
				}
				return j
			}
			j++
		}
		return len(runes) - 1
	case ']':
		// OSC: terminated by BEL or ST (ESC \).
		j := i + 2
		for j < len(runes) {
			if runes[j] == bel {
				return j
			}
			if runes[j] == esc && j+1 < len(runes) && runes[j+1] == '\\' {
				return j + 1
			}
			j++
		}
		return len(runes) - 1
	default:
		return i + 1
	}
}

// applySGR updates the pen from the parameter string of a CSI ... m
// sequence. An empty parameter list is a reset.
func applySGR(params string, pen *Cell) {
	if params == "" {
		*pen = Cell{}
		return
	}

	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		switch {
		case n == 0:
			*pen = Cell{}
		case n == 1:
			pen.Attr |= Bold
		case n == 2:
			pen.Attr |= Faint
		case n == 3:
			pen.Attr |= Italic
		case n == 4:
			pen.Attr |= Underline
		case n == 7:
			pen.Attr |= Reverse
		case n == 22:
			pen.Attr &^= Bold | Faint
		case n == 23:
			pen.Attr &^= Italic
		case n == 24:
			pen.Attr &^= Underline
		case n == 27:
			pen.Attr &^= Reverse
		case n >= 30 && n <= 37:
			pen.Fg = palette256(n - 30)
		case n == 38:
			var c Color
			i, c = extendedColor(parts, i)
			pen.Fg = c
		case n == 39:
			pen.Fg = Color{}
		case n >= 40 && n <= 47:
			pen.Bg = palette256(n - 40)
		case n == 48:
			var c Color
			i, c = extendedColor(parts, i)
			pen.Bg = c
		case n == 49:
			pen.Bg = Color{}
		case n >= 90 && n <= 97:
			pen.Fg = palette256(n - 90 + 8)
		case n >= 100 && n <= 107:
			pen.Bg = palette256(n - 100 + 8)
		}
	}
}

// extendedColor decodes the 38/48 forms: "5;n" (256-color) and "2;r;g;b"
// (truecolor). It returns the index of the last consumed part.
func extendedColor(parts []string, i int) (int, Color) {
	if i+1 >= len(parts) {
		return i, Color{}
	}
	switch parts[i+1] {
	case "5":
		if i+2 >= len(parts) {
			return i + 1, Color{}
		}
		n, err := strconv.Atoi(parts[i+2])
		if err != nil || n < 0 || n > 255 {
			return i + 2, Color{}
		}
		return i + 2, palette256(n)
	case "2":
		if i+4 >= len(parts) {
			return len(parts) - 1, Color{}
		}
		r, errR := strconv.Atoi(parts[i+2])
		g, errG := strconv.Atoi(parts[i+3])
		b, errB := strconv.Atoi(parts[i+4])
		if errR != nil || errG != nil || errB != nil {
			return i + 4, Color{}
		}
		return i + 4, RGB(uint8(r), uint8(g), uint8(b))
	default:
		return i, Color{}
	}
}

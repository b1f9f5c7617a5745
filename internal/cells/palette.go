package cells

// basic16 holds the xterm default RGB values for the 16 base colors.
var basic16 = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// palette256 converts an ANSI 256-color index to RGB using the standard
// xterm palette: 16 base colors, a 6x6x6 cube, and a 24-step gray ramp.
func palette256(n int) Color {
	switch {
	case n < 0 || n > 255:
		return Color{}
	case n < 16:
		c := basic16[n]
		return RGB(c[0], c[1], c[2])
	case n < 232:
		n -= 16
		r := cubeLevel(n / 36)
		g := cubeLevel((n / 6) % 6)
		b := cubeLevel(n % 6)
		return RGB(r, g, b)
	default:
		v := uint8(8 + (n-232)*10)
		return RGB(v, v, v)
	}
}

func cubeLevel(i int) uint8 {
	if i == 0 {
		return 0
	}
	return uint8(55 + i*40)
}

package msg

// ColorName selects one of the predefined palette colors, or ColorRGB for an
// arbitrary triple.
type ColorName int

const (
	ColorDefault ColorName = iota
	ColorWhite
	ColorGray
	ColorBlack
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorPink
	ColorBlue
	ColorRGB
)

// Color is a foreground or background color for a text segment: a named
// palette value, or an arbitrary 24-bit triple when Name == ColorRGB.
// The zero value is the terminal default.
type Color struct {
	Name    ColorName
	R, G, B uint8
}

// Rgb returns an arbitrary 24-bit color.
func Rgb(r, g, b uint8) Color {
	return Color{Name: ColorRGB, R: r, G: g, B: b}
}

// Named returns a palette color.
func Named(n ColorName) Color {
	return Color{Name: n}
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool { return c.Name == ColorDefault }

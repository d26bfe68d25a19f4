package artstub

// Theme holds every value that shapes the rendered placeholder. All fields
// are plain constants: rendering the same theme twice produces byte-identical
// output.
type Theme struct {
	Width  int
	Height int
	// Background is the base fill color applied before the gradient.
	Background string
	// GradientFrom and GradientTo are the left and right edge colors of the
	// horizontal background gradient.
	GradientFrom string
	GradientTo   string
	// Accent is the highlight color used for the icon and the caption.
	Accent  string
	Caption string
	// FontPath is an optional TTF file for the caption. When empty or
	// unloadable, the built-in bitmap face is used instead.
	FontPath   string
	FontPoints float64
	// Was is the literal previous-size note appended to the size report.
	// There is no prior asset to measure, so it is never recomputed.
	Was string
}

// DefaultTheme returns the stock dark placeholder theme.
func DefaultTheme() *Theme {
	return &Theme{
		Width:        300,
		Height:       300,
		Background:   "#17181c",
		GradientFrom: "#17171b",
		GradientTo:   "#242428",
		Accent:       "#62f5a9",
		Caption:      "No Artwork",
		FontPoints:   13,
		Was:          "4.4MB",
	}
}

package export

// Palette assigns marker colors by index. The zero value uses DefaultColors.
type Palette struct {
	Colors    []string
	Highlight string
}

// DefaultColors are the department marker colors, in assignment order.
var DefaultColors = []string{
	"#0000ff", // blue
	"#ff0000", // red
	"#ffa500", // orange
	"#696969", // dimgray
	"#f08080", // lightcoral
	"#000080", // navy
	"#800000", // maroon
	"#ffd700", // gold
	"#808000", // olive
	"#ff6347", // tomato
	"#00ffff", // cyan
	"#90ee90", // lightgreen
	"#a0522d", // sienna
	"#ffdab9", // peachpuff
	"#ffc0cb", // pink
	"#ee82ee", // violet
	"#00bfff", // deepskyblue
	"#40e0d0", // turquoise
	"#000000", // black
}

// DefaultHighlight marks schools in the home town.
const DefaultHighlight = "#008000"

// Color returns the color for index i, cycling through the list. Negative
// indexes wrap from the end.
func (p Palette) Color(i int) string {
	colors := p.Colors
	if len(colors) == 0 {
		colors = DefaultColors
	}
	i %= len(colors)
	if i < 0 {
		i += len(colors)
	}
	return colors[i]
}

// HighlightColor returns the home-town color.
func (p Palette) HighlightColor() string {
	if p.Highlight == "" {
		return DefaultHighlight
	}
	return p.Highlight
}

package mdpreview

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the
// output automatically matches any color scheme. A negative index means
// no color.
type Theme struct {
	Heading int // Heading text
	Quote   int // Blockquote markers and text
	Code    int // Code blocks and inline code
	Link    int // Link and image destinations
	Rule    int // Horizontal rules
	Border  int // Table borders
	Muted   int // Secondary text such as code language labels
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Heading: 5,
		Quote:   2,
		Code:    3,
		Link:    4,
		Rule:    8,
		Border:  8,
		Muted:   8,
	}
}

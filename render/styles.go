package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	mdpreview "github.com/sid12c/md-preview"
)

// styleTable is the static element-kind to terminal-style mapping. It is
// built once per renderer from a Theme and never mutated afterwards.
// Kinds with no entry fall back to an unstyled render.
type styleTable struct {
	kinds       map[mdpreview.Kind]lipgloss.Style
	fallback    lipgloss.Style
	muted       lipgloss.Style
	tableHeader lipgloss.Style
}

func newStyleTable(theme mdpreview.Theme) styleTable {
	return styleTable{
		kinds: map[mdpreview.Kind]lipgloss.Style{
			mdpreview.KindHeading:       lipgloss.NewStyle().Foreground(ansiColor(theme.Heading)).Bold(true),
			mdpreview.KindBold:          lipgloss.NewStyle().Bold(true),
			mdpreview.KindItalic:        lipgloss.NewStyle().Italic(true),
			mdpreview.KindStrikethrough: lipgloss.NewStyle().Strikethrough(true),
			mdpreview.KindBlockquote:    lipgloss.NewStyle().Foreground(ansiColor(theme.Quote)),
			mdpreview.KindCodeBlock:     lipgloss.NewStyle().Foreground(ansiColor(theme.Code)),
			mdpreview.KindInlineCode:    lipgloss.NewStyle().Foreground(ansiColor(theme.Code)),
			mdpreview.KindLink:          lipgloss.NewStyle().Foreground(ansiColor(theme.Link)).Underline(true),
			mdpreview.KindRule:          lipgloss.NewStyle().Foreground(ansiColor(theme.Rule)),
			mdpreview.KindTable:         lipgloss.NewStyle().Foreground(ansiColor(theme.Border)),
		},
		fallback:    lipgloss.NewStyle(),
		muted:       lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		tableHeader: lipgloss.NewStyle().Bold(true),
	}
}

// get returns the style for a kind, falling back to no styling for kinds
// that were never enumerated.
func (t styleTable) get(k mdpreview.Kind) lipgloss.Style {
	if s, ok := t.kinds[k]; ok {
		return s
	}
	return t.fallback
}

// lookup reports whether the kind carries a style of its own. The
// dispatcher uses it to find the innermost styled kind on the block stack.
func (t styleTable) lookup(k mdpreview.Kind) (lipgloss.Style, bool) {
	s, ok := t.kinds[k]
	return s, ok
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

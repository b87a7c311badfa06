// Package mdpreview defines the shared vocabulary for rendering Markdown
// in a terminal: the event stream produced by the parser adapter, the
// element kinds the renderer understands, and the color theme.
package mdpreview

// Kind identifies a single category of Markdown construct.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindBold
	KindItalic
	KindStrikethrough
	KindBlockquote
	KindCodeBlock
	KindInlineCode
	KindLink
	KindList
	KindOrderedList
	KindListItem
	KindRule
	KindTable
	KindTableRow
	KindTableHeaderCell
	KindTableCell
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindBold:
		return "bold"
	case KindItalic:
		return "italic"
	case KindStrikethrough:
		return "strikethrough"
	case KindBlockquote:
		return "blockquote"
	case KindCodeBlock:
		return "codeblock"
	case KindInlineCode:
		return "inlinecode"
	case KindLink:
		return "link"
	case KindList:
		return "list"
	case KindOrderedList:
		return "orderedlist"
	case KindListItem:
		return "listitem"
	case KindRule:
		return "rule"
	case KindTable:
		return "table"
	case KindTableRow:
		return "tablerow"
	case KindTableHeaderCell:
		return "tableheadercell"
	case KindTableCell:
		return "tablecell"
	default:
		return "unknown"
	}
}

// Alignment is the horizontal placement of a table cell's text within its
// column. Body cells inherit the alignment declared by the header row.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Event is a sealed interface representing one structural or inline signal
// from the parsed document. Events are purely semantic; parser failures
// never surface as events. The unexported marker method prevents external
// implementations.
type Event interface {
	event()
}

// EventStart opens a block or inline span of the given kind.
//
// Level carries the heading level (1-6) for KindHeading and the first
// ordinal for KindOrderedList. Info carries the language hint for
// KindCodeBlock and the destination for KindLink. Align carries the
// column alignment on table cell kinds and is zero elsewhere.
type EventStart struct {
	Kind  Kind
	Level int
	Info  string
	Align Alignment
}

func (EventStart) event() {}

// EventEnd closes the innermost open span of the given kind.
type EventEnd struct {
	Kind Kind
}

func (EventEnd) event() {}

// EventText is literal text inside the innermost open span.
type EventText struct {
	Text string
}

func (EventText) event() {}

// EventBreak is a hard line break inside a block.
type EventBreak struct{}

func (EventBreak) event() {}

// Interface compliance checks.
var (
	_ Event = EventStart{}
	_ Event = EventEnd{}
	_ Event = EventText{}
	_ Event = EventBreak{}
)

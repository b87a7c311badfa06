package goldmark

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	mdpreview "github.com/sid12c/md-preview"
)

// collector accumulates events during a single AST walk.
type collector struct {
	source   []byte
	events   []mdpreview.Event
	inHeader bool
}

func (c *collector) add(ev mdpreview.Event) {
	c.events = append(c.events, ev)
}

func (c *collector) walk(doc ast.Node) {
	// The walk callback never returns an error, so ast.Walk cannot fail.
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return c.visit(n, entering), nil
	})
}

func (c *collector) visit(n ast.Node, entering bool) ast.WalkStatus {
	switch n := n.(type) {
	case *ast.Document:
		return ast.WalkContinue

	case *ast.Heading:
		if entering {
			c.add(mdpreview.EventStart{Kind: mdpreview.KindHeading, Level: n.Level})
		} else {
			c.add(mdpreview.EventEnd{Kind: mdpreview.KindHeading})
		}

	case *ast.Paragraph:
		c.span(mdpreview.KindParagraph, entering)

	case *ast.TextBlock:
		// Tight list items hold a TextBlock instead of a Paragraph; the
		// renderer treats both as the same block boundary.
		c.span(mdpreview.KindParagraph, entering)

	case *ast.Text:
		if entering {
			c.text(string(n.Segment.Value(c.source)))
			if n.SoftLineBreak() {
				c.text(" ")
			}
			if n.HardLineBreak() {
				c.add(mdpreview.EventBreak{})
			}
		}

	case *ast.String:
		if entering {
			c.text(string(n.Value))
		}

	case *ast.Emphasis:
		kind := mdpreview.KindItalic
		if n.Level >= 2 {
			kind = mdpreview.KindBold
		}
		c.span(kind, entering)

	case *east.Strikethrough:
		c.span(mdpreview.KindStrikethrough, entering)

	case *ast.CodeSpan:
		c.span(mdpreview.KindInlineCode, entering)

	case *ast.Link:
		if entering {
			c.add(mdpreview.EventStart{Kind: mdpreview.KindLink, Info: string(n.Destination)})
		} else {
			c.add(mdpreview.EventEnd{Kind: mdpreview.KindLink})
		}

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(c.source))
			c.add(mdpreview.EventStart{Kind: mdpreview.KindLink, Info: url})
			label := string(n.Label(c.source))
			if label == "" {
				label = url
			}
			c.text(label)
			c.add(mdpreview.EventEnd{Kind: mdpreview.KindLink})
		}
		return ast.WalkSkipChildren

	case *ast.Image:
		// Images render as their alt text linked to the destination.
		if entering {
			c.add(mdpreview.EventStart{Kind: mdpreview.KindLink, Info: string(n.Destination)})
		} else {
			c.add(mdpreview.EventEnd{Kind: mdpreview.KindLink})
		}

	case *ast.Blockquote:
		c.span(mdpreview.KindBlockquote, entering)

	case *ast.List:
		kind := mdpreview.KindList
		start := 0
		if n.IsOrdered() {
			kind = mdpreview.KindOrderedList
			start = n.Start
			if start == 0 {
				start = 1
			}
		}
		if entering {
			c.add(mdpreview.EventStart{Kind: kind, Level: start})
		} else {
			c.add(mdpreview.EventEnd{Kind: kind})
		}

	case *ast.ListItem:
		c.span(mdpreview.KindListItem, entering)

	case *ast.ThematicBreak:
		if entering {
			c.add(mdpreview.EventStart{Kind: mdpreview.KindRule})
			c.add(mdpreview.EventEnd{Kind: mdpreview.KindRule})
		}
		return ast.WalkSkipChildren

	case *ast.FencedCodeBlock:
		if entering {
			c.codeBlock(string(n.Language(c.source)), n.Lines())
		}
		return ast.WalkSkipChildren

	case *ast.CodeBlock:
		if entering {
			c.codeBlock("", n.Lines())
		}
		return ast.WalkSkipChildren

	case *east.Table:
		c.span(mdpreview.KindTable, entering)

	case *east.TableHeader:
		// The header node is itself the first row; its children are the
		// header cells.
		c.inHeader = entering
		c.span(mdpreview.KindTableRow, entering)

	case *east.TableRow:
		c.span(mdpreview.KindTableRow, entering)

	case *east.TableCell:
		kind := mdpreview.KindTableCell
		if c.inHeader {
			kind = mdpreview.KindTableHeaderCell
		}
		if entering {
			c.add(mdpreview.EventStart{Kind: kind, Align: cellAlignment(n.Alignment)})
		} else {
			c.add(mdpreview.EventEnd{Kind: kind})
		}

	case *ast.HTMLBlock, *ast.RawHTML:
		// HTML passthrough is out of scope.
		return ast.WalkSkipChildren
	}
	return ast.WalkContinue
}

// span emits the matching start or end event for kinds that carry no
// attributes.
func (c *collector) span(kind mdpreview.Kind, entering bool) {
	if entering {
		c.add(mdpreview.EventStart{Kind: kind})
	} else {
		c.add(mdpreview.EventEnd{Kind: kind})
	}
}

func (c *collector) text(s string) {
	if s == "" {
		return
	}
	c.add(mdpreview.EventText{Text: s})
}

// codeBlock emits the whole block at once: one text event per source line
// with trailing newlines stripped. Blank code lines are kept.
func (c *collector) codeBlock(lang string, lines *text.Segments) {
	c.add(mdpreview.EventStart{Kind: mdpreview.KindCodeBlock, Info: lang})
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		c.add(mdpreview.EventText{Text: strings.TrimRight(string(line.Value(c.source)), "\n")})
	}
	c.add(mdpreview.EventEnd{Kind: mdpreview.KindCodeBlock})
}

func cellAlignment(a east.Alignment) mdpreview.Alignment {
	switch a {
	case east.AlignCenter:
		return mdpreview.AlignCenter
	case east.AlignRight:
		return mdpreview.AlignRight
	default:
		return mdpreview.AlignLeft
	}
}

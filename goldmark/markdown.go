// Package goldmark adapts the yuin/goldmark parser into the event stream
// consumed by the renderer. Parsing is delegated entirely to goldmark
// (with the GFM extension for strikethrough and tables); this package only
// walks the resulting AST and emits typed events in document order.
package goldmark

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	mdpreview "github.com/sid12c/md-preview"
)

// Events parses markdown source and returns the ordered event stream
// describing its structure. An empty document yields no events.
func Events(source []byte) []mdpreview.Event {
	if len(source) == 0 {
		return nil
	}
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))
	c := &collector{source: source}
	c.walk(doc)
	return c.events
}

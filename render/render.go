// Package render converts the markdown event stream into styled terminal
// lines. It tracks nested block context (list depth, blockquote depth,
// the in-progress table), styles text by the innermost open element, and
// emits finished lines with a uniform left padding.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdpreview "github.com/sid12c/md-preview"
)

// ruleWidth is the fixed dash count of a horizontal rule. Rules are never
// sized to the terminal.
const ruleWidth = 40

// codeGutter prefixes every code block line when symbols mode is off.
const codeGutter = "│ "

// Option configures a Renderer.
type Option func(*Renderer)

// WithSymbols enables literal markdown markup (`**`, `#`, `~~`, fences)
// alongside styling.
func WithSymbols(on bool) Option {
	return func(r *Renderer) {
		r.symbols = on
	}
}

// WithCenter sets the count of leading spaces applied to every output
// line. Negative values are treated as zero.
func WithCenter(n int) Option {
	return func(r *Renderer) {
		if n < 0 {
			n = 0
		}
		r.center = n
	}
}

// segment is one styled run of text within a line.
type segment struct {
	text  string
	style lipgloss.Style
}

// listCounter tracks one open list level.
type listCounter struct {
	ordered bool
	next    int
}

// Renderer consumes events one at a time and writes styled lines to its
// sink. A Renderer serves a single sequential run; it must not be shared
// across goroutines or reused for a second document.
type Renderer struct {
	w       io.Writer
	styles  styleTable
	symbols bool
	center  int

	stack        []mdpreview.Kind
	lists        []listCounter
	quote        int
	continuation string
	line         []segment
	links        []string
	table        *table
	anomalies    []error
}

// New creates a Renderer writing to w with the given theme.
func New(w io.Writer, theme mdpreview.Theme, opts ...Option) *Renderer {
	r := &Renderer{
		w:      w,
		styles: newStyleTable(theme),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render consumes the whole event stream in order. It stops at the first
// write error; structural anomalies in the stream never produce an error.
func (r *Renderer) Render(events []mdpreview.Event) error {
	for _, ev := range events {
		if err := r.Consume(ev); err != nil {
			return err
		}
	}
	// A well-formed stream closes every block, so these are normally
	// no-ops; a truncated stream still gets its buffered content out.
	if r.table != nil {
		if err := r.endTable(); err != nil {
			return err
		}
	}
	return r.flushLine()
}

// Consume processes a single event.
func (r *Renderer) Consume(ev mdpreview.Event) error {
	switch ev := ev.(type) {
	case mdpreview.EventStart:
		return r.start(ev)
	case mdpreview.EventEnd:
		return r.end(ev.Kind)
	case mdpreview.EventText:
		return r.text(ev.Text)
	case mdpreview.EventBreak:
		return r.flushLine()
	}
	return nil
}

func (r *Renderer) start(ev mdpreview.EventStart) error {
	r.stack = append(r.stack, ev.Kind)
	switch ev.Kind {
	case mdpreview.KindHeading:
		if r.symbols {
			level := ev.Level
			if level < 1 {
				level = 1
			}
			r.append(strings.Repeat("#", level)+" ", r.styles.get(mdpreview.KindHeading))
		}
	case mdpreview.KindParagraph:
		// Continuation paragraphs of a loose list item line up under the
		// first paragraph's text, past the marker.
		if r.continuation != "" && len(r.line) == 0 {
			r.line = append(r.line, segment{text: r.continuation, style: r.styles.fallback})
		}
	case mdpreview.KindBold:
		r.marker("**", ev.Kind)
	case mdpreview.KindItalic:
		r.marker("*", ev.Kind)
	case mdpreview.KindStrikethrough:
		r.marker("~~", ev.Kind)
	case mdpreview.KindInlineCode:
		r.marker("`", ev.Kind)
	case mdpreview.KindLink:
		r.links = append(r.links, ev.Info)
		r.marker("[", ev.Kind)
	case mdpreview.KindBlockquote:
		r.quote++
	case mdpreview.KindList:
		return r.startList(false, 0)
	case mdpreview.KindOrderedList:
		return r.startList(true, ev.Level)
	case mdpreview.KindListItem:
		return r.startItem()
	case mdpreview.KindCodeBlock:
		return r.startCode(ev.Info)
	case mdpreview.KindTable:
		if err := r.flushLine(); err != nil {
			return err
		}
		r.table = &table{}
	case mdpreview.KindTableRow:
		if r.table != nil {
			r.table.beginRow()
		}
	case mdpreview.KindTableHeaderCell, mdpreview.KindTableCell:
		if r.table == nil {
			// Keep going: the cells land on the current line as plain
			// unaligned text.
			r.anomalies = append(r.anomalies, mdpreview.ErrNoTable)
			if len(r.line) > 0 {
				r.append(" | ", r.styles.fallback)
			}
			return nil
		}
		r.table.beginCell(ev.Align)
	}
	return nil
}

func (r *Renderer) end(kind mdpreview.Kind) error {
	switch kind {
	case mdpreview.KindBold:
		r.marker("**", kind)
	case mdpreview.KindItalic:
		r.marker("*", kind)
	case mdpreview.KindStrikethrough:
		r.marker("~~", kind)
	case mdpreview.KindInlineCode:
		r.marker("`", kind)
	case mdpreview.KindLink:
		r.endLink()
	}
	r.pop(kind)

	switch kind {
	case mdpreview.KindParagraph, mdpreview.KindHeading:
		return r.flushLine()
	case mdpreview.KindListItem:
		r.continuation = ""
		return r.flushLine()
	case mdpreview.KindBlockquote:
		if err := r.flushLine(); err != nil {
			return err
		}
		if r.quote > 0 {
			r.quote--
		}
	case mdpreview.KindList, mdpreview.KindOrderedList:
		if err := r.flushLine(); err != nil {
			return err
		}
		if len(r.lists) > 0 {
			r.lists = r.lists[:len(r.lists)-1]
		}
	case mdpreview.KindCodeBlock:
		return r.endCode()
	case mdpreview.KindRule:
		return r.rule()
	case mdpreview.KindTable:
		return r.endTable()
	case mdpreview.KindTableRow:
		if r.table == nil {
			return r.flushLine()
		}
		r.table.endRow()
	case mdpreview.KindTableHeaderCell, mdpreview.KindTableCell:
		if r.table != nil {
			r.table.endCell()
		}
	}
	return nil
}

func (r *Renderer) text(s string) error {
	if r.table == nil && r.inKind(mdpreview.KindCodeBlock) {
		if !r.symbols {
			r.append(codeGutter, r.styles.muted)
		}
		r.append(s, r.styles.get(mdpreview.KindCodeBlock))
		if len(r.line) == 0 {
			// Blank code line in symbols mode still occupies a line.
			return r.writeLine(nil)
		}
		return r.flushLine()
	}
	r.append(s, r.styleFor())
	return nil
}

// append adds a styled segment to the current line, or routes it into the
// open table cell when one is active.
func (r *Renderer) append(text string, style lipgloss.Style) {
	if text == "" {
		return
	}
	if r.table != nil && r.table.appendText(text) {
		return
	}
	r.line = append(r.line, segment{text: text, style: style})
}

// marker appends the literal markup characters for a kind in symbols mode.
func (r *Renderer) marker(lit string, kind mdpreview.Kind) {
	if !r.symbols {
		return
	}
	r.append(lit, r.styles.get(kind))
}

func (r *Renderer) endLink() {
	dest := ""
	if n := len(r.links); n > 0 {
		dest = r.links[n-1]
		r.links = r.links[:n-1]
	}
	if r.symbols {
		r.append("]("+dest+")", r.styles.get(mdpreview.KindLink))
		return
	}
	if dest != "" {
		r.append(" ("+dest+")", r.styles.muted)
	}
}

func (r *Renderer) startList(ordered bool, first int) error {
	if err := r.flushLine(); err != nil {
		return err
	}
	if first < 1 {
		first = 1
	}
	r.lists = append(r.lists, listCounter{ordered: ordered, next: first})
	return nil
}

func (r *Renderer) startItem() error {
	if err := r.flushLine(); err != nil {
		return err
	}
	depth := len(r.lists)
	if depth == 0 {
		// Item outside any list: render a top-level bullet anyway.
		depth = 1
	}
	indent := strings.Repeat("  ", depth-1)
	marker := "- "
	if len(r.lists) > 0 {
		if l := &r.lists[len(r.lists)-1]; l.ordered {
			marker = fmt.Sprintf("%d. ", l.next)
			l.next++
		}
	}
	r.line = append(r.line, segment{text: indent + marker, style: r.styles.fallback})
	r.continuation = strings.Repeat(" ", len(indent)+len(marker))
	return nil
}

func (r *Renderer) startCode(lang string) error {
	if err := r.flushLine(); err != nil {
		return err
	}
	if r.symbols {
		r.append("```"+lang, r.styles.get(mdpreview.KindCodeBlock))
		return r.flushLine()
	}
	if lang != "" {
		r.append(lang, r.styles.muted)
		return r.flushLine()
	}
	return nil
}

func (r *Renderer) endCode() error {
	if !r.symbols {
		return nil
	}
	r.append("```", r.styles.get(mdpreview.KindCodeBlock))
	return r.flushLine()
}

func (r *Renderer) rule() error {
	if err := r.flushLine(); err != nil {
		return err
	}
	if r.symbols {
		r.append("---", r.styles.get(mdpreview.KindRule))
	} else {
		r.append(strings.Repeat("-", ruleWidth), r.styles.get(mdpreview.KindRule))
	}
	return r.flushLine()
}

// Anomalies returns the structural inconsistencies absorbed during the
// run, wrapped around the package sentinels. They are informational:
// each one already degraded to plain text in the output.
func (r *Renderer) Anomalies() []error {
	return r.anomalies
}

func (r *Renderer) endTable() error {
	t := r.table
	r.table = nil
	if t == nil {
		return nil
	}
	t.endRow()
	for i, row := range t.rows {
		if len(t.header) != 0 && len(row) != len(t.header) {
			r.anomalies = append(r.anomalies, fmt.Errorf("body row %d: %w", i+1, mdpreview.ErrRaggedRow))
		}
	}
	// The table is one block: every line goes through the same flush path
	// so the centering offset and any blockquote prefix stay uniform.
	for _, line := range t.layout(r.styles) {
		r.line = line
		if err := r.flushLine(); err != nil {
			return err
		}
	}
	return nil
}

// styleFor returns the style of the innermost open kind that has one.
func (r *Renderer) styleFor() lipgloss.Style {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if s, ok := r.styles.lookup(r.stack[i]); ok {
			return s
		}
	}
	return r.styles.fallback
}

func (r *Renderer) inKind(k mdpreview.Kind) bool {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i] == k {
			return true
		}
	}
	return false
}

// pop removes the innermost occurrence of kind from the block stack. The
// stack is never popped below empty, even on a malformed stream.
func (r *Renderer) pop(kind mdpreview.Kind) {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i] == kind {
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
			return
		}
	}
}

// flushLine emits the pending line, prefixed by the blockquote markers of
// the current nesting depth. An empty line is dropped.
func (r *Renderer) flushLine() error {
	if len(r.line) == 0 {
		return nil
	}
	segs := r.line
	r.line = nil
	if r.quote > 0 {
		prefix := segment{
			text:  strings.Repeat("> ", r.quote),
			style: r.styles.get(mdpreview.KindBlockquote),
		}
		segs = append([]segment{prefix}, segs...)
	}
	return r.writeLine(segs)
}

// writeLine applies the centering offset and writes one finished line.
// lipgloss resets attributes after each segment, so styling never bleeds
// into the padding or the next line.
func (r *Renderer) writeLine(segs []segment) error {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", r.center))
	for _, s := range segs {
		b.WriteString(s.style.Render(s.text))
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}

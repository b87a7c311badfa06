package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	mdpreview "github.com/sid12c/md-preview"
)

// table buffers a whole table while its events stream in. Column widths
// depend on every row, so layout cannot start before the end event; the
// table is held in memory in full, which bounds table size to available
// memory.
type table struct {
	header     []cell
	rows       [][]cell
	cur        []cell
	inRow      bool
	inCell     bool
	headerSeen bool
}

type cell struct {
	text  string
	align mdpreview.Alignment
}

func (t *table) beginRow() {
	if t.inRow {
		// Tolerate a nested row start from a malformed stream.
		return
	}
	t.inRow = true
	t.cur = nil
}

// endRow seals the current row. The first sealed row is the header; its
// cells carry the alignment inherited by every body row.
func (t *table) endRow() {
	if !t.inRow {
		return
	}
	t.inRow = false
	t.inCell = false
	if !t.headerSeen {
		t.header = t.cur
		t.headerSeen = true
	} else {
		t.rows = append(t.rows, t.cur)
	}
	t.cur = nil
}

func (t *table) beginCell(align mdpreview.Alignment) {
	t.cur = append(t.cur, cell{align: align})
	t.inCell = true
}

func (t *table) endCell() {
	t.inCell = false
}

// appendText adds text to the open cell and reports whether it was
// accepted. Text arriving outside a cell is left to the dispatcher's
// plain-text fallback.
func (t *table) appendText(s string) bool {
	if !t.inCell || len(t.cur) == 0 {
		return false
	}
	t.cur[len(t.cur)-1].text += s
	return true
}

// layout turns the buffered table into bordered lines. Every returned
// line has the same total display width. Body rows whose cell count does
// not match the header degrade to plain unaligned text in sequence.
func (t *table) layout(styles styleTable) [][]segment {
	cols := t.header
	if len(cols) == 0 {
		if len(t.rows) == 0 {
			return nil
		}
		// Headerless stream: the first body row fixes the shape.
		cols = t.rows[0]
		t.rows = t.rows[1:]
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.text)
	}
	for _, row := range t.rows {
		if len(row) != len(cols) {
			continue
		}
		for i, c := range row {
			if w := runewidth.StringWidth(c.text); w > widths[i] {
				widths[i] = w
			}
		}
	}

	border := styles.get(mdpreview.KindTable)
	rule := []segment{{text: borderLine(widths), style: border}}

	var lines [][]segment
	lines = append(lines, rule)
	lines = append(lines, rowLine(cols, cols, widths, styles.tableHeader, border))
	if len(t.rows) > 0 {
		lines = append(lines, rule)
		for _, row := range t.rows {
			if len(row) != len(cols) {
				lines = append(lines, []segment{{text: plainRow(row), style: styles.fallback}})
				continue
			}
			lines = append(lines, rowLine(row, cols, widths, styles.fallback, border))
		}
	}
	lines = append(lines, rule)
	return lines
}

// borderLine builds "+----+----+" sized to the computed widths plus one
// space of padding on each side of every column.
func borderLine(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	return b.String()
}

// rowLine builds one bordered row. Alignment comes from the header cells,
// not the row's own cells.
func rowLine(row, header []cell, widths []int, text, border lipgloss.Style) []segment {
	segs := []segment{{text: "|", style: border}}
	for i, c := range row {
		padded := " " + padCell(c.text, widths[i], header[i].align) + " "
		segs = append(segs, segment{text: padded, style: text})
		segs = append(segs, segment{text: "|", style: border})
	}
	return segs
}

func padCell(s string, width int, align mdpreview.Alignment) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case mdpreview.AlignRight:
		return strings.Repeat(" ", gap) + s
	case mdpreview.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

func plainRow(row []cell) string {
	texts := make([]string, len(row))
	for i, c := range row {
		texts[i] = c.text
	}
	return strings.Join(texts, " | ")
}

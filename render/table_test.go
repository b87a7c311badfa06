package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	mdpreview "github.com/sid12c/md-preview"
	"github.com/sid12c/md-preview/render"
)

func tableLines(t *testing.T, out string) []string {
	t.Helper()
	return strings.Split(strings.TrimRight(stripANSI(out), "\n"), "\n")
}

func TestTable(t *testing.T) {
	t.Parallel()

	t.Run("two column table is bordered consistently", func(t *testing.T) {
		t.Parallel()
		out := renderString(t, "| A | B |\n|---|---|\n| 1 | 22 |")
		lines := tableLines(t, out)
		assert.Equal(t, []string{
			"+---+----+",
			"| A | B  |",
			"+---+----+",
			"| 1 | 22 |",
			"+---+----+",
		}, lines)
	})

	t.Run("every table line has identical width", func(t *testing.T) {
		t.Parallel()
		out := renderString(t, "| Name | Qty | Note |\n|---|---|---|\n| ampersand | 1 | short |\n| x | 100000 | a much longer note |")
		lines := tableLines(t, out)
		assert.Greater(t, len(lines), 3)
		want := runewidth.StringWidth(lines[0])
		for _, line := range lines {
			assert.Equal(t, want, runewidth.StringWidth(line), "line %q", line)
		}
	})

	t.Run("wide runes are measured by display width", func(t *testing.T) {
		t.Parallel()
		out := renderString(t, "| 名前 | ok |\n|---|---|\n| x | y |")
		lines := tableLines(t, out)
		want := runewidth.StringWidth(lines[0])
		for _, line := range lines {
			assert.Equal(t, want, runewidth.StringWidth(line), "line %q", line)
		}
	})

	t.Run("column alignment follows the header delimiter", func(t *testing.T) {
		t.Parallel()
		out := renderString(t, "| L | C | R |\n|:--|:-:|--:|\n| a | b | c |\n| long | long | long |")
		lines := tableLines(t, out)
		assert.Equal(t, "| a    |  b   |    c |", lines[3])
	})

	t.Run("cell text round-trips through border stripping", func(t *testing.T) {
		t.Parallel()
		src := "| A | B |\n|---|---|\n| one | two |\n| three | four |"
		out := renderString(t, src)
		var cells [][]string
		for _, line := range tableLines(t, out) {
			if strings.HasPrefix(line, "+") {
				continue
			}
			trimmed := strings.Trim(line, "|")
			var row []string
			for _, c := range strings.Split(trimmed, "|") {
				row = append(row, strings.TrimSpace(c))
			}
			cells = append(cells, row)
		}
		assert.Equal(t, [][]string{
			{"A", "B"},
			{"one", "two"},
			{"three", "four"},
		}, cells)
	})

	t.Run("zero body rows renders header and borders only", func(t *testing.T) {
		t.Parallel()
		out := renderString(t, "| A | B |\n|---|---|")
		lines := tableLines(t, out)
		assert.Equal(t, []string{
			"+---+---+",
			"| A | B |",
			"+---+---+",
		}, lines)
	})

	t.Run("centering offsets the whole table as one block", func(t *testing.T) {
		t.Parallel()
		out := renderString(t, "| A | B |\n|---|---|\n| 1 | 2 |", render.WithCenter(4))
		for _, line := range tableLines(t, out) {
			assert.True(t, strings.HasPrefix(line, "    "), "line %q", line)
			assert.NotEqual(t, byte(' '), line[4], "line %q", line)
		}
	})

	t.Run("empty column still reserves its padding", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		r := render.New(&buf, mdpreview.DefaultTheme())
		err := r.Render([]mdpreview.Event{
			mdpreview.EventStart{Kind: mdpreview.KindTable},
			mdpreview.EventStart{Kind: mdpreview.KindTableRow},
			mdpreview.EventStart{Kind: mdpreview.KindTableHeaderCell},
			mdpreview.EventText{Text: "A"},
			mdpreview.EventEnd{Kind: mdpreview.KindTableHeaderCell},
			mdpreview.EventStart{Kind: mdpreview.KindTableHeaderCell},
			mdpreview.EventEnd{Kind: mdpreview.KindTableHeaderCell},
			mdpreview.EventEnd{Kind: mdpreview.KindTableRow},
			mdpreview.EventEnd{Kind: mdpreview.KindTable},
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{
			"+---+--+",
			"| A |  |",
			"+---+--+",
		}, tableLines(t, buf.String()))
	})

	t.Run("ragged body row degrades to plain text in sequence", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		r := render.New(&buf, mdpreview.DefaultTheme())
		events := []mdpreview.Event{
			mdpreview.EventStart{Kind: mdpreview.KindTable},
			mdpreview.EventStart{Kind: mdpreview.KindTableRow},
		}
		for _, h := range []string{"A", "B"} {
			events = append(events,
				mdpreview.EventStart{Kind: mdpreview.KindTableHeaderCell},
				mdpreview.EventText{Text: h},
				mdpreview.EventEnd{Kind: mdpreview.KindTableHeaderCell},
			)
		}
		events = append(events, mdpreview.EventEnd{Kind: mdpreview.KindTableRow})
		events = append(events, mdpreview.EventStart{Kind: mdpreview.KindTableRow})
		for _, c := range []string{"1", "2", "3"} {
			events = append(events,
				mdpreview.EventStart{Kind: mdpreview.KindTableCell},
				mdpreview.EventText{Text: c},
				mdpreview.EventEnd{Kind: mdpreview.KindTableCell},
			)
		}
		events = append(events,
			mdpreview.EventEnd{Kind: mdpreview.KindTableRow},
			mdpreview.EventEnd{Kind: mdpreview.KindTable},
		)
		err := r.Render(events)
		assert.NoError(t, err)
		lines := tableLines(t, buf.String())
		assert.Contains(t, lines, "1 | 2 | 3")
		assert.Contains(t, lines, "| A | B |")
		anomalies := r.Anomalies()
		assert.NotEmpty(t, anomalies)
		assert.True(t, errors.Is(anomalies[0], mdpreview.ErrRaggedRow))
	})

	t.Run("table inside blockquote keeps the quote prefix on every line", func(t *testing.T) {
		t.Parallel()
		out := renderString(t, "> | A | B |\n> |---|---|\n> | 1 | 2 |")
		for _, line := range tableLines(t, out) {
			assert.True(t, strings.HasPrefix(line, "> "), "line %q", line)
		}
	})
}

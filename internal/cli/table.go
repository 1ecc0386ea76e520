package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/jmylchreest/swatchbook/internal/colour"
)

// columnGap separates adjacent columns.
const columnGap = "  "

// Table lays out swatch listings in aligned columns. Widths are measured on
// visible text so cells may carry ANSI swatch previews.
type Table struct {
	headers []string
	rows    [][]string
	wrap    map[int]int // column index -> wrap width
}

// NewTable creates a table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{headers: headers, wrap: make(map[int]int)}
}

// SetColumnMaxWidth wraps a column's cells at word boundaries once they exceed width.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.wrap[col] = width
}

// AddRow appends a row, padded or truncated to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render returns the table with a header, a dashed rule and one line per
// wrapped row segment.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = visibleWidth(h)
	}

	// Each row becomes a grid of lines x columns.
	grids := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		grids[r] = make([][]string, len(row))
		for c, cell := range row {
			lines := wrapText(cell, t.wrap[c])
			grids[r][c] = lines
			for _, line := range lines {
				widths[c] = max(widths[c], visibleWidth(line))
			}
		}
	}

	var b strings.Builder
	t.writeLine(&b, widths, func(c int) string { return t.headers[c] })
	t.writeLine(&b, widths, func(c int) string { return strings.Repeat("-", widths[c]) })

	for _, grid := range grids {
		height := 1
		for _, lines := range grid {
			height = max(height, len(lines))
		}
		for l := range height {
			t.writeLine(&b, widths, func(c int) string {
				if l < len(grid[c]) {
					return grid[c][l]
				}
				return ""
			})
		}
	}
	return b.String()
}

func (t *Table) writeLine(b *strings.Builder, widths []int, cell func(int) string) {
	for c := range t.headers {
		if c > 0 {
			b.WriteString(columnGap)
		}
		b.WriteString(padRight(cell(c), widths[c]))
	}
	b.WriteByte('\n')
}

// padRight pads s with spaces to width; longer strings are returned unchanged.
func padRight(s string, width int) string {
	if w := visibleWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// visibleWidth counts the runes a terminal displays, ignoring escape sequences.
func visibleWidth(s string) int {
	return utf8.RuneCountInString(colour.StripANSI(s))
}

// wrapText breaks text at word boundaries so no line exceeds width runes.
// Words longer than width are split. A width of zero disables wrapping.
func wrapText(text string, width int) []string {
	if width <= 0 || visibleWidth(text) <= width {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	line := ""
	for _, word := range words {
		for utf8.RuneCountInString(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}
		switch {
		case line == "":
			line = word
		case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

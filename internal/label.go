package internal

import (
	"errors"
	"fmt"
	"strings"
)

// LabelFieldCount is the minimum number of cells a row needs before the
// label format can be produced from it.
const LabelFieldCount = 7

// ErrShortRow reports a table row with too few cells for the label format.
var ErrShortRow = errors.New("pilabels: row has fewer than 7 cells")

// FormatLabel renders one allocation-table row as a label line, without a
// trailing newline:
//
//	KABC,"93.5 - FM - Los Angeles, CA - Los Angeles"
//
// The key comes from cell 1; the quoted description is built from cells 0,
// 2, 4, 5 and the normalized cell 6. The description is always quoted,
// whether or not its content requires it, because downstream label readers
// expect exactly two CSV fields per line.
func FormatLabel(cells []string) (string, error) {
	if len(cells) < LabelFieldCount {
		return "", fmt.Errorf("%w: got %d", ErrShortRow, len(cells))
	}
	var b strings.Builder
	b.Grow(64)
	b.WriteString(cells[1])
	b.WriteString(`,"`)
	b.WriteString(cells[0])
	b.WriteString(" - ")
	b.WriteString(cells[2])
	b.WriteString(" - ")
	b.WriteString(cells[4])
	b.WriteString(", ")
	b.WriteString(cells[5])
	b.WriteString(" - ")
	b.WriteString(NormalizeLocation(cells[6]))
	b.WriteByte('"')
	return b.String(), nil
}

// NormalizeLocation collapses every run of whitespace to a single space,
// trims leading and trailing whitespace, and doubles literal double quotes
// per CSV quoting.
func NormalizeLocation(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, `"`, `""`)
}

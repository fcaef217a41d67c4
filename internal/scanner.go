// Package internal provides the table scanning, label formatting, and
// charset decoding behind the pilabels package.
package internal

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
)

// RowFunc receives the cells of one completed table-body row, in document
// order. Returning an error stops the scan.
type RowFunc func(cells []string) error

// TableScanner tracks tbody/tr/td nesting across a stream of markup tokens
// and hands each completed data row to a callback.
//
// Nesting is tracked with three independent flags, not a stack: a repeated
// or nested <tbody> toggles the same flag, rows outside a body section are
// ignored, and cells outside a row are ignored. Only <td> delimits a cell;
// header cells (<th>) never contribute fields.
type TableScanner struct {
	inBody bool
	inRow  bool
	inCell bool

	cells []string
	cell  string

	onRow RowFunc
}

// NewTableScanner creates a scanner that calls onRow for each completed row.
func NewTableScanner(onRow RowFunc) *TableScanner {
	return &TableScanner{onRow: onRow}
}

// StartTag handles an opening tag.
func (s *TableScanner) StartTag(name []byte) {
	switch string(name) {
	case "tbody":
		s.inBody = true
	case "tr":
		if s.inBody {
			s.cells = make([]string, 0, 8)
			s.inRow = true
		}
	case "td":
		if s.inRow {
			s.cell = ""
			s.inCell = true
		}
	}
}

// EndTag handles a closing tag. Closing a row while inside the body hands
// the accumulated cells to the row callback; the body flag alone gates
// emission, so a stray </tr> with no open row emits an empty row.
func (s *TableScanner) EndTag(name []byte) error {
	switch string(name) {
	case "tbody":
		s.inBody = false
	case "tr":
		if s.inBody {
			err := s.onRow(s.cells)
			s.inRow = false
			if err != nil {
				return err
			}
		}
	case "td":
		if s.inRow {
			s.cells = append(s.cells, s.cell)
			s.inCell = false
		}
	}
	return nil
}

// Text handles a text node. Inside a cell the trimmed content replaces any
// fragment captured earlier for the same cell, so with nested inline markup
// the last fragment before </td> wins. Text outside a cell is discarded.
func (s *TableScanner) Text(data []byte) {
	if s.inCell {
		s.cell = string(bytes.TrimSpace(data))
	}
}

// Scan drives the scanner from z until end of input. A self-closing tag is
// treated as an immediate open/close pair, matching lenient parsers. There
// is no finalization step: a row still open at end of input is dropped.
func (s *TableScanner) Scan(z *html.Tokenizer) error {
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return err
			}
			return nil
		case html.StartTagToken:
			name, _ := z.TagName()
			s.StartTag(name)
		case html.EndTagToken:
			name, _ := z.TagName()
			if err := s.EndTag(name); err != nil {
				return err
			}
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			s.StartTag(name)
			if err := s.EndTag(name); err != nil {
				return err
			}
		case html.TextToken:
			s.Text(z.Text())
		}
	}
}

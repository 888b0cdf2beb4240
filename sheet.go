// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsbook

import (
	"fmt"
	"log/slog"
	"strings"
)

// SheetState tells whether a sheet started empty or was reconstructed
// from a pre-existing document. It is set once at construction.
type SheetState uint8

const (
	// Fresh sheets have no persisted content yet and allow structural
	// column insertion into their buffer.
	Fresh SheetState = iota
	// FromExisting sheets continue after pre-existing rows; their
	// layout is fixed.
	FromExisting
)

// Sheet buffers rows for one page of the workbook and flushes them
// after whatever the page already holds. Not safe for concurrent use.
type Sheet struct {
	Title string

	page    Page
	state   SheetState
	cursor  int // last row written, -1 if empty
	rows    []pendingRow
	headers []string
	log     *slog.Logger
}

type pendingRow struct {
	cells    Row
	style    StyleIntent
	sizeCols bool
}

func newSheet(page Page, title string, log *slog.Logger) *Sheet {
	return &Sheet{Title: title, page: page, state: Fresh, cursor: -1, log: log}
}

// sheetFromPage wraps a pre-existing page: the cursor continues after
// its rows, and the first row with a non-empty first cell supplies the
// header list.
func sheetFromPage(page Page, title string, log *slog.Logger) (*Sheet, error) {
	nrows, err := page.RowCount()
	if err != nil {
		return nil, fmt.Errorf("rows of %q: %w", title, err)
	}
	s := &Sheet{Title: title, page: page, state: FromExisting, cursor: nrows - 1, log: log}
	for r := 0; r < nrows; r++ {
		cells, err := page.Row(r)
		if err != nil {
			return nil, fmt.Errorf("row %d of %q: %w", r, title, err)
		}
		if len(cells) > 0 && cells[0] != "" {
			s.headers = append(s.headers, cells...)
			break
		}
	}
	return s, nil
}

// Fresh reports whether the sheet still allows structural insertion.
func (s *Sheet) Fresh() bool { return s.state == Fresh }

// Cursor returns the last row index written (-1 if nothing yet).
func (s *Sheet) Cursor() int { return s.cursor }

// Headers returns the sheet's known header row, if any.
func (s *Sheet) Headers() []string { return s.headers }

// Pending reports how many rows are buffered but not yet flushed.
func (s *Sheet) Pending() int { return len(s.rows) }

// AppendTabbed buffers tab-delimited rows in order. Column counts are
// not validated across rows.
func (s *Sheet) AppendTabbed(rows []string) {
	for _, line := range rows {
		s.rows = append(s.rows, pendingRow{cells: splitTabbed(line)})
	}
}

// AppendText splits text on newlines and buffers one row per line.
func (s *Sheet) AppendText(text string) {
	s.AppendTabbed(strings.Split(text, "\n"))
}

// addRow buffers one styled row and returns the row index it will land
// on when flushed.
func (s *Sheet) addRow(cells []string, style StyleIntent, sizeCols bool) int {
	row := make(Row, len(cells))
	for i, c := range cells {
		row[i] = NewToken(c)
	}
	s.rows = append(s.rows, pendingRow{cells: row, style: style, sizeCols: sizeCols})
	return s.cursor + len(s.rows)
}

// AddTitleRow buffers a bold header row, records it as the sheet's
// header list and sizes each column to its title. Returns the row
// index the header will land on.
func (s *Sheet) AddTitleRow(headers []string) int {
	s.headers = headers
	return s.addRow(headers, StyleIntent{Bold: true}, true)
}

// AddEmptyRow buffers an empty row. Without a color the row is simply
// skipped over (the cursor still advances for it); with a color a row
// of blank, solid-filled cells is written, sized to the header list.
func (s *Sheet) AddEmptyRow(color string) int {
	if color == "" {
		s.rows = append(s.rows, pendingRow{})
		return s.cursor + len(s.rows)
	}
	return s.addRow(make([]string, len(s.headers)), StyleIntent{FillColor: color}, false)
}

// AddRow buffers one row of cells with the given style intent.
func (s *Sheet) AddRow(cells []string, style StyleIntent) int {
	return s.addRow(cells, style, false)
}

// InsertColumn splices a new column into every buffered row at
// position. The first buffered row is the header row and receives
// title; each following row i receives values' entry for i (scalar
// broadcast or per-row). Rows shorter than position get the new token
// appended. Buffer-only: the backing page is untouched.
//
// Fails with ErrStructuralEdit unless the sheet is fresh — rows already
// emitted no longer have a mutable shorthand representation.
func (s *Sheet) InsertColumn(position int, values InsertValues, title string) error {
	if s.state != Fresh {
		return fmt.Errorf("%q: %w", s.Title, ErrStructuralEdit)
	}
	for i := range s.rows {
		var tok Token
		if i == 0 {
			tok = NewToken(title)
		} else {
			tok = NewToken(values.at(i - 1))
		}
		s.rows[i].cells = s.rows[i].cells.insertAt(position, tok)
	}
	return nil
}

// ColumnOf returns the column letter of the header matching name in
// the first buffered row. ErrColumnNotFound if the buffer is empty or
// nothing matches.
func (s *Sheet) ColumnOf(name string) (string, error) {
	if len(s.rows) == 0 {
		return "", fmt.Errorf("%q: empty buffer: %w", name, ErrColumnNotFound)
	}
	for i, tok := range s.rows[0].cells {
		if tok.Text == name {
			return ColumnName(i)
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrColumnNotFound)
}

// Flush drains the buffer into the page, starting right after the
// cursor. Formula tokens are anchored to the row they land on; the
// row's composed style applies to every written cell. Afterwards the
// buffer is empty and the sheet is no longer fresh. Flushing an empty
// buffer is a no-op.
func (s *Sheet) Flush() error {
	if len(s.rows) == 0 {
		return nil
	}
	s.log.Debug("flush", "sheet", s.Title, "rows", len(s.rows), "cursor", s.cursor)
	for _, pr := range s.rows {
		s.cursor++
		for col, tok := range pr.cells {
			var err error
			switch tok.Kind {
			case TokenFormula:
				err = s.page.SetFormula(s.cursor, col, RewriteFormula(tok.Text, s.cursor), pr.style)
			case TokenLiteral:
				err = s.page.SetValue(s.cursor, col, tok.Text, pr.style)
			case TokenEmpty:
				if !pr.style.IsZero() {
					err = s.page.SetValue(s.cursor, col, "", pr.style)
				}
			}
			if err != nil {
				return fmt.Errorf("%s[%d,%d]: %w", s.Title, s.cursor, col, err)
			}
			if pr.sizeCols {
				if err = s.page.SetColWidth(col, float64(len(tok.Text)+5)); err != nil {
					return fmt.Errorf("%s: width of col %d: %w", s.Title, col, err)
				}
			}
		}
	}
	s.rows = nil
	s.state = FromExisting
	return nil
}

// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsbook

// Report is the single-sheet convenience over a Workbook: title rows,
// empty spacer rows and styled data rows, written to one fixed path.
type Report struct {
	wb    *Workbook
	sheet *Sheet
	path  string
}

// NewReport builds a single-sheet report writing to path. On a
// workbook opened from an existing document the first sheet is
// continued (its headers and row count carry over); otherwise a fresh
// sheet named title is created.
func NewReport(wb *Workbook, path, title string) (*Report, error) {
	var s *Sheet
	if sheets := wb.Sheets(); len(sheets) > 0 {
		s = sheets[0]
	} else {
		var err error
		if s, err = wb.AddSheet(title); err != nil {
			return nil, err
		}
	}
	return &Report{wb: wb, sheet: s, path: path}, nil
}

// Sheet returns the report's sheet.
func (r *Report) Sheet() *Sheet { return r.sheet }

// AddTitleRow adds a bold header row and records the headers; columns
// are sized to their titles. Returns the row index the header lands on.
func (r *Report) AddTitleRow(headers []string) int {
	return r.sheet.AddTitleRow(headers)
}

// AddEmptyRow adds an empty row, optionally with a solid background
// fill sized to the header list. Returns the row index.
func (r *Report) AddEmptyRow(color string) int {
	return r.sheet.AddEmptyRow(color)
}

// AddRow adds one row of cells with the given style. Cells starting
// with "=" are formula shorthand and are anchored to their final row
// when written. Returns the row index.
func (r *Report) AddRow(cells []string, style StyleIntent) int {
	return r.sheet.AddRow(cells, style)
}

// Write flushes and persists the report to its path.
func (r *Report) Write() error { return r.wb.Save(r.path) }

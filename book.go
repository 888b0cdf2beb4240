// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsbook

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Workbook is the registry of sheets over one backing grid. Create one
// with NewWorkbook (empty grid) or OpenWorkbook (grid with pre-existing
// pages); the grid is shared with every sheet until Save persists it.
//
// A Workbook and its Sheets belong to a single caller context; no
// locking is provided.
type Workbook struct {
	grid   Grid
	sheets []*Sheet
	diags  []Diag
	log    *slog.Logger
}

// Option configures a Workbook.
type Option func(*Workbook)

// WithLogger sets the logger warnings and debug messages go to.
// The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(wb *Workbook) { wb.log = log }
}

// NewWorkbook wraps an empty grid.
func NewWorkbook(grid Grid, opts ...Option) *Workbook {
	wb := &Workbook{grid: grid, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, o := range opts {
		o(wb)
	}
	return wb
}

// OpenWorkbook wraps a grid read from an existing document: every page
// becomes a FromExisting sheet, index-aligned, with its row count and
// header row preserved. New rows appended to such a sheet land strictly
// after the pre-existing ones.
func OpenWorkbook(grid Grid, opts ...Option) (*Workbook, error) {
	wb := NewWorkbook(grid, opts...)
	for _, name := range grid.PageNames() {
		page, err := grid.Page(name)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", name, err)
		}
		s, err := sheetFromPage(page, name, wb.log)
		if err != nil {
			return nil, err
		}
		wb.log.Debug("adding existing sheet", "name", name, "rows", s.cursor+1)
		wb.sheets = append(wb.sheets, s)
	}
	return wb, nil
}

// Warn records a non-fatal condition and logs it.
func (wb *Workbook) Warn(code, msg string) {
	wb.diags = append(wb.diags, Diag{Severity: SeverityWarning, Code: code, Message: msg})
	wb.log.Warn(msg, "code", code)
}

// Diagnostics returns the non-fatal conditions accumulated so far.
func (wb *Workbook) Diagnostics() []Diag { return wb.diags }

// Sheets returns the owned sheets in registration order.
func (wb *Workbook) Sheets() []*Sheet { return wb.sheets }

// AddSheet creates a fresh sheet. If one with the same title already
// exists it is returned instead — duplicate titles degrade to reuse,
// with a warning diagnostic, never to a second sheet.
func (wb *Workbook) AddSheet(title string) (*Sheet, error) {
	if s, err := wb.Sheet(title); err == nil {
		wb.Warn(DiagDupSheet, fmt.Sprintf("sheet called %q already exists", title))
		return s, nil
	}
	page, err := wb.grid.Page(title)
	if err != nil {
		return nil, fmt.Errorf("create page %q: %w", title, err)
	}
	s := newSheet(page, title, wb.log)
	wb.sheets = append(wb.sheets, s)
	return s, nil
}

// Sheet returns the sheet with exactly the given title, or
// ErrSheetNotFound.
func (wb *Workbook) Sheet(title string) (*Sheet, error) {
	for _, s := range wb.sheets {
		if s.Title == title {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", title, ErrSheetNotFound)
}

// Save flushes every sheet in registration order and persists the grid
// to path. Overwriting an existing file is allowed (warned, not
// failed); persistence errors are returned as-is.
func (wb *Workbook) Save(path string) error {
	for _, s := range wb.sheets {
		if err := s.Flush(); err != nil {
			return fmt.Errorf("flush %q: %w", s.Title, err)
		}
	}
	if _, err := os.Stat(path); err == nil {
		wb.Warn(DiagOverwrite, fmt.Sprintf("overwriting existing file %q", path))
	}
	if err := wb.grid.Persist(path); err != nil {
		return fmt.Errorf("persist %q: %w", path, err)
	}
	return nil
}

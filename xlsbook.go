// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsbook builds tabular spreadsheet documents incrementally.
//
// Callers append rows of text, numbers and formula shorthand to named
// sheets; on Save the buffered rows are materialized into the backing
// grid, continuing after any content the document already had. The
// backing grid itself (the container file format) is behind the Grid
// and Page interfaces — see the xlsx subpackage for the excelize-based
// implementation.
package xlsbook

import "errors"

var (
	// ErrSheetNotFound is returned when a sheet lookup misses.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrColumnNotFound is returned when a header name is not present
	// in the first buffered row.
	ErrColumnNotFound = errors.New("column not found")
	// ErrStructuralEdit is returned when a column insertion is
	// attempted on a sheet that already has emitted or pre-existing
	// rows.
	ErrStructuralEdit = errors.New("cannot insert columns into a non-fresh sheet")
	// ErrInvalidColumnIndex is returned for column indices outside A..Z.
	ErrInvalidColumnIndex = errors.New("column index outside A..Z")
)

// Grid is the mutable cell store behind a Workbook.
type Grid interface {
	// PageNames lists the pages already present, in document order.
	// A freshly created (empty) grid reports no pages.
	PageNames() []string
	// Page returns the named page, creating it if missing.
	Page(title string) (Page, error)
	// Persist writes the whole document to path.
	Persist(path string) error
}

// Page is one sheet's cell grid.
type Page interface {
	Name() string
	// RowCount reports the number of rows already present.
	RowCount() (int, error)
	// Row returns the cell values of one 0-based row.
	Row(row int) ([]string, error)
	SetValue(row, col int, value string, style StyleIntent) error
	// SetFormula writes a fully qualified formula (leading "=" included).
	SetFormula(row, col int, formula string, style StyleIntent) error
	SetColWidth(col int, width float64) error
}

// Severity of a Diag record.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diag is a non-fatal condition observed during workbook operations.
// Diagnostics accumulate on the Workbook instead of failing the
// operation: a duplicate sheet title, an overwritten output file or a
// named-but-missing input all degrade to a defined fallback.
type Diag struct {
	Severity Severity
	Code     string
	Message  string
}

// Diagnostic codes.
const (
	DiagDupSheet     = "dup-sheet"
	DiagOverwrite    = "overwrite"
	DiagMissingInput = "missing-input"
)

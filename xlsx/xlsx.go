// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx backs an xlsbook.Workbook with an excelize workbook.
//
// The whole document is held in memory, so very big sheets may impose
// problems.
package xlsx

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/xlsbook"
)

var _ = (xlsbook.Grid)((*Grid)(nil))

// Grid implements xlsbook.Grid over an excelize file.
type Grid struct {
	xl      *excelize.File
	styles  map[string]int
	fresh   bool
	renamed bool
}

// New returns an empty grid.
func New() *Grid { return &Grid{xl: excelize.NewFile(), fresh: true} }

// OpenGrid opens an existing document as a mutable grid.
func OpenGrid(path string) (*Grid, error) {
	xl, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	return &Grid{xl: xl}, nil
}

// Open opens or creates the workbook at path. A missing file yields an
// empty workbook with a missing-input warning when a non-empty path
// was named; an existing file is opened with every sheet wrapped,
// row counts preserved.
func Open(path string, opts ...xlsbook.Option) (*xlsbook.Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		wb := xlsbook.NewWorkbook(New(), opts...)
		if path != "" {
			wb.Warn(xlsbook.DiagMissingInput, fmt.Sprintf("specified file %q not found", path))
		}
		return wb, nil
	}
	g, err := OpenGrid(path)
	if err != nil {
		return nil, err
	}
	return xlsbook.OpenWorkbook(g, opts...)
}

// OpenReport opens or creates the single-sheet report at path.
func OpenReport(path, title string, opts ...xlsbook.Option) (*xlsbook.Report, error) {
	wb, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	return xlsbook.NewReport(wb, path, title)
}

func (g *Grid) PageNames() []string {
	if g.fresh {
		return nil
	}
	return g.xl.GetSheetList()
}

func (g *Grid) Page(title string) (xlsbook.Page, error) {
	if idx, err := g.xl.GetSheetIndex(title); err == nil && idx >= 0 {
		return &Page{g: g, name: title}, nil
	}
	// An empty excelize file starts with one default sheet; the first
	// page created on a fresh grid takes it over.
	if g.fresh && !g.renamed {
		if err := g.xl.SetSheetName("Sheet1", title); err != nil {
			return nil, fmt.Errorf("rename default sheet to %q: %w", title, err)
		}
		g.renamed = true
	} else if _, err := g.xl.NewSheet(title); err != nil {
		return nil, fmt.Errorf("new sheet %q: %w", title, err)
	}
	return &Page{g: g, name: title}, nil
}

func (g *Grid) Persist(path string) error { return g.xl.SaveAs(path) }

// WriteTo writes the document to w without touching the filesystem.
func (g *Grid) WriteTo(w io.Writer) (int64, error) { return g.xl.WriteTo(w) }

// File exposes the underlying excelize file for operations outside the
// xlsbook surface.
func (g *Grid) File() *excelize.File { return g.xl }

func (g *Grid) styleID(intent xlsbook.StyleIntent) (int, error) {
	if intent.IsZero() {
		return 0, nil
	}
	k := intent.Descriptor()
	if s, ok := g.styles[k]; ok {
		return s, nil
	}
	var st excelize.Style
	if intent.Bold {
		st.Font = &excelize.Font{Bold: true}
	}
	if intent.Wrap {
		st.Alignment = &excelize.Alignment{WrapText: true}
	}
	if intent.FillColor != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillHex(intent.FillColor)}}
	}
	s, err := g.xl.NewStyle(&st)
	if err != nil {
		return 0, fmt.Errorf("style %q: %w", k, err)
	}
	if g.styles == nil {
		g.styles = make(map[string]int)
	}
	g.styles[k] = s
	return s, nil
}

// fillColors maps the classic fill color names to RGB.
var fillColors = map[string]string{
	"black":       "000000",
	"white":       "FFFFFF",
	"red":         "FF0000",
	"green":       "008000",
	"blue":        "0000FF",
	"yellow":      "FFFF00",
	"orange":      "FF6600",
	"ivory":       "FFFFF0",
	"gray25":      "C0C0C0",
	"gray40":      "999999",
	"gray80":      "333333",
	"light_green": "CCFFCC",
	"light_blue":  "99CCFF",
}

func fillHex(name string) string {
	if c, ok := fillColors[strings.ToLower(name)]; ok {
		return c
	}
	return strings.TrimPrefix(name, "#")
}

// Page is one excelize sheet.
type Page struct {
	g    *Grid
	name string
}

func (p *Page) Name() string { return p.name }

func (p *Page) RowCount() (int, error) {
	rows, err := p.g.xl.GetRows(p.name)
	return len(rows), err
}

func (p *Page) Row(row int) ([]string, error) {
	rows, err := p.g.xl.GetRows(p.name)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= len(rows) {
		return nil, nil
	}
	return rows[row], nil
}

func (p *Page) SetValue(row, col int, value string, style xlsbook.StyleIntent) error {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Errorf("%d/%d: %w", col, row, err)
	}
	if err = p.g.xl.SetCellStr(p.name, axis, value); err != nil {
		return fmt.Errorf("%s[%s]: %w", p.name, axis, err)
	}
	return p.setStyle(axis, style)
}

func (p *Page) SetFormula(row, col int, formula string, style xlsbook.StyleIntent) error {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Errorf("%d/%d: %w", col, row, err)
	}
	if err = p.g.xl.SetCellFormula(p.name, axis, strings.TrimPrefix(formula, "=")); err != nil {
		return fmt.Errorf("%s[%s]: %w", p.name, axis, err)
	}
	return p.setStyle(axis, style)
}

func (p *Page) setStyle(axis string, intent xlsbook.StyleIntent) error {
	if intent.IsZero() {
		return nil
	}
	s, err := p.g.styleID(intent)
	if err != nil {
		return err
	}
	return p.g.xl.SetCellStyle(p.name, axis, axis, s)
}

func (p *Page) SetColWidth(col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return err
	}
	// excelize caps column widths at 255 characters.
	if width > 255 {
		width = 255
	}
	return p.g.xl.SetColWidth(p.name, name, name, width)
}

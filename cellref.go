// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsbook

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnName converts a 0-based column index to its letter: 0→"A", 25→"Z".
// Only single-letter columns are addressable.
func ColumnName(index int) (string, error) {
	if index < 0 || index > 'Z'-'A' {
		return "", fmt.Errorf("%d: %w", index, ErrInvalidColumnIndex)
	}
	return string(rune('A' + index)), nil
}

// ColumnIndex is the inverse of ColumnName: "A"→0, "Z"→25.
func ColumnIndex(name string) (int, error) {
	if len(name) != 1 || name[0] < 'A' || name[0] > 'Z' {
		return 0, fmt.Errorf("%q: %w", name, ErrInvalidColumnIndex)
	}
	return int(name[0] - 'A'), nil
}

// RewriteFormula anchors a shorthand formula to targetRow (0-based).
// Every uppercase letter in shorthand is a relative column reference
// and gets the 1-based row number appended right after it; everything
// else passes through unchanged. One left-to-right pass, no validation
// of the referenced columns.
//
//	RewriteFormula("=A-B", 4) == "=A5-B5"
func RewriteFormula(shorthand string, targetRow int) string {
	row := strconv.Itoa(targetRow + 1)
	var b strings.Builder
	b.Grow(len(shorthand) + 4*len(row))
	for _, r := range shorthand {
		b.WriteRune(r)
		if 'A' <= r && r <= 'Z' {
			b.WriteString(row)
		}
	}
	return b.String()
}

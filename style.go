// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsbook

import "strings"

// StyleIntent is the styling requested for one row: bold font, wrapped
// text and/or a solid background fill. The zero value means unstyled.
type StyleIntent struct {
	Bold      bool
	Wrap      bool
	FillColor string
}

// IsZero reports whether the intent requests no styling at all.
func (s StyleIntent) IsZero() bool {
	return !s.Bold && !s.Wrap && s.FillColor == ""
}

// Descriptor composes the intent into a canonical descriptor string.
// Clauses appear in fixed attribute-group order (font, alignment,
// pattern), so identical intents always compose byte-identically and
// the descriptor can serve as a style-cache key. The empty string is
// the default (unstyled) descriptor.
func (s StyleIntent) Descriptor() string {
	if s.IsZero() {
		return ""
	}
	clauses := make([]string, 0, 3)
	if s.Bold {
		clauses = append(clauses, "font: bold")
	}
	if s.Wrap {
		clauses = append(clauses, "alignment: wrap")
	}
	if s.FillColor != "" {
		clauses = append(clauses, "pattern: solid, fore_color "+s.FillColor)
	}
	return strings.Join(clauses, "; ") + ";"
}

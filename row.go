// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsbook

import "strings"

// TokenKind tags a Token.
type TokenKind uint8

const (
	TokenEmpty TokenKind = iota
	TokenLiteral
	TokenFormula
)

// Token is one cell's pending content. Formula tokens hold the
// shorthand form (leading "=", bare column letters); they are anchored
// to their final row only when the sheet is flushed.
type Token struct {
	Kind TokenKind
	Text string
}

// NewToken classifies a raw text token.
func NewToken(s string) Token {
	switch {
	case s == "":
		return Token{Kind: TokenEmpty}
	case strings.HasPrefix(s, "="):
		return Token{Kind: TokenFormula, Text: s}
	}
	return Token{Kind: TokenLiteral, Text: s}
}

func (t Token) String() string { return t.Text }

// Row is an ordered sequence of tokens. A row has no identity beyond
// its position in the buffer; that position determines the emitted row
// index.
type Row []Token

func splitTabbed(line string) Row {
	fields := strings.Split(line, "\t")
	row := make(Row, len(fields))
	for i, f := range fields {
		row[i] = NewToken(f)
	}
	return row
}

// Strings returns the raw text of each token (empty tokens as "").
func (r Row) Strings() []string {
	ss := make([]string, len(r))
	for i, t := range r {
		ss[i] = t.Text
	}
	return ss
}

func (r Row) insertAt(pos int, tok Token) Row {
	if pos >= len(r) {
		return append(r, tok)
	}
	out := make(Row, 0, len(r)+1)
	out = append(out, r[:pos]...)
	out = append(out, tok)
	return append(out, r[pos:]...)
}

// InsertValues is the value source for a column insertion: either a
// single scalar broadcast to every data row, or one value per data row.
type InsertValues struct {
	scalar string
	perRow []string
	listed bool
}

// Scalar broadcasts v to every data row.
func Scalar(v string) InsertValues { return InsertValues{scalar: v} }

// PerRow supplies one value per data row, header-relative: the row
// right after the header gets values[0]. Rows beyond the sequence get
// the empty token.
func PerRow(values ...string) InsertValues {
	return InsertValues{perRow: values, listed: true}
}

// at returns the value for data row i (0 = first row after the header).
func (v InsertValues) at(i int) string {
	if !v.listed {
		return v.scalar
	}
	if i < 0 || i >= len(v.perRow) {
		return ""
	}
	return v.perRow[i]
}

package xlsbook

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSheet(t *testing.T) (*Sheet, *memPage) {
	t.Helper()
	p := newMemPage("test")
	return newSheet(p, "test", slog.New(slog.NewTextHandler(io.Discard, nil))), p
}

func TestInsertColumnPerRow(t *testing.T) {
	s, _ := testSheet(t)
	s.AppendTabbed([]string{"a\tb", "c\td"})
	require.NoError(t, s.InsertColumn(1, PerRow("10", "20"), "X"))

	// header row gets the title, the first data row values[0]
	assert.Equal(t, []string{"a", "X", "b"}, s.rows[0].cells.Strings())
	assert.Equal(t, []string{"c", "10", "d"}, s.rows[1].cells.Strings())
}

func TestInsertColumnScalar(t *testing.T) {
	s, _ := testSheet(t)
	s.AppendTabbed([]string{"h1\th2", "a\tb", "c\td"})
	require.NoError(t, s.InsertColumn(0, Scalar("=B-C"), "diff"))

	assert.Equal(t, []string{"diff", "h1", "h2"}, s.rows[0].cells.Strings())
	assert.Equal(t, []string{"=B-C", "a", "b"}, s.rows[1].cells.Strings())
	assert.Equal(t, []string{"=B-C", "c", "d"}, s.rows[2].cells.Strings())
	assert.Equal(t, TokenFormula, s.rows[1].cells[0].Kind)
}

func TestInsertColumnExhaustedPerRow(t *testing.T) {
	s, _ := testSheet(t)
	s.AppendTabbed([]string{"h", "a", "b", "c"})
	require.NoError(t, s.InsertColumn(1, PerRow("1"), "X"))

	assert.Equal(t, []string{"a", "1"}, s.rows[1].cells.Strings())
	assert.Equal(t, []string{"b", ""}, s.rows[2].cells.Strings())
	assert.Equal(t, TokenEmpty, s.rows[2].cells[1].Kind)
}

func TestInsertColumnNotFresh(t *testing.T) {
	p := newMemPage("old", []string{"h1", "h2"}, []string{"a", "b"})
	s, err := sheetFromPage(p, "old", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	s.AppendTabbed([]string{"x\ty"})
	err = s.InsertColumn(0, Scalar("v"), "T")
	assert.ErrorIs(t, err, ErrStructuralEdit)
	// buffer left unmodified
	assert.Equal(t, []string{"x", "y"}, s.rows[0].cells.Strings())
}

func TestInsertColumnAfterFlush(t *testing.T) {
	s, _ := testSheet(t)
	s.AppendTabbed([]string{"a\tb"})
	require.NoError(t, s.Flush())
	assert.ErrorIs(t, s.InsertColumn(0, Scalar("v"), "T"), ErrStructuralEdit)
}

func TestColumnOf(t *testing.T) {
	s, _ := testSheet(t)
	_, err := s.ColumnOf("File")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	s.AppendTabbed([]string{"File\tTotal reads\tUnmapped reads"})
	col, err := s.ColumnOf("Total reads")
	require.NoError(t, err)
	assert.Equal(t, "B", col)

	_, err = s.ColumnOf("nope")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestFlushEmptyBuffer(t *testing.T) {
	s, p := testSheet(t)
	require.NoError(t, s.Flush())
	require.NoError(t, s.Flush())
	assert.Equal(t, -1, s.Cursor())
	assert.Empty(t, p.cells)
}

func TestFlushWritesAndRewrites(t *testing.T) {
	s, p := testSheet(t)
	s.AppendText("a\tb\t=A-B\nc\td\t=A-B")
	require.NoError(t, s.Flush())

	assert.Equal(t, 1, s.Cursor())
	assert.False(t, s.Fresh())
	assert.Zero(t, s.Pending())

	assert.Equal(t, "a", p.cells[[2]int{0, 0}].value)
	assert.Equal(t, "=A1-B1", p.cells[[2]int{0, 2}].formula)
	assert.Equal(t, "=A2-B2", p.cells[[2]int{1, 2}].formula)
}

func TestFlushCountsEmptyRows(t *testing.T) {
	s, p := testSheet(t)
	s.AppendText("a\n\nb")
	require.NoError(t, s.Flush())

	assert.Equal(t, 2, s.Cursor())
	assert.Equal(t, "b", p.cells[[2]int{2, 0}].value)
	// the blank middle row produced no cells
	_, ok := p.cells[[2]int{1, 0}]
	assert.False(t, ok)
}

func TestFlushContinuesAfterExisting(t *testing.T) {
	p := newMemPage("old",
		[]string{"File", "Total"},
		[]string{"a", "1"},
		[]string{"b", "2"},
	)
	s, err := sheetFromPage(p, "old", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Cursor())
	assert.Equal(t, []string{"File", "Total"}, s.Headers())

	s.AppendTabbed([]string{"c\t3", "d\t4"})
	require.NoError(t, s.Flush())
	assert.Equal(t, 4, s.Cursor())
	assert.Equal(t, "c", p.cells[[2]int{3, 0}].value)
	assert.Equal(t, "4", p.cells[[2]int{4, 1}].value)
}

func TestHeaderScanSkipsBlankLeadingRows(t *testing.T) {
	p := newMemPage("old",
		[]string{"", ""},
		[]string{"File", "Total"},
	)
	s, err := sheetFromPage(p, "old", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, []string{"File", "Total"}, s.Headers())
}

func TestAddTitleRowStylesAndSizes(t *testing.T) {
	s, p := testSheet(t)
	idx := s.AddTitleRow([]string{"File", "Total"})
	assert.Equal(t, 0, idx)
	require.NoError(t, s.Flush())

	assert.Equal(t, "font: bold;", p.cells[[2]int{0, 0}].style)
	assert.Equal(t, float64(len("File")+5), p.widths[0])
	assert.Equal(t, float64(len("Total")+5), p.widths[1])
	assert.Equal(t, []string{"File", "Total"}, s.Headers())
}

func TestAddEmptyRow(t *testing.T) {
	s, p := testSheet(t)
	s.AddTitleRow([]string{"A", "B"})
	skip := s.AddEmptyRow("")
	filled := s.AddEmptyRow("gray25")
	assert.Equal(t, 1, skip)
	assert.Equal(t, 2, filled)
	require.NoError(t, s.Flush())

	// colorless empty row advances the cursor without writing
	_, ok := p.cells[[2]int{1, 0}]
	assert.False(t, ok)
	// the colored one writes a filled blank cell per header
	assert.Equal(t, "pattern: solid, fore_color gray25;", p.cells[[2]int{2, 0}].style)
	assert.Equal(t, "pattern: solid, fore_color gray25;", p.cells[[2]int{2, 1}].style)
	assert.Equal(t, 3, s.Cursor())
}

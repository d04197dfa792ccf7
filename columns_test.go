package usagefmt_test

import (
	"testing"

	"github.com/bjaus/usagefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutlierCellOverflows(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(20)
	cols, err := f.Columns(2, usagefmt.WithSpacing("  "))
	require.NoError(t, err)
	require.NoError(t, cols.Append("-h", "show help"))
	require.NoError(t, cols.Append("--very-long-flag-name", "a fairly long description that needs wrapping"))
	cols.Close()

	// The outlier flag name is excluded from the width calculation, so the
	// first column stays narrow and the long row spills onto its own line.
	assert.Equal(t, []int{2, 16}, cols.Widths())
	want := "-h  show help\n" +
		"--very-long-flag-name\n" +
		"    a fairly long\n" +
		"    description that\n" +
		"    needs wrapping"
	assert.Equal(t, want, render(t, f))
}

func TestWidthsRespectBudgetAndBounds(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(20)
	cols, err := f.Columns(2, usagefmt.WithSpacing("  "))
	require.NoError(t, err)
	require.NoError(t, cols.Append("-h", "show help"))
	require.NoError(t, cols.Append("--very-long-flag-name", "a fairly long description that needs wrapping"))
	cols.Close()

	widths := cols.Widths()
	sum := 0
	for _, w := range widths {
		assert.GreaterOrEqual(t, w, 2) // default minimum
		sum += w
	}
	assert.LessOrEqual(t, sum+2*(len(widths)-1), 20)
}

func TestAppendShapeError(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(40)
	cols, err := f.Columns(2)
	require.NoError(t, err)
	err = cols.Append("only one")
	assert.ErrorIs(t, err, usagefmt.ErrShape)
}

func TestAppendAfterClose(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(40)
	cols, err := f.Columns(2)
	require.NoError(t, err)
	require.NoError(t, cols.Append("-a", "first"))
	cols.Close()
	err = cols.Append("-b", "second")
	assert.ErrorIs(t, err, usagefmt.ErrClosed)
}

func TestRenderBeforeClose(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(40)
	cols, err := f.Columns(2)
	require.NoError(t, err)
	require.NoError(t, cols.Append("-a", "first"))
	_, err = f.Render()
	assert.ErrorIs(t, err, usagefmt.ErrNotClosed)
}

func TestExactFitNoDiscard(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(40)
	cols, err := f.Columns(1,
		usagefmt.WithWrap(false),
		usagefmt.WithMaxWidths(usagefmt.Chars(10)),
	)
	require.NoError(t, err)
	require.NoError(t, cols.Append("abcdefghij"))
	cols.Close()
	assert.Equal(t, []int{10}, cols.Widths())
	assert.Equal(t, "abcdefghij", render(t, f))
}

func TestAllOutliersCollapseToMinimum(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(20)
	cols, err := f.Columns(2, usagefmt.WithSpacing("  "))
	require.NoError(t, err)
	require.NoError(t, cols.Append("aaaaaaaaaa", "x"))
	require.NoError(t, cols.Append("aaaaaaaaaa", "x"))
	cols.Close()

	// Every first cell exceeds the cap, so the column falls back to its
	// minimum and every row overflows. Degraded but well-defined.
	assert.Equal(t, []int{2, 2}, cols.Widths())
	want := "aaaaaaaaaa\n    x\naaaaaaaaaa\n    x"
	assert.Equal(t, want, render(t, f))
}

func TestRightAlignment(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(20)
	cols, err := f.Columns(2,
		usagefmt.WithSpacing("  "),
		usagefmt.WithAlign(usagefmt.AlignRight, usagefmt.AlignLeft),
		usagefmt.WithMaxWidths(usagefmt.Chars(10), usagefmt.WidthSpec{}),
	)
	require.NoError(t, err)
	require.NoError(t, cols.Append("-h", "x"))
	require.NoError(t, cols.Append("--all", "y"))
	cols.Close()
	assert.Equal(t, "   -h  x\n--all  y", render(t, f))
}

func TestCenterAlignmentAndMinOverMax(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(20)
	cols, err := f.Columns(1,
		usagefmt.WithAlign(usagefmt.AlignCenter),
		usagefmt.WithWrap(true),
		usagefmt.WithMinWidths(usagefmt.Chars(10)),
	)
	require.NoError(t, err)
	require.NoError(t, cols.Append("ab"))
	cols.Close()
	// The default max (a quarter of 20) is below the minimum; the minimum
	// wins and the cell centers within it.
	assert.Equal(t, []int{10}, cols.Widths())
	assert.Equal(t, "    ab", render(t, f))
}

func TestFractionalMinimumWidth(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(40)
	cols, err := f.Columns(1,
		usagefmt.WithMinWidths(usagefmt.Fraction(0.5)),
		usagefmt.WithMaxWidths(usagefmt.WidthSpec{}),
	)
	require.NoError(t, err)
	require.NoError(t, cols.Append("ab"))
	cols.Close()
	assert.Equal(t, []int{20}, cols.Widths())
}

func TestColumnOptionShapeErrors(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(40)
	_, err := f.Columns(2, usagefmt.WithAlign(usagefmt.AlignLeft))
	assert.ErrorIs(t, err, usagefmt.ErrShape)
	_, err = f.Columns(0)
	assert.ErrorIs(t, err, usagefmt.ErrShape)
	_, err = f.Columns(3, usagefmt.WithWrap(false))
	assert.ErrorIs(t, err, usagefmt.ErrShape)
	_, err = f.Columns(2, usagefmt.WithMinWidths(usagefmt.Chars(2)))
	assert.ErrorIs(t, err, usagefmt.ErrShape)
	_, err = f.Columns(2, usagefmt.WithMaxWidths(usagefmt.Chars(9)))
	assert.ErrorIs(t, err, usagefmt.ErrShape)
}

func TestEmptyCellsLeaveNoTrailingSpace(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(20)
	cols, err := f.Columns(2, usagefmt.WithSpacing("  "))
	require.NoError(t, err)
	require.NoError(t, cols.Append("-v", ""))
	require.NoError(t, cols.Append("-q", "quiet"))
	cols.Close()
	assert.Equal(t, "-v\n-q  quiet", render(t, f))
}

func TestWidthsReturnsCopy(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(40)
	cols, err := f.Columns(1)
	require.NoError(t, err)
	require.NoError(t, cols.Append("abc"))
	cols.Close()
	got := cols.Widths()
	got[0] = 99
	assert.NotEqual(t, got[0], cols.Widths()[0])
}

func TestParagraphAfterTable(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(30)
	cols, err := f.Columns(2, usagefmt.WithSpacing("  "))
	require.NoError(t, err)
	require.NoError(t, cols.Append("-h", "help"))
	cols.Close()
	f.NewParagraph()
	require.NoError(t, f.Append("after", 0))
	assert.Equal(t, "-h  help\n\nafter", render(t, f))
}

func TestTableIndentCapturedAtAppendTime(t *testing.T) {
	t.Parallel()
	f := usagefmt.NewFormatter(30)
	scope := f.Indent(2)
	cols, err := f.Columns(2, usagefmt.WithSpacing("  "))
	require.NoError(t, err)
	require.NoError(t, cols.Append("-h", "help"))
	scope.Close()
	cols.Close()
	assert.Equal(t, "  -h  help", render(t, f))
}

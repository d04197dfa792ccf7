package usagefmt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// WidthSpec is a column width policy: an absolute number of character cells
// or a fraction of the space left after separators. The zero value means
// unconstrained.
type WidthSpec struct {
	kind  widthKind
	chars int
	frac  float64
}

type widthKind int

const (
	widthNone widthKind = iota
	widthChars
	widthFrac
)

// Chars returns a WidthSpec of an absolute number of character cells.
func Chars(n int) WidthSpec { return WidthSpec{kind: widthChars, chars: n} }

// Fraction returns a WidthSpec resolved against the width remaining after
// column separators, rounded down.
func Fraction(f float64) WidthSpec { return WidthSpec{kind: widthFrac, frac: f} }

// resolve turns the spec into a cell count against budget. The second
// return is false for the unconstrained zero value.
func (s WidthSpec) resolve(budget int) (int, bool) {
	switch s.kind {
	case widthChars:
		return s.chars, true
	case widthFrac:
		return int(s.frac * float64(budget)), true
	default:
		return 0, false
	}
}

const defaultSpacing = "   "

// ColumnLayout collects rows of cells and renders them as an aligned table
// within its Formatter's width budget. Rows are appended while the layout
// is open; Close freezes one width per column, computed from the observed
// cell lengths and the min/max policies. The buffered rows then render
// lazily when the owning Formatter renders.
type ColumnLayout struct {
	formatter *Formatter
	num       int
	spacing   string
	align     []Alignment
	wrap      []bool
	minSpec   []WidthSpec
	maxSpec   []WidthSpec
	rows      [][]string
	widths    []int
	closed    bool
}

// ColumnOption configures a ColumnLayout at construction.
type ColumnOption func(*ColumnLayout) error

// WithSpacing sets the separator string placed between columns.
// The default is three spaces.
func WithSpacing(s string) ColumnOption {
	return func(c *ColumnLayout) error {
		c.spacing = s
		return nil
	}
}

// WithAlign sets per-column alignment, one value per column.
// The default is left alignment everywhere.
func WithAlign(aligns ...Alignment) ColumnOption {
	return func(c *ColumnLayout) error {
		if len(aligns) != c.num {
			return fmt.Errorf("%w: expected %d alignments, got %d", ErrShape, c.num, len(aligns))
		}
		copy(c.align, aligns)
		return nil
	}
}

// WithWrap sets per-column wrap eligibility, one value per column. A
// non-wrapping column holds its content on one line and lets outlier cells
// spill across later columns instead of widening. By default column 0 does
// not wrap and the remaining columns do.
func WithWrap(wrap ...bool) ColumnOption {
	return func(c *ColumnLayout) error {
		if len(wrap) != c.num {
			return fmt.Errorf("%w: expected %d wrap flags, got %d", ErrShape, c.num, len(wrap))
		}
		copy(c.wrap, wrap)
		return nil
	}
}

// WithMinWidths sets per-column minimum widths, one spec per column.
// The default is 2 cells for every column.
func WithMinWidths(specs ...WidthSpec) ColumnOption {
	return func(c *ColumnLayout) error {
		if len(specs) != c.num {
			return fmt.Errorf("%w: expected %d minimum widths, got %d", ErrShape, c.num, len(specs))
		}
		copy(c.minSpec, specs)
		return nil
	}
}

// WithMaxWidths sets per-column maximum widths, one spec per column. The
// default caps column 0 at a quarter of the budget and leaves the rest
// unconstrained.
func WithMaxWidths(specs ...WidthSpec) ColumnOption {
	return func(c *ColumnLayout) error {
		if len(specs) != c.num {
			return fmt.Errorf("%w: expected %d maximum widths, got %d", ErrShape, c.num, len(specs))
		}
		copy(c.maxSpec, specs)
		return nil
	}
}

// Columns returns an open ColumnLayout with num columns bound to the
// formatter's width budget. Rows are recorded in the buffer as they are
// appended, at the indentation active at append time, but their final text
// is produced only at render time, after the layout has been closed.
func (f *Formatter) Columns(num int, opts ...ColumnOption) (*ColumnLayout, error) {
	if num < 1 {
		return nil, fmt.Errorf("%w: need at least one column, got %d", ErrShape, num)
	}
	c := &ColumnLayout{
		formatter: f,
		num:       num,
		spacing:   defaultSpacing,
		align:     make([]Alignment, num),
		wrap:      make([]bool, num),
		minSpec:   make([]WidthSpec, num),
		maxSpec:   make([]WidthSpec, num),
	}
	for i := range num {
		c.wrap[i] = i > 0
		c.minSpec[i] = Chars(2)
	}
	c.maxSpec[0] = Fraction(0.25)
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Append records one row. The number of cells must equal the number of
// columns and the layout must still be open.
func (c *ColumnLayout) Append(cells ...string) error {
	if c.closed {
		return fmt.Errorf("%w: cannot append", ErrClosed)
	}
	if len(cells) != c.num {
		return fmt.Errorf("%w: expected %d cells, got %d", ErrShape, c.num, len(cells))
	}
	row := make([]string, c.num)
	copy(row, cells)
	c.rows = append(c.rows, row)
	c.formatter.appendContent(&layoutRow{layout: c, cells: row})
	return nil
}

// Close freezes the column widths. Further appends fail and rendering
// becomes available. Closing again has no effect.
func (c *ColumnLayout) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.widths = c.computeWidths()
}

// Widths returns a copy of the frozen column widths. It is nil until the
// layout is closed, and nil for a layout that never received rows.
func (c *ColumnLayout) Widths() []int {
	if c.widths == nil {
		return nil
	}
	widths := make([]int, len(c.widths))
	copy(widths, c.widths)
	return widths
}

// computeWidths distributes the formatter's width across the columns.
// Columns are decided left to right; each may claim what is left after
// reserving the minimum width of every column to its right, clamped by its
// own maximum. A non-wrapping column discards its longest observed cell
// lengths while they exceed that capacity, so one outlier cell spills at
// render time instead of widening the whole column.
func (c *ColumnLayout) computeWidths() []int {
	if len(c.rows) == 0 {
		return nil
	}
	sepWidth := runewidth.StringWidth(c.spacing)
	used := sepWidth * (c.num - 1)
	budget := c.formatter.maxWidth - used

	minW := make([]int, c.num)
	maxW := make([]int, c.num)
	maxSet := make([]bool, c.num)
	for i := range c.num {
		minW[i], _ = c.minSpec[i].resolve(budget)
		maxW[i], maxSet[i] = c.maxSpec[i].resolve(budget)
	}

	widths := make([]int, c.num)
	for i := range c.num {
		lengths := make([]int, len(c.rows))
		for j, row := range c.rows {
			lengths[j] = runewidth.StringWidth(row[i])
		}
		sort.Ints(lengths)

		reserved := 0
		for _, m := range minW[i+1:] {
			reserved += m
		}
		capacity := c.formatter.maxWidth - used - reserved
		if maxSet[i] && capacity > maxW[i] {
			capacity = maxW[i]
		}

		if !c.wrap[i] {
			for len(lengths) > 0 && lengths[len(lengths)-1] > capacity {
				lengths = lengths[:len(lengths)-1]
			}
			if len(lengths) == 0 {
				lengths = []int{minW[i]}
			}
		}
		widths[i] = bound(lengths[len(lengths)-1], minW[i], capacity)
		used += widths[i]
	}
	return widths
}

// bound clamps val low by min, then high by max. The low clamp wins when
// min exceeds max.
func bound(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// layoutRow is one buffered row; it renders through its layout's frozen
// widths.
type layoutRow struct {
	layout *ColumnLayout
	cells  []string
}

func (r *layoutRow) renderLines() ([]string, error) {
	return r.layout.formatRow(r.cells)
}

// formatRow renders one row into physical lines: each cell wraps to its
// column width, the wrapped pieces are zipped by position across columns,
// and overflowing cells push the columns after them onto a continuation
// line.
func (c *ColumnLayout) formatRow(cells []string) ([]string, error) {
	if !c.closed {
		return nil, fmt.Errorf("%w: close before rendering", ErrNotClosed)
	}
	wrapped := make([][]string, c.num)
	for i, cell := range cells {
		lines, err := c.formatCell(i, cell)
		if err != nil {
			return nil, err
		}
		wrapped[i] = lines
	}
	depth := 0
	for _, lines := range wrapped {
		if len(lines) > depth {
			depth = len(lines)
		}
	}
	var out []string
	for pos := range depth {
		zipped := make([]string, c.num)
		for i := range zipped {
			if pos < len(wrapped[i]) {
				zipped[i] = wrapped[i][pos]
			} else {
				zipped[i] = strings.Repeat(" ", c.widths[i])
			}
		}
		out = append(out, c.matchLines(zipped)...)
	}
	return out, nil
}

// formatCell wraps one cell and pads every piece to the wrap width. A
// non-wrapping cell that exceeds its column gets the combined width of the
// remaining columns and separators instead, so nothing is truncated.
func (c *ColumnLayout) formatCell(i int, cell string) ([]string, error) {
	width := c.widths[i]
	if !c.wrap[i] && runewidth.StringWidth(cell) > width {
		width = runewidth.StringWidth(c.spacing) * (c.num - i - 1)
		for _, w := range c.widths[i:] {
			width += w
		}
	}
	lines, err := Wrap(cell, width)
	if err != nil {
		return nil, err
	}
	for j, line := range lines {
		lines[j] = alignCell(line, width, c.align[i])
	}
	return lines, nil
}

// matchLines turns one zipped sub-line into physical lines. When a cell is
// wider than its column, the line ends there and the remaining cells resume
// on a continuation line indented to the start of the next column. Trailing
// whitespace is stripped from every line.
func (c *ColumnLayout) matchLines(cells []string) []string {
	sepWidth := runewidth.StringWidth(c.spacing)
	var out []string
	group := make([]string, 0, c.num)
	colStart := 0
	for i, cell := range cells {
		group = append(group, cell)
		if runewidth.StringWidth(cell) > c.widths[i] {
			out = append(out, joinCells(group, c.spacing))
			if i+1 == c.num {
				return out
			}
			group = []string{strings.Repeat(" ", colStart+c.widths[i]+sepWidth*i)}
		}
		colStart += c.widths[i]
	}
	return append(out, joinCells(group, c.spacing))
}

func joinCells(cells []string, spacing string) string {
	return strings.TrimRight(strings.Join(cells, spacing), " ")
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

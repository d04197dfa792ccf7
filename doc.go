// Package usagefmt lays out help and usage text for command-line tools.
//
// The central type is [Formatter], a line buffer bounded by a maximum
// rendering width (usually the terminal width). Text appended with
// [Formatter.Append] is word-wrapped to fit; [Formatter.AppendRaw] takes
// pre-wrapped lines verbatim. [Formatter.NewParagraph] separates blocks
// with a single blank line no matter how often it is called, and
// [Formatter.Render] assembles everything into one string.
//
// # Indentation
//
// Indentation is scoped. [Formatter.Indent] raises the level and returns an
// [IndentScope] whose Close restores it, so blocks nest naturally:
//
//	scope := f.Indent(2)
//	defer scope.Close()
//	f.Append("indented paragraph", 0)
//
// # Columns
//
// [Formatter.Columns] opens a [ColumnLayout] for tabular content such as
// option listings. Rows take their place in the buffer as they are
// appended, but column widths are computed only when the layout is closed,
// from the observed cell lengths, the separator, and per-column minimum and
// maximum policies ([Chars] or [Fraction] of the budget). Columns marked
// wrap-eligible reflow long cells over multiple lines; non-wrapping columns
// shrink to their longest typical cell and let outliers spill across the
// table on a line of their own:
//
//	cols, _ := f.Columns(2)
//	cols.Append("-h, --help", "show this help and exit")
//	cols.Append("-o, --output=FILE", "write the result to FILE")
//	cols.Close()
//
// # Integrations
//
// [AppendFlagSet] renders a [github.com/spf13/pflag.FlagSet] as an options
// table. [Document] is a YAML-declarable help page (usage lines,
// description, sections, footer) rendered through the same engine.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrShape] — wrong number of cells or per-column option values
//   - [ErrInvalidWidth] — a wrap width resolved to zero or less
//   - [ErrClosed] — append to a closed layout
//   - [ErrNotClosed] — render of a layout that was never closed
//
// Widths are measured in terminal cells via go-runewidth. The engine does
// not interpret ANSI escapes; style text after layout, not before.
package usagefmt

package usagefmt

import (
	"errors"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrShape        = errors.New("wrong number of values")
	ErrInvalidWidth = errors.New("invalid wrap width")
	ErrClosed       = errors.New("column layout closed")
	ErrNotClosed    = errors.New("column layout not closed")
)

// lineRenderer produces the physical lines for buffered content whose final
// text is not known until render time (column layout rows).
type lineRenderer interface {
	renderLines() ([]string, error)
}

// bufferedLine is one entry of a Formatter's buffer: either a plain
// pre-wrapped string or deferred content, at a fixed indent.
type bufferedLine struct {
	indent  int
	text    string
	content lineRenderer
}

func (l bufferedLine) blank() bool {
	return l.content == nil && l.text == ""
}

// Formatter accumulates indented lines of help text and assembles them into
// a single string bounded by a maximum rendering width.
//
// A Formatter is built top to bottom: append paragraphs and raw lines, open
// indent scopes around nested blocks, and open column layouts for tables.
// Column rows are buffered in place but laid out lazily, so a table's widths
// reflect every row appended before its layout was closed. Formatters are
// not safe for concurrent use.
type Formatter struct {
	maxWidth int
	indent   int
	lines    []bufferedLine
}

// NewFormatter returns a Formatter that renders at most maxWidth characters
// per line. If maxWidth <= 0 the width of the controlling terminal is used,
// falling back to 78.
func NewFormatter(maxWidth int) *Formatter {
	if maxWidth <= 0 {
		maxWidth = TerminalWidth()
	}
	return &Formatter{maxWidth: maxWidth}
}

// MaxWidth returns the rendering width the formatter was built with.
func (f *Formatter) MaxWidth() int { return f.maxWidth }

// Append word-wraps text at the current indentation plus extraIndent and
// appends the resulting lines. It returns ErrInvalidWidth when indentation
// leaves no room to wrap.
func (f *Formatter) Append(text string, extraIndent int) error {
	lines, err := Wrap(text, f.maxWidth-f.indent-extraIndent)
	if err != nil {
		return err
	}
	for _, line := range lines {
		f.AppendRaw(line, extraIndent)
	}
	return nil
}

// AppendRaw appends a single pre-wrapped line verbatim at the current
// indentation plus extraIndent. No width check is applied.
func (f *Formatter) AppendRaw(line string, extraIndent int) {
	f.lines = append(f.lines, bufferedLine{indent: f.indent + extraIndent, text: line})
}

func (f *Formatter) appendContent(content lineRenderer) {
	f.lines = append(f.lines, bufferedLine{indent: f.indent, content: content})
}

// NewParagraph inserts a blank separator line unless the buffer is empty or
// already ends with one. Repeated calls never stack blank lines.
func (f *Formatter) NewParagraph() {
	if len(f.lines) == 0 || f.lines[len(f.lines)-1].blank() {
		return
	}
	f.lines = append(f.lines, bufferedLine{})
}

// Extend merges the buffered lines of src into f. A leading blank line in
// src starts a new paragraph instead of being copied verbatim. Indents
// recorded in src are offset by f's current indentation, so nested
// formatters should resolve their own absolute indentation before merging.
func (f *Formatter) Extend(src *Formatter) {
	f.extend(src.lines)
}

// ExtendLines appends pre-wrapped lines at the current indentation. A
// leading blank line starts a new paragraph, as with Extend.
func (f *Formatter) ExtendLines(lines []string) {
	buf := make([]bufferedLine, len(lines))
	for i, line := range lines {
		buf[i] = bufferedLine{text: line}
	}
	f.extend(buf)
}

func (f *Formatter) extend(lines []bufferedLine) {
	if len(lines) == 0 {
		return
	}
	if lines[0].blank() {
		f.NewParagraph()
	} else {
		f.appendOffset(lines[0])
	}
	for _, line := range lines[1:] {
		f.appendOffset(line)
	}
}

func (f *Formatter) appendOffset(line bufferedLine) {
	line.indent += f.indent
	f.lines = append(f.lines, line)
}

// IndentScope restores a Formatter's indentation level when closed.
type IndentScope struct {
	f      *Formatter
	by     int
	closed bool
}

// Indent raises the indentation level by the given amount until the
// returned scope is closed. Scopes nest additively. Close the scope with
// defer so the level is restored even when work inside the scope fails:
//
//	scope := f.Indent(2)
//	defer scope.Close()
func (f *Formatter) Indent(by int) *IndentScope {
	f.indent += by
	return &IndentScope{f: f, by: by}
}

// Close restores the indentation level active before the scope opened.
// Closing an already-closed scope has no effect.
func (s *IndentScope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.f.indent -= s.by
}

// Render assembles the buffered lines into the final text. One trailing
// blank line, if present, is dropped. Plain lines render as themselves;
// column rows expand to one or more aligned lines. Every line is prefixed
// with the indent captured when it was appended. Render does not mutate the
// formatter and repeated calls yield identical output.
func (f *Formatter) Render() (string, error) {
	lines := f.lines
	if n := len(lines); n > 0 && lines[n-1].blank() {
		lines = lines[:n-1]
	}
	var sb strings.Builder
	first := true
	for _, line := range lines {
		texts := []string{line.text}
		if line.content != nil {
			var err error
			texts, err = line.content.renderLines()
			if err != nil {
				return "", err
			}
		}
		for _, text := range texts {
			if !first {
				sb.WriteString("\n")
			}
			first = false
			sb.WriteString(strings.Repeat(" ", line.indent))
			sb.WriteString(text)
		}
	}
	return sb.String(), nil
}

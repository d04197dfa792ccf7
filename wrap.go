package usagefmt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap greedily packs the words of text into lines no wider than width.
// Words are separated by single spaces in the output; runs of whitespace in
// the input collapse. A single word wider than width is placed on its own
// line, unbroken, so callers can detect overflow instead of losing text.
// Whitespace-only input yields no lines.
func Wrap(text string, width int) ([]string, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}
	var lines []string
	line := words[0]
	used := runewidth.StringWidth(words[0])
	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if used+1+w <= width {
			line += " " + word
			used += 1 + w
			continue
		}
		lines = append(lines, line)
		line = word
		used = w
	}
	return append(lines, line), nil
}

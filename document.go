package usagefmt

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a declarative help page: usage lines, a description, titled
// sections of term/text entries or prose, and a footer. It can be declared
// in YAML next to the command it documents and rendered through the layout
// engine, so tools can keep long help text out of their source.
type Document struct {
	Usage       []string  `yaml:"usage"`
	Description string    `yaml:"description"`
	Sections    []Section `yaml:"sections"`
	Footer      string    `yaml:"footer"`
}

// Section is a titled block of a Document. Text renders as a wrapped
// paragraph; Entries render as a two-column table. Both are indented under
// the title.
type Section struct {
	Title   string  `yaml:"title"`
	Text    string  `yaml:"text"`
	Entries []Entry `yaml:"entries"`
}

// Entry is one term/description pair of a Section.
type Entry struct {
	Term string `yaml:"term"`
	Text string `yaml:"text"`
}

// ParseDocument decodes a YAML help document.
func ParseDocument(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &d, nil
}

// Render lays the document out at the given width. A width <= 0 uses the
// terminal width.
func (d *Document) Render(maxWidth int) (string, error) {
	f := NewFormatter(maxWidth)
	for i, usage := range d.Usage {
		prefix := "Usage: "
		if i > 0 {
			prefix = "   or: "
		}
		f.AppendRaw(prefix+usage, 0)
	}
	if d.Description != "" {
		f.NewParagraph()
		if err := f.Append(d.Description, 0); err != nil {
			return "", err
		}
	}
	for _, s := range d.Sections {
		if err := s.appendTo(f); err != nil {
			return "", err
		}
	}
	if d.Footer != "" {
		f.NewParagraph()
		if err := f.Append(d.Footer, 0); err != nil {
			return "", err
		}
	}
	return f.Render()
}

func (s Section) appendTo(f *Formatter) error {
	f.NewParagraph()
	if s.Title != "" {
		f.AppendRaw(s.Title+":", 0)
	}
	scope := f.Indent(2)
	defer scope.Close()
	if s.Text != "" {
		if err := f.Append(s.Text, 0); err != nil {
			return err
		}
	}
	if len(s.Entries) == 0 {
		return nil
	}
	cols, err := f.Columns(2)
	if err != nil {
		return err
	}
	for _, e := range s.Entries {
		if err := cols.Append(e.Term, e.Text); err != nil {
			return err
		}
	}
	cols.Close()
	return nil
}

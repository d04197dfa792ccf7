package usagefmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/usagefmt"
)

const helpDoc = `
usage:
  - prog [OPTIONS] FILE
  - prog --version
description: Does a thing.
sections:
  - title: Options
    entries:
      - term: -h, --help
        text: show help
footer: See docs.
`

func TestDocumentRender(t *testing.T) {
	t.Parallel()
	doc, err := usagefmt.ParseDocument([]byte(helpDoc))
	require.NoError(t, err)

	out, err := doc.Render(78)
	require.NoError(t, err)
	want := "Usage: prog [OPTIONS] FILE\n" +
		"   or: prog --version\n" +
		"\n" +
		"Does a thing.\n" +
		"\n" +
		"Options:\n" +
		"  -h, --help   show help\n" +
		"\n" +
		"See docs."
	assert.Equal(t, want, out)
}

func TestDocumentSectionText(t *testing.T) {
	t.Parallel()
	doc := &usagefmt.Document{
		Sections: []usagefmt.Section{{
			Title: "Notes",
			Text:  "wrap me please",
		}},
	}
	out, err := doc.Render(10)
	require.NoError(t, err)
	assert.Equal(t, "Notes:\n  wrap me\n  please", out)
}

func TestParseDocumentError(t *testing.T) {
	t.Parallel()
	_, err := usagefmt.ParseDocument([]byte("usage: {nope"))
	assert.Error(t, err)
}

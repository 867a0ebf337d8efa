package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/goose"
	"github.com/fwojciec/goose/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// Ensure MarkdownFormatter implements goose.OutputFormatter at compile time.
var _ goose.OutputFormatter = (*htmltomarkdown.MarkdownFormatter)(nil)

// render parses s and renders its body.
func render(t *testing.T, s string, removeFewWords bool) string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<html><body>" + s + "</body></html>"))
	require.NoError(t, err)
	body := doc.FirstChild.LastChild
	require.Equal(t, "body", body.Data)

	md, err := htmltomarkdown.NewMarkdownFormatter().RenderText(body, removeFewWords)
	require.NoError(t, err)
	return md
}

func TestMarkdownFormatter_RenderText(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		md := render(t, `<p>Hello, world!</p>`, false)

		assert.Equal(t, "Hello, world!", md)
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		md := render(t, `<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`, false)

		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "### Section")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		md := render(t, `<p>Visit <a href="https://example.com">Example</a> for more info.</p>`, false)

		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		md := render(t, `<ul><li>First</li><li>Second</li></ul><ol><li>One</li><li>Two</li></ol>`, false)

		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "1. One")
		assert.Contains(t, md, "2. Two")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		md := render(t, `<p><strong>Bold</strong> and <em>italic</em> text.</p>`, false)

		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts blockquotes", func(t *testing.T) {
		t.Parallel()

		md := render(t, `<blockquote><p>This is a quote.</p></blockquote>`, false)

		assert.Contains(t, md, "> This is a quote.")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		md := render(t, `<table><thead><tr><th>Name</th><th>Age</th></tr></thead>
<tbody><tr><td>Alice</td><td>30</td></tr></tbody></table>`, false)

		assert.Contains(t, md, "Name")
		assert.Contains(t, md, "Alice")
		assert.Contains(t, md, "|")
	})

	t.Run("drops paragraphs with few words when asked", func(t *testing.T) {
		t.Parallel()

		s := `<h2>Update</h2><p>Share this</p><p>It was the best of times and it was the worst of times.</p>`

		kept := render(t, s, false)
		pruned := render(t, s, true)

		assert.Contains(t, kept, "Share this")
		assert.NotContains(t, pruned, "Share this")
		assert.Contains(t, pruned, "## Update")
		assert.Contains(t, pruned, "best of times")
	})

	t.Run("leaves the node untouched", func(t *testing.T) {
		t.Parallel()

		doc, err := html.Parse(strings.NewReader(`<html><body><p>Share this</p></body></html>`))
		require.NoError(t, err)
		body := doc.FirstChild.LastChild

		_, err = htmltomarkdown.NewMarkdownFormatter().RenderText(body, true)

		require.NoError(t, err)
		require.NotNil(t, body.FirstChild)
		assert.Equal(t, "p", body.FirstChild.Data)
	})

	t.Run("renders nothing for a nil node", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewMarkdownFormatter().RenderText(nil, false)

		require.NoError(t, err)
		assert.Empty(t, md)
	})
}

// Package htmltomarkdown renders an article's content region as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure MarkdownFormatter implements goose.OutputFormatter at compile time.
var _ goose.OutputFormatter = (*MarkdownFormatter)(nil)

// MarkdownFormatter wraps html-to-markdown to render the top node as
// Markdown instead of plain text.
type MarkdownFormatter struct {
	conv *converter.Converter
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &MarkdownFormatter{conv: conv}
}

// RenderText converts top to Markdown. The node itself is left untouched.
// When removeFewWords is set, paragraphs with too few stop words to be
// prose are dropped first.
func (f *MarkdownFormatter) RenderText(top *html.Node, removeFewWords bool) (string, error) {
	if top == nil {
		return "", nil
	}

	n := goose.CloneNode(top)
	if removeFewWords {
		pruneFewWords(n)
	}

	if n.Type != html.DocumentNode {
		doc := &html.Node{Type: html.DocumentNode}
		doc.AppendChild(n)
		n = doc
	}

	out, err := f.conv.ConvertNode(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func pruneFewWords(root *html.Node) {
	var drop []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.DataAtom == atom.P && isFewWords(c) {
				drop = append(drop, c)
				continue
			}
			walk(c)
		}
	}
	walk(root)
	for _, n := range drop {
		n.Parent.RemoveChild(n)
	}
}

func isFewWords(n *html.Node) bool {
	if hasEmbed(n) {
		return false
	}
	return goose.CountWords(goose.NodeText(n)).Stopwords < 3
}

func hasEmbed(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Img, atom.Object, atom.Embed, atom.Iframe, atom.Video:
			return true
		}
		if hasEmbed(c) {
			return true
		}
	}
	return false
}

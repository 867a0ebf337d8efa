package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure TextFormatter implements goose.OutputFormatter at compile time.
var _ goose.OutputFormatter = (*TextFormatter)(nil)

// TextFormatter implements goose.OutputFormatter by rendering the top node
// as plain text paragraphs separated by blank lines.
type TextFormatter struct{}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// RenderText returns the text of the children of top, one paragraph per
// line of text.
func (f *TextFormatter) RenderText(top *html.Node, removeFewWords bool) (string, error) {
	if top == nil {
		return "", nil
	}
	var paragraphs []string
	selection(top).Children().Each(func(_ int, c *goquery.Selection) {
		var b strings.Builder
		writeText(&b, c, removeFewWords)
		for _, line := range strings.Split(b.String(), "\n") {
			if line = innerTrim(line); line != "" {
				paragraphs = append(paragraphs, line)
			}
		}
	})
	return strings.Join(paragraphs, "\n\n"), nil
}

// breakTags end a line of text.
var breakTags = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Li: true, atom.Tr: true, atom.Blockquote: true,
	atom.Pre: true, atom.Section: true, atom.Article: true, atom.Ul: true, atom.Ol: true,
	atom.Table: true, atom.Dd: true, atom.Dt: true, atom.Figure: true, atom.Figcaption: true,
	atom.Header: true, atom.Footer: true, atom.Aside: true, atom.Nav: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

func writeText(b *strings.Builder, s *goquery.Selection, removeFewWords bool) {
	n := s.Get(0)
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		return
	}
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Head, atom.Template:
		return
	case atom.Br:
		b.WriteString("\n")
		return
	}
	if removeFewWords && isFewWords(n) {
		return
	}
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		writeText(b, c, removeFewWords)
	})
	if breakTags[n.DataAtom] {
		b.WriteString("\n")
	}
}

// isFewWords reports whether a block carries too few stop words to be prose.
// Headings and lists are always kept, as are blocks with embedded objects.
func isFewWords(n *html.Node) bool {
	if !breakTags[n.DataAtom] {
		return false
	}
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Ul, atom.Ol, atom.Table, atom.Tr:
		return false
	}
	if selection(n).Find("object,embed").Length() > 0 {
		return false
	}
	return goose.CountWords(goose.NodeText(n)).Stopwords < 3
}

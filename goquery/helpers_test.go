package goquery_test

import (
	"testing"

	"github.com/fwojciec/goose"
	"github.com/fwojciec/goose/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func mustParse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := goquery.NewParser().Parse(s)
	require.NoError(t, err)
	return doc
}

// newArticle returns an article positioned as the pipeline leaves it after
// parsing s fetched from url.
func newArticle(t *testing.T, url, s string) *goose.Article {
	t.Helper()
	a := goose.NewArticle()
	a.FinalURL = url
	a.RawHTML = s
	a.Doc = mustParse(t, s)
	a.RawDoc = a.Nodes.Clone(a.Doc)
	return a
}

func findByID(t *testing.T, root *html.Node, id string) *html.Node {
	t.Helper()
	nodes := goquery.NewParser().ByTagAttr(root, "", "id", "^"+id+"$")
	require.NotEmpty(t, nodes, "no element with id %q", id)
	return nodes[0]
}

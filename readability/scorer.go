// Package readability provides a goose.ContentScorer backed by
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/goose"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Ensure Scorer implements goose.ContentScorer at compile time.
var _ goose.ContentScorer = (*Scorer)(nil)

// Scorer wraps go-readability to locate the main content. Readability
// rewrites the tree it works on, so each candidate is copied first.
type Scorer struct{}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// BestNode runs readability on every candidate and returns the article
// node with the most text, or nil when readability finds nothing.
func (s *Scorer) BestNode(candidates []*html.Node) *html.Node {
	var best *html.Node
	bestLen := 0
	for _, c := range candidates {
		if c == nil {
			continue
		}
		article, err := readability.FromDocument(goose.CloneNode(c), nil)
		if err != nil || article.Node == nil {
			continue
		}
		if n := len(strings.TrimSpace(article.TextContent)); n > bestLen {
			best, bestLen = article.Node, n
		}
	}
	return best
}

// KnownArticleTagNodes returns nil; readability looks at whole documents.
func (s *Scorer) KnownArticleTagNodes(*html.Node) []*html.Node {
	return nil
}

// PostCleanup returns top unchanged.
func (s *Scorer) PostCleanup(top *html.Node) *html.Node {
	return top
}

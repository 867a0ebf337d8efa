// Package trafilatura provides a goose.ContentScorer backed by
// go-trafilatura, for pages where stop word scoring picks the wrong region.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/goose"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Scorer implements goose.ContentScorer at compile time.
var _ goose.ContentScorer = (*Scorer)(nil)

// Scorer wraps go-trafilatura to locate the main content.
//
// The node it returns is built by trafilatura and is not part of any
// candidate, so the crawler keeps the first candidate as its document.
type Scorer struct {
	opts trafilatura.Options
}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	return &Scorer{opts: trafilatura.Options{EnableFallback: true}}
}

// BestNode extracts every candidate and returns the content with the most
// text, or nil when trafilatura finds nothing.
func (s *Scorer) BestNode(candidates []*html.Node) *html.Node {
	var best *html.Node
	bestLen := 0
	for _, c := range candidates {
		n, text := s.extract(c)
		if n != nil && len(text) > bestLen {
			best, bestLen = n, len(text)
		}
	}
	return best
}

func (s *Scorer) extract(n *html.Node) (*html.Node, string) {
	if n == nil {
		return nil, ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return nil, ""
	}
	result, err := trafilatura.Extract(&buf, s.opts)
	if err != nil || result.ContentNode == nil {
		return nil, ""
	}
	return result.ContentNode, strings.TrimSpace(result.ContentText)
}

// KnownArticleTagNodes returns nil; trafilatura looks at whole documents.
func (s *Scorer) KnownArticleTagNodes(*html.Node) []*html.Node {
	return nil
}

// PostCleanup returns top unchanged; trafilatura already removed the
// boilerplate.
func (s *Scorer) PostCleanup(top *html.Node) *html.Node {
	return top
}

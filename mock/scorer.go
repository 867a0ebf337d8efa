package mock

import (
	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
)

var _ goose.ContentScorer = (*ContentScorer)(nil)

// ContentScorer is a mock implementation of goose.ContentScorer.
type ContentScorer struct {
	BestNodeFn             func(candidates []*html.Node) *html.Node
	KnownArticleTagNodesFn func(doc *html.Node) []*html.Node
	PostCleanupFn          func(top *html.Node) *html.Node
}

func (s *ContentScorer) BestNode(candidates []*html.Node) *html.Node {
	return s.BestNodeFn(candidates)
}

func (s *ContentScorer) KnownArticleTagNodes(doc *html.Node) []*html.Node {
	return s.KnownArticleTagNodesFn(doc)
}

func (s *ContentScorer) PostCleanup(top *html.Node) *html.Node {
	return s.PostCleanupFn(top)
}

var _ goose.DocumentCleaner = (*DocumentCleaner)(nil)

// DocumentCleaner is a mock implementation of goose.DocumentCleaner.
type DocumentCleaner struct {
	CleanFn                       func(doc *html.Node) *html.Node
	DiscoverSubArticlesFn         func(doc *html.Node) []*html.Node
	RemoveNestedArticleWrappersFn func(doc *html.Node) *html.Node
}

func (c *DocumentCleaner) Clean(doc *html.Node) *html.Node {
	return c.CleanFn(doc)
}

func (c *DocumentCleaner) DiscoverSubArticles(doc *html.Node) []*html.Node {
	return c.DiscoverSubArticlesFn(doc)
}

func (c *DocumentCleaner) RemoveNestedArticleWrappers(doc *html.Node) *html.Node {
	return c.RemoveNestedArticleWrappersFn(doc)
}

package goose

import "golang.org/x/net/html"

// ContentScorer ranks candidate nodes by estimated content density.
type ContentScorer interface {
	// BestNode returns the highest scoring node found within the
	// candidates, or nil when nothing qualifies.
	BestNode(candidates []*html.Node) *html.Node

	// KnownArticleTagNodes returns nodes in doc that are known to wrap
	// article bodies, or nil when there are none.
	KnownArticleTagNodes(doc *html.Node) []*html.Node

	// PostCleanup prunes low-value children of the selected top node and
	// returns the node to use from then on.
	PostCleanup(top *html.Node) *html.Node
}

// DocumentCleaner removes template noise from documents.
type DocumentCleaner interface {
	// Clean strips boilerplate from doc and returns the cleaned node.
	Clean(doc *html.Node) *html.Node

	// DiscoverSubArticles returns the nested story fragments in doc that
	// deserve their own crawl. It does not modify doc.
	DiscoverSubArticles(doc *html.Node) []*html.Node

	// RemoveNestedArticleWrappers unwraps article wrappers nested inside
	// other article wrappers and returns the document.
	RemoveNestedArticleWrappers(doc *html.Node) *html.Node
}

// Parser is the DOM collaborator used by the pipeline.
type Parser interface {
	// Parse parses an HTML document.
	Parse(html string) (*html.Node, error)

	// XPath returns the nodes under root matching expr. Invalid
	// expressions match nothing.
	XPath(root *html.Node, expr string) []*html.Node

	// ByTagAttr returns root and its descendants matching tag (any tag
	// when empty) whose attr matches value case-insensitively.
	ByTagAttr(root *html.Node, tag, attr, value string) []*html.Node

	// Text returns the text content of n.
	Text(n *html.Node) string

	// Attr returns the value of the named attribute of n.
	Attr(n *html.Node, name string) (string, bool)

	// Remove detaches n from its parent.
	Remove(n *html.Node)

	// OuterHTML renders n including its own tag.
	OuterHTML(n *html.Node) string
}

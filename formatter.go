package goose

import "golang.org/x/net/html"

// OutputFormatter renders the content region of an article as text.
type OutputFormatter interface {
	// RenderText returns the text of top. When removeFewWords is set,
	// blocks with too few stop words are dropped as likely boilerplate.
	RenderText(top *html.Node, removeFewWords bool) (string, error)
}

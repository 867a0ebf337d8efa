package mock

import (
	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
)

var _ goose.OutputFormatter = (*OutputFormatter)(nil)

// OutputFormatter is a mock implementation of goose.OutputFormatter.
type OutputFormatter struct {
	RenderTextFn func(top *html.Node, removeFewWords bool) (string, error)
}

func (f *OutputFormatter) RenderText(top *html.Node, removeFewWords bool) (string, error) {
	return f.RenderTextFn(top, removeFewWords)
}

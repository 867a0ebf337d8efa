package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
)

// Ensure LoggingScorer implements goose.ContentScorer.
var _ goose.ContentScorer = (*LoggingScorer)(nil)

// LoggingScorer wraps a ContentScorer with debug logging of content
// region selection.
type LoggingScorer struct {
	next   goose.ContentScorer
	logger *slog.Logger
}

// NewLoggingScorer creates a new LoggingScorer.
func NewLoggingScorer(next goose.ContentScorer, logger *slog.Logger) *LoggingScorer {
	return &LoggingScorer{next: next, logger: logger}
}

// BestNode logs the candidate count and whether a node was found.
func (s *LoggingScorer) BestNode(candidates []*html.Node) (best *html.Node) {
	defer func(begin time.Time) {
		tag := "(none)"
		if best != nil {
			tag = best.Data
		}
		s.logger.Debug("best node",
			"candidates", len(candidates),
			"node", tag,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.BestNode(candidates)
}

// KnownArticleTagNodes logs how many known article wrappers were found.
func (s *LoggingScorer) KnownArticleTagNodes(doc *html.Node) (nodes []*html.Node) {
	defer func() {
		s.logger.Debug("known article nodes", "count", len(nodes))
	}()
	return s.next.KnownArticleTagNodes(doc)
}

// PostCleanup delegates to the wrapped scorer.
func (s *LoggingScorer) PostCleanup(top *html.Node) *html.Node {
	return s.next.PostCleanup(top)
}

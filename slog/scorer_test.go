package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/goose/mock"
	gooseslog "github.com/fwojciec/goose/slog"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func TestLoggingScorer_BestNode(t *testing.T) {
	t.Parallel()

	t.Run("logs the selected node", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		div := &html.Node{Type: html.ElementNode, Data: "div"}
		inner := &mock.ContentScorer{
			BestNodeFn: func([]*html.Node) *html.Node { return div },
		}

		best := gooseslog.NewLoggingScorer(inner, logger).BestNode([]*html.Node{{}, {}})

		assert.Same(t, div, best)
		output := buf.String()
		assert.Contains(t, output, "best node")
		assert.Contains(t, output, "candidates=2")
		assert.Contains(t, output, "node=div")
	})

	t.Run("logs when nothing was found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.ContentScorer{
			BestNodeFn: func([]*html.Node) *html.Node { return nil },
		}

		best := gooseslog.NewLoggingScorer(inner, logger).BestNode(nil)

		assert.Nil(t, best)
		assert.Contains(t, buf.String(), "node=(none)")
	})
}

func TestLoggingScorer_KnownArticleTagNodes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inner := &mock.ContentScorer{
		KnownArticleTagNodesFn: func(*html.Node) []*html.Node {
			return []*html.Node{{}, {}, {}}
		},
	}

	nodes := gooseslog.NewLoggingScorer(inner, logger).KnownArticleTagNodes(&html.Node{})

	assert.Len(t, nodes, 3)
	assert.Contains(t, buf.String(), "count=3")
}

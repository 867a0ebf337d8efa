// Package slog provides logging decorators for goose services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/goose"
)

// Ensure LoggingFetcher implements goose.Fetcher.
var _ goose.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   goose.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next goose.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchResponse logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) FetchResponse(ctx context.Context, url string) (resp *goose.Response, err error) {
	defer func(begin time.Time) {
		var n int
		var encoding string
		if resp != nil {
			n, encoding = len(resp.Content), resp.Encoding
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", n,
			"encoding", encoding,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchResponse(ctx, url)
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

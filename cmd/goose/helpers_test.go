package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/goose"
	main "github.com/fwojciec/goose/cmd/goose"
	"github.com/fwojciec/goose/crawl"
	"github.com/fwojciec/goose/goquery"
	"github.com/fwojciec/goose/mock"
	"github.com/stretchr/testify/require"
)

const articlePage = `<html><head>
<title>Hello World</title>
<meta name="author" content="By Lois Lane">
<meta property="article:published_time" content="2024-03-05T10:00:00+02:00">
</head><body>
<div id="nav"><a href="/">Home</a> <a href="/about">About</a></div>
<div id="story">
<p>It was the best of times and it was the worst of times for all of us.</p>
<p>We had everything before us and we had nothing before us at all.</p>
<p>There were those who said that the season would never end for them.</p>
</div>
</body></html>`

// writePage writes content to a temporary HTML file and returns its path.
func writePage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "story.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newDeps returns dependencies with a crawler wired to the goquery
// collaborators and the given fetcher.
func newDeps(t *testing.T, fetcher goose.Fetcher) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg := goose.NewConfig()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Crawler: &crawl.Crawler{
			Config:      cfg,
			Fetcher:     fetcher,
			Parser:      goquery.NewParser(),
			Cleaner:     goquery.NewCleaner(),
			Scorer:      goquery.NewScorer(cfg),
			Formatter:   goquery.NewTextFormatter(),
			Extractors:  goquery.NewExtractors(cfg, fetcher, nil),
			Resources:   &mock.ResourceStore{ReleaseFn: func(string) error { return nil }},
			RetryDelays: []time.Duration{0},
		},
	}, stdout, stderr
}

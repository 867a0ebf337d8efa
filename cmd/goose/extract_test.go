package main_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/goose"
	"github.com/fwojciec/goose/bloom"
	main "github.com/fwojciec/goose/cmd/goose"
	"github.com/fwojciec/goose/fs"
	"github.com/fwojciec/goose/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts a local file", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, nil)
		cmd := &main.ExtractCmd{File: []string{writePage(t, articlePage)}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Hello World")
		assert.Contains(t, output, "Lois Lane")
		assert.Contains(t, output, "2024-03-05T08:00:00Z")
		assert.Contains(t, output, "It was the best of times")
		assert.Contains(t, output, "file://")
	})

	t.Run("fetches URLs", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchResponseFn: func(_ context.Context, url string) (*goose.Response, error) {
				return &goose.Response{URL: url, Text: articlePage}, nil
			},
		}
		deps, stdout, _ := newDeps(t, fetcher)
		cmd := &main.ExtractCmd{URLs: []string{"https://example.com/story"}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "URL:       https://example.com/story")
	})

	t.Run("requires an input", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t, nil)
		cmd := &main.ExtractCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, goose.EINVALID, goose.ErrorCode(err))
		assert.Contains(t, stderr.String(), "provide at least one URL")
	})

	t.Run("skips duplicate URLs", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetcher := &mock.Fetcher{
			FetchResponseFn: func(_ context.Context, url string) (*goose.Response, error) {
				calls++
				return &goose.Response{URL: url, Text: articlePage}, nil
			},
		}
		deps, _, stderr := newDeps(t, fetcher)
		deps.Seen = bloom.NewFilter(10, 0.001)
		cmd := &main.ExtractCmd{URLs: []string{
			"https://example.com/story",
			"https://EXAMPLE.com/story/",
		}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Contains(t, stderr.String(), "skipping duplicate https://EXAMPLE.com/story/")
	})

	t.Run("continues after a failure and reports it", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchResponseFn: func(_ context.Context, url string) (*goose.Response, error) {
				if strings.HasSuffix(url, "/missing") {
					return nil, goose.Errorf(goose.ENOTFOUND, "gone")
				}
				return &goose.Response{URL: url, Text: articlePage}, nil
			},
		}
		deps, stdout, stderr := newDeps(t, fetcher)
		cmd := &main.ExtractCmd{URLs: []string{
			"https://example.com/missing",
			"https://example.com/story",
		}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2")
		assert.Contains(t, stderr.String(), "error: https://example.com/missing")
		assert.Contains(t, stdout.String(), "Hello World")
	})

	t.Run("saves records when requested", func(t *testing.T) {
		t.Parallel()

		var saved *goose.Record
		deps, _, stderr := newDeps(t, nil)
		deps.Records = &mock.RecordService{
			CreateRecordFn: func(_ context.Context, rec *goose.Record) error {
				rec.ID = "rec-1"
				saved = rec
				return nil
			},
		}
		cmd := &main.ExtractCmd{File: []string{writePage(t, articlePage)}, Save: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Hello World", saved.Title)
		assert.Equal(t, []string{"Lois Lane"}, saved.Authors)
		assert.False(t, saved.CrawledAt.IsZero())
		assert.Contains(t, stderr.String(), "Saved rec-1")
	})

	t.Run("reports storage failures", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t, nil)
		deps.Records = &mock.RecordService{
			CreateRecordFn: func(context.Context, *goose.Record) error {
				return goose.Errorf(goose.EINTERNAL, "disk full")
			},
		}
		cmd := &main.ExtractCmd{File: []string{writePage(t, articlePage)}, Save: true}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "disk full")
	})

	t.Run("writes markdown files", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		fetcher := &mock.Fetcher{
			FetchResponseFn: func(_ context.Context, url string) (*goose.Response, error) {
				return &goose.Response{URL: url, Text: articlePage}, nil
			},
		}
		deps, _, stderr := newDeps(t, fetcher)
		deps.Writer = fs.NewWriter(out)
		cmd := &main.ExtractCmd{URLs: []string{"https://example.com/news/story"}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(out, "example.com", "news", "story.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "title: Hello World")
		assert.Contains(t, string(data), "It was the best of times")
		assert.Contains(t, stderr.String(), "Wrote ")
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, nil)
		cmd := &main.ExtractCmd{File: []string{writePage(t, articlePage)}, JSON: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		var rec goose.Record
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &rec))
		assert.Equal(t, "Hello World", rec.Title)
		assert.Contains(t, rec.Content, "It was the best of times")
	})

	t.Run("rejects unreadable files", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(t, nil)
		cmd := &main.ExtractCmd{File: []string{filepath.Join(t.TempDir(), "missing.html")}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, goose.EINVALID, goose.ErrorCode(err))
	})
}

package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/goose"
	"github.com/fwojciec/goose/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "simple path",
			url:  "https://example.com/news/2024/story",
			want: "example.com/news/2024/story.md",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://example.com/news/",
			want: "example.com/news/index.md",
		},
		{
			name: "root path becomes index",
			url:  "https://example.com/",
			want: "example.com/index.md",
		},
		{
			name: "html extension is replaced",
			url:  "https://example.com/news/story.html",
			want: "example.com/news/story.md",
		},
		{
			name: "ignores query string and fragment",
			url:  "https://example.com/news/story?page=2#comments",
			want: "example.com/news/story.md",
		},
		{
			name:    "rejects path traversal",
			url:     "https://example.com/../../../etc/passwd",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	t.Run("formats record with frontmatter", func(t *testing.T) {
		t.Parallel()

		published := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
		rec := &goose.Record{
			URL:         "https://example.com/news/story",
			Title:       "Hello World",
			Authors:     []string{"Lois Lane"},
			PublishDate: &published,
			Content:     "It was the best of times.",
			CrawledAt:   time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		}

		got, err := fs.FormatRecord(rec)

		require.NoError(t, err)
		want := `---
source: https://example.com/news/story
title: Hello World
authors:
  - Lois Lane
published: "2024-03-05"
crawled: "2025-01-08"
---

It was the best of times.`
		assert.Equal(t, want, got)
	})

	t.Run("omits missing authors and date", func(t *testing.T) {
		t.Parallel()

		got, err := fs.FormatRecord(&goose.Record{
			URL:       "https://example.com/a",
			Title:     "A",
			CrawledAt: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		})

		require.NoError(t, err)
		assert.NotContains(t, got, "authors:")
		assert.NotContains(t, got, "published:")
	})
}

func TestWriter_WriteRecord(t *testing.T) {
	t.Parallel()

	t.Run("writes the record under its host", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		path, err := w.WriteRecord(&goose.Record{
			URL:       "https://example.com/deeply/nested/story",
			Title:     "Nested",
			Content:   "Content",
			CrawledAt: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		})

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(baseDir, "example.com", "deeply", "nested", "story.md"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "title: Nested")
	})

	t.Run("rejects records without a URL", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewWriter(t.TempDir()).WriteRecord(&goose.Record{Title: "x"})

		assert.Equal(t, goose.EINVALID, goose.ErrorCode(err))
	})
}

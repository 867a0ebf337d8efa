// Package fs provides file-based storage for crawl resources and extracted
// articles.
package fs

import (
	"bytes"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/goose"
	"gopkg.in/yaml.v3"
)

// URLToPath converts an article URL to a relative file path rooted at the
// URL's host.
// Example: https://example.com/news/story → example.com/news/story.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", goose.Errorf(goose.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	host := u.Hostname()
	if host == "" {
		host = "local"
	}

	p := u.Path
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", goose.Errorf(goose.EINVALID, "path traversal in %q", rawURL)
		}
	}

	switch {
	case p == "" || p == "/":
		p = "index.md"
	case strings.HasSuffix(p, "/"):
		p = strings.TrimPrefix(p, "/") + "index.md"
	default:
		p = strings.TrimSuffix(strings.TrimPrefix(p, "/"), ".html") + ".md"
	}
	return path.Join(host, p), nil
}

// frontmatter is the YAML header written above each article.
type frontmatter struct {
	Source    string   `yaml:"source"`
	Title     string   `yaml:"title"`
	Authors   []string `yaml:"authors,omitempty"`
	Published string   `yaml:"published,omitempty"`
	Crawled   string   `yaml:"crawled"`
}

// FormatRecord formats a record as markdown with YAML frontmatter.
func FormatRecord(rec *goose.Record) (string, error) {
	fm := frontmatter{
		Source:  rec.URL,
		Title:   rec.Title,
		Authors: rec.Authors,
		Crawled: rec.CrawledAt.Format(time.DateOnly),
	}
	if rec.PublishDate != nil {
		fm.Published = rec.PublishDate.Format(time.DateOnly)
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	b.WriteString("---\n\n")
	b.WriteString(rec.Content)
	return b.String(), nil
}

// Writer writes records as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRecord writes a record to disk and returns the file path.
func (w *Writer) WriteRecord(rec *goose.Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	relPath, err := URLToPath(rec.URL)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	content, err := FormatRecord(rec)
	if err != nil {
		return "", err
	}
	return fullPath, os.WriteFile(fullPath, []byte(content), 0644)
}

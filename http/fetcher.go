// Package http provides an HTTP-based implementation of goose.Fetcher
// for pages that don't require JavaScript rendering.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/goose"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// fallbackEncoding is reported for text responses that carry no charset.
const fallbackEncoding = "ISO-8859-1"

// Ensure Fetcher implements goose.Fetcher at compile time.
var _ goose.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: goose.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// FetchResponse retrieves url and decodes the body. A charset sent by the
// server is honored; text responses without one are decoded as ISO-8859-1
// and reported as such, so callers can look for a charset declared by the
// document itself.
func (f *Fetcher) FetchResponse(ctx context.Context, url string) (*goose.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goose.Errorf(goose.EINVALID, "invalid URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, goose.Errorf(goose.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	encoding := responseEncoding(contentType)
	return &goose.Response{
		URL:         resp.Request.URL.String(),
		Text:        decode(body, encoding),
		Content:     body,
		Encoding:    encoding,
		ContentType: contentType,
	}, nil
}

// Fetch retrieves the decoded body of url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.FetchResponse(ctx, url)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// responseEncoding returns the charset named by contentType, the fallback
// for text types without one, or "" when the body is not text.
func responseEncoding(contentType string) string {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if cs := params["charset"]; cs != "" {
		return cs
	}
	if strings.HasPrefix(mediaType, "text/") {
		return fallbackEncoding
	}
	return ""
}

func decode(body []byte, encoding string) string {
	if encoding == "" || strings.EqualFold(encoding, "utf-8") {
		return string(body)
	}
	r, err := charset.NewReaderLabel(encoding, bytes.NewReader(body))
	if err != nil {
		return string(body)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return string(body)
	}
	return string(b)
}

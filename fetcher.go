package goose

import "context"

// Response is the result of fetching a URL.
type Response struct {
	// URL is the final URL after redirects.
	URL string

	// Text is the body decoded using Encoding.
	Text string

	// Content is the raw body.
	Content []byte

	// Encoding is the character set the server declared, or the transport
	// default when none was declared.
	Encoding string

	// ContentType is the Content-Type header as received, parameters
	// included.
	ContentType string
}

// Fetcher retrieves documents from the network. Timeouts and cancellation
// belong to the implementation and to the context.
type Fetcher interface {
	// FetchResponse retrieves the URL and returns the decoded and raw body.
	FetchResponse(ctx context.Context, url string) (*Response, error)

	// Fetch retrieves the URL and returns the decoded body.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

package mock

import (
	"context"

	"github.com/fwojciec/goose"
)

var _ goose.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of goose.Fetcher.
type Fetcher struct {
	FetchResponseFn func(ctx context.Context, url string) (*goose.Response, error)
	FetchFn         func(ctx context.Context, url string) (string, error)
	CloseFn         func() error
}

func (f *Fetcher) FetchResponse(ctx context.Context, url string) (*goose.Response, error) {
	return f.FetchResponseFn(ctx, url)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ goose.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of goose.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

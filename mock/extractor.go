package mock

import (
	"context"
	"net/url"

	"github.com/fwojciec/goose"
)

var _ goose.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor is a mock implementation of goose.ImageExtractor.
type ImageExtractor struct {
	BestImageFn func(ctx context.Context, a *goose.Article) (*goose.Image, bool)
}

func (e *ImageExtractor) BestImage(ctx context.Context, a *goose.Article) (*goose.Image, bool) {
	return e.BestImageFn(ctx, a)
}

var _ goose.SiteResolver = (*SiteResolver)(nil)

// SiteResolver is a mock implementation of goose.SiteResolver.
type SiteResolver struct {
	MatchFn   func(u *url.URL) bool
	ResolveFn func(html string, u *url.URL) (string, bool)
}

func (r *SiteResolver) Match(u *url.URL) bool {
	return r.MatchFn(u)
}

func (r *SiteResolver) Resolve(html string, u *url.URL) (string, bool) {
	return r.ResolveFn(html, u)
}

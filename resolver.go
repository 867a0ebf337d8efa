package goose

import "net/url"

// SiteResolver is a site-specific rule that points a fetch at the document
// that actually holds the story, such as the link behind a social post.
type SiteResolver interface {
	// Match reports whether the rule applies to u.
	Match(u *url.URL) bool

	// Resolve inspects the already fetched html of u and returns the URL
	// to fetch instead.
	Resolve(html string, u *url.URL) (target string, ok bool)
}

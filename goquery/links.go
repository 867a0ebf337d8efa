package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goose"
)

// Ensure the link extractors implement goose.FieldExtractor at compile time.
var (
	_ goose.FieldExtractor[[]string] = (*LinksExtractor)(nil)
	_ goose.FieldExtractor[[]string] = (*HTMLLinksExtractor)(nil)
	_ goose.FieldExtractor[string]   = (*ReadMoreExtractor)(nil)
)

// LinksExtractor collects the absolute URLs linked from the content region.
// Links are deduplicated and fragments are stripped.
type LinksExtractor struct{}

// Extract returns the links of the top node in document order.
func (e *LinksExtractor) Extract(a *goose.Article) ([]string, bool) {
	base, err := url.Parse(a.FinalURL)
	if err != nil {
		base = &url.URL{}
	}

	seen := make(map[string]bool)
	var links []string
	selection(a.TopNode).Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})
	return links, len(links) > 0
}

// HTMLLinksExtractor collects the markup of every anchor in the content
// region.
type HTMLLinksExtractor struct{}

// Extract returns the outer HTML of the top node's anchors.
func (e *HTMLLinksExtractor) Extract(a *goose.Article) ([]string, bool) {
	var links []string
	selection(a.TopNode).Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if s, err := goquery.OuterHtml(sel); err == nil {
			links = append(links, s)
		}
	})
	return links, len(links) > 0
}

var readMorePattern = regexp.MustCompile(`(?i)^(read|see) (the )?(more|full (story|article))|^continue reading|^full story`)

// ReadMoreExtractor finds a "read more" link pointing at the full story,
// as found on teaser pages.
type ReadMoreExtractor struct{}

// Extract returns the absolute URL of the first read-more anchor.
func (e *ReadMoreExtractor) Extract(a *goose.Article) (string, bool) {
	base, err := url.Parse(a.FinalURL)
	if err != nil {
		base = &url.URL{}
	}
	var found string
	selection(a.Doc).Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !readMorePattern.MatchString(innerTrim(sel.Text())) {
			return true
		}
		href, _ := sel.Attr("href")
		if isNonHTTPLink(href) {
			return true
		}
		found = resolveURL(base, href)
		return found == ""
	})
	return found, found != ""
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base URL after stripping fragment).
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == "" || result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

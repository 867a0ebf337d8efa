package crawl

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
)

// ResolveCandidate turns a CrawlCandidate into a ParseCandidate. A document
// wins over raw HTML, which wins over a URL alone. render serializes a
// supplied document so it can contribute to the link hash.
func ResolveCandidate(c goose.CrawlCandidate, render func(*html.Node) string) goose.ParseCandidate {
	pc := goose.ParseCandidate{URL: c.URL}
	switch {
	case c.Doc != nil:
		pc.Doc = c.Doc
		pc.LinkHash = LinkHash(c.URL, render(c.Doc))
	case c.RawHTML != "":
		pc.RawHTML = c.RawHTML
		pc.LinkHash = LinkHash(c.URL, c.RawHTML)
	case c.URL != "":
		pc.LinkHash = LinkHash(c.URL, "")
	}
	return pc
}

// LinkHash returns a stable identifier for a URL and its content.
func LinkHash(url, content string) string {
	d := xxhash.New()
	_, _ = d.WriteString(url)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(content)
	return fmt.Sprintf("%016x", d.Sum64())
}

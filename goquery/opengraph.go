package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goose"
)

// Ensure OpenGraphExtractor implements goose.FieldExtractor at compile time.
var _ goose.FieldExtractor[map[string]string] = (*OpenGraphExtractor)(nil)

// OpenGraphExtractor reads og: meta properties, keyed without the prefix.
type OpenGraphExtractor struct{}

// Extract returns the OpenGraph properties of the working document.
func (e *OpenGraphExtractor) Extract(a *goose.Article) (map[string]string, bool) {
	og := make(map[string]string)
	selection(a.Doc).Find("meta[property]").Each(func(_ int, s *goquery.Selection) {
		prop, _ := s.Attr("property")
		if !strings.HasPrefix(prop, "og:") {
			return
		}
		if content, ok := s.Attr("content"); ok {
			og[strings.TrimPrefix(prop, "og:")] = strings.TrimSpace(content)
		}
	})
	return og, len(og) > 0
}

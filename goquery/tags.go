package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goose"
)

// Ensure TagsExtractor implements goose.FieldExtractor at compile time.
var _ goose.FieldExtractor[[]string] = (*TagsExtractor)(nil)

var tagHrefPattern = regexp.MustCompile(`(?i)/(tag|tags|topic|topics|category)/`)

// TagsExtractor collects the article's tags from rel=tag anchors, falling
// back to anchors whose path looks like a tag listing.
type TagsExtractor struct{}

// Extract returns the distinct tag names in document order.
func (e *TagsExtractor) Extract(a *goose.Article) ([]string, bool) {
	doc := selection(a.Doc)
	anchors := doc.Find(`a[rel~="tag"]`)
	if anchors.Length() == 0 {
		anchors = doc.Find("a[href]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			href, _ := s.Attr("href")
			return tagHrefPattern.MatchString(href)
		})
	}

	seen := make(map[string]bool)
	var tags []string
	anchors.Each(func(_ int, s *goquery.Selection) {
		tag := innerTrim(s.Text())
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	})
	return tags, len(tags) > 0
}

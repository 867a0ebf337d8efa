package goquery

import (
	"strings"

	"github.com/fwojciec/goose"
)

// Ensure PublishDateExtractor implements goose.FieldExtractor at compile time.
var _ goose.FieldExtractor[string] = (*PublishDateExtractor)(nil)

// publishDatePatterns locate publication dates, most reliable first.
var publishDatePatterns = []struct {
	attr, value, content string
}{
	{"property", "rnews:datePublished", "content"},
	{"property", "article:published_time", "content"},
	{"name", "OriginalPublicationDate", "content"},
	{"itemprop", "datePublished", "datetime"},
	{"property", "og:published_time", "content"},
	{"name", "article_date_original", "content"},
	{"name", "publication_date", "content"},
	{"name", "sailthru.date", "content"},
	{"name", "PublishDate", "content"},
	{"pubdate", "pubdate", "datetime"},
	{"name", "publish_date", "content"},
}

// PublishDateExtractor finds the raw publication date string. Parsing is
// left to the pipeline.
type PublishDateExtractor struct {
	parser *Parser
}

// NewPublishDateExtractor creates a new PublishDateExtractor.
func NewPublishDateExtractor() *PublishDateExtractor {
	return &PublishDateExtractor{parser: NewParser()}
}

// Extract returns the first publication date found in the meta patterns,
// the schema object, or a time element, in that order.
func (e *PublishDateExtractor) Extract(a *goose.Article) (string, bool) {
	for _, p := range publishDatePatterns {
		for _, n := range e.parser.ByTagAttr(a.Doc, "", p.attr, p.value) {
			for _, key := range []string{p.content, "content", "datetime"} {
				if v, ok := attrValue(n, key); ok && strings.TrimSpace(v) != "" {
					return strings.TrimSpace(v), true
				}
			}
		}
	}
	if v, ok := a.Schema["datePublished"].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}
	if v, ok := selection(a.Doc).Find("time[datetime]").First().Attr("datetime"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}
	return "", false
}

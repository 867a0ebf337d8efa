package goquery

import (
	"encoding/json"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
)

// Ensure SchemaExtractor implements goose.FieldExtractor at compile time.
var _ goose.FieldExtractor[map[string]any] = (*SchemaExtractor)(nil)

// articleSchemaTypes are the schema.org types describing a story.
var articleSchemaTypes = map[string]bool{
	"ReportageNewsArticle": true,
	"NewsArticle":          true,
	"Article":              true,
	"BlogPosting":          true,
}

// SchemaExtractor finds the schema.org object describing the article, first
// in JSON-LD scripts and then in microdata.
type SchemaExtractor struct{}

// Extract returns the article's schema.org object.
func (e *SchemaExtractor) Extract(a *goose.Article) (map[string]any, bool) {
	var found map[string]any
	selection(a.Doc).Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var v any
		if err := json.Unmarshal([]byte(s.Text()), &v); err != nil {
			return true
		}
		found = findArticleObject(v)
		return found == nil
	})
	if found != nil {
		return found, true
	}

	selection(a.Doc).Find("[itemscope][itemtype]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		n := s.Get(0)
		if !articleSchemaTypes[itemType(n)] {
			return true
		}
		found = itemObject(n)
		return false
	})
	return found, found != nil
}

func findArticleObject(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		if isArticleType(t["@type"]) {
			return t
		}
		if graph, ok := t["@graph"]; ok {
			return findArticleObject(graph)
		}
	case []any:
		for _, item := range t {
			if obj := findArticleObject(item); obj != nil {
				return obj
			}
		}
	}
	return nil
}

func isArticleType(v any) bool {
	switch t := v.(type) {
	case string:
		return articleSchemaTypes[t]
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && articleSchemaTypes[s] {
				return true
			}
		}
	}
	return false
}

// itemType returns the last path segment of an itemtype URL, such as
// "NewsArticle" for "https://schema.org/NewsArticle".
func itemType(n *html.Node) string {
	v, ok := attrValue(n, "itemtype")
	if !ok {
		return ""
	}
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return ""
	}
	return path.Base(strings.TrimRight(fields[0], "/"))
}

// itemObject converts a microdata item to a JSON-LD shaped object. Nested
// items become nested objects carrying their own @type.
func itemObject(n *html.Node) map[string]any {
	obj := map[string]any{"@type": itemType(n)}
	walkItemProps(n, func(name string, prop *html.Node) {
		if _, exists := obj[name]; exists {
			return
		}
		if _, scoped := attrValue(prop, "itemscope"); scoped {
			obj[name] = itemObject(prop)
			return
		}
		obj[name] = itemValue(prop)
	})
	return obj
}

// walkItemProps calls fn for every property of the item rooted at n,
// without descending into nested items.
func walkItemProps(n *html.Node, fn func(name string, prop *html.Node)) {
	selection(n).Find("[itemprop]").Each(func(_ int, prop *goquery.Selection) {
		if prop.ParentsFilteredUntilNodes("[itemscope]", n).Length() > 0 {
			return
		}
		for _, name := range strings.Fields(prop.AttrOr("itemprop", "")) {
			fn(name, prop.Get(0))
		}
	})
}

// itemValue returns the value of a microdata property element.
func itemValue(n *html.Node) string {
	var key string
	switch n.Data {
	case "meta":
		key = "content"
	case "a", "link", "area":
		key = "href"
	case "img", "audio", "video", "source", "iframe", "embed", "track":
		key = "src"
	case "object":
		key = "data"
	case "time":
		key = "datetime"
	case "data", "meter":
		key = "value"
	}
	if key != "" {
		if v, ok := attrValue(n, key); ok {
			return strings.TrimSpace(v)
		}
	}
	return innerTrim(textOf(n))
}

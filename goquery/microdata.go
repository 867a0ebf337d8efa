package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
)

// Ensure MicrodataExtractor implements goose.FieldExtractor at compile time.
var _ goose.FieldExtractor[map[string][]map[string]string] = (*MicrodataExtractor)(nil)

// MicrodataExtractor collects microdata items into buckets keyed by their
// lowercased type. hCard entries are collected under "hcard".
type MicrodataExtractor struct{}

// Extract returns the microdata items of the working document.
func (e *MicrodataExtractor) Extract(a *goose.Article) (map[string][]map[string]string, bool) {
	items := make(map[string][]map[string]string)
	doc := selection(a.Doc)

	doc.Find("[itemscope]").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		typ := strings.ToLower(itemType(n))
		if typ == "" {
			return
		}
		props := make(map[string]string)
		walkItemProps(n, func(name string, prop *html.Node) {
			if _, exists := props[name]; exists {
				return
			}
			props[name] = itemPropText(prop)
		})
		items[typ] = append(items[typ], props)
	})

	for _, card := range hCards(doc) {
		items["hcard"] = append(items["hcard"], card)
	}
	return items, len(items) > 0
}

// itemPropText flattens a property to text. Nested items are represented
// by their name when they have one.
func itemPropText(n *html.Node) string {
	if _, scoped := attrValue(n, "itemscope"); scoped {
		var name string
		walkItemProps(n, func(prop string, c *html.Node) {
			if prop == "name" && name == "" {
				name = itemValue(c)
			}
		})
		if name != "" {
			return name
		}
		return innerTrim(textOf(n))
	}
	return itemValue(n)
}

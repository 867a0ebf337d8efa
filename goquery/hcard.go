package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goose"
)

// Ensure HCardExtractor implements goose.FieldExtractor at compile time.
var _ goose.FieldExtractor[[]map[string]string] = (*HCardExtractor)(nil)

// HCardExtractor reads hCard microformats.
type HCardExtractor struct{}

// Extract returns one map per .vcard element.
func (e *HCardExtractor) Extract(a *goose.Article) ([]map[string]string, bool) {
	cards := hCards(selection(a.Doc))
	return cards, len(cards) > 0
}

func hCards(doc *goquery.Selection) []map[string]string {
	var cards []map[string]string
	doc.Find(".vcard").Each(func(_ int, s *goquery.Selection) {
		card := make(map[string]string)
		set := func(key, value string) {
			if value = innerTrim(value); value != "" {
				card[key] = value
			}
		}
		set("fn", s.Find(".fn").First().Text())
		if n := s.Find(".n").First(); n.Length() > 0 {
			set("n", n.Text())
		} else {
			set("n", card["fn"])
		}
		set("org", s.Find(".org").First().Text())
		set("title", s.Find(".title").First().Text())
		if href, ok := s.Find("a.url").First().Attr("href"); ok {
			set("url", href)
		}
		if email := s.Find(".email").First(); email.Length() > 0 {
			href, _ := email.Attr("href")
			if strings.HasPrefix(strings.ToLower(href), "mailto:") {
				set("email", href[len("mailto:"):])
			} else {
				set("email", email.Text())
			}
		}
		if len(card) > 0 {
			cards = append(cards, card)
		}
	})
	return cards
}

package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goose"
)

// Ensure MetasExtractor implements goose.FieldExtractor at compile time.
var _ goose.FieldExtractor[goose.Metas] = (*MetasExtractor)(nil)

var langPattern = regexp.MustCompile(`^[A-Za-z]{2}$`)

// MetasExtractor reads the document's meta and link tags.
type MetasExtractor struct{}

// Extract returns the meta fields of the working document.
func (e *MetasExtractor) Extract(a *goose.Article) (goose.Metas, bool) {
	doc := selection(a.Doc)
	m := goose.Metas{
		Lang:        metaLang(doc),
		Favicon:     favicon(doc),
		Description: metaContent(doc, `meta[name="description" i]`, `meta[property="og:description"]`),
		Keywords:    metaContent(doc, `meta[name="keywords" i]`),
		Encoding:    metaEncoding(doc),
		MetaTags:    metaTags(doc),
	}

	base, _ := url.Parse(a.FinalURL)
	if href, ok := doc.Find(`link[rel="canonical" i]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		m.Canonical = resolveAgainst(base, strings.TrimSpace(href))
	} else if og := metaContent(doc, `meta[property="og:url"]`); og != "" {
		m.Canonical = resolveAgainst(base, og)
	}

	domainSource := m.Canonical
	if domainSource == "" {
		domainSource = a.FinalURL
	}
	if u, err := url.Parse(domainSource); err == nil {
		m.Domain = u.Hostname()
	}

	found := m.Lang != "" || m.Favicon != "" || m.Description != "" || m.Keywords != "" ||
		m.Encoding != "" || m.Canonical != "" || len(m.MetaTags) > 0
	return m, found
}

// metaContent returns the trimmed content of the first selector that yields
// a non-empty value.
func metaContent(doc *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if v, ok := doc.Find(sel).First().Attr("content"); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

func metaLang(doc *goquery.Selection) string {
	lang, _ := doc.Find("html").First().Attr("lang")
	if lang == "" {
		lang = metaContent(doc, `meta[http-equiv="content-language" i]`)
	}
	if len(lang) < 2 {
		return ""
	}
	lang = lang[:2]
	if !langPattern.MatchString(lang) {
		return ""
	}
	return strings.ToLower(lang)
}

func favicon(doc *goquery.Selection) string {
	var href string
	doc.Find("link[rel]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rel, _ := s.Attr("rel")
		for _, r := range strings.Fields(strings.ToLower(rel)) {
			if r == "icon" {
				href, _ = s.Attr("href")
				return false
			}
		}
		return true
	})
	return strings.TrimSpace(href)
}

func metaEncoding(doc *goquery.Selection) string {
	if v, ok := doc.Find("meta[charset]").First().Attr("charset"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	content := metaContent(doc, `meta[http-equiv="content-type" i]`)
	if i := strings.Index(strings.ToLower(content), "charset="); i >= 0 {
		return strings.TrimSpace(content[i+len("charset="):])
	}
	return ""
}

// metaTags maps every meta name, property, itemprop or http-equiv to its
// content. Keys are lowercased and the first occurrence wins.
func metaTags(doc *goquery.Selection) map[string]string {
	tags := make(map[string]string)
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content, ok := s.Attr("content")
		if !ok {
			return
		}
		for _, attr := range []string{"name", "property", "itemprop", "http-equiv"} {
			key, ok := s.Attr(attr)
			key = strings.ToLower(strings.TrimSpace(key))
			if !ok || key == "" {
				continue
			}
			if _, exists := tags[key]; !exists {
				tags[key] = strings.TrimSpace(content)
			}
			return
		}
	})
	return tags
}

// resolveAgainst resolves href against base, returning href unchanged when
// either cannot be parsed.
func resolveAgainst(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil || base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

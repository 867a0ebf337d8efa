package goquery

import (
	"strings"

	"github.com/fwojciec/goose"
)

// Ensure TitleExtractor implements goose.FieldExtractor at compile time.
var _ goose.FieldExtractor[string] = (*TitleExtractor)(nil)

var titleSplitters = map[string]bool{"|": true, "-": true, "»": true, ":": true, "–": true, "—": true}

// TitleExtractor picks the article title from OpenGraph, schema.org, the
// headline meta tag or the title element, in that order, and strips the
// site name from it.
type TitleExtractor struct{}

// Extract returns the cleaned title.
func (e *TitleExtractor) Extract(a *goose.Article) (string, bool) {
	doc := selection(a.Doc)
	var title string
	if v := a.OpenGraph["title"]; v != "" {
		title = v
	} else if v, ok := a.Schema["headline"].(string); ok && v != "" {
		title = v
	} else if v := metaContent(doc, `meta[name="headline" i]`); v != "" {
		title = v
	} else {
		title = doc.Find("title").First().Text()
	}
	title = cleanTitle(a, innerTrim(title))
	return title, title != ""
}

func cleanTitle(a *goose.Article, title string) string {
	if site := a.OpenGraph["site_name"]; site != "" {
		title = strings.ReplaceAll(title, site, "")
	} else if publisher, ok := a.Schema["publisher"].(map[string]any); ok {
		if name, ok := publisher["name"].(string); ok && name != "" {
			title = strings.ReplaceAll(title, name, "")
		}
	}
	if a.Domain != "" {
		title = replaceFold(title, a.Domain)
	}

	words := strings.Fields(title)
	if len(words) > 0 && titleSplitters[words[0]] {
		words = words[1:]
	}
	if len(words) > 0 && titleSplitters[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// replaceFold removes every case-insensitive occurrence of old from s.
func replaceFold(s, old string) string {
	lower, target := strings.ToLower(s), strings.ToLower(old)
	if target == "" || len(lower) != len(s) || len(target) != len(old) {
		return s
	}
	var b strings.Builder
	for {
		i := strings.Index(lower, target)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		s, lower = s[i+len(old):], lower[i+len(target):]
	}
}

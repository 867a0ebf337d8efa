package goquery

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
)

// Ensure AuthorsExtractor implements goose.FieldExtractor at compile time.
var _ goose.FieldExtractor[[]string] = (*AuthorsExtractor)(nil)

var (
	// authorReplacer strips a leading "by", anything after a pipe or
	// slash, and "Label:" tokens.
	authorReplacer = regexp.MustCompile(`(?i)(^by\s+)|([|/].+)|(\S+:)`)
	authorSplitter = regexp.MustCompile(`(?i)\band\b|,`)
	badAuthor      = regexp.MustCompile(`[0-9]`)
)

// AuthorsExtractor derives the article's authors from schema.org data,
// itemprop markup, configured author patterns, microdata and the author
// meta tag.
type AuthorsExtractor struct {
	patterns []goose.KnownAuthorPattern
	parser   *Parser
}

// NewAuthorsExtractor creates an AuthorsExtractor using the known author
// patterns from cfg.
func NewAuthorsExtractor(cfg *goose.Config) *AuthorsExtractor {
	return &AuthorsExtractor{
		patterns: cfg.KnownAuthorPatterns,
		parser:   NewParser(),
	}
}

// Extract returns the sorted, distinct author names. When the schema object
// names at least one author, no other source is consulted.
func (e *AuthorsExtractor) Extract(a *goose.Article) ([]string, bool) {
	candidates, ok := schemaAuthors(a.Schema)
	if !ok {
		candidates = e.gather(a)
	}
	authors := normalizeAuthors(candidates)
	return authors, len(authors) > 0
}

// schemaAuthors returns the author entries of the schema object. Strings
// are used as they are and objects only when they describe a Person. It
// reports false when no entry names an author.
func schemaAuthors(schema map[string]any) ([]string, bool) {
	raw, ok := schema["author"]
	if !ok || raw == nil {
		return nil, false
	}
	entries, isList := raw.([]any)
	if !isList {
		entries = []any{raw}
	}
	if len(entries) == 0 {
		return nil, false
	}

	var authors []string
	for _, entry := range entries {
		switch v := entry.(type) {
		case string:
			authors = append(authors, v)
		case map[string]any:
			if typ, _ := v["@type"].(string); typ != "Person" {
				continue
			}
			name, _ := v["name"].(string)
			authors = append(authors, name)
		}
	}
	return authors, len(authors) > 0
}

func (e *AuthorsExtractor) gather(a *goose.Article) []string {
	var candidates []string

	for _, n := range e.parser.ByTagAttr(a.Doc, "", "itemprop", "^author$") {
		if names := e.parser.ByTagAttr(n, "", "itemprop", "^name$"); len(names) > 0 {
			candidates = append(candidates, e.parser.Text(names[0]))
		} else {
			candidates = append(candidates, e.parser.Text(n))
		}
	}

	for _, p := range e.patterns {
		var nodes []*html.Node
		if p.XPath != "" {
			nodes = e.parser.XPath(a.Doc, p.XPath)
		} else {
			nodes = e.parser.ByTagAttr(a.Doc, "", p.Attr, p.Value)
		}
		if len(nodes) == 0 {
			continue
		}
		if p.Content == "" {
			candidates = append(candidates, e.parser.Text(nodes[0]))
		} else if v, ok := e.parser.Attr(nodes[0], p.Content); ok {
			candidates = append(candidates, v)
		}
		break
	}

	for _, bucket := range []struct{ name, field string }{
		{"newsarticle", "author"},
		{"person", "name"},
		{"hcard", "n"},
	} {
		for _, item := range a.Microdata[bucket.name] {
			if v, ok := item[bucket.field]; ok {
				candidates = append(candidates, v)
			}
		}
	}

	if v, ok := a.MetaTags["author"]; ok {
		candidates = append(candidates, v)
	}
	return candidates
}

// normalizeAuthors splits each candidate into names, cleans them, drops
// names containing digits, and returns the names sorted, ignoring case
// when deduplicating.
func normalizeAuthors(candidates []string) []string {
	seen := make(map[string]bool)
	var authors []string
	for _, c := range candidates {
		c = innerTrim(c)
		if c == "" {
			continue
		}
		for _, part := range authorSplitter.Split(c, -1) {
			part = strings.TrimSpace(authorReplacer.ReplaceAllString(part, ""))
			key := strings.ToLower(part)
			if part == "" || badAuthor.MatchString(part) || seen[key] {
				continue
			}
			seen[key] = true
			authors = append(authors, part)
		}
	}
	sort.Strings(authors)
	return authors
}

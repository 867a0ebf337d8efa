package goquery_test

import (
	"testing"

	"github.com/fwojciec/goose"
	"github.com/fwojciec/goose/goquery"
	"github.com/stretchr/testify/assert"
)

const emptyPage = `<html><head></head><body></body></html>`

func TestAuthorsExtractor_Extract(t *testing.T) {
	t.Parallel()

	extract := func(a *goose.Article) ([]string, bool) {
		return goquery.NewAuthorsExtractor(goose.NewConfig()).Extract(a)
	}

	t.Run("uses schema authors exclusively", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", `<html><head><meta name="author" content="Someone Else"></head><body></body></html>`)
		a.MetaTags["author"] = "Someone Else"
		a.Schema = map[string]any{
			"author": []any{
				map[string]any{"@type": "Person", "name": "Jane Doe"},
				"John Smith",
			},
		}

		authors, ok := extract(a)

		assert.True(t, ok)
		assert.Equal(t, []string{"Jane Doe", "John Smith"}, authors)
	})

	t.Run("falls back to other sources when no schema author is a person", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", emptyPage)
		a.MetaTags["author"] = "Jane Doe"
		a.Schema = map[string]any{
			"author": map[string]any{"@type": "Organization", "name": "Newsroom"},
		}

		authors, ok := extract(a)

		assert.True(t, ok)
		assert.Equal(t, []string{"Jane Doe"}, authors)
	})

	t.Run("finds nothing when the only schema author is an organization", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", emptyPage)
		a.Schema = map[string]any{
			"author": map[string]any{"@type": "Organization", "name": "Newsroom"},
		}

		authors, ok := extract(a)

		assert.False(t, ok)
		assert.Empty(t, authors)
	})

	t.Run("splits and cleans bylines", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", emptyPage)
		a.MetaTags["author"] = "By John Smith and Jane Doe, Source: AP"

		authors, ok := extract(a)

		assert.True(t, ok)
		assert.Equal(t, []string{"AP", "Jane Doe", "John Smith"}, authors)
	})

	t.Run("excludes candidates containing digits", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", emptyPage)
		a.MetaTags["author"] = "Team 2024, Jane Doe"

		authors, _ := extract(a)

		assert.Equal(t, []string{"Jane Doe"}, authors)
	})

	t.Run("strips trailing segments after a pipe", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", emptyPage)
		a.MetaTags["author"] = "Jane Doe | Staff Writer"

		authors, _ := extract(a)

		assert.Equal(t, []string{"Jane Doe"}, authors)
	})

	t.Run("prefers the name inside itemprop author", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", `<html><body>
<div itemprop="author"><span itemprop="name">Ann Lee</span> Staff</div>
</body></html>`)

		authors, _ := extract(a)

		assert.Equal(t, []string{"Ann Lee"}, authors)
	})

	t.Run("uses only the first matching known pattern", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", `<html><body>
<a rel="author" href="/bob">Bob Ray</a>
<span class="byline">By Carl Poe</span>
</body></html>`)

		authors, _ := extract(a)

		assert.Equal(t, []string{"Bob Ray"}, authors)
	})

	t.Run("reads the content attribute of xpath patterns", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", `<html><head>
<meta property="article:author" content="Dee Fox">
</head><body></body></html>`)

		authors, _ := extract(a)

		assert.Equal(t, []string{"Dee Fox"}, authors)
	})

	t.Run("gathers microdata buckets", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", emptyPage)
		a.Microdata = map[string][]map[string]string{
			"newsarticle": {{"author": "Eve Ash"}},
			"person":      {{"name": "Finn Oak"}},
			"hcard":       {{"n": "Gus Elm"}},
		}

		authors, _ := extract(a)

		assert.Equal(t, []string{"Eve Ash", "Finn Oak", "Gus Elm"}, authors)
	})

	t.Run("deduplicates ignoring case", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", emptyPage)
		a.Microdata = map[string][]map[string]string{
			"person": {{"name": "Jane Doe"}},
		}
		a.MetaTags["author"] = "JANE DOE"

		authors, _ := extract(a)

		assert.Equal(t, []string{"Jane Doe"}, authors)
	})

	t.Run("reports nothing when no source names an author", func(t *testing.T) {
		t.Parallel()

		a := newArticle(t, "https://example.com/a", emptyPage)

		authors, ok := extract(a)

		assert.False(t, ok)
		assert.Empty(t, authors)
	})
}

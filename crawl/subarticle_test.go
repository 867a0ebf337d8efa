package crawl_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/goose"
	"github.com/fwojciec/goose/crawl"
	"github.com/fwojciec/goose/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const liveBlogPage = `<html><head><title>Live updates</title></head><body>
<article id="first">
<p class="byline">By Ann Lee</p>
<p>The council met on Monday and it was agreed that the bridge would be closed for the winter.</p>
</article>
<article id="second">
<p class="byline">By Bob Ray</p>
<p>It was the best of times and it was the worst of times for all of us who live in the valley.</p>
<p>We had everything before us and we had nothing before us, and the river was rising again.</p>
<p>There were those who said that the flood would never reach the town, but they were wrong.</p>
</article>
</body></html>`

func TestCrawler_SubArticles(t *testing.T) {
	t.Parallel()

	t.Run("crawls and merges sub-articles", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(t, nil)

		a, err := c.Crawl(context.Background(), goose.CrawlCandidate{
			URL:     "https://example.com/live",
			RawHTML: liveBlogPage,
		}, true)

		require.NoError(t, err)
		require.Len(t, a.SubArticles, 2)
		first, second := a.SubArticles[0], a.SubArticles[1]
		require.NotNil(t, first.Crawled)
		require.NotNil(t, second.Crawled)
		assert.GreaterOrEqual(t, len(first.CleanedText()), len(second.CleanedText()))
		assert.Contains(t, first.CleanedText(), "river was rising")
		assert.Equal(t, []string{"Bob Ray"}, first.Authors())
		assert.Equal(t, []string{"Ann Lee"}, second.Authors())
		assert.Equal(t, "https://example.com/live", first.Crawled.FinalURL)
		assert.Equal(t, first.CleanedText(), a.CleanedText)
		assert.Equal(t, []string{"Bob Ray"}, a.Authors)
		assert.Equal(t, "Live updates", a.Title)
	})

	t.Run("records sub-articles without crawling them", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(t, nil)

		a, err := c.Crawl(context.Background(), goose.CrawlCandidate{RawHTML: liveBlogPage}, false)

		require.NoError(t, err)
		require.Len(t, a.SubArticles, 2)
		for _, s := range a.SubArticles {
			assert.Nil(t, s.Crawled)
			assert.True(t, strings.HasPrefix(s.OuterHTML, "<article"))
		}
		assert.Empty(t, a.Authors)
	})

	t.Run("crawls sub-articles concurrently with the same result", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(t, nil)
		c.Config.SubArticleConcurrency = 4

		a, err := c.Crawl(context.Background(), goose.CrawlCandidate{RawHTML: liveBlogPage}, true)

		require.NoError(t, err)
		require.Len(t, a.SubArticles, 2)
		assert.Equal(t, []string{"Bob Ray"}, a.SubArticles[0].Authors())
		assert.Equal(t, []string{"Ann Lee"}, a.SubArticles[1].Authors())
		assert.Equal(t, []string{"Bob Ray"}, a.Authors)
	})

	brokenPage := strings.Replace(liveBlogPage, `id="first"`, `id="broken"`, 1)

	t.Run("skips failing sub-articles by default", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(t, nil)
		c.Parser = failingParser{c.Parser.(*goquery.Parser)}

		a, err := c.Crawl(context.Background(), goose.CrawlCandidate{RawHTML: brokenPage}, true)

		require.NoError(t, err)
		require.Len(t, a.SubArticles, 1)
		assert.Equal(t, []string{"Bob Ray"}, a.SubArticles[0].Authors())
	})

	t.Run("aborts on a failing sub-article when configured", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(t, nil)
		c.Config.SubArticleFailurePolicy = goose.SubArticleAbort
		c.Parser = failingParser{c.Parser.(*goquery.Parser)}

		a, err := c.Crawl(context.Background(), goose.CrawlCandidate{RawHTML: brokenPage}, true)

		require.Error(t, err)
		assert.Equal(t, goose.ENOCONTENT, goose.ErrorCode(err))
		assert.NotNil(t, a)
	})
}

func TestMergeSubArticles(t *testing.T) {
	t.Parallel()

	sub := func(text string, authors ...string) *goose.SubArticle {
		return &goose.SubArticle{Crawled: &goose.Article{CleanedText: text, Authors: authors}}
	}

	t.Run("orders by text length and promotes the longest", func(t *testing.T) {
		t.Parallel()

		short := sub(strings.Repeat("a", 50), "Ann Lee")
		long := sub(strings.Repeat("b", 120), "Bob Ray")
		a := &goose.Article{SubArticles: []*goose.SubArticle{short, long}}

		crawl.MergeSubArticles(a)

		assert.Equal(t, []*goose.SubArticle{long, short}, a.SubArticles)
		assert.Equal(t, strings.Repeat("b", 120), a.CleanedText)
		assert.Equal(t, []string{"Bob Ray"}, a.Authors)
	})

	t.Run("keeps the parent's own text and authors", func(t *testing.T) {
		t.Parallel()

		a := &goose.Article{
			CleanedText: "parent text",
			Authors:     []string{"Clark Kent"},
			SubArticles: []*goose.SubArticle{sub("longer sub-article text", "Bob Ray")},
		}

		crawl.MergeSubArticles(a)

		assert.Equal(t, "parent text", a.CleanedText)
		assert.Equal(t, []string{"Clark Kent"}, a.Authors)
	})

	t.Run("keeps discovery order for equal lengths", func(t *testing.T) {
		t.Parallel()

		x, y := sub("same"), sub("also")
		a := &goose.Article{SubArticles: []*goose.SubArticle{x, y}}

		crawl.MergeSubArticles(a)

		assert.Same(t, x, a.SubArticles[0])
		assert.Same(t, y, a.SubArticles[1])
	})
}

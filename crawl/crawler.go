// Package crawl runs the article extraction pipeline. It resolves what to
// crawl, fetches and parses the document, runs the field extractors in a
// fixed order, selects the content region and merges sub-articles.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
)

// Crawler extracts articles. Its collaborators are stateless or safe for
// concurrent use, so one Crawler may run many crawls at once; every crawl
// owns its own Article.
type Crawler struct {
	Config      *goose.Config
	Fetcher     goose.Fetcher
	Parser      goose.Parser
	Resolvers   []goose.SiteResolver
	Cleaner     goose.DocumentCleaner
	Scorer      goose.ContentScorer
	Formatter   goose.OutputFormatter
	Extractors  goose.Extractors
	Resources   goose.ResourceStore
	RateLimiter goose.DomainLimiter
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Crawl extracts an article from the candidate. When crawlSub is set,
// known article wrappers are scored, the content region is post-cleaned and
// sub-articles are crawled and merged.
//
// Malformed input never fails a crawl; affected fields are left empty. The
// returned error is ENOCONTENT when no HTML could be obtained, or the
// sub-article error under the abort policy. An Article is returned in
// every case.
func (c *Crawler) Crawl(ctx context.Context, cand goose.CrawlCandidate, crawlSub bool) (*goose.Article, error) {
	a := goose.NewArticle()
	logger := c.logger()

	pc := ResolveCandidate(cand, c.Parser.OuterHTML)
	a.LinkHash = pc.LinkHash

	released := false
	release := func() {
		if !released {
			released = true
			c.release(a.LinkHash)
		}
	}
	defer release()

	rawHTML, finalURL := pc.RawHTML, pc.URL
	if pc.Doc == nil && rawHTML == "" && pc.URL != "" {
		text, fetchedURL, err := c.fetchHTML(ctx, pc.URL)
		if err != nil {
			logger.Warn("fetch failed", "url", pc.URL, "err", err)
			if ctx.Err() != nil {
				return a, ctx.Err()
			}
		}
		rawHTML = text
		if fetchedURL != "" {
			finalURL = fetchedURL
		}
	}
	if pc.Doc == nil && strings.TrimSpace(rawHTML) == "" {
		return a, goose.Errorf(goose.ENOCONTENT, "no HTML obtained for %q", pc.URL)
	}

	doc := pc.Doc
	if doc == nil {
		var err error
		if doc, err = c.Parser.Parse(rawHTML); err != nil {
			logger.Warn("parse failed", "url", finalURL, "err", err)
			return a, goose.Errorf(goose.ENOCONTENT, "no document parsed for %q", pc.URL)
		}
	} else {
		rawHTML = c.Parser.OuterHTML(doc)
	}
	a.FinalURL = finalURL
	a.SiteDomain = hostname(finalURL)
	a.RawHTML = rawHTML
	a.Doc = doc
	a.RawDoc = a.Nodes.Clone(doc)

	if og, ok := extract(c.Extractors.OpenGraph, a); ok {
		a.OpenGraph = og
	}
	if schema, ok := extract(c.Extractors.Schema, a); ok {
		a.Schema = schema
	}

	if a.FinalURL == "" {
		if u := a.OpenGraph["url"]; u != "" {
			a.FinalURL = u
		} else if u, ok := a.Schema["url"].(string); ok && u != "" {
			a.FinalURL = u
		}
		a.SiteDomain = hostname(a.FinalURL)
	}

	if m, ok := extract(c.Extractors.Metas, a); ok {
		a.MetaLang = m.Lang
		a.MetaFavicon = m.Favicon
		a.MetaDescription = m.Description
		a.MetaKeywords = m.Keywords
		a.MetaEncoding = m.Encoding
		a.CanonicalLink = m.Canonical
		a.Domain = m.Domain
		if m.MetaTags != nil {
			a.MetaTags = m.MetaTags
		}
	}

	if date, ok := extract(c.Extractors.PublishDate, a); ok {
		a.PublishDate = date
		if t, err := ParsePublishDate(date); err != nil {
			logger.Warn("publish date ignored", "url", a.FinalURL, "err", err)
		} else {
			a.PublishDatetimeUTC = &t
		}
	}

	if tags, ok := extract(c.Extractors.Tags, a); ok {
		a.Tags = tags
	}

	a.JSONLD = c.jsonLD(a)

	c.detachSubArticles(a)
	a.Doc = c.Cleaner.RemoveNestedArticleWrappers(a.Doc)

	if items, ok := extract(c.Extractors.Microdata, a); ok {
		a.Microdata = items
	}
	if authors, ok := extract(c.Extractors.Authors, a); ok {
		a.Authors = authors
	}
	if title, ok := extract(c.Extractors.Title, a); ok {
		a.Title = title
	}
	if cards, ok := extract(c.Extractors.HCards, a); ok {
		a.HCards = cards
	}
	if href, ok := extract(c.Extractors.ReadMore, a); ok {
		a.ReadMoreURL = href
	}

	c.selectContent(a, crawlSub)

	if a.TopNode != nil {
		if links, ok := extract(c.Extractors.Links, a); ok {
			a.Links = links
		}
		if links, ok := extract(c.Extractors.HTMLLinks, a); ok {
			a.HTMLLinks = links
		}
		if tweets, ok := extract(c.Extractors.Tweets, a); ok {
			a.Tweets = tweets
		}
		if videos, ok := extract(c.Extractors.Videos, a); ok {
			a.Movies = videos
		}
		if c.config().EnableImageFetching && c.Extractors.Image != nil {
			if img, ok := c.Extractors.Image.BestImage(ctx, a); ok {
				a.TopImage = img
			}
		}
		if crawlSub {
			a.TopNode = c.Scorer.PostCleanup(a.TopNode)
		}
		text, err := c.Formatter.RenderText(a.TopNode, crawlSub)
		if err != nil {
			logger.Warn("render failed", "url", a.FinalURL, "err", err)
		} else {
			a.CleanedText = text
		}
	}

	release()

	if crawlSub && len(a.SubArticles) > 1 {
		if err := c.crawlSubArticles(ctx, a); err != nil {
			return a, err
		}
		MergeSubArticles(a)
	}

	logger.Debug("crawled",
		"url", a.FinalURL,
		"bytes", len(a.RawHTML),
		"text", len(a.CleanedText),
		"subArticles", len(a.SubArticles),
	)
	return a, nil
}

// jsonLD parses the first JSON-LD script of the working document.
func (c *Crawler) jsonLD(a *goose.Article) any {
	scripts := c.Parser.ByTagAttr(a.Doc, "script", "type", `^application/ld\+json$`)
	if len(scripts) == 0 {
		return nil
	}
	v, err := ParseJSONLD(c.Parser.Text(scripts[0]))
	if err != nil {
		c.logger().Warn("json-ld ignored", "url", a.FinalURL, "err", err)
		return nil
	}
	return v
}

// detachSubArticles records the sub-articles found by the cleaner and
// removes them from the working document, unless one is the document
// itself.
func (c *Crawler) detachSubArticles(a *goose.Article) {
	for _, n := range c.Cleaner.DiscoverSubArticles(a.Doc) {
		a.SubArticles = append(a.SubArticles, &goose.SubArticle{
			NodeID:    a.Nodes.ID(n),
			Node:      n,
			OuterHTML: c.Parser.OuterHTML(n),
		})
		if !a.Nodes.Same(n, a.Doc) {
			c.Parser.Remove(n)
		}
	}
}

// selectContent finds the top node. Known article wrappers are scored when
// crawlSub is set and any exist; otherwise the whole document is. When that
// fails the original document is scored, and as a last resort the document
// itself becomes the top node.
func (c *Crawler) selectContent(a *goose.Article, crawlSub bool) {
	original := a.Doc

	var candidates []*html.Node
	if crawlSub {
		candidates = c.Scorer.KnownArticleTagNodes(a.Doc)
	}
	if len(candidates) == 0 {
		candidates = []*html.Node{a.Doc}
	}
	if len(candidates) > 1 {
		for i, n := range candidates {
			candidates[i] = a.Nodes.Clone(n)
		}
	}
	for i, n := range candidates {
		candidates[i] = c.Cleaner.Clean(n)
	}

	if top := c.Scorer.BestNode(candidates); top != nil {
		a.TopNode = top
		a.Doc = candidates[0]
		for _, n := range candidates {
			if goose.Contains(n, top) {
				a.Doc = n
				break
			}
		}
		return
	}

	if top := c.Scorer.BestNode([]*html.Node{original}); top != nil {
		a.TopNode = top
		return
	}
	a.TopNode = original
}

// release deletes the crawl's temporary files. Failures are logged only.
func (c *Crawler) release(linkHash string) {
	if c.Resources == nil || linkHash == "" {
		return
	}
	if err := c.Resources.Release(linkHash); err != nil {
		c.logger().Warn("release failed", "linkHash", linkHash, "err", err)
	}
}

func (c *Crawler) config() *goose.Config {
	if c.Config == nil {
		return goose.NewConfig()
	}
	return c.Config
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// extract runs e on a. A nil extractor finds nothing.
func extract[T any](e goose.FieldExtractor[T], a *goose.Article) (T, bool) {
	if e == nil {
		var zero T
		return zero, false
	}
	return e.Extract(a)
}

func hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

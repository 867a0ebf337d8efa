package crawl

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/fwojciec/goose"
	"golang.org/x/sync/errgroup"
)

// crawlSubArticles crawls every sub-article of a as its own document and
// keeps only the fragments that were crawled. Fragments identical to the
// working document are dropped. A failing fragment is skipped or aborts
// the whole pass depending on the configured policy.
func (c *Crawler) crawlSubArticles(ctx context.Context, a *goose.Article) error {
	var subs []*goose.SubArticle
	for _, s := range a.SubArticles {
		if !a.Nodes.Same(s.Node, a.Doc) {
			subs = append(subs, s)
		}
	}

	cfg := c.config()
	child := *c
	crawled := make([]*goose.Article, len(subs))
	crawlOne := func(ctx context.Context, i int) error {
		sub, err := child.Crawl(ctx, goose.CrawlCandidate{URL: a.FinalURL, RawHTML: subs[i].OuterHTML}, false)
		if err != nil {
			if cfg.SubArticleFailurePolicy == goose.SubArticleAbort {
				return fmt.Errorf("crawl sub-article %d: %w", i, err)
			}
			c.logger().Warn("sub-article skipped", "url", a.FinalURL, "index", i, "err", err)
			return nil
		}
		crawled[i] = sub
		return nil
	}

	if cfg.SubArticleConcurrency < 2 {
		for i := range subs {
			if err := crawlOne(ctx, i); err != nil {
				return err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.SubArticleConcurrency)
		for i := range subs {
			g.Go(func() error {
				return crawlOne(gctx, i)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	kept := make([]*goose.SubArticle, 0, len(subs))
	for i, s := range subs {
		if crawled[i] != nil {
			s.Crawled = crawled[i]
			kept = append(kept, s)
		}
	}
	a.SubArticles = kept
	return nil
}

// MergeSubArticles orders the sub-articles of a by descending cleaned text
// length, keeping discovery order for ties, and fills the cleaned text and
// authors of a from the richest sub-article when a has none of its own.
func MergeSubArticles(a *goose.Article) {
	slices.SortStableFunc(a.SubArticles, func(x, y *goose.SubArticle) int {
		return cmp.Compare(len(y.CleanedText()), len(x.CleanedText()))
	})
	if len(a.SubArticles) == 0 {
		return
	}
	top := a.SubArticles[0]
	if a.CleanedText == "" && top.CleanedText() != "" {
		a.CleanedText = top.CleanedText()
	}
	if len(a.Authors) == 0 {
		a.Authors = slices.Clone(top.Authors())
	}
}

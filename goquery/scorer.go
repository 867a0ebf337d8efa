package goquery

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Scorer implements goose.ContentScorer at compile time.
var _ goose.ContentScorer = (*Scorer)(nil)

// Scorer implements goose.ContentScorer with stop word density scoring:
// every paragraph votes for its parent with its stop word count and for its
// grandparent with half of it, and the node with the most votes wins.
type Scorer struct {
	patterns []goose.KnownArticlePattern
	parser   *Parser
}

// NewScorer creates a Scorer that locates known article wrappers using the
// patterns from cfg.
func NewScorer(cfg *goose.Config) *Scorer {
	return &Scorer{
		patterns: cfg.KnownArticlePatterns,
		parser:   NewParser(),
	}
}

// BestNode returns the node with the highest positive score within the
// candidates, or nil when no node scores above zero.
func (s *Scorer) BestNode(candidates []*html.Node) *html.Node {
	var nodes []*html.Node
	for _, root := range candidates {
		for _, tag := range []string{"p", "pre", "td"} {
			for _, n := range s.parser.ByTagAttr(root, tag, "", "") {
				stats := goose.CountWords(goose.NodeText(n))
				if stats.Stopwords > 2 && !isHighLinkDensity(n) {
					nodes = append(nodes, n)
				}
			}
		}
	}

	count := len(nodes)
	bottomNegative := float64(count) * 0.25
	startingBoost := 1.0
	scores := make(map[*html.Node]float64)
	var parents []*html.Node
	vote := func(n *html.Node, score float64) {
		if n == nil || n.Type != html.ElementNode {
			return
		}
		if _, ok := scores[n]; !ok {
			parents = append(parents, n)
		}
		scores[n] += score
	}

	for i, n := range nodes {
		boost := 0.0
		if isBoostable(n) {
			boost = 50 / startingBoost
			startingBoost++
		}
		if count > 15 && float64(count-i) <= bottomNegative {
			booster := bottomNegative - float64(count-i)
			boost = -math.Pow(booster, 2)
			if math.Abs(boost) > 40 {
				boost = 5
			}
		}
		score := float64(goose.CountWords(goose.NodeText(n)).Stopwords) + boost
		vote(n.Parent, score)
		if n.Parent != nil {
			vote(n.Parent.Parent, score/2)
		}
	}

	var best *html.Node
	bestScore := 0.0
	for _, n := range parents {
		if scores[n] > bestScore {
			best = n
			bestScore = scores[n]
		}
	}
	return best
}

// KnownArticleTagNodes returns the outermost nodes of doc matching the
// configured article patterns, in pattern order.
func (s *Scorer) KnownArticleTagNodes(doc *html.Node) []*html.Node {
	var found []*html.Node
	seen := make(map[*html.Node]bool)
	for _, p := range s.patterns {
		for _, n := range s.parser.ByTagAttr(doc, p.Tag, p.Attr, p.Value) {
			if !seen[n] {
				seen[n] = true
				found = append(found, n)
			}
		}
	}

	var nodes []*html.Node
	for _, n := range found {
		if selection(n).Parents().FilterNodes(found...).Length() == 0 {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// PostCleanup removes children of top that are link farms, tables without
// paragraphs, or blocks with too little prose.
func (s *Scorer) PostCleanup(top *html.Node) *html.Node {
	if top == nil {
		return nil
	}
	selection(top).Children().Not("p").FilterFunction(func(_ int, c *goquery.Selection) bool {
		n := c.Get(0)
		return isHighLinkDensity(n) || isTableWithoutParagraphs(n) || isThinBlock(n)
	}).Remove()
	return top
}

// contentTags survive post cleanup regardless of their stop word count.
var contentTags = map[atom.Atom]bool{
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Pre: true, atom.Code: true, atom.Blockquote: true, atom.Ul: true, atom.Ol: true,
	atom.Dl: true, atom.Figure: true, atom.Picture: true, atom.Img: true, atom.Video: true,
	atom.Iframe: true, atom.Embed: true, atom.Object: true, atom.Br: true,
}

func isThinBlock(n *html.Node) bool {
	if contentTags[n.DataAtom] || hasMedia(n) {
		return false
	}
	return goose.CountWords(goose.NodeText(n)).Stopwords < 3
}

func hasMedia(n *html.Node) bool {
	return selection(n).Find("img,iframe,embed,object,video").Length() > 0
}

func isTableWithoutParagraphs(n *html.Node) bool {
	if n.DataAtom != atom.Table {
		return false
	}
	prose := selection(n).Find("p").FilterFunction(func(_ int, p *goquery.Selection) bool {
		return stopwords(p) > 2
	})
	return prose.Length() == 0
}

// isHighLinkDensity reports whether the links in n cover so much of its
// text that n is likely navigation.
func isHighLinkDensity(n *html.Node) bool {
	links := selection(n).Find("a")
	if links.Length() == 0 {
		return false
	}
	words := len(strings.Fields(goose.NodeText(n)))
	if words == 0 {
		return true
	}
	linkWords := 0
	links.Each(func(_ int, l *goquery.Selection) {
		linkWords += len(strings.Fields(goose.NodeText(l.Get(0))))
	})
	return float64(linkWords)/float64(words)*float64(links.Length()) >= 1
}

// isBoostable reports whether one of the three paragraphs before n is rich
// in stop words.
func isBoostable(n *html.Node) bool {
	boostable := false
	selection(n).PrevAllFiltered("p").EachWithBreak(func(i int, p *goquery.Selection) bool {
		if i >= 3 {
			return false
		}
		boostable = stopwords(p) > 5
		return !boostable
	})
	return boostable
}

func stopwords(s *goquery.Selection) int {
	return goose.CountWords(goose.NodeText(s.Get(0))).Stopwords
}

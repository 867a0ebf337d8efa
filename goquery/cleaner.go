package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Cleaner implements goose.DocumentCleaner at compile time.
var _ goose.DocumentCleaner = (*Cleaner)(nil)

// badNodePattern matches id, class and name values of template chrome.
var badNodePattern = regexp.MustCompile(`(?i)^side$|combx|retweet|mediaarticlerelated|menucontainer|` +
	`navbar|partner-gravity-ad|video-full-transcript|storytopbar-bucket|utility-bar|` +
	`inline-share-tools|comment|PopularQuestions|contact|foot|footer|footnote|` +
	`cnn_strycaptiontxt|cnn_html_slideshow|cnn_strylftcntnt|links|meta$|shoutbox|sponsor|` +
	`tags|socialnetworking|cnnStryHghLght|cnn_stryspcvbx|^inset$|pagetools|post-attributes|` +
	`welcome_form|contentTools2|the_answers|communitypromo|runaroundLeft|subscribe|vcard|` +
	`articleheadings|date|^print$|popup|author-dropdown|tools|socialtools|byline|` +
	`konafilter|breadcrumbs|^fn$|wp-caption-text|legende|ajoutVideo|timestamp|js_replies`)

// blockTags are the descendants that keep a div from being read as a
// paragraph.
const blockTags = "a,blockquote,dl,div,img,ol,p,pre,table,ul"

// Cleaner implements goose.DocumentCleaner by removing scripts, comments
// and nodes whose id, class or name look like page chrome.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean strips boilerplate from doc in place and returns it.
func (c *Cleaner) Clean(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	root := selection(doc)
	root.Find("script,style,noscript").Remove()
	root.Find("*").AddBack().Contents().FilterFunction(isComment).Remove()

	root.Find("body").RemoveAttr("class")
	root.Find("article").RemoveAttr("id").RemoveAttr("name").RemoveAttr("class")
	root.Find("*").Not("html,body").FilterFunction(isBadNode).Remove()

	unwrap(root.Find("em").Not(":has(img)"))
	root.Find("span").Each(func(_ int, s *goquery.Selection) {
		if s.Parent().Is("p") {
			unwrap(s)
		}
	})
	divsToParagraphs(root)
	return doc
}

// DiscoverSubArticles returns the outermost article elements of doc when
// there are at least two of them.
func (c *Cleaner) DiscoverSubArticles(doc *html.Node) []*html.Node {
	articles := selection(doc).Find("article").Not("article article")
	if articles.Length() < 2 {
		return nil
	}
	return articles.Nodes
}

// RemoveNestedArticleWrappers unwraps article elements that sit inside
// another article element, keeping their content in place.
func (c *Cleaner) RemoveNestedArticleWrappers(doc *html.Node) *html.Node {
	unwrap(selection(doc).Find("article article"))
	return doc
}

func isComment(_ int, s *goquery.Selection) bool {
	return s.Get(0).Type == html.CommentNode
}

func isBadNode(_ int, s *goquery.Selection) bool {
	for _, key := range []string{"id", "class", "name"} {
		if v := s.AttrOr(key, ""); v != "" && badNodePattern.MatchString(v) {
			return true
		}
	}
	return false
}

// divsToParagraphs renames divs without block descendants to paragraphs
// and wraps loose text inside the remaining divs in paragraphs.
func divsToParagraphs(root *goquery.Selection) {
	root.Find("div").Each(func(_ int, div *goquery.Selection) {
		if div.Find(blockTags).Length() == 0 {
			n := div.Get(0)
			n.Data = "p"
			n.DataAtom = atom.P
			return
		}
		div.Contents().FilterFunction(isLooseText).Each(func(_ int, t *goquery.Selection) {
			t.WrapNode(&html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P})
		})
	})
}

func isLooseText(_ int, s *goquery.Selection) bool {
	n := s.Get(0)
	return n.Type == html.TextNode && innerTrim(n.Data) != ""
}

// Package goquery implements the DOM side of goose on top of goquery:
// parsing and querying documents, cleaning template noise, scoring content
// regions, rendering text, and every field extractor.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
)

// Ensure Parser implements goose.Parser at compile time.
var _ goose.Parser = (*Parser)(nil)

// Parser implements goose.Parser. CSS lookups go through goquery and XPath
// lookups through htmlquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses an HTML document.
func (p *Parser) Parse(s string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, goose.Errorf(goose.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// XPath returns the nodes under root matching expr.
func (p *Parser) XPath(root *html.Node, expr string) []*html.Node {
	if root == nil || expr == "" {
		return nil
	}
	nodes, err := htmlquery.QueryAll(root, expr)
	if err != nil {
		return nil
	}
	return nodes
}

// ByTagAttr returns root and its descendants with the given tag whose attr
// matches value. An empty tag matches any element, an empty attr skips the
// attribute test, and an empty value only requires the attribute to exist.
// Values are case-insensitive regular expressions searched anywhere in the
// attribute, so "author" also matches "author vcard".
func (p *Parser) ByTagAttr(root *html.Node, tag, attr, value string) []*html.Node {
	if root == nil {
		return nil
	}

	var re *regexp.Regexp
	if attr != "" && value != "" {
		re = valuePattern(value)
	}
	match := func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		if tag != "" && n.Data != tag {
			return false
		}
		if attr == "" {
			return true
		}
		v, ok := attrValue(n, attr)
		if !ok {
			return false
		}
		return re == nil || re.MatchString(v)
	}

	var nodes []*html.Node
	if match(root) {
		nodes = append(nodes, root)
	}
	selector := "*"
	if tag != "" {
		selector = tag
	}
	if attr != "" {
		selector += "[" + attr + "]"
	}
	selection(root).Find(selector).Each(func(_ int, s *goquery.Selection) {
		if n := s.Get(0); match(n) {
			nodes = append(nodes, n)
		}
	})
	return nodes
}

// Text returns the text content of n.
func (p *Parser) Text(n *html.Node) string {
	return textOf(n)
}

// Attr returns the value of the named attribute of n.
func (p *Parser) Attr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	return attrValue(n, name)
}

// Remove detaches n from its parent.
func (p *Parser) Remove(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// OuterHTML renders n including its own tag.
func (p *Parser) OuterHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	s, err := goquery.OuterHtml(selection(n))
	if err != nil {
		return ""
	}
	return s
}

// valuePattern compiles an attribute value matcher, falling back to a
// literal match when value is not a valid expression.
func valuePattern(value string) *regexp.Regexp {
	re, err := regexp.Compile("(?i)" + value)
	if err != nil {
		return regexp.MustCompile("(?i)" + regexp.QuoteMeta(value))
	}
	return re
}

// selection wraps n in a goquery selection. A nil node yields an empty
// selection.
func selection(n *html.Node) *goquery.Selection {
	if n == nil {
		return &goquery.Selection{}
	}
	return goquery.NewDocumentFromNode(n).Selection
}

func attrValue(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	return selection(n).Text()
}

var spaceRun = regexp.MustCompile(`\s+`)

// innerTrim collapses whitespace runs to single spaces and trims the ends.
func innerTrim(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// hasClass reports whether n carries the given class.
func hasClass(n *html.Node, class string) bool {
	v, ok := attrValue(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// unwrap replaces every element of s with its contents. The contents are
// moved, not copied.
func unwrap(s *goquery.Selection) {
	s.Each(func(_ int, el *goquery.Selection) {
		el.ReplaceWithSelection(el.Contents())
	})
}

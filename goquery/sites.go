package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/goose"
)

// Ensure the site resolvers implement goose.SiteResolver at compile time.
var (
	_ goose.SiteResolver = (*TwitterResolver)(nil)
	_ goose.SiteResolver = (*FacebookResolver)(nil)
)

// DefaultSiteResolvers returns the built-in site rules.
func DefaultSiteResolvers() []goose.SiteResolver {
	return []goose.SiteResolver{
		NewTwitterResolver(),
		NewFacebookResolver(),
	}
}

// TwitterResolver follows the link shared by a tweet.
type TwitterResolver struct {
	parser *Parser
}

// NewTwitterResolver creates a new TwitterResolver.
func NewTwitterResolver() *TwitterResolver {
	return &TwitterResolver{parser: NewParser()}
}

// Match reports whether u is on twitter.com.
func (r *TwitterResolver) Match(u *url.URL) bool {
	return u != nil && u.Hostname() == "twitter.com"
}

// Resolve returns the href of the tweet's timeline link.
func (r *TwitterResolver) Resolve(s string, u *url.URL) (string, bool) {
	doc, err := r.parser.Parse(s)
	if err != nil {
		return "", false
	}
	href, ok := selection(doc).Find("a.twitter-timeline-link").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return "", false
	}
	return resolveAgainst(u, strings.TrimSpace(href)), true
}

var facebookRedirect = regexp.MustCompile(`https?://l\.facebook\.com/l\.php\?u=(?P<url>[^&]+)&h`)

// FacebookResolver follows the outbound link of a Facebook post. Post
// markup is shipped inside HTML comments, which are unwrapped first.
type FacebookResolver struct {
	parser *Parser
}

// NewFacebookResolver creates a new FacebookResolver.
func NewFacebookResolver() *FacebookResolver {
	return &FacebookResolver{parser: NewParser()}
}

// Match reports whether u is a post on www.facebook.com.
func (r *FacebookResolver) Match(u *url.URL) bool {
	return u != nil && u.Hostname() == "www.facebook.com" && strings.Contains(u.Path, "/posts/")
}

// Resolve returns the decoded target of the post's l.facebook.com redirect.
func (r *FacebookResolver) Resolve(s string, _ *url.URL) (string, bool) {
	s = strings.NewReplacer("<!--", "", "-->", "").Replace(s)
	doc, err := r.parser.Parse(s)
	if err != nil {
		return "", false
	}
	for _, a := range r.parser.XPath(doc, `//*[@class='hidden_elem']/descendant::a`) {
		href, _ := attrValue(a, "href")
		m := facebookRedirect.FindStringSubmatch(href)
		if m == nil {
			continue
		}
		target, err := url.QueryUnescape(m[facebookRedirect.SubexpIndex("url")])
		if err != nil {
			continue
		}
		return target, true
	}
	return "", false
}

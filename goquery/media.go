package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goose"
	"golang.org/x/net/html"
)

// Ensure the media extractors implement goose.FieldExtractor at compile time.
var (
	_ goose.FieldExtractor[[]string]      = (*TweetsExtractor)(nil)
	_ goose.FieldExtractor[[]goose.Video] = (*VideosExtractor)(nil)
)

// TweetsExtractor collects embedded tweets from the content region.
type TweetsExtractor struct{}

// Extract returns the outer HTML of each embedded tweet.
func (e *TweetsExtractor) Extract(a *goose.Article) ([]string, bool) {
	var tweets []string
	selection(a.TopNode).Find("blockquote.twitter-tweet").Each(func(_ int, sel *goquery.Selection) {
		if s, err := goquery.OuterHtml(sel); err == nil {
			tweets = append(tweets, s)
		}
	})
	return tweets, len(tweets) > 0
}

// videoProviders maps URL fragments to provider names.
var videoProviders = []struct{ match, name string }{
	{"youtube", "youtube"},
	{"youtu.be", "youtube"},
	{"vimeo", "vimeo"},
	{"dailymotion", "dailymotion"},
	{"kewego", "kewego"},
	{"twitch", "twitch"},
}

// VideosExtractor collects embedded videos from the content region.
// Iframes, embeds and objects are kept only for known providers.
type VideosExtractor struct{}

// Extract returns the videos of the top node in document order.
func (e *VideosExtractor) Extract(a *goose.Article) ([]goose.Video, bool) {
	var videos []goose.Video
	seen := make(map[string]bool)
	selection(a.TopNode).Find("iframe, embed, object, video").Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		if n.Data == "embed" && n.Parent != nil && n.Parent.Data == "object" {
			return
		}
		src := videoSource(sel)
		provider := videoProvider(src)
		if provider == "" && n.Data != "video" {
			return
		}
		if src == "" || seen[src] {
			return
		}
		seen[src] = true
		code, _ := goquery.OuterHtml(sel)
		videos = append(videos, goose.Video{
			EmbedType: n.Data,
			Provider:  provider,
			Width:     intAttr(n, "width"),
			Height:    intAttr(n, "height"),
			EmbedCode: code,
			Src:       src,
		})
	})
	return videos, len(videos) > 0
}

func videoSource(sel *goquery.Selection) string {
	if src, ok := sel.Attr("src"); ok && src != "" {
		return strings.TrimSpace(src)
	}
	switch goquery.NodeName(sel) {
	case "object":
		if data, ok := sel.Attr("data"); ok && data != "" {
			return strings.TrimSpace(data)
		}
		if v, ok := sel.Find(`param[name="movie" i]`).First().Attr("value"); ok {
			return strings.TrimSpace(v)
		}
		if src, ok := sel.Find("embed").First().Attr("src"); ok {
			return strings.TrimSpace(src)
		}
	case "video":
		if src, ok := sel.Find("source[src]").First().Attr("src"); ok {
			return strings.TrimSpace(src)
		}
	}
	return ""
}

func videoProvider(src string) string {
	src = strings.ToLower(src)
	for _, p := range videoProviders {
		if strings.Contains(src, p.match) {
			return p.name
		}
	}
	return ""
}

func intAttr(n *html.Node, name string) int {
	v, _ := attrValue(n, name)
	i, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if err != nil {
		return 0
	}
	return i
}

package goquery

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/goose"
	_ "golang.org/x/image/webp"
)

// Ensure ImageExtractor implements goose.ImageExtractor at compile time.
var _ goose.ImageExtractor = (*ImageExtractor)(nil)

// badImagePattern matches image URLs of ads, buttons and sharing widgets.
var badImagePattern = regexp.MustCompile(`(?i)\.html|\.ico|button|twitter\.jpg|facebook\.jpg|ap_buy_photo|` +
	`digg\.jpg|digg\.png|delicious\.png|facebook\.png|reddit\.jpg|doubleclick|diggthis|adserver|` +
	`/ads/|ec\.atdmt\.com|mediaplex\.com|adsatt|view\.atdmt`)

const (
	maxImageCandidates = 30
	minImageWidth      = 50
)

// ImageExtractor picks the top image of an article. When a fetcher is set
// the images of the content region are downloaded and the largest one wins;
// otherwise, or when none qualifies, the image declared by the page's
// metadata is used.
type ImageExtractor struct {
	Config    *goose.Config
	Fetcher   goose.Fetcher
	Resources goose.ResourceStore
}

// BestImage returns the image that best represents a.
func (e *ImageExtractor) BestImage(ctx context.Context, a *goose.Article) (*goose.Image, bool) {
	if img, ok := e.largestImage(ctx, a); ok {
		return img, true
	}
	return metaImage(a)
}

func (e *ImageExtractor) largestImage(ctx context.Context, a *goose.Article) (*goose.Image, bool) {
	if e.Fetcher == nil || a.TopNode == nil {
		return nil, false
	}
	base, err := url.Parse(a.FinalURL)
	if err != nil {
		base = &url.URL{}
	}

	var srcs []string
	seen := make(map[string]bool)
	selection(a.TopNode).Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		src = resolveAgainst(base, strings.TrimSpace(src))
		if src == "" || seen[src] || badImagePattern.MatchString(src) || isNonHTTPLink(src) {
			return true
		}
		seen[src] = true
		srcs = append(srcs, src)
		return len(srcs) < maxImageCandidates
	})

	var best *goose.Image
	for _, src := range srcs {
		if ctx.Err() != nil {
			break
		}
		img, ok := e.inspect(ctx, a.LinkHash, src)
		if !ok {
			continue
		}
		if best == nil || img.Width*img.Height > best.Width*best.Height {
			best = img
		}
	}
	return best, best != nil
}

// inspect downloads src and decodes its dimensions. With a resource store
// the image is saved under the crawl's link hash and measured from the
// stored copy.
func (e *ImageExtractor) inspect(ctx context.Context, linkHash, src string) (*goose.Image, bool) {
	resp, err := e.Fetcher.FetchResponse(ctx, src)
	if err != nil {
		return nil, false
	}
	data := resp.Content
	if e.Config != nil && len(data) < e.Config.ImagesMinBytes {
		return nil, false
	}
	cfg, err := e.decodeConfig(linkHash, src, data)
	if err != nil || cfg.Width < minImageWidth {
		return nil, false
	}
	return &goose.Image{
		Src:            src,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Bytes:          len(data),
		Confidence:     80,
		ExtractionType: "bigimage",
	}, true
}

func (e *ImageExtractor) decodeConfig(linkHash, src string, data []byte) (image.Config, error) {
	if e.Resources == nil || linkHash == "" {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		return cfg, err
	}
	path, err := e.Resources.Save(linkHash, fmt.Sprintf("%016x", xxhash.Sum64String(src)), data)
	if err != nil {
		return image.Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	return cfg, err
}

// metaImage returns the image declared in the raw document's metadata.
func metaImage(a *goose.Article) (*goose.Image, bool) {
	doc := selection(a.RawDoc)
	base, err := url.Parse(a.FinalURL)
	if err != nil {
		base = &url.URL{}
	}
	candidates := []struct {
		selector, attr, kind string
	}{
		{`meta[property="og:image"]`, "content", "opengraph"},
		{`link[rel="image_src" i]`, "href", "linktag"},
		{`meta[name="twitter:image" i]`, "content", "twitter"},
	}
	for _, c := range candidates {
		v, ok := doc.Find(c.selector).First().Attr(c.attr)
		if v = strings.TrimSpace(v); !ok || v == "" {
			continue
		}
		return &goose.Image{
			Src:            resolveAgainst(base, v),
			Confidence:     100,
			ExtractionType: c.kind,
		}, true
	}
	return nil, false
}

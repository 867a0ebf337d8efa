package crawl

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/goose"
	"golang.org/x/net/html/charset"
)

// Patterns locating a charset declared inside a document.
var (
	metaCharsetPattern = regexp.MustCompile(`(?i)<meta.*?charset=["']*(.+?)["'>]`)
	pragmaPattern      = regexp.MustCompile(`(?i)<meta.*?content=["']*;?charset=(.+?)["'>]`)
	xmlPattern         = regexp.MustCompile(`^<\?xml.*?encoding=["']*(.+?)["'>]`)
)

// fetchHTML retrieves rawURL and returns the document text and the URL it
// was read from. When a site resolver matches, the document it points to is
// fetched instead; if that fails the original document is kept.
func (c *Crawler) fetchHTML(ctx context.Context, rawURL string) (string, string, error) {
	resp, err := c.fetch(ctx, rawURL)
	if err != nil {
		return "", "", err
	}
	text := decodeResponse(resp)
	finalURL := resp.URL
	if finalURL == "" {
		finalURL = rawURL
	}

	u, err := url.Parse(finalURL)
	if err != nil {
		return text, finalURL, nil
	}
	for _, r := range c.Resolvers {
		if !r.Match(u) {
			continue
		}
		target, ok := r.Resolve(text, u)
		if !ok {
			break
		}
		resolved, err := c.fetch(ctx, target)
		if err != nil {
			c.logger().Warn("site resolution failed", "url", finalURL, "target", target, "err", err)
			break
		}
		if body := decodeResponse(resolved); strings.TrimSpace(body) != "" {
			if resolved.URL != "" {
				target = resolved.URL
			}
			return body, target, nil
		}
		break
	}
	return text, finalURL, nil
}

// fetch retrieves rawURL through the rate limiter and the retry policy.
func (c *Crawler) fetch(ctx context.Context, rawURL string) (*goose.Response, error) {
	if c.Fetcher == nil {
		return nil, goose.Errorf(goose.EINVALID, "no fetcher configured for %s", rawURL)
	}
	domain := ""
	if u, err := url.Parse(rawURL); err == nil {
		domain = u.Hostname()
	}
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return Retry(ctx, delays, c.logger(), func(ctx context.Context) (*goose.Response, error) {
		if c.RateLimiter != nil {
			if err := c.RateLimiter.Wait(ctx, domain); err != nil {
				return nil, err
			}
		}
		return c.Fetcher.FetchResponse(ctx, rawURL)
	})
}

// decodeResponse returns the response text. Bodies the transport decoded
// as ISO-8859-1 only because no charset was sent are decoded again using
// the charset the document declares.
func decodeResponse(resp *goose.Response) string {
	if !strings.EqualFold(resp.Encoding, "ISO-8859-1") || len(resp.Content) == 0 {
		return resp.Text
	}
	if strings.Contains(strings.ToLower(resp.ContentType), "charset") {
		return resp.Text
	}
	label := declaredCharset(resp.Content)
	if label == "" {
		return resp.Text
	}
	r, err := charset.NewReaderLabel(label, bytes.NewReader(resp.Content))
	if err != nil {
		return resp.Text
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return resp.Text
	}
	return string(b)
}

// declaredCharset returns the first charset declared by the document.
func declaredCharset(content []byte) string {
	for _, re := range []*regexp.Regexp{metaCharsetPattern, pragmaPattern, xmlPattern} {
		if m := re.FindSubmatch(content); m != nil {
			return strings.TrimSpace(string(m[1]))
		}
	}
	return ""
}

package goose

import (
	"os"
	"path/filepath"
	"time"
)

// SubArticlePolicy decides what happens when crawling a sub-article fails.
type SubArticlePolicy string

// SubArticlePolicy constants.
const (
	// SubArticleSkip drops the failing fragment and keeps crawling.
	SubArticleSkip SubArticlePolicy = "skip"
	// SubArticleAbort stops sub-article crawling and reports the error.
	SubArticleAbort SubArticlePolicy = "abort"
)

// KnownAuthorPattern declares where an author name lives in arbitrary
// markup. Either XPath or the Attr/Value pair locates the node. When Content
// is set the named attribute is read instead of the node text.
type KnownAuthorPattern struct {
	XPath   string `yaml:"xpath"`
	Attr    string `yaml:"attr"`
	Value   string `yaml:"value"`
	Content string `yaml:"content"`
}

// KnownArticlePattern declares markup that is known to wrap article bodies.
// Tag, Attr and Value narrow the match; an empty field matches anything.
type KnownArticlePattern struct {
	Tag   string `yaml:"tag"`
	Attr  string `yaml:"attr"`
	Value string `yaml:"value"`
}

// Config holds read-only settings shared by a crawl and all of its
// sub-article crawls.
type Config struct {
	// LocalStoragePath is the directory for per-crawl temporary files.
	LocalStoragePath string `yaml:"local_storage_path"`

	// EnableImageFetching downloads candidate images to pick the best one.
	EnableImageFetching bool `yaml:"enable_image_fetching"`

	// ImagesMinBytes is the smallest image payload considered for the top image.
	ImagesMinBytes int `yaml:"images_min_bytes"`

	// KnownAuthorPatterns are tried in order; the first matching pattern wins.
	KnownAuthorPatterns []KnownAuthorPattern `yaml:"known_author_patterns"`

	// KnownArticlePatterns locate candidate content regions.
	KnownArticlePatterns []KnownArticlePattern `yaml:"known_article_patterns"`

	// SubArticleFailurePolicy decides whether a failing sub-article crawl
	// is skipped or aborts the parent crawl.
	SubArticleFailurePolicy SubArticlePolicy `yaml:"sub_article_failure_policy"`

	// SubArticleConcurrency bounds parallel sub-article crawls.
	// Values below 2 crawl sub-articles one at a time in discovery order.
	SubArticleConcurrency int `yaml:"sub_article_concurrency"`

	// UserAgent is sent with network requests.
	UserAgent string `yaml:"user_agent"`

	// HTTPTimeout bounds a single network request.
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// DefaultUserAgent identifies goose to remote servers.
const DefaultUserAgent = "goose/1.0 (+https://github.com/fwojciec/goose)"

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		LocalStoragePath:        filepath.Join(os.TempDir(), "goose"),
		ImagesMinBytes:          4500,
		KnownAuthorPatterns:     DefaultKnownAuthorPatterns(),
		KnownArticlePatterns:    DefaultKnownArticlePatterns(),
		SubArticleFailurePolicy: SubArticleSkip,
		SubArticleConcurrency:   1,
		UserAgent:               DefaultUserAgent,
		HTTPTimeout:             30 * time.Second,
	}
}

// DefaultKnownAuthorPatterns returns the built-in author locations.
func DefaultKnownAuthorPatterns() []KnownAuthorPattern {
	return []KnownAuthorPattern{
		{Attr: "rel", Value: "author"},
		{Attr: "class", Value: "byline-name"},
		{Attr: "class", Value: "author-name"},
		{XPath: `//meta[@name="byl"]`, Content: "content"},
		{XPath: `//meta[@property="article:author"]`, Content: "content"},
		{Attr: "class", Value: "byline"},
	}
}

// DefaultKnownArticlePatterns returns the built-in article body locations.
func DefaultKnownArticlePatterns() []KnownArticlePattern {
	return []KnownArticlePattern{
		{Attr: "itemprop", Value: "articleBody"},
		{Attr: "class", Value: "post-content"},
		{Tag: "article"},
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	for i, p := range c.KnownAuthorPatterns {
		if p.XPath == "" && (p.Attr == "" || p.Value == "") {
			return Errorf(EINVALID, "known author pattern %d needs xpath or attr and value", i)
		}
	}
	for i, p := range c.KnownArticlePatterns {
		if p.Tag == "" && p.Attr == "" {
			return Errorf(EINVALID, "known article pattern %d needs tag or attr", i)
		}
	}
	switch c.SubArticleFailurePolicy {
	case SubArticleSkip, SubArticleAbort:
	default:
		return Errorf(EINVALID, "unknown sub-article failure policy %q", c.SubArticleFailurePolicy)
	}
	if c.SubArticleConcurrency < 0 {
		return Errorf(EINVALID, "sub-article concurrency must not be negative")
	}
	if c.ImagesMinBytes < 0 {
		return Errorf(EINVALID, "images min bytes must not be negative")
	}
	return nil
}

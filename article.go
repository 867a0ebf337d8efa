package goose

import (
	"time"

	"golang.org/x/net/html"
)

// CrawlCandidate describes what to crawl. At most one of Doc, RawHTML and
// URL is authoritative, checked in that order.
type CrawlCandidate struct {
	URL     string
	RawHTML string
	Doc     *html.Node
}

// ParseCandidate is the resolved form of a CrawlCandidate that drives
// fetching and parsing.
type ParseCandidate struct {
	URL     string
	RawHTML string
	Doc     *html.Node

	// LinkHash is a stable identifier derived from the candidate. It
	// namespaces temporary resources created during the crawl.
	LinkHash string
}

// Article is the structured extraction result for one document.
//
// An Article is an accumulator owned by exactly one crawl. Pipeline stages
// read the fields set by earlier stages and write their own; it is never
// shared between concurrent writers.
type Article struct {
	// Identity.
	FinalURL   string
	SiteDomain string
	LinkHash   string
	RawHTML    string

	// Doc is the working document, progressively cleaned and pruned.
	Doc *html.Node

	// RawDoc is a snapshot of the document captured before any mutation.
	// It is never modified afterwards.
	RawDoc *html.Node

	// Nodes tracks node identity across Doc, RawDoc and any copies.
	Nodes *Arena

	// Structured metadata.
	OpenGraph          map[string]string
	Schema             map[string]any
	MetaLang           string
	MetaFavicon        string
	MetaDescription    string
	MetaKeywords       string
	MetaEncoding       string
	CanonicalLink      string
	Domain             string
	MetaTags           map[string]string
	PublishDate        string
	PublishDatetimeUTC *time.Time
	Tags               []string
	JSONLD             any
	Microdata          map[string][]map[string]string
	Authors            []string
	Title              string
	HCards             []map[string]string
	ReadMoreURL        string

	// Content.
	TopNode     *html.Node
	Links       []string
	HTMLLinks   []string
	Tweets      []string
	Movies      []Video
	TopImage    *Image
	CleanedText string

	SubArticles []*SubArticle
}

// NewArticle returns an empty Article ready to be populated by a crawl.
func NewArticle() *Article {
	return &Article{
		Nodes:     NewArena(),
		OpenGraph: make(map[string]string),
		MetaTags:  make(map[string]string),
		Microdata: make(map[string][]map[string]string),
	}
}

// SubArticle is a nested document fragment discovered inside a parent
// document and eligible for its own crawl.
type SubArticle struct {
	// NodeID identifies the fragment's node in the parent's arena.
	NodeID NodeID

	// Node references the fragment inside the parent document at discovery
	// time. It is an identity reference, not ownership.
	Node *html.Node

	// OuterHTML is the fragment's markup captured at discovery time.
	OuterHTML string

	// Crawled holds the result of crawling OuterHTML as its own document.
	Crawled *Article
}

// CleanedText returns the cleaned text of the crawled fragment, if any.
func (s *SubArticle) CleanedText() string {
	if s.Crawled == nil {
		return ""
	}
	return s.Crawled.CleanedText
}

// Authors returns the authors of the crawled fragment, if any.
func (s *SubArticle) Authors() []string {
	if s.Crawled == nil {
		return nil
	}
	return s.Crawled.Authors
}

// Video describes an embedded video found in the content region.
type Video struct {
	EmbedType string `json:"embedType"`
	Provider  string `json:"provider"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	EmbedCode string `json:"embedCode"`
	Src       string `json:"src"`
}

// Image describes the image selected as most representative of an article.
type Image struct {
	Src            string `json:"src"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Bytes          int    `json:"bytes"`
	Confidence     int    `json:"confidence"`
	ExtractionType string `json:"extractionType"`
}

// Metas holds the values gathered from a document's meta and link tags.
type Metas struct {
	Lang        string
	Favicon     string
	Description string
	Keywords    string
	Encoding    string
	Canonical   string
	Domain      string
	MetaTags    map[string]string
}

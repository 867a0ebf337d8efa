package goose

import "context"

// FieldExtractor produces one field of an Article from the state the
// pipeline has accumulated so far. Implementations are constructed with a
// read-only Config, must not modify the article, and must be deterministic
// for identical input. The boolean reports whether a value was found.
type FieldExtractor[T any] interface {
	Extract(a *Article) (T, bool)
}

// FieldExtractorFunc adapts a function to the FieldExtractor interface.
type FieldExtractorFunc[T any] func(a *Article) (T, bool)

// Extract calls f(a).
func (f FieldExtractorFunc[T]) Extract(a *Article) (T, bool) {
	return f(a)
}

// ImageExtractor selects the image that best represents an article. It
// reads RawDoc and TopNode and may download candidates into temporary
// resources namespaced by the article's LinkHash.
type ImageExtractor interface {
	BestImage(ctx context.Context, a *Article) (*Image, bool)
}

// Extractors bundles the field extractors the pipeline runs. A nil entry
// leaves its field unset.
type Extractors struct {
	OpenGraph   FieldExtractor[map[string]string]
	Schema      FieldExtractor[map[string]any]
	Metas       FieldExtractor[Metas]
	PublishDate FieldExtractor[string]
	Tags        FieldExtractor[[]string]
	Microdata   FieldExtractor[map[string][]map[string]string]
	Authors     FieldExtractor[[]string]
	Title       FieldExtractor[string]
	HCards      FieldExtractor[[]map[string]string]
	ReadMore    FieldExtractor[string]
	Links       FieldExtractor[[]string]
	HTMLLinks   FieldExtractor[[]string]
	Tweets      FieldExtractor[[]string]
	Videos      FieldExtractor[[]Video]
	Image       ImageExtractor
}

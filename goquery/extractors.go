package goquery

import "github.com/fwojciec/goose"

// NewExtractors returns the full set of field extractors. Candidate images
// are downloaded through fetcher and kept in resources until the crawl
// releases them.
func NewExtractors(cfg *goose.Config, fetcher goose.Fetcher, resources goose.ResourceStore) goose.Extractors {
	images := &ImageExtractor{Config: cfg, Fetcher: fetcher, Resources: resources}
	return goose.Extractors{
		OpenGraph:   &OpenGraphExtractor{},
		Schema:      &SchemaExtractor{},
		Metas:       &MetasExtractor{},
		PublishDate: NewPublishDateExtractor(),
		Tags:        &TagsExtractor{},
		Microdata:   &MicrodataExtractor{},
		Authors:     NewAuthorsExtractor(cfg),
		Title:       &TitleExtractor{},
		HCards:      &HCardExtractor{},
		ReadMore:    &ReadMoreExtractor{},
		Links:       &LinksExtractor{},
		HTMLLinks:   &HTMLLinksExtractor{},
		Tweets:      &TweetsExtractor{},
		Videos:      &VideosExtractor{},
		Image:       images,
	}
}

package goose

import (
	"context"
	"time"
)

// Record is the persisted summary of a crawled Article.
type Record struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	LinkHash    string     `json:"linkHash"`
	Domain      string     `json:"domain"`
	Title       string     `json:"title"`
	Authors     []string   `json:"authors"`
	Tags        []string   `json:"tags"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
	Description string     `json:"description"`
	TopImage    string     `json:"topImage"`
	Content     string     `json:"content"`
	ContentHash string     `json:"contentHash"`
	SubArticles int        `json:"subArticles"`
	CrawledAt   time.Time  `json:"crawledAt"`
}

// NewRecord summarizes a crawled article for storage.
func NewRecord(a *Article) *Record {
	r := &Record{
		URL:         a.FinalURL,
		LinkHash:    a.LinkHash,
		Domain:      a.Domain,
		Title:       a.Title,
		Authors:     a.Authors,
		Tags:        a.Tags,
		PublishDate: a.PublishDatetimeUTC,
		Description: a.MetaDescription,
		Content:     a.CleanedText,
		SubArticles: len(a.SubArticles),
	}
	if r.Domain == "" {
		r.Domain = a.SiteDomain
	}
	if a.TopImage != nil {
		r.TopImage = a.TopImage.Src
	}
	return r
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	return nil
}

// RecordService represents a service for managing stored articles.
type RecordService interface {
	// CreateRecord stores a new record.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID       *string `json:"id"`
	URL      *string `json:"url"`
	Domain   *string `json:"domain"`
	LinkHash *string `json:"linkHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

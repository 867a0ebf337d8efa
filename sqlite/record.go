package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/goose"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ goose.RecordService = (*RecordService)(nil)

// RecordService implements goose.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

const recordColumns = `id, url, link_hash, domain, title, authors, tags, publish_date,
	description, top_image, content, content_hash, sub_articles, crawled_at`

// CreateRecord stores a new record, assigning its ID, content hash and
// crawl timestamp.
func (s *RecordService) CreateRecord(ctx context.Context, rec *goose.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.ContentHash = hashContent(rec.Content)
	if rec.CrawledAt.IsZero() {
		rec.CrawledAt = time.Now().UTC()
	}

	authors, err := encodeList(rec.Authors)
	if err != nil {
		return err
	}
	tags, err := encodeList(rec.Tags)
	if err != nil {
		return err
	}
	var published sql.NullString
	if rec.PublishDate != nil {
		published = sql.NullString{String: rec.PublishDate.UTC().Format(time.RFC3339), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.URL, rec.LinkHash, rec.Domain, rec.Title, authors, tags, published,
		rec.Description, rec.TopImage, rec.Content, rec.ContentHash, rec.SubArticles,
		rec.CrawledAt.UTC().Format(time.RFC3339))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*goose.Record, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM records
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goose.Errorf(goose.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, most recent first.
func (s *RecordService) FindRecords(ctx context.Context, filter goose.RecordFilter) ([]*goose.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Domain != nil {
		query.WriteString(" AND domain = ?")
		args = append(args, *filter.Domain)
	}
	if filter.LinkHash != nil {
		query.WriteString(" AND link_hash = ?")
		args = append(args, *filter.LinkHash)
	}

	query.WriteString(" ORDER BY crawled_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*goose.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return goose.Errorf(goose.ENOTFOUND, "record not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*goose.Record, error) {
	var rec goose.Record
	var authors, tags, crawledAt string
	var published sql.NullString

	if err := row.Scan(&rec.ID, &rec.URL, &rec.LinkHash, &rec.Domain, &rec.Title, &authors, &tags,
		&published, &rec.Description, &rec.TopImage, &rec.Content, &rec.ContentHash,
		&rec.SubArticles, &crawledAt); err != nil {
		return nil, err
	}

	var err error
	if rec.Authors, err = decodeList(authors, "authors"); err != nil {
		return nil, err
	}
	if rec.Tags, err = decodeList(tags, "tags"); err != nil {
		return nil, err
	}
	if published.Valid {
		t, err := parseRFC3339(published.String, "publish_date")
		if err != nil {
			return nil, err
		}
		rec.PublishDate = &t
	}
	if rec.CrawledAt, err = parseRFC3339(crawledAt, "crawled_at"); err != nil {
		return nil, err
	}
	return &rec, nil
}

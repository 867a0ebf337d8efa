package mock

import (
	"context"

	"github.com/fwojciec/goose"
)

var _ goose.ResourceStore = (*ResourceStore)(nil)

// ResourceStore is a mock implementation of goose.ResourceStore.
type ResourceStore struct {
	SaveFn    func(linkHash, name string, data []byte) (string, error)
	ReleaseFn func(linkHash string) error
}

func (s *ResourceStore) Save(linkHash, name string, data []byte) (string, error) {
	return s.SaveFn(linkHash, name, data)
}

func (s *ResourceStore) Release(linkHash string) error {
	return s.ReleaseFn(linkHash)
}

var _ goose.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of goose.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, r *goose.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*goose.Record, error)
	FindRecordsFn    func(ctx context.Context, filter goose.RecordFilter) ([]*goose.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, r *goose.Record) error {
	return s.CreateRecordFn(ctx, r)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*goose.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter goose.RecordFilter) ([]*goose.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

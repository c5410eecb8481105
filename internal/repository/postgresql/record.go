package postgresql

import (
	"context"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/record"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/database"
)

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) record.Repository {
	return &recordRepositoryImpl{db: db}
}

// List implements record.Repository.
func (r *recordRepositoryImpl) List(ctx context.Context) ([]record.CanonicalRecord, error) {
	var records []record.CanonicalRecord
	if err := loadBlob(ctx, r.db, blobRecords, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Append implements record.Repository.
func (r *recordRepositoryImpl) Append(ctx context.Context, records []record.CanonicalRecord) error {
	existing, err := r.List(ctx)
	if err != nil {
		return err
	}
	return saveBlob(ctx, r.db, blobRecords, append(existing, records...))
}

// Replace implements record.Repository.
func (r *recordRepositoryImpl) Replace(ctx context.Context, records []record.CanonicalRecord) error {
	if records == nil {
		records = []record.CanonicalRecord{}
	}
	return saveBlob(ctx, r.db, blobRecords, records)
}

type processedFileRepositoryImpl struct {
	db *database.DB
}

func NewProcessedFileRepository(db *database.DB) record.ProcessedFileRepository {
	return &processedFileRepositoryImpl{db: db}
}

// List implements record.ProcessedFileRepository.
func (r *processedFileRepositoryImpl) List(ctx context.Context) ([]string, error) {
	var names []string
	if err := loadBlob(ctx, r.db, blobProcessedFiles, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Add implements record.ProcessedFileRepository.
func (r *processedFileRepositoryImpl) Add(ctx context.Context, name string) error {
	names, err := r.List(ctx)
	if err != nil {
		return err
	}
	return saveBlob(ctx, r.db, blobProcessedFiles, append(names, name))
}

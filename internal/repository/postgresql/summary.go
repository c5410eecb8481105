package postgresql

import (
	"context"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/summary"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/database"
)

type summaryRepositoryImpl struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) summary.Repository {
	return &summaryRepositoryImpl{db: db}
}

// Publish implements summary.Repository.
func (r *summaryRepositoryImpl) Publish(ctx context.Context, summaries []summary.EmployeeSummary) error {
	if summaries == nil {
		summaries = []summary.EmployeeSummary{}
	}
	return saveBlob(ctx, r.db, blobSummaries, summaries)
}

// Load implements summary.Repository.
func (r *summaryRepositoryImpl) Load(ctx context.Context) ([]summary.EmployeeSummary, error) {
	var summaries []summary.EmployeeSummary
	if err := loadBlob(ctx, r.db, blobSummaries, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

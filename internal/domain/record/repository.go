package record

import (
	"context"
)

// Repository - durable store for canonical leave records
type Repository interface {
	List(ctx context.Context) ([]CanonicalRecord, error)
	Append(ctx context.Context, records []CanonicalRecord) error
	Replace(ctx context.Context, records []CanonicalRecord) error
}

// ProcessedFileRepository - names of workbooks already ingested
type ProcessedFileRepository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
}

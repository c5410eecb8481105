// Package ingest runs the file-to-store pipeline: duplicate-file gating,
// classification, dedup against previously stored records, and the append.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/record"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/database"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/xlsx"
	"github.com/cmlabs-hris/leave-extractor-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/leave-extractor-go/internal/service/sheet"
	"github.com/jackc/pgx/v5"
)

// Result reports what one ingested file contributed.
type Result struct {
	NewRecords     int
	DuplicateCount int
	Headers        []string
}

type Service struct {
	db      *database.DB
	records record.Repository
	files   record.ProcessedFileRepository
	sheets  *sheet.Service
	log     *slog.Logger
}

// NewService wires the ingestion pipeline. db may be nil when the
// repositories are not transactional (as in tests).
func NewService(db *database.DB, records record.Repository, files record.ProcessedFileRepository, sheets *sheet.Service, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{db: db, records: records, files: files, sheets: sheets, log: log}
}

// IngestFile reads the workbook at path and ingests it under its base name.
func (s *Service) IngestFile(ctx context.Context, path string) (Result, error) {
	name := filepath.Base(path)

	if err := s.checkNotProcessed(ctx, name); err != nil {
		return Result{}, err
	}

	wb, err := xlsx.Open(path)
	if err != nil {
		return Result{}, err
	}
	return s.IngestRows(ctx, name, wb.Headers, wb.Rows)
}

// IngestRows classifies and cleans the rows, drops records already stored or
// repeated within the file, appends the remainder, and marks the file name
// processed. The file is marked processed even when every record was a
// duplicate, matching how re-uploads are reported to users.
func (s *Service) IngestRows(ctx context.Context, fileName string, headers []string, rows []record.RawRow) (Result, error) {
	if err := s.checkNotProcessed(ctx, fileName); err != nil {
		return Result{}, err
	}
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("%q: %w", fileName, record.ErrEmptyInput)
	}

	clean, cleanHeaders, err := s.sheets.ClassifyAndClean(headers, rows)
	if err != nil {
		return Result{}, err
	}
	if len(clean) == 0 {
		return Result{}, fmt.Errorf("%q: %w", fileName, record.ErrEmptyInput)
	}

	existing, err := s.records.List(ctx)
	if err != nil {
		return Result{}, err
	}
	seen := make(map[string]bool, len(existing))
	for _, rec := range existing {
		seen[rec.Key()] = true
	}

	var fresh []record.CanonicalRecord
	for _, rec := range clean {
		key := rec.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		fresh = append(fresh, rec)
	}

	if err := s.store(ctx, fileName, fresh); err != nil {
		return Result{}, err
	}

	result := Result{
		NewRecords:     len(fresh),
		DuplicateCount: len(clean) - len(fresh),
		Headers:        cleanHeaders,
	}
	s.log.Info("file ingested",
		slog.String("file", fileName),
		slog.Int("new_records", result.NewRecords),
		slog.Int("duplicates", result.DuplicateCount),
	)
	return result, nil
}

func (s *Service) checkNotProcessed(ctx context.Context, name string) error {
	processed, err := s.files.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range processed {
		if p == name {
			return fmt.Errorf("%q: %w", name, record.ErrDuplicateFile)
		}
	}
	return nil
}

// store appends the fresh records and marks the file processed, atomically
// when a database is attached.
func (s *Service) store(ctx context.Context, fileName string, fresh []record.CanonicalRecord) error {
	write := func(ctx context.Context) error {
		if len(fresh) > 0 {
			if err := s.records.Append(ctx, fresh); err != nil {
				return fmt.Errorf("append records: %w", err)
			}
		}
		if err := s.files.Add(ctx, fileName); err != nil {
			return fmt.Errorf("mark file processed: %w", err)
		}
		return nil
	}

	if s.db == nil {
		return write(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return write(txCtx)
	})
}

// Package postgresql persists the extractor's state as named JSON blobs in a
// single app_state table, mirroring the key/value layout the external UI
// expects.
package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Blob names. These match the keys the UI reads, so renaming one is a
// breaking change for the frontend.
const (
	blobEmployees      = "employeeLeaveBalances"
	blobRecords        = "leaveDataRecords"
	blobProcessedFiles = "processedFileNames"
	blobSummaries      = "employeeSummaries"
)

// Migrate creates the app_state table when it does not exist.
func Migrate(ctx context.Context, db *database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			name       TEXT PRIMARY KEY,
			blob       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate app_state: %w", err)
	}
	return nil
}

// loadBlob unmarshals the named blob into dest. A missing blob leaves dest
// untouched and returns no error.
func loadBlob(ctx context.Context, db *database.DB, name string, dest any) error {
	q := GetQuerier(ctx, db)

	var raw []byte
	err := q.QueryRow(ctx, `SELECT blob FROM app_state WHERE name = $1`, name).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("load blob %q: %w", name, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode blob %q: %w", name, err)
	}
	return nil
}

// saveBlob upserts the named blob.
func saveBlob(ctx context.Context, db *database.DB, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode blob %q: %w", name, err)
	}

	q := GetQuerier(ctx, db)
	_, err = q.Exec(ctx, `
		INSERT INTO app_state (name, blob, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET blob = EXCLUDED.blob, updated_at = now()
	`, name, raw)
	if err != nil {
		return fmt.Errorf("save blob %q: %w", name, err)
	}
	return nil
}

// Reset drops every stored blob: roster, records, processed files and
// published summaries.
func Reset(ctx context.Context, db *database.DB) error {
	q := GetQuerier(ctx, db)
	_, err := q.Exec(ctx, `DELETE FROM app_state WHERE name = ANY($1)`, []string{
		blobEmployees, blobRecords, blobProcessedFiles, blobSummaries,
	})
	if err != nil {
		return fmt.Errorf("reset app_state: %w", err)
	}
	return nil
}

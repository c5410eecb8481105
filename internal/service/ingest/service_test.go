package ingest

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/record"
	"github.com/cmlabs-hris/leave-extractor-go/internal/service/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordRepo struct {
	records []record.CanonicalRecord
}

func (f *fakeRecordRepo) List(context.Context) ([]record.CanonicalRecord, error) {
	return f.records, nil
}

func (f *fakeRecordRepo) Append(_ context.Context, recs []record.CanonicalRecord) error {
	f.records = append(f.records, recs...)
	return nil
}

func (f *fakeRecordRepo) Replace(_ context.Context, recs []record.CanonicalRecord) error {
	f.records = recs
	return nil
}

type fakeFileRepo struct {
	names []string
}

func (f *fakeFileRepo) List(context.Context) ([]string, error) { return f.names, nil }

func (f *fakeFileRepo) Add(_ context.Context, name string) error {
	f.names = append(f.names, name)
	return nil
}

func newTestService() (*Service, *fakeRecordRepo, *fakeFileRepo) {
	records := &fakeRecordRepo{}
	files := &fakeFileRepo{}
	return NewService(nil, records, files, sheet.NewService(nil), nil), records, files
}

func leaveRows() ([]string, []record.RawRow) {
	headers := []string{"الاسم", "التاريخ", "النوع"}
	rows := []record.RawRow{
		{
			"الاسم":   record.TextCell("احمد سمير محمد"),
			"التاريخ": record.TextCell("05-01-2024"),
			"النوع":   record.TextCell("اجازة اعتيادية"),
		},
		{
			"التاريخ": record.TextCell("06-01-2024"),
			"النوع":   record.TextCell("اجازة مرضية"),
		},
	}
	return headers, rows
}

func TestIngestRows_AppendsAndMarksProcessed(t *testing.T) {
	t.Parallel()

	svc, records, files := newTestService()
	headers, rows := leaveRows()

	result, err := svc.IngestRows(context.Background(), "january.xlsx", headers, rows)

	require.NoError(t, err)
	assert.Equal(t, 2, result.NewRecords)
	assert.Equal(t, 0, result.DuplicateCount)
	assert.Equal(t, record.CanonicalHeaders, result.Headers)
	assert.Len(t, records.records, 2)
	assert.Equal(t, []string{"january.xlsx"}, files.names)
}

func TestIngestRows_SameFileNameRejected(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()
	headers, rows := leaveRows()

	_, err := svc.IngestRows(context.Background(), "january.xlsx", headers, rows)
	require.NoError(t, err)

	_, err = svc.IngestRows(context.Background(), "january.xlsx", headers, rows)
	assert.ErrorIs(t, err, record.ErrDuplicateFile)
	assert.ErrorContains(t, err, "january.xlsx")
}

func TestIngestRows_StoredDuplicatesDropped(t *testing.T) {
	t.Parallel()

	svc, records, files := newTestService()
	headers, rows := leaveRows()

	_, err := svc.IngestRows(context.Background(), "january.xlsx", headers, rows)
	require.NoError(t, err)

	// Same rows under a new file name: nothing new, file still marked.
	result, err := svc.IngestRows(context.Background(), "january-copy.xlsx", headers, rows)
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewRecords)
	assert.Equal(t, 2, result.DuplicateCount)
	assert.Len(t, records.records, 2)
	assert.Equal(t, []string{"january.xlsx", "january-copy.xlsx"}, files.names)
}

func TestIngestRows_InFileDuplicatesCountedOnce(t *testing.T) {
	t.Parallel()

	svc, records, _ := newTestService()
	headers, rows := leaveRows()
	rows = append(rows, rows[0])

	result, err := svc.IngestRows(context.Background(), "january.xlsx", headers, rows)

	require.NoError(t, err)
	assert.Equal(t, 2, result.NewRecords)
	assert.Equal(t, 1, result.DuplicateCount)
	assert.Len(t, records.records, 2)
}

func TestIngestRows_EmptyInput(t *testing.T) {
	t.Parallel()

	svc, _, files := newTestService()

	_, err := svc.IngestRows(context.Background(), "empty.xlsx", nil, nil)
	assert.ErrorIs(t, err, record.ErrEmptyInput)

	// Rows that classify but all fail the date-and-type gate count as empty
	// too, and the file is not marked processed.
	headers := []string{"الاسم", "التاريخ", "النوع"}
	rows := []record.RawRow{
		{
			"الاسم":   record.TextCell("احمد سمير محمد"),
			"التاريخ": record.TextCell("05-01-2024"),
			"النوع":   record.TextCell("   "),
		},
		{
			"الاسم": record.TextCell("باسم عباس حسين"),
			"النوع": record.TextCell("اجازة اعتيادية"),
		},
	}
	_, err = svc.IngestRows(context.Background(), "gaps.xlsx", headers, rows)
	assert.ErrorIs(t, err, record.ErrEmptyInput)
	assert.Empty(t, files.names)
}

package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, build func(f *excelize.File)) *Workbook {
	t.Helper()

	f := excelize.NewFile()
	build(f)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	wb, err := OpenReader(&buf)
	require.NoError(t, err)
	return wb
}

func TestOpenReader_TypedCells(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, func(f *excelize.File) {
		require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"الاسم", "التاريخ", "القيمة"}))
		require.NoError(t, f.SetCellValue("Sheet1", "A2", "احمد سمير محمد"))
		require.NoError(t, f.SetCellValue("Sheet1", "B2", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, f.SetCellValue("Sheet1", "C2", 2.5))
	})

	require.Equal(t, []string{"الاسم", "التاريخ", "القيمة"}, wb.Headers)
	require.Len(t, wb.Rows, 1)

	row := wb.Rows[0]
	assert.Equal(t, record.KindText, row["الاسم"].Kind)
	assert.Equal(t, "احمد سمير محمد", row["الاسم"].Text)

	require.Equal(t, record.KindDate, row["التاريخ"].Kind)
	assert.Equal(t, "15-01-2024", row["التاريخ"].Time.Format("02-01-2006"))

	require.Equal(t, record.KindNumber, row["القيمة"].Kind)
	assert.Equal(t, 2.5, row["القيمة"].Number)
}

func TestOpenReader_FlattensSheetsKeepsFirstHeaders(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, func(f *excelize.File) {
		require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"الاسم", "نوع الاجازة"}))
		require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"احمد سمير محمد", "اجازة اعتيادية"}))

		_, err := f.NewSheet("Sheet2")
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet2", "A1", &[]any{"الاسم", "نوع الاجازة"}))
		require.NoError(t, f.SetSheetRow("Sheet2", "A2", &[]any{"باسم عباس حسين", "اجازة مرضية"}))
	})

	assert.Equal(t, []string{"الاسم", "نوع الاجازة"}, wb.Headers)
	require.Len(t, wb.Rows, 2)
	assert.Equal(t, "احمد سمير محمد", wb.Rows[0]["الاسم"].Text)
	assert.Equal(t, "اجازة مرضية", wb.Rows[1]["نوع الاجازة"].Text)
}

func TestOpenReader_SkipsHeaderOnlySheets(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, func(f *excelize.File) {
		require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"الاسم", "التاريخ"}))
	})

	assert.Nil(t, wb.Headers)
	assert.Empty(t, wb.Rows)
}

func TestLooksLikeDateFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, looksLikeDateFormat("dd-mm-yyyy"))
	assert.True(t, looksLikeDateFormat(`[$-409]d\-mmm\-yy`))
	assert.False(t, looksLikeDateFormat("#,##0.00"))
	assert.False(t, looksLikeDateFormat(`0.00" m"`))
}

package sheet

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAndClean_IdentifiesColumnsByContent(t *testing.T) {
	t.Parallel()

	// Arrange: generic header labels, roles only recoverable from content.
	headers := []string{"A", "B", "C", "D", "E"}
	rows := []record.RawRow{
		{
			"A": record.NumberCell(1),
			"B": record.TextCell("احمد سمير محمد"),
			"C": record.DateCell(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
			"D": record.TextCell("الاثنين"),
			"E": record.TextCell("اجازة اعتيادية"),
		},
		{
			"A": record.NumberCell(2),
			"C": record.TextCell("16/01/2024"),
			"D": record.TextCell("الثلاثاء"),
			"E": record.TextCell("اجازة مرضية"),
		},
	}

	// Act
	records, cleanHeaders, err := NewService(nil).ClassifyAndClean(headers, rows)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, record.CanonicalHeaders, cleanHeaders)
	require.Len(t, records, 2)
	// Column A ends up as the value column: its small whole numbers score
	// for both the value and id roles, and nothing else competes.
	assert.Equal(t, record.CanonicalRecord{
		Name: "احمد سمير محمد", Date: "15-01-2024", Weekday: "الاثنين", Type: "اجازة اعتيادية", Value: "1",
	}, records[0])
	// Second row has no name cell: the previous name carries forward.
	assert.Equal(t, record.CanonicalRecord{
		Name: "احمد سمير محمد", Date: "16/01/2024", Weekday: "الثلاثاء", Type: "اجازة مرضية", Value: "2",
	}, records[1])
}

func TestClassifyAndClean_MissingColumns(t *testing.T) {
	t.Parallel()

	headers := []string{"A", "B"}
	rows := []record.RawRow{
		{"A": record.NumberCell(1), "B": record.TextCell("الاحد")},
	}

	_, _, err := NewService(nil).ClassifyAndClean(headers, rows)

	var missing *record.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"الاسم", "التاريخ", "نوع الاجازة"}, missing.Labels)
	assert.Contains(t, missing.Error(), "'الاسم'، 'التاريخ'، 'نوع الاجازة'")
}

func TestClassifyAndClean_SerialAndSmallNumberDates(t *testing.T) {
	t.Parallel()

	headers := []string{"الاسم", "التاريخ", "النوع"}
	rows := []record.RawRow{
		{
			"الاسم":   record.TextCell("باسم عباس حسين"),
			"التاريخ": record.TextCell("05-01-2024"),
			"النوع":   record.TextCell("اجازة اعتيادية"),
		},
		{
			// Serial 45292 is 2024-01-01.
			"التاريخ": record.NumberCell(45292),
			"النوع":   record.TextCell("اجازة زمنية"),
		},
	}

	records, _, err := NewService(nil).ClassifyAndClean(headers, rows)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "05-01-2024", records[0].Date)
	assert.Equal(t, "01-01-2024", records[1].Date)
}

func TestClassifyAndClean_RowsWithoutDateOrTypeAreDropped(t *testing.T) {
	t.Parallel()

	headers := []string{"الاسم", "التاريخ", "النوع"}
	rows := []record.RawRow{
		{
			"الاسم": record.TextCell("باسم عباس حسين"),
			"النوع": record.TextCell("اجازة اعتيادية"),
		},
		{
			"التاريخ": record.TextCell("05-01-2024"),
			"النوع":   record.TextCell("   "),
		},
		{
			"التاريخ": record.TextCell("06-01-2024"),
			"النوع":   record.TextCell("اجازة مرضية"),
		},
	}

	records, _, err := NewService(nil).ClassifyAndClean(headers, rows)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "06-01-2024", records[0].Date)
	assert.Equal(t, "باسم عباس حسين", records[0].Name)
}

func TestClassifyAndClean_DecimalValuesOutweighWholeHours(t *testing.T) {
	t.Parallel()

	// Both columns hold plausible hour counts; the decimal one must win the
	// value role and the whole-number one must not be claimed at all.
	headers := []string{"الاسم", "التاريخ", "النوع", "تسلسل", "ساعات"}
	rows := []record.RawRow{
		{
			"الاسم":   record.TextCell("احمد سمير محمد"),
			"التاريخ": record.TextCell("05-01-2024"),
			"النوع":   record.TextCell("زمنية"),
			"تسلسل":   record.NumberCell(101),
			"ساعات":   record.NumberCell(2.5),
		},
	}

	records, _, err := NewService(nil).ClassifyAndClean(headers, rows)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2.5", records[0].Value)
}

func TestClassifyAndClean_ReprocessingOutputIsStable(t *testing.T) {
	t.Parallel()

	headers := []string{"الاسم", "التاريخ", "النوع", "اليوم", "القيمة"}
	rows := []record.RawRow{
		{
			"الاسم":   record.TextCell("احمد سمير محمد"),
			"التاريخ": record.TextCell("05-01-2024"),
			"النوع":   record.TextCell("اجازة اعتيادية"),
			"اليوم":   record.TextCell("الخميس"),
			"القيمة":  record.NumberCell(1),
		},
		{
			"التاريخ": record.TextCell("07-01-2024"),
			"النوع":   record.TextCell("زمنية"),
			"القيمة":  record.NumberCell(3.5),
		},
	}

	svc := NewService(nil)
	first, cleanHeaders, err := svc.ClassifyAndClean(headers, rows)
	require.NoError(t, err)

	// Feed the cleaned output back in as raw rows.
	again := make([]record.RawRow, len(first))
	for i, rec := range first {
		again[i] = record.RawRow{
			"الاسم":       record.TextCell(rec.Name),
			"التاريخ":     record.TextCell(rec.Date),
			"يوم العمل":   record.TextCell(rec.Weekday),
			"نوع الاجازة": record.TextCell(rec.Type),
			"القيمة":      record.TextCell(rec.Value),
		}
	}

	second, _, err := svc.ClassifyAndClean(cleanHeaders, again)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

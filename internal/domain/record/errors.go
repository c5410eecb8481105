package record

import (
	"errors"
	"strings"
)

var (
	ErrEmptyInput    = errors.New("الملف لا يحتوي على بيانات صالحة")
	ErrDuplicateFile = errors.New("تمت معالجة هذا الملف مسبقًا")
)

// MissingColumnsError reports that required columns could not be identified
// in the sheet. Labels holds the Arabic role labels, in the fixed order
// name, date, type.
type MissingColumnsError struct {
	Labels []string
}

func (e *MissingColumnsError) Error() string {
	quoted := make([]string, len(e.Labels))
	for i, l := range e.Labels {
		quoted[i] = "'" + l + "'"
	}
	return "لم نتمكن من تحديد الأعمدة التالية تلقائيًا: " + strings.Join(quoted, "، ") +
		". يرجى التأكد من أن الملف يحتوي على هذه الأعمدة."
}

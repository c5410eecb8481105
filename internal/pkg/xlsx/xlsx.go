// Package xlsx reads leave workbooks into typed rows. Sheets are flattened
// into one row stream, keyed by the header row of the first sheet that
// carries data, so a workbook split across monthly tabs ingests as a unit.
package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/record"
	"github.com/xuri/excelize/v2"
)

// Workbook is the flattened content of one spreadsheet file.
type Workbook struct {
	Headers []string
	Rows    []record.RawRow
}

// Open reads the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return read(f)
}

// OpenReader reads a workbook from r.
func OpenReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return read(f)
}

func read(f *excelize.File) (*Workbook, error) {
	wb := &Workbook{}

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		if len(rows) < 2 {
			continue
		}

		headers := rows[0]
		if wb.Headers == nil {
			for _, h := range headers {
				if h != "" {
					wb.Headers = append(wb.Headers, h)
				}
			}
		}

		for r := 1; r < len(rows); r++ {
			row := record.RawRow{}
			for c, h := range headers {
				if h == "" || c >= len(rows[r]) || rows[r][c] == "" {
					continue
				}
				axis, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return nil, fmt.Errorf("sheet %q cell (%d,%d): %w", sheet, r+1, c+1, err)
				}
				row[h] = typedCell(f, sheet, axis, rows[r][c])
			}
			wb.Rows = append(wb.Rows, row)
		}
	}

	return wb, nil
}

// typedCell maps a raw cell value to its typed form: strings stay text,
// numbers become numbers unless the cell carries a date style, in which case
// the serial value decodes through the 1900 date system.
func typedCell(f *excelize.File, sheet, axis, raw string) record.Cell {
	ct, err := f.GetCellType(sheet, axis)
	if err == nil {
		switch ct {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
			return record.TextCell(raw)
		case excelize.CellTypeBool:
			if raw == "1" {
				return record.NumberCell(1)
			}
			return record.NumberCell(0)
		}
	}

	n, perr := strconv.ParseFloat(raw, 64)
	if perr != nil {
		return record.TextCell(raw)
	}

	if isDateStyled(f, sheet, axis) {
		if t, derr := excelize.ExcelDateToTime(n, false); derr == nil {
			return record.DateCell(t)
		}
	}
	return record.NumberCell(n)
}

// Built-in number formats that render as dates or times.
var builtInDateFormats = func() map[int]bool {
	m := map[int]bool{45: true, 46: true, 47: true}
	for id := 14; id <= 22; id++ {
		m[id] = true
	}
	for id := 27; id <= 36; id++ {
		m[id] = true
	}
	for id := 50; id <= 58; id++ {
		m[id] = true
	}
	return m
}()

func isDateStyled(f *excelize.File, sheet, axis string) bool {
	styleID, err := f.GetCellStyle(sheet, axis)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if builtInDateFormats[style.NumFmt] {
		return true
	}
	if style.CustomNumFmt != nil {
		return looksLikeDateFormat(*style.CustomNumFmt)
	}
	return false
}

// looksLikeDateFormat reports whether a custom format code contains date or
// time tokens, ignoring quoted literals and bracketed sections.
func looksLikeDateFormat(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range code {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == '[' && !inQuote:
			inBracket = true
		case r == ']' && !inQuote:
			inBracket = false
		case !inQuote && !inBracket:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ymdh")
}

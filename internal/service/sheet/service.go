// Package sheet turns messy spreadsheet rows into canonical leave records.
// Columns are identified by content, not by their header labels, because the
// source files rarely agree on naming or layout.
package sheet

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/record"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/dates"
)

var weekdays = []string{"الاحد", "الاثنين", "الثلاثاء", "الاربعاء", "الخميس", "الجمعة", "السبت"}

var typeKeywords = []string{"اجازة", "زمنية", "رصد"}

var dateLike = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2,4}$`)

// sampleSize caps how many rows feed the column scores.
const sampleSize = 50

type role int

const (
	roleName role = iota
	roleDate
	roleDay
	roleType
	roleValue
	roleID
	roleOther
	roleCount
)

type Service struct {
	log *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{log: log}
}

// columnMap holds the header chosen for each role. Name, Date and Type are
// always set; Day and Value may be empty.
type columnMap struct {
	Name, Date, Day, Type, Value string
}

// ClassifyAndClean identifies the role of each column, then rewrites every
// row into the canonical record shape. Headers must be in sheet column
// order; ties between equally scored columns go to the leftmost one.
func (s *Service) ClassifyAndClean(headers []string, rows []record.RawRow) ([]record.CanonicalRecord, []string, error) {
	if len(rows) == 0 {
		return nil, nil, nil
	}

	cols, err := s.classify(headers, rows)
	if err != nil {
		return nil, nil, err
	}

	s.log.Debug("columns identified",
		slog.String("name", cols.Name),
		slog.String("date", cols.Date),
		slog.String("type", cols.Type),
		slog.String("day", cols.Day),
		slog.String("value", cols.Value),
	)

	return s.clean(cols, rows), record.CanonicalHeaders, nil
}

func (s *Service) classify(headers []string, rows []record.RawRow) (columnMap, error) {
	scores := make(map[string]*[roleCount]int, len(headers))
	for _, h := range headers {
		scores[h] = &[roleCount]int{}
	}

	sample := rows
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	for _, row := range sample {
		for _, h := range headers {
			scoreCell(scores[h], row[h])
		}
	}

	used := map[string]bool{}
	pick := func(r role) string {
		best, max := "", 0
		for _, h := range headers {
			if used[h] {
				continue
			}
			if scores[h][r] > max {
				max = scores[h][r]
				best = h
			}
		}
		if best != "" {
			used[best] = true
		}
		return best
	}

	// Assignment order matters: earlier roles claim contested columns first.
	cols := columnMap{}
	cols.Date = pick(roleDate)
	cols.Type = pick(roleType)
	cols.Name = pick(roleName)
	cols.Day = pick(roleDay)
	cols.Value = pick(roleValue)

	var missing []string
	if cols.Name == "" {
		missing = append(missing, "الاسم")
	}
	if cols.Date == "" {
		missing = append(missing, "التاريخ")
	}
	if cols.Type == "" {
		missing = append(missing, "نوع الاجازة")
	}
	if len(missing) > 0 {
		return columnMap{}, &record.MissingColumnsError{Labels: missing}
	}
	return cols, nil
}

// scoreCell votes one cell toward the roles its content resembles. The id
// role only ever absorbs votes; it is never assigned to a column, which
// keeps sequence-number columns from being mistaken for hour values.
func scoreCell(sc *[roleCount]int, c record.Cell) {
	if c.Kind == record.KindEmpty {
		return
	}
	valueStr := strings.TrimSpace(c.Render())
	if valueStr == "" {
		return
	}

	switch {
	case c.Kind == record.KindDate || dateLike.MatchString(valueStr):
		sc[roleDate]++
	case isWeekday(valueStr):
		sc[roleDay]++
	case containsKeyword(valueStr):
		sc[roleType]++
	default:
		if n, err := strconv.ParseFloat(valueStr, 64); err == nil {
			if strings.Contains(valueStr, ".") {
				sc[roleValue] += 3
				return
			}
			if n > 0 && n <= 24 {
				sc[roleValue]++
			}
			if n > 24 {
				sc[roleID] += 2
			} else if n >= 1 {
				sc[roleID]++
			}
			return
		}
		if strings.Contains(valueStr, " ") && utf8.RuneCountInString(valueStr) > 5 {
			sc[roleName]++
			return
		}
		sc[roleOther]++
	}
}

func isWeekday(s string) bool {
	for _, d := range weekdays {
		if s == d {
			return true
		}
	}
	return false
}

func containsKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range typeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// clean walks every row, carrying the last seen employee name forward over
// the merged-cell gaps the source files leave, and keeps only rows that have
// both a date and a type.
func (s *Service) clean(cols columnMap, rows []record.RawRow) []record.CanonicalRecord {
	var out []record.CanonicalRecord
	currentName := ""

	for _, row := range rows {
		if name := strings.TrimSpace(row[cols.Name].Render()); name != "" {
			currentName = name
		}

		dateCell := row[cols.Date]
		leaveType := strings.TrimSpace(row[cols.Type].Render())
		if !dateCell.Present() || leaveType == "" {
			continue
		}

		rec := record.CanonicalRecord{
			Name: currentName,
			Date: formatDate(dateCell),
			Type: leaveType,
		}
		if cols.Day != "" && row[cols.Day].Present() {
			rec.Weekday = row[cols.Day].Render()
		}
		if cols.Value != "" && row[cols.Value].Kind != record.KindEmpty {
			rec.Value = row[cols.Value].Render()
		}
		out = append(out, rec)
	}

	return out
}

func formatDate(c record.Cell) string {
	switch c.Kind {
	case record.KindDate:
		return dates.FormatDMY(c.Time)
	case record.KindNumber:
		if c.Number > 1 {
			return dates.FormatDMY(dates.FromSerial(c.Number))
		}
	}
	return c.Render()
}

package record

import (
	"strconv"
	"strings"
	"time"
)

// CellKind discriminates the value a spreadsheet cell carries.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
	KindDate
)

// Cell is a single typed spreadsheet cell. Exactly one of Text, Number and
// Time is meaningful, selected by Kind.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Time   time.Time
}

func TextCell(s string) Cell    { return Cell{Kind: KindText, Text: s} }
func NumberCell(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }
func DateCell(t time.Time) Cell { return Cell{Kind: KindDate, Time: t} }

// Present reports whether the cell carries usable content: dates always do,
// numbers when non-zero, text when non-blank.
func (c Cell) Present() bool {
	switch c.Kind {
	case KindDate:
		return true
	case KindNumber:
		return c.Number != 0
	case KindText:
		return strings.TrimSpace(c.Text) != ""
	}
	return false
}

// Render stringifies the cell the way it is written into a canonical record.
func (c Cell) Render() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindDate:
		return c.Time.UTC().Format("02-01-2006")
	}
	return ""
}

// RawRow is one spreadsheet row keyed by header label. Column order is not
// recoverable from the map and travels alongside as a header slice.
type RawRow map[string]Cell

// CanonicalRecord is one cleaned leave entry.
type CanonicalRecord struct {
	Name    string `json:"الاسم"`
	Date    string `json:"التاريخ"`
	Weekday string `json:"يوم العمل"`
	Type    string `json:"نوع الاجازة"`
	Value   string `json:"القيمة"`
}

// Key is the composite identity used for duplicate detection.
func (r CanonicalRecord) Key() string {
	return r.Name + "|" + r.Date + "|" + r.Type + "|" + r.Value
}

// Canonical output column order.
var CanonicalHeaders = []string{"الاسم", "التاريخ", "يوم العمل", "نوع الاجازة", "القيمة"}

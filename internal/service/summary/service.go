// Package summary aggregates canonical leave records into per-employee
// summaries, ranked views and monthly balance reports.
package summary

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Leave type labels. The hourly input label is coalesced from any type
// starting with the hourly prefix; the hourly summary label is what the
// aggregation emits for the converted total.
const (
	TypeRegular       = "اجازة اعتيادية"
	TypeSick          = "اجازة مرضية"
	TypeHourly        = "اجازة زمنية"
	TypeHourlySummary = "ملخص الزمنيات"

	hourlyPrefix   = "زمنية"
	sickMarker     = "مرضية"
	extendedMarker = "طويلة"
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

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	leadingFloat  = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// parseValue reads the leading numeric prefix of a value string, so "7"
// and "7 ساعات" both read as 7. Anything else coerces to 0.
func parseValue(s string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return n
}

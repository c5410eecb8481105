package summary

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/employee"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/arabic"
)

// Resolver maps the spelling variants found in sheets onto canonical roster
// names. Results are memoized, so a resolver is created per run and not
// shared across roster changes.
type Resolver struct {
	roster     []employee.Employee
	normalized map[string]string
	cache      map[string]string
}

func NewResolver(roster []employee.Employee) *Resolver {
	normalized := make(map[string]string, len(roster))
	for _, emp := range roster {
		normalized[arabic.NormalizeName(emp.Name)] = emp.Name
	}
	return &Resolver{
		roster:     roster,
		normalized: normalized,
		cache:      make(map[string]string),
	}
}

// Resolve returns the canonical roster name for sheetName, or sheetName
// itself when no roster entry matches.
func (r *Resolver) Resolve(sheetName string) string {
	if sheetName == "" {
		return sheetName
	}
	if hit, ok := r.cache[sheetName]; ok {
		return hit
	}
	resolved := r.resolve(sheetName)
	r.cache[sheetName] = resolved
	return resolved
}

func (r *Resolver) resolve(sheetName string) string {
	norm := arabic.NormalizeName(sheetName)

	if canonical, ok := r.normalized[norm]; ok {
		return canonical
	}

	var matches []string
	for _, emp := range r.roster {
		empNorm := arabic.NormalizeName(emp.Name)
		if strings.Contains(empNorm, norm) || strings.Contains(norm, empNorm) {
			matches = append(matches, emp.Name)
		}
	}

	switch len(matches) {
	case 0:
		return sheetName
	case 1:
		return matches[0]
	}

	// Several candidates contain (or are contained in) the sheet name: take
	// the one closest in length, keeping roster order on ties.
	normLen := utf8.RuneCountInString(norm)
	sort.SliceStable(matches, func(i, j int) bool {
		di := abs(utf8.RuneCountInString(arabic.NormalizeName(matches[i])) - normLen)
		dj := abs(utf8.RuneCountInString(arabic.NormalizeName(matches[j])) - normLen)
		return di < dj
	})
	return matches[0]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

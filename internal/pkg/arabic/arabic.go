// Package arabic holds the locale helpers the leave extractor needs:
// Eastern-Arabic numeral rendering, day-count grammar and the name
// normalization used when matching sheet names against the roster.
package arabic

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var easternDigits = [10]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}

// Numerals replaces every ASCII digit in s with its Eastern-Arabic form.
func Numerals(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(easternDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NumeralsInt renders n with Eastern-Arabic digits.
func NumeralsInt(n int) string {
	return Numerals(strconv.Itoa(n))
}

// NumeralsFloat renders f with Eastern-Arabic digits, using the shortest
// decimal representation (2 -> "٢", 2.5 -> "٢.٥").
func NumeralsFloat(f float64) string {
	return Numerals(strconv.FormatFloat(f, 'f', -1, 64))
}

var letterFolds = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ة", "ه",
	"ى", "ي",
)

// NormalizeName produces the canonical comparison form of an employee name:
// all whitespace removed, Alef variants folded to plain Alef, Teh Marbuta to
// Heh and Alef Maksura to Yeh.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return letterFolds.Replace(b.String())
}

var dayWords = [8]string{"ثلاثة", "أربعة", "خمسة", "ستة", "سبعة", "ثمانية", "تسعة", "عشرة"}

// FormatDays renders a day count as a grammatically correct Arabic phrase.
func FormatDays(count int) string {
	switch {
	case count <= 0:
		return "٠ يوم"
	case count == 1:
		return "يوم واحد"
	case count == 2:
		return "يومان"
	case count <= 10:
		return dayWords[count-3] + " أيام"
	}
	// Above ten the count takes the singular accusative noun.
	return NumeralsInt(count) + " يومًا"
}

// FormatDaysHours renders a combined day/hour total, omitting zero parts.
func FormatDaysHours(days int, hours float64) string {
	var parts []string
	if days > 0 {
		parts = append(parts, NumeralsInt(days)+" يوم")
	}
	if rounded := math.Round(hours*100) / 100; rounded > 0 {
		parts = append(parts, NumeralsFloat(rounded)+" ساعة")
	}
	if len(parts) == 0 {
		return "لا يوجد"
	}
	return strings.Join(parts, " و ")
}

// NewCollator returns a collator for Arabic dictionary order. Collators carry
// internal buffers, so callers create one per run rather than sharing.
func NewCollator() *collate.Collator {
	return collate.New(language.Arabic)
}

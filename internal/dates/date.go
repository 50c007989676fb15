package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"travmatch/internal/text"
)

// A dateRule is one candidate grammar. Rules are tried strictly in slice
// order and the first one producing a valid calendar date wins; a rule whose
// regex matches but whose date fails validation is discarded, not fatal.
type dateRule struct {
	name  string
	re    *regexp.Regexp
	build func(m []string, now time.Time) (time.Time, bool)
}

var dateRules = []dateRule{
	{
		// 22 August / 22-Aug / 22/Aug
		name: "day-month-en",
		re:   regexp.MustCompile(`\b(\d{1,2})[ \-/]([A-Za-z]+)\b`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			mon, ok := gregMonths[strings.ToLower(m[2])]
			if !ok {
				return time.Time{}, false
			}
			d, _ := strconv.Atoi(m[1])
			return civilDate(now.Year(), mon, d)
		},
	},
	{
		// Aug 22 / August-22
		name: "month-day-en",
		re:   regexp.MustCompile(`\b([A-Za-z]+)[ \-](\d{1,2})\b`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			mon, ok := gregMonths[strings.ToLower(m[1])]
			if !ok {
				return time.Time{}, false
			}
			d, _ := strconv.Atoi(m[2])
			return civilDate(now.Year(), mon, d)
		},
	},
	{
		// 31 مرداد 1403 (Jalali; year optional). RE2's \b is ASCII-only, so
		// the month name is terminated by an explicit non-letter check to
		// keep it from matching inside a longer Persian word.
		name: "day-month-jalali",
		re:   regexp.MustCompile(`\b(\d{1,2})\s+(` + jalaliMonthAlt + `)(?:[^\p{L}]|$)\s*(\d{3,4})?`),
		build: func(m []string, _ time.Time) (time.Time, bool) {
			d, _ := strconv.Atoi(m[1])
			jm := jalaliMonths[m[2]]
			jy := fallbackJalaliYear
			if m[3] != "" {
				jy, _ = strconv.Atoi(m[3])
			}
			if d < 1 || d > 31 || (jm > 6 && d > 30) {
				return time.Time{}, false
			}
			gy, gm, gd := JalaliToGregorian(jy, jm, d)
			return civilDate(gy, gm, gd)
		},
	},
	{
		// 5 سپتامبر 2025 (Persian name of a Gregorian month; year optional).
		// Same explicit month terminator: مه (May) must not match inside مهر.
		name: "day-month-fa-greg",
		re:   regexp.MustCompile(`\b(\d{1,2})\s+(` + persianGregMonthAlt + `)(?:[^\p{L}]|$)\s*(\d{3,4})?`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			d, _ := strconv.Atoi(m[1])
			y := now.Year()
			if m[3] != "" {
				y, _ = strconv.Atoi(m[3])
			}
			return civilDate(y, persianGregMonths[m[2]], d)
		},
	},
	{
		// سپتامبر 5 2025 (month first; year optional). The required whitespace
		// after the month is its terminator; the leading guard keeps the name
		// from matching as the tail of a longer word.
		name: "month-day-fa-greg",
		re:   regexp.MustCompile(`(?:^|[^\p{L}])(` + persianGregMonthAlt + `)\s+(\d{1,2})(?:\s+(\d{3,4}))?`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			d, _ := strconv.Atoi(m[2])
			y := now.Year()
			if m[3] != "" {
				y, _ = strconv.Atoi(m[3])
			}
			return civilDate(y, persianGregMonths[m[1]], d)
		},
	},
	{
		// 25/03, 03-25, 25/03/2026. Ambiguous day/month order is resolved
		// by the feed's long-standing heuristic: a value over 12 is the day.
		name: "numeric",
		re:   regexp.MustCompile(`\b(\d{1,2})[/\-](\d{1,2})(?:[/\-](\d{2,4}))?\b`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			y := now.Year()
			if m[3] != "" {
				y, _ = strconv.Atoi(m[3])
			}
			mm, dd := a, b
			if a > 12 {
				mm, dd = b, a
			}
			return civilDate(y, mm, dd)
		},
	},
}

// ParseDate parses a free-text date expression into a calendar date (UTC
// midnight). The boolean is false when no grammar matched; callers treat
// that as a valid "unknown", not a fault.
func ParseDate(s string) (time.Time, bool) {
	return parseDateAt(s, time.Now().UTC())
}

func parseDateAt(s string, now time.Time) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t := text.FoldDigits(text.Normalize(s))
	for _, rule := range dateRules {
		m := rule.re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		if d, ok := rule.build(m, now); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

// civilDate builds a UTC date and rejects out-of-range components (Go's
// time.Date silently normalizes, so day 31 in a 30-day month must be caught
// by round-tripping the fields).
func civilDate(y, m, d int) (time.Time, bool) {
	if m < 1 || m > 12 || d < 1 || d > 31 || y < 1 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

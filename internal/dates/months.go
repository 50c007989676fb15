// Package dates parses free-text date and time expressions from bilingual
// travel posts. Dates may be written against the Gregorian or the Persian
// (Jalali) solar calendar; grammars are tried in a fixed priority order and
// the first one that produces a valid calendar date wins.
package dates

// gregMonths maps English month names and abbreviations to month numbers.
var gregMonths = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
	"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6, "jul": 7, "aug": 8,
	"sep": 9, "sept": 9, "oct": 10, "nov": 11, "dec": 12,
}

// persianGregMonths maps the Persian names of Gregorian months.
var persianGregMonths = map[string]int{
	"ژانویه": 1, "فوریه": 2, "مارس": 3, "آوریل": 4, "مه": 5, "ژوئن": 6,
	"ژوئیه": 7, "جولای": 7, "اوت": 8, "آگوست": 8, "سپتامبر": 9,
	"اکتبر": 10, "نوامبر": 11, "دسامبر": 12,
}

// jalaliMonths maps Persian solar month names to Jalali month numbers.
var jalaliMonths = map[string]int{
	"فروردین": 1, "اردیبهشت": 2, "خرداد": 3, "تیر": 4, "مرداد": 5, "شهریور": 6,
	"مهر": 7, "آبان": 8, "آذر": 9, "دی": 10, "بهمن": 11, "اسفند": 12,
}

const (
	jalaliMonthAlt      = `فروردین|اردیبهشت|خرداد|تیر|مرداد|شهریور|مهر|آبان|آذر|دی|بهمن|اسفند`
	persianGregMonthAlt = `ژانویه|فوریه|مارس|آوریل|مه|ژوئن|ژوئیه|جولای|اوت|آگوست|سپتامبر|اکتبر|نوامبر|دسامبر`
)

// fallbackJalaliYear is assumed when a Jalali date omits its year.
const fallbackJalaliYear = 1403

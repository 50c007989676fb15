package trips

import "regexp"

// Labeled-field patterns. Each anchors to a line start and captures the rest
// of the line after the label's separator. Both half-width and full-width
// colons appear in the wild; date and time labels are often written without
// any colon at all.
var (
	originRe      = regexp.MustCompile(`(?i)(?:^|\n)[ ]*(?:[#\s]*(?:مبدا|مبدأ)|origin|from)[ ]*[:：][ ]*([^\n]+)`)
	destinationRe = regexp.MustCompile(`(?i)(?:^|\n)[ ]*(?:[#\s]*مقصد|destination|to)[ ]*[:：][ ]*([^\n]+)`)
	dateRe        = regexp.MustCompile(`(?i)(?:^|\n)[ ]*(?:تاریخ(?:\s*پرواز)?|date|flight\s*date|departure\s*date)[ ]*[:：]?[ ]*([^\n]+)`)
	timeRe        = regexp.MustCompile(`(?i)(?:^|\n)[ ]*(?:زمان(?:\s*پرواز)?|ساعت|time|departure\s*time|at)[ ]*[:：]?[ ]*([^\n]+)`)
	airlineRe     = regexp.MustCompile(`(?i)(?:^|\n)[ ]*(?:پرواز|airline)[ ]*[:：][ ]*([^\n]+)`)
)

// Inline route fallbacks, one per language, used only when a labeled field
// stayed empty: "from Tehran to Toronto" / "از مشهد به کلگری".
var (
	fromToEnRe = regexp.MustCompile(`(?i)\bfrom\s+(.+?)\s+to\s+(.+?)(?:[\s.,;]|$)`)
	fromToFaRe = regexp.MustCompile(`(?:^|[\s.,،؛])از\s+(.+?)\s+به\s+(.+?)(?:[\s.,؛،]|$)`)
)

// airlineWordsRe recognizes the airline names this feed actually mentions;
// when a captured airline line contains one, only the keyword is kept.
var airlineWordsRe = regexp.MustCompile(
	`(?i)امارات|قطر|ترکیش|لوفتانزا|ایران\s?ایر|قشم|ماهان|عمان|اروپا|Austrian|Turkish|Qatar|Emirates|Lufthansa|Oman|Iran\s?Air|Mahan`)

// cityAreaRe splits "City (Area)" captures, full-width parens included.
var cityAreaRe = regexp.MustCompile(`(.+?)\s*[\(（]\s*([^)）]+)\s*[\)）]`)

package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"travmatch/internal/text"
)

var (
	// 24-hour H:MM; the Persian decimal separator and a dot are accepted.
	time24Re = regexp.MustCompile(`\b([01]?\d|2[0-3])[:٫.]([0-5]\d)\b`)
	// 12-hour H[:MM] with am/pm, dotted abbreviations included. The token
	// must end at a non-letter so "am" in "ample" is not a meridiem.
	time12Re = regexp.MustCompile(`\b(\d{1,2})(?::([0-5]\d))?\s*([ap])\.?m\.?(?:[^\p{L}]|$)`)
	// H[:MM] with a daypart word: صبح (morning), عصر/شب (afternoon/evening).
	// Same terminator: شب must not match inside شبکه.
	timeDaypartRe = regexp.MustCompile(`\b(\d{1,2})(?::([0-5]\d))?\s*(صبح|عصر|شب)(?:[^\p{L}]|$)`)
	// Marker lookahead for the 24-hour rule: "9:30 pm" must not be taken as
	// 09:30 just because H:MM matched first.
	meridiemAfterRe = regexp.MustCompile(`^\s*(?:[ap]\.?m\.?|صبح|عصر|شب)(?:[^\p{L}]|$)`)
)

// ParseTime parses a free-text time expression into zero-padded "HH:MM".
// The boolean is false when nothing time-shaped was found.
func ParseTime(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	t := strings.ToLower(text.FoldDigits(text.Normalize(s)))

	if loc := time24Re.FindStringSubmatchIndex(t); loc != nil {
		if !meridiemAfterRe.MatchString(t[loc[1]:]) {
			h, _ := strconv.Atoi(t[loc[2]:loc[3]])
			mn, _ := strconv.Atoi(t[loc[4]:loc[5]])
			return clock(h, mn), true
		}
	}

	if m := time12Re.FindStringSubmatch(t); m != nil {
		h, _ := strconv.Atoi(m[1])
		mn := 0
		if m[2] != "" {
			mn, _ = strconv.Atoi(m[2])
		}
		if h >= 1 && h <= 12 {
			if m[3] == "p" && h != 12 {
				h += 12
			}
			if m[3] == "a" && h == 12 {
				h = 0
			}
			return clock(h, mn), true
		}
	}

	if m := timeDaypartRe.FindStringSubmatch(t); m != nil {
		h, _ := strconv.Atoi(m[1])
		mn := 0
		if m[2] != "" {
			mn, _ = strconv.Atoi(m[2])
		}
		if h >= 0 && h <= 12 {
			switch m[3] {
			case "عصر", "شب":
				if h != 12 {
					h += 12
				}
			case "صبح":
				if h == 12 {
					h = 0
				}
			}
			return clock(h, mn), true
		}
	}

	return "", false
}

func clock(h, mn int) string {
	return fmt.Sprintf("%02d:%02d", h, mn)
}

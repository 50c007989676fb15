package text

import (
	"regexp"
	"sort"
)

var (
	handleRe  = regexp.MustCompile(`@\w+`)
	hashtagRe = regexp.MustCompile(`#\S+`)
	// Generic international phone shape: optional +, 9-17 digits with
	// interior spaces, dashes and parens allowed (Iran +98, CA +1, ...).
	phoneRe = regexp.MustCompile(`\+?\d[\d \-()]{8,16}\d`)
)

// Contacts holds the contact tokens found in a message. Each slice is
// deduplicated and sorted lexicographically so serialized output is
// deterministic.
type Contacts struct {
	Handles []string
	Phones  []string
	Tags    []string
}

// ExtractContacts pulls @handles, phone numbers and #hashtags from text.
// Digits are folded to ASCII before phone matching, so Persian-digit numbers
// are recognized. No match yields empty slices, never an error.
func ExtractContacts(s string) Contacts {
	folded := FoldDigits(s)
	return Contacts{
		Handles: uniqueSorted(handleRe.FindAllString(folded, -1)),
		Phones:  uniqueSorted(phoneRe.FindAllString(folded, -1)),
		Tags:    uniqueSorted(hashtagRe.FindAllString(folded, -1)),
	}
}

func uniqueSorted(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

package geo

import (
	"regexp"
	"strings"
)

var (
	parentheticalRe = regexp.MustCompile(`[\(（][^)）]*[\)）]`)
	fillerWordRe    = regexp.MustCompile(`\b(?:airport|intl|international)\b`)
	// Keep word characters and Arabic-script letters; everything else is noise.
	punctRe = regexp.MustCompile(`[^\w\x{0600}-\x{06FF} ]+`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Resolve maps a free-text place name to a 3-letter location code. The
// boolean is false when the name is unknown; an empty code is never returned
// as a "found" result.
func Resolve(name string) (string, bool) {
	code, ok := aliases[normalizeKey(name)]
	return code, ok
}

// ResolveEither tries the city token first, then the area token, taking the
// first one that resolves. Callers use this for city (area) captures.
func ResolveEither(city, area string) (string, bool) {
	if code, ok := Resolve(city); ok {
		return code, ok
	}
	return Resolve(area)
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = parentheticalRe.ReplaceAllString(s, " ")
	s = fillerWordRe.ReplaceAllString(s, " ")
	s = punctRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

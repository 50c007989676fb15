package trips

import (
	"regexp"
	"strings"

	"travmatch/internal/dates"
	"travmatch/internal/geo"
	"travmatch/internal/text"
)

// Extract parses one raw post body into a Record. Every step is independent
// and a miss just leaves its field empty; Extract is deterministic for a
// given input text.
func Extract(raw string) Record {
	t := text.Normalize(raw)

	rec := Record{
		RawText:  strings.ReplaceAll(t, "\n", " "),
		Language: "en",
	}
	if text.ContainsPersian(rec.RawText) {
		rec.Language = "fa"
	}

	contacts := text.ExtractContacts(t)
	rec.ContactHandles = contacts.Handles
	rec.ContactPhones = contacts.Phones
	rec.TypeTags = contacts.Tags
	rec.TypeTag = classify(contacts.Tags)

	// Labeled fields first.
	if m := originRe.FindStringSubmatch(t); m != nil {
		rec.OriginCity, rec.OriginArea = splitCityArea(m[1])
	}
	if m := destinationRe.FindStringSubmatch(t); m != nil {
		rec.DestinationCity, rec.DestinationArea = splitCityArea(m[1])
	}
	if m := dateRe.FindStringSubmatch(t); m != nil {
		rec.DateText = text.Normalize(m[1])
		if d, ok := dates.ParseDate(rec.DateText); ok {
			rec.Date = &d
		}
	}
	if m := timeRe.FindStringSubmatch(t); m != nil {
		if hm, ok := dates.ParseTime(m[1]); ok {
			rec.TimeText = hm
		} else {
			// Keep the operator-readable capture when nothing time-shaped
			// was found in it.
			rec.TimeText = text.Normalize(m[1])
		}
	}
	if m := airlineRe.FindStringSubmatch(t); m != nil {
		line := text.Normalize(m[1])
		if kw := airlineWordsRe.FindString(line); kw != "" {
			rec.Airline = text.Normalize(kw)
		} else {
			rec.Airline = line
		}
	}

	// Inline "from X to Y" fallbacks fill whatever is still missing.
	if rec.OriginCity == "" || rec.DestinationCity == "" {
		for _, re := range []*regexp.Regexp{fromToEnRe, fromToFaRe} {
			m := re.FindStringSubmatch(t)
			if m == nil {
				continue
			}
			if rec.OriginCity == "" {
				rec.OriginCity, rec.OriginArea = splitCityArea(m[1])
			}
			if rec.DestinationCity == "" {
				rec.DestinationCity, rec.DestinationArea = splitCityArea(m[2])
			}
			break
		}
	}

	if code, ok := geo.ResolveEither(rec.OriginCity, rec.OriginArea); ok {
		rec.OriginCode = code
	}
	if code, ok := geo.ResolveEither(rec.DestinationCity, rec.DestinationArea); ok {
		rec.DestinationCode = code
	}

	return rec
}

// classify derives the post type from its hashtags.
func classify(tags []string) string {
	for _, tag := range tags {
		if strings.Contains(tag, "مسافر") {
			return "traveler"
		}
	}
	for _, tag := range tags {
		if strings.Contains(tag, "قبول") {
			return "cargo-accept"
		}
	}
	return ""
}

// splitCityArea splits "City (Area)" into its parts; without a parenthetical
// the whole capture is the city and the area is empty.
func splitCityArea(s string) (city, area string) {
	s = text.Normalize(s)
	if m := cityAreaRe.FindStringSubmatch(s); m != nil {
		return text.Normalize(m[1]), text.Normalize(m[2])
	}
	return s, ""
}

// Package trips extracts structured travel-offer records from free-form
// bilingual (FA/EN) post text.
package trips

import "time"

// Record is the structured result of extracting one post. Every field is
// best-effort: a miss leaves the field empty and is never an error. Date is
// nil when no grammar produced a valid calendar date.
type Record struct {
	TypeTags []string `json:"type_tags,omitempty"`

	OriginCity      string `json:"origin_city,omitempty"`
	OriginArea      string `json:"origin_area,omitempty"`
	OriginCode      string `json:"origin_code,omitempty"`
	DestinationCity string `json:"destination_city,omitempty"`
	DestinationArea string `json:"destination_area,omitempty"`
	DestinationCode string `json:"destination_code,omitempty"`

	DateText string     `json:"flight_date_text,omitempty"`
	Date     *time.Time `json:"flight_date,omitempty"`
	TimeText string     `json:"flight_time_text,omitempty"`
	Airline  string     `json:"airline,omitempty"`

	ContactHandles []string `json:"contact_handles,omitempty"`
	ContactPhones  []string `json:"contact_phones,omitempty"`

	// RawText is the normalized body with newlines flattened, the form the
	// store keeps for snippet display and full-text search.
	RawText string `json:"raw_text"`

	// Language is "fa" when any Arabic-script character is present, else "en".
	Language string `json:"language"`

	// TypeTag classifies the post from its hashtags: "traveler",
	// "cargo-accept" or empty when neither keyword appears.
	TypeTag string `json:"type_tag,omitempty"`
}

// DateISO returns the parsed flight date as YYYY-MM-DD, or "" when unknown.
func (r *Record) DateISO() string {
	if r.Date == nil {
		return ""
	}
	return r.Date.Format("2006-01-02")
}

package dates

import "testing"

func TestParseTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // "" when nothing should match
	}{
		{"24h", "09:15", "09:15"},
		{"24h evening", "19:45", "19:45"},
		{"24h single digit", "9:30", "09:30"},
		{"12h pm", "9:30 pm", "21:30"},
		{"12h pm attached", "9:30pm", "21:30"},
		{"12h am", "9 am", "09:00"},
		{"12h dotted", "9 p.m.", "21:00"},
		{"noon", "12 pm", "12:00"},
		{"midnight", "12 am", "00:00"},
		{"daypart evening", "7 عصر", "19:00"},
		{"daypart night", "10 شب", "22:00"},
		{"daypart morning", "9 صبح", "09:00"},
		{"daypart noon morning", "12 صبح", "00:00"},
		{"daypart with minutes", "9:30 شب", "21:30"},
		{"persian digits", "۰۹:۱۵", "09:15"},
		{"meridiem prefix of word", "9 ample seats left", ""},
		{"daypart prefix of word", "10 شبکه", ""},
		{"24h before am-like word", "14:30 ample", "14:30"},
		{"no time", "به محض هماهنگی", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTime(tt.in)
			if tt.want == "" {
				if ok {
					t.Errorf("ParseTime(%q) = %q, want no match", tt.in, got)
				}
				return
			}
			if !ok {
				t.Fatalf("ParseTime(%q) did not match, want %q", tt.in, tt.want)
			}
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

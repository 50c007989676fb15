package text

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"collapse spaces", "a  \t b", "a b"},
		{"trim", "  hello  ", "hello"},
		{"zwnj", "می‌خواهم", "می خواهم"},
		{"bom", "\uFEFFhello", "hello"},
		{"keeps newlines", "a  b\nc  d", "a b\nc d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"  x ‌ y  ",
		"مبدا:   تهران\nمقصد: تورنتو",
		"a\t\tb  c",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestFoldDigits(t *testing.T) {
	got := FoldDigits("۰۹۱۲۳۴۵۶۷۸۹")
	if got != "09123456789" {
		t.Errorf("FoldDigits = %q, want %q", got, "09123456789")
	}
	got = FoldDigits("٤٢")
	if got != "42" {
		t.Errorf("FoldDigits(arabic-indic) = %q, want %q", got, "42")
	}
}

func TestContainsPersian(t *testing.T) {
	if !ContainsPersian("سلام world") {
		t.Error("expected Persian text to be detected")
	}
	if ContainsPersian("hello world") {
		t.Error("did not expect Persian in ASCII text")
	}
}

package geo

import "testing"

func TestResolveAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tehran", "THR"},
		{"تهران", "THR"},
		{"THR", "THR"},
		{"toronto", "YYZ"},
		{"تورنتو", "YYZ"},
		{"Pearson", "YYZ"},
		{"Toronto Pearson Airport", ""}, // multi-word name not in the table
		{"Vancouver Intl", "YVR"},
		{"vancouver international airport", "YVR"},
		{"IKA (Imam)", "IKA"},
		{"کلگری", "YYC"},
		{"istanbul", "IST"},
	}
	for _, tt := range tests {
		code, ok := Resolve(tt.in)
		if tt.want == "" {
			if ok {
				t.Errorf("Resolve(%q) = %q, want not found", tt.in, code)
			}
			continue
		}
		if !ok {
			t.Errorf("Resolve(%q) not found, want %q", tt.in, tt.want)
			continue
		}
		if code != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, code, tt.want)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	if code, ok := Resolve("Unknown City XYZ"); ok {
		t.Errorf("Resolve(unknown) = %q, want not found", code)
	}
	if _, ok := Resolve(""); ok {
		t.Error("Resolve(\"\") should not resolve")
	}
}

func TestResolveEither(t *testing.T) {
	code, ok := ResolveEither("somewhere", "تهران")
	if !ok || code != "THR" {
		t.Errorf("ResolveEither = %q, %v; want THR via area", code, ok)
	}
	code, ok = ResolveEither("Toronto", "North York")
	if !ok || code != "YYZ" {
		t.Errorf("ResolveEither = %q, %v; want YYZ via city", code, ok)
	}
	if _, ok := ResolveEither("nowhere", "also nowhere"); ok {
		t.Error("ResolveEither should report not found")
	}
}

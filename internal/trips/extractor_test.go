package trips

import (
	"reflect"
	"testing"
	"time"
)

const persianPost = `#مسافر
مبدا: تهران (نیلوفران)
مقصد: تورنتو (نورث یورک)
تاریخ پرواز: 31 مرداد 1403
ساعت: 09:15
پرواز: امارات
تماس: @user 09123456789`

func TestExtractPersianLabeledPost(t *testing.T) {
	rec := Extract(persianPost)

	if rec.OriginCity != "تهران" {
		t.Errorf("OriginCity = %q, want %q", rec.OriginCity, "تهران")
	}
	if rec.OriginArea != "نیلوفران" {
		t.Errorf("OriginArea = %q, want %q", rec.OriginArea, "نیلوفران")
	}
	if rec.OriginCode != "THR" {
		t.Errorf("OriginCode = %q, want %q", rec.OriginCode, "THR")
	}
	if rec.DestinationCity != "تورنتو" {
		t.Errorf("DestinationCity = %q, want %q", rec.DestinationCity, "تورنتو")
	}
	if rec.DestinationArea != "نورث یورک" {
		t.Errorf("DestinationArea = %q, want %q", rec.DestinationArea, "نورث یورک")
	}
	if rec.DestinationCode != "YYZ" {
		t.Errorf("DestinationCode = %q, want %q", rec.DestinationCode, "YYZ")
	}
	if rec.DateISO() != "2024-08-21" {
		t.Errorf("DateISO = %q, want %q", rec.DateISO(), "2024-08-21")
	}
	if rec.TimeText != "09:15" {
		t.Errorf("TimeText = %q, want %q", rec.TimeText, "09:15")
	}
	if rec.Airline != "امارات" {
		t.Errorf("Airline = %q, want %q", rec.Airline, "امارات")
	}
	if !reflect.DeepEqual(rec.ContactHandles, []string{"@user"}) {
		t.Errorf("ContactHandles = %v, want [@user]", rec.ContactHandles)
	}
	if !reflect.DeepEqual(rec.ContactPhones, []string{"09123456789"}) {
		t.Errorf("ContactPhones = %v, want [09123456789]", rec.ContactPhones)
	}
	if rec.TypeTag != "traveler" {
		t.Errorf("TypeTag = %q, want %q", rec.TypeTag, "traveler")
	}
	if rec.Language != "fa" {
		t.Errorf("Language = %q, want %q", rec.Language, "fa")
	}
}

func TestExtractEnglishInlinePost(t *testing.T) {
	rec := Extract(`Traveler available
from Tehran to Toronto
Flight date: 22 Aug
Time: 9:30 pm
Airline: Qatar`)

	if rec.OriginCity != "Tehran" {
		t.Errorf("OriginCity = %q, want %q", rec.OriginCity, "Tehran")
	}
	if rec.DestinationCity != "Toronto" {
		t.Errorf("DestinationCity = %q, want %q", rec.DestinationCity, "Toronto")
	}
	if rec.OriginCode != "THR" || rec.DestinationCode != "YYZ" {
		t.Errorf("codes = %q/%q, want THR/YYZ", rec.OriginCode, rec.DestinationCode)
	}

	wantDate := time.Date(time.Now().UTC().Year(), 8, 22, 0, 0, 0, 0, time.UTC)
	if rec.Date == nil || !rec.Date.Equal(wantDate) {
		t.Errorf("Date = %v, want %v", rec.Date, wantDate)
	}
	if rec.TimeText != "21:30" {
		t.Errorf("TimeText = %q, want %q", rec.TimeText, "21:30")
	}
	if rec.Airline != "Qatar" {
		t.Errorf("Airline = %q, want %q", rec.Airline, "Qatar")
	}
	if rec.TypeTag != "" {
		t.Errorf("TypeTag = %q, want empty", rec.TypeTag)
	}
	if rec.Language != "en" {
		t.Errorf("Language = %q, want %q", rec.Language, "en")
	}
}

func TestExtractPersianInlineRoute(t *testing.T) {
	rec := Extract("از مشهد به کلگری\nساعت 7 عصر\nتماس: @ali")

	if rec.OriginCity != "مشهد" {
		t.Errorf("OriginCity = %q, want %q", rec.OriginCity, "مشهد")
	}
	if rec.DestinationCity != "کلگری" {
		t.Errorf("DestinationCity = %q, want %q", rec.DestinationCity, "کلگری")
	}
	if rec.OriginCode != "MHD" || rec.DestinationCode != "YYC" {
		t.Errorf("codes = %q/%q, want MHD/YYC", rec.OriginCode, rec.DestinationCode)
	}
	if rec.TimeText != "19:00" {
		t.Errorf("TimeText = %q, want %q", rec.TimeText, "19:00")
	}
}

func TestExtractKeepsUnparsedTimeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ساعت: هماهنگی تلفنی", "هماهنگی تلفنی"},
		// Meridiem and daypart tokens are whole words; a prefix of a longer
		// word is not a time, so the raw capture survives.
		{"Time: 9 ample seats left", "9 ample seats left"},
		{"ساعت: 10 شبکه", "10 شبکه"},
	}
	for _, tt := range tests {
		rec := Extract(tt.in)
		if rec.TimeText != tt.want {
			t.Errorf("Extract(%q).TimeText = %q, want %q", tt.in, rec.TimeText, tt.want)
		}
	}
}

func TestExtractAirlineFallsBackToLine(t *testing.T) {
	rec := Extract("airline: Some Unknown Carrier")
	if rec.Airline != "Some Unknown Carrier" {
		t.Errorf("Airline = %q, want full line", rec.Airline)
	}
}

func TestExtractCargoTag(t *testing.T) {
	rec := Extract("#قبول_بار\nمبدا: تهران\nمقصد: ونکوور")
	if rec.TypeTag != "cargo-accept" {
		t.Errorf("TypeTag = %q, want %q", rec.TypeTag, "cargo-accept")
	}
	if rec.DestinationCode != "YVR" {
		t.Errorf("DestinationCode = %q, want %q", rec.DestinationCode, "YVR")
	}
}

func TestExtractDeterministic(t *testing.T) {
	a := Extract(persianPost)
	b := Extract(persianPost)
	if !reflect.DeepEqual(a, b) {
		t.Error("Extract is not deterministic for identical input")
	}
}

func TestExtractEmptyFieldsStayEmpty(t *testing.T) {
	rec := Extract("hello, nothing useful here")
	if rec.OriginCity != "" || rec.DestinationCity != "" || rec.Date != nil {
		t.Errorf("expected empty record fields, got %+v", rec)
	}
	if rec.RawText == "" {
		t.Error("RawText should always be set")
	}
}

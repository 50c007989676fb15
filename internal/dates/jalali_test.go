package dates

import (
	"testing"
	"time"
)

// Reference pairs checked against published calendars.
var conversionPairs = []struct {
	jy, jm, jd int
	gy, gm, gd int
}{
	{1403, 5, 31, 2024, 8, 21},
	{1400, 1, 1, 2021, 3, 21},
	{1398, 10, 11, 2020, 1, 1},
	{1395, 12, 30, 2017, 3, 20}, // leap Jalali year
	{1402, 12, 29, 2024, 3, 19},
	{1404, 1, 1, 2025, 3, 21},
}

func TestJalaliToGregorian(t *testing.T) {
	for _, p := range conversionPairs {
		gy, gm, gd := JalaliToGregorian(p.jy, p.jm, p.jd)
		if gy != p.gy || gm != p.gm || gd != p.gd {
			t.Errorf("JalaliToGregorian(%d-%02d-%02d) = %d-%02d-%02d, want %d-%02d-%02d",
				p.jy, p.jm, p.jd, gy, gm, gd, p.gy, p.gm, p.gd)
		}
	}
}

func TestGregorianToJalali(t *testing.T) {
	for _, p := range conversionPairs {
		jy, jm, jd := GregorianToJalali(p.gy, p.gm, p.gd)
		if jy != p.jy || jm != p.jm || jd != p.jd {
			t.Errorf("GregorianToJalali(%d-%02d-%02d) = %d-%02d-%02d, want %d-%02d-%02d",
				p.gy, p.gm, p.gd, jy, jm, jd, p.jy, p.jm, p.jd)
		}
	}
}

func TestConversionRoundTrip(t *testing.T) {
	// Every Gregorian date over several years must survive G -> J -> G.
	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		jy, jm, jd := GregorianToJalali(d.Year(), int(d.Month()), d.Day())
		gy, gm, gd := JalaliToGregorian(jy, jm, jd)
		if gy != d.Year() || gm != int(d.Month()) || gd != d.Day() {
			t.Fatalf("round trip %s -> %d-%02d-%02d -> %d-%02d-%02d",
				d.Format("2006-01-02"), jy, jm, jd, gy, gm, gd)
		}
	}
}

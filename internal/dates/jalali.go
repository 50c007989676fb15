package dates

// Jalali/Gregorian conversion after Borkowski: integer arithmetic over
// day-count epochs with the 33-year Jalali leap cycle. Valid for the modern
// range this feed cares about.

// JalaliToGregorian converts a Jalali (year, month, day) to the proleptic
// Gregorian equivalent. Month must be in [1,12] and day valid for the month;
// the result is undefined otherwise.
func JalaliToGregorian(jy, jm, jd int) (gy, gm, gd int) {
	jy += 1595
	days := -355668 + 365*jy + (jy/33)*8 + (jy%33+3)/4 + jd
	if jm <= 6 {
		days += 31 * (jm - 1)
	} else {
		days += 186 + 30*(jm-7)
	}

	gy = 400 * (days / 146097)
	days %= 146097
	if days > 36524 {
		gy += 100 * ((days - 1) / 36524)
		days = (days - 1) % 36524
		if days >= 365 {
			days++
		}
	}
	gy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	gd = days + 1
	leap := (gy%4 == 0 && gy%100 != 0) || gy%400 == 0
	monthDays := [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if leap {
		monthDays[2] = 29
	}
	gm = 1
	for gm <= 12 && gd > monthDays[gm] {
		gd -= monthDays[gm]
		gm++
	}
	return gy, gm, gd
}

// GregorianToJalali is the inverse relation, used to verify conversions.
func GregorianToJalali(gy, gm, gd int) (jy, jm, jd int) {
	gdm := [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}
	days := 355666 + 365*gy + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 + gd + gdm[gm-1]

	jy = -1595 + 33*(days/12053)
	days %= 12053
	jy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < 186 {
		jm = 1 + days/31
		jd = 1 + days%31
	} else {
		jm = 7 + (days-186)/30
		jd = 1 + (days-186)%30
	}
	return jy, jm, jd
}

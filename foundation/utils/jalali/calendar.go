// File: calendar.go
// Title: Persian Calendar Arithmetic
// Description: Leap year rules, month lengths and day-number conversion between the
//              Persian and Gregorian calendars.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package jalali

import (
	"time"

	mdwerror "github.com/msto63/helperx/foundation/core/error"
)

// Valid Persian year range
const (
	MinYear = -61
	MaxYear = 3177
)

// julian day number of 1970-01-01
const unixEpochJDN = 2440588

// breaks are the Persian years at which the 33-year leap pattern shifts
var breaks = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// yearInfo describes one Persian year
type yearInfo struct {
	// leap is the number of years since the last leap year, 0 for a leap year
	leap int
	// gy is the Gregorian year in which the Persian year starts
	gy int
	// march is the day in March of gy on which Farvardin 1 falls
	march int
}

func calc(jy int) (yearInfo, error) {
	if jy < MinYear || jy > MaxYear {
		return yearInfo{}, mdwerror.Newf("persian year %d out of range", jy).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithDetail("year", jy).
			WithOperation("jalali.calc")
	}

	gy := jy + 621
	leapJ := -14
	jp := breaks[0]
	jump := 0

	for i := 1; i < len(breaks); i++ {
		jm := breaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		jp = jm
	}

	n := jy - jp
	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march := 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}

	return yearInfo{leap: leap, gy: gy, march: march}, nil
}

// IsLeapYear reports whether the Persian year jy has 366 days.
// Years outside MinYear..MaxYear are never leap years.
func IsLeapYear(jy int) bool {
	info, err := calc(jy)
	return err == nil && info.leap == 0
}

// MonthLength returns the number of days in month jm of year jy, 0 for an invalid month
func MonthLength(jy, jm int) int {
	switch {
	case jm < 1 || jm > 12:
		return 0
	case jm <= 6:
		return 31
	case jm <= 11:
		return 30
	case IsLeapYear(jy):
		return 30
	default:
		return 29
	}
}

// ToGregorian converts a Persian date to the Gregorian calendar
func ToGregorian(jy, jm, jd int) (gy, gm, gd int, err error) {
	if err := validDate(jy, jm, jd); err != nil {
		return 0, 0, 0, err
	}
	jdn, err := persianToJDN(jy, jm, jd)
	if err != nil {
		return 0, 0, 0, err
	}
	t := jdnToTime(jdn)
	return t.Year(), int(t.Month()), t.Day(), nil
}

// FromGregorian converts a Gregorian date to the Persian calendar.
// Out-of-range Gregorian fields are normalized the way time.Date does.
func FromGregorian(gy, gm, gd int) (jy, jm, jd int, err error) {
	return jdnToPersian(gregorianToJDN(gy, time.Month(gm), gd))
}

func validDate(jy, jm, jd int) error {
	if jy < MinYear || jy > MaxYear {
		return mdwerror.Newf("persian year %d out of range", jy).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithDetail("year", jy)
	}
	if jm < 1 || jm > 12 {
		return mdwerror.Newf("persian month %d out of range", jm).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithDetail("month", jm)
	}
	if jd < 1 || jd > MonthLength(jy, jm) {
		return mdwerror.Newf("persian day %d out of range for %d/%d", jd, jy, jm).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithDetail("day", jd)
	}
	return nil
}

func persianToJDN(jy, jm, jd int) (int, error) {
	info, err := calc(jy)
	if err != nil {
		return 0, err
	}
	return gregorianToJDN(info.gy, time.March, info.march) + (jm-1)*31 - jm/7*(jm-7) + jd - 1, nil
}

func jdnToPersian(jdn int) (jy, jm, jd int, err error) {
	gy := jdnToTime(jdn).Year()
	jy = gy - 621

	info, err := calc(jy)
	if err != nil {
		return 0, 0, 0, err
	}

	k := jdn - gregorianToJDN(gy, time.March, info.march)
	if k >= 0 {
		if k <= 185 {
			return jy, 1 + k/31, k%31 + 1, nil
		}
		k -= 186
	} else {
		jy--
		if jy < MinYear {
			return 0, 0, 0, mdwerror.Newf("persian year %d out of range", jy).
				WithCode(mdwerror.CodeValueOutOfRange).
				WithDetail("year", jy)
		}
		k += 179
		// previous year was a leap year
		if info.leap == 1 {
			k++
		}
	}

	return jy, 7 + k/30, k%30 + 1, nil
}

func gregorianToJDN(gy int, gm time.Month, gd int) int {
	days := floorDiv(time.Date(gy, gm, gd, 0, 0, 0, 0, time.UTC).Unix(), 86400)
	return int(days) + unixEpochJDN
}

func jdnToTime(jdn int) time.Time {
	return time.Unix(int64(jdn-unixEpochJDN)*86400, 0).UTC()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// yearDay returns the 1-based day of the Persian year
func yearDay(jm, jd int) int {
	if jm <= 7 {
		return (jm-1)*31 + jd
	}
	return 186 + (jm-7)*30 + jd
}

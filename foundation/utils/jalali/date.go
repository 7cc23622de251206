// File: date.go
// Title: Persian Date Type
// Description: Date value carrying the Persian calendar fields together with the
//              time.Time instant they describe.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package jalali

import (
	"time"

	mdwerror "github.com/msto63/helperx/foundation/core/error"
	"github.com/msto63/helperx/foundation/utils/timex"
)

// Date is an instant expressed in the Persian calendar. The zero value is not a
// valid date, see IsZero. Dates are immutable and safe for concurrent use.
type Date struct {
	year  int
	month Month
	day   int
	t     time.Time
}

// FromTime returns the Persian date of t in t's location
func FromTime(t time.Time) (Date, error) {
	jy, jm, jd, err := FromGregorian(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return Date{}, mdwerror.Wrap(err, "cannot express time in persian calendar").
			WithDetail("time", t.Format(time.RFC3339)).
			WithOperation("jalali.FromTime")
	}
	return Date{year: jy, month: Month(jm), day: jd, t: t}, nil
}

// Now returns the current Persian date in the local time zone
func Now() Date {
	return NowIn(time.Local)
}

// NowIn returns the current Persian date in loc
func NowIn(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	// the current year is always within range
	d, _ := FromTime(time.Now().In(loc))
	return d
}

// Unix returns the Persian date of the given Unix time in loc
func Unix(sec, nsec int64, loc *time.Location) (Date, error) {
	if loc == nil {
		loc = time.UTC
	}
	return FromTime(time.Unix(sec, nsec).In(loc))
}

// New returns the Date for the given Persian calendar fields in loc.
// A nil location means UTC.
func New(year, month, day, hour, min, sec, nsec int, loc *time.Location) (Date, error) {
	if err := validDate(year, month, day); err != nil {
		return Date{}, withOperation(err, "jalali.New")
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 || nsec < 0 || nsec > 999999999 {
		return Date{}, mdwerror.Newf("invalid time of day %02d:%02d:%02d", hour, min, sec).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("jalali.New")
	}
	if loc == nil {
		loc = time.UTC
	}

	gy, gm, gd, err := ToGregorian(year, month, day)
	if err != nil {
		return Date{}, withOperation(err, "jalali.New")
	}
	return FromTime(time.Date(gy, time.Month(gm), gd, hour, min, sec, nsec, loc))
}

func withOperation(err error, operation string) error {
	if e, ok := err.(*mdwerror.Error); ok {
		return e.WithOperation(operation)
	}
	return err
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d.month == 0
}

// Time returns the instant d describes
func (d Date) Time() time.Time {
	return d.t
}

// Unix returns d as Unix seconds
func (d Date) Unix() int64 {
	return d.t.Unix()
}

// Location returns the time zone of d
func (d Date) Location() *time.Location {
	return d.t.Location()
}

// In returns the same instant in loc. The zero Date is returned if the
// instant falls outside the supported years in loc.
func (d Date) In(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	out, err := FromTime(d.t.In(loc))
	if err != nil {
		return Date{}
	}
	return out
}

func (d Date) Year() int             { return d.year }
func (d Date) Month() Month          { return d.month }
func (d Date) Day() int              { return d.day }
func (d Date) Hour() int             { return d.t.Hour() }
func (d Date) Minute() int           { return d.t.Minute() }
func (d Date) Second() int           { return d.t.Second() }
func (d Date) Nanosecond() int       { return d.t.Nanosecond() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// DayOfWeek returns the position of d in the Persian week, Saturday = 0 through Friday = 6
func (d Date) DayOfWeek() int {
	return (int(d.t.Weekday()) + 1) % 7
}

// YearDay returns the day of the year, 1 through 365 or 366
func (d Date) YearDay() int {
	return yearDay(int(d.month), d.day)
}

// IsLeapYear reports whether the year of d is a leap year
func (d Date) IsLeapYear() bool {
	return IsLeapYear(d.year)
}

// DaysInMonth returns the length of the month of d
func (d Date) DaysInMonth() int {
	return MonthLength(d.year, int(d.month))
}

// Equal reports whether d and o describe the same instant
func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

// Format renders d using PHP date() pattern letters, see timex.FormatPattern.
// The zero Date formats as an empty string.
func (d Date) Format(pattern string) string {
	if d.IsZero() {
		return ""
	}
	return timex.FormatPattern(calendarView{d}, pattern)
}

// String formats d as Y-m-d H:i:s
func (d Date) String() string {
	return d.Format(timex.DefaultPattern)
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, reading the text in UTC
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// calendarView exposes a Date as timex.Calendar
type calendarView struct {
	Date
}

func (v calendarView) Month() int          { return int(v.Date.Month()) }
func (v calendarView) Names() *timex.Names { return PersianNames }

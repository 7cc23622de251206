// File: calendar.go
// Title: Calendar Abstraction
// Description: The Calendar interface consumed by FormatPattern and its Gregorian
//              implementation over time.Time.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-12

package timex

import (
	"time"
)

// Names holds the display names a calendar system uses when formatting.
// Months are indexed 0..11, days by time.Weekday.
type Names struct {
	Months      [12]string
	MonthAbbrs  [12]string
	Days        [7]string
	DayAbbrs    [7]string
	AM, PM      string
	AMUpper     string
	PMUpper     string
	OrdinalFunc func(day int) string
}

// Calendar is a date in some calendar system, anchored to an instant.
// Month is 1-based, YearDay is 1-based.
type Calendar interface {
	Year() int
	Month() int
	Day() int
	Hour() int
	Minute() int
	Second() int
	Nanosecond() int
	Weekday() time.Weekday
	YearDay() int
	DaysInMonth() int
	IsLeapYear() bool
	Time() time.Time
	Names() *Names
}

// EnglishNames are the Gregorian display names
var EnglishNames = &Names{
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthAbbrs: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Days: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	DayAbbrs: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	AM:       "am",
	PM:       "pm",
	AMUpper:  "AM",
	PMUpper:  "PM",
	OrdinalFunc: func(day int) string {
		if day%100 >= 11 && day%100 <= 13 {
			return "th"
		}
		switch day % 10 {
		case 1:
			return "st"
		case 2:
			return "nd"
		case 3:
			return "rd"
		default:
			return "th"
		}
	},
}

// gregorian adapts time.Time to Calendar
type gregorian struct {
	t time.Time
}

// Gregorian returns t as a Calendar
func Gregorian(t time.Time) Calendar {
	return gregorian{t: t}
}

func (g gregorian) Year() int             { return g.t.Year() }
func (g gregorian) Month() int            { return int(g.t.Month()) }
func (g gregorian) Day() int              { return g.t.Day() }
func (g gregorian) Hour() int             { return g.t.Hour() }
func (g gregorian) Minute() int           { return g.t.Minute() }
func (g gregorian) Second() int           { return g.t.Second() }
func (g gregorian) Nanosecond() int       { return g.t.Nanosecond() }
func (g gregorian) Weekday() time.Weekday { return g.t.Weekday() }
func (g gregorian) YearDay() int          { return g.t.YearDay() }
func (g gregorian) Time() time.Time       { return g.t }
func (g gregorian) Names() *Names         { return EnglishNames }

func (g gregorian) IsLeapYear() bool {
	return IsGregorianLeapYear(g.t.Year())
}

func (g gregorian) DaysInMonth() int {
	// day 0 of the next month is the last day of this month
	return time.Date(g.t.Year(), g.t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsGregorianLeapYear reports whether year is a Gregorian leap year
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

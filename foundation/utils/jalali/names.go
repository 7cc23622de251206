// File: names.go
// Title: Persian Calendar Names
// Description: Month type and the Persian month and weekday names used for formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package jalali

import (
	"strconv"

	"github.com/msto63/helperx/foundation/utils/timex"
)

// Month is a Persian month, Farvardin = 1
type Month int

const (
	Farvardin Month = 1 + iota
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

var monthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// String returns the Persian name of the month
func (m Month) String() string {
	if m < Farvardin || m > Esfand {
		return "%!Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// PersianNames are the display names used by Date.Format.
// Days are indexed by time.Weekday.
var PersianNames = &timex.Names{
	Months:     monthNames,
	MonthAbbrs: monthNames,
	Days: [7]string{
		"یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه", "شنبه",
	},
	DayAbbrs: [7]string{"ی", "د", "س", "چ", "پ", "ج", "ش"},
	AM:       "ق.ظ",
	PM:       "ب.ظ",
	AMUpper:  "ق.ظ",
	PMUpper:  "ب.ظ",
}

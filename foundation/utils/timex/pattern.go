// File: pattern.go
// Title: PHP-Style Date Patterns
// Description: Renders a Calendar using the letters of PHP's date() function.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-12

package timex

import (
	"strconv"
	"strings"
)

// FormatPattern renders c according to a PHP date() pattern.
// Unknown letters are copied verbatim, a backslash copies the following
// character verbatim. An empty pattern renders DefaultPattern.
func FormatPattern(c Calendar, pattern string) string {
	if pattern == "" {
		pattern = DefaultPattern
	}

	names := c.Names()
	if names == nil {
		names = EnglishNames
	}

	var b strings.Builder
	b.Grow(len(pattern) * 2)

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' {
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
			}
			continue
		}
		writeToken(&b, c, names, r)
	}

	return b.String()
}

func writeToken(b *strings.Builder, c Calendar, names *Names, token rune) {
	switch token {
	// day
	case 'd':
		b.WriteString(pad(c.Day(), 2))
	case 'D':
		b.WriteString(names.DayAbbrs[c.Weekday()])
	case 'j':
		b.WriteString(strconv.Itoa(c.Day()))
	case 'l':
		b.WriteString(names.Days[c.Weekday()])
	case 'N':
		wd := int(c.Weekday())
		if wd == 0 {
			wd = 7
		}
		b.WriteString(strconv.Itoa(wd))
	case 'S':
		if names.OrdinalFunc != nil {
			b.WriteString(names.OrdinalFunc(c.Day()))
		}
	case 'w':
		b.WriteString(strconv.Itoa(int(c.Weekday())))
	case 'z':
		b.WriteString(strconv.Itoa(c.YearDay() - 1))

	// month
	case 'F':
		b.WriteString(names.Months[c.Month()-1])
	case 'M':
		b.WriteString(names.MonthAbbrs[c.Month()-1])
	case 'm':
		b.WriteString(pad(c.Month(), 2))
	case 'n':
		b.WriteString(strconv.Itoa(c.Month()))
	case 't':
		b.WriteString(strconv.Itoa(c.DaysInMonth()))

	// year
	case 'L':
		if c.IsLeapYear() {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case 'Y':
		b.WriteString(pad(c.Year(), 4))
	case 'y':
		b.WriteString(pad(abs(c.Year())%100, 2))

	// time
	case 'a':
		if c.Hour() < 12 {
			b.WriteString(names.AM)
		} else {
			b.WriteString(names.PM)
		}
	case 'A':
		if c.Hour() < 12 {
			b.WriteString(names.AMUpper)
		} else {
			b.WriteString(names.PMUpper)
		}
	case 'g':
		b.WriteString(strconv.Itoa(hour12(c.Hour())))
	case 'G':
		b.WriteString(strconv.Itoa(c.Hour()))
	case 'h':
		b.WriteString(pad(hour12(c.Hour()), 2))
	case 'H':
		b.WriteString(pad(c.Hour(), 2))
	case 'i':
		b.WriteString(pad(c.Minute(), 2))
	case 's':
		b.WriteString(pad(c.Second(), 2))
	case 'u':
		b.WriteString(pad(c.Nanosecond()/1000, 6))
	case 'v':
		b.WriteString(pad(c.Nanosecond()/1000000, 3))

	// timezone
	case 'e':
		b.WriteString(c.Time().Location().String())
	case 'T':
		name, _ := c.Time().Zone()
		b.WriteString(name)
	case 'P':
		b.WriteString(c.Time().Format("-07:00"))
	case 'O':
		b.WriteString(c.Time().Format("-0700"))
	case 'U':
		b.WriteString(strconv.FormatInt(c.Time().Unix(), 10))

	default:
		b.WriteRune(token)
	}
}

func pad(n, width int) string {
	s := strconv.Itoa(abs(n))
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	if n < 0 {
		return "-" + s
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

// File: converter.go
// Title: Calendar Converter
// Description: Converter with location, clock and logger options and the strict
//              and best-effort conversion methods.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package calendarx

import (
	"math"
	"reflect"
	"time"

	mdwerror "github.com/msto63/helperx/foundation/core/error"
	mdwlog "github.com/msto63/helperx/foundation/core/log"
	"github.com/msto63/helperx/foundation/utils/jalali"
	"github.com/msto63/helperx/foundation/utils/timex"
)

// Converter converts dates between the calendars. A Converter is immutable and
// safe for concurrent use.
type Converter struct {
	location *time.Location
	clock    func() time.Time
	logger   *mdwlog.Logger
}

// Option configures a Converter
type Option func(*Converter)

// WithLocation sets the location used for zone-less strings and results
func WithLocation(loc *time.Location) Option {
	return func(c *Converter) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithClock sets the source of the current time used for nil input
func WithClock(clock func() time.Time) Option {
	return func(c *Converter) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger receiving conversion failures
func WithLogger(logger *mdwlog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// NewConverter returns a Converter using time.Local and the wall clock unless
// configured otherwise. Without WithLogger the default logger is used.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		location: time.Local,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Location returns the converter's location
func (c *Converter) Location() *time.Location {
	return c.location
}

// Persian converts date to the Persian calendar
func (c *Converter) Persian(date interface{}) (jalali.Date, error) {
	const op = "calendarx.Persian"

	switch v := date.(type) {
	case string:
		t, err := timex.ParseInLocation(v, c.location)
		if err != nil {
			return jalali.Date{}, annotate(err, op)
		}
		return c.persianOf(t, op)
	case jalali.Date:
		return c.persianOfDate(v, op)
	case *jalali.Date:
		if v == nil {
			return c.persianOf(c.clock(), op)
		}
		return c.persianOfDate(*v, op)
	}

	t, err := c.instant(date, op)
	if err != nil {
		return jalali.Date{}, err
	}
	return c.persianOf(t, op)
}

// Gregorian converts date to the Gregorian calendar
func (c *Converter) Gregorian(date interface{}) (time.Time, error) {
	const op = "calendarx.Gregorian"

	switch v := date.(type) {
	case string:
		d, err := jalali.ParseInLocation(v, c.location)
		if err != nil {
			return time.Time{}, annotate(err, op)
		}
		return d.Time().In(c.location), nil
	case jalali.Date:
		return c.gregorianOfDate(v, op)
	case *jalali.Date:
		if v == nil {
			return c.clock().In(c.location), nil
		}
		return c.gregorianOfDate(*v, op)
	}

	t, err := c.instant(date, op)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(c.location), nil
}

// ToPersianDate is the best-effort form of Persian
func (c *Converter) ToPersianDate(date interface{}) (jalali.Date, bool) {
	var d jalali.Date
	ok := c.attempt("calendarx.ToPersianDate", func() (err error) {
		d, err = c.Persian(date)
		return err
	})
	return d, ok
}

// ToPersianString converts date to the Persian calendar and formats it with a
// PHP date() pattern. An empty pattern means timex.DefaultPattern.
func (c *Converter) ToPersianString(date interface{}, pattern string) (string, bool) {
	var s string
	ok := c.attempt("calendarx.ToPersianString", func() error {
		d, err := c.Persian(date)
		if err != nil {
			return err
		}
		s = d.Format(pattern)
		return nil
	})
	return s, ok
}

// ToGregorianDate is the best-effort form of Gregorian
func (c *Converter) ToGregorianDate(date interface{}) (time.Time, bool) {
	var t time.Time
	ok := c.attempt("calendarx.ToGregorianDate", func() (err error) {
		t, err = c.Gregorian(date)
		return err
	})
	return t, ok
}

// ToGregorianString converts date to the Gregorian calendar and formats it with
// a PHP date() pattern. An empty pattern means timex.DefaultPattern.
func (c *Converter) ToGregorianString(date interface{}, pattern string) (string, bool) {
	var s string
	ok := c.attempt("calendarx.ToGregorianString", func() error {
		t, err := c.Gregorian(date)
		if err != nil {
			return err
		}
		s = timex.FormatPattern(timex.Gregorian(t), pattern)
		return nil
	})
	return s, ok
}

// attempt runs fn and reports success. Errors and panics are logged and
// reported as failure.
func (c *Converter) attempt(operation string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			err := mdwerror.Newf("calendar conversion panicked: %v", r).
				WithCode(mdwerror.CodeConversionFailed).
				WithOperation(operation)
			c.log().DebugWithErr("calendar conversion failed", err, mdwlog.Fields{
				"operation":  operation,
				"error_code": err.Code().String(),
			})
			ok = false
		}
	}()

	if err := fn(); err != nil {
		c.log().DebugWithErr("calendar conversion failed", err, mdwlog.Fields{
			"operation":  operation,
			"error_code": mdwerror.GetCode(err).String(),
		})
		return false
	}
	return true
}

func (c *Converter) log() *mdwlog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return mdwlog.GetDefault()
}

// instant resolves nil, time and Unix timestamp input
func (c *Converter) instant(date interface{}, op string) (time.Time, error) {
	switch v := date.(type) {
	case nil:
		return c.clock(), nil
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return c.clock(), nil
		}
		return *v, nil
	}

	rv := reflect.ValueOf(date)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return time.Unix(rv.Int(), 0), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > math.MaxInt64 {
			return time.Time{}, mdwerror.New("unix timestamp out of range").
				WithCode(mdwerror.CodeValueOutOfRange).
				WithDetail("input", rv.Uint()).
				WithOperation(op)
		}
		return time.Unix(int64(rv.Uint()), 0), nil
	}

	return time.Time{}, mdwerror.Newf("unsupported date input of type %T", date).
		WithCode(mdwerror.CodeUnsupportedType).
		WithOperation(op)
}

func (c *Converter) persianOf(t time.Time, op string) (jalali.Date, error) {
	d, err := jalali.FromTime(t.In(c.location))
	if err != nil {
		return jalali.Date{}, annotate(err, op)
	}
	return d, nil
}

func (c *Converter) persianOfDate(d jalali.Date, op string) (jalali.Date, error) {
	if d.IsZero() {
		return jalali.Date{}, zeroDate(op)
	}
	return c.persianOf(d.Time(), op)
}

func (c *Converter) gregorianOfDate(d jalali.Date, op string) (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, zeroDate(op)
	}
	return d.Time().In(c.location), nil
}

func zeroDate(op string) error {
	return mdwerror.New("zero persian date").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(op)
}

// annotate wraps err with a conversion message, keeping its code
func annotate(err error, op string) error {
	return mdwerror.Wrap(err, "date conversion failed").WithOperation(op)
}

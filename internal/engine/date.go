package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-birthday-wheel/internal/config"
)

// Column identifies one of the three wheels of the date picker.
type Column int

const (
	ColumnDay Column = iota
	ColumnMonth
	ColumnYear
)

// Columns lists every column in display order.
var Columns = [...]Column{ColumnDay, ColumnMonth, ColumnYear}

// String returns the column name used in log records.
func (c Column) String() string {
	switch c {
	case ColumnDay:
		return "day"
	case ColumnMonth:
		return "month"
	case ColumnYear:
		return "year"
	}
	return fmt.Sprintf("column(%d)", int(c))
}

// Date is the logical value held by the picker.
// While the user scrolls it may be transiently invalid (e.g. April 31);
// Normalize makes it valid.
type Date struct {
	Day   int
	Month int
	Year  int
}

// DefaultDate is the value a fresh picker starts with.
func DefaultDate() Date {
	return Date{Day: config.DefaultDay, Month: config.DefaultMonth, Year: config.DefaultYear}
}

// DateFromTime extracts the calendar fields of t.
func DateFromTime(t time.Time) Date {
	return Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// Field returns the value of the given column.
func (d Date) Field(c Column) int {
	switch c {
	case ColumnDay:
		return d.Day
	case ColumnMonth:
		return d.Month
	case ColumnYear:
		return d.Year
	}
	return 0
}

// WithField returns a copy of d with the given column replaced.
// The value is stored as-is; range problems are fixed by Normalize.
func (d Date) WithField(c Column, value int) Date {
	switch c {
	case ColumnDay:
		d.Day = value
	case ColumnMonth:
		d.Month = value
	case ColumnYear:
		d.Year = value
	}
	return d
}

// DaysIn returns the number of days of month (1-12) in the Gregorian year.
func DaysIn(month, year int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year int) bool {
	return DaysIn(2, year) == 29
}

// Normalize clamps the day down to the last valid day of the month.
// It reports whether a correction was applied.
func (d Date) Normalize() (Date, bool) {
	if last := DaysIn(d.Month, d.Year); d.Day > last {
		d.Day = last
		return d, true
	}
	return d, false
}

// Time returns the date at midnight in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Format renders "<MonthName> <Day>, <Year>" without zero padding.
func (d Date) Format() string {
	return fmt.Sprintf(config.FormatConfirmedDate, MonthName(d.Month), d.Day, d.Year)
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return d.Format()
}

// MonthName returns the full English name of month (1-12), or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > len(config.MonthNames) {
		return ""
	}
	return config.MonthNames[month-1]
}

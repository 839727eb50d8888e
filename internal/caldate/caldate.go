// Package caldate provides the compact calendar-date representation used
// throughout the ledger: dates are YYYYMMDD strings, which makes
// chronological order the same as lexicographic order and keeps the
// statement scan's cursor comparisons cheap.
package caldate

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a string is not a valid YYYYMMDD date.
var ErrInvalidDate = errors.New("invalid date")

// ErrInvalidYearMonth is returned when a string is not a valid YYYYMM month.
var ErrInvalidYearMonth = errors.New("invalid year-month")

// Date is a calendar date in compact YYYYMMDD form.
type Date string

// New builds a Date from its components. The components are assumed to
// describe a real calendar day.
func New(year int, month time.Month, day int) Date {
	return Date(fmt.Sprintf("%04d%02d%02d", year, int(month), day))
}

// Parse validates s as a real Gregorian calendar date in YYYYMMDD form.
func Parse(s string) (Date, error) {
	if len(s) != 8 {
		return "", fmt.Errorf("%w: %q is not in YYYYMMDD form", ErrInvalidDate, s)
	}
	var year, month, day int
	if _, err := fmt.Sscanf(s, "%4d%2d%2d", &year, &month, &day); err != nil {
		return "", fmt.Errorf("%w: %q is not numeric", ErrInvalidDate, s)
	}
	// Round-trip through time.Date: an out-of-range day or month
	// normalizes to a different date and fails the comparison.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", fmt.Errorf("%w: %q is not a calendar day", ErrInvalidDate, s)
	}
	return Date(s), nil
}

// ParseYearMonth validates s as a YYYYMM month and returns its components.
func ParseYearMonth(s string) (int, time.Month, error) {
	if len(s) != 6 {
		return 0, 0, fmt.Errorf("%w: %q is not in YYYYMM form", ErrInvalidYearMonth, s)
	}
	var year, month int
	if _, err := fmt.Sscanf(s, "%4d%2d", &year, &month); err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidYearMonth, s)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month %02d out of range", ErrInvalidYearMonth, month)
	}
	return year, time.Month(month), nil
}

// String returns the compact YYYYMMDD form.
func (d Date) String() string { return string(d) }

// YearMonth returns the YYYYMM prefix of the date.
func (d Date) YearMonth() string { return string(d[:6]) }

// Before reports whether d falls strictly before o.
func (d Date) Before(o Date) bool { return d < o }

// After reports whether d falls strictly after o.
func (d Date) After(o Date) bool { return d > o }

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInYear returns 366 for Gregorian leap years (4/100/400 rule), else 365.
func DaysInYear(year int) int {
	if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
		return 366
	}
	return 365
}

// MonthEnd returns the last calendar day of the given month.
func MonthEnd(year int, month time.Month) Date {
	return New(year, month, DaysIn(year, month))
}

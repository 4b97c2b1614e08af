package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Category is a mutually exclusive time-relative bucket for the table view.
type Category int

const (
	CategoryNone Category = iota
	CategoryToday
	CategoryTomorrow
	CategoryNextWeek
	CategoryNextMonth
)

// ErrBadBirthday marks a birthday string that cannot be used: wrong shape,
// out-of-range numbers, or a day/month pair that does not exist in the
// reference year (30.02, or 29.02 off leap years).
var ErrBadBirthday = errors.New("invalid birthday")

// weekLength is the span of the "next week" bucket, next Monday inclusive.
const weekLength = 7

// ParseBirthday parses a dictionary birthday of the form "DD.MM".
// Calendar existence of the pair is checked later, against a concrete year.
func ParseBirthday(s string) (day, month int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadBirthday, s)
	}
	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadBirthday, s)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadBirthday, s)
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %q out of range", ErrBadBirthday, s)
	}
	return day, month, nil
}

// midnight truncates t to its calendar date in UTC, so day arithmetic is
// immune to DST offsets of the incoming location.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dateInYear places a day/month pair into the given year, rejecting pairs
// the year does not contain. time.Date would silently normalize 29.02 to
// March 1st, which is exactly what must not happen here.
func dateInYear(day, month, year int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("%w: %02d.%02d does not exist in %d", ErrBadBirthday, day, month, year)
	}
	return t, nil
}

// nextOccurrence returns the nearest date with the given day/month that is
// not before today. A pair missing from the resolved year is an error and
// the record is skipped for that year (leap-day birthdays are not rolled).
func nextOccurrence(day, month int, today time.Time) (time.Time, error) {
	t := midnight(today)
	occ, err := dateInYear(day, month, t.Year())
	if err != nil {
		return time.Time{}, err
	}
	if occ.Before(t) {
		return dateInYear(day, month, t.Year()+1)
	}
	return occ, nil
}

// DaysUntil returns the number of days from today to the next occurrence
// of the day/month pair. The result is within [0, 366].
func DaysUntil(day, month int, today time.Time) (int, error) {
	occ, err := nextOccurrence(day, month, today)
	if err != nil {
		return 0, err
	}
	return int(occ.Sub(midnight(today)).Hours() / 24), nil
}

// NextMonday returns the Monday strictly after today's date, even when
// today itself is a Monday.
func NextMonday(today time.Time) time.Time {
	t := midnight(today)
	d := (8 - int(t.Weekday())) % 7
	if d == 0 {
		d = 7
	}
	return t.AddDate(0, 0, d)
}

// Categorize assigns the table-view bucket for a day/month pair. Buckets
// are mutually exclusive and checked in priority order: today, tomorrow,
// next week (next Monday through the following Sunday), next calendar
// month. Everything further out is CategoryNone and stays off the table.
func Categorize(day, month int, today time.Time) (Category, error) {
	occ, err := nextOccurrence(day, month, today)
	if err != nil {
		return CategoryNone, err
	}
	t := midnight(today)
	if occ.Equal(t) {
		return CategoryToday, nil
	}
	if occ.Equal(t.AddDate(0, 0, 1)) {
		return CategoryTomorrow, nil
	}
	monday := NextMonday(t)
	if !occ.Before(monday) && !occ.After(monday.AddDate(0, 0, weekLength-1)) {
		return CategoryNextWeek, nil
	}
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	if occ.Year() == firstOfNext.Year() && occ.Month() == firstOfNext.Month() {
		return CategoryNextMonth, nil
	}
	return CategoryNone, nil
}

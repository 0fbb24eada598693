package isoweek

import "time"

// Package for ISO-8601 week math used by the weekly activity grid.
// Weeks run Monday-Sunday, week 1 is the week containing January 4th,
// so the ISO year can differ from the calendar year around Dec/Jan.

type YearWeek struct {
	Year int `json:"iso_year"`
	Week int `json:"iso_week"`
}

// At returns the ISO year/week pair of t. The date is normalized to UTC
// first so the pair doesn't drift with the server's local timezone.
func At(t time.Time) YearWeek {
	year, week := t.UTC().ISOWeek()
	return YearWeek{Year: year, Week: week}
}

func Current() YearWeek {
	return At(time.Now())
}

// Prev returns the ISO week immediately before yw. Week 1 steps into the
// final week of the previous ISO year; December 28 always belongs to it.
func (yw YearWeek) Prev() YearWeek {
	if yw.Week > 1 {
		return YearWeek{Year: yw.Year, Week: yw.Week - 1}
	}
	return At(time.Date(yw.Year-1, time.December, 28, 0, 0, 0, 0, time.UTC))
}

// History returns exactly n pairs starting at from and walking strictly
// backward one ISO week at a time.
func History(n int, from YearWeek) []YearWeek {
	if n <= 0 {
		return []YearWeek{}
	}
	history := make([]YearWeek, 0, n)
	cur := from
	for range n {
		history = append(history, cur)
		cur = cur.Prev()
	}
	return history
}

// Contains reports whether yw is one of the pairs in history.
func Contains(history []YearWeek, yw YearWeek) bool {
	for _, h := range history {
		if h == yw {
			return true
		}
	}
	return false
}

// Valid bounds the pair to plausible values for path parameters.
func (yw YearWeek) Valid() bool {
	return yw.Year >= 2000 && yw.Year <= 2100 && yw.Week >= 1 && yw.Week <= 53
}

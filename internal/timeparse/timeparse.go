// Package timeparse turns user-entered date and time strings into
// timestamps. Several date layouts are accepted to be forgiving about
// input; times are 24-hour only.
package timeparse

import (
	"fmt"
	"time"
)

// tried in order; ambiguous inputs resolve to the first layout that parses
var dateLayouts = []string{"2006-01-02", "01/02/2006", "02/01/2006"}

// Date parses YYYY-MM-DD, MM/DD/YYYY or DD/MM/YYYY into local midnight.
func Date(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want YYYY-MM-DD, MM/DD/YYYY or DD/MM/YYYY)", s)
}

// DateTime combines a date string and a 24-hour HH:MM time string into a
// single timestamp.
func DateTime(dateStr, timeStr string) (time.Time, error) {
	d, err := Date(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized time %q (want 24-hour HH:MM)", timeStr)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

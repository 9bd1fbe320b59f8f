// Package dates validates the calendar-date strings (YYYY-MM-DD) that
// scope tasks and daily counters.
package dates

import "time"

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// Valid reports whether s is a real calendar date in YYYY-MM-DD form.
// Out-of-range components ("2024-13-40") and loose forms ("2024-1-2")
// are rejected.
func Valid(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

// Today returns the current UTC date in wire form.
func Today() string {
	return time.Now().UTC().Format(Layout)
}

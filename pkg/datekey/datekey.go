// Package datekey normalizes timestamps to YYYY-MM-DD calendar-day keys.
// Keys compare lexicographically in calendar order.
package datekey

import "time"

const layout = "2006-01-02"

// Key returns the calendar-day key of t in UTC.
func Key(t time.Time) string {
	return t.UTC().Format(layout)
}

// Today returns the day key of now.
func Today(now time.Time) string {
	return Key(now)
}

// Yesterday subtracts exactly 24 hours of wall-clock time, not one calendar
// day. Around daylight-saving shifts the result can land on the same day as
// now; callers live with that.
func Yesterday(now time.Time) string {
	return Key(now.Add(-24 * time.Hour))
}

// Prev returns the key one calendar day before k. Malformed keys come back
// unchanged with ok=false.
func Prev(k string) (string, bool) {
	t, err := time.Parse(layout, k)
	if err != nil {
		return k, false
	}
	return Key(t.AddDate(0, 0, -1)), true
}

// Package streak computes habit streaks. Everything here is a pure function
// of the completion history and an explicit clock, so derived values stay
// recomputable and can never drift from the underlying dates.
package streak

import (
	"math"
	"time"

	"github.com/limetree/momentum/pkg/datekey"
)

// cool-down between manual increments
const incrementCooldown = 24 * time.Hour

// Compute returns the current streak length for a set of completed day keys.
// A streak is alive only if today or yesterday is in the set; otherwise a
// missed day has broken the chain and the result is 0. When alive, the run
// of consecutive calendar days ending at the most recent key is counted.
func Compute(completedDates []string, now time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(completedDates))
	latest := ""
	for _, d := range completedDates {
		set[d] = struct{}{}
		if d > latest {
			latest = d
		}
	}
	_, hasToday := set[datekey.Today(now)]
	_, hasYesterday := set[datekey.Yesterday(now)]
	if !hasToday && !hasYesterday {
		return 0
	}
	count := 1
	day := latest
	for {
		prev, ok := datekey.Prev(day)
		if !ok {
			break
		}
		if _, ok := set[prev]; !ok {
			break
		}
		count++
		day = prev
	}
	return count
}

// CanManualIncrement reports whether the manual increment action is allowed:
// never incremented before, or at least 24 wall-clock hours since the last one.
func CanManualIncrement(lastIncrementTime *time.Time, now time.Time) bool {
	if lastIncrementTime == nil {
		return true
	}
	return now.Sub(*lastIncrementTime) >= incrementCooldown
}

// HoursUntilNextIncrement returns the hours left of the cool-down, rounded
// up. Zero or negative means increment is allowed.
func HoursUntilNextIncrement(lastIncrementTime *time.Time, now time.Time) int {
	if lastIncrementTime == nil {
		return 0
	}
	remaining := incrementCooldown - now.Sub(*lastIncrementTime)
	return int(math.Ceil(remaining.Hours()))
}

// Level buckets a longest streak into the leaderboard skill label.
func Level(longestStreak int) string {
	switch {
	case longestStreak >= 15:
		return "Advanced"
	case longestStreak >= 4:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

package service

import (
	"sort"
	"time"

	"fitfeed/internal/clock"
)

// Streaks summarizes consecutive-day training activity.
type Streaks struct {
	Current int `json:"current_streak"`
	Best    int `json:"best_streak"`
}

const daySeconds = int64(86400)

// CalculateStreaks derives the current and best streaks from the dates
// of a user's workout logs. Dates are bucketed to calendar days and
// deduplicated, so multiple logs on one day count once. The current
// streak walks backwards from now; a chain may start today or
// yesterday, so logging yesterday but not yet today keeps the streak
// alive.
func CalculateStreaks(logDates []time.Time, now time.Time) Streaks {
	if len(logDates) == 0 {
		return Streaks{}
	}

	seen := make(map[int64]struct{}, len(logDates))
	days := make([]int64, 0, len(logDates))
	for _, d := range logDates {
		key := clock.Day(d).Unix()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, key)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })

	result := Streaks{Best: 1}

	check := clock.Day(now).Unix()
	for _, d := range days {
		if d == check || d == check-daySeconds {
			result.Current++
			check = d - daySeconds
		} else {
			break
		}
	}

	// Best streak scans the unique days in ascending order and counts
	// the longest run of strictly consecutive days.
	temp := 1
	for i := len(days) - 2; i >= 0; i-- {
		if days[i]-days[i+1] == daySeconds {
			temp++
			if temp > result.Best {
				result.Best = temp
			}
		} else {
			temp = 1
		}
	}

	return result
}

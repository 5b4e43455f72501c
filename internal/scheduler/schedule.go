package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// Weekday tokens in week order, as cron/v3 accepts them in the day-of-week
// field.
var weekOrder = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// NormalizeWeekdays uppercases, validates and dedupes weekday tokens,
// returning them in week order. An empty input is an error; callers supply
// the configured default instead.
func NormalizeWeekdays(weekdays []string) ([]string, error) {
	if len(weekdays) == 0 {
		return nil, fmt.Errorf("scheduler: empty weekday set")
	}

	seen := make(map[string]bool, len(weekdays))
	for _, d := range weekdays {
		token := strings.ToUpper(strings.TrimSpace(d))
		if !validWeekday(token) {
			return nil, fmt.Errorf("scheduler: invalid weekday %q", d)
		}
		seen[token] = true
	}

	out := make([]string, 0, len(seen))
	for _, token := range weekOrder {
		if seen[token] {
			out = append(out, token)
		}
	}
	return out, nil
}

func validWeekday(token string) bool {
	for _, d := range weekOrder {
		if d == token {
			return true
		}
	}
	return false
}

// ParseTimeOfDay validates "HH:MM" (24h) and returns hour and minute.
func ParseTimeOfDay(timeOfDay string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(timeOfDay), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("scheduler: invalid time %q, want HH:MM", timeOfDay)
	}
	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return 0, 0, fmt.Errorf("scheduler: invalid time %q, want HH:MM", timeOfDay)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("scheduler: time %q out of range", timeOfDay)
	}
	return hour, minute, nil
}

// NormalizeTimeOfDay validates a time string and renders it back as
// zero-padded "HH:MM", the canonical form stored and compared elsewhere.
func NormalizeTimeOfDay(timeOfDay string) (string, error) {
	hour, minute, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// cronSpec renders a standard 5-field cron expression for the trigger.
func cronSpec(timeOfDay string, weekdays []string) (string, error) {
	hour, minute, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return "", err
	}
	days, err := NormalizeWeekdays(weekdays)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * %s", minute, hour, strings.Join(days, ",")), nil
}

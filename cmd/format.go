package cmd

import (
	"fmt"
	"time"
)

// formatAge describes how long before now t was, in whole days
func formatAge(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		return "in " + formatDays(-days)
	}
	if days == 0 {
		return "today"
	}
	return formatDays(days) + " ago"
}

// formatDays returns "1 day" or "N days"
func formatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// formatOffset renders a UTC offset in seconds as "+HH:MM"
func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, seconds%3600/60)
}

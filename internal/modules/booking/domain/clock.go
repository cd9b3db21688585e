package domain

import (
	"strings"
	"time"
)

const defaultWallClock = "09:00:00"

var twelveHourLayouts = []string{"3:04 PM", "3:04PM", "3 PM", "3PM", "3:04:05 PM"}

var twentyFourHourLayouts = []string{"15:04:05", "15:04"}

// ConvertTo24Hour converts wall-clock strings like "2:00 PM" into the
// "14:00:00" form the API stores. Already-24-hour input passes through
// unchanged (seconds are added when missing); anything unparseable becomes
// the 09:00:00 default.
func ConvertTo24Hour(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return defaultWallClock
	}
	upper := strings.ToUpper(trimmed)
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		for _, layout := range twelveHourLayouts {
			if parsed, err := time.Parse(layout, upper); err == nil {
				return parsed.Format("15:04:05")
			}
		}
		return defaultWallClock
	}
	for _, layout := range twentyFourHourLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format("15:04:05")
		}
	}
	return defaultWallClock
}

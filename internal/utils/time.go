package utils

import "time"

// FormatDate renders a timestamp for display, in local time.
func FormatDate(t time.Time) string {
	return t.Local().Format("02.01.2006 15:04")
}

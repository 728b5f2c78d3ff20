package service

import (
	"fmt"
	"time"
)

// ageWords renders a duration in seconds the way the host forum shows
// reading time: the largest whole unit, single-letter suffix.
func ageWords(seconds int64) string {
	d := time.Duration(seconds) * time.Second

	switch {
	case d < time.Minute:
		return "< 1m"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours())/24)
	default:
		return fmt.Sprintf("%dy", int(d.Hours())/(24*365))
	}
}

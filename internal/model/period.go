package model

import "time"

// PeriodType identifies one of the four quarterly directory windows.
// The numeric values are persisted in directory_items.period_type and
// must never be reordered.
type PeriodType int

const (
	PeriodFourthQuarterly PeriodType = 1
	PeriodThirdQuarterly  PeriodType = 2
	PeriodSecondQuarterly PeriodType = 3
	PeriodFirstQuarterly  PeriodType = 4
)

// FineGrainedPeriod is the only period whose listing rows carry the
// time_read attribute.
const FineGrainedPeriod = PeriodFirstQuarterly

var periodKeys = map[PeriodType]string{
	PeriodFirstQuarterly:  "first_quarterly",
	PeriodSecondQuarterly: "second_quarterly",
	PeriodThirdQuarterly:  "third_quarterly",
	PeriodFourthQuarterly: "fourth_quarterly",
}

// AllPeriods returns the fixed set of period identifiers in a stable
// iteration order.
func AllPeriods() []PeriodType {
	return []PeriodType{
		PeriodFirstQuarterly,
		PeriodSecondQuarterly,
		PeriodThirdQuarterly,
		PeriodFourthQuarterly,
	}
}

// CurrentPeriod maps wall-clock time to the quarterly window containing it.
func CurrentPeriod(now time.Time) PeriodType {
	quarter := ((int(now.Month()) - 1) / 3) + 1
	switch quarter {
	case 1:
		return PeriodFirstQuarterly
	case 2:
		return PeriodSecondQuarterly
	case 3:
		return PeriodThirdQuarterly
	default:
		return PeriodFourthQuarterly
	}
}

// PeriodStart returns the instant the given period opened in the current
// year. Unknown identifiers fall back to a far-past sentinel so a bad id
// degrades to an all-time tally instead of an error.
func PeriodStart(p PeriodType, now time.Time) time.Time {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	switch p {
	case PeriodFirstQuarterly:
		return yearStart
	case PeriodSecondQuarterly:
		return yearStart.AddDate(0, 3, 0)
	case PeriodThirdQuarterly:
		return yearStart.AddDate(0, 6, 0)
	case PeriodFourthQuarterly:
		return yearStart.AddDate(0, 9, 0)
	default:
		return now.AddDate(-1000, 0, 0)
	}
}

// PeriodFromKey resolves an API period key ("first_quarterly", ...) to its
// identifier.
func PeriodFromKey(key string) (PeriodType, bool) {
	for p, k := range periodKeys {
		if k == key {
			return p, true
		}
	}
	return 0, false
}

// Key returns the API name of the period, or "" for an unknown id.
func (p PeriodType) Key() string {
	return periodKeys[p]
}

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPeriod(t *testing.T) {
	cases := []struct {
		month time.Month
		want  PeriodType
	}{
		{time.January, PeriodFirstQuarterly},
		{time.March, PeriodFirstQuarterly},
		{time.April, PeriodSecondQuarterly},
		{time.June, PeriodSecondQuarterly},
		{time.July, PeriodThirdQuarterly},
		{time.September, PeriodThirdQuarterly},
		{time.October, PeriodFourthQuarterly},
		{time.December, PeriodFourthQuarterly},
	}

	for _, tc := range cases {
		now := time.Date(2026, tc.month, 15, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.want, CurrentPeriod(now), "month %s", tc.month)
	}
}

func TestPeriodStartOffsets(t *testing.T) {
	now := time.Date(2026, time.August, 28, 10, 30, 0, 0, time.UTC)
	yearStart := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, yearStart, PeriodStart(PeriodFirstQuarterly, now))
	assert.Equal(t, yearStart.AddDate(0, 3, 0), PeriodStart(PeriodSecondQuarterly, now))
	assert.Equal(t, yearStart.AddDate(0, 6, 0), PeriodStart(PeriodThirdQuarterly, now))
	assert.Equal(t, yearStart.AddDate(0, 9, 0), PeriodStart(PeriodFourthQuarterly, now))
}

func TestPeriodStartUnknownIsFarPast(t *testing.T) {
	now := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	start := PeriodStart(PeriodType(99), now)
	assert.True(t, start.Before(now.AddDate(-900, 0, 0)))
}

func TestAllPeriodsFixedOrder(t *testing.T) {
	periods := AllPeriods()
	require.Len(t, periods, 4)
	assert.Equal(t, []PeriodType{
		PeriodFirstQuarterly,
		PeriodSecondQuarterly,
		PeriodThirdQuarterly,
		PeriodFourthQuarterly,
	}, periods)
}

func TestPeriodKeyRoundTrip(t *testing.T) {
	for _, p := range AllPeriods() {
		got, ok := PeriodFromKey(p.Key())
		require.True(t, ok, "key %s", p.Key())
		assert.Equal(t, p, got)
	}

	_, ok := PeriodFromKey("fifth_quarterly")
	assert.False(t, ok)
}

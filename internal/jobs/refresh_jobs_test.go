package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/quarterdirectory/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresh struct {
	periods []model.PeriodType
	failOn  model.PeriodType
}

func (f *fakeRefresh) RefreshPeriod(_ context.Context, period model.PeriodType) error {
	f.periods = append(f.periods, period)
	if period == f.failOn {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeRefresh) RefreshAll(ctx context.Context) error {
	for _, p := range model.AllPeriods() {
		if err := f.RefreshPeriod(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// July sits in the third quarter.
var julyNow = func() time.Time {
	return time.Date(2026, time.July, 10, 8, 0, 0, 0, time.UTC)
}

func TestCurrentPeriodJobRefreshesOnlyCurrentPeriod(t *testing.T) {
	refresh := &fakeRefresh{}
	job := &CurrentPeriodJob{refresh: refresh, schedule: "@every 1h", now: julyNow}

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, []model.PeriodType{model.PeriodThirdQuarterly}, refresh.periods)
}

func TestOlderPeriodsJobSkipsCurrentPeriod(t *testing.T) {
	refresh := &fakeRefresh{}
	job := &OlderPeriodsJob{refresh: refresh, schedule: "@every 24h", now: julyNow}

	require.NoError(t, job.Run(context.Background()))

	assert.NotContains(t, refresh.periods, model.PeriodThirdQuarterly)
	assert.Len(t, refresh.periods, 3)
}

func TestOlderPeriodsJobContinuesPastFailures(t *testing.T) {
	refresh := &fakeRefresh{failOn: model.PeriodFirstQuarterly}
	job := &OlderPeriodsJob{refresh: refresh, schedule: "@every 24h", now: julyNow}

	err := job.Run(context.Background())
	require.Error(t, err)

	// The failing period must not starve the remaining sweeps.
	assert.Len(t, refresh.periods, 3)
}

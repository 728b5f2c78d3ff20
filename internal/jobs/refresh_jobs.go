package jobs

import (
	"context"
	"log"
	"time"

	"anoa.com/quarterdirectory/internal/model"
	"anoa.com/quarterdirectory/internal/service"
)

// CurrentPeriodJob refreshes only the quarter users are actively
// watching; it runs on the frequent cadence.
type CurrentPeriodJob struct {
	refresh  service.RefreshService
	schedule string
	now      func() time.Time
}

func NewCurrentPeriodJob(refresh service.RefreshService, schedule string) *CurrentPeriodJob {
	return &CurrentPeriodJob{
		refresh:  refresh,
		schedule: schedule,
		now:      time.Now,
	}
}

func (j *CurrentPeriodJob) Name() string     { return "directory-refresh-current" }
func (j *CurrentPeriodJob) Schedule() string { return j.schedule }

func (j *CurrentPeriodJob) Run(ctx context.Context) error {
	return j.refresh.RefreshPeriod(ctx, model.CurrentPeriod(j.now()))
}

// OlderPeriodsJob sweeps the closed quarters on the slow cadence; they
// only move on retroactive moderation, so daily is plenty.
type OlderPeriodsJob struct {
	refresh  service.RefreshService
	schedule string
	now      func() time.Time
}

func NewOlderPeriodsJob(refresh service.RefreshService, schedule string) *OlderPeriodsJob {
	return &OlderPeriodsJob{
		refresh:  refresh,
		schedule: schedule,
		now:      time.Now,
	}
}

func (j *OlderPeriodsJob) Name() string     { return "directory-refresh-older" }
func (j *OlderPeriodsJob) Schedule() string { return j.schedule }

func (j *OlderPeriodsJob) Run(ctx context.Context) error {
	current := model.CurrentPeriod(j.now())

	// Periods are independent; one failing refresh must not starve the
	// rest of the sweep.
	var firstErr error
	for _, period := range model.AllPeriods() {
		if period == current {
			continue
		}
		if err := j.refresh.RefreshPeriod(ctx, period); err != nil {
			log.Printf("[%s] Refresh of %s failed: %v", j.Name(), period.Key(), err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

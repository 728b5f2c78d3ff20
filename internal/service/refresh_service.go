package service

import (
	"context"
	"log"
	"time"

	"anoa.com/quarterdirectory/internal/model"
	"anoa.com/quarterdirectory/internal/repository"
)

// RefreshService is the aggregation engine: it recomputes the snapshot
// rows for a period from the activity log. Each call targets exactly one
// period and runs as one transaction, so periods never interfere.
type RefreshService interface {
	RefreshPeriod(ctx context.Context, period model.PeriodType) error
	RefreshAll(ctx context.Context) error
}

type refreshService struct {
	repo     repository.DirectoryRepository
	settings SiteSettings
	now      func() time.Time
}

func NewRefreshService(repo repository.DirectoryRepository, settings SiteSettings) RefreshService {
	return &refreshService{
		repo:     repo,
		settings: settings,
		now:      time.Now,
	}
}

func (s *refreshService) RefreshPeriod(ctx context.Context, period model.PeriodType) error {
	// The flag can flip between scheduled runs; a disabled directory is a
	// silent no-op, not an error.
	if !s.settings.DirectoryEnabled(ctx) {
		log.Printf("User directory disabled, skipping refresh of %s", period.Key())
		return nil
	}

	now := s.now()
	since := model.PeriodStart(period, now)

	stats, err := s.repo.RefreshPeriod(ctx, period, since)
	if err != nil {
		return err
	}

	log.Printf("Refreshed directory period %s (since %s): reaped=%d backfilled=%d updated=%d",
		period.Key(), since.Format(time.RFC3339), stats.Reaped, stats.Backfilled, stats.Updated)
	return nil
}

func (s *refreshService) RefreshAll(ctx context.Context) error {
	// Periods are independent; one failing refresh must not starve the
	// rest.
	var firstErr error
	for _, period := range model.AllPeriods() {
		if err := s.RefreshPeriod(ctx, period); err != nil {
			log.Printf("Refresh of %s failed: %v", period.Key(), err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

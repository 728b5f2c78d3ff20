package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/quarterdirectory/internal/model"
	"anoa.com/quarterdirectory/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refreshCall struct {
	period model.PeriodType
	since  time.Time
}

type fakeDirectoryRepo struct {
	repository.DirectoryRepository
	calls  []refreshCall
	failOn model.PeriodType
}

func (f *fakeDirectoryRepo) RefreshPeriod(_ context.Context, period model.PeriodType, since time.Time) (repository.RefreshStats, error) {
	f.calls = append(f.calls, refreshCall{period: period, since: since})
	if period == f.failOn {
		return repository.RefreshStats{}, errors.New("boom")
	}
	return repository.RefreshStats{}, nil
}

func TestRefreshPeriodSkipsWhenDirectoryDisabled(t *testing.T) {
	repo := &fakeDirectoryRepo{}
	svc := NewRefreshService(repo, NewStaticSiteSettings(false))

	err := svc.RefreshPeriod(context.Background(), model.PeriodFirstQuarterly)
	require.NoError(t, err)
	assert.Empty(t, repo.calls, "a disabled directory must not touch the store")
}

func TestRefreshPeriodUsesPeriodStartAsThreshold(t *testing.T) {
	repo := &fakeDirectoryRepo{}
	now := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)
	svc := &refreshService{
		repo:     repo,
		settings: NewStaticSiteSettings(true),
		now:      func() time.Time { return now },
	}

	require.NoError(t, svc.RefreshPeriod(context.Background(), model.PeriodThirdQuarterly))

	require.Len(t, repo.calls, 1)
	assert.Equal(t, model.PeriodThirdQuarterly, repo.calls[0].period)
	assert.Equal(t, model.PeriodStart(model.PeriodThirdQuarterly, now), repo.calls[0].since)
}

func TestRefreshAllCoversEveryPeriodIndependently(t *testing.T) {
	repo := &fakeDirectoryRepo{}
	svc := NewRefreshService(repo, NewStaticSiteSettings(true))

	require.NoError(t, svc.RefreshAll(context.Background()))

	require.Len(t, repo.calls, 4)
	seen := map[model.PeriodType]bool{}
	for _, call := range repo.calls {
		seen[call.period] = true
	}
	for _, p := range model.AllPeriods() {
		assert.True(t, seen[p], "period %s not refreshed", p.Key())
	}
}

func TestRefreshAllContinuesPastFailures(t *testing.T) {
	repo := &fakeDirectoryRepo{failOn: model.PeriodSecondQuarterly}
	svc := NewRefreshService(repo, NewStaticSiteSettings(true))

	err := svc.RefreshAll(context.Background())
	require.Error(t, err)

	// The failing period must not starve the remaining sweeps.
	require.Len(t, repo.calls, 4)
	seen := map[model.PeriodType]bool{}
	for _, call := range repo.calls {
		seen[call.period] = true
	}
	for _, p := range model.AllPeriods() {
		assert.True(t, seen[p], "period %s not refreshed", p.Key())
	}
}

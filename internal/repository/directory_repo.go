package repository

import (
	"context"
	"fmt"
	"time"

	"anoa.com/quarterdirectory/internal/model"
	"gorm.io/gorm"
)

// RefreshStats reports how many rows each step of a period refresh touched.
// A second refresh with no new activity must report zero across the board.
type RefreshStats struct {
	Reaped     int64
	Backfilled int64
	Updated    int64
}

// ListQuery describes one page of the ranked listing. Order must already be
// validated against model.Headings by the caller. UserIDs == nil means
// unconstrained; the caller resolves empty filter results before querying.
type ListQuery struct {
	Period    model.PeriodType
	Order     string
	Ascending bool
	Page      int
	Limit     int
	UserIDs   []int64
}

type DirectoryRepository interface {
	RefreshPeriod(ctx context.Context, period model.PeriodType, since time.Time) (RefreshStats, error)
	ListPage(ctx context.Context, q ListQuery) ([]model.DirectoryItem, int64, error)
	FindItem(ctx context.Context, period model.PeriodType, userID int64) (*model.DirectoryItem, error)
	CountByUsers(ctx context.Context, period model.PeriodType, userIDs []int64) (int64, error)
}

type directoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) DirectoryRepository {
	return &directoryRepository{db: db}
}

// RefreshPeriod recomputes the snapshot rows for one period inside a single
// transaction: reap rows whose user is gone, backfill a zero row for every
// real user missing one, then overwrite counts that changed since the period
// start. Concurrent readers see either the old or the new snapshot, never a
// half-applied one, and other periods are untouched.
func (r *directoryRepository) RefreshPeriod(ctx context.Context, period model.PeriodType, since time.Time) (RefreshStats, error) {
	var stats RefreshStats

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			DELETE FROM directory_items
			WHERE period_type = ?
			  AND user_id NOT IN (SELECT id FROM users)`, period)
		if res.Error != nil {
			return fmt.Errorf("reap orphan rows: %w", res.Error)
		}
		stats.Reaped = res.RowsAffected

		res = tx.Exec(`
			INSERT INTO directory_items (period_type, user_id, topic_count, post_count, total_participation)
			SELECT ?, u.id, 0, 0, 0
			FROM users u
			WHERE u.id > 0
			  AND NOT EXISTS (
			      SELECT 1 FROM directory_items di
			      WHERE di.user_id = u.id AND di.period_type = ?)`, period, period)
		if res.Error != nil {
			return fmt.Errorf("backfill rows: %w", res.Error)
		}
		stats.Backfilled = res.RowsAffected

		// Only rows whose counts actually differ are overwritten, so
		// callers watching the table see no churn on a quiet refresh.
		res = tx.Exec(`
			WITH tallies AS (
			    SELECT ua.user_id AS user_id,
			           SUM(CASE WHEN ua.action_type = ? THEN 1 ELSE 0 END) AS topic_count,
			           SUM(CASE WHEN ua.action_type = ? THEN 1 ELSE 0 END) AS post_count
			    FROM user_actions ua
			    JOIN users u ON u.id = ua.user_id
			    WHERE u.active
			      AND NOT u.blocked
			      AND u.id > 0
			      AND ua.created_at >= ?
			      AND (ua.target_topic_id IS NULL OR EXISTS (
			          SELECT 1 FROM topics t
			          WHERE t.id = ua.target_topic_id
			            AND t.archetype = ?
			            AND t.deleted_at IS NULL
			            AND t.visible))
			      AND (ua.target_post_id IS NULL OR EXISTS (
			          SELECT 1 FROM posts p
			          WHERE p.id = ua.target_post_id
			            AND p.deleted_at IS NULL
			            AND NOT p.hidden
			            AND p.post_type = ?))
			    GROUP BY ua.user_id
			)
			UPDATE directory_items SET
			    topic_count = tallies.topic_count,
			    post_count = tallies.post_count,
			    total_participation = tallies.topic_count + tallies.post_count
			FROM tallies
			WHERE tallies.user_id = directory_items.user_id
			  AND directory_items.period_type = ?
			  AND (directory_items.topic_count <> tallies.topic_count
			       OR directory_items.post_count <> tallies.post_count)`,
			model.ActionNewTopic, model.ActionReply, since,
			model.ArchetypeRegular, model.PostTypeRegular, period)
		if res.Error != nil {
			return fmt.Errorf("recompute counts: %w", res.Error)
		}
		stats.Updated = res.RowsAffected

		return nil
	})
	if err != nil {
		return RefreshStats{}, err
	}

	return stats, nil
}

func (r *directoryRepository) ListPage(ctx context.Context, q ListQuery) ([]model.DirectoryItem, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.DirectoryItem{}).
		Joins("JOIN users ON users.id = directory_items.user_id").
		Where("directory_items.period_type = ?", q.Period)

	if q.UserIDs != nil {
		base = base.Where("directory_items.user_id IN ?", q.UserIDs)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dir := "DESC"
	if q.Ascending {
		dir = "ASC"
	}

	var items []model.DirectoryItem
	err := base.Session(&gorm.Session{}).
		Order(fmt.Sprintf("directory_items.%s %s", q.Order, dir)).
		Order("users.username ASC").
		Limit(q.Limit).
		Offset(q.Page * q.Limit).
		Preload("User").
		Preload("UserStat").
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *directoryRepository) FindItem(ctx context.Context, period model.PeriodType, userID int64) (*model.DirectoryItem, error) {
	var item model.DirectoryItem
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("UserStat").
		Where("period_type = ? AND user_id = ?", period, userID).
		First(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *directoryRepository) CountByUsers(ctx context.Context, period model.PeriodType, userIDs []int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DirectoryItem{}).
		Where("period_type = ? AND user_id IN ?", period, userIDs).
		Count(&count).Error
	return count, err
}

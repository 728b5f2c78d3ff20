package repository

import (
	"context"
	"errors"

	"anoa.com/quarterdirectory/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	// FindIDByUsername resolves an exact, case-insensitive username to a
	// user id. Returns 0 with no error when nothing matches.
	FindIDByUsername(ctx context.Context, username string) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// ListActiveAfter pages through active real users in id order, for
	// search index synchronization.
	ListActiveAfter(ctx context.Context, afterID int64, limit int) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindIDByUsername(ctx context.Context, username string) (int64, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Select("id").
		Where("username_lower = ?", model.NormalizeUsername(username)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) ListActiveAfter(ctx context.Context, afterID int64, limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("id > ? AND active AND NOT blocked", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

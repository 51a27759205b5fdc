package store

import (
	"context"
	"errors"

	"github.com/Arivumathi323/login/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DB implements Gateway over GORM.
type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) *DB {
	return &DB{db: db}
}

func (g *DB) FetchProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Op: "fetch profile", Err: err}
	}
	return &profile, nil
}

func (g *DB) FetchRecentActivities(ctx context.Context, id uuid.UUID, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	var activities []models.Activity
	err := g.db.WithContext(ctx).
		Where("user_id = ?", id).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, &Error{Op: "fetch activities", Err: err}
	}
	return activities, nil
}

func (g *DB) CountActivities(ctx context.Context, id uuid.UUID, activityType string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Model(&models.Activity{}).
		Where("user_id = ? AND activity_type = ?", id, activityType).
		Count(&count).Error
	if err != nil {
		return 0, &Error{Op: "count activities", Err: err}
	}
	return count, nil
}

func (g *DB) InsertActivity(ctx context.Context, id uuid.UUID, activityType, title string, description *string) error {
	activity := models.Activity{
		UserID:       id,
		ActivityType: activityType,
		Title:        title,
		Description:  description,
	}
	if err := g.db.WithContext(ctx).Create(&activity).Error; err != nil {
		return &Error{Op: "insert activity", Err: err}
	}
	return nil
}

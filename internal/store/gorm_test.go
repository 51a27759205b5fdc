package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Arivumathi323/login/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testGateway(t *testing.T) *DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Activity{}))

	return NewDB(db)
}

func seedActivity(t *testing.T, g *DB, userID uuid.UUID, activityType, title string, createdAt time.Time) models.Activity {
	t.Helper()

	activity := models.Activity{
		UserID:       userID,
		ActivityType: activityType,
		Title:        title,
		CreatedAt:    createdAt,
	}
	require.NoError(t, g.db.Create(&activity).Error)
	return activity
}

func TestFetchProfileAbsent(t *testing.T) {
	g := testGateway(t)

	profile, err := g.FetchProfile(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, profile)
}

func TestFetchProfileIdempotent(t *testing.T) {
	g := testGateway(t)
	userID := uuid.New()
	require.NoError(t, g.db.Create(&models.Profile{ID: userID, FullName: "Ada Lovelace", Email: "ada@example.com"}).Error)

	first, err := g.FetchProfile(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := g.FetchProfile(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestFetchRecentActivitiesOrderAndLimit(t *testing.T) {
	g := testGateway(t)
	userID := uuid.New()
	base := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		seedActivity(t, g, userID, models.ActivityTaskAdded, "Task", base.Add(time.Duration(i)*time.Minute))
	}
	// Another user's rows must never leak into the feed.
	seedActivity(t, g, uuid.New(), models.ActivityTaskAdded, "Other user", base.Add(time.Hour))

	activities, err := g.FetchRecentActivities(context.Background(), userID, DefaultFeedLimit)
	require.NoError(t, err)
	require.Len(t, activities, 10)

	for i := 1; i < len(activities); i++ {
		require.False(t, activities[i].CreatedAt.After(activities[i-1].CreatedAt),
			"feed must be sorted newest first")
	}
	for _, a := range activities {
		require.Equal(t, userID, a.UserID)
	}
}

func TestFetchRecentActivitiesDeterministicTieBreak(t *testing.T) {
	g := testGateway(t)
	userID := uuid.New()
	at := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		seedActivity(t, g, userID, models.ActivityTaskAdded, "Same instant", at)
	}

	first, err := g.FetchRecentActivities(context.Background(), userID, DefaultFeedLimit)
	require.NoError(t, err)
	second, err := g.FetchRecentActivities(context.Background(), userID, DefaultFeedLimit)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCountMatchesUnlimitedFetch(t *testing.T) {
	g := testGateway(t)
	userID := uuid.New()
	base := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		seedActivity(t, g, userID, models.ActivityTaskAdded, "Added", base.Add(time.Duration(i)*time.Second))
	}
	for i := 0; i < 3; i++ {
		seedActivity(t, g, userID, models.ActivityTaskCompleted, "Completed", base.Add(time.Duration(i)*time.Second))
	}
	seedActivity(t, g, userID, "password_changed", "Password changed", base)

	count, err := g.CountActivities(context.Background(), userID, models.ActivityTaskAdded)
	require.NoError(t, err)

	all, err := g.FetchRecentActivities(context.Background(), userID, 1000)
	require.NoError(t, err)
	var added int64
	for _, a := range all {
		if a.ActivityType == models.ActivityTaskAdded {
			added++
		}
	}
	require.Equal(t, added, count)

	completed, err := g.CountActivities(context.Background(), userID, models.ActivityTaskCompleted)
	require.NoError(t, err)
	require.Equal(t, int64(3), completed)
}

func TestInsertActivityRoundTrip(t *testing.T) {
	g := testGateway(t)
	userID := uuid.New()

	require.NoError(t, g.InsertActivity(context.Background(), userID, models.ActivityTaskAdded, "X", nil))

	activities, err := g.FetchRecentActivities(context.Background(), userID, DefaultFeedLimit)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, "X", activities[0].Title)
	require.Equal(t, models.ActivityTaskAdded, activities[0].ActivityType)
	require.NotEqual(t, uuid.Nil, activities[0].ID)
	require.False(t, activities[0].CreatedAt.IsZero())
}

func TestInsertActivityNewestFirst(t *testing.T) {
	g := testGateway(t)
	userID := uuid.New()
	seedActivity(t, g, userID, models.ActivityTaskAdded, "Old", time.Now().Add(-time.Hour))

	require.NoError(t, g.InsertActivity(context.Background(), userID, models.ActivityTaskCompleted, "New", nil))

	activities, err := g.FetchRecentActivities(context.Background(), userID, DefaultFeedLimit)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	require.Equal(t, "New", activities[0].Title)
}

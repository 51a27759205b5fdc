// Package store is the typed boundary to the profiles and activities
// tables. Every call is a fresh round trip; nothing is cached client-side,
// trading latency for never serving stale rows.
package store

import (
	"context"
	"fmt"

	"github.com/Arivumathi323/login/internal/models"
	"github.com/google/uuid"
)

// DefaultFeedLimit caps the recent-activity feed.
const DefaultFeedLimit = 10

// Error wraps a failed store operation. Reads that fail are absorbed into
// defaults by the dashboard; writes surface it to the caller.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Gateway is the read/write contract the dashboard is built on.
type Gateway interface {
	// FetchProfile returns the profile row for id, or nil when none
	// exists yet. Absence is not an error.
	FetchProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)

	// FetchRecentActivities returns up to limit activities for id,
	// newest first. Ties on created_at break on id so the order is
	// deterministic within a query.
	FetchRecentActivities(ctx context.Context, id uuid.UUID, limit int) ([]models.Activity, error)

	// CountActivities counts rows matching the same filter the feed
	// uses, without transferring them.
	CountActivities(ctx context.Context, id uuid.UUID, activityType string) (int64, error)

	// InsertActivity appends one event. The store assigns id and
	// created_at.
	InsertActivity(ctx context.Context, id uuid.UUID, activityType, title string, description *string) error
}

// Package dashboard assembles one user's dashboard view from the store
// gateway: profile header, recent-activity feed, and the two task
// counters.
package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Arivumathi323/login/internal/models"
	"github.com/Arivumathi323/login/internal/store"
	"github.com/google/uuid"
)

// FallbackName is shown when the profile row has not landed yet.
const FallbackName = "there"

type Stats struct {
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

// Entry is one rendered feed row.
type Entry struct {
	ID           uuid.UUID `json:"id"`
	ActivityType string    `json:"activityType"`
	Icon         string    `json:"icon"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	Age          string    `json:"age"`
}

// View is everything one dashboard paint needs.
type View struct {
	FullName   string  `json:"fullName"`
	Email      string  `json:"email"`
	Stats      Stats   `json:"stats"`
	Activities []Entry `json:"activities"`
}

// Refresh is the slice of the view recomputed after recording an
// activity. The profile header is left alone.
type Refresh struct {
	Stats      Stats   `json:"stats"`
	Activities []Entry `json:"activities"`
}

// Aggregator orchestrates gateway calls for the dashboard. It keeps no
// state between calls; every view is built from fresh reads.
type Aggregator struct {
	gateway store.Gateway
	now     func() time.Time
}

func New(gateway store.Gateway) *Aggregator {
	return &Aggregator{gateway: gateway, now: time.Now}
}

// Load builds the full view for id. The four reads are independent and
// run concurrently; the view is ready only once all of them have either
// returned or degraded to their default. A failed read never fails the
// view: missing profile falls back to a default name, a failed feed
// renders empty, failed counts render zero.
func (a *Aggregator) Load(ctx context.Context, id uuid.UUID) View {
	var (
		profile    *models.Profile
		activities []models.Activity
		stats      Stats
		wg         sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		p, err := a.gateway.FetchProfile(ctx, id)
		if err != nil {
			log.Printf("dashboard: profile fetch failed for %s: %v", id, err)
			return
		}
		profile = p
	}()
	go func() {
		defer wg.Done()
		list, err := a.gateway.FetchRecentActivities(ctx, id, store.DefaultFeedLimit)
		if err != nil {
			log.Printf("dashboard: activity fetch failed for %s: %v", id, err)
			return
		}
		activities = list
	}()
	go func() {
		defer wg.Done()
		stats.Active = a.count(ctx, id, models.ActivityTaskAdded)
	}()
	go func() {
		defer wg.Done()
		stats.Completed = a.count(ctx, id, models.ActivityTaskCompleted)
	}()
	wg.Wait()

	view := View{
		FullName:   FallbackName,
		Stats:      stats,
		Activities: a.entries(activities),
	}
	if profile != nil {
		view.FullName = profile.FullName
		view.Email = profile.Email
	}
	return view
}

// Record appends an activity and refetches the feed and both counters.
// There is no optimistic client-side splice: the window between the
// insert landing and the refetch completing is an accepted cost of never
// reconciling a local copy against the store. The insert error is
// returned as-is so the caller can report it without tearing down the
// view; refresh reads degrade exactly like Load.
func (a *Aggregator) Record(ctx context.Context, id uuid.UUID, activityType, title string, description *string) (*Refresh, error) {
	if err := a.gateway.InsertActivity(ctx, id, activityType, title, description); err != nil {
		return nil, err
	}

	var (
		activities []models.Activity
		stats      Stats
		wg         sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		list, err := a.gateway.FetchRecentActivities(ctx, id, store.DefaultFeedLimit)
		if err != nil {
			log.Printf("dashboard: activity refresh failed for %s: %v", id, err)
			return
		}
		activities = list
	}()
	go func() {
		defer wg.Done()
		stats.Active = a.count(ctx, id, models.ActivityTaskAdded)
	}()
	go func() {
		defer wg.Done()
		stats.Completed = a.count(ctx, id, models.ActivityTaskCompleted)
	}()
	wg.Wait()

	return &Refresh{Stats: stats, Activities: a.entries(activities)}, nil
}

func (a *Aggregator) count(ctx context.Context, id uuid.UUID, activityType string) int64 {
	n, err := a.gateway.CountActivities(ctx, id, activityType)
	if err != nil {
		log.Printf("dashboard: %s count failed for %s: %v", activityType, id, err)
		return 0
	}
	return n
}

func (a *Aggregator) entries(activities []models.Activity) []Entry {
	now := a.now()
	entries := make([]Entry, 0, len(activities))
	for _, act := range activities {
		entries = append(entries, Entry{
			ID:           act.ID,
			ActivityType: act.ActivityType,
			Icon:         ParseKind(act.ActivityType).Icon(),
			Title:        act.Title,
			Description:  act.Description,
			CreatedAt:    act.CreatedAt,
			Age:          TimeAgo(act.CreatedAt, now),
		})
	}
	return entries
}

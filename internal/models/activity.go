package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity types the dashboard counts. The column stays an open string so
// new event types can land without a migration; anything unrecognized
// renders with a generic icon and is excluded from the task counters.
const (
	ActivityTaskAdded     = "task_added"
	ActivityTaskCompleted = "task_completed"
)

// Activity is one row of the per-user event log. Rows are append-only:
// there is no update or delete path anywhere in the API.
type Activity struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	ActivityType string    `json:"activityType" gorm:"not null"`
	Title        string    `json:"title" gorm:"not null"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type CreateActivityRequest struct {
	ActivityType string  `json:"activityType" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
}

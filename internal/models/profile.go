package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public-facing row for an account. It shares its primary
// key with the auth provider's user record and is created by the provider
// at sign-up, so a freshly registered account may briefly have no profile.
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FullName  string    `json:"fullName" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

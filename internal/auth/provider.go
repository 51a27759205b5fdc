package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is the result of a successful sign-up or sign-in.
type Session struct {
	UserID    uuid.UUID
	Email     string
	FullName  string
	Token     string
	ExpiresAt time.Time
}

// Error is a provider rejection. Its message is shown to the user as-is,
// so it must never contain internals.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Provider is the authentication boundary. The rest of the app only ever
// talks to this interface; the local implementation below stands in for a
// hosted identity service.
type Provider interface {
	SignUp(ctx context.Context, email, password, fullName string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
}

// Package register runs the sign-up flow: local validation first, then
// the auth provider, then the session store.
package register

import (
	"context"
	"sync"

	"github.com/Arivumathi323/login/internal/auth"
	"github.com/Arivumathi323/login/internal/session"
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateFailed
)

// Input is the raw registration form.
type Input struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	AgreedToTerms   bool
}

// ValidationError is a local rejection, produced before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate applies the form checks in order; the first failure wins.
func Validate(in Input) error {
	if in.Password != in.ConfirmPassword {
		return &ValidationError{Message: "Passwords do not match"}
	}
	if len(in.Password) < 6 {
		return &ValidationError{Message: "Password must be at least 6 characters"}
	}
	if !in.AgreedToTerms {
		return &ValidationError{Message: "Please agree to the terms and privacy policy"}
	}
	return nil
}

// Flow drives one registration attempt at a time through
// Idle → Validating → Submitting → Success, dropping back to Idle on any
// failure. Provider messages pass through verbatim.
type Flow struct {
	provider auth.Provider
	sessions *session.Store

	mu    sync.Mutex
	state State
}

func NewFlow(provider auth.Provider, sessions *session.Store) *Flow {
	return &Flow{provider: provider, sessions: sessions, state: StateIdle}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// Submit validates the form and, when it passes, signs the user up and
// records the new identity in the session store. Validation failures are
// returned before the provider is ever contacted.
func (f *Flow) Submit(ctx context.Context, in Input) (*auth.Session, error) {
	f.setState(StateValidating)
	if err := Validate(in); err != nil {
		f.setState(StateIdle)
		return nil, err
	}

	f.setState(StateSubmitting)
	sess, err := f.provider.SignUp(ctx, in.Email, in.Password, in.FullName)
	if err != nil {
		f.setState(StateIdle)
		return nil, err
	}

	f.sessions.Set(session.Identity{ID: sess.UserID, Email: sess.Email})
	f.setState(StateSuccess)
	return sess, nil
}

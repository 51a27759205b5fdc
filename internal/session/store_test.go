package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCurrentEmptyByDefault(t *testing.T) {
	s := New()
	_, ok := s.Current()
	require.False(t, ok)
}

func TestSetAndClear(t *testing.T) {
	s := New()
	id := Identity{ID: uuid.New(), Email: "ada@example.com"}

	s.Set(id)
	current, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, id, current)

	s.Clear()
	_, ok = s.Current()
	require.False(t, ok)
}

func TestOnChangeNotifications(t *testing.T) {
	s := New()

	type change struct {
		id       Identity
		signedIn bool
	}
	var changes []change
	s.OnChange(func(id Identity, signedIn bool) {
		changes = append(changes, change{id: id, signedIn: signedIn})
	})

	id := Identity{ID: uuid.New(), Email: "ada@example.com"}
	s.Set(id)
	s.Clear()

	require.Len(t, changes, 2)
	require.True(t, changes[0].signedIn)
	require.Equal(t, id, changes[0].id)
	require.False(t, changes[1].signedIn)
}

func TestHandlerObservesCompleteIdentity(t *testing.T) {
	s := New()

	// By the time a handler runs, Current must already report the new
	// identity: the swap happens before notification.
	var seen Identity
	s.OnChange(func(id Identity, signedIn bool) {
		current, ok := s.Current()
		require.True(t, ok)
		seen = current
	})

	id := Identity{ID: uuid.New(), Email: "ada@example.com"}
	s.Set(id)
	require.Equal(t, id, seen)
}

package dashboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	require.Equal(t, KindTaskAdded, ParseKind("task_added"))
	require.Equal(t, KindTaskCompleted, ParseKind("task_completed"))
	require.Equal(t, KindOther, ParseKind("profile_updated"))
	require.Equal(t, KindOther, ParseKind(""))
}

func TestKindIcon(t *testing.T) {
	require.Equal(t, "plus-circle", KindTaskAdded.Icon())
	require.Equal(t, "check", KindTaskCompleted.Icon())
	require.Equal(t, "check-circle", KindOther.Icon())
}

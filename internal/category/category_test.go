package category

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCanonicalPassesThrough(t *testing.T) {
	got, ok := Resolve(TaskComplete)
	require.True(t, ok)
	require.Equal(t, TaskComplete, got)
}

func TestResolveAliases(t *testing.T) {
	tests := []struct {
		alias Category
		want  Category
	}{
		{alias: "stop", want: TaskComplete},
		{alias: "complete", want: TaskComplete},
		{alias: "notification", want: PermissionAsk},
		{alias: "start", want: SessionStart},
		{alias: "remind", want: TrainerRemind},
	}

	for _, tc := range tests {
		got, ok := Resolve(tc.alias)
		require.True(t, ok, "alias %q", tc.alias)
		require.Equal(t, tc.want, got)
	}
}

func TestResolveUnknownFails(t *testing.T) {
	_, ok := Resolve("task.completely.made.up")
	require.False(t, ok)
}

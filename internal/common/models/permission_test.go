package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionLevelValid(t *testing.T) {
	for l := LevelNone; l <= LevelAll; l++ {
		assert.True(t, l.Valid(), "level %d should be valid", l)
	}
	assert.False(t, PermissionLevel(-1).Valid())
	assert.False(t, PermissionLevel(5).Valid())
}

func TestPermissionLevelValidate(t *testing.T) {
	require.NoError(t, LevelEdit.Validate("dashboard"))

	err := PermissionLevel(7).Validate("dashboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard must be one of")
}

func TestVisibleActions(t *testing.T) {
	tests := []struct {
		level PermissionLevel
		want  Actions
	}{
		{LevelNone, Actions{}},
		{LevelView, Actions{CanView: true}},
		{LevelEdit, Actions{CanView: true, CanEdit: true}},
		{LevelDelete, Actions{CanView: true, CanEdit: true, CanDelete: true}},
		{LevelAll, Actions{CanView: true, CanEdit: true, CanDelete: true, CanAll: true}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VisibleActions(tt.level), "level %d", tt.level)
	}
}

func TestPermissionMapLevel(t *testing.T) {
	m := PermissionMap{
		Dashboard:         LevelView,
		BookingManagement: LevelAll,
	}

	assert.Equal(t, LevelView, m.Level(CategoryDashboard))
	assert.Equal(t, LevelAll, m.Level(CategoryBooking))
	assert.Equal(t, LevelNone, m.Level(CategoryBlog))
	assert.Equal(t, LevelNone, m.Level("unknownCategory"))
}

func TestPermissionMapValidate(t *testing.T) {
	assert.NoError(t, PermissionMap{}.Validate())

	m := PermissionMap{SuggestionsManagement: PermissionLevel(9)}
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), CategorySuggestions)
}

func TestAllCategoriesClosedSet(t *testing.T) {
	require.Len(t, AllCategories, 7)

	seen := map[string]bool{}
	for _, c := range AllCategories {
		assert.False(t, seen[c], "duplicate category %s", c)
		seen[c] = true
	}
}

package models

import "fmt"

// PermissionLevel is the ordinal access level a role holds for a resource
// category. A higher level implies every action allowed by lower levels.
type PermissionLevel int

const (
	LevelNone   PermissionLevel = 0
	LevelView   PermissionLevel = 1
	LevelEdit   PermissionLevel = 2
	LevelDelete PermissionLevel = 3
	LevelAll    PermissionLevel = 4
)

// Valid reports whether l is inside the {0..4} scale.
func (l PermissionLevel) Valid() bool {
	return l >= LevelNone && l <= LevelAll
}

// Validate returns the descriptive error the API surfaces for out-of-range
// permission values.
func (l PermissionLevel) Validate(fieldName string) error {
	if !l.Valid() {
		return fmt.Errorf("%s must be one of: 0 (none), 1 (view), 2 (edit), 3 (delete), 4 (all)", fieldName)
	}
	return nil
}

// Resource categories a role can hold a level for. The set is closed.
const (
	CategoryDashboard          = "dashboard"
	CategoryBooking            = "bookingManagement"
	CategoryBlog               = "blogManagement"
	CategoryContactUs          = "contactUsManagement"
	CategorySuggestions        = "suggestionsManagement"
	CategoryBackendUser        = "backendUserManagement"
	CategoryRoleAndPermissions = "roleAndPermissionManagement"
)

// AllCategories lists every resource category, in the order the role
// document stores them.
var AllCategories = []string{
	CategoryDashboard,
	CategoryBooking,
	CategoryBlog,
	CategoryContactUs,
	CategorySuggestions,
	CategoryBackendUser,
	CategoryRoleAndPermissions,
}

// PermissionMap assigns a level to every resource category. Categories are
// never absent: the zero value of each field is LevelNone.
type PermissionMap struct {
	Dashboard                   PermissionLevel `json:"dashboard" bson:"dashboard"`
	BookingManagement           PermissionLevel `json:"bookingManagement" bson:"bookingManagement"`
	BlogManagement              PermissionLevel `json:"blogManagement" bson:"blogManagement"`
	ContactUsManagement         PermissionLevel `json:"contactUsManagement" bson:"contactUsManagement"`
	SuggestionsManagement       PermissionLevel `json:"suggestionsManagement" bson:"suggestionsManagement"`
	BackendUserManagement       PermissionLevel `json:"backendUserManagement" bson:"backendUserManagement"`
	RoleAndPermissionManagement PermissionLevel `json:"roleAndPermissionManagement" bson:"roleAndPermissionManagement"`
}

// Level returns the level held for a category. Unknown categories map to
// LevelNone.
func (m PermissionMap) Level(category string) PermissionLevel {
	switch category {
	case CategoryDashboard:
		return m.Dashboard
	case CategoryBooking:
		return m.BookingManagement
	case CategoryBlog:
		return m.BlogManagement
	case CategoryContactUs:
		return m.ContactUsManagement
	case CategorySuggestions:
		return m.SuggestionsManagement
	case CategoryBackendUser:
		return m.BackendUserManagement
	case CategoryRoleAndPermissions:
		return m.RoleAndPermissionManagement
	}
	return LevelNone
}

// Validate checks every category level against the {0..4} scale.
func (m PermissionMap) Validate() error {
	for _, category := range AllCategories {
		if err := m.Level(category).Validate(category); err != nil {
			return err
		}
	}
	return nil
}

// Actions is the set of UI/API actions a permission level unlocks.
type Actions struct {
	CanView   bool `json:"canView"`
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
	CanAll    bool `json:"canAll"`
}

// VisibleActions maps a level onto the actions it gates: view>=1, edit>=2,
// delete>=3, all/approve>=4.
func VisibleActions(level PermissionLevel) Actions {
	return Actions{
		CanView:   level >= LevelView,
		CanEdit:   level >= LevelEdit,
		CanDelete: level >= LevelDelete,
		CanAll:    level >= LevelAll,
	}
}

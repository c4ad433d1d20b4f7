package models

// AuthUserKey is the Fiber locals key the auth middleware stores the
// resolved AuthContext under.
const AuthUserKey = "authUser"

// NoRoleName is returned as the role name for identities without an
// assigned role.
const NoRoleName = "No Role"

// AuthContext is the per-request identity resolved by the auth middleware:
// the backend user, its role name and the role's full permission map.
type AuthContext struct {
	UserID      string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Role        string        `json:"role"`
	Permissions PermissionMap `json:"permissions"`
}

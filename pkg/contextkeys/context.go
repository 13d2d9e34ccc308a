package contextkeys

// Key is the typed context key used across packages.
type Key string

const (
	// UserIDContextKey holds the authenticated user id set by the auth middleware.
	UserIDContextKey Key = "userID"
	// RoleContextKey holds the authenticated user's role.
	RoleContextKey Key = "role"
)

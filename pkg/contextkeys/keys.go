package contextkeys

type contextKey string

const (
	UserIDKey          contextKey = "UserID"
	UserNameKey        contextKey = "UserName"
	UserRoleIDKey      contextKey = "UserRoleID"
	UserPermissionsKey contextKey = "UserPermissions"
	SessionIDKey       contextKey = "SessionID"
)

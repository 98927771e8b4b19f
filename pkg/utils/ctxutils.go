package utils

import (
	"context"

	"fleet-system/pkg/contextkeys"
	apperrors "fleet-system/pkg/errors"
)

// Actor identifies who triggered an operation; resolved by the auth
// middleware, never by the business layer.
type Actor struct {
	ID   uint64
	Name string
}

func ActorFromContext(ctx context.Context) (Actor, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || id == 0 {
		return Actor{}, apperrors.ErrUserIDNotFoundInContext
	}
	name, _ := ctx.Value(contextkeys.UserNameKey).(string)
	return Actor{ID: id, Name: name}, nil
}

func PermissionsFromContext(ctx context.Context) map[string]bool {
	perms, ok := ctx.Value(contextkeys.UserPermissionsKey).(map[string]bool)
	if !ok {
		return map[string]bool{}
	}
	return perms
}

func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(contextkeys.SessionIDKey).(string)
	return sessionID
}

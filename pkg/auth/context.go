package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const actorIDKey contextKey = "actor_id"

// ErrActorIDNotFound is returned when no ActorID exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrActorIDNotFound = errors.New("actor_id not found in context")

// ActorIDFromCtx extracts the authenticated user ID from the request context.
// Stock movements are attributed to this actor.
// Returns uuid.Nil and ErrActorIDNotFound if no ActorID is set (unauthenticated request).
func ActorIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	actorID, ok := ctx.Value(actorIDKey).(uuid.UUID)
	if !ok || actorID == uuid.Nil {
		return uuid.Nil, ErrActorIDNotFound
	}
	return actorID, nil
}

// WithActorID returns a new context with the given ActorID attached.
// Used by authentication middleware after validating the session.
func WithActorID(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorIDKey, actorID)
}

package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const eventIDKey ctxKey = "event_id"

// WithEventID stores the inbound event ID in the context. The dispatcher
// assigns one per event so every log line of a handler can be correlated.
func WithEventID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, eventIDKey, id)
}

// EventIDFromCtx extracts the event ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func EventIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(eventIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

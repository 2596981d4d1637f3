package service

import (
	"context"
	"time"
)

// ClientStore minimal surface of the client collection needed by the
// timeline side effects. Kept as an interface so the counter logic is
// testable without a live database.
type ClientStore interface {
	// ApplyVisitDelta adjusts qtdeVisitas by delta. A positive delta also
	// refreshes ultimaAtualizacao; updatedAt is stamped either way.
	ApplyVisitDelta(ctx context.Context, clientID string, delta int, now time.Time) error
	// TouchLastUpdate refreshes ultimaAtualizacao and updatedAt.
	TouchLastUpdate(ctx context.Context, clientID string, now time.Time) error
}

// RecordVisitCreated bumps the parent client's visit counter after a visit
// is inserted. The two writes are not atomic; a failure here is logged by
// the caller and left unreconciled.
func RecordVisitCreated(ctx context.Context, store ClientStore, clientID string, now time.Time) error {
	return store.ApplyVisitDelta(ctx, clientID, 1, now)
}

// RecordVisitDeleted undoes the counter bump after a visit is removed
func RecordVisitDeleted(ctx context.Context, store ClientStore, clientID string, now time.Time) error {
	return store.ApplyVisitDelta(ctx, clientID, -1, now)
}

// RecordInteractionCreated marks the client as contacted now
func RecordInteractionCreated(ctx context.Context, store ClientStore, clientID string, now time.Time) error {
	return store.TouchLastUpdate(ctx, clientID, now)
}

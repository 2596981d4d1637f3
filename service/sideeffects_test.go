package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClientStore in-memory ClientStore recording mutations
type fakeClientStore struct {
	visits      map[string]int
	lastContact map[string]time.Time
	updatedAt   map[string]time.Time
	failNext    error
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{
		visits:      map[string]int{},
		lastContact: map[string]time.Time{},
		updatedAt:   map[string]time.Time{},
	}
}

func (f *fakeClientStore) ApplyVisitDelta(ctx context.Context, clientID string, delta int, now time.Time) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.visits[clientID] += delta
	if delta > 0 {
		f.lastContact[clientID] = now
	}
	f.updatedAt[clientID] = now
	return nil
}

func (f *fakeClientStore) TouchLastUpdate(ctx context.Context, clientID string, now time.Time) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.lastContact[clientID] = now
	f.updatedAt[clientID] = now
	return nil
}

func TestRecordVisitCreated(t *testing.T) {
	store := newFakeClientStore()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, RecordVisitCreated(context.Background(), store, "c1", now))
	require.NoError(t, RecordVisitCreated(context.Background(), store, "c1", now))

	assert.Equal(t, 2, store.visits["c1"])
	assert.Equal(t, now, store.lastContact["c1"])
	assert.Equal(t, now, store.updatedAt["c1"])
}

func TestRecordVisitDeleted(t *testing.T) {
	store := newFakeClientStore()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	later := now.Add(2 * time.Hour)

	require.NoError(t, RecordVisitCreated(context.Background(), store, "c1", now))
	require.NoError(t, RecordVisitDeleted(context.Background(), store, "c1", later))

	assert.Equal(t, 0, store.visits["c1"])
	// deleting a visit is not a new contact
	assert.Equal(t, now, store.lastContact["c1"])
	assert.Equal(t, later, store.updatedAt["c1"])
}

func TestRecordInteractionCreated(t *testing.T) {
	store := newFakeClientStore()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, RecordInteractionCreated(context.Background(), store, "c1", now))

	assert.Equal(t, 0, store.visits["c1"])
	assert.Equal(t, now, store.lastContact["c1"])
}

func TestRecordVisitCreatedPropagatesError(t *testing.T) {
	store := newFakeClientStore()
	store.failNext = errors.New("write failed")

	err := RecordVisitCreated(context.Background(), store, "c1", time.Now())
	assert.Error(t, err)
	assert.Equal(t, 0, store.visits["c1"])
}

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Skotchmaster/items_api/internal/events"
	"github.com/Skotchmaster/items_api/internal/models"
	"github.com/Skotchmaster/items_api/internal/repo"
)

var errBoom = errors.New("boom")

type recordedEvent struct {
	Topic string
	Key   string
	Event events.Event
}

type recorder struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (r *recorder) Publish(_ context.Context, topic, key string, ev events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Topic: topic, Key: key, Event: ev})
	return r.err
}

func (r *recorder) Close() error { return nil }

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Event.Type)
	}
	return out
}

// raceStore wraps a store and can pretend the row vanished between read and write.
type raceStore struct {
	ItemStore
	vanish   bool
	getErr   error
	writeErr error
}

func (s *raceStore) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.ItemStore.GetItem(ctx, id)
}

func (s *raceStore) UpdateItem(ctx context.Context, id uint, ownerID uint, name string, d *string) (bool, error) {
	if s.writeErr != nil {
		return false, s.writeErr
	}
	if s.vanish {
		return false, nil
	}
	return s.ItemStore.UpdateItem(ctx, id, ownerID, name, d)
}

func (s *raceStore) DeleteItem(ctx context.Context, id uint, ownerID uint) (bool, error) {
	if s.writeErr != nil {
		return false, s.writeErr
	}
	if s.vanish {
		return false, nil
	}
	return s.ItemStore.DeleteItem(ctx, id, ownerID)
}

type fakeIndex struct {
	docs      map[uint]models.Item
	searchErr error
	failWrite bool
	lastQuery string
}

func newFakeIndex() *fakeIndex { return &fakeIndex{docs: map[uint]models.Item{}} }

func (x *fakeIndex) IndexItem(_ context.Context, item models.Item) error {
	if x.failWrite {
		return errBoom
	}
	x.docs[item.ID] = item
	return nil
}

func (x *fakeIndex) DeleteItem(_ context.Context, id uint) error {
	if x.failWrite {
		return errBoom
	}
	delete(x.docs, id)
	return nil
}

func (x *fakeIndex) SearchItems(_ context.Context, ownerID uint, q string, offset, limit int) (int64, []uint, error) {
	x.lastQuery = q
	if x.searchErr != nil {
		return 0, nil, x.searchErr
	}
	var ids []uint
	for id, it := range x.docs {
		if it.UserID == ownerID {
			ids = append(ids, id)
		}
	}
	return int64(len(ids)), ids, nil
}

type brokenUsers struct {
	createErr error
	findErr   error
}

func (b brokenUsers) CreateUser(context.Context, string, string) (uint, error) {
	return 0, b.createErr
}

func (b brokenUsers) FindUserByUsername(context.Context, string) (*models.User, error) {
	if b.findErr != nil {
		return nil, b.findErr
	}
	return nil, repo.ErrNotFound
}

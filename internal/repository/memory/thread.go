package memory

import (
	"context"
	"sort"

	"github.com/Guyuepp/forum-api/domain"
)

type threadRepository struct {
	store *Store
	newID domain.IDGenerator
	clock domain.Clock
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(store *Store, newID domain.IDGenerator, clock domain.Clock) *threadRepository {
	return &threadRepository{store: store, newID: newID, clock: clock}
}

func (r *threadRepository) AddThread(_ context.Context, thread domain.AddThread, owner string) (domain.AddedThread, error) {
	rec := threadRecord{
		id:    "thread-" + r.newID(),
		owner: owner,
		title: thread.Title,
		body:  thread.Body,
		date:  domain.FormatDate(r.clock()),
	}

	r.store.mu.Lock()
	if _, exists := r.store.threads[rec.id]; exists {
		r.store.mu.Unlock()
		return domain.AddedThread{}, &domain.Error{Kind: domain.ErrConflict}
	}
	r.store.threads[rec.id] = rec
	r.store.mu.Unlock()

	return domain.NewAddedThread(domain.Payload{"id": rec.id, "title": rec.title, "owner": rec.owner})
}

func (r *threadRepository) GetThreadByID(_ context.Context, id string) (domain.ThreadDetail, error) {
	r.store.mu.RLock()
	rec, ok := r.store.threads[id]
	var username string
	if ok {
		username = r.store.usernameLocked(rec.owner)
	}
	r.store.mu.RUnlock()

	if !ok {
		return domain.ThreadDetail{}, domain.NewNotFoundError(domain.MsgThreadNotFound)
	}
	return domain.NewThreadDetail(domain.Payload{
		"id":       rec.id,
		"title":    rec.title,
		"body":     rec.body,
		"date":     rec.date,
		"username": username,
	})
}

func (r *threadRepository) FetchIDs(_ context.Context, cursor string, limit int) ([]string, error) {
	r.store.mu.RLock()
	ids := make([]string, 0, len(r.store.threads))
	for id := range r.store.threads {
		if id > cursor {
			ids = append(ids, id)
		}
	}
	r.store.mu.RUnlock()

	sort.Strings(ids)
	if limit >= 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

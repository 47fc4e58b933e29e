package resumes

import (
	"context"
	"sync"

	"resume-builder/resume/model"
)

// MemoryRepo is an in-memory Repo used when no database is configured.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string]model.Resume
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string]model.Resume)}
}

func (r *MemoryRepo) Get(ctx context.Context, userID string) (model.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.byUser[userID]
	if !ok {
		return model.Resume{}, ErrNotFound
	}
	return doc.Clone(), nil
}

func (r *MemoryRepo) Upsert(ctx context.Context, userID string, doc model.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = doc.Clone()
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[userID]; !ok {
		return ErrNotFound
	}
	delete(r.byUser, userID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)

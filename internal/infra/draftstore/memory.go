// Package draftstore keeps onboarding drafts outside the relational store.
package draftstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"kala/internal/domain/entity"
	"kala/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MemoryStore holds drafts in process memory. Drafts are stored encoded so
// callers never share state with the store.
type MemoryStore struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]memoryEntry
	now    func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-process draft store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		drafts: make(map[uuid.UUID]memoryEntry),
		now:    time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, draft *entity.ApplicationDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return errors.Wrap(err, "encode draft")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = memoryEntry{data: data, expiresAt: draft.ExpiresAt}

	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*entity.ApplicationDraft, error) {
	s.mu.Lock()
	entry, ok := s.drafts[id]
	if ok && !entry.expiresAt.After(s.now()) {
		delete(s.drafts, id)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, service.ErrDraftNotFound
	}

	var draft entity.ApplicationDraft
	if err := json.Unmarshal(entry.data, &draft); err != nil {
		return nil, errors.Wrap(err, "decode draft")
	}

	return &draft, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)

	return nil
}

func (s *MemoryStore) PurgeExpired(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for id, entry := range s.drafts {
		if !entry.expiresAt.After(now) {
			delete(s.drafts, id)
			purged++
		}
	}

	return purged, nil
}

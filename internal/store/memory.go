package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pridecenter/pride-backend/internal/models"
)

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

// MemoryWizardStore is the single-process fallback used when no Redis URL is
// configured. Sessions are stored encoded so callers never share pointers.
type MemoryWizardStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

var _ WizardStore = (*MemoryWizardStore)(nil)

func NewMemoryWizardStore(ttl time.Duration) *MemoryWizardStore {
	return &MemoryWizardStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryWizardStore) Get(_ context.Context, id string) (*models.WizardSession, error) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	now := s.now()
	if ok && !now.Before(entry.expiresAt) {
		delete(s.entries, id)
		ok = false
	}
	if ok {
		entry.expiresAt = now.Add(s.ttl)
		s.entries[id] = entry
	}
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}

	var session models.WizardSession
	if err := json.Unmarshal(entry.raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MemoryWizardStore) Save(_ context.Context, session *models.WizardSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[session.ID] = memoryEntry{raw: raw, expiresAt: s.now().Add(s.ttl)}
	s.sweepLocked()
	return nil
}

func (s *MemoryWizardStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

func (s *MemoryWizardStore) sweepLocked() {
	now := s.now()
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}

// MemoryDenylist is the in-process TokenDenylist.
type MemoryDenylist struct {
	mu      sync.Mutex
	now     func() time.Time
	revoked map[string]time.Time
}

var _ TokenDenylist = (*MemoryDenylist)(nil)

func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{now: time.Now, revoked: make(map[string]time.Time)}
}

func (d *MemoryDenylist) Revoke(_ context.Context, tokenID string, until time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !until.After(d.now()) {
		return nil
	}
	d.revoked[tokenID] = until
	return nil
}

func (d *MemoryDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	until, ok := d.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !until.After(d.now()) {
		delete(d.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

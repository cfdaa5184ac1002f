package session

import (
	"context"
	"sync"

	"github.com/farmstore/backend/internal/application/inventory"
	"github.com/farmstore/backend/internal/application/sales"
	dominventory "github.com/farmstore/backend/internal/domain/inventory"
	domsales "github.com/farmstore/backend/internal/domain/sales"
)

// MemoryDraftStore keeps session drafts in process memory. Suitable for
// development and single-instance deployments; drafts are lost on restart.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	supply map[string]dominventory.SupplyDraft
	sale   map[string]domsales.SaleDraft
}

// NewMemoryDraftStore creates an empty in-memory draft store.
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{
		supply: make(map[string]dominventory.SupplyDraft),
		sale:   make(map[string]domsales.SaleDraft),
	}
}

// SupplyDrafts returns the store view for intake drafts.
func (s *MemoryDraftStore) SupplyDrafts() inventory.SupplyDraftStore {
	return &memorySupplyDraftStore{store: s}
}

// SaleDrafts returns the store view for checkout drafts.
func (s *MemoryDraftStore) SaleDrafts() sales.SaleDraftStore {
	return &memorySaleDraftStore{store: s}
}

type memorySupplyDraftStore struct {
	store *MemoryDraftStore
}

func (s *memorySupplyDraftStore) Get(_ context.Context, sessionID string) (*dominventory.SupplyDraft, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	draft := s.store.supply[sessionID]
	copied := dominventory.SupplyDraft{Lines: append([]dominventory.SupplyLine(nil), draft.Lines...)}
	return &copied, nil
}

func (s *memorySupplyDraftStore) Save(_ context.Context, sessionID string, draft *dominventory.SupplyDraft) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.supply[sessionID] = dominventory.SupplyDraft{Lines: append([]dominventory.SupplyLine(nil), draft.Lines...)}
	return nil
}

func (s *memorySupplyDraftStore) Clear(_ context.Context, sessionID string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	delete(s.store.supply, sessionID)
	return nil
}

type memorySaleDraftStore struct {
	store *MemoryDraftStore
}

func (s *memorySaleDraftStore) Get(_ context.Context, sessionID string) (*domsales.SaleDraft, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	draft := s.store.sale[sessionID]
	copied := domsales.SaleDraft{Lines: append([]domsales.SaleLine(nil), draft.Lines...)}
	return &copied, nil
}

func (s *memorySaleDraftStore) Save(_ context.Context, sessionID string, draft *domsales.SaleDraft) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.sale[sessionID] = domsales.SaleDraft{Lines: append([]domsales.SaleLine(nil), draft.Lines...)}
	return nil
}

func (s *memorySaleDraftStore) Clear(_ context.Context, sessionID string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	delete(s.store.sale, sessionID)
	return nil
}

var (
	_ inventory.SupplyDraftStore = (*memorySupplyDraftStore)(nil)
	_ sales.SaleDraftStore       = (*memorySaleDraftStore)(nil)
)

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/farmstore/backend/internal/application/inventory"
	"github.com/farmstore/backend/internal/application/sales"
	dominventory "github.com/farmstore/backend/internal/domain/inventory"
	domsales "github.com/farmstore/backend/internal/domain/sales"
	"github.com/redis/go-redis/v9"
)

// defaultDraftTTL bounds how long an abandoned draft survives. Every write
// refreshes the TTL, so an active session never loses its draft.
const defaultDraftTTL = 24 * time.Hour

// RedisDraftStore keeps session drafts in Redis so any backend instance can
// serve the session. Drafts are stored as JSON under a per-kind key prefix.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDraftStore creates a draft store backed by an existing Redis client.
func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: defaultDraftTTL}
}

// SupplyDrafts returns the store view for intake drafts.
func (s *RedisDraftStore) SupplyDrafts() inventory.SupplyDraftStore {
	return &redisSupplyDraftStore{store: s}
}

// SaleDrafts returns the store view for checkout drafts.
func (s *RedisDraftStore) SaleDrafts() sales.SaleDraftStore {
	return &redisSaleDraftStore{store: s}
}

func (s *RedisDraftStore) get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load draft: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode draft: %w", err)
	}
	return true, nil
}

func (s *RedisDraftStore) save(ctx context.Context, key string, draft any) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

type redisSupplyDraftStore struct {
	store *RedisDraftStore
}

func supplyDraftKey(sessionID string) string {
	return "draft:supply:" + sessionID
}

func (s *redisSupplyDraftStore) Get(ctx context.Context, sessionID string) (*dominventory.SupplyDraft, error) {
	var draft dominventory.SupplyDraft
	found, err := s.store.get(ctx, supplyDraftKey(sessionID), &draft)
	if err != nil {
		return nil, err
	}
	if !found {
		return &dominventory.SupplyDraft{}, nil
	}
	return &draft, nil
}

func (s *redisSupplyDraftStore) Save(ctx context.Context, sessionID string, draft *dominventory.SupplyDraft) error {
	return s.store.save(ctx, supplyDraftKey(sessionID), draft)
}

func (s *redisSupplyDraftStore) Clear(ctx context.Context, sessionID string) error {
	return s.store.clear(ctx, supplyDraftKey(sessionID))
}

type redisSaleDraftStore struct {
	store *RedisDraftStore
}

func saleDraftKey(sessionID string) string {
	return "draft:sale:" + sessionID
}

func (s *redisSaleDraftStore) Get(ctx context.Context, sessionID string) (*domsales.SaleDraft, error) {
	var draft domsales.SaleDraft
	found, err := s.store.get(ctx, saleDraftKey(sessionID), &draft)
	if err != nil {
		return nil, err
	}
	if !found {
		return &domsales.SaleDraft{}, nil
	}
	return &draft, nil
}

func (s *redisSaleDraftStore) Save(ctx context.Context, sessionID string, draft *domsales.SaleDraft) error {
	return s.store.save(ctx, saleDraftKey(sessionID), draft)
}

func (s *redisSaleDraftStore) Clear(ctx context.Context, sessionID string) error {
	return s.store.clear(ctx, saleDraftKey(sessionID))
}

var (
	_ inventory.SupplyDraftStore = (*redisSupplyDraftStore)(nil)
	_ sales.SaleDraftStore       = (*redisSaleDraftStore)(nil)
)

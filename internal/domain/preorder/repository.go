package preorder

import (
	"context"

	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for preorder persistence. A preorder and
// its items are saved atomically.
type Repository interface {
	// FindByID finds a preorder with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Preorder, error)

	// FindByUser lists a user's preorders, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*Preorder, error)

	// FindAll lists preorders, newest first, optionally filtered by status
	FindAll(ctx context.Context, status Status, filter shared.Filter) ([]*Preorder, error)

	// Save persists the preorder and its items
	Save(ctx context.Context, preorder *Preorder) error
}

package sales

import (
	"context"
	"time"

	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// HistoryFilter narrows sale listings by period and product.
type HistoryFilter struct {
	From      *time.Time
	To        *time.Time // exclusive upper bound
	ProductID *uuid.UUID
}

// SaleRepository defines the interface for sale persistence. A sale and its
// items are written atomically; the repository never persists a sale without
// items.
type SaleRepository interface {
	// FindByID finds a sale with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindAll lists sales with items, newest first, honoring the history filter
	FindAll(ctx context.Context, history HistoryFilter, filter shared.Filter) ([]*Sale, error)

	// Save persists the sale and all of its items
	Save(ctx context.Context, sale *Sale) error
}

package inventory

import (
	"context"
	"time"

	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchRepository defines the interface for batch persistence. Sale
// confirmation must use FindSellableForUpdate inside a transaction so two
// concurrent sales cannot both observe and consume the same stock.
type BatchRepository interface {
	// FindByID finds a batch by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)

	// FindByProduct finds all batches for a product, FIFO ordered
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*Batch, error)

	// FindAll finds every batch, FIFO ordered per product
	FindAll(ctx context.Context, filter shared.Filter) ([]*Batch, error)

	// FindSellableForUpdate finds non-expired batches for a product
	// (expires_at >= the given day), FIFO ordered, locking the rows for the
	// duration of the surrounding transaction
	FindSellableForUpdate(ctx context.Context, productID uuid.UUID, today time.Time) ([]*Batch, error)

	// SumQuantityByProduct sums remaining quantity across a product's batches
	SumQuantityByProduct(ctx context.Context, productID uuid.UUID) (decimal.Decimal, error)

	// Save creates or updates a batch
	Save(ctx context.Context, batch *Batch) error

	// SaveAll creates or updates multiple batches
	SaveAll(ctx context.Context, batches []*Batch) error

	// Delete removes a batch row
	Delete(ctx context.Context, id uuid.UUID) error
}

// WriteOffRepository defines the interface for write-off audit records.
// Records are append-only.
type WriteOffRepository interface {
	// Save persists a write-off record
	Save(ctx context.Context, writeOff *WriteOff) error

	// FindAll lists write-offs, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]*WriteOff, error)
}

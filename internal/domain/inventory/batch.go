package inventory

import (
	"time"

	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Batch is a dated lot of on-hand quantity of one product. A batch is created
// only by supply confirmation and disappears when fully sold or written off;
// it is never re-dated.
type Batch struct {
	shared.BaseEntity
	ProductID  uuid.UUID
	Quantity   decimal.Decimal // 3 decimal places, always > 0 while the row exists
	ProducedAt time.Time       // date of production
	ExpiresAt  time.Time       // ProducedAt + shelf life at intake time, never recomputed
}

// NewBatch creates a batch for the given product and intake line.
func NewBatch(productID uuid.UUID, quantity decimal.Decimal, producedAt, expiresAt time.Time) (*Batch, error) {
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Batch quantity must be positive")
	}
	return &Batch{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Quantity:   quantity,
		ProducedAt: DateOf(producedAt),
		ExpiresAt:  DateOf(expiresAt),
	}, nil
}

// Deduct reduces the batch quantity by up to the requested amount and returns
// what was actually taken. The caller deletes the batch when Exhausted.
func (b *Batch) Deduct(quantity decimal.Decimal) decimal.Decimal {
	take := quantity
	if take.GreaterThan(b.Quantity) {
		take = b.Quantity
	}
	b.Quantity = b.Quantity.Sub(take)
	b.UpdatedAt = time.Now()
	return take
}

// Exhausted reports whether the batch has no remaining quantity.
func (b *Batch) Exhausted() bool {
	return !b.Quantity.IsPositive()
}

// Sellable reports whether the batch may still be sold on the given day.
// Only strictly expired stock is excluded; a batch expiring today sells.
func (b *Batch) Sellable(today time.Time) bool {
	return !b.ExpiresAt.Before(DateOf(today))
}

// DateOf truncates a timestamp to its calendar date in UTC. All ledger date
// arithmetic runs on these values so that timezones and clock components
// cannot shift an expiry by a day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package inventory

import (
	"sort"
	"time"

	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchConsumption records how much a single batch contributed to one sale line.
type BatchConsumption struct {
	BatchID   uuid.UUID
	Take      decimal.Decimal
	Remaining decimal.Decimal // batch quantity after the take; delete the row when zero
}

// AllocationResult is the outcome of allocating one sale line against a
// product's batches.
type AllocationResult struct {
	Consumptions     []BatchConsumption
	SourceProducedAt time.Time // produced_at of the first batch drawn from
}

// SortBatchesFIFO orders batches oldest-produced first. Creation order breaks
// ties between batches produced on the same day, so allocation stays
// deterministic.
func SortBatchesFIFO(batches []*Batch) {
	sort.SliceStable(batches, func(i, j int) bool {
		if !batches[i].ProducedAt.Equal(batches[j].ProducedAt) {
			return batches[i].ProducedAt.Before(batches[j].ProducedAt)
		}
		if !batches[i].CreatedAt.Equal(batches[j].CreatedAt) {
			return batches[i].CreatedAt.Before(batches[j].CreatedAt)
		}
		return batches[i].ID.String() < batches[j].ID.String()
	})
}

// AllocateFIFO consumes the requested quantity from the given batches in FIFO
// order, mutating their quantities. Batches must already be filtered to the
// product's sellable (non-expired) stock; AllocateFIFO sorts them itself.
//
// If the batches cannot cover the request, nothing is mutated and an
// INSUFFICIENT_STOCK error naming the product and the available quantity is
// returned. The caller wraps the whole multi-line sale in one transaction so
// a failing line discards every other line's mutations as well.
func AllocateFIFO(productName string, batches []*Batch, requested decimal.Decimal) (*AllocationResult, error) {
	if !requested.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}

	available := decimal.Zero
	for _, b := range batches {
		available = available.Add(b.Quantity)
	}
	if available.LessThan(requested) {
		return nil, shared.NewDomainErrorf("INSUFFICIENT_STOCK",
			"Not enough stock of %q: requested %s, available %s",
			productName, requested.String(), available.String())
	}

	SortBatchesFIFO(batches)

	result := &AllocationResult{}
	need := requested
	for _, b := range batches {
		if !need.IsPositive() {
			break
		}
		take := b.Deduct(need)
		if len(result.Consumptions) == 0 {
			result.SourceProducedAt = b.ProducedAt
		}
		result.Consumptions = append(result.Consumptions, BatchConsumption{
			BatchID:   b.ID,
			Take:      take,
			Remaining: b.Quantity,
		})
		need = need.Sub(take)
	}
	return result, nil
}

package inventory

import (
	"strings"

	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WriteOff is an immutable audit record of stock removed for loss or
// spoilage. A write-off always removes a whole batch; partial write-offs are
// not supported.
type WriteOff struct {
	shared.BaseEntity
	ProductID uuid.UUID
	Quantity  decimal.Decimal // snapshot of the batch's remaining quantity
	Reason    string
}

// NewWriteOff creates the audit record for removing the given batch.
// The reason is mandatory; a blank reason rejects the whole operation before
// any mutation.
func NewWriteOff(batch *Batch, reason string) (*WriteOff, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Write-off reason is required")
	}
	return &WriteOff{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  batch.ProductID,
		Quantity:   batch.Quantity,
		Reason:     reason,
	}, nil
}

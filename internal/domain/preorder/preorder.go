package preorder

import (
	"regexp"
	"strings"
	"time"

	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the preorder lifecycle state.
type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var pickupTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Preorder is a customer's request to have goods set aside for pickup.
// Preorders reserve nothing in the ledger; staff fulfill them manually
// through a regular sale.
type Preorder struct {
	shared.BaseEntity
	UserID       uuid.UUID
	Comment      string
	PickupDate   time.Time
	PickupTime   string // HH:MM, optional
	Status       Status
	CancelReason string
	CompletedAt  *time.Time
	CancelledAt  *time.Time
	Items        []Item
}

// Item is one requested product line.
type Item struct {
	shared.BaseEntity
	PreorderID uuid.UUID
	ProductID  uuid.UUID
	Quantity   decimal.Decimal
}

// NewPreorder creates an open preorder for the given user.
func NewPreorder(userID uuid.UUID, pickupDate time.Time, pickupTime, comment string) (*Preorder, error) {
	pickupTime = strings.TrimSpace(pickupTime)
	if pickupTime != "" && !pickupTimePattern.MatchString(pickupTime) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Pickup time must be HH:MM")
	}
	y, m, d := pickupDate.Date()
	return &Preorder{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Comment:    strings.TrimSpace(comment),
		PickupDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		PickupTime: pickupTime,
		Status:     StatusOpen,
	}, nil
}

// AddItem appends a requested product line.
func (p *Preorder) AddItem(productID uuid.UUID, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	p.Items = append(p.Items, Item{
		BaseEntity: shared.NewBaseEntity(),
		PreorderID: p.ID,
		ProductID:  productID,
		Quantity:   quantity,
	})
	return nil
}

// Complete marks an open preorder as picked up.
func (p *Preorder) Complete() error {
	if p.Status != StatusOpen {
		return shared.NewDomainErrorf("INVALID_STATE", "Preorder is already %s", p.Status)
	}
	now := time.Now()
	p.Status = StatusCompleted
	p.CompletedAt = &now
	p.UpdatedAt = now
	return nil
}

// Cancel closes an open preorder with a mandatory reason.
func (p *Preorder) Cancel(reason string) error {
	if p.Status != StatusOpen {
		return shared.NewDomainErrorf("INVALID_STATE", "Preorder is already %s", p.Status)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shared.NewDomainError("INVALID_INPUT", "Cancel reason is required")
	}
	now := time.Now()
	p.Status = StatusCancelled
	p.CancelReason = reason
	p.CancelledAt = &now
	p.UpdatedAt = now
	return nil
}

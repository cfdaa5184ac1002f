package sales

import (
	"time"

	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a confirmed checkout: an ordered collection of items sold in one
// transaction against FIFO-allocated stock.
type Sale struct {
	shared.BaseEntity
	Items []SaleItem
}

// SaleItem is one line of a sale. UnitPrice snapshots the product's current
// price at confirmation; SourceProducedAt points at the oldest batch the line
// drew from, for traceability.
type SaleItem struct {
	shared.BaseEntity
	SaleID           uuid.UUID
	ProductID        uuid.UUID
	Quantity         decimal.Decimal
	UnitPrice        decimal.Decimal
	LineTotal        decimal.Decimal // Quantity * UnitPrice rounded to the cent
	SourceProducedAt time.Time
}

// NewSale creates an empty sale to append items to.
func NewSale() *Sale {
	return &Sale{BaseEntity: shared.NewBaseEntity()}
}

// AddItem appends a line, deriving the line total from the price snapshot.
func (s *Sale) AddItem(productID uuid.UUID, quantity, unitPrice decimal.Decimal, sourceProducedAt time.Time) {
	s.Items = append(s.Items, SaleItem{
		BaseEntity:       shared.NewBaseEntity(),
		SaleID:           s.ID,
		ProductID:        productID,
		Quantity:         quantity,
		UnitPrice:        unitPrice,
		LineTotal:        LineTotal(unitPrice, quantity),
		SourceProducedAt: sourceProducedAt,
	})
}

// TotalAmount is the sum of the items' line totals.
func (s *Sale) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.LineTotal)
	}
	return total
}

// LineTotal computes quantity * unitPrice rounded half-up to 2 decimal
// places, matching every other money value the service stores or displays.
func LineTotal(unitPrice, quantity decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(quantity).Round(2)
}

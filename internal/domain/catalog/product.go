package catalog

import (
	"strings"
	"time"

	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an item sold by the store. A product is either
// weight-based (priced per kilogram, fractional quantities allowed) or
// discrete (priced per unit, whole quantities only).
type Product struct {
	shared.BaseEntity
	Name          string
	Description   string
	Details       string
	IsWeightBased bool
	Price         decimal.Decimal // per kg or per unit, 2 decimal places
	MinWeightG    *int            // optional minimum portion, grams
	MaxWeightG    *int            // optional maximum portion, grams
	IsFrozen      bool
	IsDiscounted  bool
	SupplierName  string
	Tags          string
	ImageKey      string          // object storage key, empty when no image uploaded
	ShelfLifeDays int             // calendar days a batch stays sellable, always > 0
	CategoryID    *uuid.UUID
}

// NewProduct creates a product, validating the invariants the ledger relies on.
func NewProduct(name string, price decimal.Decimal, isWeightBased bool, shelfLifeDays int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if shelfLifeDays < 1 || shelfLifeDays > 365 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shelf life must be between 1 and 365 days")
	}
	return &Product{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		Price:         price.Round(2),
		IsWeightBased: isWeightBased,
		ShelfLifeDays: shelfLifeDays,
	}, nil
}

// ExpiryFor derives the expiry date for a batch produced on the given day.
// Calendar-day addition; the result is a snapshot taken at intake time and
// is never recomputed if ShelfLifeDays changes later.
func (p *Product) ExpiryFor(producedAt time.Time) time.Time {
	return producedAt.AddDate(0, 0, p.ShelfLifeDays)
}

// UpdatePrice sets a new current price. Existing sale items keep the price
// they were sold at.
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	p.Price = price.Round(2)
	p.UpdatedAt = time.Now()
	return nil
}

// AssignCategory moves the product into a category (nil clears it).
func (p *Product) AssignCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
}

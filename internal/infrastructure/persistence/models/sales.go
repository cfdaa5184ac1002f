package models

import (
	"time"

	"github.com/farmstore/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleModel is the persistence model for the Sale domain entity.
type SaleModel struct {
	BaseModel
	Items []SaleItemModel `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the persistence model to a domain Sale entity.
func (m *SaleModel) ToDomain() *sales.Sale {
	sale := &sales.Sale{
		BaseEntity: m.BaseModel.ToDomain(),
		Items:      make([]sales.SaleItem, len(m.Items)),
	}
	for i := range m.Items {
		sale.Items[i] = *m.Items[i].ToDomain()
	}
	return sale
}

// FromDomain populates the persistence model from a domain Sale entity.
func (m *SaleModel) FromDomain(s *sales.Sale) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Items = make([]SaleItemModel, len(s.Items))
	for i := range s.Items {
		m.Items[i].FromDomain(&s.Items[i])
	}
}

// SaleModelFromDomain creates a new persistence model from a domain Sale entity.
func SaleModelFromDomain(s *sales.Sale) *SaleModel {
	m := &SaleModel{}
	m.FromDomain(s)
	return m
}

// SaleItemModel is the persistence model for one sale line.
type SaleItemModel struct {
	BaseModel
	SaleID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity         decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	LineTotal        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SourceProducedAt time.Time       `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToDomain converts the persistence model to a domain SaleItem.
func (m *SaleItemModel) ToDomain() *sales.SaleItem {
	return &sales.SaleItem{
		BaseEntity:       m.BaseModel.ToDomain(),
		SaleID:           m.SaleID,
		ProductID:        m.ProductID,
		Quantity:         m.Quantity,
		UnitPrice:        m.UnitPrice,
		LineTotal:        m.LineTotal,
		SourceProducedAt: m.SourceProducedAt.UTC(),
	}
}

// FromDomain populates the persistence model from a domain SaleItem.
func (m *SaleItemModel) FromDomain(item *sales.SaleItem) {
	m.FromDomainBaseEntity(item.BaseEntity)
	m.SaleID = item.SaleID
	m.ProductID = item.ProductID
	m.Quantity = item.Quantity
	m.UnitPrice = item.UnitPrice
	m.LineTotal = item.LineTotal
	m.SourceProducedAt = item.SourceProducedAt
}

package models

import (
	"time"

	"github.com/farmstore/backend/internal/domain/preorder"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PreorderModel is the persistence model for the Preorder domain entity.
type PreorderModel struct {
	BaseModel
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Comment      string     `gorm:"type:text"`
	PickupDate   time.Time  `gorm:"type:date;not null"`
	PickupTime   string     `gorm:"type:varchar(5)"`
	Status       string     `gorm:"type:varchar(20);not null;default:'open';index"`
	CancelReason string     `gorm:"type:text"`
	CompletedAt  *time.Time
	CancelledAt  *time.Time
	Items        []PreorderItemModel `gorm:"foreignKey:PreorderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PreorderModel) TableName() string {
	return "preorders"
}

// ToDomain converts the persistence model to a domain Preorder entity.
func (m *PreorderModel) ToDomain() *preorder.Preorder {
	p := &preorder.Preorder{
		BaseEntity:   m.BaseModel.ToDomain(),
		UserID:       m.UserID,
		Comment:      m.Comment,
		PickupDate:   m.PickupDate.UTC(),
		PickupTime:   m.PickupTime,
		Status:       preorder.Status(m.Status),
		CancelReason: m.CancelReason,
		CompletedAt:  m.CompletedAt,
		CancelledAt:  m.CancelledAt,
		Items:        make([]preorder.Item, len(m.Items)),
	}
	for i := range m.Items {
		p.Items[i] = *m.Items[i].ToDomain()
	}
	return p
}

// FromDomain populates the persistence model from a domain Preorder entity.
func (m *PreorderModel) FromDomain(p *preorder.Preorder) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.UserID = p.UserID
	m.Comment = p.Comment
	m.PickupDate = p.PickupDate
	m.PickupTime = p.PickupTime
	m.Status = string(p.Status)
	m.CancelReason = p.CancelReason
	m.CompletedAt = p.CompletedAt
	m.CancelledAt = p.CancelledAt
	m.Items = make([]PreorderItemModel, len(p.Items))
	for i := range p.Items {
		m.Items[i].FromDomain(&p.Items[i])
	}
}

// PreorderModelFromDomain creates a new persistence model from a domain Preorder entity.
func PreorderModelFromDomain(p *preorder.Preorder) *PreorderModel {
	m := &PreorderModel{}
	m.FromDomain(p)
	return m
}

// PreorderItemModel is the persistence model for one preorder line.
type PreorderItemModel struct {
	BaseModel
	PreorderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(12,3);not null"`
}

// TableName returns the table name for GORM
func (PreorderItemModel) TableName() string {
	return "preorder_items"
}

// ToDomain converts the persistence model to a domain preorder Item.
func (m *PreorderItemModel) ToDomain() *preorder.Item {
	return &preorder.Item{
		BaseEntity: m.BaseModel.ToDomain(),
		PreorderID: m.PreorderID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
	}
}

// FromDomain populates the persistence model from a domain preorder Item.
func (m *PreorderItemModel) FromDomain(item *preorder.Item) {
	m.FromDomainBaseEntity(item.BaseEntity)
	m.PreorderID = item.PreorderID
	m.ProductID = item.ProductID
	m.Quantity = item.Quantity
}

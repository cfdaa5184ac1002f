package models

import (
	"time"

	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchModel is the persistence model for the Batch domain entity.
type BatchModel struct {
	BaseModel
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	ProducedAt time.Time       `gorm:"type:date;not null;index"`
	ExpiresAt  time.Time       `gorm:"type:date;not null;index"`
}

// TableName returns the table name for GORM
func (BatchModel) TableName() string {
	return "batches"
}

// ToDomain converts the persistence model to a domain Batch entity.
func (m *BatchModel) ToDomain() *inventory.Batch {
	return &inventory.Batch{
		BaseEntity: m.BaseModel.ToDomain(),
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		ProducedAt: m.ProducedAt.UTC(),
		ExpiresAt:  m.ExpiresAt.UTC(),
	}
}

// FromDomain populates the persistence model from a domain Batch entity.
func (m *BatchModel) FromDomain(b *inventory.Batch) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.ProductID = b.ProductID
	m.Quantity = b.Quantity
	m.ProducedAt = b.ProducedAt
	m.ExpiresAt = b.ExpiresAt
}

// BatchModelFromDomain creates a new persistence model from a domain Batch entity.
func BatchModelFromDomain(b *inventory.Batch) *BatchModel {
	m := &BatchModel{}
	m.FromDomain(b)
	return m
}

// WriteOffModel is the persistence model for the WriteOff audit record.
type WriteOffModel struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Reason    string          `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (WriteOffModel) TableName() string {
	return "write_offs"
}

// ToDomain converts the persistence model to a domain WriteOff record.
func (m *WriteOffModel) ToDomain() *inventory.WriteOff {
	return &inventory.WriteOff{
		BaseEntity: m.BaseModel.ToDomain(),
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		Reason:     m.Reason,
	}
}

// FromDomain populates the persistence model from a domain WriteOff record.
func (m *WriteOffModel) FromDomain(w *inventory.WriteOff) {
	m.FromDomainBaseEntity(w.BaseEntity)
	m.ProductID = w.ProductID
	m.Quantity = w.Quantity
	m.Reason = w.Reason
}

// WriteOffModelFromDomain creates a new persistence model from a domain WriteOff record.
func WriteOffModelFromDomain(w *inventory.WriteOff) *WriteOffModel {
	m := &WriteOffModel{}
	m.FromDomain(w)
	return m
}

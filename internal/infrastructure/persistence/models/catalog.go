package models

import (
	"github.com/farmstore/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name          string          `gorm:"type:varchar(200);not null;index"`
	Description   string          `gorm:"type:text"`
	Details       string          `gorm:"type:text"`
	IsWeightBased bool            `gorm:"not null;default:false"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MinWeightG    *int
	MaxWeightG    *int
	IsFrozen      bool       `gorm:"not null;default:false"`
	IsDiscounted  bool       `gorm:"not null;default:false"`
	SupplierName  string     `gorm:"type:varchar(200)"`
	Tags          string     `gorm:"type:text"`
	ImageKey      string     `gorm:"type:varchar(500)"`
	ShelfLifeDays int        `gorm:"not null"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		Description:   m.Description,
		Details:       m.Details,
		IsWeightBased: m.IsWeightBased,
		Price:         m.Price,
		MinWeightG:    m.MinWeightG,
		MaxWeightG:    m.MaxWeightG,
		IsFrozen:      m.IsFrozen,
		IsDiscounted:  m.IsDiscounted,
		SupplierName:  m.SupplierName,
		Tags:          m.Tags,
		ImageKey:      m.ImageKey,
		ShelfLifeDays: m.ShelfLifeDays,
		CategoryID:    m.CategoryID,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Description = p.Description
	m.Details = p.Details
	m.IsWeightBased = p.IsWeightBased
	m.Price = p.Price
	m.MinWeightG = p.MinWeightG
	m.MaxWeightG = p.MaxWeightG
	m.IsFrozen = p.IsFrozen
	m.IsDiscounted = p.IsDiscounted
	m.SupplierName = p.SupplierName
	m.Tags = p.Tags
	m.ImageKey = p.ImageKey
	m.ShelfLifeDays = p.ShelfLifeDays
	m.CategoryID = p.CategoryID
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// CategoryModel is the persistence model for the Category domain entity.
type CategoryModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(128);not null;uniqueIndex"`
	ImageKey string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category entity.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		ImageKey:   m.ImageKey,
	}
}

// FromDomain populates the persistence model from a domain Category entity.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.ImageKey = c.ImageKey
}

// CategoryModelFromDomain creates a new persistence model from a domain Category entity.
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}

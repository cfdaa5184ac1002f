package catalog

import (
	"strings"
	"time"

	"github.com/farmstore/backend/internal/domain/shared"
)

// Category groups products for the storefront. Names are unique
// case-insensitively.
type Category struct {
	shared.BaseEntity
	Name     string
	ImageKey string // object storage key, empty when no image uploaded
}

// NewCategory creates a category with a trimmed, non-empty name.
func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name is required")
	}
	if len(name) > 128 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name must be at most 128 characters")
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Rename changes the category name, keeping the same validation as creation.
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Category name is required")
	}
	if len(name) > 128 {
		return shared.NewDomainError("INVALID_INPUT", "Category name must be at most 128 characters")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

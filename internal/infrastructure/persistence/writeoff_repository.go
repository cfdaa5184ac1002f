package persistence

import (
	"context"

	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/farmstore/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormWriteOffRepository implements inventory.WriteOffRepository using GORM
type GormWriteOffRepository struct {
	db *gorm.DB
}

// NewGormWriteOffRepository creates a new GormWriteOffRepository
func NewGormWriteOffRepository(db *gorm.DB) *GormWriteOffRepository {
	return &GormWriteOffRepository{db: db}
}

// Save persists a write-off record
func (r *GormWriteOffRepository) Save(ctx context.Context, writeOff *inventory.WriteOff) error {
	model := models.WriteOffModelFromDomain(writeOff)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindAll lists write-offs, newest first
func (r *GormWriteOffRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*inventory.WriteOff, error) {
	var found []models.WriteOffModel
	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if productID, ok := filter.Filters["product_id"]; ok {
		query = query.Where("product_id = ?", productID)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&found).Error; err != nil {
		return nil, err
	}
	writeOffs := make([]*inventory.WriteOff, len(found))
	for i := range found {
		writeOffs[i] = found[i].ToDomain()
	}
	return writeOffs, nil
}

var _ inventory.WriteOffRepository = (*GormWriteOffRepository)(nil)

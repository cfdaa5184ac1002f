package persistence

import (
	"context"
	"errors"

	"github.com/farmstore/backend/internal/domain/sales"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/farmstore/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleRepository implements sales.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale with its items
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists sales with items, newest first, honoring the history filter
func (r *GormSaleRepository) FindAll(ctx context.Context, history sales.HistoryFilter, filter shared.Filter) ([]*sales.Sale, error) {
	var found []models.SaleModel
	query := r.db.WithContext(ctx).
		Model(&models.SaleModel{}).
		Preload("Items").
		Order("sales.created_at DESC, sales.id DESC")
	if history.From != nil {
		query = query.Where("sales.created_at >= ?", *history.From)
	}
	if history.To != nil {
		query = query.Where("sales.created_at < ?", *history.To)
	}
	if history.ProductID != nil {
		query = query.
			Joins("JOIN sale_items ON sale_items.sale_id = sales.id").
			Where("sale_items.product_id = ?", *history.ProductID).
			Distinct()
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&found).Error; err != nil {
		return nil, err
	}
	result := make([]*sales.Sale, len(found))
	for i := range found {
		result[i] = found[i].ToDomain()
	}
	return result, nil
}

// Save persists the sale and all of its items in one statement batch. GORM
// writes the associated item rows together with the sale row.
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	model := models.SaleModelFromDomain(sale)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ sales.SaleRepository = (*GormSaleRepository)(nil)

package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/farmstore/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// fifoOrder is the allocation order for batches. Oldest production date wins,
// intake order breaks ties, ID keeps the order deterministic.
const fifoOrder = "produced_at ASC, created_at ASC, id ASC"

// GormBatchRepository implements inventory.BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// FindByID finds a batch by its ID
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	var model models.BatchModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProduct finds all batches for a product, FIFO ordered
func (r *GormBatchRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*inventory.Batch, error) {
	var found []models.BatchModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order(fifoOrder).
		Find(&found).Error; err != nil {
		return nil, err
	}
	return toBatches(found), nil
}

// FindAll finds every batch, FIFO ordered per product
func (r *GormBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*inventory.Batch, error) {
	var found []models.BatchModel
	query := r.db.WithContext(ctx).Order("product_id ASC, " + fifoOrder)
	if productID, ok := filter.Filters["product_id"]; ok {
		query = query.Where("product_id = ?", productID)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&found).Error; err != nil {
		return nil, err
	}
	return toBatches(found), nil
}

// FindSellableForUpdate finds non-expired batches for a product, FIFO ordered,
// with SELECT ... FOR UPDATE so the rows stay locked until the surrounding
// transaction commits.
func (r *GormBatchRepository) FindSellableForUpdate(ctx context.Context, productID uuid.UUID, today time.Time) ([]*inventory.Batch, error) {
	var found []models.BatchModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ? AND expires_at >= ?", productID, inventory.DateOf(today)).
		Order(fifoOrder).
		Find(&found).Error; err != nil {
		return nil, err
	}
	return toBatches(found), nil
}

// SumQuantityByProduct sums remaining quantity across a product's batches
func (r *GormBatchRepository) SumQuantityByProduct(ctx context.Context, productID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.BatchModel{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("product_id = ?", productID).
		Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// Save creates or updates a batch
func (r *GormBatchRepository) Save(ctx context.Context, batch *inventory.Batch) error {
	model := models.BatchModelFromDomain(batch)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveAll creates or updates multiple batches
func (r *GormBatchRepository) SaveAll(ctx context.Context, batches []*inventory.Batch) error {
	if len(batches) == 0 {
		return nil
	}
	rows := make([]*models.BatchModel, len(batches))
	for i, batch := range batches {
		rows[i] = models.BatchModelFromDomain(batch)
	}
	return r.db.WithContext(ctx).Save(rows).Error
}

// Delete removes a batch row
func (r *GormBatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BatchModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toBatches(found []models.BatchModel) []*inventory.Batch {
	batches := make([]*inventory.Batch, len(found))
	for i := range found {
		batches[i] = found[i].ToDomain()
	}
	return batches
}

var _ inventory.BatchRepository = (*GormBatchRepository)(nil)

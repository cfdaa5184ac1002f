package persistence

import (
	"context"
	"errors"

	"github.com/farmstore/backend/internal/domain/preorder"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/farmstore/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPreorderRepository implements preorder.Repository using GORM
type GormPreorderRepository struct {
	db *gorm.DB
}

// NewGormPreorderRepository creates a new GormPreorderRepository
func NewGormPreorderRepository(db *gorm.DB) *GormPreorderRepository {
	return &GormPreorderRepository{db: db}
}

// FindByID finds a preorder with its items
func (r *GormPreorderRepository) FindByID(ctx context.Context, id uuid.UUID) (*preorder.Preorder, error) {
	var model models.PreorderModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUser lists a user's preorders, newest first
func (r *GormPreorderRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*preorder.Preorder, error) {
	return r.findAll(ctx, filter, func(query *gorm.DB) *gorm.DB {
		return query.Where("user_id = ?", userID)
	})
}

// FindAll lists preorders, newest first, optionally filtered by status
func (r *GormPreorderRepository) FindAll(ctx context.Context, status preorder.Status, filter shared.Filter) ([]*preorder.Preorder, error) {
	return r.findAll(ctx, filter, func(query *gorm.DB) *gorm.DB {
		if status != "" {
			query = query.Where("status = ?", string(status))
		}
		return query
	})
}

// Save persists the preorder and its items
func (r *GormPreorderRepository) Save(ctx context.Context, order *preorder.Preorder) error {
	model := models.PreorderModelFromDomain(order)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *GormPreorderRepository) findAll(ctx context.Context, filter shared.Filter, narrow func(*gorm.DB) *gorm.DB) ([]*preorder.Preorder, error) {
	var found []models.PreorderModel
	query := narrow(r.db.WithContext(ctx).Preload("Items").Order("created_at DESC, id DESC"))
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&found).Error; err != nil {
		return nil, err
	}
	orders := make([]*preorder.Preorder, len(found))
	for i := range found {
		orders[i] = found[i].ToDomain()
	}
	return orders, nil
}

var _ preorder.Repository = (*GormPreorderRepository)(nil)

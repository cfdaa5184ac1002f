package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/farmstore/backend/internal/domain/catalog"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryService manages storefront categories.
type CategoryService struct {
	categories catalog.CategoryRepository
	products   catalog.ProductRepository
	storage    ObjectStorageService
	logger     *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categories catalog.CategoryRepository,
	products catalog.ProductRepository,
	storage ObjectStorageService,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categories: categories,
		products:   products,
		storage:    storage,
		logger:     logger,
	}
}

// Create adds a category. Names are unique case-insensitively.
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}

	taken, err := s.categories.ExistsByName(ctx, category.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A category with this name already exists")
	}

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name))

	return s.toResponse(ctx, category), nil
}

// Update renames a category.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.Rename(req.Name); err != nil {
		return nil, err
	}

	taken, err := s.categories.ExistsByName(ctx, category.Name, category.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A category with this name already exists")
	}

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, category), nil
}

// GetByID returns one category.
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, category), nil
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *s.toResponse(ctx, &categories[i])
	}
	return responses, nil
}

// Delete removes a category. Categories that still hold products cannot be
// deleted; reassign the products first.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.ErrCategoryInUse
	}

	if category.ImageKey != "" {
		if err := s.storage.DeleteObject(ctx, category.ImageKey); err != nil {
			s.logger.Warn("Failed to delete category image from storage",
				zap.String("category_id", id.String()),
				zap.Error(err))
		}
	}
	return s.categories.Delete(ctx, id)
}

// InitiateImageUpload returns a presigned URL to upload the category image.
func (s *CategoryService) InitiateImageUpload(ctx context.Context, id uuid.UUID, req InitiateImageUploadRequest) (*ImageUploadResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !allowedImageTypes[strings.ToLower(req.ContentType)] {
		return nil, shared.NewDomainError("INVALID_INPUT", "Only JPEG, PNG, GIF and WebP images are allowed")
	}

	key := imageKey("categories", category.ID, req.FileName)
	url, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, req.ContentType, uploadURLExpiry)
	if err != nil {
		return nil, shared.NewDomainError("UPLOAD_URL_FAILED", "Failed to generate upload URL")
	}

	oldKey := category.ImageKey
	category.ImageKey = key
	category.UpdatedAt = time.Now()
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	if oldKey != "" && oldKey != key {
		if err := s.storage.DeleteObject(ctx, oldKey); err != nil {
			s.logger.Warn("Failed to delete replaced category image",
				zap.String("category_id", id.String()),
				zap.Error(err))
		}
	}

	return &ImageUploadResponse{UploadURL: url, ExpiresAt: expiresAt}, nil
}

func (s *CategoryService) toResponse(ctx context.Context, category *catalog.Category) *CategoryResponse {
	imageURL := ""
	if category.ImageKey != "" {
		url, _, err := s.storage.GenerateDownloadURL(ctx, category.ImageKey, downloadURLExpiry)
		if err == nil {
			imageURL = url
		}
	}
	count, err := s.products.CountByCategory(ctx, category.ID)
	if err != nil {
		count = 0
	}
	return &CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		ImageURL:     imageURL,
		ProductCount: count,
		CreatedAt:    category.CreatedAt,
	}
}

package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/farmstore/backend/internal/domain/catalog"
	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// allowedImageTypes is the whitelist for product and category images. SVG is
// excluded because it can carry scripts.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ObjectStorageService is implemented by the infrastructure layer (S3 or a
// compatible store).
type ObjectStorageService interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

const (
	uploadURLExpiry   = 15 * time.Minute
	downloadURLExpiry = 1 * time.Hour
)

// ProductService manages the product catalog.
type ProductService struct {
	products catalog.ProductRepository
	batches  inventory.BatchRepository
	storage  ObjectStorageService
	logger   *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	products catalog.ProductRepository,
	batches inventory.BatchRepository,
	storage ObjectStorageService,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		products: products,
		batches:  batches,
		storage:  storage,
		logger:   logger,
	}
}

// Create adds a product to the catalog.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, price, req.IsWeightBased, req.ShelfLifeDays)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	product.Details = req.Details
	product.IsFrozen = req.IsFrozen
	product.IsDiscounted = req.IsDiscounted
	product.SupplierName = strings.TrimSpace(req.SupplierName)
	product.Tags = strings.TrimSpace(req.Tags)

	if err := applyWeightBounds(product, req.MinWeightG, req.MaxWeightG); err != nil {
		return nil, err
	}
	if err := s.assignCategory(product, req.CategoryID); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	return s.toResponse(ctx, product), nil
}

// Update replaces a product's attributes. The price change applies to future
// sales only; shelf life changes apply to future batches only.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	if err := product.UpdatePrice(price); err != nil {
		return nil, err
	}
	if req.ShelfLifeDays < 1 || req.ShelfLifeDays > 365 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shelf life must be between 1 and 365 days")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	product.Name = name
	product.Description = req.Description
	product.Details = req.Details
	product.IsFrozen = req.IsFrozen
	product.IsDiscounted = req.IsDiscounted
	product.SupplierName = strings.TrimSpace(req.SupplierName)
	product.Tags = strings.TrimSpace(req.Tags)
	product.ShelfLifeDays = req.ShelfLifeDays
	product.UpdatedAt = time.Now()

	if err := applyWeightBounds(product, req.MinWeightG, req.MaxWeightG); err != nil {
		return nil, err
	}
	if err := s.assignCategory(product, req.CategoryID); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, product), nil
}

// GetByID returns one product.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, product), nil
}

// List returns products matching the filter plus the total count.
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "name",
		OrderDir: "asc",
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if domainFilter.Page <= 0 {
		domainFilter.Page = 1
	}
	if domainFilter.PageSize <= 0 {
		domainFilter.PageSize = 20
	}
	if filter.CategoryID != "" {
		categoryID, err := uuid.Parse(filter.CategoryID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Invalid category ID")
		}
		domainFilter.Filters["category_id"] = categoryID
	}

	products, err := s.products.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.products.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *s.toResponse(ctx, &products[i])
	}
	return responses, count, nil
}

// Delete removes a product. Products with remaining batches cannot be
// deleted; write them off first.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	total, err := s.batches.SumQuantityByProduct(ctx, id)
	if err != nil {
		return err
	}
	if total.IsPositive() {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Product %q still has stock; write it off before deleting", product.Name))
	}

	if product.ImageKey != "" {
		if err := s.storage.DeleteObject(ctx, product.ImageKey); err != nil {
			s.logger.Warn("Failed to delete product image from storage",
				zap.String("product_id", id.String()),
				zap.Error(err))
		}
	}
	return s.products.Delete(ctx, id)
}

// InitiateImageUpload returns a presigned URL to upload the product image.
// The previous image, if any, is replaced on confirm.
func (s *ProductService) InitiateImageUpload(ctx context.Context, id uuid.UUID, req InitiateImageUploadRequest) (*ImageUploadResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !allowedImageTypes[strings.ToLower(req.ContentType)] {
		return nil, shared.NewDomainError("INVALID_INPUT", "Only JPEG, PNG, GIF and WebP images are allowed")
	}

	key := imageKey("products", product.ID, req.FileName)
	url, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, req.ContentType, uploadURLExpiry)
	if err != nil {
		return nil, shared.NewDomainError("UPLOAD_URL_FAILED", "Failed to generate upload URL")
	}

	oldKey := product.ImageKey
	product.ImageKey = key
	product.UpdatedAt = time.Now()
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	if oldKey != "" && oldKey != key {
		if err := s.storage.DeleteObject(ctx, oldKey); err != nil {
			s.logger.Warn("Failed to delete replaced product image",
				zap.String("product_id", id.String()),
				zap.Error(err))
		}
	}

	return &ImageUploadResponse{UploadURL: url, ExpiresAt: expiresAt}, nil
}

func (s *ProductService) assignCategory(product *catalog.Product, rawCategoryID string) error {
	if rawCategoryID == "" {
		product.AssignCategory(nil)
		return nil
	}
	categoryID, err := uuid.Parse(rawCategoryID)
	if err != nil {
		return shared.NewDomainError("INVALID_INPUT", "Invalid category ID")
	}
	product.AssignCategory(&categoryID)
	return nil
}

func (s *ProductService) toResponse(ctx context.Context, product *catalog.Product) *ProductResponse {
	imageURL := ""
	if product.ImageKey != "" {
		url, _, err := s.storage.GenerateDownloadURL(ctx, product.ImageKey, downloadURLExpiry)
		if err == nil {
			imageURL = url
		}
	}
	resp := toProductResponse(product, imageURL)
	return &resp
}

func applyWeightBounds(product *catalog.Product, minG, maxG *int) error {
	if (minG != nil || maxG != nil) && !product.IsWeightBased {
		return shared.NewDomainError("INVALID_INPUT", "Weight bounds apply to weight-based products only")
	}
	if minG != nil && *minG <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Minimum weight must be positive")
	}
	if maxG != nil && *maxG <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Maximum weight must be positive")
	}
	if minG != nil && maxG != nil && *minG > *maxG {
		return shared.NewDomainError("INVALID_INPUT", "Minimum weight cannot exceed maximum weight")
	}
	product.MinWeightG = minG
	product.MaxWeightG = maxG
	return nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, shared.NewDomainError("INVALID_INPUT", "Price must be a decimal number")
	}
	return price, nil
}

func imageKey(prefix string, ownerID uuid.UUID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%s/image-%s%s", prefix, ownerID, uuid.New(), ext)
}

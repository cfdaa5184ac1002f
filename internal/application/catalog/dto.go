package catalog

import (
	"time"

	"github.com/farmstore/backend/internal/domain/catalog"
)

// CreateProductRequest carries a new product. Price arrives as a string to
// stay off binary floats.
type CreateProductRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Details       string `json:"details"`
	IsWeightBased bool   `json:"is_weight_based"`
	Price         string `json:"price" binding:"required"`
	MinWeightG    *int   `json:"min_weight_g"`
	MaxWeightG    *int   `json:"max_weight_g"`
	IsFrozen      bool   `json:"is_frozen"`
	IsDiscounted  bool   `json:"is_discounted"`
	SupplierName  string `json:"supplier_name"`
	Tags          string `json:"tags"`
	ShelfLifeDays int    `json:"shelf_life_days" binding:"required"`
	CategoryID    string `json:"category_id"`
}

// UpdateProductRequest carries a full product update. Absent optional fields
// clear the stored value.
type UpdateProductRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Details       string `json:"details"`
	Price         string `json:"price" binding:"required"`
	MinWeightG    *int   `json:"min_weight_g"`
	MaxWeightG    *int   `json:"max_weight_g"`
	IsFrozen      bool   `json:"is_frozen"`
	IsDiscounted  bool   `json:"is_discounted"`
	SupplierName  string `json:"supplier_name"`
	Tags          string `json:"tags"`
	ShelfLifeDays int    `json:"shelf_life_days" binding:"required"`
	CategoryID    string `json:"category_id"`
}

// ProductListFilter narrows the product listing.
type ProductListFilter struct {
	Search     string
	CategoryID string
	Page       int
	PageSize   int
}

// ProductResponse is the API view of a product. ImageURL is a presigned
// download link valid for a limited time, empty when no image is set.
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Details       string    `json:"details"`
	IsWeightBased bool      `json:"is_weight_based"`
	Price         string    `json:"price"`
	MinWeightG    *int      `json:"min_weight_g,omitempty"`
	MaxWeightG    *int      `json:"max_weight_g,omitempty"`
	IsFrozen      bool      `json:"is_frozen"`
	IsDiscounted  bool      `json:"is_discounted"`
	SupplierName  string    `json:"supplier_name,omitempty"`
	Tags          string    `json:"tags,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	ShelfLifeDays int       `json:"shelf_life_days"`
	CategoryID    string    `json:"category_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateCategoryRequest carries a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest renames a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse is the API view of a category.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url,omitempty"`
	ProductCount int64     `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitiateImageUploadRequest starts a presigned image upload.
type InitiateImageUploadRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// ImageUploadResponse is the presigned upload slot.
type ImageUploadResponse struct {
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toProductResponse(p *catalog.Product, imageURL string) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		Details:       p.Details,
		IsWeightBased: p.IsWeightBased,
		Price:         p.Price.StringFixed(2),
		MinWeightG:    p.MinWeightG,
		MaxWeightG:    p.MaxWeightG,
		IsFrozen:      p.IsFrozen,
		IsDiscounted:  p.IsDiscounted,
		SupplierName:  p.SupplierName,
		Tags:          p.Tags,
		ImageURL:      imageURL,
		ShelfLifeDays: p.ShelfLifeDays,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.CategoryID != nil {
		resp.CategoryID = p.CategoryID.String()
	}
	return resp
}

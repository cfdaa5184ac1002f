package inventory

import (
	"time"

	"github.com/farmstore/backend/internal/domain/inventory"
)

// AddSupplyLineRequest is one intake line to add to the session's supply
// draft. Quantity arrives as a string so it never touches binary floats.
type AddSupplyLineRequest struct {
	ProductID  string
	Quantity   string
	ProducedAt string // 2006-01-02; empty means today
}

// SupplyLineResponse is a draft line enriched for display.
type SupplyLineResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	ProducedAt  string `json:"produced_at"`
	ExpiresAt   string `json:"expires_at"`
}

// SupplyDraftResponse is the whole draft for display.
type SupplyDraftResponse struct {
	Lines []SupplyLineResponse `json:"lines"`
}

// BatchResponse describes one persisted batch.
type BatchResponse struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Quantity     string `json:"quantity"`
	ProducedAt   string `json:"produced_at"`
	ExpiresAt    string `json:"expires_at"`
	ExpiryStatus string `json:"expiry_status"`
}

// WriteOffResponse describes one write-off audit record.
type WriteOffResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    string    `json:"quantity"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

const dateLayout = "2006-01-02"

func toBatchResponse(b *inventory.Batch, productName string, isWeightBased bool, today time.Time, windowDays int) BatchResponse {
	return BatchResponse{
		ID:           b.ID.String(),
		ProductID:    b.ProductID.String(),
		ProductName:  productName,
		Quantity:     inventory.FormatQuantity(b.Quantity, isWeightBased),
		ProducedAt:   b.ProducedAt.Format(dateLayout),
		ExpiresAt:    b.ExpiresAt.Format(dateLayout),
		ExpiryStatus: string(inventory.ClassifyExpiry(b.ExpiresAt, today, windowDays)),
	}
}

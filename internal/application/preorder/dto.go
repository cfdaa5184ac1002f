package preorder

import "time"

// CreatePreorderItem is one requested product line.
type CreatePreorderItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  string `json:"quantity" binding:"required"`
}

// CreatePreorderRequest carries a new pickup request.
type CreatePreorderRequest struct {
	PickupDate string               `json:"pickup_date" binding:"required"` // 2006-01-02
	PickupTime string               `json:"pickup_time"`                    // HH:MM, optional
	Comment    string               `json:"comment"`
	Items      []CreatePreorderItem `json:"items" binding:"required"`
}

// PreorderItemResponse is one preorder line for display.
type PreorderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
}

// PreorderResponse is the API view of a preorder.
type PreorderResponse struct {
	ID           string                 `json:"id"`
	UserID       string                 `json:"user_id"`
	Username     string                 `json:"username,omitempty"`
	Phone        string                 `json:"phone,omitempty"`
	Comment      string                 `json:"comment,omitempty"`
	PickupDate   string                 `json:"pickup_date"`
	PickupTime   string                 `json:"pickup_time,omitempty"`
	Status       string                 `json:"status"`
	CancelReason string                 `json:"cancel_reason,omitempty"`
	CompletedAt  *time.Time             `json:"completed_at,omitempty"`
	CancelledAt  *time.Time             `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	Items        []PreorderItemResponse `json:"items"`
}

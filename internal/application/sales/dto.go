package sales

import "time"

// AddSaleLineRequest is one checkout line to merge into the session's sale
// draft. Quantity arrives as a string to stay off binary floats.
type AddSaleLineRequest struct {
	ProductID string
	Quantity  string
}

// SaleLineResponse is a draft line enriched for display.
type SaleLineResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// SaleDraftResponse is the whole draft for display, with a running total.
type SaleDraftResponse struct {
	Lines []SaleLineResponse `json:"lines"`
	Total string             `json:"total"`
}

// SaleItemResponse is one confirmed sale line.
type SaleItemResponse struct {
	ProductID        string `json:"product_id"`
	ProductName      string `json:"product_name"`
	Quantity         string `json:"quantity"`
	UnitPrice        string `json:"unit_price"`
	LineTotal        string `json:"line_total"`
	SourceProducedAt string `json:"source_produced_at"`
}

// SaleResponse is one confirmed sale.
type SaleResponse struct {
	ID          string             `json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	TotalAmount string             `json:"total_amount"`
	Items       []SaleItemResponse `json:"items"`
}

// HistoryRequest filters the sales listing. Period is one of "", "today",
// "yesterday", "week", "month", "custom"; custom uses StartDate/EndDate
// (2006-01-02, inclusive).
type HistoryRequest struct {
	Period    string
	StartDate string
	EndDate   string
	ProductID string
	Page      int
	PageSize  int
}

package inventory

import (
	"context"
	"time"

	"github.com/farmstore/backend/internal/domain/catalog"
	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockService answers read-only questions about on-hand batches: what is in
// stock, what is expiring within the lookahead window, what has expired.
type StockService struct {
	batches    inventory.BatchRepository
	products   catalog.ProductRepository
	windowDays int
	now        func() time.Time
}

// NewStockService creates a new StockService. windowDays <= 0 falls back to
// the default lookahead.
func NewStockService(batches inventory.BatchRepository, products catalog.ProductRepository, windowDays int) *StockService {
	if windowDays <= 0 {
		windowDays = inventory.DefaultExpiryWindowDays
	}
	return &StockService{
		batches:    batches,
		products:   products,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// ListBatches returns all batches, optionally narrowed to one expiry status
// ("expired", "expiring", "active"; empty keeps everything).
func (s *StockService) ListBatches(ctx context.Context, status string, filter shared.Filter) ([]BatchResponse, error) {
	batches, err := s.batches.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, batches, status)
}

// ListProductBatches returns one product's batches, FIFO ordered.
func (s *StockService) ListProductBatches(ctx context.Context, productID uuid.UUID, status string) ([]BatchResponse, error) {
	batches, err := s.batches.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, batches, status)
}

// ProductAvailability reports the sellable (non-expired) quantity for a
// product, formatted per its unit of measure.
func (s *StockService) ProductAvailability(ctx context.Context, productID uuid.UUID) (string, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return "", err
	}
	batches, err := s.batches.FindByProduct(ctx, productID)
	if err != nil {
		return "", err
	}

	today := s.now()
	available := decimal.Zero
	for _, b := range batches {
		if b.Sellable(today) {
			available = available.Add(b.Quantity)
		}
	}
	return inventory.FormatQuantity(available, product.IsWeightBased), nil
}

func (s *StockService) toResponses(ctx context.Context, batches []*inventory.Batch, status string) ([]BatchResponse, error) {
	today := s.now()
	responses := make([]BatchResponse, 0, len(batches))
	productCache := make(map[uuid.UUID]*catalog.Product)

	for _, batch := range batches {
		product, ok := productCache[batch.ProductID]
		if !ok {
			var err error
			product, err = s.products.FindByID(ctx, batch.ProductID)
			if err != nil {
				return nil, err
			}
			productCache[batch.ProductID] = product
		}

		resp := toBatchResponse(batch, product.Name, product.IsWeightBased, today, s.windowDays)
		if status != "" && resp.ExpiryStatus != status {
			continue
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

package sales

import (
	"context"
	"time"

	appinventory "github.com/farmstore/backend/internal/application/inventory"
	"github.com/farmstore/backend/internal/domain/catalog"
	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/sales"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// SaleDraftStore holds the per-session sale draft.
type SaleDraftStore interface {
	Get(ctx context.Context, sessionID string) (*sales.SaleDraft, error)
	Save(ctx context.Context, sessionID string, draft *sales.SaleDraft) error
	Clear(ctx context.Context, sessionID string) error
}

// SalesService manages the checkout draft and confirms it against FIFO
// stock.
type SalesService struct {
	products catalog.ProductRepository
	saleRepo sales.SaleRepository
	drafts   SaleDraftStore
	scope    appinventory.TransactionScope
	now      func() time.Time
}

// NewSalesService creates a new SalesService
func NewSalesService(
	products catalog.ProductRepository,
	saleRepo sales.SaleRepository,
	drafts SaleDraftStore,
	scope appinventory.TransactionScope,
) *SalesService {
	return &SalesService{
		products: products,
		saleRepo: saleRepo,
		drafts:   drafts,
		scope:    scope,
		now:      time.Now,
	}
}

// AddLine validates a checkout line and merges it into the session draft.
// Availability is not checked here; only confirmation decides, under lock.
func (s *SalesService) AddLine(ctx context.Context, sessionID string, req AddSaleLineRequest) (*SaleDraftResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid product ID")
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	quantity, err := inventory.ParseQuantity(req.Quantity, product.IsWeightBased)
	if err != nil {
		return nil, err
	}

	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft.Add(sales.SaleLine{ProductID: productID, Quantity: quantity})
	if err := s.drafts.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return s.draftResponse(ctx, draft)
}

// RemoveLine drops a draft line by position.
func (s *SalesService) RemoveLine(ctx context.Context, sessionID string, index int) (*SaleDraftResponse, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft.Remove(index)
	if err := s.drafts.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return s.draftResponse(ctx, draft)
}

// GetDraft returns the session's current draft.
func (s *SalesService) GetDraft(ctx context.Context, sessionID string) (*SaleDraftResponse, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.draftResponse(ctx, draft)
}

// ClearDraft discards the session's draft without selling anything.
func (s *SalesService) ClearDraft(ctx context.Context, sessionID string) error {
	return s.drafts.Clear(ctx, sessionID)
}

// Confirm sells the whole draft atomically. Every line is allocated FIFO
// against the product's non-expired batches, which are locked for the
// duration of the transaction so concurrent confirmations cannot both
// consume the same stock. If any line cannot be covered the transaction
// rolls back and nothing is persisted. The draft is cleared only after a
// successful commit, so a failed confirm can be retried.
func (s *SalesService) Confirm(ctx context.Context, sessionID string) (*SaleResponse, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Empty() {
		return nil, shared.ErrEmptyDraft
	}

	products, err := s.productsForLines(ctx, draft)
	if err != nil {
		return nil, err
	}

	today := s.now()
	sale := sales.NewSale()

	err = s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		for _, line := range draft.Lines {
			product := products[line.ProductID]

			quantity, err := inventory.CheckQuantity(line.Quantity, product.IsWeightBased)
			if err != nil {
				return err
			}

			batches, err := repos.Batches().FindSellableForUpdate(ctx, line.ProductID, today)
			if err != nil {
				return err
			}

			allocation, err := inventory.AllocateFIFO(product.Name, batches, quantity)
			if err != nil {
				return err
			}

			batchByID := make(map[uuid.UUID]*inventory.Batch, len(batches))
			for _, batch := range batches {
				batchByID[batch.ID] = batch
			}
			for _, consumed := range allocation.Consumptions {
				if !consumed.Remaining.IsPositive() {
					if err := repos.Batches().Delete(ctx, consumed.BatchID); err != nil {
						return err
					}
					continue
				}
				if err := repos.Batches().Save(ctx, batchByID[consumed.BatchID]); err != nil {
					return err
				}
			}

			sale.AddItem(line.ProductID, quantity, product.Price, allocation.SourceProducedAt)
		}

		if len(sale.Items) == 0 {
			return shared.ErrEmptyDraft
		}
		return repos.Sales().Save(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.toSaleResponse(ctx, sale)
}

// History lists confirmed sales for the requested period, newest first.
func (s *SalesService) History(ctx context.Context, req HistoryRequest) ([]SaleResponse, error) {
	historyFilter, err := s.historyFilter(req)
	if err != nil {
		return nil, err
	}

	filter := shared.Filter{Page: req.Page, PageSize: req.PageSize, OrderBy: "created_at", OrderDir: "desc"}
	found, err := s.saleRepo.FindAll(ctx, historyFilter, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]SaleResponse, 0, len(found))
	for _, sale := range found {
		resp, err := s.toSaleResponse(ctx, sale)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// historyFilter resolves a period keyword into a [from, to) range.
func (s *SalesService) historyFilter(req HistoryRequest) (sales.HistoryFilter, error) {
	var filter sales.HistoryFilter

	if req.ProductID != "" {
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			return filter, shared.NewDomainError("INVALID_INPUT", "Invalid product ID")
		}
		filter.ProductID = &productID
	}

	today := inventory.DateOf(s.now())
	switch req.Period {
	case "":
		// all time
	case "today":
		from, to := today, today.AddDate(0, 0, 1)
		filter.From, filter.To = &from, &to
	case "yesterday":
		from, to := today.AddDate(0, 0, -1), today
		filter.From, filter.To = &from, &to
	case "week":
		from := today.AddDate(0, 0, -7)
		filter.From = &from
	case "month":
		from := today.AddDate(0, -1, 0)
		filter.From = &from
	case "custom":
		if req.StartDate != "" {
			from, err := time.Parse(dateLayout, req.StartDate)
			if err != nil {
				return filter, shared.NewDomainError("INVALID_INPUT", "Start date must be YYYY-MM-DD")
			}
			filter.From = &from
		}
		if req.EndDate != "" {
			end, err := time.Parse(dateLayout, req.EndDate)
			if err != nil {
				return filter, shared.NewDomainError("INVALID_INPUT", "End date must be YYYY-MM-DD")
			}
			to := end.AddDate(0, 0, 1) // inclusive end date
			filter.To = &to
		}
	default:
		return filter, shared.NewDomainError("INVALID_INPUT", "Unknown history period")
	}
	return filter, nil
}

func (s *SalesService) productsForLines(ctx context.Context, draft *sales.SaleDraft) (map[uuid.UUID]*catalog.Product, error) {
	ids := make([]uuid.UUID, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		ids = append(ids, line.ProductID)
	}

	found, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	products := make(map[uuid.UUID]*catalog.Product, len(found))
	for i := range found {
		products[found[i].ID] = &found[i]
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, shared.ErrNotFound
		}
	}
	return products, nil
}

func (s *SalesService) draftResponse(ctx context.Context, draft *sales.SaleDraft) (*SaleDraftResponse, error) {
	resp := &SaleDraftResponse{Lines: make([]SaleLineResponse, 0, len(draft.Lines)), Total: "0"}
	if draft.Empty() {
		return resp, nil
	}

	products, err := s.productsForLines(ctx, draft)
	if err != nil {
		return nil, err
	}

	total := sales.NewSale()
	for _, line := range draft.Lines {
		product := products[line.ProductID]
		lineTotal := sales.LineTotal(product.Price, line.Quantity)
		resp.Lines = append(resp.Lines, SaleLineResponse{
			ProductID:   line.ProductID.String(),
			ProductName: product.Name,
			Quantity:    inventory.FormatQuantity(line.Quantity, product.IsWeightBased),
			UnitPrice:   product.Price.StringFixed(2),
			LineTotal:   lineTotal.StringFixed(2),
		})
		total.AddItem(line.ProductID, line.Quantity, product.Price, time.Time{})
	}
	resp.Total = total.TotalAmount().StringFixed(2)
	return resp, nil
}

func (s *SalesService) toSaleResponse(ctx context.Context, sale *sales.Sale) (*SaleResponse, error) {
	resp := &SaleResponse{
		ID:          sale.ID.String(),
		CreatedAt:   sale.CreatedAt,
		TotalAmount: sale.TotalAmount().StringFixed(2),
		Items:       make([]SaleItemResponse, 0, len(sale.Items)),
	}
	for _, item := range sale.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, SaleItemResponse{
			ProductID:        item.ProductID.String(),
			ProductName:      product.Name,
			Quantity:         inventory.FormatQuantity(item.Quantity, product.IsWeightBased),
			UnitPrice:        item.UnitPrice.StringFixed(2),
			LineTotal:        item.LineTotal.StringFixed(2),
			SourceProducedAt: item.SourceProducedAt.Format(dateLayout),
		})
	}
	return resp, nil
}

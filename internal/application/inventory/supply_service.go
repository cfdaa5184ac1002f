package inventory

import (
	"context"
	"time"

	"github.com/farmstore/backend/internal/domain/catalog"
	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplyDraftStore holds the per-session supply draft. Drafts survive only
// as long as the session; they are not ledger state.
type SupplyDraftStore interface {
	Get(ctx context.Context, sessionID string) (*inventory.SupplyDraft, error)
	Save(ctx context.Context, sessionID string, draft *inventory.SupplyDraft) error
	Clear(ctx context.Context, sessionID string) error
}

// SupplyService manages the intake draft and turns it into batches on
// confirmation.
type SupplyService struct {
	products catalog.ProductRepository
	drafts   SupplyDraftStore
	scope    TransactionScope
	now      func() time.Time
}

// NewSupplyService creates a new SupplyService
func NewSupplyService(products catalog.ProductRepository, drafts SupplyDraftStore, scope TransactionScope) *SupplyService {
	return &SupplyService{
		products: products,
		drafts:   drafts,
		scope:    scope,
		now:      time.Now,
	}
}

// AddLine validates an intake line and merges it into the session draft.
func (s *SupplyService) AddLine(ctx context.Context, sessionID string, req AddSupplyLineRequest) (*SupplyDraftResponse, error) {
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

	producedAt := inventory.DateOf(s.now())
	if req.ProducedAt != "" {
		producedAt, err = time.Parse(dateLayout, req.ProducedAt)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Produced-at date must be YYYY-MM-DD")
		}
	}

	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft.Add(inventory.SupplyLine{ProductID: productID, Quantity: quantity, ProducedAt: producedAt})
	if err := s.drafts.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return s.draftResponse(ctx, draft)
}

// RemoveLine drops a draft line by position.
func (s *SupplyService) RemoveLine(ctx context.Context, sessionID string, index int) (*SupplyDraftResponse, error) {
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
func (s *SupplyService) GetDraft(ctx context.Context, sessionID string) (*SupplyDraftResponse, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.draftResponse(ctx, draft)
}

// ClearDraft discards the session's draft without confirming it.
func (s *SupplyService) ClearDraft(ctx context.Context, sessionID string) error {
	return s.drafts.Clear(ctx, sessionID)
}

// Confirm turns every draft line into a batch. Expiry is derived from the
// product's shelf life at this moment and never recomputed. All batches are
// created in one transaction; the draft is cleared only after the commit.
func (s *SupplyService) Confirm(ctx context.Context, sessionID string) ([]BatchResponse, error) {
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

	batches := make([]*inventory.Batch, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		product := products[line.ProductID]
		batch, err := inventory.NewBatch(line.ProductID, line.Quantity, line.ProducedAt, product.ExpiryFor(line.ProducedAt))
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.Batches().SaveAll(ctx, batches)
	})
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	today := s.now()
	responses := make([]BatchResponse, len(batches))
	for i, batch := range batches {
		product := products[batch.ProductID]
		responses[i] = toBatchResponse(batch, product.Name, product.IsWeightBased, today, inventory.DefaultExpiryWindowDays)
	}
	return responses, nil
}

func (s *SupplyService) productsForLines(ctx context.Context, draft *inventory.SupplyDraft) (map[uuid.UUID]*catalog.Product, error) {
	ids := make([]uuid.UUID, 0, len(draft.Lines))
	seen := make(map[uuid.UUID]bool, len(draft.Lines))
	for _, line := range draft.Lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
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

func (s *SupplyService) draftResponse(ctx context.Context, draft *inventory.SupplyDraft) (*SupplyDraftResponse, error) {
	resp := &SupplyDraftResponse{Lines: make([]SupplyLineResponse, 0, len(draft.Lines))}
	if draft.Empty() {
		return resp, nil
	}
	products, err := s.productsForLines(ctx, draft)
	if err != nil {
		return nil, err
	}
	for _, line := range draft.Lines {
		product := products[line.ProductID]
		resp.Lines = append(resp.Lines, SupplyLineResponse{
			ProductID:   line.ProductID.String(),
			ProductName: product.Name,
			Quantity:    inventory.FormatQuantity(line.Quantity, product.IsWeightBased),
			ProducedAt:  line.ProducedAt.Format(dateLayout),
			ExpiresAt:   product.ExpiryFor(line.ProducedAt).Format(dateLayout),
		})
	}
	return resp, nil
}

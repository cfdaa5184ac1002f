package preorder

import (
	"context"
	"time"

	"github.com/farmstore/backend/internal/domain/catalog"
	"github.com/farmstore/backend/internal/domain/identity"
	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/preorder"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Service manages customer pickup requests. Preorders never touch batch
// stock; staff fulfill them through a regular sale at the counter.
type Service struct {
	preorders preorder.Repository
	products  catalog.ProductRepository
	users     identity.UserRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new preorder Service
func NewService(
	preorders preorder.Repository,
	products catalog.ProductRepository,
	users identity.UserRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		preorders: preorders,
		products:  products,
		users:     users,
		logger:    logger,
		now:       time.Now,
	}
}

// Create opens a preorder for the given user. The pickup date must not be in
// the past and every line must reference an existing product.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreatePreorderRequest) (*PreorderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Preorder must contain at least one item")
	}

	pickupDate, err := time.Parse(dateLayout, req.PickupDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Pickup date must be YYYY-MM-DD")
	}
	if pickupDate.Before(inventory.DateOf(s.now())) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Pickup date cannot be in the past")
	}

	order, err := preorder.NewPreorder(userID, pickupDate, req.PickupTime, req.Comment)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid product ID")
		}
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		quantity, err := inventory.ParseQuantity(item.Quantity, product.IsWeightBased)
		if err != nil {
			return nil, err
		}
		if err := order.AddItem(productID, quantity); err != nil {
			return nil, err
		}
	}

	if err := s.preorders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("Preorder created",
		zap.String("preorder_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("items", len(order.Items)))

	return s.toResponse(ctx, order, false)
}

// GetByID returns one preorder. Customers can only see their own.
func (s *Service) GetByID(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) (*PreorderResponse, error) {
	order, err := s.preorders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != requesterID {
		return nil, shared.ErrForbidden
	}
	return s.toResponse(ctx, order, isAdmin)
}

// ListMine lists the requesting user's preorders, newest first.
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]PreorderResponse, error) {
	orders, err := s.preorders.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, orders, false)
}

// ListAll lists preorders for the back office, optionally by status.
func (s *Service) ListAll(ctx context.Context, status string, filter shared.Filter) ([]PreorderResponse, error) {
	switch preorder.Status(status) {
	case "", preorder.StatusOpen, preorder.StatusCompleted, preorder.StatusCancelled:
	default:
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown preorder status")
	}
	orders, err := s.preorders.FindAll(ctx, preorder.Status(status), filter)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, orders, true)
}

// Complete marks an open preorder as picked up.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*PreorderResponse, error) {
	order, err := s.preorders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.Complete(); err != nil {
		return nil, err
	}
	if err := s.preorders.Save(ctx, order); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, order, true)
}

// Cancel closes an open preorder with a reason. Customers may cancel their
// own preorders; staff may cancel any.
func (s *Service) Cancel(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool, reason string) (*PreorderResponse, error) {
	order, err := s.preorders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != requesterID {
		return nil, shared.ErrForbidden
	}
	if err := order.Cancel(reason); err != nil {
		return nil, err
	}
	if err := s.preorders.Save(ctx, order); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, order, isAdmin)
}

func (s *Service) toResponses(ctx context.Context, orders []*preorder.Preorder, withContact bool) ([]PreorderResponse, error) {
	responses := make([]PreorderResponse, 0, len(orders))
	for _, order := range orders {
		resp, err := s.toResponse(ctx, order, withContact)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *Service) toResponse(ctx context.Context, order *preorder.Preorder, withContact bool) (*PreorderResponse, error) {
	resp := &PreorderResponse{
		ID:           order.ID.String(),
		UserID:       order.UserID.String(),
		Comment:      order.Comment,
		PickupDate:   order.PickupDate.Format(dateLayout),
		PickupTime:   order.PickupTime,
		Status:       string(order.Status),
		CancelReason: order.CancelReason,
		CompletedAt:  order.CompletedAt,
		CancelledAt:  order.CancelledAt,
		CreatedAt:    order.CreatedAt,
		Items:        make([]PreorderItemResponse, 0, len(order.Items)),
	}

	if withContact {
		user, err := s.users.FindByID(ctx, order.UserID)
		if err == nil {
			resp.Username = user.Username
			resp.Phone = user.Phone
		}
	}

	for _, item := range order.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, PreorderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: product.Name,
			Quantity:    inventory.FormatQuantity(item.Quantity, product.IsWeightBased),
		})
	}
	return resp, nil
}

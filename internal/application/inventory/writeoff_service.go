package inventory

import (
	"context"

	"github.com/farmstore/backend/internal/domain/catalog"
	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WriteOffService removes whole batches from stock for loss or spoilage,
// leaving an immutable audit trail.
type WriteOffService struct {
	products  catalog.ProductRepository
	writeOffs inventory.WriteOffRepository
	scope     TransactionScope
}

// NewWriteOffService creates a new WriteOffService
func NewWriteOffService(products catalog.ProductRepository, writeOffs inventory.WriteOffRepository, scope TransactionScope) *WriteOffService {
	return &WriteOffService{
		products:  products,
		writeOffs: writeOffs,
		scope:     scope,
	}
}

// WriteOffBatch writes off the batch's full remaining quantity and deletes
// the batch row, atomically. A blank reason rejects the operation with the
// batch untouched.
func (s *WriteOffService) WriteOffBatch(ctx context.Context, batchID uuid.UUID, reason string) (*WriteOffResponse, error) {
	var response *WriteOffResponse

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		batch, err := repos.Batches().FindByID(ctx, batchID)
		if err != nil {
			return err
		}
		writeOff, err := inventory.NewWriteOff(batch, reason)
		if err != nil {
			return err
		}
		if err := repos.WriteOffs().Save(ctx, writeOff); err != nil {
			return err
		}
		if err := repos.Batches().Delete(ctx, batch.ID); err != nil {
			return err
		}

		product, err := s.products.FindByID(ctx, writeOff.ProductID)
		if err != nil {
			return err
		}
		response = &WriteOffResponse{
			ID:          writeOff.ID.String(),
			ProductID:   writeOff.ProductID.String(),
			ProductName: product.Name,
			Quantity:    inventory.FormatQuantity(writeOff.Quantity, product.IsWeightBased),
			Reason:      writeOff.Reason,
			CreatedAt:   writeOff.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// List returns write-off records, newest first.
func (s *WriteOffService) List(ctx context.Context, filter shared.Filter) ([]WriteOffResponse, error) {
	records, err := s.writeOffs.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]WriteOffResponse, 0, len(records))
	for _, record := range records {
		product, err := s.products.FindByID(ctx, record.ProductID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, WriteOffResponse{
			ID:          record.ID.String(),
			ProductID:   record.ProductID.String(),
			ProductName: product.Name,
			Quantity:    inventory.FormatQuantity(record.Quantity, product.IsWeightBased),
			Reason:      record.Reason,
			CreatedAt:   record.CreatedAt,
		})
	}
	return responses, nil
}

package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWriteOffService_WriteOffBatch(t *testing.T) {
	ctx := context.Background()
	product := testProduct(t, "Cottage cheese", true, 5)

	producedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	batch, err := inventory.NewBatch(product.ID, decimal.RequireFromString("1.2"), producedAt, product.ExpiryFor(producedAt))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	batchRepo := new(MockBatchRepository)
	batchRepo.On("FindByID", ctx, batch.ID).Return(batch, nil)
	batchRepo.On("Delete", ctx, batch.ID).Return(nil)

	writeOffRepo := new(MockWriteOffRepository)
	writeOffRepo.On("Save", ctx, mock.Anything).Return(nil)

	scope := &NoOpTransactionScope{BatchRepo: batchRepo, WriteOffRepo: writeOffRepo}
	svc := NewWriteOffService(productRepo, writeOffRepo, scope)

	resp, err := svc.WriteOffBatch(ctx, batch.ID, "spoiled in transit")
	require.NoError(t, err)
	assert.Equal(t, "1.2", resp.Quantity)
	assert.Equal(t, "spoiled in transit", resp.Reason)
	assert.Equal(t, product.Name, resp.ProductName)

	batchRepo.AssertCalled(t, "Delete", ctx, batch.ID)
	writeOffRepo.AssertCalled(t, "Save", ctx, mock.Anything)
}

func TestWriteOffService_BlankReasonLeavesBatch(t *testing.T) {
	ctx := context.Background()
	product := testProduct(t, "Cottage cheese", true, 5)

	producedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	batch, err := inventory.NewBatch(product.ID, decimal.NewFromInt(3), producedAt, product.ExpiryFor(producedAt))
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	batchRepo.On("FindByID", ctx, batch.ID).Return(batch, nil)

	writeOffRepo := new(MockWriteOffRepository)
	scope := &NoOpTransactionScope{BatchRepo: batchRepo, WriteOffRepo: writeOffRepo}
	svc := NewWriteOffService(new(MockProductRepository), writeOffRepo, scope)

	_, err = svc.WriteOffBatch(ctx, batch.ID, "   ")
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)

	batchRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	writeOffRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWriteOffService_UnknownBatch(t *testing.T) {
	ctx := context.Background()

	batchRepo := new(MockBatchRepository)
	batchRepo.On("FindByID", ctx, mock.Anything).Return(nil, shared.ErrNotFound)

	scope := &NoOpTransactionScope{BatchRepo: batchRepo, WriteOffRepo: new(MockWriteOffRepository)}
	svc := NewWriteOffService(new(MockProductRepository), new(MockWriteOffRepository), scope)

	_, err := svc.WriteOffBatch(ctx, uuid.New(), "damaged")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

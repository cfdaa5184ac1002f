package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/farmstore/backend/internal/domain/catalog"
	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

// MockBatchRepository is a mock implementation of inventory.BatchRepository
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*inventory.Batch, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]*inventory.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*inventory.Batch, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*inventory.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindSellableForUpdate(ctx context.Context, productID uuid.UUID, today time.Time) ([]*inventory.Batch, error) {
	args := m.Called(ctx, productID, today)
	return args.Get(0).([]*inventory.Batch), args.Error(1)
}

func (m *MockBatchRepository) SumQuantityByProduct(ctx context.Context, productID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBatchRepository) Save(ctx context.Context, batch *inventory.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) SaveAll(ctx context.Context, batches []*inventory.Batch) error {
	args := m.Called(ctx, batches)
	return args.Error(0)
}

func (m *MockBatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWriteOffRepository is a mock implementation of inventory.WriteOffRepository
type MockWriteOffRepository struct {
	mock.Mock
}

func (m *MockWriteOffRepository) Save(ctx context.Context, writeOff *inventory.WriteOff) error {
	args := m.Called(ctx, writeOff)
	return args.Error(0)
}

func (m *MockWriteOffRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*inventory.WriteOff, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*inventory.WriteOff), args.Error(1)
}

// memorySupplyDraftStore keeps drafts in a map for tests.
type memorySupplyDraftStore struct {
	drafts map[string]*inventory.SupplyDraft
}

func newMemorySupplyDraftStore() *memorySupplyDraftStore {
	return &memorySupplyDraftStore{drafts: make(map[string]*inventory.SupplyDraft)}
}

func (s *memorySupplyDraftStore) Get(_ context.Context, sessionID string) (*inventory.SupplyDraft, error) {
	if draft, ok := s.drafts[sessionID]; ok {
		return draft, nil
	}
	return &inventory.SupplyDraft{}, nil
}

func (s *memorySupplyDraftStore) Save(_ context.Context, sessionID string, draft *inventory.SupplyDraft) error {
	s.drafts[sessionID] = draft
	return nil
}

func (s *memorySupplyDraftStore) Clear(_ context.Context, sessionID string) error {
	delete(s.drafts, sessionID)
	return nil
}

func testProduct(t *testing.T, name string, weightBased bool, shelfLifeDays int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, decimal.NewFromInt(100), weightBased, shelfLifeDays)
	require.NoError(t, err)
	return product
}

func TestSupplyService_AddLine(t *testing.T) {
	ctx := context.Background()
	product := testProduct(t, "Goat cheese", true, 7)

	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	productRepo.On("FindByIDs", ctx, []uuid.UUID{product.ID}).Return([]catalog.Product{*product}, nil)

	svc := NewSupplyService(productRepo, newMemorySupplyDraftStore(), &NoOpTransactionScope{})

	resp, err := svc.AddLine(ctx, "session-1", AddSupplyLineRequest{
		ProductID:  product.ID.String(),
		Quantity:   "2.500",
		ProducedAt: "2025-06-01",
	})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "2.5", resp.Lines[0].Quantity)
	assert.Equal(t, "2025-06-01", resp.Lines[0].ProducedAt)
	assert.Equal(t, "2025-06-08", resp.Lines[0].ExpiresAt)
}

func TestSupplyService_AddLine_MergesSameProductAndDate(t *testing.T) {
	ctx := context.Background()
	product := testProduct(t, "Eggs", false, 14)

	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	productRepo.On("FindByIDs", ctx, []uuid.UUID{product.ID}).Return([]catalog.Product{*product}, nil)

	svc := NewSupplyService(productRepo, newMemorySupplyDraftStore(), &NoOpTransactionScope{})

	_, err := svc.AddLine(ctx, "s", AddSupplyLineRequest{ProductID: product.ID.String(), Quantity: "10", ProducedAt: "2025-06-01"})
	require.NoError(t, err)
	resp, err := svc.AddLine(ctx, "s", AddSupplyLineRequest{ProductID: product.ID.String(), Quantity: "20", ProducedAt: "2025-06-01"})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "30", resp.Lines[0].Quantity)
}

func TestSupplyService_AddLine_RejectsFractionalDiscrete(t *testing.T) {
	ctx := context.Background()
	product := testProduct(t, "Eggs", false, 14)

	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	svc := NewSupplyService(productRepo, newMemorySupplyDraftStore(), &NoOpTransactionScope{})

	_, err := svc.AddLine(ctx, "s", AddSupplyLineRequest{ProductID: product.ID.String(), Quantity: "1.5"})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestSupplyService_Confirm_EmptyDraft(t *testing.T) {
	svc := NewSupplyService(new(MockProductRepository), newMemorySupplyDraftStore(), &NoOpTransactionScope{})

	_, err := svc.Confirm(context.Background(), "empty-session")
	assert.ErrorIs(t, err, shared.ErrEmptyDraft)
}

func TestSupplyService_Confirm_CreatesBatchesAndClearsDraft(t *testing.T) {
	ctx := context.Background()
	product := testProduct(t, "Goat cheese", true, 7)

	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	productRepo.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{*product}, nil)

	batchRepo := new(MockBatchRepository)
	batchRepo.On("SaveAll", ctx, mock.Anything).Return(nil)

	drafts := newMemorySupplyDraftStore()
	svc := NewSupplyService(productRepo, drafts, &NoOpTransactionScope{BatchRepo: batchRepo})

	_, err := svc.AddLine(ctx, "s", AddSupplyLineRequest{ProductID: product.ID.String(), Quantity: "2.5", ProducedAt: "2025-06-01"})
	require.NoError(t, err)

	responses, err := svc.Confirm(ctx, "s")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "2025-06-08", responses[0].ExpiresAt)

	batchRepo.AssertCalled(t, "SaveAll", ctx, mock.Anything)

	// draft is gone after a successful confirm
	draft, err := drafts.Get(ctx, "s")
	require.NoError(t, err)
	assert.True(t, draft.Empty())
}

func TestSupplyService_Confirm_ExpirySnapshotsCurrentShelfLife(t *testing.T) {
	ctx := context.Background()
	product := testProduct(t, "Milk", true, 5)

	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	productRepo.On("FindByIDs", ctx, mock.Anything).Return([]catalog.Product{*product}, nil)

	var saved []*inventory.Batch
	batchRepo := new(MockBatchRepository)
	batchRepo.On("SaveAll", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]*inventory.Batch)
	}).Return(nil)

	svc := NewSupplyService(productRepo, newMemorySupplyDraftStore(), &NoOpTransactionScope{BatchRepo: batchRepo})

	_, err := svc.AddLine(ctx, "s", AddSupplyLineRequest{ProductID: product.ID.String(), Quantity: "1", ProducedAt: "2025-06-01"})
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, "s")
	require.NoError(t, err)

	require.Len(t, saved, 1)
	assert.Equal(t, "2025-06-06", saved[0].ExpiresAt.Format("2006-01-02"))
}

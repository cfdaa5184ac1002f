package preorder

import (
	"context"
	"testing"
	"time"

	"github.com/farmstore/backend/internal/domain/catalog"
	"github.com/farmstore/backend/internal/domain/identity"
	"github.com/farmstore/backend/internal/domain/preorder"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPreorderRepository struct {
	mock.Mock
}

func (m *MockPreorderRepository) FindByID(ctx context.Context, id uuid.UUID) (*preorder.Preorder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*preorder.Preorder), args.Error(1)
}

func (m *MockPreorderRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*preorder.Preorder, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]*preorder.Preorder), args.Error(1)
}

func (m *MockPreorderRepository) FindAll(ctx context.Context, status preorder.Status, filter shared.Filter) ([]*preorder.Preorder, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]*preorder.Preorder), args.Error(1)
}

func (m *MockPreorderRepository) Save(ctx context.Context, order *preorder.Preorder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*identity.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func testService(preorders *MockPreorderRepository, products *MockProductRepository, users *MockUserRepository) *Service {
	svc := NewService(preorders, products, users, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC) }
	return svc
}

func testProduct(t *testing.T, name string, weightBased bool) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, decimal.NewFromInt(250), weightBased, 7)
	require.NoError(t, err)
	return product
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct(t, "Goat cheese", true)

	t.Run("creates an open preorder", func(t *testing.T) {
		preorders := new(MockPreorderRepository)
		preorders.On("Save", ctx, mock.Anything).Return(nil)
		products := new(MockProductRepository)
		products.On("FindByID", ctx, product.ID).Return(product, nil)

		svc := testService(preorders, products, new(MockUserRepository))

		resp, err := svc.Create(ctx, userID, CreatePreorderRequest{
			PickupDate: "2025-06-12",
			PickupTime: "14:30",
			Items:      []CreatePreorderItem{{ProductID: product.ID.String(), Quantity: "0.500"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "open", resp.Status)
		assert.Equal(t, "2025-06-12", resp.PickupDate)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "0.5", resp.Items[0].Quantity)
		preorders.AssertExpectations(t)
	})

	t.Run("rejects a past pickup date", func(t *testing.T) {
		svc := testService(new(MockPreorderRepository), new(MockProductRepository), new(MockUserRepository))

		_, err := svc.Create(ctx, userID, CreatePreorderRequest{
			PickupDate: "2025-06-09",
			Items:      []CreatePreorderItem{{ProductID: product.ID.String(), Quantity: "1"}},
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})

	t.Run("rejects an empty item list", func(t *testing.T) {
		svc := testService(new(MockPreorderRepository), new(MockProductRepository), new(MockUserRepository))

		_, err := svc.Create(ctx, userID, CreatePreorderRequest{PickupDate: "2025-06-12"})
		require.Error(t, err)
	})

	t.Run("rejects a malformed pickup time", func(t *testing.T) {
		svc := testService(new(MockPreorderRepository), new(MockProductRepository), new(MockUserRepository))

		_, err := svc.Create(ctx, userID, CreatePreorderRequest{
			PickupDate: "2025-06-12",
			PickupTime: "25:99",
			Items:      []CreatePreorderItem{{ProductID: product.ID.String(), Quantity: "1"}},
		})
		require.Error(t, err)
	})
}

func TestService_GetByID_Ownership(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	product := testProduct(t, "Eggs", false)

	order, err := preorder.NewPreorder(owner, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), "", "")
	require.NoError(t, err)
	require.NoError(t, order.AddItem(product.ID, decimal.NewFromInt(10)))

	preorders := new(MockPreorderRepository)
	preorders.On("FindByID", ctx, order.ID).Return(order, nil)
	products := new(MockProductRepository)
	products.On("FindByID", ctx, product.ID).Return(product, nil)
	users := new(MockUserRepository)
	users.On("FindByID", ctx, owner).Return(nil, shared.ErrNotFound)

	svc := testService(preorders, products, users)

	t.Run("owner can read it", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, order.ID, owner, false)
		require.NoError(t, err)
		assert.Empty(t, resp.Phone)
	})

	t.Run("another customer cannot", func(t *testing.T) {
		_, err := svc.GetByID(ctx, order.ID, stranger, false)
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("staff can read any", func(t *testing.T) {
		_, err := svc.GetByID(ctx, order.ID, stranger, true)
		assert.NoError(t, err)
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	product := testProduct(t, "Eggs", false)

	newOrder := func(t *testing.T) *preorder.Preorder {
		order, err := preorder.NewPreorder(owner, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), "", "")
		require.NoError(t, err)
		require.NoError(t, order.AddItem(product.ID, decimal.NewFromInt(10)))
		return order
	}

	t.Run("owner cancels with a reason", func(t *testing.T) {
		order := newOrder(t)
		preorders := new(MockPreorderRepository)
		preorders.On("FindByID", ctx, order.ID).Return(order, nil)
		preorders.On("Save", ctx, order).Return(nil)
		products := new(MockProductRepository)
		products.On("FindByID", ctx, product.ID).Return(product, nil)

		svc := testService(preorders, products, new(MockUserRepository))

		resp, err := svc.Cancel(ctx, order.ID, owner, false, "Change of plans")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		assert.Equal(t, "Change of plans", resp.CancelReason)
	})

	t.Run("requires a reason", func(t *testing.T) {
		order := newOrder(t)
		preorders := new(MockPreorderRepository)
		preorders.On("FindByID", ctx, order.ID).Return(order, nil)

		svc := testService(preorders, new(MockProductRepository), new(MockUserRepository))

		_, err := svc.Cancel(ctx, order.ID, owner, false, "  ")
		require.Error(t, err)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		order := newOrder(t)
		preorders := new(MockPreorderRepository)
		preorders.On("FindByID", ctx, order.ID).Return(order, nil)

		svc := testService(preorders, new(MockProductRepository), new(MockUserRepository))

		_, err := svc.Cancel(ctx, order.ID, uuid.New(), false, "nope")
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}

func TestService_Complete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	product := testProduct(t, "Eggs", false)

	order, err := preorder.NewPreorder(owner, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), "", "")
	require.NoError(t, err)
	require.NoError(t, order.AddItem(product.ID, decimal.NewFromInt(10)))

	preorders := new(MockPreorderRepository)
	preorders.On("FindByID", ctx, order.ID).Return(order, nil)
	preorders.On("Save", ctx, order).Return(nil)
	products := new(MockProductRepository)
	products.On("FindByID", ctx, product.ID).Return(product, nil)
	users := new(MockUserRepository)
	users.On("FindByID", ctx, owner).Return(nil, shared.ErrNotFound)

	svc := testService(preorders, products, users)

	resp, err := svc.Complete(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.CompletedAt)

	_, err = svc.Complete(ctx, order.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

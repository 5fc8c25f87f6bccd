package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ordereat-api/apperr"
	"ordereat-api/authz"
	"ordereat-api/events"
	"ordereat-api/models"
	"ordereat-api/statemachine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 17, 18, 30, 0, 0, time.UTC)

type orderFixture struct {
	orders    *mockOrderRepo
	dishes    *mockDishRepo
	publisher *mockPublisher
	svc       *OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{orders: &mockOrderRepo{}, dishes: &mockDishRepo{}, publisher: &mockPublisher{}}
	f.svc = NewOrderService(f.orders, f.dishes, f.publisher)
	f.svc.Now = func() time.Time { return fixedNow }
	return f
}

func customerOrder(customer uint, status models.OrderStatus, dishIDs ...uint) *models.Order {
	order := &models.Order{ID: 1, CustomerID: &customer, Status: status}
	for i, id := range dishIDs {
		order.OrderedDishes = append(order.OrderedDishes, models.OrderedDish{ID: uint(i + 1), OrderID: 1, DishID: id})
	}
	return order
}

func TestOrderService_RealizeGuards(t *testing.T) {
	customer := authz.Principal{ID: 5, Role: models.RoleUser}
	cases := []struct {
		name    string
		order   *models.Order
		caller  authz.Principal
		wantErr error
		wantMsg string
	}{
		{"missing", nil, customer, apperr.ErrNotFound, "Order not found"},
		{"other customer", customerOrder(6, models.StatusCreated, 1), customer, apperr.ErrForbidden, "You are not allowed to perform this operation"},
		{"no dishes", customerOrder(5, models.StatusCreated), customer, apperr.ErrBadRequest, statemachine.MsgNeedsDishes},
		{"already ordered", customerOrder(5, models.StatusOrdered, 1), customer, apperr.ErrBadRequest, statemachine.MsgAlreadyRealized},
		{"finished", customerOrder(5, models.StatusRealized, 1), customer, apperr.ErrBadRequest, statemachine.MsgFinished},
		{"ownerless order", &models.Order{ID: 1, Status: models.StatusCreated, OrderedDishes: []models.OrderedDish{{DishID: 1}}}, customer, apperr.ErrForbidden, "You are not allowed to perform this operation"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture()
			if tc.order == nil {
				f.orders.On("GetByID", mock.Anything, uint(1)).Return(nil, nil)
			} else {
				f.orders.On("GetByID", mock.Anything, uint(1)).Return(tc.order, nil)
			}
			var before models.Order
			if tc.order != nil {
				before = *tc.order
			}

			_, err := f.svc.Realize(context.Background(), tc.caller, 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.EqualError(t, err, tc.wantMsg)
			f.orders.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
			f.publisher.AssertNotCalled(t, "PublishOrderRealized", mock.Anything, mock.Anything)
			if tc.order != nil {
				assert.Equal(t, before.Status, tc.order.Status)
				assert.Equal(t, before.OrderDate, tc.order.OrderDate)
			}
		})
	}
}

func TestOrderService_RealizeCommitsThenPublishes(t *testing.T) {
	f := newOrderFixture()
	order := customerOrder(5, models.StatusCreated, 4, 2)
	f.orders.On("GetByID", mock.Anything, uint(1)).Return(order, nil)
	f.orders.On("Commit", mock.Anything, order).Return(nil).Once()
	f.publisher.On("PublishOrderRealized", mock.Anything, mock.MatchedBy(func(evt events.OrderRealized) bool {
		return evt.Type == events.TypeOrderRealized && evt.OrderID == 1 &&
			*evt.CustomerID == 5 && evt.OrderDate.Equal(fixedNow) &&
			len(evt.DishIDs) == 2 && evt.DishIDs[0] == 4 && evt.DishIDs[1] == 2
	})).Return(nil).Once()

	realized, err := f.svc.Realize(context.Background(), authz.Principal{ID: 5, Role: models.RoleUser}, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOrdered, realized.Status)
	require.NotNil(t, realized.OrderDate)
	assert.True(t, fixedNow.Equal(*realized.OrderDate))
	f.orders.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestOrderService_RealizeByAdmin(t *testing.T) {
	f := newOrderFixture()
	order := customerOrder(5, models.StatusCreated, 1)
	f.orders.On("GetByID", mock.Anything, uint(1)).Return(order, nil)
	f.orders.On("Commit", mock.Anything, order).Return(nil)
	f.publisher.On("PublishOrderRealized", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.Realize(context.Background(), authz.Principal{ID: 99, Role: models.RoleAdmin}, 1)
	require.NoError(t, err)
}

func TestOrderService_PublishFailureDoesNotFailRealize(t *testing.T) {
	f := newOrderFixture()
	order := customerOrder(5, models.StatusCreated, 1)
	f.orders.On("GetByID", mock.Anything, uint(1)).Return(order, nil)
	f.orders.On("Commit", mock.Anything, order).Return(nil)
	f.publisher.On("PublishOrderRealized", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	realized, err := f.svc.Realize(context.Background(), authz.Principal{ID: 5, Role: models.RoleUser}, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOrdered, realized.Status)
}

func TestOrderService_PublishOutlivesCancelledRequest(t *testing.T) {
	f := newOrderFixture()
	order := customerOrder(5, models.StatusCreated, 1)
	f.orders.On("GetByID", mock.Anything, uint(1)).Return(order, nil)
	f.orders.On("Commit", mock.Anything, order).Return(nil)
	f.publisher.On("PublishOrderRealized", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ctx.Err() == nil && ok && time.Until(deadline) <= PublishTimeout
	}), mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	realized, err := f.svc.Realize(ctx, authz.Principal{ID: 5, Role: models.RoleUser}, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOrdered, realized.Status)
	f.publisher.AssertExpectations(t)
}

func TestOrderService_CommitFailureIsReturned(t *testing.T) {
	f := newOrderFixture()
	order := customerOrder(5, models.StatusCreated, 1)
	f.orders.On("GetByID", mock.Anything, uint(1)).Return(order, nil)
	f.orders.On("Commit", mock.Anything, order).Return(context.Canceled)

	_, err := f.svc.Realize(context.Background(), authz.Principal{ID: 5, Role: models.RoleUser}, 1)
	assert.ErrorIs(t, err, context.Canceled)
	f.publisher.AssertNotCalled(t, "PublishOrderRealized", mock.Anything, mock.Anything)
}

func TestOrderService_Create(t *testing.T) {
	f := newOrderFixture()
	f.dishes.On("GetByID", mock.Anything, uint(1)).Return(&models.Dish{ID: 1}, nil)
	f.dishes.On("GetByID", mock.Anything, uint(2)).Return(nil, nil)
	f.orders.On("Create", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
		return o.Status == models.StatusCreated && *o.CustomerID == 5 && len(o.OrderedDishes) == 1
	})).Return(nil).Once()

	_, err := f.svc.Create(context.Background(), authz.Principal{ID: 5, Role: models.RoleUser}, []uint{1, 2})
	assert.EqualError(t, err, "Dish not found")

	order, err := f.svc.Create(context.Background(), authz.Principal{ID: 5, Role: models.RoleUser}, []uint{1})
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, order.DishIDs())
	f.orders.AssertExpectations(t)
}

func TestOrderService_AddDish(t *testing.T) {
	t.Run("created order accepts dishes", func(t *testing.T) {
		f := newOrderFixture()
		order := customerOrder(5, models.StatusCreated)
		f.orders.On("GetByID", mock.Anything, uint(1)).Return(order, nil)
		f.dishes.On("GetByID", mock.Anything, uint(3)).Return(&models.Dish{ID: 3}, nil)
		f.orders.On("AddDish", mock.Anything, order, uint(3)).Return(&models.OrderedDish{ID: 1, DishID: 3}, nil).Once()

		_, err := f.svc.AddDish(context.Background(), authz.Principal{ID: 5, Role: models.RoleUser}, 1, 3)
		require.NoError(t, err)
		f.orders.AssertExpectations(t)
	})

	t.Run("ordered order is closed", func(t *testing.T) {
		f := newOrderFixture()
		f.orders.On("GetByID", mock.Anything, uint(1)).Return(customerOrder(5, models.StatusOrdered, 1), nil)

		_, err := f.svc.AddDish(context.Background(), authz.Principal{ID: 5, Role: models.RoleUser}, 1, 3)
		assert.ErrorIs(t, err, apperr.ErrBadRequest)
		f.orders.AssertNotCalled(t, "AddDish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("other customer", func(t *testing.T) {
		f := newOrderFixture()
		f.orders.On("GetByID", mock.Anything, uint(1)).Return(customerOrder(5, models.StatusCreated), nil)

		_, err := f.svc.AddDish(context.Background(), authz.Principal{ID: 6, Role: models.RoleUser}, 1, 3)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})
}

func TestOrderService_GetAndDelete(t *testing.T) {
	f := newOrderFixture()
	order := customerOrder(5, models.StatusCreated)
	f.orders.On("GetByID", mock.Anything, uint(1)).Return(order, nil)
	f.orders.On("Delete", mock.Anything, order).Return(nil).Once()

	got, err := f.svc.Get(context.Background(), authz.Principal{ID: 6, Role: models.RoleUser}, 1)
	require.NoError(t, err)
	assert.Same(t, order, got)

	err = f.svc.Delete(context.Background(), authz.Principal{ID: 6, Role: models.RoleUser}, 1)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	require.NoError(t, f.svc.Delete(context.Background(), authz.Principal{ID: 5, Role: models.RoleUser}, 1))
	f.orders.AssertExpectations(t)
}

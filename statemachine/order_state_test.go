package statemachine

import (
	"errors"
	"testing"
	"time"

	"ordereat-api/apperr"
	"ordereat-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderWith(status models.OrderStatus, lines int) *models.Order {
	order := &models.Order{ID: 1, Status: status}
	for i := 0; i < lines; i++ {
		order.OrderedDishes = append(order.OrderedDishes, models.OrderedDish{ID: uint(i + 1), OrderID: 1, DishID: uint(100 + i)})
	}
	return order
}

func TestRealize(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		order   *models.Order
		wantMsg string
	}{
		{"empty created order", orderWith(models.StatusCreated, 0), MsgNeedsDishes},
		{"empty ordered order", orderWith(models.StatusOrdered, 0), MsgNeedsDishes},
		{"empty realized order", orderWith(models.StatusRealized, 0), MsgNeedsDishes},
		{"already ordered", orderWith(models.StatusOrdered, 2), MsgAlreadyRealized},
		{"finished", orderWith(models.StatusRealized, 1), MsgFinished},
		{"created with dishes", orderWith(models.StatusCreated, 1), ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			before := *testCase.order
			err := Realize(testCase.order, now)
			if testCase.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, models.StatusOrdered, testCase.order.Status)
				require.NotNil(t, testCase.order.OrderDate)
				assert.Equal(t, now, *testCase.order.OrderDate)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrBadRequest))
			assert.Equal(t, testCase.wantMsg, err.Error())
			assert.Equal(t, before.Status, testCase.order.Status)
			assert.Equal(t, before.OrderDate, testCase.order.OrderDate)
		})
	}
}

func TestRealizeTwiceKeepsFirstResult(t *testing.T) {
	order := orderWith(models.StatusCreated, 1)
	first := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, Realize(order, first))

	err := Realize(order, first.Add(time.Hour))
	require.Error(t, err)
	assert.Equal(t, MsgAlreadyRealized, err.Error())
	assert.Equal(t, models.StatusOrdered, order.Status)
	assert.Equal(t, first, *order.OrderDate)
}

func TestTransitions(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusCreated, models.StatusOrdered))
	assert.Error(t, CanTransition(models.StatusOrdered, models.StatusRealized))
	assert.Error(t, CanTransition(models.StatusOrdered, models.StatusCreated))
	assert.Equal(t, []models.OrderStatus{models.StatusOrdered}, ValidTransitionsFrom(models.StatusCreated))
	assert.Empty(t, ValidTransitionsFrom(models.StatusRealized))
	assert.Contains(t, CanTransition(models.StatusRealized, models.StatusCreated).Error(), "none (terminal state)")
	assert.True(t, AcceptsDishes(models.StatusCreated))
	assert.False(t, AcceptsDishes(models.StatusOrdered))
	assert.Len(t, GetAllTransitions(), 1)
}

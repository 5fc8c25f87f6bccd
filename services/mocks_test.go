package services

import (
	"context"

	"ordereat-api/events"
	"ordereat-api/models"
	"ordereat-api/query"

	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks for the repository interfaces.

type mockRestaurantRepo struct{ mock.Mock }

func (m *mockRestaurantRepo) Create(ctx context.Context, r *models.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRestaurantRepo) GetByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*models.Restaurant)
	return r, args.Error(1)
}

func (m *mockRestaurantRepo) Update(ctx context.Context, r *models.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRestaurantRepo) Delete(ctx context.Context, r *models.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRestaurantRepo) Search(ctx context.Context, spec query.Spec) ([]models.Restaurant, int64, error) {
	args := m.Called(ctx, spec)
	items, _ := args.Get(0).([]models.Restaurant)
	return items, args.Get(1).(int64), args.Error(2)
}

type mockDishRepo struct{ mock.Mock }

func (m *mockDishRepo) Create(ctx context.Context, d *models.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDishRepo) GetByID(ctx context.Context, id uint) (*models.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.Dish)
	return d, args.Error(1)
}

func (m *mockDishRepo) Update(ctx context.Context, d *models.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDishRepo) Delete(ctx context.Context, d *models.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDishRepo) ReplaceDiets(ctx context.Context, d *models.Dish, diets []models.SpecialDiet) error {
	return m.Called(ctx, d, diets).Error(0)
}

func (m *mockDishRepo) AddIngredient(ctx context.Context, d *models.Dish, i *models.Ingredient) error {
	return m.Called(ctx, d, i).Error(0)
}

func (m *mockDishRepo) Ingredients(ctx context.Context, d *models.Dish) ([]models.Ingredient, error) {
	args := m.Called(ctx, d)
	items, _ := args.Get(0).([]models.Ingredient)
	return items, args.Error(1)
}

func (m *mockDishRepo) Count(ctx context.Context, q query.DishQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDishRepo) Search(ctx context.Context, q query.DishQuery) ([]models.Dish, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]models.Dish)
	return items, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) RoleByName(ctx context.Context, name models.RoleName) (*models.Role, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(*models.Role)
	return r, args.Error(1)
}

func (m *mockUserRepo) SetDiet(ctx context.Context, u *models.User, dietID *uint) error {
	return m.Called(ctx, u, dietID).Error(0)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*models.Order)
	return o, args.Error(1)
}

func (m *mockOrderRepo) AddDish(ctx context.Context, o *models.Order, dishID uint) (*models.OrderedDish, error) {
	args := m.Called(ctx, o, dishID)
	line, _ := args.Get(0).(*models.OrderedDish)
	return line, args.Error(1)
}

func (m *mockOrderRepo) Commit(ctx context.Context, o *models.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, o *models.Order) error {
	return m.Called(ctx, o).Error(0)
}

type mockCatalogRepo[T any] struct{ mock.Mock }

func (m *mockCatalogRepo[T]) Create(ctx context.Context, item *T) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCatalogRepo[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*T)
	return item, args.Error(1)
}

func (m *mockCatalogRepo[T]) FindByIDs(ctx context.Context, ids []uint) ([]T, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *mockCatalogRepo[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *mockCatalogRepo[T]) Update(ctx context.Context, item *T) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCatalogRepo[T]) Delete(ctx context.Context, item *T) error {
	return m.Called(ctx, item).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishOrderRealized(ctx context.Context, evt events.OrderRealized) error {
	return m.Called(ctx, evt).Error(0)
}

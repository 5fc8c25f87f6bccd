// Package services holds the command and query handlers. Every call takes the caller as an
// explicit authz.Principal; repositories are the interfaces declared here.
package services

import (
	"context"

	"ordereat-api/events"
	"ordereat-api/models"
	"ordereat-api/query"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *models.Restaurant) error
	GetByID(ctx context.Context, id uint) (*models.Restaurant, error)
	Update(ctx context.Context, restaurant *models.Restaurant) error
	Delete(ctx context.Context, restaurant *models.Restaurant) error
	Search(ctx context.Context, spec query.Spec) ([]models.Restaurant, int64, error)
}

type DishRepository interface {
	Create(ctx context.Context, dish *models.Dish) error
	GetByID(ctx context.Context, id uint) (*models.Dish, error)
	Update(ctx context.Context, dish *models.Dish) error
	Delete(ctx context.Context, dish *models.Dish) error
	ReplaceDiets(ctx context.Context, dish *models.Dish, diets []models.SpecialDiet) error
	AddIngredient(ctx context.Context, dish *models.Dish, ingredient *models.Ingredient) error
	Ingredients(ctx context.Context, dish *models.Dish) ([]models.Ingredient, error)
	Count(ctx context.Context, q query.DishQuery) (int64, error)
	Search(ctx context.Context, q query.DishQuery) ([]models.Dish, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	RoleByName(ctx context.Context, name models.RoleName) (*models.Role, error)
	SetDiet(ctx context.Context, user *models.User, dietID *uint) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	AddDish(ctx context.Context, order *models.Order, dishID uint) (*models.OrderedDish, error)
	Commit(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, order *models.Order) error
}

// CatalogRepository stores allergens or special diets.
type CatalogRepository[T any] interface {
	Create(ctx context.Context, item *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	FindByIDs(ctx context.Context, ids []uint) ([]T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, item *T) error
}

// OrderEventPublisher receives lifecycle events after they are committed.
type OrderEventPublisher interface {
	PublishOrderRealized(ctx context.Context, evt events.OrderRealized) error
}

// pageOf validates req, then resolves it into a Spec.
func pageOf(req query.PageRequest) (query.Spec, error) {
	if err := req.Validate(); err != nil {
		return query.Spec{}, err
	}
	return query.NewSpec(req)
}

package services

import (
	"context"

	"ordereat-api/apperr"
	"ordereat-api/authz"
	"ordereat-api/models"
	"ordereat-api/query"

	"github.com/sirupsen/logrus"
)

// DishService manages a restaurant's dishes. Mutations are authorized against the owning
// restaurant.
type DishService struct {
	Dishes      DishRepository
	Restaurants RestaurantRepository
	Users       UserRepository
	Diets       CatalogRepository[models.SpecialDiet]
}

func NewDishService(dishes DishRepository, restaurants RestaurantRepository, users UserRepository, diets CatalogRepository[models.SpecialDiet]) *DishService {
	return &DishService{Dishes: dishes, Restaurants: restaurants, Users: users, Diets: diets}
}

func (s *DishService) Create(ctx context.Context, p authz.Principal, restaurantID uint, in DishInput) (*models.Dish, error) {
	if _, err := s.restaurantFor(ctx, p, restaurantID, authz.Update); err != nil {
		return nil, err
	}
	dish := &models.Dish{RestaurantID: restaurantID}
	in.apply(dish)
	if err := s.Dishes.Create(ctx, dish); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"dish_id": dish.ID, "restaurant_id": restaurantID}).Info("dish created")
	return dish, nil
}

func (s *DishService) Get(ctx context.Context, id uint) (*models.Dish, error) {
	dish, err := s.Dishes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, apperr.NotFound("Dish not found")
	}
	return dish, nil
}

func (s *DishService) Update(ctx context.Context, p authz.Principal, id uint, in DishInput) (*models.Dish, error) {
	dish, err := s.authorized(ctx, p, id, authz.Update)
	if err != nil {
		return nil, err
	}
	in.apply(dish)
	if err := s.Dishes.Update(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishService) Delete(ctx context.Context, p authz.Principal, id uint) error {
	dish, err := s.authorized(ctx, p, id, authz.Delete)
	if err != nil {
		return err
	}
	return s.Dishes.Delete(ctx, dish)
}

// Search pages through a restaurant's dishes. The total counts every match.
func (s *DishService) Search(ctx context.Context, restaurantID uint, req query.PageRequest) (query.PagedResult[models.Dish], error) {
	spec, err := pageOf(req)
	if err != nil {
		return query.PagedResult[models.Dish]{}, err
	}
	if _, err := s.restaurant(ctx, restaurantID); err != nil {
		return query.PagedResult[models.Dish]{}, err
	}

	q := query.DishQuery{RestaurantID: restaurantID, Spec: spec}
	total, err := s.Dishes.Count(ctx, q)
	if err != nil {
		return query.PagedResult[models.Dish]{}, err
	}
	items, err := s.Dishes.Search(ctx, q)
	if err != nil {
		return query.PagedResult[models.Dish]{}, err
	}
	return query.NewPagedResult(items, int(total), req.PageSize, req.PageNumber), nil
}

// SmartSearch is Search restricted to dishes allowed for the caller's diet. The total is
// counted before the diet restriction, so it can exceed the number of reachable items.
func (s *DishService) SmartSearch(ctx context.Context, p authz.Principal, restaurantID uint, req query.PageRequest) (query.PagedResult[models.Dish], error) {
	user, err := s.Users.GetByID(ctx, p.ID)
	if err != nil {
		return query.PagedResult[models.Dish]{}, err
	}
	if user == nil {
		return query.PagedResult[models.Dish]{}, apperr.BadRequest("Invalid user token")
	}
	if _, err := s.restaurant(ctx, restaurantID); err != nil {
		return query.PagedResult[models.Dish]{}, err
	}
	spec, err := pageOf(req)
	if err != nil {
		return query.PagedResult[models.Dish]{}, err
	}

	base := query.DishQuery{RestaurantID: restaurantID, Spec: spec}
	total, err := s.Dishes.Count(ctx, base)
	if err != nil {
		return query.PagedResult[models.Dish]{}, err
	}
	restricted := base
	restricted.DietID = user.DietID
	items, err := s.Dishes.Search(ctx, restricted)
	if err != nil {
		return query.PagedResult[models.Dish]{}, err
	}
	return query.NewPagedResult(items, int(total), req.PageSize, req.PageNumber), nil
}

// ReplaceDiets sets the diets a dish is allowed for. Unknown diet ids are rejected.
func (s *DishService) ReplaceDiets(ctx context.Context, p authz.Principal, id uint, dietIDs []uint) (*models.Dish, error) {
	dish, err := s.authorized(ctx, p, id, authz.Update)
	if err != nil {
		return nil, err
	}
	ids := uniqueIDs(dietIDs)
	diets, err := s.Diets.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(diets) != len(ids) {
		return nil, apperr.NotFound("Special diet not found")
	}
	if err := s.Dishes.ReplaceDiets(ctx, dish, diets); err != nil {
		return nil, err
	}
	dish.AllowedForDiets = diets
	return dish, nil
}

// AddIngredient creates an ingredient and attaches it to the dish.
func (s *DishService) AddIngredient(ctx context.Context, p authz.Principal, id uint, in IngredientInput) (*models.Ingredient, error) {
	dish, err := s.authorized(ctx, p, id, authz.Update)
	if err != nil {
		return nil, err
	}
	ingredient := &models.Ingredient{
		Name:        in.Name,
		Description: in.Description,
		Prize:       in.Prize,
		IsRequired:  in.IsRequired,
	}
	if err := s.Dishes.AddIngredient(ctx, dish, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *DishService) Ingredients(ctx context.Context, id uint) ([]models.Ingredient, error) {
	dish, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.Dishes.Ingredients(ctx, dish)
	if err != nil {
		return nil, err
	}
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}
	return ingredients, nil
}

func (s *DishService) restaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	restaurant, err := s.Restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperr.NotFound("Restaurant not found")
	}
	return restaurant, nil
}

func (s *DishService) restaurantFor(ctx context.Context, p authz.Principal, id uint, op authz.Operation) (*models.Restaurant, error) {
	restaurant, err := s.restaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if authz.Authorize(p, authz.RestaurantResource(restaurant), op) == authz.Denied {
		logrus.WithFields(logrus.Fields{"restaurant_id": id, "user_id": p.ID, "operation": op}).Warn("dish access denied")
		return nil, apperr.Forbidden()
	}
	return restaurant, nil
}

// authorized loads the dish and checks op against its restaurant.
func (s *DishService) authorized(ctx context.Context, p authz.Principal, id uint, op authz.Operation) (*models.Dish, error) {
	dish, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.restaurantFor(ctx, p, dish.RestaurantID, op); err != nil {
		return nil, err
	}
	return dish, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

package services

import (
	"context"

	"ordereat-api/apperr"
	"ordereat-api/authz"
	"ordereat-api/models"
	"ordereat-api/query"

	"github.com/sirupsen/logrus"
)

type RestaurantService struct {
	Restaurants RestaurantRepository
}

func NewRestaurantService(restaurants RestaurantRepository) *RestaurantService {
	return &RestaurantService{Restaurants: restaurants}
}

// Create stores a restaurant owned by the caller.
func (s *RestaurantService) Create(ctx context.Context, p authz.Principal, in RestaurantInput) (*models.Restaurant, error) {
	restaurant := &models.Restaurant{
		Name:           in.Name,
		Description:    in.Description,
		ContactDetails: in.ContactDetails.model(),
	}
	if authz.Authorize(p, authz.RestaurantResource(restaurant), authz.Create) == authz.Denied {
		return nil, apperr.Forbidden()
	}
	if p.ID != 0 {
		owner := p.ID
		restaurant.CreatedByID = &owner
	}
	if err := s.Restaurants.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"restaurant_id": restaurant.ID, "owner_id": p.ID}).Info("restaurant created")
	return restaurant, nil
}

func (s *RestaurantService) Get(ctx context.Context, id uint) (*models.Restaurant, error) {
	restaurant, err := s.Restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperr.NotFound("Restaurant not found")
	}
	return restaurant, nil
}

// Search pages through restaurants filtered by name or description.
func (s *RestaurantService) Search(ctx context.Context, req query.PageRequest) (query.PagedResult[models.Restaurant], error) {
	spec, err := pageOf(req)
	if err != nil {
		return query.PagedResult[models.Restaurant]{}, err
	}
	items, total, err := s.Restaurants.Search(ctx, spec)
	if err != nil {
		return query.PagedResult[models.Restaurant]{}, err
	}
	return query.NewPagedResult(items, int(total), req.PageSize, req.PageNumber), nil
}

func (s *RestaurantService) Update(ctx context.Context, p authz.Principal, id uint, in RestaurantInput) (*models.Restaurant, error) {
	restaurant, err := s.authorized(ctx, p, id, authz.Update)
	if err != nil {
		return nil, err
	}
	restaurant.Name = in.Name
	restaurant.Description = in.Description
	restaurant.ContactDetails = in.ContactDetails.model()
	if err := s.Restaurants.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Delete removes the restaurant and, with it, its dishes.
func (s *RestaurantService) Delete(ctx context.Context, p authz.Principal, id uint) error {
	restaurant, err := s.authorized(ctx, p, id, authz.Delete)
	if err != nil {
		return err
	}
	if err := s.Restaurants.Delete(ctx, restaurant); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"restaurant_id": id, "user_id": p.ID}).Info("restaurant deleted")
	return nil
}

// authorized loads the restaurant, then checks op against it.
func (s *RestaurantService) authorized(ctx context.Context, p authz.Principal, id uint, op authz.Operation) (*models.Restaurant, error) {
	restaurant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if authz.Authorize(p, authz.RestaurantResource(restaurant), op) == authz.Denied {
		logrus.WithFields(logrus.Fields{"restaurant_id": id, "user_id": p.ID, "operation": op}).Warn("restaurant access denied")
		return nil, apperr.Forbidden()
	}
	return restaurant, nil
}

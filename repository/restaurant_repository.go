package repository

import (
	"context"

	"ordereat-api/models"
	"ordereat-api/query"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return r.DB.WithContext(ctx).Omit("Dishes").Create(restaurant).Error
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	return firstOrNil[models.Restaurant](r.DB.WithContext(ctx), id)
}

// Update saves the editable columns. CreatedByID is create-only and never written here.
func (r *RestaurantRepository) Update(ctx context.Context, restaurant *models.Restaurant) error {
	return r.DB.WithContext(ctx).Model(restaurant).
		Select("*").Omit("id", "created_by_id", "created_at", "Dishes").
		Updates(restaurant).Error
}

// Delete removes the restaurant together with its dishes and everything hanging off them.
func (r *RestaurantRepository) Delete(ctx context.Context, restaurant *models.Restaurant) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dishIDs []uint
		if err := tx.Model(&models.Dish{}).Where("restaurant_id = ?", restaurant.ID).Pluck("id", &dishIDs).Error; err != nil {
			return err
		}
		if err := deleteDishRows(tx, dishIDs); err != nil {
			return err
		}
		return tx.Delete(restaurant).Error
	})
}

// Search returns one page of restaurants matching spec and the count of all matches.
func (r *RestaurantRepository) Search(ctx context.Context, spec query.Spec) ([]models.Restaurant, int64, error) {
	base := applyPhrase(r.DB.WithContext(ctx).Model(&models.Restaurant{}), "restaurants", spec).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var restaurants []models.Restaurant
	if err := applyWindow(base, "restaurants", spec).Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

package repository

import (
	"context"

	"ordereat-api/models"
	"ordereat-api/query"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) Create(ctx context.Context, dish *models.Dish) error {
	return r.DB.WithContext(ctx).Omit("AllowedForDiets.*", "AllowedIngredients.*").Create(dish).Error
}

// GetByID loads a dish with its allowed diets.
func (r *DishRepository) GetByID(ctx context.Context, id uint) (*models.Dish, error) {
	return firstOrNil[models.Dish](r.DB.WithContext(ctx).Preload("AllowedForDiets"), id)
}

// Update saves the scalar columns; RestaurantID and associations are left alone.
func (r *DishRepository) Update(ctx context.Context, dish *models.Dish) error {
	return r.DB.WithContext(ctx).Model(dish).
		Select("*").Omit("id", "restaurant_id", "created_at", "AllowedForDiets", "AllowedIngredients").
		Updates(dish).Error
}

func (r *DishRepository) Delete(ctx context.Context, dish *models.Dish) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteDishRows(tx, []uint{dish.ID})
	})
}

// ReplaceDiets sets the dish's allowed diets to exactly diets.
func (r *DishRepository) ReplaceDiets(ctx context.Context, dish *models.Dish, diets []models.SpecialDiet) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(dish).Association("AllowedForDiets").Clear(); err != nil {
			return err
		}
		if len(diets) == 0 {
			dish.AllowedForDiets = nil
			return nil
		}
		return tx.Model(dish).Association("AllowedForDiets").Append(diets)
	})
}

// AddIngredient creates ingredient and links it to the dish in one transaction.
func (r *DishRepository) AddIngredient(ctx context.Context, dish *models.Dish, ingredient *models.Ingredient) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ingredient).Error; err != nil {
			return err
		}
		return tx.Model(dish).Association("AllowedIngredients").Append(ingredient)
	})
}

func (r *DishRepository) Ingredients(ctx context.Context, dish *models.Dish) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.DB.WithContext(ctx).
		Joins("JOIN dish_allowed_ingredients dai ON dai.ingredient_id = ingredients.id").
		Where("dai.dish_id = ?", dish.ID).
		Order("ingredients.id").
		Find(&ingredients).Error
	return ingredients, err
}

func (r *DishRepository) dishQuery(ctx context.Context, q query.DishQuery) *gorm.DB {
	tx := r.DB.WithContext(ctx).Model(&models.Dish{}).Where("dishes.restaurant_id = ?", q.RestaurantID)
	if q.DietID != nil {
		tx = tx.Where("EXISTS (SELECT 1 FROM dish_allowed_diets dad WHERE dad.dish_id = dishes.id AND dad.special_diet_id = ?)", *q.DietID)
	}
	return applyPhrase(tx, "dishes", q.Spec)
}

// Count returns the number of dishes matching q, ignoring its window.
func (r *DishRepository) Count(ctx context.Context, q query.DishQuery) (int64, error) {
	var total int64
	err := r.dishQuery(ctx, q).Count(&total).Error
	return total, err
}

// Search returns the window of dishes matching q, sorted per q with ID as tie-breaker.
func (r *DishRepository) Search(ctx context.Context, q query.DishQuery) ([]models.Dish, error) {
	var dishes []models.Dish
	err := applyWindow(r.dishQuery(ctx, q), "dishes", q.Spec).
		Preload("AllowedForDiets").
		Find(&dishes).Error
	return dishes, err
}

// deleteDishRows removes dishes together with their join rows and order lines.
func deleteDishRows(tx *gorm.DB, dishIDs []uint) error {
	if len(dishIDs) == 0 {
		return nil
	}
	steps := []struct {
		table  string
		column string
	}{
		{"ordered_dishes", "dish_id"},
		{"dish_allowed_diets", "dish_id"},
		{"dish_allowed_ingredients", "dish_id"},
		{"dishes", "id"},
	}
	for _, step := range steps {
		if err := tx.Exec("DELETE FROM "+step.table+" WHERE "+step.column+" IN (?)", dishIDs).Error; err != nil {
			return err
		}
	}
	return nil
}

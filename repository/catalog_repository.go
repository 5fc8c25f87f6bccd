package repository

import (
	"context"

	"ordereat-api/models"

	"gorm.io/gorm"
)

// CatalogRepository stores simple named catalog entries (allergens, special diets).
type CatalogRepository[T any] struct {
	DB *gorm.DB
}

func NewAllergenRepository(db *gorm.DB) *CatalogRepository[models.Allergen] {
	return &CatalogRepository[models.Allergen]{DB: db}
}

func NewDietRepository(db *gorm.DB) *CatalogRepository[models.SpecialDiet] {
	return &CatalogRepository[models.SpecialDiet]{DB: db}
}

func (r *CatalogRepository[T]) Create(ctx context.Context, item *T) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *CatalogRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	return firstOrNil[T](r.DB.WithContext(ctx), id)
}

// FindByIDs returns the entries among ids that exist, ordered by ID.
func (r *CatalogRepository[T]) FindByIDs(ctx context.Context, ids []uint) ([]T, error) {
	var items []T
	if len(ids) == 0 {
		return items, nil
	}
	err := r.DB.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&items).Error
	return items, err
}

func (r *CatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	err := r.DB.WithContext(ctx).Order("id").Find(&items).Error
	return items, err
}

func (r *CatalogRepository[T]) Update(ctx context.Context, item *T) error {
	return r.DB.WithContext(ctx).Model(item).Select("name", "description").Updates(item).Error
}

func (r *CatalogRepository[T]) Delete(ctx context.Context, item *T) error {
	return r.DB.WithContext(ctx).Delete(item).Error
}

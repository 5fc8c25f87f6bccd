package repository

import (
	"context"

	"ordereat-api/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create inserts the order and its lines atomically.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Customer", "OrderedDishes").Create(order).Error; err != nil {
			return err
		}
		for i := range order.OrderedDishes {
			order.OrderedDishes[i].OrderID = order.ID
			if err := tx.Omit("Dish").Create(&order.OrderedDishes[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID loads an order with its lines in insertion order.
func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	return firstOrNil[models.Order](r.DB.WithContext(ctx).
		Preload("OrderedDishes", func(tx *gorm.DB) *gorm.DB { return tx.Order("ordered_dishes.id") }).
		Preload("OrderedDishes.Dish"), id)
}

// AddDish appends a line for dishID to the order.
func (r *OrderRepository) AddDish(ctx context.Context, order *models.Order, dishID uint) (*models.OrderedDish, error) {
	line := models.OrderedDish{OrderID: order.ID, DishID: dishID}
	if err := r.DB.WithContext(ctx).Omit("Dish").Create(&line).Error; err != nil {
		return nil, err
	}
	order.OrderedDishes = append(order.OrderedDishes, line)
	return &line, nil
}

// Commit persists the order's lifecycle fields.
func (r *OrderRepository) Commit(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Model(order).
		Select("status", "order_date").
		Updates(map[string]any{"status": order.Status, "order_date": order.OrderDate}).Error
}

func (r *OrderRepository) Delete(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderedDish{}).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
}

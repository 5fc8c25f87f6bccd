package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusCreated  OrderStatus = "CREATED"
	StatusOrdered  OrderStatus = "ORDERED"
	StatusRealized OrderStatus = "REALIZED"
)

type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	CustomerID    *uint         `json:"customer_id" gorm:"index"`
	Customer      *User         `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	Status        OrderStatus   `json:"status" gorm:"not null;default:'CREATED'"`
	OrderDate     *time.Time    `json:"order_date"`
	OrderedDishes []OrderedDish `json:"ordered_dishes" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// OrderedDish is one line of an order. Lines keep their insertion order by ID.
type OrderedDish struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	OrderID uint `json:"order_id" gorm:"not null;index"`
	DishID  uint `json:"dish_id" gorm:"not null"`
	Dish    Dish `json:"dish,omitempty" gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
}

// DishIDs returns the dish references of the order in line order.
func (o *Order) DishIDs() []uint {
	ids := make([]uint, 0, len(o.OrderedDishes))
	for _, line := range o.OrderedDishes {
		ids = append(ids, line.DishID)
	}
	return ids
}

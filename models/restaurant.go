package models

import "time"

// ContactDetails is stored inline in the restaurants table.
type ContactDetails struct {
	ContactNumber   string `json:"contact_number"`
	Email           string `json:"email"`
	Country         string `json:"country"`
	City            string `json:"city"`
	Street          string `json:"street"`
	ApartmentNumber string `json:"apartment_number"`
}

type Restaurant struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"not null"`
	Description    string         `json:"description"`
	ContactDetails ContactDetails `json:"contact_details" gorm:"embedded;embeddedPrefix:contact_"`
	// CreatedByID is only consulted by authorization and never changes after insert.
	CreatedByID *uint     `json:"created_by_id" gorm:"index;<-:create"`
	Dishes      []Dish    `json:"dishes,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Dish struct {
	ID                   uint          `json:"id" gorm:"primaryKey"`
	RestaurantID         uint          `json:"restaurant_id" gorm:"not null;index"`
	Name                 string        `json:"name" gorm:"not null"`
	Description          string        `json:"description"`
	BasePrize            float64       `json:"base_prize" gorm:"not null"`
	BaseCaloricValue     int           `json:"base_caloric_value" gorm:"not null"`
	AllowedCustomization bool          `json:"allowed_customization"`
	IsAvilable           bool          `json:"is_avilable"`
	AllowedForDiets      []SpecialDiet `json:"allowed_for_diets,omitempty" gorm:"many2many:dish_allowed_diets;constraint:OnDelete:CASCADE"`
	AllowedIngredients   []Ingredient  `json:"allowed_ingredients,omitempty" gorm:"many2many:dish_allowed_ingredients;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

type Ingredient struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Prize       float64 `json:"prize"`
	IsRequired  bool    `json:"is_required"`
}

package services

import "ordereat-api/models"

// Request payloads shared with the HTTP layer. The binding tags are checked by gin before a
// service is called.

type ContactDetailsInput struct {
	ContactNumber   string `json:"contact_number" binding:"max=20"`
	Email           string `json:"email" binding:"required,email"`
	Country         string `json:"country" binding:"max=60"`
	City            string `json:"city" binding:"max=60"`
	Street          string `json:"street" binding:"max=120"`
	ApartmentNumber string `json:"apartment_number" binding:"max=20"`
}

func (in ContactDetailsInput) model() models.ContactDetails {
	return models.ContactDetails{
		ContactNumber:   in.ContactNumber,
		Email:           in.Email,
		Country:         in.Country,
		City:            in.City,
		Street:          in.Street,
		ApartmentNumber: in.ApartmentNumber,
	}
}

type RestaurantInput struct {
	Name           string              `json:"name" binding:"required,min=3,max=45"`
	Description    string              `json:"description" binding:"max=500"`
	ContactDetails ContactDetailsInput `json:"contact_details"`
}

type DishInput struct {
	Name                 string  `json:"name" binding:"required,min=3,max=45"`
	Description          string  `json:"description" binding:"required,min=3,max=500"`
	BasePrize            float64 `json:"base_prize" binding:"gt=0"`
	BaseCaloricValue     int     `json:"base_caloric_value" binding:"gte=1"`
	AllowedCustomization bool    `json:"allowed_customization"`
	IsAvilable           bool    `json:"is_avilable"`
}

func (in DishInput) apply(dish *models.Dish) {
	dish.Name = in.Name
	dish.Description = in.Description
	dish.BasePrize = in.BasePrize
	dish.BaseCaloricValue = in.BaseCaloricValue
	dish.AllowedCustomization = in.AllowedCustomization
	dish.IsAvilable = in.IsAvilable
}

type IngredientInput struct {
	Name        string  `json:"name" binding:"required,min=3,max=45"`
	Description string  `json:"description" binding:"required,min=3,max=500"`
	Prize       float64 `json:"prize" binding:"gt=0"`
	IsRequired  bool    `json:"is_required"`
}

// CatalogInput describes an allergen or a special diet.
type CatalogInput struct {
	Name        string `json:"name" binding:"required,min=3,max=45"`
	Description string `json:"description" binding:"max=500"`
}

type RegisterInput struct {
	Name     string          `json:"name" binding:"required,max=100"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.RoleName `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

package handlers

import (
	"time"

	"ordereat-api/models"
	"ordereat-api/repository"
	"ordereat-api/services"

	"gorm.io/gorm"
)

// Handler exposes the services over HTTP.
type Handler struct {
	Accounts    *services.AccountService
	Restaurants *services.RestaurantService
	Dishes      *services.DishService
	Orders      *services.OrderService
	Allergens   *services.CatalogService[models.Allergen]
	Diets       *services.CatalogService[models.SpecialDiet]
	JWTSecret   []byte
	JWTTTL      time.Duration
}

// New wires the gorm repositories into the services.
func New(db *gorm.DB, publisher services.OrderEventPublisher, jwtSecret []byte, jwtTTL time.Duration) *Handler {
	restaurants := repository.NewRestaurantRepository(db)
	dishes := repository.NewDishRepository(db)
	users := repository.NewUserRepository(db)
	orders := repository.NewOrderRepository(db)
	diets := repository.NewDietRepository(db)

	return &Handler{
		Accounts:    services.NewAccountService(users, diets),
		Restaurants: services.NewRestaurantService(restaurants),
		Dishes:      services.NewDishService(dishes, restaurants, users, diets),
		Orders:      services.NewOrderService(orders, dishes, publisher),
		Allergens:   services.NewAllergenService(repository.NewAllergenRepository(db)),
		Diets:       services.NewDietService(diets),
		JWTSecret:   jwtSecret,
		JWTTTL:      jwtTTL,
	}
}

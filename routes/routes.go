package routes

import (
	"ordereat-api/handlers"
	"ordereat-api/middleware"
	"ordereat-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/health", h.Health)

	auth := middleware.AuthRequired(h.JWTSecret)
	ownerOrAdmin := middleware.RoleRequired(models.RoleOwner, models.RoleAdmin)
	adminOnly := middleware.RoleRequired(models.RoleAdmin)
	allergens := h.AllergenRoutes()
	diets := h.DietRoutes()

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/account/register", h.Register)
		public.POST("/account/login", h.Login)

		public.GET("/restaurant", h.ListRestaurants)
		public.GET("/restaurant/:id", h.GetRestaurant)
		public.GET("/restaurant/:id/dish", h.SearchDishes)
		public.GET("/dish/:id", h.GetDish)

		public.GET("/allergen", allergens.List)
		public.GET("/allergen/:id", allergens.Get)
		public.GET("/diet", diets.List)
		public.GET("/diet/:id", diets.Get)

		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(auth)
	{
		authed.GET("/account/me", h.GetProfile)
		authed.PUT("/account/diet", h.SetDiet)

		authed.GET("/restaurant/:id/dishSmart", h.SmartSearchDishes)

		authed.POST("/order", h.CreateOrder)
		authed.GET("/order/:id", h.GetOrder)
		authed.POST("/order/:id/dish", h.AddOrderDish)
		authed.PUT("/order/:id/realize", h.RealizeOrder)
		authed.DELETE("/order/:id", h.DeleteOrder)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	owner := r.Group("/api")
	owner.Use(auth, ownerOrAdmin)
	{
		owner.POST("/restaurant", h.CreateRestaurant)
		owner.PUT("/restaurant/:id", h.UpdateRestaurant)
		owner.DELETE("/restaurant/:id", h.DeleteRestaurant)

		owner.POST("/restaurant/:id/dish", h.CreateDish)
		owner.PUT("/dish/:id", h.UpdateDish)
		owner.DELETE("/dish/:id", h.DeleteDish)
		owner.PUT("/dish/:id/diets", h.ReplaceDishDiets)
		owner.POST("/dish/:id/ingredient", h.AddIngredient)
		owner.GET("/dish/:id/ingredient", h.ListIngredients)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(auth, adminOnly)
	{
		admin.POST("/allergen", allergens.Create)
		admin.PUT("/allergen/:id", allergens.Update)
		admin.DELETE("/allergen/:id", allergens.Delete)

		admin.POST("/diet", diets.Create)
		admin.PUT("/diet/:id", diets.Update)
		admin.DELETE("/diet/:id", diets.Delete)
	}
}

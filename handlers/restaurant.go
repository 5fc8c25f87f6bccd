package handlers

import (
	"fmt"
	"net/http"

	"ordereat-api/middleware"
	"ordereat-api/services"

	"github.com/gin-gonic/gin"
)

// CreateRestaurant creates a restaurant owned by the caller (owner/admin)
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req services.RestaurantInput
	if !bindJSON(c, &req) {
		return
	}
	restaurant, err := h.Restaurants.Create(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/restaurant/%d", restaurant.ID))
	c.JSON(http.StatusCreated, restaurant)
}

// UpdateRestaurant updates name, description and contact details
func (h *Handler) UpdateRestaurant(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req services.RestaurantInput
	if !bindJSON(c, &req) {
		return
	}
	restaurant, err := h.Restaurants.Update(c.Request.Context(), middleware.GetPrincipal(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// DeleteRestaurant removes a restaurant with its dishes
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Restaurants.Delete(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

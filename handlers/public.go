package handlers

import (
	"net/http"

	"ordereat-api/models"
	"ordereat-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListRestaurants pages through restaurants (public)
func (h *Handler) ListRestaurants(c *gin.Context) {
	req, ok := bindPage(c)
	if !ok {
		return
	}
	result, err := h.Restaurants.Search(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetRestaurant returns a single restaurant
func (h *Handler) GetRestaurant(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	restaurant, err := h.Restaurants.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GetStateMachineInfo describes the order lifecycle
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"states":          []models.OrderStatus{models.StatusCreated, models.StatusOrdered, models.StatusRealized},
		"terminal_states": []models.OrderStatus{models.StatusRealized},
		"description":     "Order lifecycle: dishes are added while CREATED, realize places the order",
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "OrderEat API",
	})
}

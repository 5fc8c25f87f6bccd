package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"ordereat-api/middleware"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	DishIDs []uint `json:"dish_ids"`
}

type AddOrderDishRequest struct {
	DishID uint `json:"dish_id" binding:"required"`
}

// CreateOrder opens an order for the caller. The body is optional.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, bindingError(err))
		return
	}
	order, err := h.Orders.Create(c.Request.Context(), middleware.GetPrincipal(c), req.DishIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/order/%d", order.ID))
	c.JSON(http.StatusCreated, order)
}

// GetOrder returns an order with its dishes
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	order, err := h.Orders.Get(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// AddOrderDish appends a dish while the order is still CREATED
func (h *Handler) AddOrderDish(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req AddOrderDishRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.Orders.AddDish(c.Request.Context(), middleware.GetPrincipal(c), id, req.DishID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// RealizeOrder places the order (CREATED → ORDERED)
func (h *Handler) RealizeOrder(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	order, err := h.Orders.Realize(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order realized",
		"order":   order,
	})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Orders.Delete(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"fmt"
	"net/http"

	"ordereat-api/middleware"
	"ordereat-api/services"

	"github.com/gin-gonic/gin"
)

type ReplaceDietsRequest struct {
	DietIDs []uint `json:"diet_ids"`
}

// GetDish returns a single dish with its allowed diets
func (h *Handler) GetDish(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	dish, err := h.Dishes.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// SearchDishes pages through a restaurant's dishes (public)
func (h *Handler) SearchDishes(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	req, ok := bindPage(c)
	if !ok {
		return
	}
	result, err := h.Dishes.Search(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SmartSearchDishes is SearchDishes limited to the caller's diet
func (h *Handler) SmartSearchDishes(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	req, ok := bindPage(c)
	if !ok {
		return
	}
	result, err := h.Dishes.SmartSearch(c.Request.Context(), middleware.GetPrincipal(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateDish adds a dish to a restaurant the caller owns
func (h *Handler) CreateDish(c *gin.Context) {
	restaurantID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req services.DishInput
	if !bindJSON(c, &req) {
		return
	}
	dish, err := h.Dishes.Create(c.Request.Context(), middleware.GetPrincipal(c), restaurantID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/dish/%d", dish.ID))
	c.JSON(http.StatusCreated, dish)
}

func (h *Handler) UpdateDish(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req services.DishInput
	if !bindJSON(c, &req) {
		return
	}
	dish, err := h.Dishes.Update(c.Request.Context(), middleware.GetPrincipal(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *Handler) DeleteDish(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Dishes.Delete(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceDishDiets sets the special diets a dish is suitable for
func (h *Handler) ReplaceDishDiets(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req ReplaceDietsRequest
	if !bindJSON(c, &req) {
		return
	}
	dish, err := h.Dishes.ReplaceDiets(c.Request.Context(), middleware.GetPrincipal(c), id, req.DietIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *Handler) AddIngredient(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req services.IngredientInput
	if !bindJSON(c, &req) {
		return
	}
	ingredient, err := h.Dishes.AddIngredient(c.Request.Context(), middleware.GetPrincipal(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

func (h *Handler) ListIngredients(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	ingredients, err := h.Dishes.Ingredients(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(ingredients), "ingredients": ingredients})
}

package handlers

import (
	"context"
	"net/http"

	"ordereat-api/authz"
	"ordereat-api/middleware"
	"ordereat-api/models"
	"ordereat-api/services"

	"github.com/gin-gonic/gin"
)

// catalog is the part of services.CatalogService the handlers use.
type catalog[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, p authz.Principal, in services.CatalogInput) (*T, error)
	Update(ctx context.Context, p authz.Principal, id uint, in services.CatalogInput) (*T, error)
	Delete(ctx context.Context, p authz.Principal, id uint) error
}

// catalogHandlers serves list/get (public) and create/update/delete (admin) for one catalog.
type catalogHandlers[T any] struct {
	svc catalog[T]
}

func (h catalogHandlers[T]) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h catalogHandlers[T]) get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h catalogHandlers[T]) create(c *gin.Context) {
	var req services.CatalogInput
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Create(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h catalogHandlers[T]) update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req services.CatalogInput
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Update(c.Request.Context(), middleware.GetPrincipal(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h catalogHandlers[T]) remove(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CatalogRoutes is a set of handlers for one catalog.
type CatalogRoutes struct {
	List, Get, Create, Update, Delete gin.HandlerFunc
}

func catalogRoutes[T any](svc catalog[T]) CatalogRoutes {
	h := catalogHandlers[T]{svc: svc}
	return CatalogRoutes{List: h.list, Get: h.get, Create: h.create, Update: h.update, Delete: h.remove}
}

// AllergenRoutes serves /api/allergen
func (h *Handler) AllergenRoutes() CatalogRoutes {
	return catalogRoutes[models.Allergen](h.Allergens)
}

// DietRoutes serves /api/diet
func (h *Handler) DietRoutes() CatalogRoutes {
	return catalogRoutes[models.SpecialDiet](h.Diets)
}

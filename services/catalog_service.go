package services

import (
	"context"

	"ordereat-api/apperr"
	"ordereat-api/authz"
	"ordereat-api/models"
)

// CatalogService manages a reference catalog (allergens or special diets). Only Admins may
// change it.
type CatalogService[T any] struct {
	Repo   CatalogRepository[T]
	label  string
	assign func(item *T, in CatalogInput)
}

func NewAllergenService(repo CatalogRepository[models.Allergen]) *CatalogService[models.Allergen] {
	return &CatalogService[models.Allergen]{
		Repo:  repo,
		label: "Allergen",
		assign: func(a *models.Allergen, in CatalogInput) {
			a.Name = in.Name
			a.Description = in.Description
		},
	}
}

func NewDietService(repo CatalogRepository[models.SpecialDiet]) *CatalogService[models.SpecialDiet] {
	return &CatalogService[models.SpecialDiet]{
		Repo:  repo,
		label: "Special diet",
		assign: func(d *models.SpecialDiet, in CatalogInput) {
			d.Name = in.Name
			d.Description = in.Description
		},
	}
}

func (s *CatalogService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *CatalogService[T]) Get(ctx context.Context, id uint) (*T, error) {
	item, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("%s not found", s.label)
	}
	return item, nil
}

func (s *CatalogService[T]) Create(ctx context.Context, p authz.Principal, in CatalogInput) (*T, error) {
	if !p.IsAdmin() {
		return nil, apperr.Forbidden()
	}
	item := new(T)
	s.assign(item, in)
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService[T]) Update(ctx context.Context, p authz.Principal, id uint, in CatalogInput) (*T, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() {
		return nil, apperr.Forbidden()
	}
	s.assign(item, in)
	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService[T]) Delete(ctx context.Context, p authz.Principal, id uint) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !p.IsAdmin() {
		return apperr.Forbidden()
	}
	return s.Repo.Delete(ctx, item)
}

package repository

import (
	"context"

	"ordereat-api/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Omit("Role", "Diet").Create(user).Error
}

// GetByID loads a user with role and diet.
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return firstOrNil[models.User](r.DB.WithContext(ctx).Preload("Role").Preload("Diet"), id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return firstOrNil[models.User](r.DB.WithContext(ctx).Preload("Role"), "email = ?", email)
}

func (r *UserRepository) RoleByName(ctx context.Context, name models.RoleName) (*models.Role, error) {
	return firstOrNil[models.Role](r.DB.WithContext(ctx), "name = ?", name)
}

// SetDiet assigns dietID to the user; nil clears it.
func (r *UserRepository) SetDiet(ctx context.Context, user *models.User, dietID *uint) error {
	if err := r.DB.WithContext(ctx).Model(user).Update("diet_id", dietID).Error; err != nil {
		return err
	}
	user.DietID = dietID
	return nil
}

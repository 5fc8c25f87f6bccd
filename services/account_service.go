package services

import (
	"context"
	"strings"

	"ordereat-api/apperr"
	"ordereat-api/authz"
	"ordereat-api/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	Users UserRepository
	Diets CatalogRepository[models.SpecialDiet]
}

func NewAccountService(users UserRepository, diets CatalogRepository[models.SpecialDiet]) *AccountService {
	return &AccountService{Users: users, Diets: diets}
}

// Register creates a User or Owner account. Admins are only seeded, never registered.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	roleName := in.Role
	if roleName == "" {
		roleName = models.RoleUser
	}
	if roleName != models.RoleUser && roleName != models.RoleOwner {
		return nil, apperr.BadRequest("Invalid role. Must be: %s or %s", models.RoleUser, models.RoleOwner)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.BadRequest("Email already registered")
	}
	role, err := s.Users.RoleByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperr.BadRequest("Role %s is not available", roleName)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		Role:         *role,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": role.Name}).Info("account registered")
	return user, nil
}

// Login checks the credentials and returns the user with its role loaded.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	user, err := s.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.BadRequest("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperr.BadRequest("Invalid email or password")
	}
	return user, nil
}

func (s *AccountService) Me(ctx context.Context, p authz.Principal) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.BadRequest("Invalid user token")
	}
	return user, nil
}

// SetDiet assigns the caller's special diet; nil clears it.
func (s *AccountService) SetDiet(ctx context.Context, p authz.Principal, dietID *uint) (*models.User, error) {
	user, err := s.Me(ctx, p)
	if err != nil {
		return nil, err
	}
	user.Diet = nil
	if dietID != nil {
		diet, err := s.Diets.GetByID(ctx, *dietID)
		if err != nil {
			return nil, err
		}
		if diet == nil {
			return nil, apperr.NotFound("Special diet not found")
		}
		user.Diet = diet
	}
	if err := s.Users.SetDiet(ctx, user, dietID); err != nil {
		return nil, err
	}
	return user, nil
}

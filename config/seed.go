package config

import (
	"fmt"

	"ordereat-api/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedRoles inserts the role catalog when the roles table is empty.
func SeedRoles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Role{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if count > 0 {
		return nil
	}

	roles := make([]models.Role, 0, len(models.AllRoles))
	for _, name := range models.AllRoles {
		roles = append(roles, models.Role{Name: name})
	}
	if err := db.Create(&roles).Error; err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	logrus.WithField("roles", len(roles)).Info("role catalog seeded")
	return nil
}

// SeedAdmin creates the first Admin account when ADMIN_EMAIL and ADMIN_PASSWORD are set.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		logrus.Debug("skip seeding admin: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("look up admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	var role models.Role
	if err := db.Where("name = ?", models.RoleAdmin).First(&role).Error; err != nil {
		return fmt.Errorf("admin role missing: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	logrus.WithField("email", email).Info("admin account seeded")
	return nil
}

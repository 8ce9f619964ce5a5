package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/taskhub/todo-api/internal/auth"
	"github.com/taskhub/todo-api/internal/config"
	"github.com/taskhub/todo-api/internal/models"
	"gorm.io/gorm"
)

// SeedAdmin creates the default administrative account when no active user
// with the configured admin email exists. There is no API for role
// escalation, so seeding at startup is the only provisioning path.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		log.Printf("Default admin already exists: %s", cfg.AdminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := "Admin"
	admin := &models.User{
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Name:         &name,
		Role:         models.RoleAdmin,
	}

	if err := db.Create(admin).Error; err != nil {
		// Another instance may have seeded concurrently.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Println("Default admin creation skipped, already exists")
			return nil
		}
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	log.Printf("Default admin created: %s", cfg.AdminEmail)
	return nil
}

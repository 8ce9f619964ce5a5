package database

import (
	"fmt"
	"log"

	"github.com/taskhub/todo-api/internal/config"
	"github.com/taskhub/todo-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a database connection for the configured driver. Constraint
// violations are translated so callers can match gorm.ErrDuplicatedKey
// regardless of the driver.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	}

	var db *gorm.DB
	var err error

	switch cfg.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName,
		)
		db, err = gorm.Open(mysql.Open(dsn), gormCfg)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
		)
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")
	err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Email uniqueness only applies to active rows: a soft-deleted email may
	// be registered again. Postgres and sqlite express this as a partial
	// unique index; mysql cannot, so there the full index also blocks reuse
	// of deleted emails.
	if db.Dialector.Name() == "mysql" {
		if !db.Migrator().HasIndex(&models.User{}, "idx_users_active_email") {
			if err := db.Exec(`CREATE UNIQUE INDEX idx_users_active_email ON users (email)`).Error; err != nil {
				return fmt.Errorf("failed to create email index: %w", err)
			}
		}
	} else {
		err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_active_email ON users (email) WHERE deleted_at IS NULL`).Error
		if err != nil {
			return fmt.Errorf("failed to create email index: %w", err)
		}
	}

	log.Println("Database migrations completed")
	return nil
}

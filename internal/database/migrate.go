package database

import (
	"signlearn_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs the schema migrations for all entities.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 needs the extension present.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.RefreshToken{},
		&models.Lesson{},
		&models.Media{},
		&models.Feedback{},
		&models.Subscription{},
	)
}

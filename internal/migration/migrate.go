package migration

import (
	"github.com/humanity/backend/internal/domain"
	"gorm.io/gorm"
)

// Run creates or updates the schema for all application tables.
// AutoMigrate is additive; it never drops columns or indexes.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Question{},
		&domain.Answer{},
		&domain.AuthorProfile{},
		&domain.Job{},
		&domain.Like{},
	)
}

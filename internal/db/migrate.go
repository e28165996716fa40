package db

import (
	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"github.com/ikkim/udonggeum-storefront/pkg/logger"
	"gorm.io/gorm"
)

// Migrate creates the cart slot table.
func Migrate() error {
	return migrate(DB)
}

func migrate(conn *gorm.DB) error {
	logger.Info("Running database migrations...")

	if err := conn.AutoMigrate(&model.CartSlot{}); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", nil)
	return nil
}

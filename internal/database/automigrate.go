package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"media-catalog-api/internal/domain"
)

// Models lists every domain model in dependency order
func Models() []interface{} {
	return []interface{}{
		&domain.Category{},
		&domain.Tag{},
		&domain.User{},
		&domain.Artwork{},
		&domain.Comment{},
		&domain.Review{},
	}
}

// AutoMigrate creates or updates tables, indexes and foreign keys for all models.
// The artwork_tag join table is created through the Artwork.Tags relation.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates model by model and logs which tables were created
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	models := Models()

	logger.Info("Starting auto-migration", zap.Int("total_models", len(models)))

	for _, m := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return fmt.Errorf("failed to parse model %T: %w", m, err)
		}
		table := stmt.Schema.Table

		if migrator.HasTable(m) {
			logger.Debug("Table exists, updating schema", zap.String("table", table))
		} else {
			logger.Info("Creating table", zap.String("table", table))
		}

		if err := db.AutoMigrate(m); err != nil {
			logger.Error("Failed to migrate table", zap.String("table", table), zap.Error(err))
			return fmt.Errorf("failed to migrate %s: %w", table, err)
		}
	}

	logger.Info("Auto-migration completed")
	return nil
}

package postgres

import (
	"context"

	"parceltracker/internal/adapters/out/postgres/directoryrepo"
	"parceltracker/internal/adapters/out/postgres/historyrepo"
	"parceltracker/internal/adapters/out/postgres/parcelrepo"

	"gorm.io/gorm"
)

// Models lists every persisted model in dependency order.
func Models() []any {
	models := directoryrepo.Models()
	return append(models,
		&parcelrepo.ParcelDTO{},
		&parcelrepo.LineItemDTO{},
		&historyrepo.HistoryEntryDTO{},
	)
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}

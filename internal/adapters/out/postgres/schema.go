package postgres

import (
	"packing/internal/adapters/out/postgres/orderrepo"
	"packing/internal/adapters/out/postgres/sessionrepo"
	"packing/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&sessionrepo.SessionDTO{},
		&sessionrepo.CartonDTO{},
		&sessionrepo.LedgerEntryDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentSessionDTO{},
		&shipmentrepo.ShipmentCartonDTO{},
	}
}

// AutoMigrate creates the schema from the DTO tags. Production databases are
// migrated with the SQL files under migrations; this is for embedded test
// databases.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

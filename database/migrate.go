// database/migrate.go
package database

import (
	"inventory-app/models"
	"inventory-app/wms/master/itemtype"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Region{},
		&models.Warehouse{},
		&itemtype.ItemType{},
		&models.InventoryEntry{},
		&models.LegacyStock{},
		&models.Transfer{},
		&models.WithdrawnDevice{},
		&models.TransactionHistory{},
	)
}

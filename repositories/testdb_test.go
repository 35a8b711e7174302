package repositories

import (
	"testing"

	"inventory-app/database"
	"inventory-app/models"
	"inventory-app/wms/master/itemtype"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema, the item
// type seed set, warehouses W1/W2 and technician T1.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: connection would open a second, empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	itemtype.SeedItemTypes(db)

	region := models.Region{Code: "CENTRAL", NameAr: "المنطقة الوسطى", NameEn: "Central Region"}
	require.NoError(t, db.Create(&region).Error)

	for _, code := range []string{"W1", "W2"} {
		warehouse := models.Warehouse{
			Code:     code,
			NameAr:   "مستودع " + code,
			NameEn:   "Warehouse " + code,
			RegionID: region.ID,
			IsActive: true,
		}
		require.NoError(t, db.Create(&warehouse).Error)
	}

	technician := models.User{
		Username: "T1",
		Password: "irrelevant",
		Name:     "Technician One",
		Email:    "t1@localhost",
		Role:     models.RoleTechnician,
		IsActive: true,
	}
	require.NoError(t, db.Create(&technician).Error)

	return db
}

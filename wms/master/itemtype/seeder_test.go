package itemtype

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSeedItemTypesIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&ItemType{}))

	SeedItemTypes(db)
	var count int64
	db.Model(&ItemType{}).Count(&count)
	assert.EqualValues(t, 8, count)

	// Running the seeder again neither duplicates nor clobbers edits.
	require.NoError(t, db.Model(&ItemType{}).Where("id = ?", "n950").
		Update("units_per_box", 12).Error)
	SeedItemTypes(db)

	db.Model(&ItemType{}).Count(&count)
	assert.EqualValues(t, 8, count)

	var n950 ItemType
	require.NoError(t, db.Where("id = ?", "n950").First(&n950).Error)
	assert.Equal(t, 12, n950.UnitsPerBox)
	assert.Equal(t, "جهاز N950", n950.NameAr)
}

package repositories

import (
	"testing"

	"inventory-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEffectiveStockEntryWins(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	// Legacy row says 9/9, the entry says 1/2. The entry must win even
	// though the legacy values differ.
	require.NoError(t, db.Create(&models.LegacyStock{
		OwnerCode: "W1",
		N950Boxes: 9,
		N950Units: 9,
	}).Error)
	require.NoError(t, db.Create(&models.InventoryEntry{
		OwnerCode:  "W1",
		ItemTypeID: "n950",
		Boxes:      1,
		Units:      2,
	}).Error)

	stock, err := repo.GetEffectiveStock("W1", "n950")
	require.NoError(t, err)
	assert.Equal(t, 1, stock.Boxes)
	assert.Equal(t, 2, stock.Units)
}

func TestGetEffectiveStockLegacyFallback(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	require.NoError(t, db.Create(&models.LegacyStock{
		OwnerCode: "W2",
		N950Boxes: 4,
		N950Units: 0,
	}).Error)

	stock, err := repo.GetEffectiveStock("W2", "n950")
	require.NoError(t, err)
	assert.Equal(t, 4, stock.Boxes)
	assert.Equal(t, 0, stock.Units)
}

func TestGetEffectiveStockDefaultsToZero(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	// No entry, no legacy row.
	stock, err := repo.GetEffectiveStock("W1", "n950")
	require.NoError(t, err)
	assert.Zero(t, stock.Boxes)
	assert.Zero(t, stock.Units)

	// Item type without legacy columns, legacy row present.
	require.NoError(t, db.Create(&models.LegacyStock{OwnerCode: "W1", N950Boxes: 7}).Error)
	stock, err = repo.GetEffectiveStock("W1", "n910")
	require.NoError(t, err)
	assert.Zero(t, stock.Boxes)
	assert.Zero(t, stock.Units)

	// Unknown owners read as zero instead of failing.
	stock, err = repo.GetEffectiveStock("nobody", "n950")
	require.NoError(t, err)
	assert.Zero(t, stock.Boxes)
	assert.Zero(t, stock.Units)
}

func TestSetEffectiveStockReadYourWrites(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	require.NoError(t, repo.SetEffectiveStock("W1", "n950", 5, 12, 1))

	stock, err := repo.GetEffectiveStock("W1", "n950")
	require.NoError(t, err)
	assert.Equal(t, 5, stock.Boxes)
	assert.Equal(t, 12, stock.Units)

	// Overwrite in place, no duplicate entry.
	require.NoError(t, repo.SetEffectiveStock("W1", "n950", 3, 8, 1))

	stock, err = repo.GetEffectiveStock("W1", "n950")
	require.NoError(t, err)
	assert.Equal(t, 3, stock.Boxes)
	assert.Equal(t, 8, stock.Units)

	var count int64
	db.Model(&models.InventoryEntry{}).
		Where("owner_code = ? AND item_type_id = ?", "W1", "n950").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSetEffectiveStockRejectsNegative(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	err := repo.SetEffectiveStock("W1", "n950", -1, 0, 1)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	err = repo.SetEffectiveStock("W1", "n950", 0, -5, 1)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	var count int64
	db.Model(&models.InventoryEntry{}).Count(&count)
	assert.Zero(t, count)
}

func TestSetEffectiveStockRejectsUnknownRefs(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	assert.ErrorIs(t, repo.SetEffectiveStock("nobody", "n950", 1, 1, 1), models.ErrUnknownOwner)
	assert.ErrorIs(t, repo.SetEffectiveStock("W1", "hologram", 1, 1, 1), models.ErrUnknownItemType)
}

func TestSetEffectiveStockMirrorsLegacyColumns(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	require.NoError(t, repo.SetEffectiveStock("W1", "n950", 5, 12, 1))

	var record models.LegacyStock
	require.NoError(t, db.Where("owner_code = ?", "W1").First(&record).Error)
	assert.Equal(t, 5, record.N950Boxes)
	assert.Equal(t, 12, record.N950Units)
	assert.Zero(t, record.I9000sBoxes)
}

func TestSetEffectiveStockNoMirrorForNewItemTypes(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	// n910 postdates the legacy schema: no legacy row should appear.
	require.NoError(t, repo.SetEffectiveStock("W1", "n910", 2, 3, 1))

	var count int64
	db.Model(&models.LegacyStock{}).Where("owner_code = ?", "W1").Count(&count)
	assert.Zero(t, count)

	stock, err := repo.GetEffectiveStock("W1", "n910")
	require.NoError(t, err)
	assert.Equal(t, 2, stock.Boxes)
	assert.Equal(t, 3, stock.Units)
}

func TestListEffectiveStockMergesSources(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	require.NoError(t, db.Create(&models.LegacyStock{
		OwnerCode:    "W1",
		N950Boxes:    4,
		StickerBoxes: 2,
	}).Error)
	require.NoError(t, repo.SetEffectiveStock("W1", "n910", 1, 1, 1))

	stock, err := repo.ListEffectiveStock("W1")
	require.NoError(t, err)

	byID := map[string]OwnerStock{}
	for _, row := range stock {
		byID[row.ItemTypeID] = row
	}

	assert.Equal(t, 4, byID["n950"].Boxes)    // legacy fallback
	assert.Equal(t, 2, byID["sticker"].Boxes) // legacy fallback
	assert.Equal(t, 1, byID["n910"].Boxes)    // entry only
	assert.Zero(t, byID["battery"].Boxes)
}

func TestOwnerExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	assert.True(t, repo.OwnerExists("W1"))
	assert.True(t, repo.OwnerExists("T1"))
	assert.False(t, repo.OwnerExists("W9"))
}

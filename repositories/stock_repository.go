package repositories

import (
	"errors"
	"fmt"

	"inventory-app/models"
	"inventory-app/utils"
	"inventory-app/wms/master/itemtype"

	"gorm.io/gorm"
)

type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db}
}

// EffectiveStock is the reconciled quantity for an (owner, item type) pair
// after merging the dynamic entry and the legacy columns. Derived, never
// persisted as such.
type EffectiveStock struct {
	Boxes int `json:"boxes"`
	Units int `json:"units"`
}

// GetEffectiveStock resolves stock for an (owner, item type) pair.
// The dynamic entry wins absolutely once it exists, even when the legacy
// columns hold different values; the legacy columns are consulted only when
// no entry was ever written. A pair with neither reads as zero — absence is
// a valid "never initialized" state, not an error.
func (r *StockRepository) GetEffectiveStock(ownerCode, itemTypeID string) (EffectiveStock, error) {
	return getEffectiveStock(r.db, ownerCode, itemTypeID)
}

func getEffectiveStock(db *gorm.DB, ownerCode, itemTypeID string) (EffectiveStock, error) {
	var entry models.InventoryEntry
	err := db.Where("owner_code = ? AND item_type_id = ?", ownerCode, itemTypeID).First(&entry).Error
	if err == nil {
		return EffectiveStock{Boxes: entry.Boxes, Units: entry.Units}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return EffectiveStock{}, err
	}

	fields, ok := LegacyFieldsFor(itemTypeID)
	if !ok {
		return EffectiveStock{}, nil
	}

	// Column names come from the compile-time mapping table, never from input.
	var stock EffectiveStock
	sqlLegacy := fmt.Sprintf(
		`SELECT %s AS boxes, %s AS units FROM legacy_stocks WHERE owner_code = ? AND deleted_at IS NULL`,
		fields.BoxesColumn, fields.UnitsColumn,
	)
	if err := db.Raw(sqlLegacy, ownerCode).Scan(&stock).Error; err != nil {
		return EffectiveStock{}, err
	}
	return stock, nil
}

// SetEffectiveStock writes the entry for the pair and mirrors the values into
// the legacy columns when the item type still has them. The mirror is a
// compatibility bridge for reports that read legacy_stocks directly; entry
// and mirror commit together or not at all.
func (r *StockRepository) SetEffectiveStock(ownerCode, itemTypeID string, boxes, units int, userID int) error {
	if boxes < 0 || units < 0 {
		return models.ErrInvalidQuantity
	}
	if !r.OwnerExists(ownerCode) {
		return models.ErrUnknownOwner
	}
	if !r.ItemTypeExists(itemTypeID) {
		return models.ErrUnknownItemType
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	before, err := getEffectiveStock(tx, ownerCode, itemTypeID)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := upsertEntry(tx, ownerCode, itemTypeID, boxes, units, userID); err != nil {
		tx.Rollback()
		return err
	}

	if err := mirrorLegacy(tx, ownerCode, itemTypeID, boxes, units); err != nil {
		tx.Rollback()
		return err
	}

	utils.InsertHistory(tx, models.TransactionHistory{
		OwnerCode:   ownerCode,
		ItemTypeID:  itemTypeID,
		Action:      "set",
		BoxesBefore: before.Boxes,
		BoxesAfter:  boxes,
		UnitsBefore: before.Units,
		UnitsAfter:  units,
		CreatedBy:   userID,
	})

	return tx.Commit().Error
}

// ListEffectiveStock returns reconciled stock for every active item type,
// in dashboard order.
func (r *StockRepository) ListEffectiveStock(ownerCode string) ([]OwnerStock, error) {
	var itemTypes []itemtype.ItemType
	if err := r.db.Where("is_active = ?", true).Order("sort_order asc, id asc").Find(&itemTypes).Error; err != nil {
		return nil, err
	}

	result := make([]OwnerStock, 0, len(itemTypes))
	for _, it := range itemTypes {
		stock, err := r.GetEffectiveStock(ownerCode, it.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, OwnerStock{
			ItemTypeID: it.ID,
			NameAr:     it.NameAr,
			NameEn:     it.NameEn,
			Category:   it.Category,
			IsVisible:  it.IsVisible,
			Boxes:      stock.Boxes,
			Units:      stock.Units,
		})
	}
	return result, nil
}

type OwnerStock struct {
	ItemTypeID string `json:"item_type_id"`
	NameAr     string `json:"name_ar"`
	NameEn     string `json:"name_en"`
	Category   string `json:"category"`
	IsVisible  bool   `json:"is_visible"`
	Boxes      int    `json:"boxes"`
	Units      int    `json:"units"`
}

// OwnerExists reports whether the code names a warehouse or a technician.
func (r *StockRepository) OwnerExists(ownerCode string) bool {
	var count int64
	r.db.Model(&models.Warehouse{}).Where("code = ?", ownerCode).Count(&count)
	if count > 0 {
		return true
	}
	r.db.Model(&models.User{}).Where("username = ?", ownerCode).Count(&count)
	return count > 0
}

func (r *StockRepository) ItemTypeExists(itemTypeID string) bool {
	var count int64
	r.db.Model(&itemtype.ItemType{}).Where("id = ?", itemTypeID).Count(&count)
	return count > 0
}

func upsertEntry(tx *gorm.DB, ownerCode, itemTypeID string, boxes, units, userID int) error {
	var entry models.InventoryEntry
	err := tx.Where("owner_code = ? AND item_type_id = ?", ownerCode, itemTypeID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = models.InventoryEntry{
			OwnerCode:  ownerCode,
			ItemTypeID: itemTypeID,
			Boxes:      boxes,
			Units:      units,
			CreatedBy:  userID,
		}
		return tx.Create(&entry).Error
	}
	if err != nil {
		return err
	}

	entry.Boxes = boxes
	entry.Units = units
	entry.UpdatedBy = userID
	return tx.Save(&entry).Error
}

// mirrorLegacy copies entry values into the legacy columns. A no-op for item
// types that postdate the legacy schema. Creates the legacy row on first
// mirror so old reports see the owner at all.
func mirrorLegacy(tx *gorm.DB, ownerCode, itemTypeID string, boxes, units int) error {
	fields, ok := LegacyFieldsFor(itemTypeID)
	if !ok {
		return nil
	}

	var record models.LegacyStock
	err := tx.Where("owner_code = ?", ownerCode).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.LegacyStock{OwnerCode: ownerCode}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return tx.Model(&models.LegacyStock{}).
		Where("owner_code = ?", ownerCode).
		Updates(map[string]interface{}{
			fields.BoxesColumn: boxes,
			fields.UnitsColumn: units,
		}).Error
}

// materializeEntry makes sure the pair has an entry row carrying its current
// effective stock, so callers can run conditional updates against it. Must
// run inside the caller's transaction.
func materializeEntry(tx *gorm.DB, ownerCode, itemTypeID string, userID int) (EffectiveStock, error) {
	stock, err := getEffectiveStock(tx, ownerCode, itemTypeID)
	if err != nil {
		return EffectiveStock{}, err
	}

	var entry models.InventoryEntry
	err = tx.Where("owner_code = ? AND item_type_id = ?", ownerCode, itemTypeID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = models.InventoryEntry{
			OwnerCode:  ownerCode,
			ItemTypeID: itemTypeID,
			Boxes:      stock.Boxes,
			Units:      stock.Units,
			CreatedBy:  userID,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return EffectiveStock{}, err
		}
		return stock, nil
	}
	if err != nil {
		return EffectiveStock{}, err
	}
	return stock, nil
}

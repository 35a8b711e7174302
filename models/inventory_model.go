package models

import "gorm.io/gorm"

// InventoryEntry is the dynamic per-item-type stock row. One row per
// (owner_code, item_type_id) pair, created lazily on first write.
type InventoryEntry struct {
	gorm.Model
	OwnerCode  string `json:"owner_code" gorm:"uniqueIndex:idx_owner_item;not null"`
	ItemTypeID string `json:"item_type_id" gorm:"uniqueIndex:idx_owner_item;not null"`
	Boxes      int    `json:"boxes" gorm:"default:0"`
	Units      int    `json:"units" gorm:"default:0"`
	CreatedBy  int
	UpdatedBy  int
}

// LegacyStock is the flat stock row from before the item-type entity model:
// one row per owner, one column pair per item type known at the time the
// schema was frozen. Item types added after the migration have no columns
// here and live purely in InventoryEntry. Kept for reports that still read
// these columns directly; once an InventoryEntry exists for a pair, the
// matching columns here are dead data.
type LegacyStock struct {
	gorm.Model
	OwnerCode      string `json:"owner_code" gorm:"unique;not null"`
	N950Boxes      int    `json:"n950_boxes" gorm:"column:n950_boxes;default:0"`
	N950Units      int    `json:"n950_units" gorm:"column:n950_units;default:0"`
	I9000sBoxes    int    `json:"i9000s_boxes" gorm:"column:i9000s_boxes;default:0"`
	I9000sUnits    int    `json:"i9000s_units" gorm:"column:i9000s_units;default:0"`
	PaperRollBoxes int    `json:"paper_roll_boxes" gorm:"column:paper_roll_boxes;default:0"`
	PaperRollUnits int    `json:"paper_roll_units" gorm:"column:paper_roll_units;default:0"`
	SimCardBoxes   int    `json:"sim_card_boxes" gorm:"column:sim_card_boxes;default:0"`
	SimCardUnits   int    `json:"sim_card_units" gorm:"column:sim_card_units;default:0"`
	BatteryBoxes   int    `json:"battery_boxes" gorm:"column:battery_boxes;default:0"`
	BatteryUnits   int    `json:"battery_units" gorm:"column:battery_units;default:0"`
	StickerBoxes   int    `json:"sticker_boxes" gorm:"column:sticker_boxes;default:0"`
	StickerUnits   int    `json:"sticker_units" gorm:"column:sticker_units;default:0"`
}

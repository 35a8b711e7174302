package models

import (
	"inventory-app/types"

	"gorm.io/gorm"
)

const (
	PackagingBox  = "box"
	PackagingUnit = "unit"
)

// Transfer is append-only: a row exists only for transfers that passed
// validation and were applied.
type Transfer struct {
	gorm.Model
	ID               types.SnowflakeID `json:"id" gorm:"primaryKey"`
	SourceOwner      string            `json:"source_owner" gorm:"index"`
	DestinationOwner string            `json:"destination_owner" gorm:"index"`
	ItemTypeID       string            `json:"item_type_id"`
	PackagingType    string            `json:"packaging_type"`
	Quantity         int               `json:"quantity"`
	Notes            string            `json:"notes"`
	CreatedBy        int
}

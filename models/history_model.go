package models

import "gorm.io/gorm"

// TransactionHistory is the audit trail for stock mutations.
type TransactionHistory struct {
	gorm.Model
	OwnerCode   string `json:"owner_code" gorm:"index"`
	ItemTypeID  string `json:"item_type_id"`
	Action      string `json:"action"` // set, transfer_out, transfer_in, import
	BoxesBefore int    `json:"boxes_before"`
	BoxesAfter  int    `json:"boxes_after"`
	UnitsBefore int    `json:"units_before"`
	UnitsAfter  int    `json:"units_after"`
	Reference   string `json:"reference"`
	CreatedBy   int
}

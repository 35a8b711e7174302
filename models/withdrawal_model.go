package models

import (
	"time"

	"inventory-app/types"

	"gorm.io/gorm"
)

const (
	DeviceStatusWithdrawn = "withdrawn"
	DeviceStatusReceived  = "received"
)

// WithdrawnDevice tracks a single terminal pulled from a merchant until the
// warehouse confirms receipt.
type WithdrawnDevice struct {
	gorm.Model
	ID           types.SnowflakeID `json:"id" gorm:"primaryKey"`
	SerialNumber string            `json:"serial_number" gorm:"unique;not null"`
	ItemTypeID   string            `json:"item_type_id"`
	OwnerCode    string            `json:"owner_code" gorm:"index"`
	MerchantName string            `json:"merchant_name"`
	Status       string            `json:"status" gorm:"default:'withdrawn'"`
	WithdrawnAt  time.Time         `json:"withdrawn_at"`
	ReceivedAt   *time.Time        `json:"received_at"`
	Notes        string            `json:"notes"`
	CreatedBy    int
	UpdatedBy    int
}

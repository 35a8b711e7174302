package itemtype

import "gorm.io/gorm"

const (
	CategoryDevices     = "devices"
	CategoryPapers      = "papers"
	CategorySim         = "sim"
	CategoryAccessories = "accessories"
	CategoryOther       = "other"
)

// ItemType is a tracked product: a terminal model, a SIM brand, a consumable.
// ID is a stable slug ("n950") referenced by inventory entries and transfers.
type ItemType struct {
	gorm.Model
	ID          string `json:"id" gorm:"primaryKey"`
	NameAr      string `json:"name_ar"`
	NameEn      string `json:"name_en"`
	Category    string `json:"category" gorm:"default:'other'"`
	UnitsPerBox int    `json:"units_per_box" gorm:"default:1"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsVisible   bool   `json:"is_visible" gorm:"default:true"`
	SortOrder   int    `json:"sort_order" gorm:"default:0"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryDevices, CategoryPapers, CategorySim, CategoryAccessories, CategoryOther:
		return true
	}
	return false
}

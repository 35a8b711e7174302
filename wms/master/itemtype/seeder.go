package itemtype

import (
	"gorm.io/gorm"
)

// SeedItemTypes inserts the deployment seed set. The first six predate the
// dynamic model and still have columns in legacy_stocks; the rest were added
// after the migration and exist only as inventory entries.
func SeedItemTypes(db *gorm.DB) {
	itemTypes := []ItemType{
		{ID: "n950", NameAr: "جهاز N950", NameEn: "N950 Terminal", Category: CategoryDevices, UnitsPerBox: 10, SortOrder: 1, IsActive: true, IsVisible: true},
		{ID: "i9000s", NameAr: "جهاز I9000s", NameEn: "I9000s Terminal", Category: CategoryDevices, UnitsPerBox: 10, SortOrder: 2, IsActive: true, IsVisible: true},
		{ID: "paper_roll", NameAr: "رول ورق", NameEn: "Paper Roll", Category: CategoryPapers, UnitsPerBox: 50, SortOrder: 3, IsActive: true, IsVisible: true},
		{ID: "sim_card", NameAr: "شريحة اتصال", NameEn: "SIM Card", Category: CategorySim, UnitsPerBox: 100, SortOrder: 4, IsActive: true, IsVisible: true},
		{ID: "battery", NameAr: "بطارية", NameEn: "Battery", Category: CategoryAccessories, UnitsPerBox: 20, SortOrder: 5, IsActive: true, IsVisible: true},
		{ID: "sticker", NameAr: "ملصق", NameEn: "Sticker", Category: CategoryOther, UnitsPerBox: 100, SortOrder: 6, IsActive: true, IsVisible: true},
		{ID: "n910", NameAr: "جهاز N910", NameEn: "N910 Terminal", Category: CategoryDevices, UnitsPerBox: 10, SortOrder: 7, IsActive: true, IsVisible: true},
		{ID: "charger", NameAr: "شاحن", NameEn: "Charger", Category: CategoryAccessories, UnitsPerBox: 20, SortOrder: 8, IsActive: true, IsVisible: true},
	}

	for _, it := range itemTypes {
		var existing ItemType
		if err := db.Where("id = ?", it.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&it)
			}
		}
	}
}

// database/seeder.go
package database

import (
	"log"

	"inventory-app/models"
	"inventory-app/wms/master/itemtype"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	itemtype.SeedItemTypes(db)
	SeedRegions(db)
	SeedAdminUser(db)
}

func SeedRegions(db *gorm.DB) {
	regions := []models.Region{
		{Code: "CENTRAL", NameAr: "المنطقة الوسطى", NameEn: "Central Region"},
		{Code: "WESTERN", NameAr: "المنطقة الغربية", NameEn: "Western Region"},
		{Code: "EASTERN", NameAr: "المنطقة الشرقية", NameEn: "Eastern Region"},
	}

	for _, r := range regions {
		var existing models.Region
		if err := db.Where("code = ?", r.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&r)
			}
		}
	}
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Unexpected DB error: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	admin := models.User{
		Username: "admin",
		Password: string(hashed),
		Name:     "Administrator",
		NameAr:   "مدير النظام",
		Email:    "admin@localhost",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
}

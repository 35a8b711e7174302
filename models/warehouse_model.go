package models

import "gorm.io/gorm"

type Region struct {
	gorm.Model
	Code      string `json:"code" gorm:"unique"`
	NameAr    string `json:"name_ar"`
	NameEn    string `json:"name_en"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type Warehouse struct {
	gorm.Model
	Code      string `json:"code" gorm:"unique"`
	NameAr    string `json:"name_ar"`
	NameEn    string `json:"name_en"`
	RegionID  uint   `json:"region_id"`
	Region    Region `json:"region" gorm:"foreignKey:RegionID"`
	ManagerID uint   `json:"manager_id"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

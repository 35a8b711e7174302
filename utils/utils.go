package utils

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

func InsertHistory(db *gorm.DB, history models.TransactionHistory) {
	db.Create(&history)
}

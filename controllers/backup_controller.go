package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BackupController struct {
	DB *gorm.DB
}

func NewBackupController(DB *gorm.DB) *BackupController {
	return &BackupController{DB: DB}
}

// backupTables lists every table in restore order (referenced tables first).
// Rows are copied verbatim in both directions; reconciliation is never
// involved, so a backup must already be internally consistent.
var backupTables = []string{
	"regions",
	"users",
	"warehouses",
	"item_types",
	"legacy_stocks",
	"inventory_entries",
	"transfers",
	"withdrawn_devices",
	"transaction_histories",
	"user_sessions",
	"login_logs",
}

func (c *BackupController) ExportBackup(ctx *fiber.Ctx) error {
	backup := fiber.Map{
		"version":     1,
		"exported_at": time.Now().Format(time.RFC3339),
	}

	tables := fiber.Map{}
	for _, table := range backupTables {
		var rows []map[string]interface{}
		if err := c.DB.Table(table).Find(&rows).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
				"table": table,
			})
		}
		tables[table] = rows
	}
	backup["tables"] = tables

	ctx.Set("Content-Disposition", `attachment; filename="inventory_backup.json"`)
	return ctx.JSON(backup)
}

// ImportBackup replaces every table wholesale with the rows from the backup
// document, inside one transaction.
func (c *BackupController) ImportBackup(ctx *fiber.Ctx) error {
	var backup struct {
		Version int                                 `json:"version"`
		Tables  map[string][]map[string]interface{} `json:"tables"`
	}
	if err := ctx.BodyParser(&backup); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if backup.Tables == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing tables"})
	}

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": tx.Error.Error()})
	}

	// Clear in reverse order, restore in declared order.
	for i := len(backupTables) - 1; i >= 0; i-- {
		if err := tx.Exec("DELETE FROM " + backupTables[i]).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
				"table": backupTables[i],
			})
		}
	}

	for _, table := range backupTables {
		rows := backup.Tables[table]
		if len(rows) == 0 {
			continue
		}
		if err := tx.Table(table).Create(rows).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
				"table": table,
			})
		}
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Backup restored"})
}

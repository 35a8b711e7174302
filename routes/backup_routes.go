package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBackupRoutes(app *fiber.App, db *gorm.DB) {
	backupController := controllers.NewBackupController(db)
	api := app.Group(config.MAIN_ROUTES+"/backup",
		middleware.AuthMiddleware(db),
		middleware.RequireRole(db, models.RoleAdmin))

	api.Get("/export", backupController.ExportBackup)
	api.Post("/import", backupController.ImportBackup)
}

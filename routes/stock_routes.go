package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockRoutes(app *fiber.App, db *gorm.DB) {
	stockController := controllers.NewStockController(db)
	api := app.Group(config.MAIN_ROUTES+"/stock", middleware.AuthMiddleware(db))

	api.Get("/:owner", stockController.GetOwnerStock)
	api.Get("/:owner/excel", stockController.ExportExcel)
	api.Get("/:owner/:itemType", stockController.GetOwnerItemStock)
	api.Post("/", middleware.RequireRole(db, models.RoleAdmin, models.RoleSupervisor), stockController.SetOwnerStock)
}

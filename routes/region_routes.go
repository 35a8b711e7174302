package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRegionRoutes(app *fiber.App, db *gorm.DB) {
	regionController := controllers.NewRegionController(db)
	api := app.Group(config.MAIN_ROUTES+"/regions", middleware.AuthMiddleware(db))

	api.Get("/", regionController.GetAllRegions)
	api.Post("/", middleware.RequireRole(db, models.RoleAdmin), regionController.CreateRegion)
	api.Put("/:code", middleware.RequireRole(db, models.RoleAdmin), regionController.UpdateRegion)
	api.Delete("/:code", middleware.RequireRole(db, models.RoleAdmin), regionController.DeleteRegion)
}

package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardController := controllers.NewDashboardController(db)
	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware(db))

	api.Get("/", dashboardController.GetDashboard)
}

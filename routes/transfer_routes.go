package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTransferRoutes(app *fiber.App, db *gorm.DB) {
	transferController := controllers.NewTransferController(db)
	api := app.Group(config.MAIN_ROUTES+"/transfers", middleware.AuthMiddleware(db))

	api.Get("/", transferController.GetTransfers)
	api.Post("/", transferController.CreateTransfer)
	api.Post("/batch", transferController.CreateTransferBatch)
}

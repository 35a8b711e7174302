package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWithdrawalRoutes(app *fiber.App, db *gorm.DB) {
	withdrawalController := controllers.NewWithdrawalController(db)
	api := app.Group(config.MAIN_ROUTES+"/withdrawals", middleware.AuthMiddleware(db))

	api.Get("/", withdrawalController.GetWithdrawnDevices)
	api.Post("/", withdrawalController.WithdrawDevice)
	api.Post("/:serial/receive", withdrawalController.ReceiveDevice)
}

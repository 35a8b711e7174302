package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)
	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware(db))

	api.Get("/", middleware.RequireRole(db, models.RoleAdmin, models.RoleSupervisor), userController.GetAllUsers)
	api.Get("/technicians", userController.GetTechnicians)
	api.Post("/", middleware.RequireRole(db, models.RoleAdmin), userController.CreateUser)
	api.Put("/:id", middleware.RequireRole(db, models.RoleAdmin), userController.UpdateUser)
	api.Delete("/:id", middleware.RequireRole(db, models.RoleAdmin), userController.DeleteUser)
}

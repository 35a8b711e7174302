package itemtype

import (
	"inventory-app/config"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupItemTypeRoutes(app *fiber.App, db *gorm.DB) {
	handler := NewItemTypeHandler(db)
	api := app.Group(config.MAIN_ROUTES+"/item-types", middleware.AuthMiddleware(db))

	api.Get("/", handler.GetAllItemTypes)
	api.Get("/:id", handler.GetItemTypeByID)
	api.Post("/", middleware.RequireRole(db, "admin"), handler.CreateItemType)
	api.Put("/:id", middleware.RequireRole(db, "admin"), handler.UpdateItemType)
	api.Delete("/:id", middleware.RequireRole(db, "admin"), handler.DeleteItemType)
}

package main

import (
	"fmt"
	"log"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/database"
	"inventory-app/routes"
	"inventory-app/wms/master/itemtype"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	db, err := database.OpenDatabaseConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupRegionRoutes(app, db)
	routes.SetupWarehouseRoutes(app, db)
	routes.SetupStockRoutes(app, db)
	routes.SetupTransferRoutes(app, db)
	routes.SetupWithdrawalRoutes(app, db)
	routes.SetupBackupRoutes(app, db)
	itemtype.SetupItemTypeRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}

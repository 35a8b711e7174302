package controllers

import (
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/wms/master/itemtype"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(DB *gorm.DB) *DashboardController {
	return &DashboardController{DB: DB}
}

// GetDashboard builds the role-aware landing payload. Technicians see their
// own stock only; supervisors and admins get the global picture.
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid user"})
	}

	var user models.User
	if err := c.DB.First(&user, uint(userID)).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid user"})
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	transferRepo := repositories.NewTransferRepository(c.DB)

	if user.Role == models.RoleTechnician {
		stock, err := stockRepo.ListEffectiveStock(user.Username)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		transfers, err := transferRepo.ListTransfers(user.Username, 10)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return ctx.JSON(fiber.Map{"success": true, "data": fiber.Map{
			"role":             user.Role,
			"stock":            visibleWithVisuals(stock),
			"recent_transfers": transfers,
		}})
	}

	var warehouseCount, technicianCount, itemTypeCount, pendingDevices int64
	c.DB.Model(&models.Warehouse{}).Where("is_active = ?", true).Count(&warehouseCount)
	c.DB.Model(&models.User{}).Where("role = ? AND is_active = ?", models.RoleTechnician, true).Count(&technicianCount)
	c.DB.Model(&itemtype.ItemType{}).Where("is_active = ?", true).Count(&itemTypeCount)
	c.DB.Model(&models.WithdrawnDevice{}).Where("status = ?", models.DeviceStatusWithdrawn).Count(&pendingDevices)

	// Warehouse stock overview, reconciled per warehouse.
	var warehouses []models.Warehouse
	if err := c.DB.Where("is_active = ?", true).Find(&warehouses).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	warehouseStock := make([]fiber.Map, 0, len(warehouses))
	for _, wh := range warehouses {
		stock, err := stockRepo.ListEffectiveStock(wh.Code)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		warehouseStock = append(warehouseStock, fiber.Map{
			"warehouse": wh,
			"stock":     visibleWithVisuals(stock),
		})
	}

	transfers, err := transferRepo.ListTransfers("", 10)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"role": user.Role,
		"counters": fiber.Map{
			"warehouses":      warehouseCount,
			"technicians":     technicianCount,
			"item_types":      itemTypeCount,
			"pending_devices": pendingDevices,
		},
		"warehouse_stock":  warehouseStock,
		"recent_transfers": transfers,
	}})
}

// visibleWithVisuals drops hidden item types and attaches presentation
// hints, keeping the per-category index deterministic.
func visibleWithVisuals(stock []repositories.OwnerStock) []fiber.Map {
	indexInCategory := map[string]int{}
	out := make([]fiber.Map, 0, len(stock))
	for _, row := range stock {
		if !row.IsVisible {
			continue
		}
		visual := itemtype.ResolveVisual(row.Category, indexInCategory[row.Category])
		indexInCategory[row.Category]++
		out = append(out, fiber.Map{
			"item_type_id": row.ItemTypeID,
			"name_ar":      row.NameAr,
			"name_en":      row.NameEn,
			"category":     row.Category,
			"boxes":        row.Boxes,
			"units":        row.Units,
			"visual":       visual,
		})
	}
	return out
}

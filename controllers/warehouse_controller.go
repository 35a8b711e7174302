package controllers

import (
	"inventory-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WarehouseController struct {
	DB *gorm.DB
}

func NewWarehouseController(DB *gorm.DB) *WarehouseController {
	return &WarehouseController{DB}
}

var warehouseInput struct {
	Code      string `json:"code" validate:"required,min=2"`
	NameAr    string `json:"name_ar" validate:"required"`
	NameEn    string `json:"name_en" validate:"required"`
	RegionID  uint   `json:"region_id" validate:"required"`
	ManagerID uint   `json:"manager_id"`
	IsActive  *bool  `json:"is_active"`
}

func (c *WarehouseController) GetAllWarehouses(ctx *fiber.Ctx) error {
	var warehouses []models.Warehouse
	if err := c.DB.Preload("Region").Find(&warehouses).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    warehouses,
	})
}

func (c *WarehouseController) GetWarehouseByCode(ctx *fiber.Ctx) error {
	var warehouse models.Warehouse
	if err := c.DB.Preload("Region").Where("code = ?", ctx.Params("code")).First(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": warehouse})
}

func (c *WarehouseController) CreateWarehouse(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&warehouseInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(warehouseInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var region models.Region
	if err := c.DB.First(&region, warehouseInput.RegionID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Region not found"})
	}

	warehouse := models.Warehouse{
		Code:      warehouseInput.Code,
		NameAr:    warehouseInput.NameAr,
		NameEn:    warehouseInput.NameEn,
		RegionID:  warehouseInput.RegionID,
		ManagerID: warehouseInput.ManagerID,
		IsActive:  true,
		CreatedBy: int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": warehouse})
}

func (c *WarehouseController) UpdateWarehouse(ctx *fiber.Ctx) error {
	var warehouse models.Warehouse
	if err := c.DB.Where("code = ?", ctx.Params("code")).First(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
	}

	if err := ctx.BodyParser(&warehouseInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if warehouseInput.NameAr != "" {
		warehouse.NameAr = warehouseInput.NameAr
	}
	if warehouseInput.NameEn != "" {
		warehouse.NameEn = warehouseInput.NameEn
	}
	if warehouseInput.RegionID != 0 {
		warehouse.RegionID = warehouseInput.RegionID
	}
	if warehouseInput.ManagerID != 0 {
		warehouse.ManagerID = warehouseInput.ManagerID
	}
	if warehouseInput.IsActive != nil {
		warehouse.IsActive = *warehouseInput.IsActive
	}
	warehouse.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": warehouse})
}

func (c *WarehouseController) DeleteWarehouse(ctx *fiber.Ctx) error {
	var warehouse models.Warehouse
	if err := c.DB.Where("code = ?", ctx.Params("code")).First(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
	}

	warehouse.DeletedBy = int(ctx.Locals("userID").(float64))
	c.DB.Save(&warehouse)

	if err := c.DB.Delete(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Warehouse deleted"})
}

package controllers

import (
	"inventory-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RegionController struct {
	DB *gorm.DB
}

func NewRegionController(DB *gorm.DB) *RegionController {
	return &RegionController{DB}
}

var regionInput struct {
	Code   string `json:"code" validate:"required,min=2"`
	NameAr string `json:"name_ar" validate:"required"`
	NameEn string `json:"name_en" validate:"required"`
}

func (c *RegionController) GetAllRegions(ctx *fiber.Ctx) error {
	var regions []models.Region
	if err := c.DB.Find(&regions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": regions})
}

func (c *RegionController) CreateRegion(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&regionInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(regionInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	region := models.Region{
		Code:      regionInput.Code,
		NameAr:    regionInput.NameAr,
		NameEn:    regionInput.NameEn,
		CreatedBy: int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&region).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": region})
}

func (c *RegionController) UpdateRegion(ctx *fiber.Ctx) error {
	var region models.Region
	if err := c.DB.Where("code = ?", ctx.Params("code")).First(&region).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Region not found"})
	}

	if err := ctx.BodyParser(&regionInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if regionInput.NameAr != "" {
		region.NameAr = regionInput.NameAr
	}
	if regionInput.NameEn != "" {
		region.NameEn = regionInput.NameEn
	}
	region.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&region).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": region})
}

func (c *RegionController) DeleteRegion(ctx *fiber.Ctx) error {
	var region models.Region
	if err := c.DB.Where("code = ?", ctx.Params("code")).First(&region).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Region not found"})
	}

	var count int64
	c.DB.Model(&models.Warehouse{}).Where("region_id = ?", region.ID).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Region has warehouses",
			"message": "لا يمكن حذف منطقة مرتبطة بمستودعات",
		})
	}

	if err := c.DB.Delete(&region).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Region deleted"})
}

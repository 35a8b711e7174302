package controllers

import (
	"fmt"
	"net/http"

	"inventory-app/controllers/helpers"
	"inventory-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type StockController struct {
	DB *gorm.DB
}

func NewStockController(DB *gorm.DB) *StockController {
	return &StockController{DB: DB}
}

// GetOwnerStock returns reconciled stock for every active item type of one
// owner (warehouse code or technician username).
func (c *StockController) GetOwnerStock(ctx *fiber.Ctx) error {
	ownerCode := ctx.Params("owner")

	stockRepo := repositories.NewStockRepository(c.DB)
	stock, err := stockRepo.ListEffectiveStock(ownerCode)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"owner_code": ownerCode,
		"stock":      stock,
	}})
}

// GetOwnerItemStock returns the reconciled pair for one owner and one item
// type. Unknown pairs read as zero.
func (c *StockController) GetOwnerItemStock(ctx *fiber.Ctx) error {
	ownerCode := ctx.Params("owner")
	itemTypeID := ctx.Params("itemType")

	stockRepo := repositories.NewStockRepository(c.DB)
	stock, err := stockRepo.GetEffectiveStock(ownerCode, itemTypeID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"owner_code":   ownerCode,
		"item_type_id": itemTypeID,
		"boxes":        stock.Boxes,
		"units":        stock.Units,
	}})
}

var setStockInput struct {
	OwnerCode  string `json:"owner_code" validate:"required"`
	ItemTypeID string `json:"item_type_id" validate:"required"`
	Boxes      int    `json:"boxes"`
	Units      int    `json:"units"`
}

func (c *StockController) SetOwnerStock(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&setStockInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(setStockInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))
	stockRepo := repositories.NewStockRepository(c.DB)
	if err := stockRepo.SetEffectiveStock(
		setStockInput.OwnerCode, setStockInput.ItemTypeID,
		setStockInput.Boxes, setStockInput.Units, userID,
	); err != nil {
		return helpers.RespondStockError(ctx, err)
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Stock updated"})
}

// ExportExcel writes the owner's reconciled stock as an Excel report.
func (c *StockController) ExportExcel(ctx *fiber.Ctx) error {
	ownerCode := ctx.Params("owner")

	stockRepo := repositories.NewStockRepository(c.DB)
	stock, err := stockRepo.ListEffectiveStock(ownerCode)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Item Type")
	f.SetCellValue(sheet, "B1", "Name (AR)")
	f.SetCellValue(sheet, "C1", "Name (EN)")
	f.SetCellValue(sheet, "D1", "Category")
	f.SetCellValue(sheet, "E1", "Boxes")
	f.SetCellValue(sheet, "F1", "Units")

	for i, row := range stock {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.ItemTypeID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.NameAr)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), row.NameEn)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), row.Category)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), row.Boxes)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), row.Units)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="stock_%s.xlsx"`, ownerCode))

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}

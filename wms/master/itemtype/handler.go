package itemtype

import (
	"errors"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ItemTypeHandler struct {
	DB *gorm.DB
}

func NewItemTypeHandler(db *gorm.DB) *ItemTypeHandler {
	return &ItemTypeHandler{DB: db}
}

type itemTypeInput struct {
	ID          string `json:"id" validate:"required,min=2"`
	NameAr      string `json:"name_ar" validate:"required"`
	NameEn      string `json:"name_en" validate:"required"`
	Category    string `json:"category" validate:"required"`
	UnitsPerBox int    `json:"units_per_box" validate:"required,min=1"`
	IsActive    *bool  `json:"is_active"`
	IsVisible   *bool  `json:"is_visible"`
	SortOrder   int    `json:"sort_order"`
}

// GetAllItemTypes returns every item type, with resolved visuals. The
// dashboard filters on is_visible itself; selection UIs on is_active.
func (h *ItemTypeHandler) GetAllItemTypes(ctx *fiber.Ctx) error {
	var itemTypes []ItemType
	if err := h.DB.Order("sort_order asc, id asc").Find(&itemTypes).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	indexInCategory := map[string]int{}
	result := make([]fiber.Map, 0, len(itemTypes))
	for _, it := range itemTypes {
		visual := ResolveVisual(it.Category, indexInCategory[it.Category])
		indexInCategory[it.Category]++
		result = append(result, fiber.Map{
			"item_type": it,
			"visual":    visual,
		})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": result})
}

func (h *ItemTypeHandler) GetItemTypeByID(ctx *fiber.Ctx) error {
	var it ItemType
	if err := h.DB.Where("id = ?", ctx.Params("id")).First(&it).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item type not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": it})
}

func (h *ItemTypeHandler) CreateItemType(ctx *fiber.Ctx) error {
	var input itemTypeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !ValidCategory(input.Category) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category"})
	}

	it := ItemType{
		ID:          input.ID,
		NameAr:      input.NameAr,
		NameEn:      input.NameEn,
		Category:    input.Category,
		UnitsPerBox: input.UnitsPerBox,
		IsActive:    true,
		IsVisible:   true,
		SortOrder:   input.SortOrder,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}
	if input.IsActive != nil {
		it.IsActive = *input.IsActive
	}
	if input.IsVisible != nil {
		it.IsVisible = *input.IsVisible
	}

	if err := h.DB.Create(&it).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": it})
}

func (h *ItemTypeHandler) UpdateItemType(ctx *fiber.Ctx) error {
	var it ItemType
	if err := h.DB.Where("id = ?", ctx.Params("id")).First(&it).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item type not found"})
	}

	var input itemTypeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Category != "" && !ValidCategory(input.Category) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category"})
	}

	if input.NameAr != "" {
		it.NameAr = input.NameAr
	}
	if input.NameEn != "" {
		it.NameEn = input.NameEn
	}
	if input.Category != "" {
		it.Category = input.Category
	}
	if input.UnitsPerBox > 0 {
		it.UnitsPerBox = input.UnitsPerBox
	}
	if input.IsActive != nil {
		it.IsActive = *input.IsActive
	}
	if input.IsVisible != nil {
		it.IsVisible = *input.IsVisible
	}
	it.SortOrder = input.SortOrder
	it.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := h.DB.Save(&it).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": it})
}

// DeleteItemType soft-deletes. Existing inventory entries and transfers keep
// the slug; the type just stops being selectable.
func (h *ItemTypeHandler) DeleteItemType(ctx *fiber.Ctx) error {
	var it ItemType
	if err := h.DB.Where("id = ?", ctx.Params("id")).First(&it).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item type not found"})
	}

	it.DeletedBy = int(ctx.Locals("userID").(float64))
	h.DB.Save(&it)

	if err := h.DB.Delete(&it).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Item type deleted"})
}

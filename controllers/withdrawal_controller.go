package controllers

import (
	"time"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WithdrawalController struct {
	DB *gorm.DB
}

func NewWithdrawalController(DB *gorm.DB) *WithdrawalController {
	return &WithdrawalController{DB: DB}
}

var withdrawalInput struct {
	SerialNumber string `json:"serial_number" validate:"required,min=4"`
	ItemTypeID   string `json:"item_type_id" validate:"required"`
	OwnerCode    string `json:"owner_code" validate:"required"`
	MerchantName string `json:"merchant_name"`
	Notes        string `json:"notes"`
}

// WithdrawDevice records a terminal pulled from a merchant. The device sits
// in "withdrawn" until a warehouse confirms receipt.
func (c *WithdrawalController) WithdrawDevice(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&withdrawalInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(withdrawalInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	if !stockRepo.OwnerExists(withdrawalInput.OwnerCode) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   models.ErrUnknownOwner.Error(),
			"message": models.ArabicMessage(models.ErrUnknownOwner),
		})
	}
	if !stockRepo.ItemTypeExists(withdrawalInput.ItemTypeID) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   models.ErrUnknownItemType.Error(),
			"message": models.ArabicMessage(models.ErrUnknownItemType),
		})
	}

	device := models.WithdrawnDevice{
		ID:           types.SnowflakeID(idgen.GenerateID()),
		SerialNumber: withdrawalInput.SerialNumber,
		ItemTypeID:   withdrawalInput.ItemTypeID,
		OwnerCode:    withdrawalInput.OwnerCode,
		MerchantName: withdrawalInput.MerchantName,
		Status:       models.DeviceStatusWithdrawn,
		WithdrawnAt:  time.Now(),
		Notes:        withdrawalInput.Notes,
		CreatedBy:    int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&device).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": device})
}

// ReceiveDevice confirms a withdrawn device arrived at the warehouse and
// credits one unit of its item type to the receiving owner.
func (c *WithdrawalController) ReceiveDevice(ctx *fiber.Ctx) error {
	var device models.WithdrawnDevice
	if err := c.DB.Where("serial_number = ?", ctx.Params("serial")).First(&device).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Device not found"})
	}

	if device.Status == models.DeviceStatusReceived {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Device already received",
			"message": "تم استلام الجهاز مسبقاً",
		})
	}

	var input struct {
		ReceivingOwner string `json:"receiving_owner" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.ReceivingOwner == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "receiving_owner required"})
	}

	userID := int(ctx.Locals("userID").(float64))
	stockRepo := repositories.NewStockRepository(c.DB)

	stock, err := stockRepo.GetEffectiveStock(input.ReceivingOwner, device.ItemTypeID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := stockRepo.SetEffectiveStock(
		input.ReceivingOwner, device.ItemTypeID, stock.Boxes, stock.Units+1, userID,
	); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"message": models.ArabicMessage(err),
		})
	}

	now := time.Now()
	device.Status = models.DeviceStatusReceived
	device.ReceivedAt = &now
	device.OwnerCode = input.ReceivingOwner
	device.UpdatedBy = userID

	if err := c.DB.Save(&device).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": device})
}

func (c *WithdrawalController) GetWithdrawnDevices(ctx *fiber.Ctx) error {
	query := c.DB.Order("withdrawn_at desc")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if owner := ctx.Query("owner"); owner != "" {
		query = query.Where("owner_code = ?", owner)
	}

	var devices []models.WithdrawnDevice
	if err := query.Find(&devices).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": devices})
}

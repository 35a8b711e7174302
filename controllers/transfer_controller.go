package controllers

import (
	"inventory-app/controllers/helpers"
	"inventory-app/models"
	"inventory-app/repositories"
	"inventory-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TransferController struct {
	DB *gorm.DB
}

func NewTransferController(DB *gorm.DB) *TransferController {
	return &TransferController{DB: DB}
}

// CreateTransfer applies a single transfer line.
func (c *TransferController) CreateTransfer(ctx *fiber.Ctx) error {
	var req repositories.TransferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))
	transferRepo := repositories.NewTransferRepository(c.DB)
	transfer, err := transferRepo.CreateTransfer(req, userID)
	if err != nil {
		return helpers.RespondStockError(ctx, err)
	}

	go services.NotifyTransfer(transfer)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": transfer})
}

var batchInput struct {
	Items []repositories.TransferRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateTransferBatch applies each line independently. Lines that pass are
// committed even when later lines fail; the response carries per-line
// results so the UI can surface a combined error. Cross-line rollback is a
// known gap.
func (c *TransferController) CreateTransferBatch(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&batchInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(batchInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))
	transferRepo := repositories.NewTransferRepository(c.DB)

	results := make([]fiber.Map, 0, len(batchInput.Items))
	accepted := 0
	for i, line := range batchInput.Items {
		transfer, err := transferRepo.CreateTransfer(line, userID)
		if err != nil {
			results = append(results, fiber.Map{
				"line":    i,
				"status":  "rejected",
				"error":   err.Error(),
				"message": models.ArabicMessage(err),
			})
			continue
		}
		accepted++
		results = append(results, fiber.Map{
			"line":   i,
			"status": "accepted",
			"data":   transfer,
		})
		go services.NotifyTransfer(transfer)
	}

	status := fiber.StatusCreated
	if accepted == 0 {
		status = fiber.StatusUnprocessableEntity
	} else if accepted < len(batchInput.Items) {
		status = fiber.StatusMultiStatus
	}

	return ctx.Status(status).JSON(fiber.Map{
		"success":  accepted == len(batchInput.Items),
		"accepted": accepted,
		"total":    len(batchInput.Items),
		"results":  results,
	})
}

func (c *TransferController) GetTransfers(ctx *fiber.Ctx) error {
	ownerCode := ctx.Query("owner")
	limit := ctx.QueryInt("limit", 100)

	transferRepo := repositories.NewTransferRepository(c.DB)
	transfers, err := transferRepo.ListTransfers(ownerCode, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": fiber.Map{"transfers": transfers}})
}

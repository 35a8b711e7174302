package helpers

import (
	"errors"

	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
)

// RespondStockError maps a stock/transfer error to an HTTP status plus the
// Arabic message shown in the UI.
func RespondStockError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrSameOwner):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrInsufficientStock):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, models.ErrUnknownOwner),
		errors.Is(err, models.ErrUnknownItemType):
		status = fiber.StatusNotFound
	}

	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"message": models.ArabicMessage(err),
	})
}

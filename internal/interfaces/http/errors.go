package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/album-inventory/internal/application/dto"
	"github.com/jhoicas/album-inventory/internal/domain"
)

// writeError traduce un error de los casos de uso a la respuesta HTTP.
// result, si no es nil, se devuelve junto al error (traslados parciales o rechazados).
func writeError(c *fiber.Ctx, err error, result any) error {
	resp := dto.ErrorResponse{Code: "INTERNAL", Message: err.Error(), Result: result}
	status := fiber.StatusInternalServerError

	if de, ok := domain.AsError(err); ok {
		resp.Step = de.Step
		resp.Message = de.Message
		switch de.Kind {
		case domain.KindValidation:
			status, resp.Code = fiber.StatusBadRequest, "VALIDATION"
		case domain.KindAuthorization:
			status, resp.Code = fiber.StatusForbidden, "FORBIDDEN"
		case domain.KindConflict:
			status, resp.Code = fiber.StatusConflict, "CONFLICT"
			if de.Conflict != nil {
				resp.Conflict = &dto.BarcodeConflictResponse{
					Barcode:      de.Conflict.Barcode,
					ItemID:       de.Conflict.ItemID,
					Artist:       de.Conflict.Existing.Artist,
					Category:     de.Conflict.Existing.Category,
					AlbumVersion: de.Conflict.Existing.AlbumVersion,
				}
			}
		case domain.KindPartialTransfer:
			status, resp.Code = fiber.StatusConflict, "PARTIAL_TRANSFER"
		case domain.KindStorage:
			status, resp.Code = fiber.StatusServiceUnavailable, "STORAGE"
		}
		return c.Status(status).JSON(resp)
	}
	if errors.Is(err, domain.ErrNotFound) {
		status, resp.Code = fiber.StatusNotFound, "NOT_FOUND"
	}
	return c.Status(status).JSON(resp)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/album-inventory/internal/application/dto"
	"github.com/jhoicas/album-inventory/internal/application/inventory"
)

// ItemHandler códigos de barras de los ítems.
type ItemHandler struct {
	barcodes *inventory.BarcodeResolver
}

// NewItemHandler construye el handler.
func NewItemHandler(barcodes *inventory.BarcodeResolver) *ItemHandler {
	return &ItemHandler{barcodes: barcodes}
}

// CheckBarcode godoc
// @Summary      Verificar si un código de barras está libre para un grupo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        code           path   string  true   "Código de barras"
// @Param        artist         query  string  true   "Artista"
// @Param        category       query  string  false  "album | md"
// @Param        album_version  query  string  true   "Versión"
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/barcodes/{code} [get]
func (h *ItemHandler) CheckBarcode(c *fiber.Ctx) error {
	ref := dto.ItemRef{
		Artist:       c.Query("artist"),
		Category:     c.Query("category"),
		AlbumVersion: c.Query("album_version"),
		Option:       c.Query("option"),
	}
	conflict, err := h.barcodes.FindConflict(c.UserContext(), c.Params("code"), inventory.IdentityFromRef(ref).Normalize())
	if err != nil {
		return writeError(c, err, nil)
	}
	if conflict != nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "CONFLICT",
			Message: "el código ya está asignado a otro grupo",
			Step:    "barcode",
			Conflict: &dto.BarcodeConflictResponse{
				Barcode:      conflict.Barcode,
				ItemID:       conflict.ItemID,
				Artist:       conflict.Existing.Artist,
				Category:     conflict.Existing.Category,
				AlbumVersion: conflict.Existing.AlbumVersion,
			},
		})
	}
	return c.JSON(fiber.Map{"available": true})
}

// AttachBarcode godoc
// @Summary      Asignar código de barras a un ítem
// @Description  Crea el ítem si no existe. Solo full-admin puede reemplazar un código ya asignado.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BarcodeRequest  true  "ítem y barcode"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/barcodes [post]
func (h *ItemHandler) AttachBarcode(c *fiber.Ctx) error {
	var in dto.BarcodeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.barcodes.Attach(c.UserContext(), GetRole(c), in.ItemID, inventory.IdentityFromRef(in.ItemRef), in.Barcode)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(toItemResponse(item))
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/album-inventory/internal/application/dto"
	"github.com/jhoicas/album-inventory/internal/application/inventory"
)

// PeriodHandler aperturas mensuales (protegido).
type PeriodHandler struct {
	periods *inventory.PeriodUseCase
}

// NewPeriodHandler construye el handler.
func NewPeriodHandler(periods *inventory.PeriodUseCase) *PeriodHandler {
	return &PeriodHandler{periods: periods}
}

// StartPeriod godoc
// @Summary      Iniciar período mensual
// @Description  Congela el stock actual como apertura del mes. Un mes existente o anterior al vigente no se modifica.
// @Tags         periods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PeriodRequest  false  "period (YYYY-MM); vacío = mes actual"
// @Success      201   {object}  dto.PeriodResponse
// @Success      200   {object}  dto.PeriodResponse  "sin cambios"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/periods [post]
func (h *PeriodHandler) StartPeriod(c *fiber.Ctx) error {
	var req dto.PeriodRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
	}
	res, err := h.periods.StartPeriod(c.UserContext(), req.Period)
	if err != nil {
		return writeError(c, err, nil)
	}
	out := dto.PeriodResponse{Requested: res.Requested, Created: res.Created}
	if res.Current != nil {
		out.Current = res.Current.Period
		out.CreatedAt = res.Current.CreatedAt
	}
	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

// PeriodOpenings godoc
// @Summary      Stock de apertura de un período
// @Tags         periods
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "YYYY-MM; vacío = período vigente"
// @Success      200  {object}  dto.PeriodOpeningsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/periods/openings [get]
func (h *PeriodHandler) PeriodOpenings(c *fiber.Ctx) error {
	period, list, err := h.periods.Openings(c.UserContext(), c.Query("period"))
	if err != nil {
		return writeError(c, err, nil)
	}
	out := dto.PeriodOpeningsResponse{Period: period, Openings: make([]dto.PeriodOpeningResponse, 0, len(list))}
	for _, o := range list {
		out.Openings = append(out.Openings, dto.PeriodOpeningResponse{
			ItemID:       o.ItemID,
			Artist:       o.Identity.Artist,
			Category:     o.Identity.Category,
			AlbumVersion: o.Identity.AlbumVersion,
			Option:       o.Identity.Option,
			Location:     o.Location,
			Quantity:     o.Quantity,
		})
	}
	return c.JSON(out)
}

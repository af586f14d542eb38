package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/album-inventory/internal/application/dto"
	"github.com/jhoicas/album-inventory/internal/application/inventory"
	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP del ledger: movimientos, conteos, traslados y consultas (protegido).
type InventoryHandler struct {
	ledger    *inventory.ApplyMovementUseCase
	transfers *inventory.TransferUseCase
	bulk      *inventory.BulkTransferUseCase
	queries   *inventory.StockQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	ledger *inventory.ApplyMovementUseCase,
	transfers *inventory.TransferUseCase,
	bulk *inventory.BulkTransferUseCase,
	queries *inventory.StockQueryUseCase,
) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, transfers: transfers, bulk: bulk, queries: queries}
}

// ApplyMovement godoc
// @Summary      Registrar entrada o salida
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "ítem (item_id o artist/category/album_version/option), location, direction, quantity, memo"
// @Success      201   {object}  inventory.MovementResult
// @Success      200   {object}  inventory.MovementResult  "clave repetida"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) ApplyMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.ledger.ApplyFromRequest(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.Status(appliedStatus(res)).JSON(res)
}

// StockTake godoc
// @Summary      Registrar conteo físico
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockTakeRequest  true  "ítem, location, counted, memo"
// @Success      201   {object}  inventory.MovementResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock-takes [post]
func (h *InventoryHandler) StockTake(c *fiber.Ctx) error {
	var in dto.StockTakeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.ledger.StockTakeFromRequest(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.Status(appliedStatus(res)).JSON(res)
}

// Transfer godoc
// @Summary      Trasladar stock entre ubicaciones
// @Description  Registra la salida ({key}-out) y luego la entrada ({key}-in). Si la entrada falla
//
//	responde 409 PARTIAL_TRANSFER con el resultado; reintentar con la misma clave completa el traslado.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "ítem, from_location, to_location, quantity, memo, barcode?, idempotency_key?"
// @Success      201   {object}  inventory.TransferResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.transfers.TransferFromRequest(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err, res)
	}
	status := fiber.StatusCreated
	if res.Out != nil && res.Out.Duplicated && res.In != nil && res.In.Duplicated {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(res)
}

// BulkTransfer godoc
// @Summary      Traslado en lote hacia un destino
// @Description  Cada línea se procesa de forma independiente con la clave {key}-{index}.
//
//	Para reintentar solo las fallidas se reenvían con su index y la misma clave.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkTransferRequest  true  "to_location, memo, idempotency_key?, items[]"
// @Success      200   {object}  inventory.BatchReport
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers/bulk [post]
func (h *InventoryHandler) BulkTransfer(c *fiber.Ctx) error {
	var in dto.BulkTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	report, err := h.bulk.RunBatchFromRequest(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(report)
}

// GetStock godoc
// @Summary      Cantidad de un ítem en una ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id   query  string  true  "ID del ítem"
// @Param        location  query  string  true  "Ubicación"
// @Success      200  {object}  dto.StockResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	itemID, location := c.Query("item_id"), c.Query("location")
	qty, err := h.queries.GetQuantity(c.UserContext(), itemID, location)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(dto.StockResponse{ItemID: itemID, Location: location, Quantity: qty, Anomaly: qty < 0})
}

// GetItemStock godoc
// @Summary      Cantidades de un ítem por ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ItemStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/stock [get]
func (h *InventoryHandler) GetItemStock(c *fiber.Ctx) error {
	is, err := h.queries.GetItemStock(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, nil)
	}
	if is == nil {
		return writeError(c, domain.ErrNotFound, nil)
	}
	out := dto.ItemStockResponse{Item: toItemResponse(is.Item), Stocks: make([]dto.StockResponse, 0, len(is.Stocks))}
	for _, s := range is.Stocks {
		out.Stocks = append(out.Stocks, toStockResponse(s))
		out.Total += s.Quantity
	}
	return c.JSON(out)
}

// ListAnomalies godoc
// @Summary      Stock negativo por ítem y ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite (default 50, máx 200)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {array}  dto.AnomalyResponse
// @Router       /api/inventory/anomalies [get]
func (h *InventoryHandler) ListAnomalies(c *fiber.Ctx) error {
	limit, offset := c.QueryInt("limit", 50), c.QueryInt("offset", 0)
	list, err := h.queries.ListAnomalies(c.UserContext(), limit, offset)
	if err != nil {
		return writeError(c, err, nil)
	}
	out := make([]dto.AnomalyResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.AnomalyResponse{
			StockResponse: toStockResponse(&a.Stock),
			Artist:        a.Identity.Artist,
			Category:      a.Identity.Category,
			AlbumVersion:  a.Identity.AlbumVersion,
			Option:        a.Identity.Option,
		})
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id   query  string  false  "Filtrar por ítem"
// @Param        location  query  string  false  "Filtrar por ubicación"
// @Param        artist    query  string  false  "Filtrar por artista"
// @Param        from      query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to        query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Param        day       query  string  false  "Día (YYYY-MM-DD)"
// @Param        month     query  string  false  "Mes (YYYY-MM)"
// @Param        year      query  string  false  "Año (YYYY)"
// @Param        event_id     query  string  false  "Filtrar por evento"
// @Param        open_events  query  bool    false  "Solo salidas de evento sin devolución"
// @Param        limit     query  int     false  "Límite (default 20, máx 100)"
// @Param        offset    query  int     false  "Offset"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	filter, err := movementFilter(c)
	if err != nil {
		return writeError(c, err, nil)
	}
	filter.Limit = c.QueryInt("limit", 20)
	filter.Offset = c.QueryInt("offset", 0)
	list, err := h.queries.ListMovements(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err, nil)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	limit := filter.Limit
	switch {
	case limit <= 0:
		limit = 20
	case limit > 100:
		limit = 100
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: max(filter.Offset, 0)},
	})
}

// SummarizeMovements godoc
// @Summary      Neto de movimientos por ítem y ubicación
// @Description  Entradas menos salidas sobre el historial filtrado (mismos filtros que el historial, sin paginación).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id   query  string  false  "Filtrar por ítem"
// @Param        location  query  string  false  "Filtrar por ubicación"
// @Param        artist    query  string  false  "Filtrar por artista"
// @Param        day       query  string  false  "Día (YYYY-MM-DD)"
// @Param        month     query  string  false  "Mes (YYYY-MM)"
// @Param        year      query  string  false  "Año (YYYY)"
// @Success      200  {array}   dto.NetMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/summary [get]
func (h *InventoryHandler) SummarizeMovements(c *fiber.Ctx) error {
	filter, err := movementFilter(c)
	if err != nil {
		return writeError(c, err, nil)
	}
	nets, err := h.queries.SummarizeMovements(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err, nil)
	}
	out := make([]dto.NetMovementResponse, 0, len(nets))
	for _, n := range nets {
		out = append(out, dto.NetMovementResponse{
			ItemID:       n.ItemID,
			Artist:       n.Identity.Artist,
			Category:     n.Identity.Category,
			AlbumVersion: n.Identity.AlbumVersion,
			Option:       n.Identity.Option,
			Location:     n.Location,
			Net:          n.Net,
		})
	}
	return c.JSON(out)
}

// movementFilter lee los filtros comunes del historial. day/month/year no se combinan con from/to.
func movementFilter(c *fiber.Ctx) (entity.MovementFilter, error) {
	filter := entity.MovementFilter{
		ItemID:   c.Query("item_id"),
		Location: c.Query("location"),
		Artist:   c.Query("artist"),
		EventID:  c.Query("event_id"),
	}
	filter.OpenEvents = c.QueryBool("open_events")
	from, to, err := inventory.HistoryWindow(c.Query("day"), c.Query("month"), c.Query("year"))
	if err != nil {
		return filter, err
	}
	if from != nil {
		if c.Query("from") != "" || c.Query("to") != "" {
			return filter, domain.NewValidationError(domain.StepValidate, "day/month/year no se combinan con from/to")
		}
		filter.From, filter.To = from, to
		return filter, nil
	}
	if filter.From, err = parseDateParam(c.Query("from"), false); err != nil {
		return filter, domain.NewValidationError(domain.StepValidate, "from inválido: "+err.Error())
	}
	if filter.To, err = parseDateParam(c.Query("to"), true); err != nil {
		return filter, domain.NewValidationError(domain.StepValidate, "to inválido: "+err.Error())
	}
	return filter, nil
}

// ArtistSummary godoc
// @Summary      Total de unidades por artista
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ArtistTotalResponse
// @Router       /api/inventory/summary/artists [get]
func (h *InventoryHandler) ArtistSummary(c *fiber.Ctx) error {
	totals, err := h.queries.ArtistSummary(c.UserContext())
	if err != nil {
		return writeError(c, err, nil)
	}
	out := make([]dto.ArtistTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.ArtistTotalResponse{Artist: t.Artist, Quantity: t.Quantity})
	}
	return c.JSON(out)
}

// appliedStatus 201 si el movimiento se insertó; 200 si fue repetido o un conteo sin diferencia.
func appliedStatus(res *inventory.MovementResult) int {
	if res.MovementInserted {
		return fiber.StatusCreated
	}
	return fiber.StatusOK
}

// parseDateParam acepta RFC3339 o YYYY-MM-DD; en fechas sin hora, endOfDay lleva al último instante del día.
func parseDateParam(v string, endOfDay bool) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func toItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:           it.ID,
		Artist:       it.Artist,
		Category:     it.Category,
		AlbumVersion: it.AlbumVersion,
		Option:       it.Option,
		Barcode:      it.Barcode,
	}
}

func toStockResponse(s *entity.Stock) dto.StockResponse {
	return dto.StockResponse{
		ItemID:    s.ItemID,
		Location:  s.Location,
		Quantity:  s.Quantity,
		Anomaly:   s.Quantity < 0,
		UpdatedAt: s.UpdatedAt,
	}
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:              m.ID,
		ItemID:          m.ItemID,
		Location:        m.Location,
		Direction:       string(m.Direction),
		Quantity:        m.Quantity,
		Memo:            m.Memo,
		Actor:           m.Actor,
		IdempotencyKey:  m.IdempotencyKey,
		OpeningQuantity: m.OpeningQuantity,
		ClosingQuantity: m.ClosingQuantity,
		FromLocation:    m.FromLocation,
		ToLocation:      m.ToLocation,
		EventID:         m.EventID,
		CreatedAt:       m.CreatedAt,
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/album-inventory/internal/application/inventory"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger    *inventory.ApplyMovementUseCase
	Transfers *inventory.TransferUseCase
	Bulk      *inventory.BulkTransferUseCase
	Queries   *inventory.StockQueryUseCase
	Barcodes  *inventory.BarcodeResolver
	Periods   *inventory.PeriodUseCase
	Scopes    repository.ScopeRepository
	JWTSecret string
}

// Roles que pueden registrar cambios; viewer queda en solo lectura.
var writerRoles = []string{
	entity.RoleFullAdmin,
	entity.RoleOperator,
	entity.RoleScopedOperator,
	entity.RoleScopedManager,
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), ScopeMiddleware(deps.Scopes))
	write := RequireRole(writerRoles...)

	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.Transfers, deps.Bulk, deps.Queries)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/movements", write, inventoryHandler.ApplyMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements/summary", inventoryHandler.SummarizeMovements)
	invGroup.Post("/stock-takes", write, inventoryHandler.StockTake)
	invGroup.Post("/transfers", write, inventoryHandler.Transfer)
	invGroup.Post("/transfers/bulk", write, inventoryHandler.BulkTransfer)
	invGroup.Get("/stock", inventoryHandler.GetStock)
	invGroup.Get("/items/:id/stock", inventoryHandler.GetItemStock)
	invGroup.Get("/anomalies", inventoryHandler.ListAnomalies)
	invGroup.Get("/summary/artists", inventoryHandler.ArtistSummary)

	// El período es global: los roles con alcance no lo inician.
	periodHandler := NewPeriodHandler(deps.Periods)
	invGroup.Post("/periods", RequireRole(entity.RoleFullAdmin, entity.RoleOperator), periodHandler.StartPeriod)
	invGroup.Get("/periods/openings", periodHandler.PeriodOpenings)

	itemHandler := NewItemHandler(deps.Barcodes)
	items := protected.Group("/items")
	items.Get("/barcodes/:code", itemHandler.CheckBarcode)
	items.Post("/barcodes", write, itemHandler.AttachBarcode)
}

package repository

import (
	"context"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

// StockRepository puerto del almacén de cantidades (ítem, ubicación) → entero.
// Las mutaciones se usan dentro de transacciones para garantizar consistencia.
// No valida el signo: los negativos se devuelven tal cual.
type StockRepository interface {
	// Get devuelve la cantidad actual (0 si no existe) sin crear la fila.
	Get(ctx context.Context, itemID, location string) (int, error)
	// GetForUpdate crea la fila en 0 si falta y la bloquea hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, itemID, location string) (int, error)
	// Set fija la cantidad (upsert).
	Set(ctx context.Context, itemID, location string, quantity int) error
	// AddDelta suma delta (upsert) y devuelve la nueva cantidad.
	AddDelta(ctx context.Context, itemID, location string, delta int) (int, error)
	ListByItem(ctx context.Context, itemID string) ([]*entity.Stock, error)
	// ListNegative consulta de lectura para el reporte de anomalías.
	ListNegative(ctx context.Context, limit, offset int) ([]*entity.StockAnomaly, error)
	SumByArtist(ctx context.Context) ([]entity.ArtistTotal, error)
}

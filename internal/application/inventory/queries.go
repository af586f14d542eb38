package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

// StockQueryUseCase consultas de lectura: stock, historial, resumen neto, anomalías y resumen por artista.
// Las anomalías (cantidades negativas) se detectan aquí, nunca en el camino de escritura.
type StockQueryUseCase struct {
	txRunner TxRunner
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(txRunner TxRunner) *StockQueryUseCase {
	return &StockQueryUseCase{txRunner: txRunner}
}

// ItemStock cantidades de un ítem por ubicación.
type ItemStock struct {
	Item   *entity.Item
	Stocks []*entity.Stock
}

// GetQuantity devuelve la cantidad de un ítem en una ubicación (0 si no hay registro).
func (uc *StockQueryUseCase) GetQuantity(ctx context.Context, itemID, location string) (int, error) {
	itemID, location = strings.TrimSpace(itemID), strings.TrimSpace(location)
	if itemID == "" || location == "" {
		return 0, domain.NewValidationError(domain.StepValidate, "item_id y location son requeridos")
	}
	var qty int
	err := uc.read(ctx, func(_ repository.MovementRepository, stockRepo repository.StockRepository, _ repository.ItemRepository) error {
		q, err := stockRepo.Get(ctx, itemID, location)
		qty = q
		return err
	})
	return qty, err
}

// GetItemStock devuelve el ítem y sus cantidades por ubicación; nil si no existe.
func (uc *StockQueryUseCase) GetItemStock(ctx context.Context, itemID string) (*ItemStock, error) {
	var out *ItemStock
	err := uc.read(ctx, func(_ repository.MovementRepository, stockRepo repository.StockRepository, itemRepo repository.ItemRepository) error {
		item, err := itemRepo.GetByID(ctx, itemID)
		if err != nil || item == nil {
			return err
		}
		stocks, err := stockRepo.ListByItem(ctx, itemID)
		if err != nil {
			return err
		}
		out = &ItemStock{Item: item, Stocks: stocks}
		return nil
	})
	return out, err
}

// ListAnomalies registros de stock por debajo de cero.
func (uc *StockQueryUseCase) ListAnomalies(ctx context.Context, limit, offset int) ([]*entity.StockAnomaly, error) {
	limit, offset = clampPage(limit, offset, 50, 200)
	var list []*entity.StockAnomaly
	err := uc.read(ctx, func(_ repository.MovementRepository, stockRepo repository.StockRepository, _ repository.ItemRepository) error {
		l, err := stockRepo.ListNegative(ctx, limit, offset)
		list = l
		return err
	})
	return list, err
}

// ListMovements historial filtrado, más reciente primero.
func (uc *StockQueryUseCase) ListMovements(ctx context.Context, filter entity.MovementFilter) ([]*entity.Movement, error) {
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset, 20, 100)
	if err := validRange(filter); err != nil {
		return nil, err
	}
	var list []*entity.Movement
	err := uc.read(ctx, func(movRepo repository.MovementRepository, _ repository.StockRepository, _ repository.ItemRepository) error {
		l, err := movRepo.List(ctx, filter)
		list = l
		return err
	})
	return list, err
}

// SummarizeMovements neto (entradas menos salidas) por ítem y ubicación sobre el historial filtrado.
func (uc *StockQueryUseCase) SummarizeMovements(ctx context.Context, filter entity.MovementFilter) ([]*entity.NetMovement, error) {
	if err := validRange(filter); err != nil {
		return nil, err
	}
	var list []*entity.NetMovement
	err := uc.read(ctx, func(movRepo repository.MovementRepository, _ repository.StockRepository, _ repository.ItemRepository) error {
		l, err := movRepo.Summarize(ctx, filter)
		list = l
		return err
	})
	return list, err
}

// HistoryWindow convierte un día (YYYY-MM-DD), mes (YYYY-MM) o año (YYYY) en un rango [desde, hasta].
// Se admite uno solo; si no se indica ninguno devuelve nil, nil.
func HistoryWindow(day, month, year string) (from, to *time.Time, err error) {
	var (
		start time.Time
		next  func(time.Time) time.Time
		set   int
	)
	if day = strings.TrimSpace(day); day != "" {
		set++
		start, err = time.Parse(time.DateOnly, day)
		next = func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
	}
	if month = strings.TrimSpace(month); month != "" {
		set++
		start, err = time.Parse(entity.PeriodLayout, month)
		next = func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	}
	if year = strings.TrimSpace(year); year != "" {
		set++
		start, err = time.Parse("2006", year)
		next = func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }
	}
	switch {
	case set == 0:
		return nil, nil, nil
	case set > 1:
		return nil, nil, domain.NewValidationError(domain.StepValidate, "indique solo uno de day, month o year")
	case err != nil:
		return nil, nil, domain.NewValidationError(domain.StepValidate, "fecha inválida: "+err.Error())
	}
	end := next(start).Add(-time.Nanosecond)
	return &start, &end, nil
}

// ArtistSummary cantidad total por artista sumando todas las ubicaciones.
func (uc *StockQueryUseCase) ArtistSummary(ctx context.Context) ([]entity.ArtistTotal, error) {
	var totals []entity.ArtistTotal
	err := uc.read(ctx, func(_ repository.MovementRepository, stockRepo repository.StockRepository, _ repository.ItemRepository) error {
		t, err := stockRepo.SumByArtist(ctx)
		totals = t
		return err
	})
	return totals, err
}

func validRange(f entity.MovementFilter) error {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return domain.NewValidationError(domain.StepValidate, "el rango de fechas es inválido")
	}
	return nil
}

// clampPage aplica el límite por defecto y el máximo; offset negativo pasa a 0.
func clampPage(limit, offset, def, maxLimit int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, max(offset, 0)
}

func (uc *StockQueryUseCase) read(ctx context.Context, fn func(repository.MovementRepository, repository.StockRepository, repository.ItemRepository) error) error {
	if err := uc.txRunner.View(ctx, fn); err != nil {
		if de, ok := domain.AsError(err); ok {
			return de
		}
		return domain.NewStorageError("query", err)
	}
	return nil
}

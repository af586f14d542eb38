package inventory

import (
	"context"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el ledger: si fn devuelve error no queda ningún efecto visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error) error
	// View ejecuta consultas sin abrir una unidad de escritura; fn no debe mutar.
	View(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error) error
}

// Metrics puerto de métricas del ledger (implementado con Prometheus en infraestructura).
type Metrics interface {
	MovementApplied(direction entity.Direction, duplicated bool)
	MovementRejected(kind string)
	TransferFinished(outcome string)
	BatchFinished(succeeded, failed int)
}

// Resultados de un traslado para métricas.
const (
	TransferOutcomeOK       = "ok"
	TransferOutcomePartial  = "partial"
	TransferOutcomeRejected = "rejected"
	TransferOutcomeFailed   = "failed"
)

type noopMetrics struct{}

func (noopMetrics) MovementApplied(entity.Direction, bool) {}
func (noopMetrics) MovementRejected(string)                {}
func (noopMetrics) TransferFinished(string)                {}
func (noopMetrics) BatchFinished(int, int)                 {}

func metricsOrNoop(m Metrics) Metrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

package repository

import (
	"context"
	"time"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

// PeriodRepository aperturas mensuales del almacén de cantidades.
type PeriodRepository interface {
	// StartPeriod congela el stock actual como apertura de period y lo deja vigente.
	// Si el período ya existe o es anterior al vigente no cambia nada. Devuelve el período
	// vigente después de la llamada y si se creó.
	StartPeriod(ctx context.Context, period string, at time.Time) (*entity.Period, bool, error)
	// CurrentPeriod devuelve nil, nil si nunca se inició un período.
	CurrentPeriod(ctx context.Context) (*entity.Period, error)
	// PeriodOpenings devuelve nil, nil si el período no existe.
	PeriodOpenings(ctx context.Context, period string) ([]*entity.PeriodOpening, error)
}

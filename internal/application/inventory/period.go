package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

// PeriodUseCase apertura mensual: congela el stock al iniciar un mes para reportes de cierre.
type PeriodUseCase struct {
	periods repository.PeriodRepository
	log     zerolog.Logger
	now     func() time.Time
}

// NewPeriodUseCase construye el caso de uso.
func NewPeriodUseCase(periods repository.PeriodRepository, log zerolog.Logger) *PeriodUseCase {
	return &PeriodUseCase{
		periods: periods,
		log:     log.With().Str("component", "periods").Logger(),
		now:     time.Now,
	}
}

// PeriodStart resultado de iniciar un período.
type PeriodStart struct {
	Requested string         `json:"requested"`
	Current   *entity.Period `json:"current"`
	Created   bool           `json:"created"`
}

// StartPeriod inicia el período (YYYY-MM; vacío = mes actual). Un período existente o anterior
// al vigente no se reescribe: las aperturas ya congeladas no cambian.
func (uc *PeriodUseCase) StartPeriod(ctx context.Context, period string) (*PeriodStart, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		period = uc.now().Format(entity.PeriodLayout)
	}
	if !entity.ValidPeriod(period) {
		return nil, domain.NewValidationError(domain.StepValidate, "period debe tener formato YYYY-MM")
	}
	current, created, err := uc.periods.StartPeriod(ctx, period, uc.now())
	if err != nil {
		return nil, domain.NewStorageError(domain.StepRecord, err)
	}
	if created {
		uc.log.Info().Str("period", period).Msg("período iniciado")
	} else {
		uc.log.Debug().Str("period", period).Msg("período existente o anterior al vigente, sin cambios")
	}
	return &PeriodStart{Requested: period, Current: current, Created: created}, nil
}

// Openings aperturas de un período; vacío = período vigente. domain.ErrNotFound si no existe.
func (uc *PeriodUseCase) Openings(ctx context.Context, period string) (string, []*entity.PeriodOpening, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		current, err := uc.periods.CurrentPeriod(ctx)
		if err != nil {
			return "", nil, domain.NewStorageError("query", err)
		}
		if current == nil {
			return "", nil, domain.ErrNotFound
		}
		period = current.Period
	}
	if !entity.ValidPeriod(period) {
		return "", nil, domain.NewValidationError(domain.StepValidate, "period debe tener formato YYYY-MM")
	}
	list, err := uc.periods.PeriodOpenings(ctx, period)
	if err != nil {
		return "", nil, domain.NewStorageError("query", err)
	}
	if list == nil {
		return "", nil, domain.ErrNotFound
	}
	return period, list, nil
}

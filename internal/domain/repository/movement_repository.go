package repository

import (
	"context"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

// MovementRepository puerto del ledger de movimientos (solo inserción).
type MovementRepository interface {
	// LockKey serializa dentro de la transacción a los llamadores con la misma clave de idempotencia.
	LockKey(ctx context.Context, idempotencyKey string) error
	// GetByIdempotencyKey devuelve nil, nil si la clave no fue aplicada.
	GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (*entity.Movement, error)
	// Create inserta el movimiento; devuelve domain.ErrDuplicate si la clave ya existe.
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	List(ctx context.Context, filter entity.MovementFilter) ([]*entity.Movement, error)
	// EventState devuelve nil, nil si no hay movimientos con ese evento.
	EventState(ctx context.Context, eventID string) (*entity.EventState, error)
	// Summarize neto por ítem y ubicación sobre el historial filtrado (ignora Limit/Offset).
	Summarize(ctx context.Context, filter entity.MovementFilter) ([]*entity.NetMovement, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

// ScopeRepository capacidad scope_for(user_id): política de ubicaciones administrada externamente.
// Devuelve nil, nil si el usuario no tiene alcance configurado.
type ScopeRepository interface {
	ScopeFor(ctx context.Context, userID string) (*entity.LocationScope, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

var _ repository.ScopeRepository = (*ScopeRepo)(nil)

// ScopeRepo lee la política de ubicaciones por usuario (location_scopes).
type ScopeRepo struct {
	q Querier
}

// NewScopeRepository construye el adaptador.
func NewScopeRepository(q Querier) *ScopeRepo {
	return &ScopeRepo{q: q}
}

// ScopeFor devuelve el alcance del usuario; nil, nil si no tiene uno configurado.
func (r *ScopeRepo) ScopeFor(ctx context.Context, userID string) (*entity.LocationScope, error) {
	var s entity.LocationScope
	err := r.q.QueryRow(ctx, `
		SELECT user_id, primary_location, sub_locations
		FROM location_scopes WHERE user_id = $1`, userID,
	).Scan(&s.UserID, &s.PrimaryLocation, &s.SubLocations)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scope for user: %w", err)
	}
	return &s, nil
}

// Upsert guarda o reemplaza el alcance de un usuario.
func (r *ScopeRepo) Upsert(ctx context.Context, s entity.LocationScope) error {
	subs := s.SubLocations
	if subs == nil {
		subs = []string{}
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO location_scopes (user_id, primary_location, sub_locations, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE
		SET primary_location = EXCLUDED.primary_location,
		    sub_locations = EXCLUDED.sub_locations,
		    updated_at = now()`,
		s.UserID, s.PrimaryLocation, subs,
	)
	if err != nil {
		return fmt.Errorf("upsert scope: %w", err)
	}
	return nil
}

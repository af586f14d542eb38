// Package cache guarda en Redis los alcances de ubicación leídos del almacén de políticas.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

var _ repository.ScopeRepository = (*ScopeCache)(nil)

const scopeKeyPrefix = "album-inventory:scope:"

// scopeEntry valor guardado; Missing distingue "sin alcance" de "no cacheado".
type scopeEntry struct {
	Missing         bool     `json:"missing,omitempty"`
	PrimaryLocation string   `json:"primary_location,omitempty"`
	SubLocations    []string `json:"sub_locations,omitempty"`
}

// ScopeCache cache-aside sobre un ScopeRepository. Si Redis falla se consulta la fuente directamente.
type ScopeCache struct {
	client *redis.Client
	source repository.ScopeRepository
	ttl    time.Duration
	log    zerolog.Logger
}

// NewScopeCache construye la caché. ttl <= 0 usa 5 minutos.
func NewScopeCache(client *redis.Client, source repository.ScopeRepository, ttl time.Duration, log zerolog.Logger) *ScopeCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ScopeCache{
		client: client,
		source: source,
		ttl:    ttl,
		log:    log.With().Str("component", "scope_cache").Logger(),
	}
}

// ScopeFor devuelve el alcance cacheado o lo lee de la fuente y lo guarda.
func (c *ScopeCache) ScopeFor(ctx context.Context, userID string) (*entity.LocationScope, error) {
	key := scopeKeyPrefix + userID
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var e scopeEntry
		if jerr := json.Unmarshal(raw, &e); jerr == nil {
			if e.Missing {
				return nil, nil
			}
			return &entity.LocationScope{UserID: userID, PrimaryLocation: e.PrimaryLocation, SubLocations: e.SubLocations}, nil
		}
		c.log.Warn().Str("user_id", userID).Msg("entrada de caché ilegible, se ignora")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("user_id", userID).Msg("redis no disponible, se lee el alcance de la fuente")
		return c.source.ScopeFor(ctx, userID)
	}

	scope, err := c.source.ScopeFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	e := scopeEntry{Missing: scope == nil}
	if scope != nil {
		e.PrimaryLocation = scope.PrimaryLocation
		e.SubLocations = scope.SubLocations
	}
	if b, jerr := json.Marshal(e); jerr == nil {
		if serr := c.client.Set(ctx, key, b, c.ttl).Err(); serr != nil {
			c.log.Warn().Err(serr).Str("user_id", userID).Msg("no se pudo guardar el alcance en caché")
		}
	}
	return scope, nil
}

// Invalidate borra el alcance cacheado de un usuario (tras cambiar su política).
func (c *ScopeCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, scopeKeyPrefix+userID).Err()
}

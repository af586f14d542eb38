// Package memory implementa los puertos de inventario en memoria: un mutex global serializa
// las transacciones y cada una trabaja sobre una copia que solo se publica al confirmar.
// Las lecturas comparten el estado publicado bajo el lock de lectura, sin copiarlo.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/album-inventory/internal/application/inventory"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)
var _ repository.ScopeRepository = (*Store)(nil)

type stockKey struct {
	itemID   string
	location string
}

type state struct {
	items      map[string]*entity.Item
	byIdentity map[string]string // ItemIdentity.Key() -> item id
	stock      map[stockKey]*entity.Stock
	movements  []*entity.Movement
	byKey      map[string]*entity.Movement
}

func newState() *state {
	return &state{
		items:      make(map[string]*entity.Item),
		byIdentity: make(map[string]string),
		stock:      make(map[stockKey]*entity.Stock),
		byKey:      make(map[string]*entity.Movement),
	}
}

// clone copia lo mutable; los movimientos son inmutables y se comparten.
func (s *state) clone() *state {
	c := &state{
		items:      make(map[string]*entity.Item, len(s.items)),
		byIdentity: maps.Clone(s.byIdentity),
		stock:      make(map[stockKey]*entity.Stock, len(s.stock)),
		movements:  slices.Clone(s.movements),
		byKey:      maps.Clone(s.byKey),
	}
	for id, it := range s.items {
		cp := *it
		c.items[id] = &cp
	}
	for k, st := range s.stock {
		cp := *st
		c.stock[k] = &cp
	}
	return c
}

// Store almacén transaccional en memoria (STORE_DRIVER=memory y tests).
type Store struct {
	mu     sync.RWMutex
	st     *state
	scopes sync.Map // user id -> entity.LocationScope
	now    func() time.Time

	periods       map[string]*periodSnapshot
	currentPeriod string
}

type periodSnapshot struct {
	period   entity.Period
	openings []*entity.PeriodOpening
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState(), now: time.Now, periods: make(map[string]*periodSnapshot)}
}

// Run ejecuta fn sobre una copia del estado y la publica solo si fn no devuelve error.
func (s *Store) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	tx := &tx{st: work, now: s.now}
	if err := fn(&MovementRepo{tx: tx}, &StockRepo{tx: tx}, &ItemRepo{tx: tx}); err != nil {
		return err
	}
	s.st = work
	return nil
}

// View ejecuta fn sobre el estado publicado sin copiarlo. Los repositorios de lectura
// devuelven copias, así que fn no puede alterar el estado.
func (s *Store) View(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx := &tx{st: s.st, now: s.now}
	return fn(&MovementRepo{tx: tx}, &StockRepo{tx: tx}, &ItemRepo{tx: tx})
}

// SetScope registra la política de ubicaciones de un usuario.
func (s *Store) SetScope(scope entity.LocationScope) {
	s.scopes.Store(scope.UserID, scope)
}

// ScopeFor devuelve la política del usuario o nil si no tiene.
func (s *Store) ScopeFor(_ context.Context, userID string) (*entity.LocationScope, error) {
	v, ok := s.scopes.Load(userID)
	if !ok {
		return nil, nil
	}
	scope := v.(entity.LocationScope)
	scope.SubLocations = slices.Clone(scope.SubLocations)
	return &scope, nil
}

type tx struct {
	st  *state
	now func() time.Time
}

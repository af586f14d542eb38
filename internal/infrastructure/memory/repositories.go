package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/barcode"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

var (
	_ repository.ItemRepository     = (*ItemRepo)(nil)
	_ repository.StockRepository    = (*StockRepo)(nil)
	_ repository.MovementRepository = (*MovementRepo)(nil)
)

// ItemRepo ítems dentro de una transacción en memoria.
type ItemRepo struct{ tx *tx }

func (r *ItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	it, ok := r.tx.st.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *ItemRepo) GetByIdentity(ctx context.Context, identity entity.ItemIdentity) (*entity.Item, error) {
	id, ok := r.tx.st.byIdentity[identity.Key()]
	if !ok {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *ItemRepo) Upsert(ctx context.Context, identity entity.ItemIdentity) (*entity.Item, error) {
	if it, _ := r.GetByIdentity(ctx, identity); it != nil {
		return it, nil
	}
	now := r.tx.now()
	it := &entity.Item{
		ID:           uuid.New().String(),
		ItemIdentity: identity.Normalize(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.tx.st.items[it.ID] = it
	r.tx.st.byIdentity[identity.Key()] = it.ID
	cp := *it
	return &cp, nil
}

func (r *ItemRepo) ListByBarcodeKey(_ context.Context, key string) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, it := range r.tx.st.items {
		if it.Barcode != "" && barcode.Key(it.Barcode) == key {
			cp := *it
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r *ItemRepo) SetBarcode(_ context.Context, itemID, code string) error {
	it, ok := r.tx.st.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	it.Barcode = code
	it.UpdatedAt = r.tx.now()
	return nil
}

// LockBarcode no hace nada: el mutex del Store ya serializa todas las transacciones.
func (r *ItemRepo) LockBarcode(context.Context, string) error { return nil }

// StockRepo cantidades dentro de una transacción en memoria.
type StockRepo struct{ tx *tx }

func (r *StockRepo) Get(_ context.Context, itemID, location string) (int, error) {
	if st, ok := r.tx.st.stock[stockKey{itemID, location}]; ok {
		return st.Quantity, nil
	}
	return 0, nil
}

// GetForUpdate crea la fila en 0 si falta; el bloqueo lo da el mutex del Store.
func (r *StockRepo) GetForUpdate(_ context.Context, itemID, location string) (int, error) {
	return r.row(itemID, location).Quantity, nil
}

func (r *StockRepo) Set(_ context.Context, itemID, location string, quantity int) error {
	st := r.row(itemID, location)
	st.Quantity = quantity
	st.UpdatedAt = r.tx.now()
	return nil
}

func (r *StockRepo) AddDelta(_ context.Context, itemID, location string, delta int) (int, error) {
	st := r.row(itemID, location)
	st.Quantity += delta
	st.UpdatedAt = r.tx.now()
	return st.Quantity, nil
}

func (r *StockRepo) ListByItem(_ context.Context, itemID string) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for k, st := range r.tx.st.stock {
		if k.itemID == itemID {
			cp := *st
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Location < list[j].Location })
	return list, nil
}

func (r *StockRepo) ListNegative(_ context.Context, limit, offset int) ([]*entity.StockAnomaly, error) {
	var list []*entity.StockAnomaly
	for _, st := range r.tx.st.stock {
		if st.Quantity >= 0 {
			continue
		}
		a := &entity.StockAnomaly{Stock: *st}
		if it, ok := r.tx.st.items[st.ItemID]; ok {
			a.Identity = it.ItemIdentity
		}
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Quantity != list[j].Quantity {
			return list[i].Quantity < list[j].Quantity
		}
		if list[i].ItemID != list[j].ItemID {
			return list[i].ItemID < list[j].ItemID
		}
		return list[i].Location < list[j].Location
	})
	return page(list, limit, offset), nil
}

func (r *StockRepo) SumByArtist(_ context.Context) ([]entity.ArtistTotal, error) {
	totals := make(map[string]int)
	for _, st := range r.tx.st.stock {
		if it, ok := r.tx.st.items[st.ItemID]; ok {
			totals[it.Artist] += st.Quantity
		}
	}
	list := make([]entity.ArtistTotal, 0, len(totals))
	for artist, qty := range totals {
		list = append(list, entity.ArtistTotal{Artist: artist, Quantity: qty})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Artist < list[j].Artist })
	return list, nil
}

func (r *StockRepo) row(itemID, location string) *entity.Stock {
	k := stockKey{itemID, location}
	st, ok := r.tx.st.stock[k]
	if !ok {
		st = &entity.Stock{ItemID: itemID, Location: location, UpdatedAt: r.tx.now()}
		r.tx.st.stock[k] = st
	}
	return st
}

// MovementRepo ledger dentro de una transacción en memoria.
type MovementRepo struct{ tx *tx }

// LockKey no hace nada: el mutex del Store ya serializa todas las transacciones.
func (r *MovementRepo) LockKey(context.Context, string) error { return nil }

func (r *MovementRepo) GetByIdempotencyKey(_ context.Context, key string) (*entity.Movement, error) {
	m, ok := r.tx.st.byKey[key]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *MovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if _, exists := r.tx.st.byKey[m.IdempotencyKey]; exists {
		return domain.ErrDuplicate
	}
	cp := *m
	r.tx.st.movements = append(r.tx.st.movements, &cp)
	r.tx.st.byKey[m.IdempotencyKey] = &cp
	return nil
}

func (r *MovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	for _, m := range r.tx.st.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// List recorre de más reciente a más antiguo (orden de inserción invertido).
func (r *MovementRepo) List(_ context.Context, f entity.MovementFilter) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for i := len(r.tx.st.movements) - 1; i >= 0; i-- {
		m := r.tx.st.movements[i]
		if !r.matches(m, f) {
			continue
		}
		cp := *m
		list = append(list, &cp)
	}
	return page(list, f.Limit, f.Offset), nil
}

func (r *MovementRepo) EventState(_ context.Context, eventID string) (*entity.EventState, error) {
	var state *entity.EventState
	returned := false
	for _, m := range r.tx.st.movements {
		if m.EventID != eventID {
			continue
		}
		if m.Direction == entity.DirectionIN {
			returned = true
			continue
		}
		if state == nil {
			state = &entity.EventState{EventID: eventID, ItemID: m.ItemID}
		}
		state.OutQuantity += m.Quantity
	}
	if state != nil {
		state.Open = !returned
	}
	return state, nil
}

func (r *MovementRepo) Summarize(_ context.Context, f entity.MovementFilter) ([]*entity.NetMovement, error) {
	nets := make(map[stockKey]*entity.NetMovement)
	for _, m := range r.tx.st.movements {
		if !r.matches(m, f) {
			continue
		}
		k := stockKey{m.ItemID, m.Location}
		n, ok := nets[k]
		if !ok {
			n = &entity.NetMovement{ItemID: m.ItemID, Location: m.Location}
			if it, found := r.tx.st.items[m.ItemID]; found {
				n.Identity = it.ItemIdentity
			}
			nets[k] = n
		}
		n.Net += m.Direction.Signed(m.Quantity)
	}
	list := make([]*entity.NetMovement, 0, len(nets))
	for _, n := range nets {
		list = append(list, n)
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Identity.Artist != b.Identity.Artist {
			return a.Identity.Artist < b.Identity.Artist
		}
		if a.Identity.AlbumVersion != b.Identity.AlbumVersion {
			return a.Identity.AlbumVersion < b.Identity.AlbumVersion
		}
		if a.Identity.Option != b.Identity.Option {
			return a.Identity.Option < b.Identity.Option
		}
		return a.Location < b.Location
	})
	return list, nil
}

func (r *MovementRepo) matches(m *entity.Movement, f entity.MovementFilter) bool {
	if f.ItemID != "" && m.ItemID != f.ItemID {
		return false
	}
	if f.Location != "" && m.Location != f.Location {
		return false
	}
	if f.From != nil && m.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && m.CreatedAt.After(*f.To) {
		return false
	}
	if f.EventID != "" && m.EventID != f.EventID {
		return false
	}
	if f.OpenEvents && (m.EventID == "" || m.Direction != entity.DirectionOUT || r.eventReturned(m.EventID)) {
		return false
	}
	if f.Artist != "" {
		it, ok := r.tx.st.items[m.ItemID]
		if !ok || it.Artist != f.Artist {
			return false
		}
	}
	return true
}

func (r *MovementRepo) eventReturned(eventID string) bool {
	for _, m := range r.tx.st.movements {
		if m.EventID == eventID && m.Direction == entity.DirectionIN {
			return true
		}
	}
	return false
}

func page[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la cantidad actual de un ítem en una ubicación; 0 si no hay fila (no la crea).
func (r *StockRepo) Get(ctx context.Context, itemID, location string) (int, error) {
	var qty int
	err := r.q.QueryRow(ctx,
		`SELECT quantity FROM stock WHERE item_id = $1 AND location = $2`,
		itemID, location,
	).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get stock: %w", err)
	}
	return qty, nil
}

// GetForUpdate crea la fila en 0 si no existe y la bloquea (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, itemID, location string) (int, error) {
	if _, err := r.q.Exec(ctx, `
		INSERT INTO stock (item_id, location, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (item_id, location) DO NOTHING`,
		itemID, location,
	); err != nil {
		return 0, fmt.Errorf("ensure stock row: %w", err)
	}
	var qty int
	err := r.q.QueryRow(ctx, `
		SELECT quantity FROM stock WHERE item_id = $1 AND location = $2
		FOR UPDATE`,
		itemID, location,
	).Scan(&qty)
	if err != nil {
		return 0, fmt.Errorf("get stock for update: %w", err)
	}
	return qty, nil
}

// Set inserta o reemplaza la cantidad.
func (r *StockRepo) Set(ctx context.Context, itemID, location string, quantity int) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock (item_id, location, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_id, location)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`,
		itemID, location, quantity,
	)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// AddDelta suma delta en un solo UPDATE (la fila queda bloqueada hasta el commit) y devuelve el resultado.
func (r *StockRepo) AddDelta(ctx context.Context, itemID, location string, delta int) (int, error) {
	var qty int
	err := r.q.QueryRow(ctx, `
		INSERT INTO stock (item_id, location, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_id, location)
		DO UPDATE SET quantity = stock.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING quantity`,
		itemID, location, delta,
	).Scan(&qty)
	if err != nil {
		return 0, fmt.Errorf("add stock delta: %w", err)
	}
	return qty, nil
}

// ListByItem cantidades de un ítem en todas sus ubicaciones.
func (r *StockRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Stock, error) {
	rows, err := r.q.Query(ctx, `
		SELECT item_id, location, quantity, updated_at
		FROM stock WHERE item_id = $1 ORDER BY location`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock by item: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ItemID, &s.Location, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListNegative registros con cantidad negativa junto con la identidad del ítem.
func (r *StockRepo) ListNegative(ctx context.Context, limit, offset int) ([]*entity.StockAnomaly, error) {
	rows, err := r.q.Query(ctx, `
		SELECT s.item_id, s.location, s.quantity, s.updated_at,
		       i.artist, i.category, i.album_version, i.option
		FROM stock s JOIN items i ON i.id = s.item_id
		WHERE s.quantity < 0
		ORDER BY s.quantity, s.item_id, s.location
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list negative stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAnomaly
	for rows.Next() {
		var a entity.StockAnomaly
		if err := rows.Scan(&a.ItemID, &a.Location, &a.Quantity, &a.UpdatedAt,
			&a.Identity.Artist, &a.Identity.Category, &a.Identity.AlbumVersion, &a.Identity.Option); err != nil {
			return nil, fmt.Errorf("scan anomaly: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// SumByArtist total por artista en todas las ubicaciones.
func (r *StockRepo) SumByArtist(ctx context.Context) ([]entity.ArtistTotal, error) {
	rows, err := r.q.Query(ctx, `
		SELECT i.artist, COALESCE(SUM(s.quantity), 0)
		FROM items i JOIN stock s ON s.item_id = i.id
		GROUP BY i.artist ORDER BY i.artist`)
	if err != nil {
		return nil, fmt.Errorf("sum stock by artist: %w", err)
	}
	defer rows.Close()
	var list []entity.ArtistTotal
	for rows.Next() {
		var t entity.ArtistTotal
		if err := rows.Scan(&t.Artist, &t.Quantity); err != nil {
			return nil, fmt.Errorf("scan artist total: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/barcode"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, artist, category, album_version, option, COALESCE(barcode, ''), created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// GetByID obtiene un ítem por ID; nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// GetByIdentity obtiene un ítem por su tupla normalizada; nil si no existe.
func (r *ItemRepo) GetByIdentity(ctx context.Context, identity entity.ItemIdentity) (*entity.Item, error) {
	n := identity.Normalize()
	it, err := scanItem(r.q.QueryRow(ctx, `
		SELECT `+itemColumns+` FROM items
		WHERE artist = $1 AND category = $2 AND album_version = $3 AND option = $4`,
		n.Artist, n.Category, n.AlbumVersion, n.Option,
	))
	if err != nil {
		return nil, fmt.Errorf("get item by identity: %w", err)
	}
	return it, nil
}

// Upsert crea el ítem si no existe. El DO UPDATE vacío permite RETURNING sin tocar el código de barras.
func (r *ItemRepo) Upsert(ctx context.Context, identity entity.ItemIdentity) (*entity.Item, error) {
	n := identity.Normalize()
	it, err := scanItem(r.q.QueryRow(ctx, `
		INSERT INTO items (id, artist, category, album_version, option, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (artist, category, album_version, option)
		DO UPDATE SET artist = EXCLUDED.artist
		RETURNING `+itemColumns,
		uuid.New().String(), n.Artist, n.Category, n.AlbumVersion, n.Option,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert item: %w", err)
	}
	return it, nil
}

// ListByBarcodeKey ítems cuyo barcode_key coincide.
func (r *ItemRepo) ListByBarcodeKey(ctx context.Context, key string) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+itemColumns+` FROM items
		WHERE barcode_key = $1 ORDER BY created_at`, key)
	if err != nil {
		return nil, fmt.Errorf("list items by barcode: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Artist, &it.Category, &it.AlbumVersion, &it.Option,
			&it.Barcode, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// SetBarcode guarda el código tal cual y su clave de comparación.
func (r *ItemRepo) SetBarcode(ctx context.Context, itemID, code string) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE items SET barcode = $2, barcode_key = $3, updated_at = now()
		WHERE id = $1`,
		itemID, code, barcode.Key(code),
	)
	if err != nil {
		return fmt.Errorf("set barcode: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LockBarcode toma un advisory lock de transacción sobre la clave del código. Varios ítems
// pueden compartir código, así que no hay restricción única que serialice la verificación de conflicto.
func (r *ItemRepo) LockBarcode(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended('barcode:' || $1, 0))`, key); err != nil {
		return fmt.Errorf("lock barcode: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Artist, &it.Category, &it.AlbumVersion, &it.Option,
		&it.Barcode, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

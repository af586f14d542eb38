package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, item_id, location, direction, quantity, memo, actor, idempotency_key,
	opening_quantity, closing_quantity, from_location, to_location, event_id, created_at`

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// LockKey toma un advisory lock de transacción sobre la clave; se libera en Commit/Rollback.
func (r *MovementRepo) LockKey(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return fmt.Errorf("lock idempotency key: %w", err)
	}
	return nil
}

// GetByIdempotencyKey obtiene el movimiento aplicado con esa clave; nil si no existe.
func (r *MovementRepo) GetByIdempotencyKey(ctx context.Context, key string) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM movements WHERE idempotency_key = $1`, key))
	if err != nil {
		return nil, fmt.Errorf("get movement by key: %w", err)
	}
	return m, nil
}

// Create persiste un movimiento. La restricción única sobre idempotency_key se traduce a domain.ErrDuplicate.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO movements (`+movementColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		m.ID, m.ItemID, m.Location, string(m.Direction), m.Quantity, m.Memo, m.Actor, m.IdempotencyKey,
		m.OpeningQuantity, m.ClosingQuantity, m.FromLocation, m.ToLocation, m.EventID, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM movements WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos filtrados, más recientes primero.
func (r *MovementRepo) List(ctx context.Context, f entity.MovementFilter) ([]*entity.Movement, error) {
	from, where, args := movementWhere(f, false)
	pos := len(args) + 1
	query := `SELECT ` + prefixed("m", movementColumns) + from + where +
		fmt.Sprintf(" ORDER BY m.created_at DESC, m.id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// EventState agrega las salidas del evento y verifica si existe una devolución.
func (r *MovementRepo) EventState(ctx context.Context, eventID string) (*entity.EventState, error) {
	var state entity.EventState
	var itemID *string
	err := r.q.QueryRow(ctx, `
		SELECT MIN(item_id) FILTER (WHERE direction = 'OUT'),
		       COALESCE(SUM(quantity) FILTER (WHERE direction = 'OUT'), 0),
		       COALESCE(NOT bool_or(direction = 'IN'), false)
		FROM movements WHERE event_id = $1`, eventID,
	).Scan(&itemID, &state.OutQuantity, &state.Open)
	if err != nil {
		return nil, fmt.Errorf("event state: %w", err)
	}
	if itemID == nil {
		return nil, nil
	}
	state.EventID, state.ItemID = eventID, *itemID
	return &state, nil
}

// Summarize suma entradas menos salidas por ítem y ubicación sobre el historial filtrado.
func (r *MovementRepo) Summarize(ctx context.Context, f entity.MovementFilter) ([]*entity.NetMovement, error) {
	_, where, args := movementWhere(f, true)
	query := `
		SELECT m.item_id, i.artist, i.category, i.album_version, i.option, m.location,
		       SUM(CASE WHEN m.direction = 'IN' THEN m.quantity ELSE -m.quantity END)
		FROM movements m JOIN items i ON i.id = m.item_id` + where + `
		GROUP BY m.item_id, i.artist, i.category, i.album_version, i.option, m.location
		ORDER BY i.artist, i.album_version, i.option, m.location`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("summarize movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.NetMovement
	for rows.Next() {
		var n entity.NetMovement
		if err := rows.Scan(&n.ItemID, &n.Identity.Artist, &n.Identity.Category, &n.Identity.AlbumVersion,
			&n.Identity.Option, &n.Location, &n.Net); err != nil {
			return nil, fmt.Errorf("scan net movement: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// movementWhere arma el FROM y el WHERE del historial. Si joined es falso y se filtra por artista
// agrega el JOIN a items (alias i).
func movementWhere(f entity.MovementFilter, joined bool) (from, where string, args []any) {
	from = ` FROM movements m`
	add := func(cond string, v any) {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		args = append(args, v)
		where += fmt.Sprintf(cond, len(args))
	}
	if f.Artist != "" {
		if !joined {
			from += ` JOIN items i ON i.id = m.item_id`
		}
		add("i.artist = $%d", f.Artist)
	}
	if f.ItemID != "" {
		add("m.item_id = $%d", f.ItemID)
	}
	if f.Location != "" {
		add("m.location = $%d", f.Location)
	}
	if f.From != nil {
		add("m.created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("m.created_at <= $%d", *f.To)
	}
	if f.EventID != "" {
		add("m.event_id = $%d", f.EventID)
	}
	if f.OpenEvents {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += `m.event_id <> '' AND m.direction = 'OUT' AND NOT EXISTS (
			SELECT 1 FROM movements r WHERE r.event_id = m.event_id AND r.direction = 'IN')`
	}
	return from, where, args
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var direction string
	err := row.Scan(&m.ID, &m.ItemID, &m.Location, &direction, &m.Quantity, &m.Memo, &m.Actor, &m.IdempotencyKey,
		&m.OpeningQuantity, &m.ClosingQuantity, &m.FromLocation, &m.ToLocation, &m.EventID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	m.Direction = entity.Direction(direction)
	return &m, nil
}

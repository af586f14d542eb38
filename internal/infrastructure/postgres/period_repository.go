package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

var _ repository.PeriodRepository = (*PeriodRepo)(nil)

// PeriodRepo aperturas mensuales sobre PostgreSQL.
type PeriodRepo struct {
	pool *pgxpool.Pool
}

// NewPeriodRepository construye el adaptador de períodos.
func NewPeriodRepository(pool *pgxpool.Pool) *PeriodRepo {
	return &PeriodRepo{pool: pool}
}

// StartPeriod copia la tabla stock a period_openings en la misma transacción que registra el período.
func (r *PeriodRepo) StartPeriod(ctx context.Context, period string, at time.Time) (*entity.Period, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended('periods', 0))`); err != nil {
		return nil, false, fmt.Errorf("lock periods: %w", err)
	}
	current, err := currentPeriod(ctx, tx)
	if err != nil {
		return nil, false, err
	}
	if current != nil && period <= current.Period {
		return current, false, nil
	}
	if _, err := tx.Exec(ctx, `INSERT INTO periods (period, created_at) VALUES ($1, $2)`, period, at); err != nil {
		return nil, false, fmt.Errorf("create period: %w", err)
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO period_openings (period, item_id, location, quantity)
		SELECT $1, item_id, location, quantity FROM stock`, period); err != nil {
		return nil, false, fmt.Errorf("snapshot stock: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit transaction: %w", err)
	}
	return &entity.Period{Period: period, CreatedAt: at}, true, nil
}

// CurrentPeriod el período más reciente; nil si no hay ninguno.
func (r *PeriodRepo) CurrentPeriod(ctx context.Context) (*entity.Period, error) {
	return currentPeriod(ctx, r.pool)
}

// PeriodOpenings aperturas del período con la identidad del ítem; nil si el período no existe.
func (r *PeriodRepo) PeriodOpenings(ctx context.Context, period string) ([]*entity.PeriodOpening, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM periods WHERE period = $1)`, period).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check period: %w", err)
	}
	if !exists {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT o.item_id, i.artist, i.category, i.album_version, i.option, o.location, o.quantity
		FROM period_openings o JOIN items i ON i.id = o.item_id
		WHERE o.period = $1
		ORDER BY o.item_id, o.location`, period)
	if err != nil {
		return nil, fmt.Errorf("list period openings: %w", err)
	}
	defer rows.Close()
	list := []*entity.PeriodOpening{}
	for rows.Next() {
		o := &entity.PeriodOpening{Period: period}
		if err := rows.Scan(&o.ItemID, &o.Identity.Artist, &o.Identity.Category, &o.Identity.AlbumVersion,
			&o.Identity.Option, &o.Location, &o.Quantity); err != nil {
			return nil, fmt.Errorf("scan period opening: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func currentPeriod(ctx context.Context, q Querier) (*entity.Period, error) {
	var p entity.Period
	err := q.QueryRow(ctx, `SELECT period, created_at FROM periods ORDER BY period DESC LIMIT 1`).
		Scan(&p.Period, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("current period: %w", err)
	}
	return &p, nil
}

package inventory_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/album-inventory/internal/application/inventory"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
	"github.com/jhoicas/album-inventory/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var errStorageDown = errors.New("almacenamiento no disponible")

// flakyRunner envuelve el store en memoria y hace fallar la inserción de movimientos
// cuya clave termina en failSuffix mientras failing esté activo.
type flakyRunner struct {
	*memory.Store
	failSuffix string
	failing    atomic.Bool
}

func (r *flakyRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
) error) error {
	return r.Store.Run(ctx, func(m repository.MovementRepository, s repository.StockRepository, i repository.ItemRepository) error {
		return fn(&flakyMovements{MovementRepository: m, runner: r}, s, i)
	})
}

type flakyMovements struct {
	repository.MovementRepository
	runner *flakyRunner
}

func (m *flakyMovements) Create(ctx context.Context, mov *entity.Movement) error {
	if m.runner.failing.Load() && strings.HasSuffix(mov.IdempotencyKey, m.runner.failSuffix) {
		return errStorageDown
	}
	return m.MovementRepository.Create(ctx, mov)
}

type fixture struct {
	store     *memory.Store
	runner    inventory.TxRunner
	barcodes  *inventory.BarcodeResolver
	ledger    *inventory.ApplyMovementUseCase
	transfers *inventory.TransferUseCase
	bulk      *inventory.BulkTransferUseCase
	queries   *inventory.StockQueryUseCase
}

func newFixtureWithRunner(store *memory.Store, runner inventory.TxRunner, concurrency int) *fixture {
	log := zerolog.Nop()
	barcodes := inventory.NewBarcodeResolver(runner)
	ledger := inventory.NewApplyMovementUseCase(runner, barcodes, nil, log)
	transfers := inventory.NewTransferUseCase(ledger, barcodes, nil, log)
	return &fixture{
		store:     store,
		runner:    runner,
		barcodes:  barcodes,
		ledger:    ledger,
		transfers: transfers,
		bulk:      inventory.NewBulkTransferUseCase(transfers, nil, log, concurrency, 0),
		queries:   inventory.NewStockQueryUseCase(runner),
	}
}

func newFixture() *fixture {
	store := memory.NewStore()
	return newFixtureWithRunner(store, store, 1)
}

func newFlakyFixture(suffix string) (*fixture, *flakyRunner) {
	store := memory.NewStore()
	runner := &flakyRunner{Store: store, failSuffix: suffix}
	return newFixtureWithRunner(store, runner, 1), runner
}

var admin = entity.Session{UserID: "admin-1", Role: entity.RoleFullAdmin}

func album(artist, version string) entity.ItemIdentity {
	return entity.ItemIdentity{Artist: artist, Category: entity.CategoryAlbum, AlbumVersion: version}
}

// seed registra una entrada y devuelve el ID del ítem.
func (f *fixture) seed(t *testing.T, item entity.ItemIdentity, location string, qty int) string {
	t.Helper()
	res, err := f.ledger.Apply(context.Background(), inventory.MovementInput{
		Item:      item,
		Location:  location,
		Direction: entity.DirectionIN,
		Quantity:  qty,
		Memo:      "carga inicial",
		Actor:     admin.UserID,
	})
	require.NoError(t, err)
	return res.ItemID
}

func (f *fixture) qty(t *testing.T, itemID, location string) int {
	t.Helper()
	q, err := f.queries.GetQuantity(context.Background(), itemID, location)
	require.NoError(t, err)
	return q
}

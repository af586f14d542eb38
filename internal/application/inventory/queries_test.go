package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/album-inventory/internal/application/inventory"
	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

func TestQueries_HistorialYResumen(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.seed(t, album("Artist1", "V1"), "A", 5)
	f.seed(t, album("Artist2", "V1"), "A", 2)
	_, err := f.transfers.Transfer(ctx, admin, inventory.TransferInput{
		ItemID: a, FromLocation: "A", ToLocation: "B", Quantity: 1, Memo: "m",
	})
	require.NoError(t, err)

	movs, err := f.queries.ListMovements(ctx, entity.MovementFilter{ItemID: a})
	require.NoError(t, err)
	require.Len(t, movs, 3)
	assert.Equal(t, entity.DirectionIN, movs[0].Direction, "más reciente primero")
	assert.Equal(t, "B", movs[0].Location)

	byArtist, err := f.queries.ListMovements(ctx, entity.MovementFilter{Artist: "Artist2"})
	require.NoError(t, err)
	assert.Len(t, byArtist, 1)

	totals, err := f.queries.ArtistSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.ArtistTotal{{Artist: "Artist1", Quantity: 5}, {Artist: "Artist2", Quantity: 2}}, totals)

	is, err := f.queries.GetItemStock(ctx, a)
	require.NoError(t, err)
	assert.Len(t, is.Stocks, 2)
}

func TestQueries_RangoDeFechasInvalido(t *testing.T) {
	f := newFixture()
	from := time.Now()
	to := from.Add(-time.Hour)
	_, err := f.queries.ListMovements(context.Background(), entity.MovementFilter{From: &from, To: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQueries_ItemInexistente(t *testing.T) {
	f := newFixture()
	is, err := f.queries.GetItemStock(context.Background(), "nada")
	require.NoError(t, err)
	assert.Nil(t, is)
}

func TestQueries_ResumenNetoPorItemYUbicacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.seed(t, album("Artist1", "V1"), "A", 5)
	b := f.seed(t, album("Artist2", "V1"), "A", 2)
	_, err := f.transfers.Transfer(ctx, admin, inventory.TransferInput{
		ItemID: a, FromLocation: "A", ToLocation: "B", Quantity: 2, Memo: "m",
	})
	require.NoError(t, err)

	nets, err := f.queries.SummarizeMovements(ctx, entity.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, nets, 3)
	assert.Equal(t, a, nets[0].ItemID)
	assert.Equal(t, "A", nets[0].Location)
	assert.Equal(t, 3, nets[0].Net)
	assert.Equal(t, "B", nets[1].Location)
	assert.Equal(t, 2, nets[1].Net)
	assert.Equal(t, b, nets[2].ItemID)
	assert.Equal(t, "Artist2", nets[2].Identity.Artist)

	onlyB, err := f.queries.SummarizeMovements(ctx, entity.MovementFilter{Location: "B"})
	require.NoError(t, err)
	require.Len(t, onlyB, 1)
	assert.Equal(t, 2, onlyB[0].Net)
}

func TestHistoryWindow_DiaMesAnio(t *testing.T) {
	from, to, err := inventory.HistoryWindow("", "2026-02", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *from)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), *to)

	from, to, err = inventory.HistoryWindow("2026-02-28", "", "")
	require.NoError(t, err)
	assert.Equal(t, 28, from.Day())
	assert.Equal(t, 23, to.Hour())

	from, _, err = inventory.HistoryWindow("", "", "2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, from.Year())

	from, to, err = inventory.HistoryWindow("", "", "")
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)

	_, _, err = inventory.HistoryWindow("2026-02-01", "2026-02", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = inventory.HistoryWindow("", "2026-2", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQueries_AnomaliasLimiteNoPositivo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.seed(t, album("Artist1", "V1"), "A", 1)
	_, err := f.ledger.Apply(ctx, inventory.MovementInput{
		ItemID: a, Location: "A", Direction: entity.DirectionOUT, Quantity: 3, Memo: "venta",
	})
	require.NoError(t, err)

	for _, limit := range []int{0, -1} {
		list, err := f.queries.ListAnomalies(ctx, limit, -5)
		require.NoError(t, err)
		assert.Len(t, list, 1, "limit %d usa el valor por defecto", limit)
	}
}

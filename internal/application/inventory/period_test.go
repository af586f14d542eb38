package inventory_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/album-inventory/internal/application/inventory"
	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

func TestPeriod_AperturaCongelaStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	periods := inventory.NewPeriodUseCase(f.store, zerolog.Nop())
	a := f.seed(t, album("Artist1", "V1"), "A", 5)

	res, err := periods.StartPeriod(ctx, "2026-03")
	require.NoError(t, err)
	assert.True(t, res.Created)
	require.NotNil(t, res.Current)
	assert.Equal(t, "2026-03", res.Current.Period)

	_, err = f.ledger.Apply(ctx, inventory.MovementInput{
		ItemID: a, Location: "A", Direction: entity.DirectionOUT, Quantity: 2, Memo: "venta",
	})
	require.NoError(t, err)

	period, openings, err := periods.Openings(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-03", period)
	require.Len(t, openings, 1)
	assert.Equal(t, 5, openings[0].Quantity, "la apertura no sigue a los movimientos posteriores")
	assert.Equal(t, "Artist1", openings[0].Identity.Artist)
	assert.Equal(t, 3, f.qty(t, a, "A"))
}

func TestPeriod_ExistenteOAnteriorNoSeReescribe(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	periods := inventory.NewPeriodUseCase(f.store, zerolog.Nop())
	a := f.seed(t, album("Artist1", "V1"), "A", 5)

	_, err := periods.StartPeriod(ctx, "2026-03")
	require.NoError(t, err)
	f.seed(t, album("Artist1", "V1"), "A", 1)

	again, err := periods.StartPeriod(ctx, "2026-03")
	require.NoError(t, err)
	assert.False(t, again.Created)

	older, err := periods.StartPeriod(ctx, "2026-02")
	require.NoError(t, err)
	assert.False(t, older.Created)
	assert.Equal(t, "2026-03", older.Current.Period, "el período vigente se mantiene")

	_, openings, err := periods.Openings(ctx, "2026-03")
	require.NoError(t, err)
	require.Len(t, openings, 1)
	assert.Equal(t, 5, openings[0].Quantity)

	_, _, err = periods.Openings(ctx, "2026-02")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 6, f.qty(t, a, "A"))
}

func TestPeriod_Validacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	periods := inventory.NewPeriodUseCase(f.store, zerolog.Nop())

	_, err := periods.StartPeriod(ctx, "2026-13")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = periods.Openings(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin período vigente")

	res, err := periods.StartPeriod(ctx, "")
	require.NoError(t, err)
	assert.True(t, entity.ValidPeriod(res.Requested), "vacío usa el mes actual")
}

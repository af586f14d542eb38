package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/album-inventory/internal/application/inventory"
	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

func TestStockTake_RegistraDiferencia(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	itemID := f.seed(t, album("Artist1", "V1"), "A", 10)

	res, err := f.ledger.StockTake(ctx, inventory.StockTakeInput{
		ItemID: itemID, Location: "A", Counted: 7, Memo: "conteo mensual", IdempotencyKey: "st-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionOUT, res.Direction)
	assert.Equal(t, 10, res.Opening)
	assert.Equal(t, 7, res.Closing)
	assert.True(t, res.MovementInserted)

	again, err := f.ledger.StockTake(ctx, inventory.StockTakeInput{
		ItemID: itemID, Location: "A", Counted: 7, Memo: "conteo mensual", IdempotencyKey: "st-1",
	})
	require.NoError(t, err)
	assert.True(t, again.Duplicated)
	assert.Equal(t, 7, f.qty(t, itemID, "A"))
}

func TestStockTake_SinDiferenciaNoInsertaMovimiento(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	itemID := f.seed(t, album("Artist1", "V1"), "A", 3)

	res, err := f.ledger.StockTake(ctx, inventory.StockTakeInput{
		ItemID: itemID, Location: "A", Counted: 3, Memo: "conteo",
	})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.False(t, res.MovementInserted)

	list, err := f.queries.ListMovements(ctx, entity.MovementFilter{ItemID: itemID})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStockTake_ConteoNegativoInvalido(t *testing.T) {
	f := newFixture()
	_, err := f.ledger.StockTake(context.Background(), inventory.StockTakeInput{
		Item: album("Artist1", "V1"), Location: "A", Counted: -1, Memo: "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un conteo sin diferencia no consume la clave: un reintento posterior cuenta contra el stock de ese momento.
func TestStockTake_SinDiferenciaNoConsumeLaClave(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	itemID := f.seed(t, album("Artist1", "V1"), "A", 3)
	input := inventory.StockTakeInput{ItemID: itemID, Location: "A", Counted: 3, Memo: "conteo", IdempotencyKey: "st-0"}

	first, err := f.ledger.StockTake(ctx, input)
	require.NoError(t, err)
	assert.False(t, first.MovementInserted)
	assert.False(t, first.Duplicated)

	_, err = f.ledger.Apply(ctx, inventory.MovementInput{
		ItemID: itemID, Location: "A", Direction: entity.DirectionIN, Quantity: 2,
	})
	require.NoError(t, err)

	second, err := f.ledger.StockTake(ctx, input)
	require.NoError(t, err)
	assert.True(t, second.MovementInserted)
	assert.Equal(t, entity.DirectionOUT, second.Direction)
	assert.Equal(t, 3, f.qty(t, itemID, "A"))
}

func TestStockTake_ClaveReutilizadaEnOtraUbicacionEsConflicto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	itemID := f.seed(t, album("Artist1", "V1"), "A", 10)

	_, err := f.ledger.StockTake(ctx, inventory.StockTakeInput{
		ItemID: itemID, Location: "A", Counted: 8, Memo: "conteo", IdempotencyKey: "st-2",
	})
	require.NoError(t, err)

	_, err = f.ledger.StockTake(ctx, inventory.StockTakeInput{
		ItemID: itemID, Location: "B", Counted: 8, Memo: "conteo", IdempotencyKey: "st-2",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 0, f.qty(t, itemID, "B"))
}

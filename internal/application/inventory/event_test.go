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

func eventOut(key, eventID string, qty int) inventory.MovementInput {
	return inventory.MovementInput{
		Item: album("Artist1", "V1"), Location: "A", Direction: entity.DirectionOUT,
		Quantity: qty, Memo: "exhibición", IdempotencyKey: key, Event: true, EventID: eventID,
	}
}

func TestEvent_SalidaAbreYDevolucionCierra(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	out, err := f.ledger.Apply(ctx, eventOut("ev-out", "", 4))
	require.NoError(t, err)
	require.NotEmpty(t, out.EventID)

	more, err := f.ledger.Apply(ctx, eventOut("ev-out-2", out.EventID, 2))
	require.NoError(t, err)
	assert.Equal(t, out.EventID, more.EventID)

	open, err := f.queries.ListMovements(ctx, entity.MovementFilter{OpenEvents: true})
	require.NoError(t, err)
	assert.Len(t, open, 2)

	back, err := f.ledger.Apply(ctx, inventory.MovementInput{
		ItemID: out.ItemID, Location: "A", Direction: entity.DirectionIN,
		Quantity: 6, IdempotencyKey: "ev-in", EventID: out.EventID,
	})
	require.NoError(t, err)
	assert.Equal(t, out.EventID, back.EventID)
	assert.Equal(t, 0, f.qty(t, out.ItemID, "A"))

	open, err = f.queries.ListMovements(ctx, entity.MovementFilter{OpenEvents: true})
	require.NoError(t, err)
	assert.Empty(t, open)

	tagged, err := f.queries.ListMovements(ctx, entity.MovementFilter{EventID: out.EventID})
	require.NoError(t, err)
	assert.Len(t, tagged, 3)
}

func TestEvent_DevolucionDobleEsConflicto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out, err := f.ledger.Apply(ctx, eventOut("ev-out", "", 1))
	require.NoError(t, err)

	back := inventory.MovementInput{
		ItemID: out.ItemID, Location: "A", Direction: entity.DirectionIN,
		Quantity: 1, IdempotencyKey: "ev-in-1", EventID: out.EventID,
	}
	_, err = f.ledger.Apply(ctx, back)
	require.NoError(t, err)

	back.IdempotencyKey = "ev-in-2"
	_, err = f.ledger.Apply(ctx, back)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.StepEvent, domain.StepOf(err, ""))
	assert.Equal(t, 1, f.qty(t, out.ItemID, "A"))
}

func TestEvent_Validaciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out, err := f.ledger.Apply(ctx, eventOut("ev-out", "", 1))
	require.NoError(t, err)

	// devolución sin evento
	_, err = f.ledger.Apply(ctx, inventory.MovementInput{
		ItemID: out.ItemID, Location: "A", Direction: entity.DirectionIN,
		Quantity: 1, IdempotencyKey: "x-1", Event: true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// evento inexistente
	_, err = f.ledger.Apply(ctx, eventOut("x-2", "no-existe", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.StepEvent, domain.StepOf(err, ""))

	// evento de otro ítem
	_, err = f.ledger.Apply(ctx, inventory.MovementInput{
		Item: album("Artist2", "V9"), Location: "A", Direction: entity.DirectionIN,
		Quantity: 1, IdempotencyKey: "x-3", EventID: out.EventID,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

package inventory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/album-inventory/internal/application/inventory"
	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/infrastructure/memory"
)

func TestLineKey_Formato(t *testing.T) {
	assert.Equal(t, "B1-2", inventory.LineKey("B1", 2))
}

// Lote de 3 líneas donde la segunda falla validación; al reenviar solo la fallida
// con la misma clave base las líneas 0 y 2 no se aplican de nuevo.
func TestRunBatch_FallaParcialYReintentoSoloFallidas(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.seed(t, album("Artist1", "V1"), "A", 10)
	b := f.seed(t, album("Artist1", "V2"), "A", 10)
	c := f.seed(t, album("Artist2", "V1"), "A", 10)

	report, err := f.bulk.RunBatch(ctx, admin, inventory.BatchInput{
		ToLocation: "B",
		Memo:       "envío a tienda",
		BaseKey:    "BATCH-1",
		Items: []inventory.BatchLine{
			{ItemID: a, FromLocation: "A", Quantity: 2},
			{ItemID: b, FromLocation: "A", Quantity: 0},
			{ItemID: c, FromLocation: "A", Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 1, report.Failures[0].Index)
	assert.Equal(t, domain.StepValidate, report.Failures[0].Step)
	assert.Equal(t, string(domain.KindValidation), report.Failures[0].Kind)
	assert.Equal(t, "BATCH-1-0-out", report.Successes[0].Transfer.Out.IdempotencyKey)

	idx := 1
	retry, err := f.bulk.RunBatch(ctx, admin, inventory.BatchInput{
		ToLocation: "B",
		Memo:       "envío a tienda",
		BaseKey:    "BATCH-1",
		Items:      []inventory.BatchLine{{Index: &idx, ItemID: b, FromLocation: "A", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, retry.Succeeded)
	assert.Equal(t, "BATCH-1-1-in", retry.Successes[0].Transfer.In.IdempotencyKey)

	assert.Equal(t, 8, f.qty(t, a, "A"))
	assert.Equal(t, 2, f.qty(t, a, "B"))
	assert.Equal(t, 9, f.qty(t, b, "A"))
	assert.Equal(t, 1, f.qty(t, b, "B"))
	assert.Equal(t, 7, f.qty(t, c, "A"))
	assert.Equal(t, 3, f.qty(t, c, "B"))
}

func TestRunBatch_ReenvioCompletoNoDuplica(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.seed(t, album("Artist1", "V1"), "A", 10)
	input := inventory.BatchInput{
		ToLocation: "B", Memo: "m", BaseKey: "BATCH-2",
		Items: []inventory.BatchLine{{ItemID: a, FromLocation: "A", Quantity: 4}},
	}

	_, err := f.bulk.RunBatch(ctx, admin, input)
	require.NoError(t, err)
	again, err := f.bulk.RunBatch(ctx, admin, input)
	require.NoError(t, err)

	assert.Equal(t, 1, again.Succeeded)
	assert.True(t, again.Successes[0].Transfer.Out.Duplicated)
	assert.Equal(t, 6, f.qty(t, a, "A"))
}

func TestRunBatch_AlcancePorLinea(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.seed(t, album("Artist1", "V1"), "A", 5)
	session := entity.Session{
		UserID: "op-1",
		Role:   entity.RoleScopedOperator,
		Scope:  &entity.LocationScope{UserID: "op-1", PrimaryLocation: "A", SubLocations: []string{"B"}},
	}

	report, err := f.bulk.RunBatch(ctx, session, inventory.BatchInput{
		ToLocation: "B", Memo: "m",
		Items: []inventory.BatchLine{
			{ItemID: a, FromLocation: "A", Quantity: 1},
			{ItemID: a, FromLocation: "C", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, domain.StepAuthorize, report.Failures[0].Step)
	assert.NotEmpty(t, report.BaseKey)
}

func TestRunBatch_ValidacionDelLote(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	zero := 0

	_, err := f.bulk.RunBatch(ctx, admin, inventory.BatchInput{Memo: "m", Items: []inventory.BatchLine{{}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.bulk.RunBatch(ctx, admin, inventory.BatchInput{ToLocation: "B"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.bulk.RunBatch(ctx, admin, inventory.BatchInput{
		ToLocation: "B",
		Items:      []inventory.BatchLine{{Index: &zero}, {Index: &zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "index repetido")

	_, err = f.bulk.RunBatch(ctx, admin, inventory.BatchInput{
		ToLocation: "B",
		Items:      []inventory.BatchLine{{}, {Index: &zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "index en unas líneas y en otras no")
}

// Reenviar solo la línea fallida sin index la asigna a {base}-0, que ya pertenece a otro ítem:
// la línea debe fallar por clave reutilizada, no reportarse como aplicada.
func TestRunBatch_ReintentoSinIndexNoReportaExitoFalso(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.seed(t, album("Artist1", "V1"), "A", 10)
	b := f.seed(t, album("Artist1", "V2"), "A", 10)

	_, err := f.bulk.RunBatch(ctx, admin, inventory.BatchInput{
		ToLocation: "B", Memo: "m", BaseKey: "BATCH-1",
		Items: []inventory.BatchLine{
			{ItemID: a, FromLocation: "A", Quantity: 2},
			{ItemID: b, FromLocation: "A", Quantity: 0},
		},
	})
	require.NoError(t, err)

	retry, err := f.bulk.RunBatch(ctx, admin, inventory.BatchInput{
		ToLocation: "B", Memo: "m", BaseKey: "BATCH-1",
		Items: []inventory.BatchLine{{ItemID: b, FromLocation: "A", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, retry.Succeeded)
	require.Len(t, retry.Failures, 1)
	assert.Equal(t, domain.StepIdempotency, retry.Failures[0].Step)
	assert.Equal(t, string(domain.KindConflict), retry.Failures[0].Kind)

	assert.Equal(t, 10, f.qty(t, b, "A"))
	assert.Equal(t, 0, f.qty(t, b, "B"))
	assert.Equal(t, 8, f.qty(t, a, "A"))
	assert.Equal(t, 2, f.qty(t, a, "B"))
}

func TestRunBatch_ParaleloMismoResultado(t *testing.T) {
	store := memory.NewStore()
	f := newFixtureWithRunner(store, store, 4)
	ctx := context.Background()

	var lines []inventory.BatchLine
	var ids []string
	for i := 0; i < 12; i++ {
		id := f.seed(t, album("Artist1", fmt.Sprintf("V%d", i)), "A", 5)
		ids = append(ids, id)
		lines = append(lines, inventory.BatchLine{ItemID: id, FromLocation: "A", Quantity: 2})
	}

	report, err := f.bulk.RunBatch(ctx, admin, inventory.BatchInput{ToLocation: "B", Memo: "m", BaseKey: "PAR", Items: lines})
	require.NoError(t, err)
	assert.Equal(t, 12, report.Succeeded)
	for i, s := range report.Successes {
		assert.Equal(t, i, s.Index, "el reporte conserva el orden de entrada")
	}
	for _, id := range ids {
		assert.Equal(t, 3, f.qty(t, id, "A"))
		assert.Equal(t, 2, f.qty(t, id, "B"))
	}
}

package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
	"github.com/jhoicas/album-inventory/internal/infrastructure/memory"
)

var errAbort = errors.New("abort")

func TestRun_ErrorDescartaCambios(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	var itemID string

	err := s.Run(ctx, func(m repository.MovementRepository, st repository.StockRepository, it repository.ItemRepository) error {
		item, err := it.Upsert(ctx, entity.ItemIdentity{Artist: "Artist1", AlbumVersion: "V1"})
		require.NoError(t, err)
		itemID = item.ID
		_, err = st.AddDelta(ctx, item.ID, "A", 5)
		return err
	})
	require.NoError(t, err)

	err = s.Run(ctx, func(m repository.MovementRepository, st repository.StockRepository, it repository.ItemRepository) error {
		_, err := st.AddDelta(ctx, itemID, "A", 100)
		require.NoError(t, err)
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	_ = s.Run(ctx, func(m repository.MovementRepository, st repository.StockRepository, it repository.ItemRepository) error {
		q, err := st.Get(ctx, itemID, "A")
		require.NoError(t, err)
		assert.Equal(t, 5, q)
		return nil
	})
}

func TestMovementRepo_ClaveDuplicada(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	err := s.Run(ctx, func(m repository.MovementRepository, _ repository.StockRepository, _ repository.ItemRepository) error {
		require.NoError(t, m.Create(ctx, &entity.Movement{ID: "1", IdempotencyKey: "k"}))
		assert.ErrorIs(t, m.Create(ctx, &entity.Movement{ID: "2", IdempotencyKey: "k"}), domain.ErrDuplicate)
		got, err := m.GetByIdempotencyKey(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "1", got.ID)
		return nil
	})
	require.NoError(t, err)
}

func TestRun_ContextoCancelado(t *testing.T) {
	s := memory.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Run(ctx, func(repository.MovementRepository, repository.StockRepository, repository.ItemRepository) error {
		t.Fatal("no debe ejecutarse")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScopeFor_DevuelveCopia(t *testing.T) {
	s := memory.NewStore()
	s.SetScope(entity.LocationScope{UserID: "u1", PrimaryLocation: "A", SubLocations: []string{"B"}})

	got, err := s.ScopeFor(context.Background(), "u1")
	require.NoError(t, err)
	got.SubLocations[0] = "Z"

	again, err := s.ScopeFor(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, again.SubLocations)
}

func TestView_LecturasConcurrentesSinBloqueoExclusivo(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.Run(ctx, func(_ repository.MovementRepository, st repository.StockRepository, _ repository.ItemRepository) error {
		_, err := st.AddDelta(ctx, "item-1", "A", 4)
		return err
	}))

	holding := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.View(ctx, func(repository.MovementRepository, repository.StockRepository, repository.ItemRepository) error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding

	var qty int
	err := s.View(ctx, func(_ repository.MovementRepository, st repository.StockRepository, _ repository.ItemRepository) error {
		q, err := st.Get(ctx, "item-1", "A")
		qty = q
		return err
	})
	close(release)
	require.NoError(t, err)
	require.NoError(t, <-done)
	assert.Equal(t, 4, qty)
}

func TestView_ContextoCancelado(t *testing.T) {
	s := memory.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.View(ctx, func(repository.MovementRepository, repository.StockRepository, repository.ItemRepository) error {
		t.Fatal("no debe ejecutarse")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

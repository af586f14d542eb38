package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

// StockTakeInput conteo físico de un ítem en una ubicación.
type StockTakeInput struct {
	ItemID         string
	Item           entity.ItemIdentity
	Location       string
	Counted        int
	Memo           string
	Actor          string
	IdempotencyKey string
}

// StockTake registra la diferencia entre lo contado y lo actual como un movimiento IN u OUT,
// en la misma unidad atómica que Apply. Si no hay diferencia no se registra nada y la clave
// queda libre: un reintento posterior con la misma clave vuelve a contar contra el stock de ese momento.
func (uc *ApplyMovementUseCase) StockTake(ctx context.Context, input StockTakeInput) (*MovementResult, error) {
	in := input
	in.ItemID = strings.TrimSpace(in.ItemID)
	in.Item = in.Item.Normalize()
	in.Location = strings.TrimSpace(in.Location)
	in.Memo = strings.TrimSpace(in.Memo)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)
	switch {
	case in.Counted < 0:
		return nil, domain.NewValidationError(domain.StepValidate, "counted no puede ser negativo")
	case in.Location == "":
		return nil, domain.NewValidationError(domain.StepValidate, "location es requerida")
	case in.Memo == "":
		return nil, domain.NewValidationError(domain.StepValidate, "memo es requerido en conteos")
	case in.ItemID == "" && !in.Item.Valid():
		return nil, domain.NewValidationError(domain.StepValidate, "artist y album_version son requeridos")
	}
	if in.IdempotencyKey == "" {
		in.IdempotencyKey = uuid.New().String()
	}

	// Dirección y cantidad dependen del stock al momento del conteo: solo se comparan ítem y ubicación.
	check := func(ctx context.Context, itemRepo repository.ItemRepository, existing *entity.Movement) error {
		itemID, err := requestItemID(ctx, itemRepo, in.ItemID, in.Item)
		if err != nil {
			return err
		}
		if existing.ItemID != itemID || existing.Location != in.Location {
			return keyReusedError(in.IdempotencyKey)
		}
		return nil
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		if err := movRepo.LockKey(ctx, in.IdempotencyKey); err != nil {
			return err
		}
		existing, err := movRepo.GetByIdempotencyKey(ctx, in.IdempotencyKey)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := check(ctx, itemRepo, existing); err != nil {
				return err
			}
			result = replayResult(existing)
			return nil
		}
		item, err := resolveItem(ctx, itemRepo, in.ItemID, in.Item)
		if err != nil {
			return err
		}
		opening, err := stockRepo.GetForUpdate(ctx, item.ID, in.Location)
		if err != nil {
			return err
		}
		diff := in.Counted - opening
		if diff == 0 {
			result = &MovementResult{OK: true, ItemID: item.ID, IdempotencyKey: in.IdempotencyKey, Opening: opening, Closing: opening}
			return nil
		}
		direction, qty := entity.DirectionIN, diff
		if diff < 0 {
			direction, qty = entity.DirectionOUT, -diff
		}
		if err := stockRepo.Set(ctx, item.ID, in.Location, in.Counted); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:              uuid.New().String(),
			ItemID:          item.ID,
			Location:        in.Location,
			Direction:       direction,
			Quantity:        qty,
			Memo:            in.Memo,
			Actor:           in.Actor,
			IdempotencyKey:  in.IdempotencyKey,
			OpeningQuantity: opening,
			ClosingQuantity: in.Counted,
			FromLocation:    in.Location,
			ToLocation:      in.Location,
			CreatedAt:       uc.now(),
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		result = &MovementResult{
			OK:               true,
			MovementInserted: true,
			InventoryUpdated: true,
			MovementID:       mov.ID,
			ItemID:           item.ID,
			Direction:        direction,
			IdempotencyKey:   in.IdempotencyKey,
			Opening:          opening,
			Closing:          in.Counted,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return uc.replay(ctx, in.IdempotencyKey, check)
		}
		return nil, uc.fail(err, MovementInput{IdempotencyKey: in.IdempotencyKey, Location: in.Location})
	}
	if result.MovementInserted || result.Duplicated {
		uc.metrics.MovementApplied(result.Direction, result.Duplicated)
	}
	return result, nil
}

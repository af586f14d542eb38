package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/album-inventory/internal/application/dto"
	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/access"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

// IdentityFromRef convierte la referencia del request en la identidad del ítem.
func IdentityFromRef(ref dto.ItemRef) entity.ItemIdentity {
	return entity.ItemIdentity{
		Artist:       ref.Artist,
		Category:     ref.Category,
		AlbumVersion: ref.AlbumVersion,
		Option:       ref.Option,
	}
}

// ApplyFromRequest autoriza la ubicación para la sesión y adapta el request HTTP a Apply(ctx, MovementInput).
func (uc *ApplyMovementUseCase) ApplyFromRequest(ctx context.Context, session entity.Session, in dto.MovementRequest) (*MovementResult, error) {
	if err := access.AuthorizeLocation(session, in.Location); err != nil {
		uc.metrics.MovementRejected(string(domain.KindAuthorization))
		return nil, err
	}
	return uc.Apply(ctx, MovementInput{
		ItemID:         in.ItemID,
		Item:           IdentityFromRef(in.ItemRef),
		Location:       in.Location,
		Direction:      entity.Direction(strings.ToUpper(strings.TrimSpace(in.Direction))),
		Quantity:       in.Quantity,
		Memo:           in.Memo,
		Actor:          session.UserID,
		ActorRole:      session.Role,
		IdempotencyKey: in.IdempotencyKey,
		Barcode:        in.Barcode,
		Event:          in.Event,
		EventID:        in.EventID,
	})
}

// StockTakeFromRequest autoriza la ubicación y adapta el request HTTP al caso de uso StockTake.
func (uc *ApplyMovementUseCase) StockTakeFromRequest(ctx context.Context, session entity.Session, in dto.StockTakeRequest) (*MovementResult, error) {
	if err := access.AuthorizeLocation(session, in.Location); err != nil {
		uc.metrics.MovementRejected(string(domain.KindAuthorization))
		return nil, err
	}
	return uc.StockTake(ctx, StockTakeInput{
		ItemID:         in.ItemID,
		Item:           IdentityFromRef(in.ItemRef),
		Location:       in.Location,
		Counted:        in.Counted,
		Memo:           in.Memo,
		Actor:          session.UserID,
		IdempotencyKey: in.IdempotencyKey,
	})
}

// TransferFromRequest adapta el request HTTP al orquestador de traslados.
func (uc *TransferUseCase) TransferFromRequest(ctx context.Context, session entity.Session, in dto.TransferRequest) (*TransferResult, error) {
	return uc.Transfer(ctx, session, TransferInput{
		ItemID:       in.ItemID,
		Item:         IdentityFromRef(in.ItemRef),
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Quantity:     in.Quantity,
		Memo:         in.Memo,
		Barcode:      in.Barcode,
		BaseKey:      in.IdempotencyKey,
	})
}

// RunBatchFromRequest adapta el request HTTP al procesador de lotes.
func (uc *BulkTransferUseCase) RunBatchFromRequest(ctx context.Context, session entity.Session, in dto.BulkTransferRequest) (*BatchReport, error) {
	lines := make([]BatchLine, 0, len(in.Items))
	for _, l := range in.Items {
		lines = append(lines, BatchLine{
			Index:        l.Index,
			ItemID:       l.ItemID,
			Item:         IdentityFromRef(l.ItemRef),
			FromLocation: l.FromLocation,
			Quantity:     l.Quantity,
			Memo:         l.Memo,
			Barcode:      l.Barcode,
		})
	}
	return uc.RunBatch(ctx, session, BatchInput{
		ToLocation: in.ToLocation,
		Memo:       in.Memo,
		BaseKey:    in.IdempotencyKey,
		Items:      lines,
	})
}

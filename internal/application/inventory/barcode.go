package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/access"
	"github.com/jhoicas/album-inventory/internal/domain/barcode"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

// BarcodeResolver garantiza que un código de barras apunte a lo sumo a un grupo
// (artista, categoría, versión). Se consulta antes de que un movimiento o traslado asigne un código.
type BarcodeResolver struct {
	txRunner TxRunner
}

// NewBarcodeResolver construye el resolver.
func NewBarcodeResolver(txRunner TxRunner) *BarcodeResolver {
	return &BarcodeResolver{txRunner: txRunner}
}

// FindConflict devuelve el conflicto si el código ya está asignado a un ítem de otro grupo; nil si no hay.
func (r *BarcodeResolver) FindConflict(ctx context.Context, code string, candidate entity.ItemIdentity) (*entity.BarcodeConflict, error) {
	if err := barcode.Validate(code); err != nil {
		return nil, domain.NewValidationError(domain.StepBarcode, err.Error())
	}
	var conflict *entity.BarcodeConflict
	err := r.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		_ repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		c, err := findConflict(ctx, itemRepo, code, candidate)
		conflict = c
		return err
	})
	if err != nil {
		return nil, domain.NewStorageError(domain.StepBarcode, err)
	}
	return conflict, nil
}

// Attach asigna el código al ítem (por ID o identidad, creándolo si hace falta).
// Se rechaza si hay conflicto o si el rol no puede reemplazar un código existente.
func (r *BarcodeResolver) Attach(ctx context.Context, role, itemID string, identity entity.ItemIdentity, code string) (*entity.Item, error) {
	itemID = strings.TrimSpace(itemID)
	identity = identity.Normalize()
	if itemID == "" && !identity.Valid() {
		return nil, domain.NewValidationError(domain.StepValidate, "artist y album_version son requeridos")
	}
	if err := barcode.Validate(code); err != nil {
		return nil, domain.NewValidationError(domain.StepBarcode, err.Error())
	}
	var item *entity.Item
	err := r.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		_ repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		it, err := resolveItem(ctx, itemRepo, itemID, identity)
		if err != nil {
			return err
		}
		if err := r.attach(ctx, itemRepo, role, it, code); err != nil {
			return err
		}
		item = it
		return nil
	})
	if err != nil {
		if de, ok := domain.AsError(err); ok {
			return nil, de
		}
		return nil, domain.NewStorageError(domain.StepBarcode, err)
	}
	return item, nil
}

// attach aplica la regla de rol y la de conflicto usando el repositorio de la transacción en curso.
func (r *BarcodeResolver) attach(ctx context.Context, itemRepo repository.ItemRepository, role string, item *entity.Item, code string) error {
	if err := barcode.Validate(code); err != nil {
		return domain.NewValidationError(domain.StepBarcode, err.Error())
	}
	clean := barcode.Clean(code)
	if item.Barcode != "" {
		if barcode.Equal(item.Barcode, clean) {
			return nil
		}
		if !access.CanChangeBarcode(role) {
			return domain.NewConflictError(domain.StepBarcode,
				"solo "+entity.RoleFullAdmin+" puede cambiar un código de barras ya asignado", nil)
		}
	}
	if err := itemRepo.LockBarcode(ctx, barcode.Key(clean)); err != nil {
		return err
	}
	conflict, err := findConflict(ctx, itemRepo, clean, item.ItemIdentity)
	if err != nil {
		return err
	}
	if conflict != nil {
		return domain.NewConflictError(domain.StepBarcode, fmt.Sprintf(
			"el código %s ya está asignado a %s / %s / %s",
			conflict.Barcode, conflict.Existing.Artist, conflict.Existing.Category, conflict.Existing.AlbumVersion,
		), conflict)
	}
	if err := itemRepo.SetBarcode(ctx, item.ID, clean); err != nil {
		return err
	}
	item.Barcode = clean
	return nil
}

func findConflict(ctx context.Context, itemRepo repository.ItemRepository, code string, candidate entity.ItemIdentity) (*entity.BarcodeConflict, error) {
	items, err := itemRepo.ListByBarcodeKey(ctx, barcode.Key(code))
	if err != nil {
		return nil, err
	}
	group := candidate.Group()
	for _, it := range items {
		if it.Group() != group {
			return &entity.BarcodeConflict{
				Barcode:  it.Barcode,
				ItemID:   it.ID,
				Existing: it.Group(),
			}, nil
		}
	}
	return nil, nil
}

package repository

import (
	"context"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

// ItemRepository puerto de persistencia para ítems (upsert por identidad).
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetByIdentity(ctx context.Context, identity entity.ItemIdentity) (*entity.Item, error)
	// Upsert devuelve el ítem con esa identidad, creándolo si no existe. Nunca toca el código de barras.
	Upsert(ctx context.Context, identity entity.ItemIdentity) (*entity.Item, error)
	// ListByBarcodeKey ítems cuyo código coincide con la clave normalizada (barcode.Key).
	ListByBarcodeKey(ctx context.Context, key string) ([]*entity.Item, error)
	SetBarcode(ctx context.Context, itemID, barcode string) error
	// LockBarcode serializa hasta el fin de la transacción a quienes asignan la misma clave de código.
	LockBarcode(ctx context.Context, key string) error
}

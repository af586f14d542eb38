package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

// ApplyMovementUseCase es el ledger de movimientos: registra un movimiento y actualiza el stock
// en una sola transacción, aplicando cada clave de idempotencia como máximo una vez.
type ApplyMovementUseCase struct {
	txRunner TxRunner
	barcodes *BarcodeResolver
	metrics  Metrics
	log      zerolog.Logger
	now      func() time.Time
}

// NewApplyMovementUseCase construye el caso de uso. barcodes y metrics pueden ser nil.
func NewApplyMovementUseCase(
	txRunner TxRunner,
	barcodes *BarcodeResolver,
	metrics Metrics,
	log zerolog.Logger,
) *ApplyMovementUseCase {
	if barcodes == nil {
		barcodes = NewBarcodeResolver(txRunner)
	}
	return &ApplyMovementUseCase{
		txRunner: txRunner,
		barcodes: barcodes,
		metrics:  metricsOrNoop(metrics),
		log:      log.With().Str("component", "ledger").Logger(),
		now:      time.Now,
	}
}

// MovementInput entrada del ledger.
// Se identifica el ítem por ItemID o, si está vacío, por la tupla Item (upsert).
// Para tramos de traslado FromLocation/ToLocation llevan el par; si no, ambos valen Location.
type MovementInput struct {
	ItemID         string
	Item           entity.ItemIdentity
	Location       string
	Direction      entity.Direction
	Quantity       int
	Memo           string
	Actor          string
	ActorRole      string // usado por la política de cambio de código de barras
	IdempotencyKey string // vacío = se genera en el servidor
	FromLocation   string
	ToLocation     string
	Barcode        string // opcional
	// Event marca la salida como evento (préstamo, exhibición). En OUT sin EventID abre uno nuevo;
	// con EventID suma al evento abierto. En IN, EventID indica el evento que se devuelve y lo cierra.
	Event   bool
	EventID string
}

// MovementResult resultado de aplicar (o reproducir) un movimiento.
type MovementResult struct {
	OK               bool             `json:"ok"`
	Duplicated       bool             `json:"duplicated"`
	MovementInserted bool             `json:"movement_inserted"`
	InventoryUpdated bool             `json:"inventory_updated"`
	MovementID       string           `json:"movement_id,omitempty"`
	ItemID           string           `json:"item_id"`
	Direction        entity.Direction `json:"direction"`
	IdempotencyKey   string           `json:"idempotency_key"`
	Opening          int              `json:"opening"`
	Closing          int              `json:"closing"`
	EventID          string           `json:"event_id,omitempty"`
}

// Apply valida, verifica idempotencia, resuelve el ítem, actualiza el stock e inserta el movimiento.
// La verificación de clave, la lectura-modificación-escritura del stock y la inserción ocurren
// en la misma transacción; si algo falla no queda ningún efecto visible.
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, input MovementInput) (*MovementResult, error) {
	in, err := normalizeMovementInput(input)
	if err != nil {
		uc.metrics.MovementRejected(string(domain.KindValidation))
		return nil, err
	}
	if in.IdempotencyKey == "" {
		in.IdempotencyKey = uuid.New().String()
	}

	check := movementReplayCheck(in)

	var result *MovementResult
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		// Serializa a los llamadores concurrentes con la misma clave
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
		if in.Barcode != "" {
			if err := uc.barcodes.attach(ctx, itemRepo, in.ActorRole, item, in.Barcode); err != nil {
				return err
			}
		}

		eventID, err := uc.resolveEvent(ctx, movRepo, in, item.ID)
		if err != nil {
			return err
		}

		signed := in.Direction.Signed(in.Quantity)
		closing, err := stockRepo.AddDelta(ctx, item.ID, in.Location, signed)
		if err != nil {
			return err
		}
		opening := closing - signed

		mov := &entity.Movement{
			ID:              uuid.New().String(),
			ItemID:          item.ID,
			Location:        in.Location,
			Direction:       in.Direction,
			Quantity:        in.Quantity,
			Memo:            in.Memo,
			Actor:           in.Actor,
			IdempotencyKey:  in.IdempotencyKey,
			OpeningQuantity: opening,
			ClosingQuantity: closing,
			FromLocation:    in.FromLocation,
			ToLocation:      in.ToLocation,
			EventID:         eventID,
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
			Direction:        in.Direction,
			IdempotencyKey:   mov.IdempotencyKey,
			Opening:          opening,
			Closing:          closing,
			EventID:          eventID,
		}
		return nil
	})
	if err != nil {
		// Otro llamador ganó la carrera por la misma clave: devolver su resultado.
		if errors.Is(err, domain.ErrDuplicate) {
			return uc.replay(ctx, in.IdempotencyKey, check)
		}
		return nil, uc.fail(err, in)
	}

	uc.metrics.MovementApplied(in.Direction, result.Duplicated)
	if result.Duplicated {
		uc.log.Debug().Str("idempotency_key", in.IdempotencyKey).Msg("movimiento repetido, se devuelve el resultado original")
	}
	return result, nil
}

// resolveEvent devuelve el evento del movimiento. Una salida de evento sin EventID abre uno nuevo;
// con EventID, o en una devolución, el evento debe seguir abierto y ser del mismo ítem.
func (uc *ApplyMovementUseCase) resolveEvent(ctx context.Context, movRepo repository.MovementRepository, in MovementInput, itemID string) (string, error) {
	if !in.Event {
		return "", nil
	}
	if in.EventID == "" {
		return uuid.New().String(), nil
	}
	// Dos devoluciones concurrentes del mismo evento no pueden cerrarlo dos veces
	if err := movRepo.LockKey(ctx, "event:"+in.EventID); err != nil {
		return "", err
	}
	state, err := movRepo.EventState(ctx, in.EventID)
	if err != nil {
		return "", err
	}
	switch {
	case state == nil:
		return "", domain.NewValidationError(domain.StepEvent, "evento no encontrado: "+in.EventID)
	case state.ItemID != itemID:
		return "", domain.NewConflictError(domain.StepEvent, "el evento "+in.EventID+" corresponde a otro ítem", nil)
	case !state.Open:
		return "", domain.NewConflictError(domain.StepEvent, "el evento "+in.EventID+" ya fue devuelto", nil)
	}
	return in.EventID, nil
}

// replayCheck verifica que el movimiento ya registrado con una clave corresponda a la solicitud actual.
type replayCheck func(ctx context.Context, itemRepo repository.ItemRepository, existing *entity.Movement) error

// movementReplayCheck compara ítem, ubicación, dirección, cantidad y par de ubicaciones.
func movementReplayCheck(in MovementInput) replayCheck {
	return func(ctx context.Context, itemRepo repository.ItemRepository, existing *entity.Movement) error {
		itemID, err := requestItemID(ctx, itemRepo, in.ItemID, in.Item)
		if err != nil {
			return err
		}
		if !existing.SameRequest(itemID, in.Location, in.Direction, in.Quantity, in.FromLocation, in.ToLocation) {
			return keyReusedError(in.IdempotencyKey)
		}
		return nil
	}
}

// requestItemID resuelve el ítem de la solicitud sin crearlo; "" si la identidad no existe.
func requestItemID(ctx context.Context, itemRepo repository.ItemRepository, itemID string, identity entity.ItemIdentity) (string, error) {
	if itemID != "" {
		return itemID, nil
	}
	it, err := itemRepo.GetByIdentity(ctx, identity)
	if err != nil || it == nil {
		return "", err
	}
	return it.ID, nil
}

func keyReusedError(key string) error {
	return domain.NewConflictError(domain.StepIdempotency,
		"la clave "+key+" ya se usó para un movimiento con otros datos", nil)
}

// replay lee el movimiento ya aplicado para una clave.
func (uc *ApplyMovementUseCase) replay(ctx context.Context, key string, check replayCheck) (*MovementResult, error) {
	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		existing, err := movRepo.GetByIdempotencyKey(ctx, key)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if err := check(ctx, itemRepo, existing); err != nil {
			return err
		}
		result = replayResult(existing)
		return nil
	})
	if err != nil {
		if de, ok := domain.AsError(err); ok {
			uc.metrics.MovementRejected(string(de.Kind))
			return nil, de
		}
		uc.metrics.MovementRejected(string(domain.KindStorage))
		return nil, domain.NewStorageError(domain.StepRecord, err)
	}
	uc.metrics.MovementApplied(result.Direction, true)
	return result, nil
}

// fail convierte errores de infraestructura en StorageError y registra métricas/log.
func (uc *ApplyMovementUseCase) fail(err error, in MovementInput) error {
	if de, ok := domain.AsError(err); ok {
		uc.metrics.MovementRejected(string(de.Kind))
		return de
	}
	uc.metrics.MovementRejected(string(domain.KindStorage))
	uc.log.Error().Err(err).
		Str("idempotency_key", in.IdempotencyKey).
		Str("location", in.Location).
		Msg("falla al registrar movimiento")
	return domain.NewStorageError(domain.StepRecord, err)
}

func replayResult(m *entity.Movement) *MovementResult {
	return &MovementResult{
		OK:             true,
		Duplicated:     true,
		MovementID:     m.ID,
		ItemID:         m.ItemID,
		Direction:      m.Direction,
		IdempotencyKey: m.IdempotencyKey,
		Opening:        m.OpeningQuantity,
		Closing:        m.ClosingQuantity,
		EventID:        m.EventID,
	}
}

// normalizeMovementInput recorta campos, normaliza la identidad y aplica las reglas de validación.
func normalizeMovementInput(input MovementInput) (MovementInput, error) {
	in := input
	in.ItemID = strings.TrimSpace(in.ItemID)
	in.Item = in.Item.Normalize()
	in.Location = strings.TrimSpace(in.Location)
	in.Memo = strings.TrimSpace(in.Memo)
	in.Actor = strings.TrimSpace(in.Actor)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)
	in.FromLocation = strings.TrimSpace(in.FromLocation)
	in.ToLocation = strings.TrimSpace(in.ToLocation)
	in.Barcode = strings.TrimSpace(in.Barcode)
	in.EventID = strings.TrimSpace(in.EventID)
	if in.EventID != "" {
		in.Event = true
	}

	if !in.Direction.Valid() {
		return in, domain.NewValidationError(domain.StepValidate, "direction debe ser IN u OUT")
	}
	if in.Quantity <= 0 {
		return in, domain.NewValidationError(domain.StepValidate, "quantity debe ser un entero positivo")
	}
	if in.Location == "" {
		return in, domain.NewValidationError(domain.StepValidate, "location es requerida")
	}
	if in.Direction == entity.DirectionOUT && in.Memo == "" {
		return in, domain.NewValidationError(domain.StepValidate, "memo es requerido en salidas")
	}
	if in.ItemID == "" && !in.Item.Valid() {
		return in, domain.NewValidationError(domain.StepValidate, "artist y album_version son requeridos")
	}
	if in.Event && in.Direction == entity.DirectionIN && in.EventID == "" {
		return in, domain.NewValidationError(domain.StepValidate, "event_id es requerido para devolver un evento")
	}
	if in.FromLocation == "" && in.ToLocation == "" {
		in.FromLocation, in.ToLocation = in.Location, in.Location
	}
	return in, nil
}

// resolveItem obtiene el ítem por ID o lo crea por identidad (upsert). Nunca modifica el código de barras.
func resolveItem(ctx context.Context, itemRepo repository.ItemRepository, itemID string, identity entity.ItemIdentity) (*entity.Item, error) {
	if itemID != "" {
		item, err := itemRepo.GetByID(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.NewValidationError(domain.StepValidate, "item_id no existe: "+itemID)
		}
		return item, nil
	}
	return itemRepo.Upsert(ctx, identity)
}

package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/access"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

// Sufijos de las claves de idempotencia de cada tramo.
const (
	legOutSuffix = "-out"
	legInSuffix  = "-in"
)

// TransferUseCase compone dos llamadas al ledger (OUT en origen, IN en destino) con una identidad común.
// Los tramos no comparten transacción: ante una falla del IN la recuperación es reintentar con la misma clave.
type TransferUseCase struct {
	ledger   *ApplyMovementUseCase
	barcodes *BarcodeResolver
	metrics  Metrics
	log      zerolog.Logger
}

// NewTransferUseCase construye el orquestador de traslados.
func NewTransferUseCase(ledger *ApplyMovementUseCase, barcodes *BarcodeResolver, metrics Metrics, log zerolog.Logger) *TransferUseCase {
	return &TransferUseCase{
		ledger:   ledger,
		barcodes: barcodes,
		metrics:  metricsOrNoop(metrics),
		log:      log.With().Str("component", "transfer").Logger(),
	}
}

// TransferInput datos de un traslado entre dos ubicaciones.
type TransferInput struct {
	ItemID       string
	Item         entity.ItemIdentity
	FromLocation string
	ToLocation   string
	Quantity     int
	Memo         string
	Barcode      string // opcional
	BaseKey      string // vacío = se genera en el servidor
}

// TransferResult resultado de un traslado. Step indica el último paso alcanzado o el que falló.
type TransferResult struct {
	OK      bool            `json:"ok"`
	Step    string          `json:"step,omitempty"`
	Error   string          `json:"error,omitempty"`
	BaseKey string          `json:"base_key"`
	ItemID  string          `json:"item_id,omitempty"`
	Out     *MovementResult `json:"out,omitempty"`
	In      *MovementResult `json:"in,omitempty"`
}

// LegKeys claves de idempotencia de los tramos derivadas de la clave base.
func LegKeys(base string) (out, in string) {
	return base + legOutSuffix, base + legInSuffix
}

// Transfer valida, autoriza, resuelve el código de barras y registra OUT y luego IN.
// Siempre devuelve un resultado con el paso alcanzado; el error es un *domain.Error.
func (uc *TransferUseCase) Transfer(ctx context.Context, session entity.Session, input TransferInput) (*TransferResult, error) {
	in, err := normalizeTransferInput(input)
	result := &TransferResult{BaseKey: in.BaseKey, Step: domain.StepValidate}
	if err != nil {
		return uc.reject(result, err)
	}
	if in.BaseKey == "" {
		in.BaseKey = uuid.New().String()
		result.BaseKey = in.BaseKey
	}
	if in.FromLocation == in.ToLocation {
		uc.log.Warn().
			Str("base_key", in.BaseKey).
			Str("location", in.FromLocation).
			Msg("traslado con origen igual a destino")
	}

	result.Step = domain.StepAuthorize
	if err := access.Authorize(session, in.FromLocation, in.ToLocation); err != nil {
		return uc.reject(result, err)
	}

	if in.Barcode != "" {
		result.Step = domain.StepBarcode
		item, err := uc.barcodes.Attach(ctx, session.Role, in.ItemID, in.Item, in.Barcode)
		if err != nil {
			return uc.reject(result, err)
		}
		in.ItemID = item.ID
	}

	outKey, inKey := LegKeys(in.BaseKey)

	result.Step = domain.StepRecordOut
	out, err := uc.ledger.Apply(ctx, MovementInput{
		ItemID:         in.ItemID,
		Item:           in.Item,
		Location:       in.FromLocation,
		Direction:      entity.DirectionOUT,
		Quantity:       in.Quantity,
		Memo:           in.Memo,
		Actor:          session.UserID,
		ActorRole:      session.Role,
		IdempotencyKey: outKey,
		FromLocation:   in.FromLocation,
		ToLocation:     in.ToLocation,
	})
	if err != nil {
		// El destino no se toca si el origen no cambió.
		return uc.reject(result, withStep(err, domain.StepRecordOut))
	}
	result.Out = out
	result.ItemID = out.ItemID

	result.Step = domain.StepRecordIn
	inRes, err := uc.ledger.Apply(ctx, MovementInput{
		ItemID:         out.ItemID,
		Location:       in.ToLocation,
		Direction:      entity.DirectionIN,
		Quantity:       in.Quantity,
		Memo:           in.Memo,
		Actor:          session.UserID,
		ActorRole:      session.Role,
		IdempotencyKey: inKey,
		FromLocation:   in.FromLocation,
		ToLocation:     in.ToLocation,
	})
	if err != nil {
		partial := domain.NewPartialTransferError(err)
		result.Error = partial.Error()
		uc.metrics.TransferFinished(TransferOutcomePartial)
		uc.log.Error().Err(err).
			Str("base_key", in.BaseKey).
			Str("from", in.FromLocation).
			Str("to", in.ToLocation).
			Msg("traslado parcial: salida registrada, entrada pendiente")
		return result, partial
	}
	result.In = inRes
	result.OK = true
	result.Step = ""
	uc.metrics.TransferFinished(TransferOutcomeOK)
	return result, nil
}

// reject completa el resultado de un traslado que no modificó ninguna ubicación.
func (uc *TransferUseCase) reject(result *TransferResult, err error) (*TransferResult, error) {
	result.Step = domain.StepOf(err, result.Step)
	result.Error = err.Error()
	if de, ok := domain.AsError(err); ok && de.Kind == domain.KindStorage {
		uc.metrics.TransferFinished(TransferOutcomeFailed)
	} else {
		uc.metrics.TransferFinished(TransferOutcomeRejected)
	}
	return result, err
}

// withStep reasigna el paso de un error del ledger al tramo del traslado, salvo validación
// y reutilización de clave.
func withStep(err error, step string) error {
	de, ok := domain.AsError(err)
	if !ok {
		return domain.NewStorageError(step, err)
	}
	if de.Kind == domain.KindValidation || de.Step == domain.StepIdempotency {
		return de
	}
	cp := *de
	cp.Step = step
	return &cp
}

func normalizeTransferInput(input TransferInput) (TransferInput, error) {
	in := input
	in.ItemID = strings.TrimSpace(in.ItemID)
	in.Item = in.Item.Normalize()
	in.FromLocation = strings.TrimSpace(in.FromLocation)
	in.ToLocation = strings.TrimSpace(in.ToLocation)
	in.Memo = strings.TrimSpace(in.Memo)
	in.Barcode = strings.TrimSpace(in.Barcode)
	in.BaseKey = strings.TrimSpace(in.BaseKey)

	if in.Quantity <= 0 {
		return in, domain.NewValidationError(domain.StepValidate, "quantity debe ser un entero positivo")
	}
	if in.Memo == "" {
		return in, domain.NewValidationError(domain.StepValidate, "memo es requerido en traslados")
	}
	if in.FromLocation == "" || in.ToLocation == "" {
		return in, domain.NewValidationError(domain.StepValidate, "from_location y to_location son requeridas")
	}
	if in.ItemID == "" && !in.Item.Valid() {
		return in, domain.NewValidationError(domain.StepValidate, "artist y album_version son requeridos")
	}
	return in, nil
}

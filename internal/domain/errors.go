package domain

import (
	"errors"
	"fmt"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrStorage         = errors.New("falla del almacenamiento")
	ErrPartialTransfer = errors.New("traslado incompleto")
)

// Kind clasifica un Error según la taxonomía del ledger.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindAuthorization   Kind = "authorization"
	KindConflict        Kind = "conflict"
	KindStorage         Kind = "storage"
	KindPartialTransfer Kind = "partial_transfer"
)

// Pasos reportados al caller junto con el error.
const (
	StepValidate  = "validate"
	StepAuthorize = "authorize"
	StepBarcode   = "barcode"
	StepRecord    = "record"
	StepRecordOut = "record_out"
	StepRecordIn  = "record_in"
	// StepIdempotency la clave ya se aplicó a una solicitud distinta.
	StepIdempotency = "idempotency"
	// StepEvent el evento no existe, ya fue devuelto o es de otro ítem.
	StepEvent = "event"
)

// Error es el error tipado que devuelven los casos de uso de inventario.
// Step y Message permiten construir reintentos y mensajes al usuario sin inspeccionar internals.
type Error struct {
	Kind     Kind
	Step     string
	Message  string
	Err      error
	Conflict *entity.BarcodeConflict // solo en conflictos de código de barras
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Step, e.Message, e.Err)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Step, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is permite errors.Is(err, domain.ErrInvalidInput) y similares según Kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindValidation:
		return target == ErrInvalidInput
	case KindAuthorization:
		return target == ErrForbidden
	case KindConflict:
		return target == ErrConflict
	case KindStorage:
		return target == ErrStorage
	case KindPartialTransfer:
		return target == ErrPartialTransfer
	}
	return false
}

// NewValidationError entrada mal formada o incompleta; se rechaza antes de cualquier efecto.
func NewValidationError(step, msg string) *Error {
	return &Error{Kind: KindValidation, Step: step, Message: msg}
}

// NewAuthorizationError rol o alcance de ubicaciones no permitido.
func NewAuthorizationError(step, msg string) *Error {
	return &Error{Kind: KindAuthorization, Step: step, Message: msg}
}

// NewConflictError código de barras asignado a otro grupo, cambio no permitido para el rol
// o clave de idempotencia reutilizada con otros datos.
func NewConflictError(step, msg string, conflict *entity.BarcodeConflict) *Error {
	return &Error{Kind: KindConflict, Step: step, Message: msg, Conflict: conflict}
}

// NewStorageError falla del almacenamiento transaccional; el caller puede reintentar.
func NewStorageError(step string, err error) *Error {
	return &Error{Kind: KindStorage, Step: step, Message: "no se pudo registrar en el almacenamiento", Err: err}
}

// NewPartialTransferError la salida quedó registrada pero la entrada no; se recupera reintentando.
func NewPartialTransferError(err error) *Error {
	return &Error{
		Kind:    KindPartialTransfer,
		Step:    StepRecordIn,
		Message: "salida registrada, entrada pendiente: reintente con la misma clave",
		Err:     err,
	}
}

// AsError extrae el *Error de una cadena de errores.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// StepOf devuelve el paso asociado al error, o fallback si no es un *Error.
func StepOf(err error, fallback string) string {
	if de, ok := AsError(err); ok && de.Step != "" {
		return de.Step
	}
	return fallback
}

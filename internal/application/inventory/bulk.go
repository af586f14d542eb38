package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

// DefaultMaxBatchItems límite de líneas por lote si no se configura otro.
const DefaultMaxBatchItems = 500

// BulkTransferUseCase ejecuta el orquestador de traslados sobre una lista de líneas,
// registrando éxito o falla por línea. Una línea fallida no aborta el lote.
type BulkTransferUseCase struct {
	transfers   *TransferUseCase
	metrics     Metrics
	log         zerolog.Logger
	concurrency int
	maxItems    int
}

// NewBulkTransferUseCase construye el procesador. concurrency <= 1 procesa las líneas en orden.
func NewBulkTransferUseCase(transfers *TransferUseCase, metrics Metrics, log zerolog.Logger, concurrency, maxItems int) *BulkTransferUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxBatchItems
	}
	return &BulkTransferUseCase{
		transfers:   transfers,
		metrics:     metricsOrNoop(metrics),
		log:         log.With().Str("component", "bulk_transfer").Logger(),
		concurrency: concurrency,
		maxItems:    maxItems,
	}
}

// BatchLine línea de un lote. Index fija la posición original para poder reintentar
// solo las fallidas; si es nil se usa la posición en la lista. Un lote indica Index
// en todas sus líneas o en ninguna.
type BatchLine struct {
	Index        *int                `json:"index,omitempty"`
	ItemID       string              `json:"item_id,omitempty"`
	Item         entity.ItemIdentity `json:"item"`
	FromLocation string              `json:"from_location"`
	Quantity     int                 `json:"quantity"`
	Memo         string              `json:"memo,omitempty"` // vacío = memo del lote
	Barcode      string              `json:"barcode,omitempty"`
}

// BatchInput lote de traslados hacia un mismo destino.
type BatchInput struct {
	ToLocation string
	Memo       string
	BaseKey    string // vacío = se genera en el servidor
	Items      []BatchLine
}

// BatchSuccess línea aplicada (o repetida sin efecto).
type BatchSuccess struct {
	Index    int             `json:"index"`
	Transfer *TransferResult `json:"transfer"`
}

// BatchFailure línea rechazada con el paso y el error.
type BatchFailure struct {
	Index    int             `json:"index"`
	Line     BatchLine       `json:"item"`
	Step     string          `json:"failing_step"`
	Kind     string          `json:"kind,omitempty"`
	Error    string          `json:"error"`
	Transfer *TransferResult `json:"transfer,omitempty"`
}

// BatchReport resultado del lote, en el orden de entrada.
type BatchReport struct {
	BaseKey   string         `json:"base_key"`
	Total     int            `json:"total"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Successes []BatchSuccess `json:"successes"`
	Failures  []BatchFailure `json:"failures"`
}

// LineKey clave base de una línea: {base}-{index}. Es estable entre reintentos.
func LineKey(base string, index int) string {
	return fmt.Sprintf("%s-%d", base, index)
}

type lineOutcome struct {
	index  int
	line   BatchLine
	result *TransferResult
	err    error
}

// RunBatch procesa el lote. Devuelve error solo si el lote completo es inválido
// (sin destino, sin líneas, demasiadas líneas, índices repetidos o mezclados).
// Una línea cuya clave ya se aplicó a otra solicitud falla con paso idempotency.
func (uc *BulkTransferUseCase) RunBatch(ctx context.Context, session entity.Session, input BatchInput) (*BatchReport, error) {
	toLocation := strings.TrimSpace(input.ToLocation)
	if toLocation == "" {
		return nil, domain.NewValidationError(domain.StepValidate, "to_location es requerida")
	}
	if len(input.Items) == 0 {
		return nil, domain.NewValidationError(domain.StepValidate, "el lote no tiene líneas")
	}
	if len(input.Items) > uc.maxItems {
		return nil, domain.NewValidationError(domain.StepValidate, fmt.Sprintf("el lote supera el máximo de %d líneas", uc.maxItems))
	}
	baseKey := strings.TrimSpace(input.BaseKey)
	if baseKey == "" {
		baseKey = uuid.New().String()
	}

	indexed := 0
	for _, line := range input.Items {
		if line.Index != nil {
			indexed++
		}
	}
	if indexed > 0 && indexed < len(input.Items) {
		return nil, domain.NewValidationError(domain.StepValidate, "index debe indicarse en todas las líneas o en ninguna")
	}

	outcomes := make([]lineOutcome, len(input.Items))
	seen := make(map[int]struct{}, len(input.Items))
	for pos, line := range input.Items {
		idx := pos
		if line.Index != nil {
			idx = *line.Index
		}
		if idx < 0 {
			return nil, domain.NewValidationError(domain.StepValidate, "index no puede ser negativo")
		}
		if _, dup := seen[idx]; dup {
			return nil, domain.NewValidationError(domain.StepValidate, fmt.Sprintf("index %d repetido en el lote", idx))
		}
		seen[idx] = struct{}{}
		outcomes[pos] = lineOutcome{index: idx, line: line}
	}

	run := func(pos int) {
		o := &outcomes[pos]
		memo := o.line.Memo
		if strings.TrimSpace(memo) == "" {
			memo = input.Memo
		}
		o.result, o.err = uc.transfers.Transfer(ctx, session, TransferInput{
			ItemID:       o.line.ItemID,
			Item:         o.line.Item,
			FromLocation: o.line.FromLocation,
			ToLocation:   toLocation,
			Quantity:     o.line.Quantity,
			Memo:         memo,
			Barcode:      o.line.Barcode,
			BaseKey:      LineKey(baseKey, o.index),
		})
	}

	if uc.concurrency == 1 {
		for pos := range outcomes {
			run(pos)
		}
	} else {
		// Las líneas son independientes entre sí; los dos tramos de cada una siguen en orden.
		var g errgroup.Group
		g.SetLimit(uc.concurrency)
		for pos := range outcomes {
			pos := pos
			g.Go(func() error {
				run(pos)
				return nil
			})
		}
		_ = g.Wait()
	}

	report := &BatchReport{
		BaseKey:   baseKey,
		Total:     len(outcomes),
		Successes: make([]BatchSuccess, 0, len(outcomes)),
		Failures:  make([]BatchFailure, 0),
	}
	for _, o := range outcomes {
		if o.err == nil {
			report.Successes = append(report.Successes, BatchSuccess{Index: o.index, Transfer: o.result})
			continue
		}
		f := BatchFailure{
			Index:    o.index,
			Line:     o.line,
			Step:     domain.StepOf(o.err, domain.StepRecord),
			Error:    o.err.Error(),
			Transfer: o.result,
		}
		if de, ok := domain.AsError(o.err); ok {
			f.Kind = string(de.Kind)
		}
		report.Failures = append(report.Failures, f)
	}
	report.Succeeded = len(report.Successes)
	report.Failed = len(report.Failures)

	uc.metrics.BatchFinished(report.Succeeded, report.Failed)
	uc.log.Info().
		Str("base_key", baseKey).
		Str("to", toLocation).
		Int("total", report.Total).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("lote de traslados procesado")
	return report, nil
}

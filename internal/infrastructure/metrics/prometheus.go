// Package metrics implementa el puerto de métricas del ledger con Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/album-inventory/internal/application/inventory"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

var _ inventory.Metrics = (*Prometheus)(nil)

const namespace = "album_inventory"

// Prometheus contadores del ledger, traslados y lotes.
type Prometheus struct {
	movements  *prometheus.CounterVec
	rejections *prometheus.CounterVec
	transfers  *prometheus.CounterVec
	batchLines *prometheus.CounterVec
	batches    prometheus.Counter
}

// NewPrometheus crea y registra los colectores en reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	m := &Prometheus{
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_total",
			Help:      "Movimientos procesados por el ledger, por dirección y si fueron repetidos.",
		}, []string{"direction", "duplicated"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_rejected_total",
			Help:      "Movimientos rechazados, por tipo de error.",
		}, []string{"kind"}),
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Traslados terminados, por resultado.",
		}, []string{"outcome"}),
		batchLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_lines_total",
			Help:      "Líneas de lotes de traslado, por resultado.",
		}, []string{"result"}),
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Lotes de traslado procesados.",
		}),
	}
	reg.MustRegister(m.movements, m.rejections, m.transfers, m.batchLines, m.batches)
	return m
}

func (m *Prometheus) MovementApplied(direction entity.Direction, duplicated bool) {
	m.movements.WithLabelValues(string(direction), strconv.FormatBool(duplicated)).Inc()
}

func (m *Prometheus) MovementRejected(kind string) {
	m.rejections.WithLabelValues(kind).Inc()
}

func (m *Prometheus) TransferFinished(outcome string) {
	m.transfers.WithLabelValues(outcome).Inc()
}

func (m *Prometheus) BatchFinished(succeeded, failed int) {
	m.batches.Inc()
	m.batchLines.WithLabelValues("succeeded").Add(float64(succeeded))
	m.batchLines.WithLabelValues("failed").Add(float64(failed))
}

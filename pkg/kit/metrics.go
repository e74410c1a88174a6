package kit

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelService   = "service"
	labelInventory = "inventory"
	labelOp        = "op"
	labelResult    = "result"
)

type Metrics struct {
	service string

	Ops    *prometheus.CounterVec
	Weight *prometheus.GaugeVec
	Items  *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer, service string) *Metrics {
	m := &Metrics{
		service: service,
		Ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_operations_total",
				Help: "Inventory operations by outcome",
			},
			[]string{labelService, labelInventory, labelOp, labelResult},
		),
		Weight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inventory_weight",
				Help: "Total weight currently stored",
			},
			[]string{labelService, labelInventory},
		),
		Items: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inventory_items",
				Help: "Distinct items currently stored",
			},
			[]string{labelService, labelInventory},
		),
	}

	reg.MustRegister(m.Ops, m.Weight, m.Items)
	return m
}

func (m *Metrics) ObserveOp(inventoryID, op, result string) {
	m.Ops.WithLabelValues(m.service, inventoryID, op, result).Inc()
}

func (m *Metrics) SetLoad(inventoryID string, weight, items int) {
	m.Weight.WithLabelValues(m.service, inventoryID).Set(float64(weight))
	m.Items.WithLabelValues(m.service, inventoryID).Set(float64(items))
}

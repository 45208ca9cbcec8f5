package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// LedgerMetrics counts ledger mutations.
type LedgerMetrics struct {
	productEvents *prometheus.CounterVec
	movements     *prometheus.CounterVec
	units         *prometheus.CounterVec
	cascaded      prometheus.Counter
}

// NewLedgerMetrics registers the ledger counters on the provided registerer.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	productEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_product_events_total",
		Help: "Catalog mutations by kind.",
	}, []string{"event"})
	movements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_transactions_total",
		Help: "Recorded stock transactions by type.",
	}, []string{"type"})
	units := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_units_moved_total",
		Help: "Units moved by recorded transactions, by type.",
	}, []string{"type"})
	cascaded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "inventory_transactions_cascaded_total",
		Help: "Transactions removed together with their product.",
	})
	reg.MustRegister(productEvents, movements, units, cascaded)
	return &LedgerMetrics{
		productEvents: productEvents,
		movements:     movements,
		units:         units,
		cascaded:      cascaded,
	}
}

// IncProductEvent increments the catalog mutation counter.
func (m *LedgerMetrics) IncProductEvent(event string) {
	if m == nil || m.productEvents == nil {
		return
	}
	m.productEvents.WithLabelValues(normalizeLabel(event)).Inc()
}

// ObserveMovement records one transaction of quantity units.
func (m *LedgerMetrics) ObserveMovement(kind string, quantity int) {
	if m == nil || m.movements == nil {
		return
	}
	label := normalizeLabel(kind)
	m.movements.WithLabelValues(label).Inc()
	if quantity > 0 {
		m.units.WithLabelValues(label).Add(float64(quantity))
	}
}

// AddCascaded records transactions dropped by a product deletion.
func (m *LedgerMetrics) AddCascaded(removed int) {
	if m == nil || m.cascaded == nil || removed <= 0 {
		return
	}
	m.cascaded.Add(float64(removed))
}

// CatalogSnapshot is the live catalog summary exported as gauges.
type CatalogSnapshot struct {
	Products   int
	TotalValue float64
	LowStock   int
}

// RegisterCatalogGauges exports gauges evaluated from snapshot on every scrape.
func RegisterCatalogGauges(reg prometheus.Registerer, snapshot func() CatalogSnapshot) {
	if reg == nil || snapshot == nil {
		return
	}
	reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "inventory_products",
			Help: "Products currently in the catalog.",
		}, func() float64 { return float64(snapshot().Products) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "inventory_stock_value",
			Help: "Sum of price times stock over the catalog.",
		}, func() float64 { return snapshot().TotalValue }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "inventory_low_stock_products",
			Help: "Products at or below their reorder threshold.",
		}, func() float64 { return float64(snapshot().LowStock) }),
	)
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

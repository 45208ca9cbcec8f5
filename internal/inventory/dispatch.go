package inventory

import (
	"context"

	"go.uber.org/multierr"

	"github.com/angelmondragon/inventory-ledger/pkg/logger"
	"github.com/angelmondragon/inventory-ledger/pkg/metrics"
)

// MultiDispatcher fans an event out to every dispatcher and combines their errors.
type MultiDispatcher []EventDispatcher

func (m MultiDispatcher) Dispatch(event Event) error {
	var err error
	for _, d := range m {
		if d == nil {
			continue
		}
		err = multierr.Append(err, d.Dispatch(event))
	}
	return err
}

// MetricsDispatcher turns ledger events into prometheus counters.
type MetricsDispatcher struct {
	Metrics *metrics.LedgerMetrics
}

func (d MetricsDispatcher) Dispatch(event Event) error {
	switch e := event.(type) {
	case ProductCreated:
		d.Metrics.IncProductEvent("created")
	case ProductUpdated:
		d.Metrics.IncProductEvent("updated")
	case ProductDeleted:
		d.Metrics.IncProductEvent("deleted")
		d.Metrics.AddCascaded(e.RemovedTransactions)
	case StockChanged:
		d.Metrics.ObserveMovement(e.Kind.String(), e.Quantity)
	}
	return nil
}

// LogDispatcher writes each event to the debug log as an audit trail.
type LogDispatcher struct {
	Logger *logger.Logger
}

func (d LogDispatcher) Dispatch(event Event) error {
	if d.Logger == nil {
		return nil
	}
	ctx := d.Logger.WithField(context.Background(), "event", event.Type())
	switch e := event.(type) {
	case ProductCreated:
		ctx = d.Logger.WithProductID(ctx, e.ProductID.String())
	case ProductUpdated:
		ctx = d.Logger.WithProductID(ctx, e.ProductID.String())
	case ProductDeleted:
		ctx = d.Logger.WithFields(d.Logger.WithProductID(ctx, e.ProductID.String()), map[string]any{
			"removed_transactions": e.RemovedTransactions,
		})
	case StockChanged:
		ctx = d.Logger.WithFields(d.Logger.WithProductID(ctx, e.ProductID.String()), map[string]any{
			"transaction_id": e.TransactionID.String(),
			"new_stock":      e.NewStock,
		})
	}
	d.Logger.Debug(ctx, "ledger.event")
	return nil
}

// CatalogSnapshot adapts Stats into the gauge snapshot used by metrics.RegisterCatalogGauges.
func CatalogSnapshot(svc Service) func() metrics.CatalogSnapshot {
	return func() metrics.CatalogSnapshot {
		stats := svc.Stats(context.Background())
		value, _ := stats.TotalValue.Float64()
		return metrics.CatalogSnapshot{
			Products:   stats.TotalProducts,
			TotalValue: value,
			LowStock:   stats.LowStockItems,
		}
	}
}

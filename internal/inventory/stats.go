package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ComputeStats derives the dashboard snapshot. Transactions count toward today when
// their date falls on now's calendar day in now's location.
func ComputeStats(products []Product, transactions []Transaction, now time.Time) InventoryStats {
	stats := InventoryStats{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
	}
	for _, product := range products {
		stats.TotalValue = stats.TotalValue.Add(product.StockValue())
		if product.IsLowStock() {
			stats.LowStockItems++
		}
	}
	for _, tx := range transactions {
		if sameDay(tx.Date, now) {
			stats.TodayTransactions++
		}
	}
	return stats
}

func sameDay(t, now time.Time) bool {
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// LowStockReport keeps products with Stock <= MinStock in catalog order.
func LowStockReport(products []Product) []Product {
	out := make([]Product, 0)
	for _, product := range products {
		if product.IsLowStock() {
			out = append(out, product)
		}
	}
	return out
}

// CategoryValueReport sums stock value per category, highest first. Ties keep the
// order in which categories first appear in the catalog.
func CategoryValueReport(products []Product) []CategoryValue {
	index := map[string]int{}
	out := make([]CategoryValue, 0)
	for _, product := range products {
		i, ok := index[product.Category]
		if !ok {
			i = len(out)
			index[product.Category] = i
			out = append(out, CategoryValue{Category: product.Category, Value: decimal.Zero})
		}
		out[i].Value = out[i].Value.Add(product.StockValue())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	return out
}

func (l *ledger) Stats(_ context.Context) InventoryStats {
	products, transactions := l.snapshot()
	return ComputeStats(products, transactions, l.now())
}

func (l *ledger) LowStock(_ context.Context) []Product {
	products, _ := l.snapshot()
	return LowStockReport(products)
}

func (l *ledger) CategoryValues(_ context.Context) []CategoryValue {
	products, _ := l.snapshot()
	return CategoryValueReport(products)
}

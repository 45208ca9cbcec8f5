package inventory

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/inventory-ledger/pkg/enums"
)

// RecordTransaction appends a stock movement and applies its delta to the product
// under one lock. Any failure leaves both the catalog and the log unchanged.
func (l *ledger) RecordTransaction(ctx context.Context, input TransactionInput) (Transaction, error) {
	if err := validateTransactionInput(input); err != nil {
		return Transaction{}, err
	}

	l.mu.Lock()
	idx := l.indexOf(input.ProductID)
	if idx < 0 {
		l.mu.Unlock()
		return Transaction{}, productNotFound()
	}
	product := l.products[idx]
	if input.Type == enums.TransactionTypeIncoming && input.Quantity > math.MaxInt-product.Stock {
		l.mu.Unlock()
		return Transaction{}, stockOverflow(product)
	}
	delta := input.Type.Sign() * input.Quantity
	if product.Stock+delta < 0 {
		l.mu.Unlock()
		return Transaction{}, insufficientStock(product, input.Quantity)
	}

	now := l.now()
	tx := Transaction{
		ID:          l.nextTransactionID(),
		ProductID:   product.ID,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Price:       input.UnitPrice,
		Total:       input.UnitPrice.Mul(decimal.NewFromInt(int64(input.Quantity))),
		Description: strings.TrimSpace(input.Description),
		Date:        now,
	}
	l.transactions = append(l.transactions, tx)
	product.Stock += delta
	product.UpdatedAt = now
	l.products[idx] = product
	l.mu.Unlock()

	ctx = l.logg.WithFields(l.logg.WithProductID(ctx, product.ID.String()), map[string]any{
		"transaction_id": tx.ID.String(),
		"type":           tx.Type.String(),
		"quantity":       tx.Quantity,
		"stock":          product.Stock,
	})
	l.logg.Info(ctx, "transaction.recorded")
	if product.IsLowStock() {
		l.logg.Warn(ctx, "product.low_stock")
	}
	l.dispatch(ctx, StockChanged{
		ProductID:     product.ID,
		TransactionID: tx.ID,
		Kind:          tx.Type,
		Quantity:      tx.Quantity,
		NewStock:      product.Stock,
		LowStock:      product.IsLowStock(),
	})
	return tx, nil
}

// ListTransactions returns the log most recent first.
func (l *ledger) ListTransactions(_ context.Context, filter TransactionFilter) []Transaction {
	l.mu.RLock()
	out := make([]Transaction, 0, len(l.transactions))
	for i := len(l.transactions) - 1; i >= 0; i-- {
		tx := l.transactions[i]
		if filter.ProductID != nil && tx.ProductID != *filter.ProductID {
			continue
		}
		out = append(out, tx)
	}
	l.mu.RUnlock()

	SortByRecency(out)
	return out
}

// SortByRecency orders transactions by date descending. Equal dates keep their
// current relative order.
func SortByRecency(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}

// ResolveProductName finds the name of the product a transaction refers to.
func ResolveProductName(products []Product, tx Transaction) (string, bool) {
	for _, product := range products {
		if product.ID == tx.ProductID {
			return product.Name, true
		}
	}
	return "", false
}

package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/inventory-ledger/pkg/enums"
)

// Product is a catalog entry. Stock and MinStock are never negative.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	Image       *string         `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsLowStock reports whether the product has reached its reorder threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// StockValue is price times units on hand.
func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

func (p Product) clone() Product {
	out := p
	if p.Image != nil {
		image := *p.Image
		out.Image = &image
	}
	return out
}

// Transaction is an immutable stock movement. Total is fixed at creation.
type Transaction struct {
	ID          uuid.UUID             `json:"id"`
	ProductID   uuid.UUID             `json:"product_id"`
	Type        enums.TransactionType `json:"type"`
	Quantity    int                   `json:"quantity"`
	Price       decimal.Decimal       `json:"price"`
	Total       decimal.Decimal       `json:"total"`
	Description string                `json:"description"`
	Date        time.Time             `json:"date"`
}

// InventoryStats is recomputed on every read and never stored.
type InventoryStats struct {
	TotalProducts     int             `json:"total_products"`
	TotalValue        decimal.Decimal `json:"total_value"`
	LowStockItems     int             `json:"low_stock_items"`
	TodayTransactions int             `json:"today_transactions"`
}

// CategoryValue is one row of the category value report.
type CategoryValue struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// ProductInput is the full product payload for create and update.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	MinStock    int
	Image       *string
}

// TransactionInput captures a stock movement request.
type TransactionInput struct {
	ProductID   uuid.UUID
	Type        enums.TransactionType
	Quantity    int
	UnitPrice   decimal.Decimal
	Description string
}

// TransactionFilter narrows ListTransactions. A nil ProductID lists everything.
type TransactionFilter struct {
	ProductID *uuid.UUID
}

// DeleteResult reports what a product deletion removed.
type DeleteResult struct {
	ProductID           uuid.UUID `json:"product_id"`
	RemovedTransactions int       `json:"removed_transactions"`
}

package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/inventory-ledger/pkg/logger"
)

// Service is the ledger boundary: the only way to read or change products and transactions.
type Service interface {
	CreateProduct(ctx context.Context, input ProductInput) (Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input ProductInput) (Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) (DeleteResult, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (Product, error)
	ListProducts(ctx context.Context, search string) []Product

	RecordTransaction(ctx context.Context, input TransactionInput) (Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) []Transaction

	Stats(ctx context.Context) InventoryStats
	LowStock(ctx context.Context) []Product
	CategoryValues(ctx context.Context) []CategoryValue
}

// ServiceParams wires the ledger. Now and NewID default to the system clock and uuid.New.
type ServiceParams struct {
	Now        func() time.Time
	NewID      func() uuid.UUID
	Dispatcher EventDispatcher
	Logger     *logger.Logger
	Seed       *SeedData
}

// ledger owns the catalog and the transaction log behind a single lock.
type ledger struct {
	mu           sync.RWMutex
	products     []Product
	transactions []Transaction

	now        func() time.Time
	newID      func() uuid.UUID
	dispatcher EventDispatcher
	logg       *logger.Logger
}

// NewService builds an empty ledger and loads params.Seed into it when present.
func NewService(params ServiceParams) (Service, error) {
	l := &ledger{
		now:        params.Now,
		newID:      params.NewID,
		dispatcher: params.Dispatcher,
		logg:       params.Logger,
	}
	if l.now == nil {
		l.now = time.Now
	}
	if l.newID == nil {
		l.newID = uuid.New
	}
	if l.logg == nil {
		l.logg = logger.Nop()
	}
	if params.Seed != nil {
		if err := l.load(*params.Seed); err != nil {
			return nil, fmt.Errorf("seed ledger: %w", err)
		}
	}
	return l, nil
}

// indexOf must be called with the lock held.
func (l *ledger) indexOf(productID uuid.UUID) int {
	for i := range l.products {
		if l.products[i].ID == productID {
			return i
		}
	}
	return -1
}

// nextProductID must be called with the lock held.
func (l *ledger) nextProductID() uuid.UUID {
	for {
		id := l.newID()
		if id != uuid.Nil && l.indexOf(id) < 0 {
			return id
		}
	}
}

// nextTransactionID must be called with the lock held.
func (l *ledger) nextTransactionID() uuid.UUID {
	for {
		id := l.newID()
		if id == uuid.Nil {
			continue
		}
		taken := false
		for i := range l.transactions {
			if l.transactions[i].ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

func (l *ledger) dispatch(ctx context.Context, event Event) {
	if l.dispatcher == nil {
		return
	}
	if err := l.dispatcher.Dispatch(event); err != nil {
		l.logg.Error(l.logg.WithField(ctx, "event", event.Type()), "ledger.dispatch_failed", err)
	}
}

func (l *ledger) snapshot() ([]Product, []Transaction) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneProducts(l.products), append([]Transaction(nil), l.transactions...)
}

func cloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i := range products {
		out[i] = products[i].clone()
	}
	return out
}

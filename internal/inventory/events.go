package inventory

import (
	"github.com/google/uuid"

	"github.com/angelmondragon/inventory-ledger/pkg/enums"
)

// Event is emitted after a ledger mutation commits.
type Event interface{ Type() string }

// EventDispatcher receives ledger events. Errors are logged and never undo the mutation.
type EventDispatcher interface{ Dispatch(event Event) error }

type ProductCreated struct {
	ProductID uuid.UUID
	Name      string
	Category  string
}

func (e ProductCreated) Type() string { return "product.created" }

type ProductUpdated struct {
	ProductID uuid.UUID
	OldStock  int
	NewStock  int
}

func (e ProductUpdated) Type() string { return "product.updated" }

type ProductDeleted struct {
	ProductID           uuid.UUID
	RemovedTransactions int
}

func (e ProductDeleted) Type() string { return "product.deleted" }

type StockChanged struct {
	ProductID     uuid.UUID
	TransactionID uuid.UUID
	Kind          enums.TransactionType
	Quantity      int
	NewStock      int
	LowStock      bool
}

func (e StockChanged) Type() string { return "stock.changed" }

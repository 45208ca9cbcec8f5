package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/inventory-ledger/api/responses"
	"github.com/angelmondragon/inventory-ledger/api/validators"
	"github.com/angelmondragon/inventory-ledger/internal/inventory"
	"github.com/angelmondragon/inventory-ledger/pkg/enums"
	pkgerrors "github.com/angelmondragon/inventory-ledger/pkg/errors"
	"github.com/angelmondragon/inventory-ledger/pkg/logger"
)

// RemovedProductLabel stands in for the name of a product that no longer exists.
const RemovedProductLabel = "product removed"

type transactionView struct {
	inventory.Transaction
	ProductName string `json:"product_name"`
}

// ListTransactions returns the log most recent first, optionally for one ?product_id=.
func ListTransactions(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseQueryUUID(r, "product_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		transactions := svc.ListTransactions(r.Context(), inventory.TransactionFilter{ProductID: productID})
		products := svc.ListProducts(r.Context(), "")

		views := make([]transactionView, 0, len(transactions))
		for _, tx := range transactions {
			views = append(views, newTransactionView(products, tx))
		}
		responses.WriteSuccess(w, views)
	}
}

func RecordTransaction(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload transactionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Price == nil {
			product, err := svc.GetProduct(r.Context(), input.ProductID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.UnitPrice = product.Price
		}

		tx, err := svc.RecordTransaction(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := svc.ListProducts(r.Context(), "")
		responses.WriteSuccessStatus(w, http.StatusCreated, newTransactionView(products, tx))
	}
}

func newTransactionView(products []inventory.Product, tx inventory.Transaction) transactionView {
	name, ok := inventory.ResolveProductName(products, tx)
	if !ok {
		name = RemovedProductLabel
	}
	return transactionView{Transaction: tx, ProductName: name}
}

// transactionRequest.Price defaults to the product's current price when omitted.
type transactionRequest struct {
	ProductID   uuid.UUID        `json:"product_id" validate:"required"`
	Type        string           `json:"type" validate:"required"`
	Quantity    int              `json:"quantity" validate:"gt=0"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description" validate:"max=2000"`
}

func (t transactionRequest) toInput() (inventory.TransactionInput, error) {
	kind, err := enums.ParseTransactionType(t.Type)
	if err != nil {
		return inventory.TransactionInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transaction").
			WithDetails(map[string]string{"type": "must be one of incoming, outgoing"})
	}
	input := inventory.TransactionInput{
		ProductID:   t.ProductID,
		Type:        kind,
		Quantity:    t.Quantity,
		Description: t.Description,
	}
	if t.Price != nil {
		input.UnitPrice = *t.Price
	}
	return input, nil
}

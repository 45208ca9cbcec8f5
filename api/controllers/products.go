package controllers

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/inventory-ledger/api/responses"
	"github.com/angelmondragon/inventory-ledger/api/validators"
	"github.com/angelmondragon/inventory-ledger/internal/inventory"
	"github.com/angelmondragon/inventory-ledger/pkg/logger"
)

const productIDParam = "productId"

// ListProducts returns the catalog, optionally narrowed by ?search=.
func ListProducts(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := validators.ParseSearch(r, "search")
		responses.WriteSuccess(w, svc.ListProducts(r.Context(), search))
	}
}

func GetProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseURLParamUUID(r, productIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

func CreateProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// UpdateProduct replaces every editable field. Stock set here is not a transaction.
func UpdateProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseURLParamUUID(r, productIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), productID, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// DeleteProduct removes the product and every transaction that references it.
func DeleteProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseURLParamUUID(r, productIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.DeleteProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("X-Removed-Transactions", strconv.Itoa(result.RemovedTransactions))
		responses.WriteNoContent(w)
	}
}

type productRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"max=2000"`
	Category    string           `json:"category" validate:"max=200"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       *int             `json:"stock" validate:"required"`
	MinStock    *int             `json:"min_stock" validate:"required"`
	Image       *string          `json:"image,omitempty" validate:"omitempty,max=2048"`
}

func (p productRequest) toInput() inventory.ProductInput {
	input := inventory.ProductInput{
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
	}
	if p.Price != nil {
		input.Price = *p.Price
	}
	if p.Stock != nil {
		input.Stock = *p.Stock
	}
	if p.MinStock != nil {
		input.MinStock = *p.MinStock
	}
	return input
}

package controllers

import (
	"net/http"

	"github.com/angelmondragon/inventory-ledger/api/responses"
	"github.com/angelmondragon/inventory-ledger/internal/inventory"
	"github.com/angelmondragon/inventory-ledger/pkg/logger"
)

func Stats(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Stats(r.Context()))
	}
}

// LowStockReport lists products at or below their reorder threshold.
func LowStockReport(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.LowStock(r.Context()))
	}
}

// CategoryValueReport lists stock value per category, largest first.
func CategoryValueReport(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.CategoryValues(r.Context()))
	}
}

// Categories lists suggested categories plus any other category already in the catalog.
func Categories(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, inventory.Categories(svc.ListProducts(r.Context(), "")))
	}
}

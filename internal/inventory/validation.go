package inventory

import (
	"fmt"
	"math"
	"strings"

	pkgerrors "github.com/angelmondragon/inventory-ledger/pkg/errors"
)

func normalizeProductInput(input ProductInput) ProductInput {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)
	if input.Image != nil {
		image := strings.TrimSpace(*input.Image)
		if image == "" {
			input.Image = nil
		} else {
			input.Image = &image
		}
	}
	return input
}

func validateProductInput(input ProductInput) error {
	details := map[string]string{}
	if input.Name == "" {
		details["name"] = "is required"
	}
	if input.Price.IsNegative() {
		details["price"] = "must be at least 0"
	}
	if input.Stock < 0 {
		details["stock"] = "must be at least 0"
	}
	if input.MinStock < 0 {
		details["min_stock"] = "must be at least 0"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid product").WithDetails(details)
	}
	return nil
}

func validateTransactionInput(input TransactionInput) error {
	details := map[string]string{}
	if input.Quantity <= 0 {
		details["quantity"] = "must be greater than 0"
	}
	if !input.Type.IsValid() {
		details["type"] = "must be one of incoming, outgoing"
	}
	if input.UnitPrice.IsNegative() {
		details["price"] = "must be at least 0"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid transaction").WithDetails(details)
	}
	return nil
}

func insufficientStock(product Product, requested int) error {
	return pkgerrors.New(pkgerrors.CodeInsufficientStock, "outgoing quantity exceeds available stock").
		WithDetails(map[string]any{
			"product_id": product.ID.String(),
			"available":  product.Stock,
			"requested":  requested,
		})
}

// stockOverflow rejects an incoming quantity the stock counter cannot hold.
func stockOverflow(product Product) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid transaction").
		WithDetails(map[string]string{
			"quantity": fmt.Sprintf("must be at most %d for this product", math.MaxInt-product.Stock),
		})
}

func productNotFound() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

package inventory

import (
	"context"

	"github.com/google/uuid"
)

// CreateProduct validates the payload and appends a new product with a fresh id.
func (l *ledger) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	input = normalizeProductInput(input)
	if err := validateProductInput(input); err != nil {
		return Product{}, err
	}

	l.mu.Lock()
	now := l.now()
	product := Product{
		ID:          l.nextProductID(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		MinStock:    input.MinStock,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	l.products = append(l.products, product)
	l.mu.Unlock()

	ctx = l.logg.WithProductID(ctx, product.ID.String())
	l.logg.Info(ctx, "product.created")
	l.dispatch(ctx, ProductCreated{ProductID: product.ID, Name: product.Name, Category: product.Category})
	return product.clone(), nil
}

// UpdateProduct overwrites every field except ID and CreatedAt. Stock is a direct
// overwrite and records no transaction.
func (l *ledger) UpdateProduct(ctx context.Context, productID uuid.UUID, input ProductInput) (Product, error) {
	input = normalizeProductInput(input)
	if err := validateProductInput(input); err != nil {
		return Product{}, err
	}

	l.mu.Lock()
	idx := l.indexOf(productID)
	if idx < 0 {
		l.mu.Unlock()
		return Product{}, productNotFound()
	}
	current := l.products[idx]
	updated := Product{
		ID:          current.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		MinStock:    input.MinStock,
		Image:       input.Image,
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   l.now(),
	}
	l.products[idx] = updated
	l.mu.Unlock()

	ctx = l.logg.WithProductID(ctx, productID.String())
	l.logg.Info(ctx, "product.updated")
	l.dispatch(ctx, ProductUpdated{ProductID: productID, OldStock: current.Stock, NewStock: updated.Stock})
	return updated.clone(), nil
}

// DeleteProduct removes the product and every transaction that references it.
func (l *ledger) DeleteProduct(ctx context.Context, productID uuid.UUID) (DeleteResult, error) {
	l.mu.Lock()
	idx := l.indexOf(productID)
	if idx < 0 {
		l.mu.Unlock()
		return DeleteResult{}, productNotFound()
	}
	l.products = append(l.products[:idx:idx], l.products[idx+1:]...)

	kept := make([]Transaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		if tx.ProductID != productID {
			kept = append(kept, tx)
		}
	}
	removed := len(l.transactions) - len(kept)
	l.transactions = kept
	l.mu.Unlock()

	result := DeleteResult{ProductID: productID, RemovedTransactions: removed}
	ctx = l.logg.WithFields(l.logg.WithProductID(ctx, productID.String()), map[string]any{
		"removed_transactions": removed,
	})
	l.logg.Info(ctx, "product.deleted")
	l.dispatch(ctx, ProductDeleted{ProductID: productID, RemovedTransactions: removed})
	return result, nil
}

func (l *ledger) GetProduct(_ context.Context, productID uuid.UUID) (Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx := l.indexOf(productID)
	if idx < 0 {
		return Product{}, productNotFound()
	}
	return l.products[idx].clone(), nil
}

// ListProducts returns the catalog in insertion order, filtered by search when non-empty.
func (l *ledger) ListProducts(_ context.Context, search string) []Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return FilterProducts(cloneProducts(l.products), search)
}

package inventory

import "strings"

// MatchesSearch is a case-insensitive substring match on name or category.
func MatchesSearch(product Product, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(product.Name), term) ||
		strings.Contains(strings.ToLower(product.Category), term)
}

// FilterProducts keeps the products matching term, preserving order.
func FilterProducts(products []Product, term string) []Product {
	if strings.TrimSpace(term) == "" {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, product := range products {
		if MatchesSearch(product, term) {
			out = append(out, product)
		}
	}
	return out
}

package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestedCategoriesReturnsCopy(t *testing.T) {
	got := SuggestedCategories()
	got[0] = "mutated"

	assert.Equal(t, "Электроника", SuggestedCategories()[0])
	assert.Len(t, SuggestedCategories(), 6)
}

func TestCategoriesAppendsCategoriesInUse(t *testing.T) {
	products := []Product{
		{Category: "Одежда"},
		{Category: "Игрушки"},
		{Category: ""},
		{Category: "Книги"},
		{Category: "Игрушки"},
	}

	got := Categories(products)

	assert.Equal(t, []string{
		"Электроника", "Одежда", "Продукты", "Канцелярия", "Косметика", "Спорт",
		"Игрушки", "Книги",
	}, got)
}

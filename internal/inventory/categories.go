package inventory

// suggestedCategories are offered by product forms. Category stays free text; these are
// never enforced.
var suggestedCategories = []string{
	"Электроника",
	"Одежда",
	"Продукты",
	"Канцелярия",
	"Косметика",
	"Спорт",
}

// SuggestedCategories returns a copy of the default category list.
func SuggestedCategories() []string {
	return append([]string(nil), suggestedCategories...)
}

// Categories lists the suggested categories followed by any other category in use,
// in catalog order without duplicates.
func Categories(products []Product) []string {
	out := SuggestedCategories()
	seen := make(map[string]bool, len(out)+len(products))
	for _, category := range out {
		seen[category] = true
	}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

package constants

// ProductCategory labels a receipt item with the supermarket aisle it
// belongs to. The set is closed; classification falls back to Overig.
type ProductCategory string

const (
	Groente    ProductCategory = "groente"
	Fruit      ProductCategory = "fruit"
	Vlees      ProductCategory = "vlees"
	Vis        ProductCategory = "vis"
	Zuivel     ProductCategory = "zuivel"
	Brood      ProductCategory = "brood"
	Dranken    ProductCategory = "dranken"
	Pasta      ProductCategory = "pasta"
	Rijst      ProductCategory = "rijst"
	Conserven  ProductCategory = "conserven"
	Kruiden    ProductCategory = "kruiden"
	Snacks     ProductCategory = "snacks"
	Diepvries  ProductCategory = "diepvries"
	Huishouden ProductCategory = "huishouden"
	Overig     ProductCategory = "overig"
)

var allCategories = []ProductCategory{
	Groente,
	Fruit,
	Vlees,
	Vis,
	Zuivel,
	Brood,
	Dranken,
	Pasta,
	Rijst,
	Conserven,
	Kruiden,
	Snacks,
	Diepvries,
	Huishouden,
	Overig,
}

// AllCategories returns the closed category set in declaration order.
func AllCategories() []ProductCategory {
	out := make([]ProductCategory, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// IsValidCategory reports whether s is one of the known category values.
func IsValidCategory(s string) bool {
	for _, cat := range allCategories {
		if s == string(cat) {
			return true
		}
	}
	return false
}

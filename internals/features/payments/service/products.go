package service

// Product is one of the fixed priced offerings sold through checkout.
// Amounts are in minor currency units (cents).
type Product struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

var products = map[string]Product{
	"private-lesson": {
		Key:         "private-lesson",
		Name:        "Private Lesson",
		Description: "One 55-minute private dance lesson with a Studio E instructor",
		Amount:      8500,
	},
	"five-lesson-package": {
		Key:         "five-lesson-package",
		Name:        "5 Lesson Package",
		Description: "Five private lessons, scheduled at your own pace",
		Amount:      40000,
	},
	"ten-lesson-package": {
		Key:         "ten-lesson-package",
		Name:        "10 Lesson Package",
		Description: "Ten private lessons, scheduled at your own pace",
		Amount:      76500,
	},
	"drop-in-class": {
		Key:         "drop-in-class",
		Name:        "Drop-In Group Class",
		Description: "Single admission to any weekly group class",
		Amount:      2000,
	},
}

// LookupProduct resolves a product key against the fixed catalog.
func LookupProduct(key string) (Product, bool) {
	p, ok := products[key]
	return p, ok
}

// ProductCatalog returns the catalog for the pricing page.
func ProductCatalog() []Product {
	out := make([]Product, 0, len(products))
	for _, key := range []string{"private-lesson", "five-lesson-package", "ten-lesson-package", "drop-in-class"} {
		out = append(out, products[key])
	}
	return out
}

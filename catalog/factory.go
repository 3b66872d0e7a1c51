package catalog

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// productNames is deliberately short so that a batch of random products is
// likely to contain duplicate names, which the name-filter tests rely on.
var productNames = []string{
	"Hat", "Pants", "Shirt", "Apple", "Banana", "Pots",
	"Towels", "Ford", "Chevy", "Hammer", "Wrench",
}

// RandomProduct generates a product with a name from a fixed set, a unique
// description, a random price between 0.50 and 2000.00, and random
// availability and category.
func RandomProduct() Product {
	cents := 50 + rand.Int63n(200000-50+1)
	return Product{
		Name:        productNames[rand.Intn(len(productNames))],
		Description: fmt.Sprintf("Test product %s", uuid.NewString()),
		Price:       decimal.New(cents, -2),
		Available:   rand.Intn(2) == 0,
		Category:    Categories[rand.Intn(len(Categories))],
	}
}

// RandomProducts generates count random products.
func RandomProducts(count int) []Product {
	products := make([]Product, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, RandomProduct())
	}
	return products
}

package catalog

import (
	"fmt"
	"iter"
	"math"
)

// Category is an ordered collection of products with aggregate views.
// Insertion order is preserved and duplicate references are allowed.
type Category struct {
	Name        string
	Description string

	// TotalQuantity is the sum of member quantities captured at
	// construction time; AddProduct does not refresh it.
	TotalQuantity int

	products []*Product
	reg      *Registry
}

// NewCategory constructs a category over the given products, snapshots
// the total quantity, and advances the registry counters.
func NewCategory(name, description string, products []*Product, reg *Registry) *Category {
	c := &Category{
		Name:        name,
		Description: description,
		products:    products,
		reg:         reg,
	}
	for _, p := range products {
		c.TotalQuantity += p.Quantity
	}
	if reg != nil {
		reg.categories.Add(1)
		reg.products.Store(int64(len(products)))
	}
	return c
}

// AddProduct admits only members of the product family. Anything else,
// including nil, fails with ErrTypeMismatch and leaves the category
// untouched. On success the registry's category counter advances;
// TotalQuantity keeps its construction-time snapshot.
func (c *Category) AddProduct(v any) error {
	it, ok := v.(item)
	if !ok || it.base() == nil {
		return ErrTypeMismatch
	}
	c.products = append(c.products, it.base())
	if c.reg != nil {
		c.reg.categories.Add(1)
	}
	return nil
}

// Products returns the member products in insertion order.
func (c *Category) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// Listing returns a lazy, restartable view of the member products as
// human-readable lines in insertion order.
func (c *Category) Listing() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range c.products {
			if !yield(fmt.Sprintf("%s, %v. Остаток: %d шт.", p.Name, p.price, p.Quantity)) {
				return
			}
		}
	}
}

// CalculateTotal sums price × quantity over the member products using
// their current prices and quantities.
func (c *Category) CalculateTotal() float64 {
	var total float64
	for _, p := range c.products {
		total += p.price * float64(p.Quantity)
	}
	return total
}

// AveragePrice divides the sum of unit prices by the total item count
// across products, rounded to one decimal place. A category with no
// products (or no items) yields 0.
func (c *Category) AveragePrice() float64 {
	var prices float64
	var items int
	for _, p := range c.products {
		prices += p.price
		items += p.Quantity
	}
	if items == 0 {
		return 0
	}
	return math.Round(prices/float64(items)*10) / 10
}

func (c *Category) String() string {
	return fmt.Sprintf("%s, количество продуктов: %d шт.", c.Name, c.TotalQuantity)
}

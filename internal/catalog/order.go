package catalog

import "fmt"

// Order is a single product/quantity line item. It is immutable after
// construction and holds a non-owning reference to the product.
type Order struct {
	Product  *Product
	Quantity int
}

// NewOrder creates an order for the given product. A zero quantity is
// normalized to the default of 1.
func NewOrder(product *Product, quantity int) *Order {
	if quantity == 0 {
		quantity = 1
	}
	return &Order{Product: product, Quantity: quantity}
}

// CalculateTotal computes the order cost at the product's current price,
// fresh on every call.
func (o *Order) CalculateTotal() float64 {
	return o.Product.Price() * float64(o.Quantity)
}

func (o *Order) String() string {
	return fmt.Sprintf("Заказ: %s, %d шт., Итого: %v руб.", o.Product.Name, o.Quantity, o.CalculateTotal())
}

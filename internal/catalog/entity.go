// Package catalog implements the retail catalog domain model: products,
// product variants, categories, and orders.
package catalog

import "errors"

// Totaler is implemented by aggregates that can report the total value of
// their contents. Category and Order satisfy it independently.
type Totaler interface {
	CalculateTotal() float64
}

// item seals the product family: only Product and the types embedding it
// can satisfy the interface, so nothing foreign is ever admitted into a
// category.
type item interface {
	base() *Product
}

var (
	// ErrZeroQuantity rejects construction of a product with zero quantity.
	ErrZeroQuantity = errors.New("product quantity must not be zero")
	// ErrTypeMismatch rejects an operand outside the product family, or a
	// combine across different product variants.
	ErrTypeMismatch = errors.New("type mismatch")
)

var (
	_ Totaler = (*Category)(nil)
	_ Totaler = (*Order)(nil)
)

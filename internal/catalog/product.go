package catalog

import (
	"fmt"
	"math"

	"github.com/fairyhunter13/retail-catalog-service/internal/model"
	"github.com/fairyhunter13/retail-catalog-service/internal/obs"
)

// kind tags the concrete product variant. Combining products compares
// kinds, so two variants never mix even though both are Products.
type kind string

const (
	kindProduct    kind = "product"
	kindSmartphone kind = "smartphone"
	kindLawnGrass  kind = "lawn_grass"
)

// Product is a priced, quantified catalog item. The price is guarded:
// it changes only through SetPrice.
type Product struct {
	Name        string
	Description string
	Quantity    int

	price float64
	// value is the price × quantity snapshot taken at construction.
	// Merging more quantity into the product does not refresh it.
	value float64
	kind  kind
}

func newProduct(k kind, name, description string, price float64, quantity int) (*Product, error) {
	if quantity == 0 {
		return nil, ErrZeroQuantity
	}
	p := &Product{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		price:       price,
		value:       price * float64(quantity),
		kind:        k,
	}
	obs.Logger.Info("product_created",
		"kind", string(k),
		"name", name,
		"price", price,
		"quantity", quantity,
	)
	return p, nil
}

// NewProduct constructs a plain product. Construction fails with
// ErrZeroQuantity when quantity is zero.
func NewProduct(name, description string, price float64, quantity int) (*Product, error) {
	return newProduct(kindProduct, name, description, price, quantity)
}

// Price returns the current price.
func (p *Product) Price() float64 { return p.price }

// Value returns the price × quantity snapshot taken at construction.
func (p *Product) Value() float64 { return p.value }

// SetPrice applies newPrice under the pricing rules. A non-positive price
// is rejected; a markdown is applied only when the supplied policy
// approves it (a nil policy declines). Both rejections are advisory
// outcomes, not errors: they leave the price unchanged and surface only
// on the advisory log channel.
func (p *Product) SetPrice(newPrice float64, confirm ConfirmPolicy) {
	if newPrice <= 0 {
		obs.Logger.Warn("price_rejected",
			"name", p.Name,
			"price", newPrice,
			"reason", "price must be positive",
		)
		return
	}
	if newPrice < p.price {
		if confirm == nil {
			confirm = DenyAll
		}
		if !confirm.ConfirmMarkdown(p.Name, p.price, newPrice) {
			obs.Logger.Info("price_markdown_declined",
				"name", p.Name,
				"from", p.price,
				"to", newPrice,
			)
			return
		}
	}
	p.price = newPrice
	obs.Logger.Info("price_changed", "name", p.Name, "price", newPrice)
}

// Add returns the combined value of two products of the same variant.
// Products of different variants do not combine, even though both are
// part of the product family.
func (p *Product) Add(other *Product) (float64, error) {
	if other == nil || p.kind != other.kind {
		return 0, ErrTypeMismatch
	}
	return p.value + other.value, nil
}

// MergeOrCreate folds rec into the first product in existing carrying the
// same name: quantity accumulates and the price is raised to the maximum
// of the two through the guarded setter, and the matched instance itself
// is returned. When no name matches, a fresh product is constructed and
// returned without being appended; growing the list is the caller's
// responsibility.
func MergeOrCreate(rec model.ProductRecord, existing []*Product, confirm ConfirmPolicy) (*Product, error) {
	for _, p := range existing {
		if p.Name == rec.Name {
			p.Quantity += rec.Quantity
			p.SetPrice(math.Max(p.price, rec.Price), confirm)
			return p, nil
		}
	}
	return NewProduct(rec.Name, rec.Description, rec.Price, rec.Quantity)
}

func (p *Product) String() string {
	return fmt.Sprintf("%s, %v руб. Остаток: %d шт.", p.Name, p.price, p.Quantity)
}

func (p *Product) base() *Product { return p }

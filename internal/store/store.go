// Package store holds the in-memory catalog state shared by the HTTP
// layer: loaded categories, the product universe, and created orders.
//
// Domain objects stay private to the store. Readers get value snapshots
// taken while the lock is held, so no caller ever observes a product or
// category mid-mutation.
package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/fairyhunter13/retail-catalog-service/internal/catalog"
	"github.com/fairyhunter13/retail-catalog-service/internal/model"
)

var (
	// ErrNoCategory reports an unknown category name.
	ErrNoCategory = errors.New("category not found")
	// ErrNoProduct reports an unknown product name.
	ErrNoProduct = errors.New("product not found")
)

// ProductSnapshot is a point-in-time copy of a product's state.
type ProductSnapshot struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Value       float64
	Display     string
}

// CategorySnapshot is a point-in-time copy of a category's aggregates.
// Listing is populated only where the caller asked for member lines.
type CategorySnapshot struct {
	Name          string
	Description   string
	TotalQuantity int
	Total         float64
	AveragePrice  float64
	Display       string
	Listing       []string
}

// OrderSnapshot is a point-in-time copy of an order, totaled at the
// product price in effect when the snapshot was taken.
type OrderSnapshot struct {
	ID       string
	Product  string
	Quantity int
	Total    float64
	Display  string
}

type Store struct {
	mu         sync.RWMutex
	categories []*catalog.Category
	byName     map[string]*catalog.Category
	// universe is the shared product list the merge factory scans; every
	// product in every category is registered here.
	universe []*catalog.Product
	orders   map[string]*catalog.Order
}

func New() *Store {
	return &Store{
		byName: make(map[string]*catalog.Category),
		orders: make(map[string]*catalog.Order),
	}
}

func snapshotProduct(p *catalog.Product) ProductSnapshot {
	return ProductSnapshot{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price(),
		Quantity:    p.Quantity,
		Value:       p.Value(),
		Display:     p.String(),
	}
}

func snapshotCategory(c *catalog.Category, withListing bool) CategorySnapshot {
	s := CategorySnapshot{
		Name:          c.Name,
		Description:   c.Description,
		TotalQuantity: c.TotalQuantity,
		Total:         c.CalculateTotal(),
		AveragePrice:  c.AveragePrice(),
		Display:       c.String(),
	}
	if withListing {
		s.Listing = slices.Collect(c.Listing())
	}
	return s
}

func snapshotOrder(id string, o *catalog.Order) OrderSnapshot {
	return OrderSnapshot{
		ID:       id,
		Product:  o.Product.Name,
		Quantity: o.Quantity,
		Total:    o.CalculateTotal(),
		Display:  o.String(),
	}
}

func (s *Store) findProduct(name string) (*catalog.Product, bool) {
	for _, p := range s.universe {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// ReplaceCatalog swaps in a freshly loaded catalog, rebuilding the
// category index and the product universe. Orders survive a reload.
func (s *Store) ReplaceCatalog(categories []*catalog.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = categories
	s.byName = make(map[string]*catalog.Category, len(categories))
	s.universe = nil
	for _, c := range categories {
		s.byName[c.Name] = c
		s.universe = append(s.universe, c.Products()...)
	}
}

// Categories returns snapshots of the categories in document order,
// without member listings.
func (s *Store) Categories() []CategorySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CategorySnapshot, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, snapshotCategory(c, false))
	}
	return out
}

// Category snapshots a category by name, member listing included.
func (s *Store) Category(name string) (CategorySnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byName[name]
	if !ok {
		return CategorySnapshot{}, false
	}
	return snapshotCategory(c, true), true
}

// Product snapshots the first product in the universe with the given name.
func (s *Store) Product(name string) (ProductSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.findProduct(name)
	if !ok {
		return ProductSnapshot{}, false
	}
	return snapshotProduct(p), true
}

// MergeProduct runs the merge-or-create factory over the universe. A
// fresh product joins the universe; a name match mutates the existing
// instance in place. The second result reports whether a new product was
// created.
func (s *Store) MergeProduct(rec model.ProductRecord, confirm catalog.ConfirmPolicy) (ProductSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := catalog.MergeOrCreate(rec, s.universe, confirm)
	if err != nil {
		return ProductSnapshot{}, false, err
	}
	for _, q := range s.universe {
		if q == p {
			return snapshotProduct(p), false, nil
		}
	}
	s.universe = append(s.universe, p)
	return snapshotProduct(p), true, nil
}

// AddToCategory appends p to the named category and registers it in the
// product universe. The product must not be shared before this call; the
// store owns it afterwards.
func (s *Store) AddToCategory(name string, p *catalog.Product) (ProductSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byName[name]
	if !ok {
		return ProductSnapshot{}, ErrNoCategory
	}
	if err := c.AddProduct(p); err != nil {
		return ProductSnapshot{}, err
	}
	s.universe = append(s.universe, p)
	return snapshotProduct(p), nil
}

// UpdatePrice runs the guarded price setter on the named product and
// returns the price in effect afterwards.
func (s *Store) UpdatePrice(name string, newPrice float64, confirm catalog.ConfirmPolicy) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.findProduct(name)
	if !ok {
		return 0, false
	}
	p.SetPrice(newPrice, confirm)
	return p.Price(), true
}

// CombineProducts adds up the values of two same-variant products looked
// up by name. A missing name fails with ErrNoProduct naming the product.
func (s *Store) CombineProducts(a, b string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pa, ok := s.findProduct(a)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoProduct, a)
	}
	pb, ok := s.findProduct(b)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoProduct, b)
	}
	return pa.Add(pb)
}

// CreateOrder builds an order for the named product, stores it under a
// fresh id, and snapshots it. The second result reports whether the
// product exists.
func (s *Store) CreateOrder(productName string, quantity int) (OrderSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.findProduct(productName)
	if !ok {
		return OrderSnapshot{}, false
	}
	id := uuid.NewString()
	o := catalog.NewOrder(p, quantity)
	s.orders[id] = o
	return snapshotOrder(id, o), true
}

// Order snapshots a stored order by id, totaled at the current price.
func (s *Store) Order(id string) (OrderSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return OrderSnapshot{}, false
	}
	return snapshotOrder(id, o), true
}

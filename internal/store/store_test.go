package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/fairyhunter13/retail-catalog-service/internal/catalog"
	"github.com/fairyhunter13/retail-catalog-service/internal/model"
)

func mustProduct(t *testing.T, name string, price float64, quantity int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, "", price, quantity)
	if err != nil {
		t.Fatalf("new product: %v", err)
	}
	return p
}

func seed(t *testing.T) *Store {
	t.Helper()
	s := New()
	reg := catalog.NewRegistry()
	p1 := mustProduct(t, "p1", 100, 5)
	p2 := mustProduct(t, "p2", 200, 2)
	c := catalog.NewCategory("c1", "first", []*catalog.Product{p1, p2}, reg)
	s.ReplaceCatalog([]*catalog.Category{c})
	return s
}

func TestStoreLookups(t *testing.T) {
	s := seed(t)
	c, ok := s.Category("c1")
	if !ok {
		t.Fatalf("category not found")
	}
	if len(c.Listing) != 2 {
		t.Fatalf("expected 2 listing lines, got %d", len(c.Listing))
	}
	if _, ok := s.Category("missing"); ok {
		t.Fatalf("unexpected category")
	}
	p, ok := s.Product("p2")
	if !ok || p.Price != 200 {
		t.Fatalf("unexpected product: %+v", p)
	}
	cats := s.Categories()
	if len(cats) != 1 {
		t.Fatalf("expected 1 category, got %d", len(cats))
	}
	if cats[0].Listing != nil {
		t.Fatalf("list view must omit listings")
	}
}

func TestStoreMergeProduct(t *testing.T) {
	s := seed(t)
	p, created, err := s.MergeProduct(model.ProductRecord{Name: "p1", Description: "", Price: 120, Quantity: 3}, catalog.DenyAll)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if created {
		t.Fatalf("expected merge into existing product")
	}
	if p.Quantity != 8 || p.Price != 120 {
		t.Fatalf("unexpected merge result: qty=%d price=%v", p.Quantity, p.Price)
	}

	_, created, err = s.MergeProduct(model.ProductRecord{Name: "p3", Description: "", Price: 10, Quantity: 1}, catalog.DenyAll)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !created {
		t.Fatalf("expected a new product")
	}
	if _, ok := s.Product("p3"); !ok {
		t.Fatalf("new product not in universe")
	}
}

func TestStoreAddToCategory(t *testing.T) {
	s := seed(t)
	p := mustProduct(t, "p3", 300, 1)
	snap, err := s.AddToCategory("c1", p)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if snap.Name != "p3" || snap.Price != 300 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if _, ok := s.Product("p3"); !ok {
		t.Fatalf("added product not in universe")
	}
	if _, err := s.AddToCategory("missing", p); !errors.Is(err, ErrNoCategory) {
		t.Fatalf("expected ErrNoCategory, got %v", err)
	}
}

func TestStoreUpdatePrice(t *testing.T) {
	s := seed(t)
	price, ok := s.UpdatePrice("p1", 150, catalog.DenyAll)
	if !ok || price != 150 {
		t.Fatalf("expected 150, got %v (ok=%v)", price, ok)
	}
	price, ok = s.UpdatePrice("p1", 90, catalog.DenyAll)
	if !ok || price != 150 {
		t.Fatalf("declined markdown must keep price, got %v", price)
	}
	if _, ok := s.UpdatePrice("missing", 10, catalog.DenyAll); ok {
		t.Fatalf("unexpected product")
	}
}

func TestStoreCombineProducts(t *testing.T) {
	s := seed(t)
	total, err := s.CombineProducts("p1", "p2")
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if total != 900 {
		t.Fatalf("expected 900, got %v", total)
	}
	if _, err := s.CombineProducts("p1", "missing"); !errors.Is(err, ErrNoProduct) {
		t.Fatalf("expected ErrNoProduct, got %v", err)
	}
}

func TestStoreOrders(t *testing.T) {
	s := seed(t)
	o, ok := s.CreateOrder("p1", 2)
	if !ok {
		t.Fatalf("order not created")
	}
	if o.Total != 200 {
		t.Fatalf("unexpected total: %v", o.Total)
	}
	got, ok := s.Order(o.ID)
	if !ok || got.Product != "p1" || got.Quantity != 2 {
		t.Fatalf("unexpected stored order: %+v", got)
	}
	if _, ok := s.CreateOrder("missing", 1); ok {
		t.Fatalf("unexpected order for unknown product")
	}
	if _, ok := s.Order("missing"); ok {
		t.Fatalf("unexpected order")
	}
}

func TestStoreConcurrentMerges(t *testing.T) {
	s := seed(t)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.MergeProduct(model.ProductRecord{Name: "p1", Description: "", Price: 100, Quantity: 1}, catalog.DenyAll)
			if err != nil {
				t.Errorf("merge: %v", err)
			}
		}()
	}
	wg.Wait()
	p, _ := s.Product("p1")
	if p.Quantity != 105 {
		t.Fatalf("expected 105, got %d", p.Quantity)
	}
}

// Readers must never observe a product or category mid-mutation; run
// with -race.
func TestStoreConcurrentReadsDuringWrites(t *testing.T) {
	s := seed(t)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			s.UpdatePrice("p1", float64(100+i%50+1), catalog.ApproveAll)
			_, _, _ = s.MergeProduct(model.ProductRecord{Name: "p2", Price: 200, Quantity: 1}, catalog.ApproveAll)
		}
	}()
	for i := 0; i < 500; i++ {
		if p, ok := s.Product("p1"); !ok || p.Price <= 0 {
			t.Fatalf("unexpected product snapshot: %+v", p)
		}
		if c, ok := s.Category("c1"); !ok || c.Total <= 0 {
			t.Fatalf("unexpected category snapshot: %+v", c)
		}
	}
	<-done
}

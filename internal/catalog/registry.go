package catalog

import "sync/atomic"

// Registry owns the catalog-wide counters. Categories constructed against
// the same registry share them; tests use a fresh registry per case
// instead of process-wide state.
type Registry struct {
	categories atomic.Int64
	products   atomic.Int64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// CategoryCount counts category constructions plus successful product
// additions against this registry.
func (r *Registry) CategoryCount() int64 { return r.categories.Load() }

// ProductCount reports the member count of the most recently constructed
// category; each construction overwrites it.
func (r *Registry) ProductCount() int64 { return r.products.Load() }

package domain

import "slices"

// A Snapshot is an immutable state of the product cache.
type Snapshot struct {
	version  uint64
	products []Product
	loading  bool
	loadErr  string
}

// NewSnapshot keeps products as is, the caller must not modify them later.
func NewSnapshot(
	version uint64, products []Product, loading bool, loadErr string,
) Snapshot {
	return Snapshot{
		version:  version,
		products: products,
		loading:  loading,
		loadErr:  loadErr,
	}
}

func (s Snapshot) Version() uint64 { return s.version }

// Products returns a copy of the collection in cache order.
func (s Snapshot) Products() []Product {
	return slices.Clone(s.products)
}

func (s Snapshot) Len() int { return len(s.products) }

func (s Snapshot) Loading() bool { return s.loading }

// Err returns the user-facing message of the last failed load or empty string.
func (s Snapshot) Err() string { return s.loadErr }

func (s Snapshot) Find(id int64) (Product, bool) {
	if id == 0 {
		return Product{}, false
	}
	i := slices.IndexFunc(s.products, func(p Product) bool {
		return p.ID == id
	})
	if i < 0 {
		return Product{}, false
	}
	return s.products[i], true
}

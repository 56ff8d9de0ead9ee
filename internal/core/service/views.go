package service

import (
	"cmp"
	"slices"
	"sync"

	"github.com/niksmo/coffee-admin/internal/core/domain"
	"github.com/niksmo/coffee-admin/internal/core/port"
)

// DefaultTopN is the size of the best sellers view.
const DefaultTopN = 3

// TopSelling returns at most n products with the highest sales, descending.
// Ties keep the collection order.
func TopSelling(ps []domain.Product, n int) []domain.Product {
	sorted := slices.Clone(ps)
	slices.SortStableFunc(sorted, func(a, b domain.Product) int {
		return cmp.Compare(b.Sales, a.Sales)
	})
	return sorted[:min(max(n, 0), len(sorted))]
}

var _ port.TopSellers = (*TopView)(nil)

// A TopView keeps the best sellers of the latest snapshot.
type TopView struct {
	n int

	mu  sync.RWMutex
	top []domain.Product
}

// NewTopView subscribes the view to s.
// Non-positive n means [DefaultTopN].
func NewTopView(s port.SnapshotSubscriber, n int) *TopView {
	if n <= 0 {
		n = DefaultTopN
	}
	v := &TopView{n: n}
	s.Subscribe(v.onSnapshot)
	return v
}

func (v *TopView) Top() []domain.Product {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.top)
}

func (v *TopView) onSnapshot(s domain.Snapshot) {
	top := TopSelling(s.Products(), v.n)
	v.mu.Lock()
	v.top = top
	v.mu.Unlock()
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/niksmo/coffee-admin/internal/core/domain"
	"github.com/niksmo/coffee-admin/internal/core/port"
)

// LoadErrorMessage is shown to the user when the collection can't be fetched.
const LoadErrorMessage = "could not load products"

var (
	ErrMissingID = errors.New("product identifier is missing")
	ErrNotFound  = errors.New("product not found")
)

var _ port.Catalog = (*ProductCache)(nil)

type subscription struct {
	fn func(domain.Snapshot)

	// next is the lowest version fn still has to receive, guarded by pubMu.
	next uint64
}

// deliver calls fn with snap unless a newer snapshot was already delivered.
func (s *subscription) deliver(snap domain.Snapshot) {
	if snap.Version() < s.next {
		return
	}
	s.next = snap.Version() + 1
	s.fn(snap)
}

// A ProductCache holds the server-confirmed product collection.
//
// State changes only after a successful round trip to the [port.ProductsAPI].
// Every change publishes a new [domain.Snapshot] to the subscribers.
type ProductCache struct {
	api port.ProductsAPI

	mu       sync.Mutex
	version  uint64
	products []domain.Product
	loading  bool
	loadErr  string
	subs     []*subscription

	// pubMu serialises deliveries. It is never taken while holding mu.
	// published is the last version delivered to all its subscribers,
	// commits wait on pubCond for their turn.
	pubMu     sync.Mutex
	pubCond   *sync.Cond
	published uint64
}

func NewProductCache(api port.ProductsAPI) *ProductCache {
	c := &ProductCache{api: api}
	c.pubCond = sync.NewCond(&c.pubMu)
	return c
}

func (c *ProductCache) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe registers fn and immediately calls it with the current snapshot.
//
// Every subscriber receives snapshots in increasing version order.
// fn may read the cache but must not call its mutating methods or Subscribe.
func (c *ProductCache) Subscribe(fn func(domain.Snapshot)) (unsubscribe func()) {
	s := &subscription{fn: fn}

	c.mu.Lock()
	c.subs = append(c.subs, s)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.pubMu.Lock()
	s.deliver(snap)
	c.pubMu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.subs = slices.DeleteFunc(c.subs, func(v *subscription) bool {
			return v == s
		})
	}
}

// Close drops all subscribers.
func (c *ProductCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = nil
}

// Load replaces the collection with the remote one.
//
// On failure the previous collection is kept and [LoadErrorMessage] is set.
// Overlapping loads are not coalesced, the last one to resolve wins.
func (c *ProductCache) Load(ctx context.Context) error {
	const op = "ProductCache.Load"
	log := slog.With("op", op)

	c.commit(func() { c.loading = true })

	ps, err := c.api.ListProducts(ctx)
	if err != nil {
		c.commit(func() {
			c.loading = false
			c.loadErr = LoadErrorMessage
		})
		log.Warn("failed to load products", "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	c.commit(func() {
		c.products = slices.Clone(ps)
		c.loading = false
		c.loadErr = ""
	})
	log.Debug("products loaded", "nProducts", len(ps))
	return nil
}

// Create sends p to the API and appends the created product.
//
// p is expected to have no identifier.
func (c *ProductCache) Create(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "ProductCache.Create"

	created, err := c.api.CreateProduct(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	c.commit(func() {
		i := c.indexLocked(created.ID)
		if i < 0 {
			c.products = append(slices.Clip(c.products), created)
			return
		}
		c.products = replaced(c.products, i, created)
	})
	return created, nil
}

// Update sends the whole p to the API and replaces the matching product
// with the returned one.
func (c *ProductCache) Update(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "ProductCache.Update"

	if !p.HasID() {
		return domain.Product{}, fmt.Errorf("%s: %w", op, ErrMissingID)
	}

	updated, err := c.api.UpdateProduct(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	c.commit(func() {
		if i := c.indexLocked(updated.ID); i >= 0 {
			c.products = replaced(c.products, i, updated)
		}
	})
	return updated, nil
}

// Delete removes the product from the API and then from the collection.
func (c *ProductCache) Delete(ctx context.Context, id int64) error {
	const op = "ProductCache.Delete"

	if id == 0 {
		return fmt.Errorf("%s: %w", op, ErrMissingID)
	}

	if err := c.api.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.commit(func() {
		if i := c.indexLocked(id); i >= 0 {
			c.products = slices.Delete(slices.Clone(c.products), i, i+1)
		}
	})
	return nil
}

// commit applies fn under the lock and publishes the resulting snapshot.
//
// fn must not modify the backing array of c.products, published
// snapshots share it.
func (c *ProductCache) commit(fn func()) {
	c.mu.Lock()
	fn()
	c.version++
	snap := c.snapshotLocked()
	subs := slices.Clone(c.subs)
	c.mu.Unlock()

	c.publish(snap, subs)
}

// publish delivers snap after every older snapshot has been delivered.
func (c *ProductCache) publish(snap domain.Snapshot, subs []*subscription) {
	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	for c.published+1 != snap.Version() {
		c.pubCond.Wait()
	}
	defer func() {
		c.published = snap.Version()
		c.pubCond.Broadcast()
	}()

	for _, s := range subs {
		s.deliver(snap)
	}
}

func (c *ProductCache) snapshotLocked() domain.Snapshot {
	return domain.NewSnapshot(c.version, c.products, c.loading, c.loadErr)
}

func (c *ProductCache) indexLocked(id int64) int {
	if id == 0 {
		return -1
	}
	return slices.IndexFunc(c.products, func(p domain.Product) bool {
		return p.ID == id
	})
}

func replaced(ps []domain.Product, i int, p domain.Product) []domain.Product {
	ps = slices.Clone(ps)
	ps[i] = p
	return ps
}

package service_test

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/niksmo/coffee-admin/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

var errNetwork = errors.New("connection refused")

type MockProductsAPI struct {
	mock.Mock
}

func (m *MockProductsAPI) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockProductsAPI) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsAPI) UpdateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsAPI) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockChangesProducer struct {
	mock.Mock
}

func (m *MockChangesProducer) ProduceChange(
	ctx context.Context, c domain.ProductChange,
) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// fakeServer behaves like the remote products resource.
type fakeServer struct {
	mu       sync.Mutex
	nextID   int64
	products []domain.Product
}

func newFakeServer(ps ...domain.Product) *fakeServer {
	s := &fakeServer{nextID: 1}
	for _, p := range ps {
		p.ID = s.nextID
		s.nextID++
		s.products = append(s.products, p)
	}
	return s
}

func (s *fakeServer) ListProducts(context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products), nil
}

func (s *fakeServer) CreateProduct(
	_ context.Context, p domain.Product,
) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	s.products = append(s.products, p)
	return p, nil
}

func (s *fakeServer) UpdateProduct(
	_ context.Context, p domain.Product,
) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.products, func(v domain.Product) bool {
		return v.ID == p.ID
	})
	if i < 0 {
		return domain.Product{}, errors.New("404 not found")
	}
	s.products[i] = p
	return p, nil
}

func (s *fakeServer) DeleteProduct(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = slices.DeleteFunc(s.products, func(v domain.Product) bool {
		return v.ID == id
	})
	return nil
}

func (s *fakeServer) ids() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return productIDs(s.products)
}

func productIDs(ps []domain.Product) []int64 {
	ids := make([]int64, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func coffee(id int64, name string, stock, sales int) domain.Product {
	p := domain.DefaultProduct()
	p.ID = id
	p.Name = name
	p.Origin = "Colombia"
	p.Stock = stock
	p.Sales = sales
	p.Price = 9.5
	return p
}

// fakeChart records what the dashboard draws.
type fakeChart struct {
	mu      sync.Mutex
	labels  []string
	values  []int
	redraws int
	err     error
}

func (c *fakeChart) SetData(labels []string, values []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.labels = labels
	c.values = values
}

func (c *fakeChart) Redraw() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.redraws++
	return c.err
}

func (c *fakeChart) state() ([]string, []int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.labels, c.values, c.redraws
}

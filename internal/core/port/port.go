package port

import (
	"context"

	"github.com/niksmo/coffee-admin/internal/core/domain"
)

// ProductsAPI is the remote products resource.
type ProductsAPI interface {
	ListProducts(context.Context) ([]domain.Product, error)
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
	UpdateProduct(context.Context, domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type SnapshotSubscriber interface {
	Subscribe(func(domain.Snapshot)) (unsubscribe func())
}

// Catalog is the product cache as seen by the UI components.
type Catalog interface {
	SnapshotSubscriber
	Snapshot() domain.Snapshot
	Load(context.Context) error
	Create(context.Context, domain.Product) (domain.Product, error)
	Update(context.Context, domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// EditorState is a read model of a product editor.
type EditorState struct {
	Form     domain.Product
	Editing  bool
	Snapshot domain.Snapshot
}

type ProductEditor interface {
	State() EditorState
	Select(id int64) error
	Reset()
	Save(context.Context, domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
	Reload(context.Context) error
}

type TopSellers interface {
	Top() []domain.Product
}

// Chart is a chart instance owned by a single dashboard.
type Chart interface {
	SetData(labels []string, values []int)
	Redraw() error
}

type ChangesProducer interface {
	ProduceChange(context.Context, domain.ProductChange) error
}

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/coffee-admin/internal/core/domain"
	"github.com/niksmo/coffee-admin/internal/core/port"
)

var _ port.ProductsAPI = (*ChangeFeed)(nil)

// A ChangeFeed reports every mutation confirmed by the wrapped API
// to the changes producer.
//
// Producer failures are logged, they never fail the API call.
type ChangeFeed struct {
	api      port.ProductsAPI
	producer port.ChangesProducer
	now      func() time.Time
}

func NewChangeFeed(
	api port.ProductsAPI, producer port.ChangesProducer,
) ChangeFeed {
	return ChangeFeed{api: api, producer: producer, now: time.Now}
}

func (f ChangeFeed) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return f.api.ListProducts(ctx)
}

func (f ChangeFeed) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	created, err := f.api.CreateProduct(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}
	f.emit(ctx, domain.ChangeCreated, created.ID, &created)
	return created, nil
}

func (f ChangeFeed) UpdateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	updated, err := f.api.UpdateProduct(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}
	f.emit(ctx, domain.ChangeUpdated, updated.ID, &updated)
	return updated, nil
}

func (f ChangeFeed) DeleteProduct(ctx context.Context, id int64) error {
	if err := f.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	f.emit(ctx, domain.ChangeDeleted, id, nil)
	return nil
}

func (f ChangeFeed) emit(
	ctx context.Context, kind domain.ChangeKind, id int64, p *domain.Product,
) {
	const op = "ChangeFeed.emit"

	change := domain.ProductChange{
		EventID:    uuid.NewString(),
		Kind:       kind,
		ProductID:  id,
		Product:    p,
		OccurredAt: f.now(),
	}

	if err := f.producer.ProduceChange(ctx, change); err != nil {
		slog.Error(
			"failed to produce product change",
			"op", op, "kind", kind, "productID", id, "err", err,
		)
	}
}

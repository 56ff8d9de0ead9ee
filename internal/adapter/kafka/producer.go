package kafka

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/niksmo/coffee-admin/internal/core/domain"
	"github.com/niksmo/coffee-admin/internal/core/port"
	"github.com/niksmo/coffee-admin/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ChangesProducer = (*ChangesProducer)(nil)

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(
	ctx context.Context, rs ...*kgo.Record,
) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// A ChangesProducer used for produce [domain.ProductChange].
//
// Records are keyed by product id, so the changes of a product
// stay ordered within a partition.
type ChangesProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewChangesProducer(
	opts ...ProducerOpt,
) (ChangesProducer, error) {
	const op = "NewChangesProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ChangesProducer{}, opErr(err, op)
		}
	}

	opPrefix := "ChangesProducer"
	p := producer{
		opPrefix: opPrefix,
		cl:       options.cl,
	}

	return ChangesProducer{
		producer: p,
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p ChangesProducer) Close() {
	p.producer.close()
}

func (p ChangesProducer) ProduceChange(
	ctx context.Context, c domain.ProductChange,
) error {
	const op = "ProduceChange"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(c)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	return nil
}

func (p ChangesProducer) createRecord(
	c domain.ProductChange,
) (*kgo.Record, error) {
	const op = "createRecord"

	s := p.toSchema(c)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, p.opPrefix, op)
	}
	msgKey := []byte(strconv.FormatInt(s.ProductID, 10))
	return &kgo.Record{Key: msgKey, Value: b}, nil
}

func (ChangesProducer) toSchema(c domain.ProductChange) schema.ProductChangeV1 {
	s := schema.ProductChangeV1{
		EventID:    c.EventID,
		Kind:       string(c.Kind),
		ProductID:  c.ProductID,
		OccurredAt: c.OccurredAt,
	}
	if c.Product != nil {
		s.Product = &schema.ProductV1{
			ID:        c.Product.ID,
			Name:      c.Product.Name,
			Origin:    c.Product.Origin,
			Form:      string(c.Product.Form),
			Variety:   string(c.Product.Variety),
			Roast:     string(c.Product.Roast),
			Intensity: c.Product.Intensity,
			Price:     c.Product.Price,
			Stock:     c.Product.Stock,
			Sales:     c.Product.Sales,
			Image:     c.Product.Image,
		}
	}
	return s
}

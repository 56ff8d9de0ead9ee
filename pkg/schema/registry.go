package schema

import (
	"context"
	"errors"

	"github.com/twmb/franz-go/pkg/sr"
)

// SchemaCreater is implemented by [sr.Client].
type SchemaCreater interface {
	CreateSchema(
		ctx context.Context, subject string, s sr.Schema,
	) (sr.SubjectSchema, error)
}

// RegistryIdentifier registers avro schemas in the schema registry.
// Registering an existing schema returns its id.
type RegistryIdentifier struct {
	sc SchemaCreater
}

func NewRegistryIdentifier(sc SchemaCreater) (RegistryIdentifier, error) {
	if sc == nil {
		return RegistryIdentifier{}, errors.New("schema creater is nil")
	}
	return RegistryIdentifier{sc}, nil
}

func (ri RegistryIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (int, error) {
	ss, err := ri.sc.CreateSchema(ctx, subject, sr.Schema{
		Type:   sr.TypeAvro,
		Schema: avroSchemaText,
	})
	if err != nil {
		return 0, err
	}
	return ss.ID, nil
}

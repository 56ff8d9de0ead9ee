package schema_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/coffee-admin/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/sr"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

type MockSchemaCreater struct {
	mock.Mock
}

func (c *MockSchemaCreater) CreateSchema(
	ctx context.Context, subject string, s sr.Schema,
) (sr.SubjectSchema, error) {
	args := c.Called(ctx, subject, s)
	return args.Get(0).(sr.SubjectSchema), args.Error(1)
}

func TestSerdeProductChangeV1(t *testing.T) {
	const subject = "coffee-product-changes-value"

	newSerde := func(t *testing.T) schema.Serde {
		t.Helper()
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ProductChangeSchemaTextV1,
		).Return(1, nil)

		serde, err := schema.NewSerdeProductChangeV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)
		return serde
	}

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeProductChangeV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeProductChangeV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("EmptySubject", func(t *testing.T) {
		_, err := schema.NewSerdeProductChangeV1(
			t.Context(),
			schema.SubjectOpt(""),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
	})

	t.Run("IdentifierFailure", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		errRegistry := errors.New("registry is down")
		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.ProductChangeSchemaTextV1,
		).Return(0, errRegistry)

		_, err := schema.NewSerdeProductChangeV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		assert.ErrorIs(t, err, errRegistry)
	})

	t.Run("EncodeDecodeUpdated", func(t *testing.T) {
		serde := newSerde(t)

		change1 := schema.ProductChangeV1{
			EventID:    "b7c1f3c2-1111-4a55-9e0e-0d3b8b2f9a10",
			Kind:       "updated",
			ProductID:  7,
			OccurredAt: time.UnixMilli(1760400000123).UTC(),
			Product: &schema.ProductV1{
				ID:        7,
				Name:      "Kenia AA",
				Origin:    "Kenia",
				Form:      "grano",
				Variety:   "arabica",
				Roast:     "Medio",
				Intensity: 7,
				Price:     14.2,
				Stock:     12,
				Sales:     40,
				Image:     "kenia.png",
			},
		}

		encodedData, err := serde.Encode(change1)
		require.NoError(t, err)
		assert.Equal(t, byte(0), encodedData[0], "confluent wire format magic byte")

		var change2 schema.ProductChangeV1
		err = serde.Decode(encodedData, &change2)
		require.NoError(t, err)

		assert.Equal(t, change1.EventID, change2.EventID)
		assert.Equal(t, change1.Kind, change2.Kind)
		assert.Equal(t, change1.ProductID, change2.ProductID)
		assert.True(t, change1.OccurredAt.Equal(change2.OccurredAt))
		require.NotNil(t, change2.Product)
		assert.Equal(t, *change1.Product, *change2.Product)
	})

	t.Run("EncodeDecodeDeleted", func(t *testing.T) {
		serde := newSerde(t)

		change1 := schema.ProductChangeV1{
			EventID:    "event",
			Kind:       "deleted",
			ProductID:  7,
			OccurredAt: time.UnixMilli(1760400000000).UTC(),
		}

		encodedData, err := serde.Encode(change1)
		require.NoError(t, err)

		var change2 schema.ProductChangeV1
		require.NoError(t, serde.Decode(encodedData, &change2))
		assert.Equal(t, "deleted", change2.Kind)
		assert.Nil(t, change2.Product)
	})
}

func TestRegistryIdentifier(t *testing.T) {
	t.Run("NilCreater", func(t *testing.T) {
		_, err := schema.NewRegistryIdentifier(nil)
		require.Error(t, err)
	})

	t.Run("DetermineID", func(t *testing.T) {
		sc := new(MockSchemaCreater)
		sc.On("CreateSchema", t.Context(), "topic-value", sr.Schema{
			Type:   sr.TypeAvro,
			Schema: schema.ProductChangeSchemaTextV1,
		}).Return(sr.SubjectSchema{ID: 42}, nil).Once()

		ri, err := schema.NewRegistryIdentifier(sc)
		require.NoError(t, err)

		id, err := ri.DetermineID(
			t.Context(), "topic-value", schema.ProductChangeSchemaTextV1,
		)
		require.NoError(t, err)
		assert.Equal(t, 42, id)
		sc.AssertExpectations(t)
	})

	t.Run("RegistryFailure", func(t *testing.T) {
		sc := new(MockSchemaCreater)
		errRegistry := errors.New("registry is down")
		sc.On("CreateSchema", mock.Anything, mock.Anything, mock.Anything).
			Return(sr.SubjectSchema{}, errRegistry)

		ri, err := schema.NewRegistryIdentifier(sc)
		require.NoError(t, err)

		_, err = ri.DetermineID(t.Context(), "topic-value", "{}")
		assert.ErrorIs(t, err, errRegistry)
	})
}

package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const ProductChangeSchemaTextV1 = `{
	"type": "record",
	"namespace": "coffee",
	"name": "product_change",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "product", "type": ["null", {
			"type": "record",
			"name": "product",
			"fields": [
				{"name": "id", "type": "long"},
				{"name": "name", "type": "string"},
				{"name": "origin", "type": "string"},
				{"name": "form", "type": "string"},
				{"name": "variety", "type": "string"},
				{"name": "roast", "type": "string"},
				{"name": "intensity", "type": "int"},
				{"name": "price", "type": "double"},
				{"name": "stock", "type": "int"},
				{"name": "sales", "type": "int"},
				{"name": "image", "type": "string"}
			]
		}], "default": null}
	]
}`

type (
	// ProductChangeV1 has no product for deletions.
	ProductChangeV1 struct {
		EventID    string     `avro:"event_id"`
		Kind       string     `avro:"kind"`
		ProductID  int64      `avro:"product_id"`
		OccurredAt time.Time  `avro:"occurred_at"`
		Product    *ProductV1 `avro:"product"`
	}

	ProductV1 struct {
		ID        int64   `avro:"id"`
		Name      string  `avro:"name"`
		Origin    string  `avro:"origin"`
		Form      string  `avro:"form"`
		Variety   string  `avro:"variety"`
		Roast     string  `avro:"roast"`
		Intensity int     `avro:"intensity"`
		Price     float64 `avro:"price"`
		Stock     int     `avro:"stock"`
		Sales     int     `avro:"sales"`
		Image     string  `avro:"image"`
	}
)

func ProductChangeV1Avro() avro.Schema {
	return avro.MustParse(ProductChangeSchemaTextV1)
}

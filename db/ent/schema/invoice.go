package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/invox/invox/internal/entity"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("file_id").NotEmpty(),
		field.String("file_name").NotEmpty(),
		field.String("vendor_name").NotEmpty(),
		field.String("vendor_address").Optional().Nillable(),
		field.String("vendor_tax_id").Optional().Nillable(),
		field.String("invoice_number").NotEmpty(),
		field.String("invoice_date").NotEmpty(),
		field.String("currency").Optional().Nillable(),
		field.Float("subtotal").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_percent").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(6,3)"}),
		field.Float("total").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("po_number").Optional().Nillable(),
		field.String("po_date").Optional().Nillable(),
		field.JSON("line_items", []entity.LineItem{}).
			Default([]entity.LineItem{}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

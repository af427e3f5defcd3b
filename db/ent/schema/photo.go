package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Photo struct{ ent.Schema }

func (Photo) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "photos"},
	}
}

func (Photo) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("report_id", uuid.UUID{}),
		field.String("local_photo_id").NotEmpty(),
		field.String("caption").Optional(),
		field.String("store_path").Optional(),
		field.Float("latitude").Optional().Nillable(),
		field.Float("longitude").Optional().Nillable(),
		field.Time("taken_at").Default(time.Now),
		field.Time("created_at").Default(time.Now),
	}
}

func (Photo) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("photos").
			Field("report_id").
			Required().
			Unique(),
	}
}

func (Photo) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "local_photo_id").Unique(),
	}
}

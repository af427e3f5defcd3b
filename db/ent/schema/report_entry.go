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

type ReportEntry struct{ ent.Schema }

func (ReportEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "report_entries"},
	}
}

func (ReportEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("report_id", uuid.UUID{}),
		// Client-generated id; with report_id it forms the idempotent upsert
		// key, so replayed backups never create duplicate rows.
		field.String("local_entry_id").NotEmpty(),
		field.String("section").NotEmpty(),
		field.Text("body").Default(""),
		field.UUID("contractor_id", uuid.UUID{}).Optional().Nillable(),
		// Freeform capture carries a denormalized contractor name.
		field.String("contractor_name").Optional(),
		field.Time("captured_at").Default(time.Now),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ReportEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("entries").
			Field("report_id").
			Required().
			Unique(),
	}
}

func (ReportEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "local_entry_id").Unique(),
	}
}

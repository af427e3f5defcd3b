package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/db/ent/schema/utils"
)

type Report struct{ ent.Schema }

func (Report) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reports"},
	}
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("project_id", uuid.UUID{}),
		field.Time("report_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable(),
		field.String("status").Default("draft").
			Validate(utils.EnumValidator("draft", "pending_refine", "refined", "submitted")),
		field.String("capture_mode").Default("freeform").
			Validate(utils.EnumValidator("freeform", "guided")),
		field.String("device_id").NotEmpty(),
		// Layered payloads travel as JSON documents; the normalized entry and
		// raw-capture rows live in their own tables.
		field.JSON("original_input", map[string]any{}).Optional(),
		field.JSON("ai_generated", map[string]any{}).Optional(),
		field.JSON("user_edits", map[string]any{}).Optional(),
		field.JSON("toggles", map[string]any{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("last_saved").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY reports -> ONE project (FK: reports.project_id)
		edge.From("project", Project.Type).
			Ref("reports").
			Field("project_id").
			Required().
			Unique(),
		// ONE report -> MANY entries
		edge.To("entries", ReportEntry.Type),
		// ONE report -> MANY photos
		edge.To("photos", Photo.Type),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		// Conflict target for the report upsert: one report per project+date.
		index.Fields("project_id", "report_date").Unique(),
	}
}

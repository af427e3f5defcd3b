package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// EditLock is the cross-device edit lock. The unique (project_id,
// report_date) index is the conflict target that makes acquisition a single
// atomic write instead of an application-level compare-and-swap.
type EditLock struct{ ent.Schema }

func (EditLock) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "active_reports"},
	}
}

func (EditLock) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.Time("report_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("device_id").NotEmpty(),
		field.String("holder_name").Default(""),
		field.Time("acquired_at").Default(time.Now),
		field.Time("heartbeat_at").Default(time.Now),
	}
}

func (EditLock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "report_date").Unique(),
	}
}

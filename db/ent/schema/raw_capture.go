package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/db/ent/schema/utils"
)

// ReportRawCapture holds the raw captured notes for one report. One row per
// report; the sync path deletes and reinserts rather than patching.
type ReportRawCapture struct{ ent.Schema }

func (ReportRawCapture) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "report_raw_capture"},
	}
}

func (ReportRawCapture) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("report_id", uuid.UUID{}),
		field.String("capture_mode").
			Validate(utils.EnumValidator("freeform", "guided")),
		field.JSON("payload", map[string]any{}),
		field.Time("created_at").Default(time.Now),
	}
}

func (ReportRawCapture) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id").Unique(),
	}
}

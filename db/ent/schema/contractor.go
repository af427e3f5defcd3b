package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/fieldlog/fieldlog/db/ent/schema/utils"
)

type Contractor struct{ ent.Schema }

func (Contractor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contractors"},
	}
}

func (Contractor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("abbreviation").Optional(),
		field.String("type").Default("sub").
			Validate(utils.EnumValidator("prime", "sub")),
		field.String("trade").Optional(),
		field.String("status").Default("active").
			Validate(utils.EnumValidator("active", "inactive")),
		field.Int("sort_order").Default(0),
	}
}

func (Contractor) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY contractors -> ONE project (FK: contractors.project_id)
		edge.From("project", Project.Type).
			Ref("contractors").
			Field("project_id").
			Required().
			Unique(),
	}
}

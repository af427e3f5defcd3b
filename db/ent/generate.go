package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/fieldlog/fieldlog/gen/ent",
			Schema:  "ent/schema",
			// The repositories use ent's native conflict-target upserts.
			Features: []gen.Feature{gen.FeatureUpsert},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
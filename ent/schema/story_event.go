package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoryEvent records a story that was recommended (and possibly told) to
// the learner, so recent themes can be surfaced in stats.
type StoryEvent struct {
	ent.Schema
}

func (StoryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StoryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("theme").
			NotEmpty().
			Comment("Recommended story theme"),
		field.Int("suggested_length_secs").
			Comment("Target read-aloud duration"),
		field.String("title").
			Default("").
			Comment("Generated story title, empty when only recommended"),
		field.Bool("generated").
			Default(false).
			Comment("Whether the story text was actually generated"),
	}
}

func (StoryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("theme"),
	}
}

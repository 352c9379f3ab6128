package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records one call to the text-generation provider, for
// auditing usage and debugging failed generations.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Immutable(),
		field.String("model").
			Immutable(),
		field.String("purpose").
			Immutable().
			Comment("What the call was for: exercise-gen, tutor-chat, writing-review"),
		field.Int("input_tokens").
			Default(0).
			Immutable(),
		field.Int("output_tokens").
			Default(0).
			Immutable(),
		field.Int64("latency_ms").
			Default(0).
			Immutable(),
		field.Bool("success").
			Immutable(),
		field.Text("error_message").
			Optional().
			Default("").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose"),
		index.Fields("created_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// KV is a plain key-value row. The player's progress is one JSON blob
// stored under a fixed key.
type KV struct {
	ent.Schema
}

func (KV) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable().
			NotEmpty(),
		field.Bytes("value").
			Comment("Encoded value, JSON for progress"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

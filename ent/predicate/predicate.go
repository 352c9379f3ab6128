// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExerciseRecord is the predicate function for exerciserecord builders.
type ExerciseRecord func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)

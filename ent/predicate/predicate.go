// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Pref is the predicate function for pref builders.
type Pref func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)

// ReflectionEvent is the predicate function for reflectionevent builders.
type ReflectionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

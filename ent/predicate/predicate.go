// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Flashcard is the predicate function for flashcard builders.
type Flashcard func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Streak is the predicate function for streak builders.
type Streak func(*sql.Selector)

// TutorSession is the predicate function for tutorsession builders.
type TutorSession func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// ChatTurn is the predicate function for chatturn builders.
type ChatTurn func(*sql.Selector)

// Integration is the predicate function for integration builders.
type Integration func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// LLMConfig is the predicate function for llmconfig builders.
type LLMConfig func(*sql.Selector)

// QuotaCounter is the predicate function for quotacounter builders.
type QuotaCounter func(*sql.Selector)

// SecurityEvent is the predicate function for securityevent builders.
type SecurityEvent func(*sql.Selector)

// TurnComment is the predicate function for turncomment builders.
type TurnComment func(*sql.Selector)

// TurnFeedback is the predicate function for turnfeedback builders.
type TurnFeedback func(*sql.Selector)

// TurnStep is the predicate function for turnstep builders.
type TurnStep func(*sql.Selector)

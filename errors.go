package yaml

import "github.com/willabides/yamlemit/internal/emitter"

// ErrorKind classifies the failures an Emitter can return, so callers
// can distinguish programmer errors (bad arguments, events fed out of
// order) from each other without string matching.
type ErrorKind = emitter.ErrorKind

// Error kinds.
const (
	UnexpectedEvent       = emitter.UnexpectedEvent
	InvalidVersion        = emitter.InvalidVersion
	DuplicateTagDirective = emitter.DuplicateTagDirective
	InvalidArgument       = emitter.InvalidArgument
	InvalidState          = emitter.InvalidState
)

// EmitError is returned by Emitter methods for validation and
// state-machine failures. Write errors from the underlying io.Writer
// are not EmitErrors: they are returned as plain errors whose message
// includes the writer's error text, and the writer's error value
// itself is not wrapped.
type EmitError = emitter.Error

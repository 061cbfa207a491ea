package emitter

// ErrorKind classifies the ways an Emit call can fail.
type ErrorKind int

const (
	// UnexpectedEvent means the state machine received an event it cannot
	// follow from its current state (e.g. a MAPPING-END after a scalar).
	UnexpectedEvent ErrorKind = iota

	// InvalidVersion means a DOCUMENT-START event carried a version
	// directive other than 1.1.
	InvalidVersion

	// DuplicateTagDirective means two %TAG directives in the same
	// document declared the same handle.
	DuplicateTagDirective

	// InvalidArgument means a configuration method was called with a
	// value outside its accepted range.
	InvalidArgument

	// InvalidState means the emitter was asked to do something its
	// internal state cannot support, such as emitting past STREAM-END.
	InvalidState
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEvent:
		return "unexpected event"
	case InvalidVersion:
		return "invalid version"
	case DuplicateTagDirective:
		return "duplicate tag directive"
	case InvalidArgument:
		return "invalid argument"
	case InvalidState:
		return "invalid state"
	}
	return "unknown error"
}

// Error is a typed error produced by the emitter. Callers can switch on
// Kind to distinguish a malformed input stream from a bad configuration
// value without parsing the message text.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return "yaml: " + e.Msg
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

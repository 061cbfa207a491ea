// Package yaml implements a streaming YAML 1.1 emitter. It consumes an
// ordered sequence of parsing events and writes valid YAML text to an
// io.Writer. It does not parse YAML, resolve tags to Go values, or
// preserve comments: callers that need those build them on top of the
// event API exposed here.
package yaml

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/willabides/yamlemit/internal/emitter"
	"github.com/willabides/yamlemit/internal/yamlh"
)

// Emitter writes a stream of Events as YAML text.
type Emitter struct {
	e *emitter.Emitter
}

// NewEmitter returns an Emitter that writes to w using the default
// configuration: 2-space indent, no preferred width, non-canonical,
// non-unicode output.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{e: emitter.New(w)}
}

// SetIndent sets the number of spaces used per indentation level. Valid
// values are 2 through 9.
func (em *Emitter) SetIndent(spaces int) error {
	return em.e.SetIndent(spaces)
}

// SetWidth sets the preferred output line width, or -1 to disable
// wrapping. Any other value must be greater than twice the current
// indent.
func (em *Emitter) SetWidth(width int) error {
	return em.e.SetWidth(width)
}

// SetCanonical toggles canonical YAML output.
func (em *Emitter) SetCanonical(canonical bool) {
	em.e.SetCanonical(canonical)
}

// SetUnicode allows literal (unescaped) non-ASCII characters in
// double-quoted scalars when true.
func (em *Emitter) SetUnicode(unicode bool) {
	em.e.SetUnicode(unicode)
}

// SetLineBreak sets the line break style used for all line breaks.
func (em *Emitter) SetLineBreak(lb LineBreak) error {
	return em.e.SetLineBreak(yamlh.Break(lb))
}

// SetLogger attaches a structured logger used to trace state
// transitions at debug level.
func (em *Emitter) SetLogger(logger logrus.FieldLogger) {
	em.e.SetLogger(logger)
}

// Emit feeds event into the emitter's state machine.
func (em *Emitter) Emit(event *Event) error {
	return em.e.Emit(event)
}

// Close emits STREAM-END, which lets any events still held for
// look-ahead be written. It writes no "..." marker of its own.
func (em *Emitter) Close() error {
	return em.Emit(StreamEndEvent())
}

package yaml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func emitAll(t *testing.T, configure func(*Emitter), events ...*Event) string {
	t.Helper()
	var buf bytes.Buffer
	em := NewEmitter(&buf)
	if configure != nil {
		configure(em)
	}
	for _, ev := range events {
		require.NoError(t, em.Emit(ev))
	}
	return buf.String()
}

func TestEmitPlainScalarDocument(t *testing.T) {
	out := emitAll(t, nil,
		StreamStartEvent(UTF8Encoding),
		DocumentStartEvent(nil, nil, true),
		ScalarEvent("", "", "hello", true, false, PlainScalarStyle),
		DocumentEndEvent(true),
		StreamEndEvent(),
	)
	require.Equal(t, "hello\n", out)
}

func TestEmitBlockSequence(t *testing.T) {
	out := emitAll(t, nil,
		StreamStartEvent(UTF8Encoding),
		DocumentStartEvent(nil, nil, true),
		SequenceStartEvent("", "", true, BlockSequenceStyle),
		ScalarEvent("", "", "a", true, false, PlainScalarStyle),
		ScalarEvent("", "", "b", true, false, PlainScalarStyle),
		SequenceEndEvent(),
		DocumentEndEvent(true),
		StreamEndEvent(),
	)
	require.Equal(t, "- a\n- b\n", out)
}

func TestEmitBlockMappingSimpleKey(t *testing.T) {
	out := emitAll(t, nil,
		StreamStartEvent(UTF8Encoding),
		DocumentStartEvent(nil, nil, true),
		MappingStartEvent("", "", true, BlockMappingStyle),
		ScalarEvent("", "", "key", true, false, PlainScalarStyle),
		ScalarEvent("", "", "value", true, false, PlainScalarStyle),
		MappingEndEvent(),
		DocumentEndEvent(true),
		StreamEndEvent(),
	)
	require.Equal(t, "key: value\n", out)
}

func TestEmitCanonicalMapping(t *testing.T) {
	out := emitAll(t, func(em *Emitter) { em.SetCanonical(true) },
		StreamStartEvent(UTF8Encoding),
		DocumentStartEvent(nil, nil, true),
		MappingStartEvent("", "", true, BlockMappingStyle),
		ScalarEvent("", "", "key", true, false, PlainScalarStyle),
		ScalarEvent("", "", "value", true, false, PlainScalarStyle),
		MappingEndEvent(),
		DocumentEndEvent(true),
		StreamEndEvent(),
	)
	require.Equal(t, "---\n{\n  ? \"key\"\n  : \"value\",\n}\n...\n", out)
}

func TestEmitTagDirectives(t *testing.T) {
	out := emitAll(t, nil,
		StreamStartEvent(UTF8Encoding),
		DocumentStartEvent(
			&VersionDirective{Major: 1, Minor: 1},
			[]TagDirective{{Handle: []byte("!e!"), Prefix: []byte("tag:example.com,2024:")}},
			true,
		),
		ScalarEvent("", "tag:example.com,2024:foo", "value", false, false, PlainScalarStyle),
		DocumentEndEvent(true),
		StreamEndEvent(),
	)
	require.Contains(t, out, "%YAML 1.1\n")
	require.Contains(t, out, "%TAG !e! tag:example.com,2024:\n")
	require.Contains(t, out, "!e!foo ")
}

func TestEmitMultilineScalarAvoidsPlainStyle(t *testing.T) {
	out := emitAll(t, nil,
		StreamStartEvent(UTF8Encoding),
		DocumentStartEvent(nil, nil, true),
		ScalarEvent("", "", "line1\nline2 ", true, false, AnyScalarStyle),
		DocumentEndEvent(true),
		StreamEndEvent(),
	)
	// A line break and a trailing space together rule out both the plain
	// and the literal/folded block styles (see analyzeScalar), so the
	// emitter must fall back to a quoted style rather than writing the
	// value bare.
	require.True(t, strings.HasPrefix(out, `'`) || strings.HasPrefix(out, `"`), "expected a quoted scalar, got %q", out)
}

func TestSetIndentRejectsOutOfRange(t *testing.T) {
	em := NewEmitter(&bytes.Buffer{})
	err := em.SetIndent(1)
	require.Error(t, err)
	var emitErr *EmitError
	require.ErrorAs(t, err, &emitErr)
	require.Equal(t, InvalidArgument, emitErr.Kind)
}

func TestSetWidthRejectsOutOfRange(t *testing.T) {
	em := NewEmitter(&bytes.Buffer{})
	err := em.SetWidth(-2)
	require.Error(t, err)
	var emitErr *EmitError
	require.ErrorAs(t, err, &emitErr)
	require.Equal(t, InvalidArgument, emitErr.Kind)
}

func TestEmitIsDeterministic(t *testing.T) {
	build := func() []*Event {
		return []*Event{
			StreamStartEvent(UTF8Encoding),
			DocumentStartEvent(nil, nil, true),
			SequenceStartEvent("", "", true, BlockSequenceStyle),
			ScalarEvent("", "", "a", true, false, PlainScalarStyle),
			ScalarEvent("", "", "b", true, false, PlainScalarStyle),
			SequenceEndEvent(),
			DocumentEndEvent(true),
			StreamEndEvent(),
		}
	}
	out1 := emitAll(t, nil, build()...)
	out2 := emitAll(t, nil, build()...)
	require.Equal(t, out1, out2)
}

func TestEmitAfterStreamEndIsInvalidState(t *testing.T) {
	var buf bytes.Buffer
	em := NewEmitter(&buf)
	require.NoError(t, em.Emit(StreamStartEvent(UTF8Encoding)))
	require.NoError(t, em.Emit(DocumentStartEvent(nil, nil, true)))
	require.NoError(t, em.Emit(ScalarEvent("", "", "x", true, false, PlainScalarStyle)))
	require.NoError(t, em.Emit(DocumentEndEvent(true)))
	require.NoError(t, em.Close())

	err := em.Emit(ScalarEvent("", "", "y", true, false, PlainScalarStyle))
	require.Error(t, err)
	var emitErr *EmitError
	require.ErrorAs(t, err, &emitErr)
	require.Equal(t, InvalidState, emitErr.Kind)
}

func TestEmitOpenEndedDocumentGetsExplicitEnd(t *testing.T) {
	out := emitAll(t, nil,
		StreamStartEvent(UTF8Encoding),
		DocumentStartEvent(nil, nil, true),
		ScalarEvent("", "", "hello", true, false, PlainScalarStyle),
		DocumentEndEvent(true),
		DocumentStartEvent(&VersionDirective{Major: 1, Minor: 1}, nil, true),
		ScalarEvent("", "", "world", true, false, PlainScalarStyle),
		DocumentEndEvent(true),
		StreamEndEvent(),
	)
	// The first document is a bare plain scalar with no explicit "...", so
	// when the next document carries a version directive, the emitter must
	// insert "..." itself to disambiguate before the "%YAML" line.
	require.Contains(t, out, "hello\n...\n%YAML 1.1\n")
}

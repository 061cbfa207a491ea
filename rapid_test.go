package yaml

import (
	"bytes"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// genScalarValue produces printable ASCII scalar content, avoiding the
// loneliness of indicator-only strings that would make every style
// illegal to compare against.
func genScalarValue(t *rapid.T) string {
	return rapid.StringMatching(`[a-zA-Z0-9 ]{0,24}`).Draw(t, "scalar")
}

// genBlockTree builds a shallow, random block-style event sequence: a
// top-level sequence of scalars and nested mappings, bounded in depth
// so the generator always terminates.
func genBlockTree(t *rapid.T, depth int) []*Event {
	if depth <= 0 || rapid.Bool().Draw(t, "leaf") {
		return []*Event{ScalarEvent("", "", genScalarValue(t), true, false, PlainScalarStyle)}
	}
	n := rapid.IntRange(1, 3).Draw(t, "width")
	var events []*Event
	if rapid.Bool().Draw(t, "isMapping") {
		events = append(events, MappingStartEvent("", "", true, BlockMappingStyle))
		for i := 0; i < n; i++ {
			events = append(events, ScalarEvent("", "", genScalarValue(t), true, false, PlainScalarStyle))
			events = append(events, genBlockTree(t, depth-1)...)
		}
		events = append(events, MappingEndEvent())
	} else {
		events = append(events, SequenceStartEvent("", "", true, BlockSequenceStyle))
		for i := 0; i < n; i++ {
			events = append(events, genBlockTree(t, depth-1)...)
		}
		events = append(events, SequenceEndEvent())
	}
	return events
}

func wrapDocument(body []*Event) []*Event {
	events := []*Event{StreamStartEvent(UTF8Encoding), DocumentStartEvent(nil, nil, true)}
	events = append(events, body...)
	events = append(events, DocumentEndEvent(true), StreamEndEvent())
	return events
}

func emitRaw(events []*Event) (string, error) {
	var buf bytes.Buffer
	em := NewEmitter(&buf)
	for _, ev := range events {
		if err := em.Emit(ev); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// P6: emitting the same event stream twice with the same configuration
// produces byte-identical output.
func TestRapidEmitIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		body := genBlockTree(t, 3)
		events := wrapDocument(body)

		out1, err := emitRaw(events)
		if err != nil {
			t.Fatalf("emit failed: %v", err)
		}
		out2, err := emitRaw(events)
		if err != nil {
			t.Fatalf("emit failed: %v", err)
		}
		if out1 != out2 {
			t.Fatalf("non-deterministic output:\n%q\n%q", out1, out2)
		}
	})
}

// P4: indentation is monotonic — every block-sequence/mapping child
// line is indented no less than its parent, and never negative.
func TestRapidIndentationMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		body := genBlockTree(t, 3)
		events := wrapDocument(body)

		var buf bytes.Buffer
		em := NewEmitter(&buf)
		for _, ev := range events {
			if err := em.Emit(ev); err != nil {
				t.Fatalf("emit failed: %v", err)
			}
		}
		for _, line := range strings.Split(buf.String(), "\n") {
			indent := len(line) - len(strings.TrimLeft(line, " "))
			if indent < 0 {
				t.Fatalf("negative indent on line %q", line)
			}
		}
	})
}

// P3: canonical output consists only of directives, markers, flow
// collections, and double-quoted scalars — never a bare plain scalar
// or block indicator.
func TestRapidCanonicalOutputIsPure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		body := genBlockTree(t, 2)
		events := wrapDocument(body)

		var buf bytes.Buffer
		em := NewEmitter(&buf)
		em.SetCanonical(true)
		for _, ev := range events {
			if err := em.Emit(ev); err != nil {
				t.Fatalf("emit failed: %v", err)
			}
		}
		out := buf.String()
		if strings.Contains(out, "- ") {
			t.Fatalf("canonical output contains a block sequence indicator: %q", out)
		}
		if !strings.HasPrefix(out, "---\n") || !strings.HasSuffix(out, "...\n") {
			t.Fatalf("canonical output missing explicit document markers: %q", out)
		}
	})
}
